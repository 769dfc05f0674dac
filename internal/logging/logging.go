package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "object-fetch"

// Init sets up the global zerolog logger. format is "json" (default, one object
// per line as the Lambda log collector expects) or "console".
func Init(levelString, format string) {
	InitWithWriter(os.Stderr, levelString, format)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(w io.Writer, levelString, format string) {
	logLevel := zerolog.InfoLevel
	parsedLevel, err := zerolog.ParseLevel(levelString)
	if err != nil {
		log.Warn().Str("provided_level", levelString).Err(err).Msg("Invalid LOG_LEVEL, defaulting to 'info'")
	} else if parsedLevel != zerolog.NoLevel {
		logLevel = parsedLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = w
	if format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    logLevel > zerolog.DebugLevel,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Str("service", serviceName).Logger()

	log.Debug().Str("log_level", logLevel.String()).Str("log_format", formatName(format)).Msg("Logger initialized")
}

func formatName(format string) string {
	if format == "console" {
		return format
	}
	return "json"
}
