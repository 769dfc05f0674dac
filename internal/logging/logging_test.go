package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		inputLevel    string
		expectedLevel zerolog.Level
	}{
		{"Debug Level", "debug", zerolog.DebugLevel},
		{"Info Level", "info", zerolog.InfoLevel},
		{"Warn Level", "warn", zerolog.WarnLevel},
		{"Error Level", "error", zerolog.ErrorLevel},
		{"Trace Level", "trace", zerolog.TraceLevel},
		{"Case Insensitive", "DEBUG", zerolog.DebugLevel},
		{"Empty String", "", zerolog.InfoLevel},
		{"Invalid String", "invalid", zerolog.InfoLevel},
		{"Partial Match", "inf", zerolog.InfoLevel},
	}

	originalLevel := zerolog.GlobalLevel()
	originalLogger := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(originalLevel)
		log.Logger = originalLogger
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitWithWriter(&bytes.Buffer{}, tt.inputLevel, "json")

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestInit_JSONCarriesServiceField(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	originalLogger := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(originalLevel)
		log.Logger = originalLogger
	})

	var buf bytes.Buffer
	InitWithWriter(&buf, "info", "json")
	log.Info().Str("bucket", "b").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "object-fetch", entry["service"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "b", entry["bucket"])
	assert.Equal(t, "hello", entry["message"])
}

func TestInit_ConsoleFormat(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	originalLogger := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(originalLevel)
		log.Logger = originalLogger
	})

	var buf bytes.Buffer
	InitWithWriter(&buf, "info", "console")
	log.Info().Msg("readable")

	assert.Contains(t, buf.String(), "readable")
	assert.Contains(t, buf.String(), "service=object-fetch")
}
