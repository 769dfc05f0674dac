package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/d4rkfella/object-fetch/internal/util"
)

// Environment variable names read by Load.
const (
	EnvBucketName       = "BUCKET_NAME"
	EnvFileName         = "FILE_NAME"
	EnvRegion           = "AWS_REGION"
	EnvEndpoint         = "S3_ENDPOINT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvMemoryLimitRatio = "MEMORY_LIMIT_RATIO"
)

// ErrMissing is matched by every *MissingError.
var ErrMissing = errors.New("missing required configuration")

// MissingError reports the required variables that were not provided.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissing.Error(), strings.Join(e.Keys, ", "))
}

func (e *MissingError) Is(target error) bool {
	return target == ErrMissing
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config holds the function configuration. It is populated once at process start
// and handed to the handler; nothing re-reads the environment per invocation.
type Config struct {
	BucketName       string  // Bucket holding the object to serve
	ObjectKey        string  // Key of the object within BucketName
	Region           string  // Optional: AWS region, SDK resolution applies when empty
	Endpoint         string  // Optional: S3-compatible endpoint (path-style addressing)
	LogLevel         string  // Logging level (e.g., "debug", "info", "warn", "error")
	LogFormat        string  // "json" or "console"
	MemoryLimitRatio float64 // Ratio of available memory to set as GOMEMLIMIT (0.0-1.0)
}

// LoadConfig loads configuration from the process environment.
func LoadConfig() (*Config, error) {
	return Load(os.LookupEnv)
}

// Load builds a Config from lookup, applies defaults and validates it.
// Absent required values produce a *MissingError.
func Load(lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if err := checkRequired(lookup, EnvBucketName, EnvFileName); err != nil {
		return nil, err
	}

	cfg := &Config{
		BucketName:       getEnv(lookup, EnvBucketName, ""),
		ObjectKey:        getEnv(lookup, EnvFileName, ""),
		Region:           getEnv(lookup, EnvRegion, ""),
		Endpoint:         getEnv(lookup, EnvEndpoint, ""),
		LogLevel:         strings.ToLower(getEnv(lookup, EnvLogLevel, "info")),
		LogFormat:        strings.ToLower(getEnv(lookup, EnvLogFormat, "json")),
		MemoryLimitRatio: getEnvFloat(lookup, EnvMemoryLimitRatio, 0.85),
	}

	if cfg.MemoryLimitRatio <= 0 || cfg.MemoryLimitRatio > 1 {
		return nil, fmt.Errorf("invalid %s: must be between 0 and 1, got: %f", EnvMemoryLimitRatio, cfg.MemoryLimitRatio)
	}

	if cfg.Endpoint != "" && !strings.HasPrefix(cfg.Endpoint, "http://") && !strings.HasPrefix(cfg.Endpoint, "https://") {
		return nil, fmt.Errorf("invalid %s format: must start with http:// or https://, got: %s", EnvEndpoint, cfg.Endpoint)
	}

	switch cfg.LogFormat {
	case "json", "console":
	default:
		return nil, fmt.Errorf("invalid %s: %s (valid values: json, console)", EnvLogFormat, cfg.LogFormat)
	}

	log.Debug().Str("component", "configuration").Msg("Configuration loaded")
	logDebugConfig(cfg)

	return cfg, nil
}

func logDebugConfig(cfg *Config) {
	log.Debug().
		Str("component", "configuration").
		Str("BucketName", cfg.BucketName).
		Str("ObjectKey", cfg.ObjectKey).
		Str("Region", cfg.Region).
		Str("Endpoint", util.RedactURL(cfg.Endpoint)).
		Str("LogLevel", cfg.LogLevel).
		Str("LogFormat", cfg.LogFormat).
		Float64("MemoryLimitRatio", cfg.MemoryLimitRatio).
		Msg("Loaded configuration details (debug)")
}

// getEnv returns the looked-up value or defaultValue when it is not set.
func getEnv(lookup LookupFunc, key, defaultValue string) string {
	if value, exists := lookup(key); exists {
		return value
	}
	return defaultValue
}

func getEnvFloat(lookup LookupFunc, key string, defaultValue float64) float64 {
	if value, exists := lookup(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid float environment variable, using default")
	}
	return defaultValue
}

// checkRequired treats set-but-empty the same as unset. Whitespace is a valid
// object key and is kept.
func checkRequired(lookup LookupFunc, keys ...string) error {
	var missing []string
	for _, key := range keys {
		if value, exists := lookup(key); !exists || value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}
	return nil
}
