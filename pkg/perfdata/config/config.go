// Package config loads converter settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alantehealth/perfdata/pkg/perfdata"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvBaseDir   = "PERFDATA_BASE_DIR"
	EnvWorkbook  = "PERFDATA_WORKBOOK"
	EnvOutputDir = "PERFDATA_OUTPUT_DIR"
	EnvLogLevel  = "PERFDATA_LOG_LEVEL"
	EnvLogFormat = "PERFDATA_LOG_FORMAT"
	EnvVerify    = "PERFDATA_VERIFY"
)

// Config represents the converter configuration.
type Config struct {
	// BaseDir anchors the default workbook and output paths.
	BaseDir string
	// WorkbookPath overrides BaseDir/DefaultWorkbookName when set.
	WorkbookPath string
	// OutputDir overrides BaseDir/DefaultOutputDirName when set.
	OutputDir string
	// Verify reads output files back after writing.
	Verify bool

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file from the working directory, then builds
// the configuration from environment variables and defaults. Variables
// already set in the environment win over .env entries. The result is not
// validated; callers apply their overrides and then call Validate.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() *Config {
	return &Config{
		BaseDir:      getEnv(EnvBaseDir, "."),
		WorkbookPath: getEnv(EnvWorkbook, ""),
		OutputDir:    getEnv(EnvOutputDir, ""),
		Verify:       getEnvAsBool(EnvVerify, true),
		LogLevel:     getEnv(EnvLogLevel, "info"),
		LogFormat:    getEnv(EnvLogFormat, "console"),
	}
}

// Validate ensures the configuration can drive a run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseDir) == "" {
		return errors.New("base directory is required")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s (must be console or json)", c.LogFormat)
	}

	return nil
}

// Options converts the configuration into conversion options.
func (c *Config) Options() perfdata.Options {
	opts := perfdata.OptionsForBase(c.BaseDir)
	if c.WorkbookPath != "" {
		opts.WorkbookPath = c.WorkbookPath
	}
	if c.OutputDir != "" {
		opts.OutputDir = c.OutputDir
	}
	opts.Verify = c.Verify
	return opts
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
