package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-docxgen/internal/config"
	"github.com/alnah/go-docxgen/internal/logger"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string  // DOCXGEN_CONFIG: config file name or path
	OutputDir  string  // DOCXGEN_OUTPUT_DIR: default output directory
	AssetPath  string  // DOCXGEN_ASSET_PATH: custom report directory
	Font       string  // DOCXGEN_FONT: default run font
	FontSize   float64 // DOCXGEN_FONT_SIZE: default size in points
	Locale     string  // DOCXGEN_LOCALE: month names for auto dates
	Author     string  // DOCXGEN_AUTHOR: document author
	LogLevel   string  // DOCXGEN_LOG_LEVEL: debug, info, warn, error
	Workers    int     // DOCXGEN_WORKERS: parallel workers
}

// knownEnvVars lists valid DOCXGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DOCXGEN_CONFIG":     true,
	"DOCXGEN_OUTPUT_DIR": true,
	"DOCXGEN_ASSET_PATH": true,
	"DOCXGEN_FONT":       true,
	"DOCXGEN_FONT_SIZE":  true,
	"DOCXGEN_LOCALE":     true,
	"DOCXGEN_AUTHOR":     true,
	"DOCXGEN_LOG_LEVEL":  true,
	"DOCXGEN_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized DOCXGEN_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("DOCXGEN_CONFIG"),
		OutputDir:  os.Getenv("DOCXGEN_OUTPUT_DIR"),
		AssetPath:  os.Getenv("DOCXGEN_ASSET_PATH"),
		Font:       os.Getenv("DOCXGEN_FONT"),
		Locale:     os.Getenv("DOCXGEN_LOCALE"),
		Author:     os.Getenv("DOCXGEN_AUTHOR"),
		LogLevel:   os.Getenv("DOCXGEN_LOG_LEVEL"),
	}

	// Unparsable numbers are ignored, not errors
	if size := os.Getenv("DOCXGEN_FONT_SIZE"); size != "" {
		if v, err := strconv.ParseFloat(size, 64); err == nil && v > 0 {
			cfg.FontSize = v
		}
	}
	if workers := os.Getenv("DOCXGEN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized DOCXGEN_* variables.
// Helps catch typos like DOCXGEN_FONTSIZE instead of DOCXGEN_FONT_SIZE.
func warnUnknownEnvVars(log logger.Logger) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "DOCXGEN_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				log.Warn("unknown environment variable (typo?)", "name", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables replace config file values; CLI flags are applied later
// and win over both: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Font != "" {
		cfg.Document.Font = env.Font
	}
	if env.FontSize > 0 {
		cfg.Document.FontSize = env.FontSize
	}
	if env.Locale != "" {
		cfg.Document.Locale = env.Locale
	}
	if env.Author != "" {
		cfg.Document.Author = env.Author
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}
