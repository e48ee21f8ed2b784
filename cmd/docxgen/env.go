package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/alnah/go-docxgen/internal/assets"
	"github.com/alnah/go-docxgen/internal/config"
	"github.com/alnah/go-docxgen/internal/logger"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, filesystem, configuration, and report loading.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	FS     afero.Fs
	Assets assets.ReportLoader // nil: resolved from config (custom path + embedded)
	Config *config.Config      // nil: loaded from --config / DOCXGEN_CONFIG
	Log    logger.Logger
}

// DefaultEnv returns the production environment: OS filesystem, embedded
// reports with optional override directory, and a stderr logger.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		FS:     afero.NewOsFs(),
		Log:    logger.New(&logger.Config{Level: logger.InfoLevel, Output: os.Stderr}),
	}
}

// logFor builds the logger for a command once the log settings are known.
func (e *Environment) logFor(cfg *config.Config) logger.Logger {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logger.InfoLevel
	}
	return logger.New(&logger.Config{
		Level:  level,
		Output: e.Stderr,
		JSON:   cfg.Log.JSON,
	})
}

// logger returns the injected logger, or a no-op one when none is set.
func (e *Environment) logger() logger.Logger {
	if e.Log == nil {
		return logger.Nop()
	}
	return e.Log
}
