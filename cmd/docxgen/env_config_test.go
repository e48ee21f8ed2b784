package main

// Notes:
// - loadEnvConfig: we test every DOCXGEN_* variable. Invalid numbers are
//   ignored, not errors.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig / loadConfig: set variables replace config values and are
//   validated like them.
// - Tests use t.Setenv() which prevents t.Parallel().

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-docxgen/internal/config"
	"github.com/alnah/go-docxgen/internal/logger"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("DOCXGEN_CONFIG", "/etc/docxgen.yaml")
		t.Setenv("DOCXGEN_OUTPUT_DIR", "/out")
		t.Setenv("DOCXGEN_ASSET_PATH", "/assets")
		t.Setenv("DOCXGEN_FONT", "Arial")
		t.Setenv("DOCXGEN_FONT_SIZE", "12.5")
		t.Setenv("DOCXGEN_LOCALE", "tr")
		t.Setenv("DOCXGEN_AUTHOR", "Ömer")
		t.Setenv("DOCXGEN_LOG_LEVEL", "debug")
		t.Setenv("DOCXGEN_WORKERS", "4")

		got := loadEnvConfig()
		want := envConfig{
			ConfigPath: "/etc/docxgen.yaml",
			OutputDir:  "/out",
			AssetPath:  "/assets",
			Font:       "Arial",
			FontSize:   12.5,
			Locale:     "tr",
			Author:     "Ömer",
			LogLevel:   "debug",
			Workers:    4,
		}
		if *got != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
		}
	})

	t.Run("invalid numbers are ignored", func(t *testing.T) {
		t.Setenv("DOCXGEN_FONT_SIZE", "big")
		t.Setenv("DOCXGEN_WORKERS", "-2")

		got := loadEnvConfig()
		if got.FontSize != 0 || got.Workers != 0 {
			t.Errorf("FontSize = %v, Workers = %d, want zero values", got.FontSize, got.Workers)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("DOCXGEN_FONTSIZE", "12")
	t.Setenv("DOCXGEN_FONT", "Arial")

	var buf bytes.Buffer
	warnUnknownEnvVars(logger.New(&logger.Config{Level: logger.WarnLevel, Output: &buf}))

	out := buf.String()
	if !strings.Contains(out, "DOCXGEN_FONTSIZE") {
		t.Errorf("log = %q, want a warning for DOCXGEN_FONTSIZE", out)
	}
	if n := strings.Count(out, "unknown environment variable"); n != 1 {
		t.Errorf("log has %d warnings, want 1: %q", n, out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Priority over config file values
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Document.Font = "Times New Roman"
	cfg.Output.DefaultDir = "/from-config"

	applyEnvConfig(&envConfig{Font: "Arial", Workers: 3}, cfg)

	if cfg.Document.Font != "Arial" {
		t.Errorf("Font = %q, want Arial", cfg.Document.Font)
	}
	if cfg.Output.DefaultDir != "/from-config" {
		t.Errorf("DefaultDir = %q, unset variable replaced the config value", cfg.Output.DefaultDir)
	}
	if cfg.Build.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Build.Workers)
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Config sources and environment validation
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Run("config named by environment", func(t *testing.T) {
		env, _, _ := testEnv(t)
		writeFile(t, env.FS, "/etc/docxgen.yaml", "document:\n  font: Georgia\npage:\n  size: a4\n")
		t.Setenv("DOCXGEN_CONFIG", "/etc/docxgen.yaml")
		t.Setenv("DOCXGEN_FONT_SIZE", "12")

		cfg, err := loadConfig(env, "")
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.Document.Font != "Georgia" || cfg.Page.Size != "a4" || cfg.Document.FontSize != 12 {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		env, _, _ := testEnv(t)
		t.Setenv("DOCXGEN_CONFIG", "/missing.yaml")
		writeFile(t, env.FS, "/flag.yaml", "footer:\n  enabled: true\n  text: NovaBank\n")

		cfg, err := loadConfig(env, "/flag.yaml")
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if !cfg.Footer.Enabled || cfg.Footer.Text != "NovaBank" {
			t.Errorf("Footer = %+v", cfg.Footer)
		}
	})

	t.Run("invalid environment value", func(t *testing.T) {
		env, _, _ := testEnv(t)
		t.Setenv("DOCXGEN_LOCALE", "xx")

		_, err := loadConfig(env, "")
		if !errors.Is(err, config.ErrInvalidValue) {
			t.Errorf("loadConfig() error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("injected config is copied", func(t *testing.T) {
		env, _, _ := testEnv(t)
		env.Config = config.DefaultConfig()
		t.Setenv("DOCXGEN_AUTHOR", "Env Author")

		cfg, err := loadConfig(env, "")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Document.Author != "Env Author" || env.Config.Document.Author != "" {
			t.Errorf("author = %q, injected = %q", cfg.Document.Author, env.Config.Document.Author)
		}
	})
}
