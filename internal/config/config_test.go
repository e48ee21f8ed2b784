package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Document.Locale != "en" {
		t.Errorf("Document.Locale = %q, want en", cfg.Document.Locale)
	}
	if cfg.Footer.Enabled {
		t.Error("Footer.Enabled = true, want false")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if err != nil && !strings.Contains(err.Error(), "test.field") {
					t.Errorf("error %q does not name the field", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	long := strings.Repeat("x", 600)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"full valid", func(c *Config) {
			c.Document = DocumentConfig{Font: "Calibri", FontSize: 10.5, Locale: "tr-TR", Author: "NovaBank"}
			c.Page = PageConfig{Size: "A4", Orientation: "Landscape", Margin: 0.75}
			c.Footer = FooterConfig{Enabled: true, Text: "x", Align: "right", PageNumber: true}
			c.Build.Workers = 8
			c.Log.Level = "debug"
		}, nil},
		{"font too long", func(c *Config) { c.Document.Font = long }, ErrFieldTooLong},
		{"author too long", func(c *Config) { c.Document.Author = long }, ErrFieldTooLong},
		{"footer text too long", func(c *Config) { c.Footer.Text = long }, ErrFieldTooLong},
		{"font size not half point", func(c *Config) { c.Document.FontSize = 10.3 }, ErrInvalidValue},
		{"font size too large", func(c *Config) { c.Document.FontSize = 2000 }, ErrInvalidValue},
		{"negative font size", func(c *Config) { c.Document.FontSize = -1 }, ErrInvalidValue},
		{"unknown locale", func(c *Config) { c.Document.Locale = "fr" }, ErrInvalidValue},
		{"unknown page size", func(c *Config) { c.Page.Size = "a3" }, ErrInvalidValue},
		{"unknown orientation", func(c *Config) { c.Page.Orientation = "diagonal" }, ErrInvalidValue},
		{"margin too small", func(c *Config) { c.Page.Margin = 0.1 }, ErrInvalidValue},
		{"margin too large", func(c *Config) { c.Page.Margin = 3.5 }, ErrInvalidValue},
		{"footer align", func(c *Config) { c.Footer.Align = "middle" }, ErrInvalidValue},
		{"negative workers", func(c *Config) { c.Build.Workers = -1 }, ErrInvalidValue},
		{"too many workers", func(c *Config) { c.Build.Workers = MaxWorkers + 1 }, ErrInvalidValue},
		{"log level", func(c *Config) { c.Log.Level = "trace" }, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func writeConfig(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestLoadConfigFS(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfigFS(afero.NewMemMapFs(), "")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "/cfg/test.yaml", `output:
  defaultDir: "/out"
document:
  font: "Arial"
  fontSize: 12
  locale: "tr"
page:
  size: "a4"
footer:
  enabled: true
  text: "NovaBank"
  pageNumber: true
export:
  tablesXLSX: true
build:
  workers: 2
log:
  level: "debug"
  json: true
`)

		cfg, err := LoadConfigFS(fs, "/cfg/test.yaml")
		if err != nil {
			t.Fatalf("LoadConfigFS() error = %v", err)
		}
		if cfg.Output.DefaultDir != "/out" || cfg.Document.Font != "Arial" || cfg.Document.FontSize != 12 {
			t.Errorf("output/document = %+v %+v", cfg.Output, cfg.Document)
		}
		if cfg.Document.Locale != "tr" || cfg.Page.Size != "a4" {
			t.Errorf("locale/page = %q %q", cfg.Document.Locale, cfg.Page.Size)
		}
		if !cfg.Footer.Enabled || !cfg.Footer.PageNumber || cfg.Footer.Text != "NovaBank" {
			t.Errorf("Footer = %+v", cfg.Footer)
		}
		if !cfg.Export.TablesXLSX || cfg.Build.Workers != 2 || cfg.Log.Level != "debug" || !cfg.Log.JSON {
			t.Errorf("export/build/log = %+v %+v %+v", cfg.Export, cfg.Build, cfg.Log)
		}
	})

	t.Run("omitted sections keep defaults", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "/cfg/min.yaml", "page:\n  margin: 0.5\n")

		cfg, err := LoadConfigFS(fs, "/cfg/min.yaml")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Document.Locale != "en" || cfg.Log.Level != "info" {
			t.Errorf("defaults lost: locale %q level %q", cfg.Document.Locale, cfg.Log.Level)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfigFS(afero.NewMemMapFs(), "/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "/cfg/invalid.yaml", "page: [unclosed")
		_, err := LoadConfigFS(fs, "/cfg/invalid.yaml")
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "/cfg/unknown.yaml", "page:\n  size: a4\nwatermark:\n  text: DRAFT\n")
		_, err := LoadConfigFS(fs, "/cfg/unknown.yaml")
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value is reported after parsing", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "/cfg/bad.yaml", "page:\n  size: a3\n")
		_, err := LoadConfigFS(fs, "/cfg/bad.yaml")
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unreadable.yaml")
		if err := os.WriteFile(configPath, []byte("page:\n  size: a4\n"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.Chmod(configPath, 0o000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer os.Chmod(configPath, 0o600)
		if os.Geteuid() == 0 {
			t.Skip("root can read any file")
		}

		_, err := LoadConfig(configPath)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for permission error")
		}
	})

	t.Run("config name resolves yaml then yml", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "report.yml", "document:\n  font: FromYML\n")

		cfg, err := LoadConfigFS(fs, "report")
		if err != nil {
			t.Fatalf("LoadConfigFS() error = %v", err)
		}
		if cfg.Document.Font != "FromYML" {
			t.Errorf("Document.Font = %q, want FromYML", cfg.Document.Font)
		}

		writeConfig(t, fs, "report.yaml", "document:\n  font: FromYAML\n")
		cfg, err = LoadConfigFS(fs, "report")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Document.Font != "FromYAML" {
			t.Errorf("Document.Font = %q, want FromYAML (.yaml wins)", cfg.Document.Font)
		}
	})

	t.Run("unknown name lists tried paths", func(t *testing.T) {
		_, err := LoadConfigFS(afero.NewMemMapFs(), "missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "missing.yaml") || !strings.Contains(err.Error(), "missing.yml") {
			t.Errorf("error %q does not list tried paths", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("docxgen")
	if len(paths) < 2 || paths[0] != "docxgen.yaml" || paths[1] != "docxgen.yml" {
		t.Fatalf("SearchPaths() = %v, want local files first", paths)
	}
	for _, p := range paths[2:] {
		if filepath.Base(filepath.Dir(p)) != appDir {
			t.Errorf("user path %q is not under %s", p, appDir)
		}
	}
}
