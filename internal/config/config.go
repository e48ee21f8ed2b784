package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/alnah/go-docxgen/internal/dateutil"
	"github.com/alnah/go-docxgen/internal/fileutil"
	"github.com/alnah/go-docxgen/internal/logger"
	"github.com/alnah/go-docxgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength        = 4096
	MaxFontLength        = 64  // "Calibri", "Times New Roman"
	MaxNameLength        = 100 // Author
	MaxTextLength        = 500 // Footer free-form text
	MaxLocaleLength      = 10  // "tr", "tr-TR"
	MaxPageSizeLength    = 10  // "letter", "a4", "legal"
	MaxOrientationLength = 10  // "portrait", "landscape"
	MaxAlignLength       = 10  // "left", "center", "right", "justify"
	MaxWorkers           = 64
	MaxFontSize          = 1638 // Word's upper limit in points
)

// appDir is the directory name under the user config directory.
const appDir = "go-docxgen"

// Config holds all configuration for document generation.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Page     PageConfig     `yaml:"page"`
	Footer   FooterConfig   `yaml:"footer"`
	Assets   AssetsConfig   `yaml:"assets"`
	Export   ExportConfig   `yaml:"export"`
	Build    BuildConfig    `yaml:"build"`
	Log      LogConfig      `yaml:"log"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// DocumentConfig defines document-wide defaults.
type DocumentConfig struct {
	Font     string  `yaml:"font"`     // Default run font (empty = Calibri)
	FontSize float64 `yaml:"fontSize"` // Points (0 = 11)
	Locale   string  `yaml:"locale"`   // Month names for auto dates: "en", "tr"
	Author   string  `yaml:"author"`   // Recorded in document properties
}

// PageConfig defines page layout.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 1.0)
}

// FooterConfig defines the page footer.
type FooterConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Text       string `yaml:"text"`  // Free-form text
	Align      string `yaml:"align"` // "left", "center", "right" (default: "center")
	Italic     bool   `yaml:"italic"`
	PageNumber bool   `yaml:"pageNumber"`
}

// AssetsConfig defines where report definitions are loaded from.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded reports only
}

// ExportConfig defines side outputs.
type ExportConfig struct {
	TablesXLSX bool `yaml:"tablesXLSX"` // Write document tables to <output>.xlsx
}

// BuildConfig defines batch build options.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// LogConfig defines CLI logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: info)
	JSON  bool   `yaml:"json"`
}

// Validate checks field lengths and enumerations. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	// Document
	if err := validateFieldLength("document.font", c.Document.Font, MaxFontLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.author", c.Document.Author, MaxNameLength); err != nil {
		return err
	}
	if c.Document.FontSize != 0 {
		fs := c.Document.FontSize
		if math.IsNaN(fs) || fs < 1 || fs > MaxFontSize || fs*2 != math.Trunc(fs*2) {
			return fmt.Errorf("%w: document.fontSize must be a multiple of 0.5 between 1 and %d, got %v", ErrInvalidValue, MaxFontSize, fs)
		}
	}
	if err := validateFieldLength("document.locale", c.Document.Locale, MaxLocaleLength); err != nil {
		return err
	}
	if _, err := dateutil.ParseLocale(c.Document.Locale); err != nil {
		return fmt.Errorf("%w: document.locale: %v", ErrInvalidValue, err)
	}

	// Page
	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	if err := validateEnum("page.size", c.Page.Size, "letter", "a4", "legal"); err != nil {
		return err
	}
	if err := validateEnum("page.orientation", c.Page.Orientation, "portrait", "landscape"); err != nil {
		return err
	}
	if c.Page.Margin != 0 && (c.Page.Margin < 0.25 || c.Page.Margin > 3.0) {
		return fmt.Errorf("%w: page.margin must be between 0.25 and 3.0 inches, got %.2f", ErrInvalidValue, c.Page.Margin)
	}

	// Footer
	if err := validateFieldLength("footer.text", c.Footer.Text, MaxTextLength); err != nil {
		return err
	}
	if err := validateFieldLength("footer.align", c.Footer.Align, MaxAlignLength); err != nil {
		return err
	}
	if err := validateEnum("footer.align", c.Footer.Align, "left", "center", "right", "justify"); err != nil {
		return err
	}

	// Build and log
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidValue, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts an empty value or one of allowed, case-insensitively.
func validateEnum(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	v := strings.ToLower(value)
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns a neutral configuration: library defaults, no footer.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{Locale: string(dateutil.DefaultLocale)},
		Footer:   FooterConfig{Enabled: false},
		Log:      LogConfig{Level: string(logger.InfoLevel)},
	}
}

// LoadConfig loads configuration from a file path or config name on the
// local filesystem. See LoadConfigFS.
func LoadConfig(nameOrPath string) (*Config, error) {
	return LoadConfigFS(afero.NewOsFs(), nameOrPath)
}

// LoadConfigFS loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfigFS(fs afero.Fs, nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(fs, nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// ./<name>.yaml, ./<name>.yml, then the same under <user config dir>/go-docxgen/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(fs afero.Fs, name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(fs, p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
