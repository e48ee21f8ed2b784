package docxgen

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Option configures a Document at construction time.
type Option func(*documentConfig)

// documentConfig holds the document-wide settings collected from options.
type documentConfig struct {
	font     string
	fontSize float64
	page     *PageSettings
	footer   *Footer
	meta     Metadata
	created  time.Time
	id       string
	now      func() time.Time
}

func defaultDocumentConfig() documentConfig {
	return documentConfig{
		font:     DefaultFont,
		fontSize: DefaultFontSize,
		page:     DefaultPageSettings(),
		now:      time.Now,
	}
}

// WithFont sets the default font family for all text.
func WithFont(name string) Option {
	return func(c *documentConfig) {
		c.font = strings.TrimSpace(name)
	}
}

// WithFontSize sets the default font size in points.
func WithFontSize(pt float64) Option {
	return func(c *documentConfig) {
		c.fontSize = pt
	}
}

// WithPageSettings sets the page size, orientation and margins.
// A nil value keeps the defaults.
func WithPageSettings(p *PageSettings) Option {
	return func(c *documentConfig) {
		if p != nil {
			cp := *p
			c.page = &cp
		}
	}
}

// WithFooter adds a page footer. A nil value means no footer.
func WithFooter(f *Footer) Option {
	return func(c *documentConfig) {
		if f == nil {
			c.footer = nil
			return
		}
		cp := *f
		c.footer = &cp
	}
}

// WithMetadata sets the core document properties.
func WithMetadata(m Metadata) Option {
	return func(c *documentConfig) {
		m.Keywords = append([]string(nil), m.Keywords...)
		c.meta = m
	}
}

// WithCreated fixes the creation timestamp recorded in the package.
// Two documents built with the same content and the same timestamp and
// identifier serialize to identical bytes.
func WithCreated(t time.Time) Option {
	return func(c *documentConfig) {
		c.created = t.UTC().Truncate(time.Second)
	}
}

// WithIdentifier sets the document identifier. Defaults to a random UUID.
func WithIdentifier(id string) Option {
	return func(c *documentConfig) {
		c.id = id
	}
}

// withClock replaces the clock used for the default creation time.
func withClock(now func() time.Time) Option {
	return func(c *documentConfig) {
		c.now = now
	}
}

func (c *documentConfig) validate() error {
	if c.font == "" {
		return ErrEmptyFont
	}
	if err := validateFontSize(c.fontSize); err != nil {
		return err
	}
	if err := c.page.Validate(); err != nil {
		return err
	}
	if err := c.meta.validate(); err != nil {
		return err
	}
	return c.footer.Validate()
}

func (c *documentConfig) finalize() {
	if c.created.IsZero() {
		c.created = creationTime(c.now)
	}
	if c.id == "" {
		c.id = "urn:uuid:" + uuid.NewString()
	}
	if c.footer != nil {
		c.footer.Align = Alignment(strings.ToLower(string(c.footer.Align)))
	}
}

// BlockOption configures a heading or paragraph when it is appended.
type BlockOption func(*blockConfig)

type blockConfig struct {
	align   Alignment
	style   Style
	spacing *Spacing
}

// WithAlign sets the horizontal alignment.
func WithAlign(a Alignment) BlockOption {
	return func(c *blockConfig) {
		c.align = a
	}
}

// WithStyle sets the paragraph style. Ignored for headings.
func WithStyle(s Style) BlockOption {
	return func(c *blockConfig) {
		c.style = s
	}
}

// WithSpacing sets the space before and after the block, in points.
func WithSpacing(before, after float64) BlockOption {
	return func(c *blockConfig) {
		c.spacing = &Spacing{Before: before, After: after}
	}
}

func newBlockConfig(opts []BlockOption) (blockConfig, error) {
	cfg := blockConfig{style: StyleNormal}
	for _, opt := range opts {
		opt(&cfg)
	}
	align, err := ParseAlignment(string(cfg.align))
	if err != nil {
		return cfg, err
	}
	cfg.align = align
	if err := cfg.style.Validate(); err != nil {
		return cfg, err
	}
	if err := cfg.spacing.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TableOption configures a table when it is appended.
type TableOption func(*tableConfig)

type tableConfig struct {
	style  TableStyle
	header bool
}

// WithTableStyle sets the table border style. Defaults to TableGrid.
func WithTableStyle(s TableStyle) TableOption {
	return func(c *tableConfig) {
		c.style = s
	}
}

// WithHeaderRow marks row 0 as a bold header row repeated on every page.
func WithHeaderRow() TableOption {
	return func(c *tableConfig) {
		c.header = true
	}
}
