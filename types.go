package docxgen

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// Alignment is the horizontal alignment of a paragraph or heading.
// The zero value inherits the alignment from the style (left for every
// built-in style).
type Alignment string

// Alignment constants.
const (
	AlignDefault Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Validate checks that a is a known alignment (case-insensitive).
func (a Alignment) Validate() error {
	switch Alignment(strings.ToLower(string(a))) {
	case AlignDefault, AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return nil
	}
	return fmt.Errorf("%w: %q (must be left, center, right, or justify)", ErrInvalidAlignment, string(a))
}

// ParseAlignment returns the canonical Alignment for s.
func ParseAlignment(s string) (Alignment, error) {
	a := Alignment(strings.ToLower(strings.TrimSpace(s)))
	if err := a.Validate(); err != nil {
		return AlignDefault, err
	}
	return a, nil
}

// Style is the paragraph style tag of a Paragraph block.
type Style string

// Paragraph style constants.
const (
	StyleNormal     Style = "Normal"
	StyleListBullet Style = "ListBullet"
	StyleListNumber Style = "ListNumber"
	StyleNoSpacing  Style = "NoSpacing"
)

// Validate checks that s is a paragraph style the document can render.
func (s Style) Validate() error {
	switch s {
	case StyleNormal, StyleListBullet, StyleListNumber, StyleNoSpacing:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidStyle, string(s))
}

// TableStyle selects the border set of a table.
type TableStyle string

// Table style constants.
const (
	TableGrid  TableStyle = "TableGrid"  // single borders on every edge
	TablePlain TableStyle = "TablePlain" // no borders
)

// Validate checks that s is a known table style.
func (s TableStyle) Validate() error {
	switch s {
	case TableGrid, TablePlain:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidTableStyle, string(s))
}

// Font size bounds in points.
const (
	MinFontSize     = 1.0
	MaxFontSize     = 1638.0
	DefaultFontSize = 11.0
)

// DefaultFont is the document font when none is configured.
const DefaultFont = "Calibri"

// validateFontSize checks pt is within bounds and representable in
// half-points.
func validateFontSize(pt float64) error {
	if math.IsNaN(pt) || pt < MinFontSize || pt > MaxFontSize {
		return fmt.Errorf("%w: %g (must be between %g and %g)", ErrInvalidFontSize, pt, MinFontSize, MaxFontSize)
	}
	if pt*2 != math.Trunc(pt*2) {
		return fmt.Errorf("%w: %g (must be a multiple of 0.5)", ErrInvalidFontSize, pt)
	}
	return nil
}

// halfPoints converts a validated point size to the OOXML unit.
func halfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

var hexColorPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// normalizeColor validates a "#RRGGBB" or "RRGGBB" color and returns it as
// upper-case "RRGGBB".
func normalizeColor(color string) (string, error) {
	if !hexColorPattern.MatchString(color) {
		return "", fmt.Errorf("%w: %q (must be #RRGGBB)", ErrInvalidColor, color)
	}
	return strings.ToUpper(strings.TrimPrefix(color, "#")), nil
}

// Spacing sets the space before and after a paragraph, in points.
type Spacing struct {
	Before float64
	After  float64
}

// MaxSpacing is the largest accepted paragraph spacing in points.
const MaxSpacing = 1584.0

// Validate checks that both values are within 0..MaxSpacing.
// Returns nil if s is nil (nil means use the style's spacing).
func (s *Spacing) Validate() error {
	if s == nil {
		return nil
	}
	for _, v := range []float64{s.Before, s.After} {
		if math.IsNaN(v) || v < 0 || v > MaxSpacing {
			return fmt.Errorf("%w: %g (must be between 0 and %g)", ErrInvalidSpacing, v, MaxSpacing)
		}
	}
	return nil
}

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 1.0
)

// PageSettings configures page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults). Empty size and
// orientation and a zero margin also mean the default.
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case "", PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case "", OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// dimensions returns the page width and height in twentieths of a point,
// swapped for landscape.
func (p *PageSettings) dimensions() (w, h int) {
	switch strings.ToLower(p.Size) {
	case PageSizeA4:
		w, h = 11906, 16838
	case PageSizeLegal:
		w, h = 12240, 20160
	default:
		w, h = 12240, 15840
	}
	if strings.ToLower(p.Orientation) == OrientationLandscape {
		w, h = h, w
	}
	return w, h
}

// marginTwips returns the margin in twentieths of a point.
func (p *PageSettings) marginTwips() int {
	margin := p.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	return int(math.Round(margin * 1440))
}

// Footer configures the page footer repeated at the bottom of every page.
type Footer struct {
	Text           string    // one footer line per "\n"-separated segment
	Align          Alignment // default: center
	Italic         bool
	ShowPageNumber bool
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	if err := checkText(f.Text); err != nil {
		return fmt.Errorf("footer: %w", err)
	}
	return f.Align.Validate()
}

// Metadata is written to the document's core properties.
type Metadata struct {
	Title       string
	Subject     string
	Author      string
	Keywords    []string
	Description string
	Language    string // e.g. "tr-TR"
}

func (m *Metadata) validate() error {
	if err := checkTexts(m.Title, m.Subject, m.Author, m.Description, m.Language); err != nil {
		return fmt.Errorf("metadata: %w", err)
	}
	if err := checkTexts(m.Keywords...); err != nil {
		return fmt.Errorf("metadata: %w", err)
	}
	return nil
}

// Cell is the content of one table cell.
type Cell struct {
	Text string
	Bold bool
}

// creationTime is the default creation timestamp, truncated to whole seconds
// so it survives the core properties round trip unchanged.
func creationTime(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Second)
}
