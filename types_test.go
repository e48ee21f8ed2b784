package docxgen

// Notes:
// - PageSettings: tests validation for size, orientation, and margin boundaries
// - Footer: tests alignment validation
// - Alignment/Style/TableStyle: tests the enumerations and case handling
// - Spacing, font size, color: tests value bounds and normalization
// - Every validation error must also match the ErrValidation umbrella

import (
	"errors"
	"math"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPageSettings_Validate - PageSettings Validation
// ---------------------------------------------------------------------------

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ps      *PageSettings
		wantErr error
	}{
		{
			name:    "nil is valid (use defaults)",
			ps:      nil,
			wantErr: nil,
		},
		{
			name: "valid letter portrait",
			ps: &PageSettings{
				Size:        PageSizeLetter,
				Orientation: OrientationPortrait,
				Margin:      DefaultMargin,
			},
			wantErr: nil,
		},
		{
			name: "valid a4 landscape",
			ps: &PageSettings{
				Size:        PageSizeA4,
				Orientation: OrientationLandscape,
				Margin:      1.5,
			},
			wantErr: nil,
		},
		{
			name: "case insensitive size",
			ps: &PageSettings{
				Size:        "A4",
				Orientation: OrientationPortrait,
				Margin:      DefaultMargin,
			},
			wantErr: nil,
		},
		{
			name: "margin at minimum",
			ps: &PageSettings{
				Size:        PageSizeLegal,
				Orientation: OrientationPortrait,
				Margin:      MinMargin,
			},
			wantErr: nil,
		},
		{
			name: "margin at maximum",
			ps: &PageSettings{
				Size:        PageSizeLetter,
				Orientation: OrientationPortrait,
				Margin:      MaxMargin,
			},
			wantErr: nil,
		},
		{
			name: "invalid page size",
			ps: &PageSettings{
				Size:        "tabloid",
				Orientation: OrientationPortrait,
				Margin:      DefaultMargin,
			},
			wantErr: ErrInvalidPageSize,
		},
		{
			name: "invalid orientation",
			ps: &PageSettings{
				Size:        PageSizeLetter,
				Orientation: "diagonal",
				Margin:      DefaultMargin,
			},
			wantErr: ErrInvalidOrientation,
		},
		{
			name: "margin below minimum",
			ps: &PageSettings{
				Size:        PageSizeLetter,
				Orientation: OrientationPortrait,
				Margin:      0.1,
			},
			wantErr: ErrInvalidMargin,
		},
		{
			name: "margin above maximum",
			ps: &PageSettings{
				Size:        PageSizeLetter,
				Orientation: OrientationPortrait,
				Margin:      5.0,
			},
			wantErr: ErrInvalidMargin,
		},
		{
			name: "margin negative",
			ps: &PageSettings{
				Size:        PageSizeLetter,
				Orientation: OrientationPortrait,
				Margin:      -1.0,
			},
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "all empty values valid (all use defaults)",
			ps:      &PageSettings{},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.ps.Validate()

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error = %v, want it to wrap ErrValidation", err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPageSettings_Dimensions - Page geometry in twips
// ---------------------------------------------------------------------------

func TestPageSettings_Dimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ps         PageSettings
		wantW      int
		wantH      int
		wantMargin int
	}{
		{"letter default margin", PageSettings{}, 12240, 15840, 1440},
		{"a4 portrait", PageSettings{Size: "a4", Margin: 0.5}, 11906, 16838, 720},
		{"a4 landscape swaps sides", PageSettings{Size: "A4", Orientation: "Landscape", Margin: 1}, 16838, 11906, 1440},
		{"legal", PageSettings{Size: PageSizeLegal, Margin: 0.25}, 12240, 20160, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, h := tt.ps.dimensions()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("dimensions() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			if got := tt.ps.marginTwips(); got != tt.wantMargin {
				t.Errorf("marginTwips() = %d, want %d", got, tt.wantMargin)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFooter_Validate - Footer Validation
// ---------------------------------------------------------------------------

func TestFooter_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		footer  *Footer
		wantErr error
	}{
		{"nil is valid (no footer)", nil, nil},
		{"empty alignment", &Footer{Text: "x"}, nil},
		{"center", &Footer{Align: AlignCenter}, nil},
		{"upper case right", &Footer{Align: "RIGHT"}, nil},
		{"invalid alignment", &Footer{Align: "middle"}, ErrInvalidAlignment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.footer.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseAlignment - Alignment parsing
// ---------------------------------------------------------------------------

func TestParseAlignment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Alignment
		wantErr bool
	}{
		{"", AlignDefault, false},
		{"left", AlignLeft, false},
		{" Center ", AlignCenter, false},
		{"RIGHT", AlignRight, false},
		{"justify", AlignJustify, false},
		{"both", AlignDefault, true},
		{"middle", AlignDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseAlignment(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAlignment(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidAlignment) {
			t.Errorf("ParseAlignment(%q) error = %v, want ErrInvalidAlignment", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseAlignment(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestStyle_Validate / TestTableStyle_Validate - Style enumerations
// ---------------------------------------------------------------------------

func TestStyle_Validate(t *testing.T) {
	t.Parallel()

	for _, s := range []Style{StyleNormal, StyleListBullet, StyleListNumber, StyleNoSpacing} {
		if err := s.Validate(); err != nil {
			t.Errorf("Style(%q).Validate() = %v, want nil", s, err)
		}
	}
	for _, s := range []Style{"", "Heading1", "listbullet"} {
		if err := s.Validate(); !errors.Is(err, ErrInvalidStyle) {
			t.Errorf("Style(%q).Validate() = %v, want ErrInvalidStyle", s, err)
		}
	}
}

func TestTableStyle_Validate(t *testing.T) {
	t.Parallel()

	if err := TableGrid.Validate(); err != nil {
		t.Errorf("TableGrid.Validate() = %v", err)
	}
	if err := TablePlain.Validate(); err != nil {
		t.Errorf("TablePlain.Validate() = %v", err)
	}
	if err := TableStyle("Fancy").Validate(); !errors.Is(err, ErrInvalidTableStyle) {
		t.Errorf("TableStyle(Fancy).Validate() = %v, want ErrInvalidTableStyle", err)
	}
}

// ---------------------------------------------------------------------------
// TestSpacing_Validate - Paragraph spacing bounds
// ---------------------------------------------------------------------------

func TestSpacing_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		s       *Spacing
		wantErr bool
	}{
		{"nil", nil, false},
		{"zero", &Spacing{}, false},
		{"typical", &Spacing{Before: 12, After: 6}, false},
		{"at maximum", &Spacing{Before: MaxSpacing, After: MaxSpacing}, false},
		{"negative before", &Spacing{Before: -1}, true},
		{"after too large", &Spacing{After: MaxSpacing + 1}, true},
		{"NaN", &Spacing{Before: math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.s.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSpacing) {
					t.Errorf("Validate() = %v, want ErrInvalidSpacing", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateFontSize - Font size bounds
// ---------------------------------------------------------------------------

func TestValidateFontSize(t *testing.T) {
	t.Parallel()

	valid := []float64{MinFontSize, 9, 10.5, DefaultFontSize, 24, MaxFontSize}
	for _, pt := range valid {
		if err := validateFontSize(pt); err != nil {
			t.Errorf("validateFontSize(%g) = %v, want nil", pt, err)
		}
	}

	invalid := []float64{0, -2, 0.5, 10.25, MaxFontSize + 1, math.NaN()}
	for _, pt := range invalid {
		if err := validateFontSize(pt); !errors.Is(err, ErrInvalidFontSize) {
			t.Errorf("validateFontSize(%g) = %v, want ErrInvalidFontSize", pt, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestNormalizeColor - Hex color normalization
// ---------------------------------------------------------------------------

func TestNormalizeColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"#ff0000", "FF0000", false},
		{"1f4e79", "1F4E79", false},
		{"#ABCDEF", "ABCDEF", false},
		{"", "", true},
		{"#fff", "", true},
		{"red", "", true},
		{"#GG0000", "", true},
		{"##ff0000", "", true},
	}

	for _, tt := range tests {
		got, err := normalizeColor(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("normalizeColor(%q) error = %v, want ErrInvalidColor", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("normalizeColor(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeColor(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
