package docxgen

// Notes:
// - Run handles: formatting applies to the handle's run only
// - Rendering: run properties and text content (breaks, tabs) in the OOXML tree

import (
	"errors"
	"testing"

	"github.com/alnah/go-docxgen/internal/ooxml"
)

// ---------------------------------------------------------------------------
// TestRun_Setters - Handle-based formatting
// ---------------------------------------------------------------------------

func TestRun_Setters(t *testing.T) {
	t.Parallel()

	p := &Paragraph{style: StyleNormal}
	first := p.AddRun("• Name: ").SetBold(true)
	second := p.AddRun("description")

	if err := second.SetSize(9); err != nil {
		t.Fatalf("SetSize() error = %v", err)
	}
	if err := second.SetColor("#1f4e79"); err != nil {
		t.Fatalf("SetColor() error = %v", err)
	}
	if err := second.SetFont("Consolas"); err != nil {
		t.Fatalf("SetFont() error = %v", err)
	}
	second.SetItalic(true)

	if !first.Bold() || first.Italic() || first.Size() != 0 || first.Color() != "" || first.Font() != "" {
		t.Errorf("first run changed by formatting the second: %v", first)
	}
	if second.Bold() || !second.Italic() || second.Size() != 9 || second.Color() != "1F4E79" || second.Font() != "Consolas" {
		t.Errorf("second run = %v", second)
	}
	if p.Text() != "• Name: description" {
		t.Errorf("Text() = %q", p.Text())
	}

	want := `Run("description", italic, 9pt, #1F4E79, font="Consolas")`
	if got := second.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestRun_SetterErrors(t *testing.T) {
	t.Parallel()

	r := (&Paragraph{}).AddRun("x")
	if err := r.SetSize(0); !errors.Is(err, ErrInvalidFontSize) {
		t.Errorf("SetSize(0) = %v, want ErrInvalidFontSize", err)
	}
	if err := r.SetColor("blue"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("SetColor(blue) = %v, want ErrInvalidColor", err)
	}
	if err := r.SetFont(" "); !errors.Is(err, ErrEmptyFont) {
		t.Errorf("SetFont(blank) = %v, want ErrEmptyFont", err)
	}
	if r.Size() != 0 || r.Color() != "" || r.Font() != "" {
		t.Errorf("failed setters modified the run: %v", r)
	}
}

// ---------------------------------------------------------------------------
// TestParagraph_Setters - Alignment and spacing
// ---------------------------------------------------------------------------

func TestParagraph_Setters(t *testing.T) {
	t.Parallel()

	p := &Paragraph{style: StyleNormal}
	if err := p.SetAlignment("CENTER"); err != nil {
		t.Fatal(err)
	}
	if p.Alignment() != AlignCenter {
		t.Errorf("Alignment() = %q", p.Alignment())
	}
	if err := p.SetAlignment("sideways"); !errors.Is(err, ErrInvalidAlignment) {
		t.Errorf("SetAlignment(sideways) = %v, want ErrInvalidAlignment", err)
	}
	if p.Alignment() != AlignCenter {
		t.Error("failed SetAlignment changed the alignment")
	}

	if err := p.SetSpacing(Spacing{Before: 6, After: 0}); err != nil {
		t.Fatal(err)
	}
	if err := p.SetSpacing(Spacing{Before: -6}); !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("SetSpacing(-6) = %v, want ErrInvalidSpacing", err)
	}
	if s := p.Spacing(); s == nil || s.Before != 6 {
		t.Errorf("Spacing() = %v, want Before 6", s)
	}
}

// ---------------------------------------------------------------------------
// TestParagraph_String - Outline notation per style
// ---------------------------------------------------------------------------

func TestParagraph_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style Style
		want  string
	}{
		{StyleNormal, `Paragraph("x")`},
		{StyleListBullet, `BulletParagraph("x")`},
		{StyleListNumber, `NumberedParagraph("x")`},
		{StyleNoSpacing, `Paragraph(style=NoSpacing,"x")`},
	}
	for _, tt := range tests {
		p := &Paragraph{style: tt.style}
		p.AddRun("x")
		if got := p.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestParagraph_Render - OOXML conversion
// ---------------------------------------------------------------------------

func TestParagraph_Render(t *testing.T) {
	t.Parallel()

	t.Run("normal paragraph has no properties", func(t *testing.T) {
		t.Parallel()

		p := &Paragraph{style: StyleNormal}
		p.AddRun("plain")
		out := p.render(&renderContext{}).(*ooxml.Paragraph)
		if out.Props != nil {
			t.Errorf("Props = %+v, want nil", out.Props)
		}
		if len(out.Runs) != 1 || out.Runs[0].Props != nil {
			t.Errorf("Runs = %+v", out.Runs)
		}
	})

	t.Run("style alignment spacing", func(t *testing.T) {
		t.Parallel()

		p := &Paragraph{style: StyleListBullet, align: AlignJustify, spacing: &Spacing{Before: 0, After: 6}}
		out := p.render(&renderContext{}).(*ooxml.Paragraph)
		if out.Props == nil || out.Props.Style.Val != "ListBullet" {
			t.Fatalf("Props = %+v", out.Props)
		}
		if out.Props.Justify.Val != "both" {
			t.Errorf("jc = %q, want both", out.Props.Justify.Val)
		}
		if out.Props.Spacing.Before != "0" || out.Props.Spacing.After != "120" {
			t.Errorf("spacing = %+v, want 0/120 twips", out.Props.Spacing)
		}
	})

	t.Run("run formatting and content", func(t *testing.T) {
		t.Parallel()

		p := &Paragraph{style: StyleNoSpacing}
		r := p.AddRun("a\tb\nc").SetBold(true)
		_ = r.SetSize(24)
		_ = r.SetColor("FF0000")

		out := p.render(&renderContext{}).(*ooxml.Paragraph)
		run := out.Runs[0]
		if run.Props == nil || run.Props.Bold == nil || run.Props.Size.Val != "48" || run.Props.Color.Val != "FF0000" {
			t.Errorf("run props = %+v", run.Props)
		}
		if len(run.Content) != 5 {
			t.Fatalf("content has %d items, want 5", len(run.Content))
		}
		if _, ok := run.Content[1].(*ooxml.Tab); !ok {
			t.Errorf("content[1] = %T, want *ooxml.Tab", run.Content[1])
		}
		if br, ok := run.Content[3].(*ooxml.Break); !ok || br.Type != "" {
			t.Errorf("content[3] = %#v, want line break", run.Content[3])
		}
	})
}

// ---------------------------------------------------------------------------
// TestTextContent - Text splitting
// ---------------------------------------------------------------------------

func TestTextContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 1},
		{"\n", 1},
		{"a\n", 2},
		{"\ta", 2},
		{"a\n\nb", 4},
	}
	for _, tt := range tests {
		if got := len(textContent(tt.input)); got != tt.want {
			t.Errorf("textContent(%q) has %d items, want %d", tt.input, got, tt.want)
		}
	}
}
