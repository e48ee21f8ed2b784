package docxgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-docxgen/internal/ooxml"
)

// Paragraph is a paragraph block made of zero or more runs. It is returned
// by Document.AddParagraph and the list helpers; format its text through the
// Run handles returned by AddRun.
type Paragraph struct {
	style   Style
	align   Alignment
	spacing *Spacing
	runs    []*Run
}

// Kind implements Block.
func (p *Paragraph) Kind() BlockKind { return KindParagraph }

// Style returns the paragraph style tag.
func (p *Paragraph) Style() Style { return p.style }

// Alignment returns the paragraph alignment.
func (p *Paragraph) Alignment() Alignment { return p.align }

// Spacing returns the explicit spacing, or nil when the style's spacing applies.
func (p *Paragraph) Spacing() *Spacing {
	if p.spacing == nil {
		return nil
	}
	s := *p.spacing
	return &s
}

// SetAlignment changes the paragraph alignment.
func (p *Paragraph) SetAlignment(a Alignment) error {
	align, err := ParseAlignment(string(a))
	if err != nil {
		return err
	}
	p.align = align
	return nil
}

// SetSpacing sets the space before and after the paragraph, in points.
func (p *Paragraph) SetSpacing(s Spacing) error {
	if err := s.Validate(); err != nil {
		return err
	}
	p.spacing = &s
	return nil
}

// AddRun appends a run of text and returns its handle. Newlines in text
// become line breaks, tabs become tab stops. Invalid UTF-8 and characters
// XML cannot hold (NUL, other C0 controls except tab, newline and carriage
// return) are replaced with U+FFFD, so Text returns what a saved document
// reads back.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{text: sanitizeText(text)}
	p.runs = append(p.runs, r)
	return r
}

// Runs returns the paragraph's runs in order. The slice is a copy; the
// handles are live.
func (p *Paragraph) Runs() []*Run {
	return append([]*Run(nil), p.runs...)
}

// Text concatenates the text of every run.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.runs {
		b.WriteString(r.text)
	}
	return b.String()
}

// String implements Block.
func (p *Paragraph) String() string {
	text := strconv.Quote(p.Text())
	switch p.style {
	case StyleListBullet:
		return "BulletParagraph(" + text + ")"
	case StyleListNumber:
		return "NumberedParagraph(" + text + ")"
	case StyleNoSpacing:
		return "Paragraph(style=NoSpacing," + text + ")"
	}
	return "Paragraph(" + text + ")"
}

func (p *Paragraph) render(*renderContext) any {
	props := &ooxml.ParagraphProps{}
	if p.style != StyleNormal {
		props.Style = &ooxml.Val{Val: string(p.style)}
	}
	applyParagraphLayout(props, p.align, p.spacing)

	out := &ooxml.Paragraph{}
	if *props != (ooxml.ParagraphProps{}) {
		out.Props = props
	}
	for _, r := range p.runs {
		out.Runs = append(out.Runs, r.render())
	}
	return out
}

// Run is a span of uniformly formatted text inside a Paragraph. The zero
// formatting inherits everything from the paragraph style.
type Run struct {
	text   string
	bold   bool
	italic bool
	size   float64 // points; 0 = inherit
	color  string  // RRGGBB; "" = inherit
	font   string  // "" = inherit
}

// Text returns the run text.
func (r *Run) Text() string { return r.text }

// Bold reports whether the run is bold.
func (r *Run) Bold() bool { return r.bold }

// Italic reports whether the run is italic.
func (r *Run) Italic() bool { return r.italic }

// Size returns the font size in points, or 0 when inherited.
func (r *Run) Size() float64 { return r.size }

// Color returns the text color as RRGGBB, or "" when inherited.
func (r *Run) Color() string { return r.color }

// Font returns the font family, or "" when inherited.
func (r *Run) Font() string { return r.font }

// SetBold sets bold and returns r for chaining.
func (r *Run) SetBold(on bool) *Run {
	r.bold = on
	return r
}

// SetItalic sets italic and returns r for chaining.
func (r *Run) SetItalic(on bool) *Run {
	r.italic = on
	return r
}

// SetSize sets the font size in points. Sizes must be multiples of 0.5
// between MinFontSize and MaxFontSize.
func (r *Run) SetSize(pt float64) error {
	if err := validateFontSize(pt); err != nil {
		return err
	}
	r.size = pt
	return nil
}

// SetColor sets the text color from "#RRGGBB" or "RRGGBB".
func (r *Run) SetColor(color string) error {
	c, err := normalizeColor(color)
	if err != nil {
		return err
	}
	r.color = c
	return nil
}

// SetFont sets the font family for this run only.
func (r *Run) SetFont(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyFont
	}
	r.font = name
	return nil
}

// String describes the run and its formatting, e.g. Run("x", bold, 24pt).
func (r *Run) String() string {
	parts := []string{strconv.Quote(r.text)}
	if r.bold {
		parts = append(parts, "bold")
	}
	if r.italic {
		parts = append(parts, "italic")
	}
	if r.size != 0 {
		parts = append(parts, strconv.FormatFloat(r.size, 'f', -1, 64)+"pt")
	}
	if r.color != "" {
		parts = append(parts, "#"+r.color)
	}
	if r.font != "" {
		parts = append(parts, fmt.Sprintf("font=%q", r.font))
	}
	return "Run(" + strings.Join(parts, ", ") + ")"
}

func (r *Run) props() *ooxml.RunProps {
	var props ooxml.RunProps
	set := false
	if r.font != "" {
		props.Fonts = ooxml.AllFonts(r.font)
		set = true
	}
	if r.bold {
		props.Bold = &ooxml.Empty{}
		set = true
	}
	if r.italic {
		props.Italic = &ooxml.Empty{}
		set = true
	}
	if r.color != "" {
		props.Color = &ooxml.Val{Val: r.color}
		set = true
	}
	if r.size != 0 {
		hp := strconv.Itoa(halfPoints(r.size))
		props.Size = &ooxml.Val{Val: hp}
		props.SizeCS = &ooxml.Val{Val: hp}
		set = true
	}
	if !set {
		return nil
	}
	return &props
}

func (r *Run) render() ooxml.Run {
	return ooxml.Run{Props: r.props(), Content: textContent(r.text)}
}
