package docxgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-docxgen/internal/ooxml"
)

// BlockKind identifies the variant of a Block.
type BlockKind int

// Block kinds.
const (
	KindHeading BlockKind = iota
	KindParagraph
	KindTable
	KindPageBreak
)

// String returns the kind name.
func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	case KindPageBreak:
		return "page-break"
	}
	return "unknown"
}

// Block is one top-level element of a Document: *Heading, *Paragraph,
// *Table or *PageBreak.
//
// String returns a compact outline notation, for example
// Heading(level=1,"TEST") or Table(2x2, rows=[["H1","H2"],["v1","v2"]]).
type Block interface {
	Kind() BlockKind
	String() string

	// render converts the block to its body element.
	render(rc *renderContext) any
}

// Compile-time interface implementation checks.
var (
	_ Block = (*Heading)(nil)
	_ Block = (*Paragraph)(nil)
	_ Block = (*Table)(nil)
	_ Block = (*PageBreak)(nil)
)

// renderContext carries the document-wide values blocks need when they are
// converted to body elements.
type renderContext struct {
	contentWidth int // twentieths of a point between the margins
}

// Heading is a heading block. Level 0 is the document title.
type Heading struct {
	level   int
	text    string
	align   Alignment
	spacing *Spacing
}

// Kind implements Block.
func (h *Heading) Kind() BlockKind { return KindHeading }

// Level returns the heading level (0..9).
func (h *Heading) Level() int { return h.level }

// Text returns the heading text.
func (h *Heading) Text() string { return h.text }

// Alignment returns the heading alignment.
func (h *Heading) Alignment() Alignment { return h.align }

// String implements Block.
func (h *Heading) String() string {
	return fmt.Sprintf("Heading(level=%d,%s)", h.level, strconv.Quote(h.text))
}

func (h *Heading) render(*renderContext) any {
	props := &ooxml.ParagraphProps{Style: &ooxml.Val{Val: ooxml.HeadingStyle(h.level)}}
	applyParagraphLayout(props, h.align, h.spacing)
	p := &ooxml.Paragraph{Props: props}
	if h.text != "" {
		p.Runs = []ooxml.Run{{Content: textContent(h.text)}}
	}
	return p
}

// PageBreak forces the following content onto a new page.
type PageBreak struct{}

// Kind implements Block.
func (*PageBreak) Kind() BlockKind { return KindPageBreak }

// String implements Block.
func (*PageBreak) String() string { return "PageBreak" }

func (*PageBreak) render(*renderContext) any {
	return &ooxml.Paragraph{Runs: []ooxml.Run{{Content: []any{&ooxml.Break{Type: ooxml.BreakPage}}}}}
}

// Outline renders blocks one per line in the String notation.
func Outline(blocks []Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(blk.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// applyParagraphLayout sets alignment and spacing on paragraph properties.
func applyParagraphLayout(props *ooxml.ParagraphProps, align Alignment, spacing *Spacing) {
	if spacing != nil {
		props.Spacing = &ooxml.Spacing{
			Before: strconv.Itoa(pointsToTwips(spacing.Before)),
			After:  strconv.Itoa(pointsToTwips(spacing.After)),
		}
	}
	if jc := justification(align); jc != "" {
		props.Justify = &ooxml.Val{Val: jc}
	}
}

// justification maps an Alignment to its w:jc value.
func justification(a Alignment) string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "both"
	}
	return ""
}

// alignmentFromJustification is the inverse of justification. Unknown values
// map to AlignDefault.
func alignmentFromJustification(jc string) Alignment {
	switch jc {
	case "left", "start":
		return AlignLeft
	case "center":
		return AlignCenter
	case "right", "end":
		return AlignRight
	case "both", "distribute":
		return AlignJustify
	}
	return AlignDefault
}

func pointsToTwips(pt float64) int {
	return int(pt*20 + 0.5)
}

// textContent splits text into run content: "\n" becomes a line break and
// "\t" a tab.
func textContent(text string) []any {
	var out []any
	start := 0
	for i := 0; i < len(text); i++ {
		var sep any
		switch text[i] {
		case '\n':
			sep = &ooxml.Break{}
		case '\t':
			sep = &ooxml.Tab{}
		default:
			continue
		}
		if i > start {
			out = append(out, ooxml.NewText(text[start:i]))
		}
		out = append(out, sep)
		start = i + 1
	}
	if start < len(text) {
		out = append(out, ooxml.NewText(text[start:]))
	}
	return out
}
