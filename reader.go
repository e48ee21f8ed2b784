package docxgen

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/alnah/go-docxgen/internal/ooxml"
)

// ReadFile parses a .docx file from the local filesystem. See Read.
func ReadFile(path string) (*Document, error) {
	return ReadFS(afero.NewOsFs(), path)
}

// ReadFS parses a .docx file from fs. See Read.
func ReadFS(fs afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDocument, err)
	}
	return Read(bytes.NewReader(data), int64(len(data)))
}

// Read rebuilds a Document from a WordprocessingML package. It recovers the
// block structure: headings (Title, Heading1..9), paragraphs with their list
// or NoSpacing style, run formatting, tables and page breaks, plus the core
// metadata, the default font and size, and the footer. Unknown paragraph
// styles read as Normal; page layout is not recovered.
func Read(r io.ReaderAt, size int64) (*Document, error) {
	pkg, err := ooxml.ReadPackage(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDocument, err)
	}

	var keywords []string
	for k := range strings.SplitSeq(pkg.Core.Keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}

	opts := []Option{WithMetadata(Metadata{
		Title:       pkg.Core.Title,
		Subject:     pkg.Core.Subject,
		Author:      pkg.Core.Author,
		Keywords:    keywords,
		Description: pkg.Core.Description,
		Language:    pkg.Core.Language,
	})}
	if pkg.Core.Identifier != "" {
		opts = append(opts, WithIdentifier(pkg.Core.Identifier))
	}
	if pkg.DefaultFont != "" {
		opts = append(opts, WithFont(pkg.DefaultFont))
	}
	if pt := float64(pkg.DefaultHalfPts) / 2; pt > 0 && validateFontSize(pt) == nil {
		opts = append(opts, WithFontSize(pt))
	}
	if pkg.Footer != nil {
		opts = append(opts, WithFooter(footerFromParsed(pkg.Footer)))
	}
	doc, err := NewDocument(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDocument, err)
	}

	for _, el := range pkg.Body {
		switch {
		case el.Paragraph != nil:
			doc.appendBlock(paragraphBlock(el.Paragraph))
		case el.Table != nil:
			if t := tableBlock(el.Table); t != nil {
				doc.appendBlock(t)
			}
		}
	}
	return doc, nil
}

// headingLevel returns the level for a heading style ID, or -1.
func headingLevel(style string) int {
	if style == ooxml.StyleTitle {
		return 0
	}
	rest, ok := strings.CutPrefix(style, "Heading")
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > MaxHeadingLevel {
		return -1
	}
	return n
}

func paragraphBlock(p *ooxml.ParsedParagraph) Block {
	if p.IsPageBreak() {
		return &PageBreak{}
	}

	align := alignmentFromJustification(p.Justify)
	spacing := parseSpacing(p.SpacingBefore, p.SpacingAfter)

	if level := headingLevel(p.Style); level >= 0 {
		return &Heading{level: level, text: p.Text(), align: align, spacing: spacing}
	}

	style := Style(p.Style)
	if style.Validate() != nil {
		style = StyleNormal
	}
	out := &Paragraph{style: style, align: align, spacing: spacing}
	for _, pr := range p.Runs {
		if pr.Text == "" {
			continue
		}
		out.runs = append(out.runs, runFromParsed(pr))
	}
	return out
}

// footerFromParsed reverses renderFooter: text paragraphs become lines, a
// PAGE field paragraph turns the page number on. Alignment and italics come
// from the first paragraph.
func footerFromParsed(paragraphs []ooxml.ParsedParagraph) *Footer {
	f := &Footer{Align: alignmentFromJustification(paragraphs[0].Justify)}
	var lines []string
	for _, p := range paragraphs {
		if p.HasPageField() {
			f.ShowPageNumber = true
		} else {
			lines = append(lines, p.Text())
		}
		for _, r := range p.Runs {
			if r.Italic {
				f.Italic = true
			}
		}
	}
	f.Text = strings.Join(lines, "\n")
	return f
}

func runFromParsed(pr ooxml.ParsedRun) *Run {
	r := &Run{text: pr.Text, bold: pr.Bold, italic: pr.Italic}
	if pr.HalfPts > 0 {
		_ = r.SetSize(float64(pr.HalfPts) / 2)
	}
	if pr.Color != "" {
		_ = r.SetColor(pr.Color)
	}
	if pr.Font != "" {
		_ = r.SetFont(pr.Font)
	}
	return r
}

// parseSpacing converts twentieths of a point back to points. Spacing is
// recovered only when both sides are set, which is how it is written.
func parseSpacing(before, after string) *Spacing {
	if before == "" || after == "" {
		return nil
	}
	b, errB := strconv.Atoi(before)
	a, errA := strconv.Atoi(after)
	if errB != nil || errA != nil {
		return nil
	}
	s := &Spacing{Before: float64(b) / 20, After: float64(a) / 20}
	if s.Validate() != nil {
		return nil
	}
	return s
}

func tableBlock(pt *ooxml.ParsedTable) *Table {
	cols := 0
	for _, row := range pt.Rows {
		cols = max(cols, len(row))
	}
	if len(pt.Rows) == 0 || cols == 0 {
		return nil
	}

	style := TableGrid
	if pt.Style == "" || pt.Style == ooxml.StyleTableNone {
		style = TablePlain
	}

	t := &Table{rows: len(pt.Rows), cols: cols, style: style, header: pt.HeaderRow}
	t.cells = make([][]Cell, t.rows)
	for i, row := range pt.Rows {
		t.cells[i] = make([]Cell, cols)
		for j, c := range row {
			t.cells[i][j] = Cell{Text: c.Text(), Bold: c.Bold()}
		}
	}
	return t
}
