package markdown

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-docxgen"
)

// ErrConvert indicates the Markdown could not be appended to the document.
var ErrConvert = errors.New("markdown conversion failed")

// Defaults for code rendering.
const (
	DefaultCodeFont  = "Consolas"
	DefaultCodeStyle = "github"
)

// Checkbox prefixes for GFM task list items.
const (
	taskDone = "☑ "
	taskOpen = "☐ "
)

// Converter appends Markdown to documents. It is safe for concurrent use.
type Converter struct {
	md           goldmark.Markdown
	codeFont     string
	codeStyle    *chroma.Style
	titleHeading bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithCodeFont sets the font of code spans and code blocks.
func WithCodeFont(name string) Option {
	return func(c *Converter) {
		if name = strings.TrimSpace(name); name != "" {
			c.codeFont = name
		}
	}
}

// WithCodeStyle selects the chroma style used to colour code blocks. Unknown
// names fall back to chroma's default style.
func WithCodeStyle(name string) Option {
	return func(c *Converter) {
		c.codeStyle = styles.Get(name)
	}
}

// WithTitleHeading renders the first level-1 heading as the document Title
// (heading level 0).
func WithTitleHeading() Option {
	return func(c *Converter) { c.titleHeading = true }
}

// New creates a Converter with GFM extensions.
func New(opts ...Option) *Converter {
	c := &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM, // Tables, strikethrough, autolinks, task lists
			),
		),
		codeFont:  DefaultCodeFont,
		codeStyle: styles.Get(DefaultCodeStyle),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses src and appends its blocks to doc. Cancellation is checked
// between top-level blocks; on error doc may hold the blocks appended so far.
func (c *Converter) Convert(ctx context.Context, src []byte, doc *docxgen.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src = preprocess(src)
	root := c.md.Parser().Parse(text.NewReader(src))

	w := &walker{c: c, src: src, doc: doc}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.block(n, false); err != nil {
			return fmt.Errorf("%w: %v", ErrConvert, err)
		}
	}
	return nil
}

// walker holds per-conversion state.
type walker struct {
	c         *Converter
	src       []byte
	doc       *docxgen.Document
	seenTitle bool
}

func (w *walker) block(n ast.Node, quoted bool) error {
	switch n := n.(type) {
	case *ast.Heading:
		return w.heading(n)
	case *ast.Paragraph, *ast.TextBlock:
		p, err := w.doc.AddParagraph("")
		if err != nil {
			return err
		}
		return w.fill(p, n, quoted, "")
	case *ast.List:
		return w.list(n, quoted)
	case *ast.ThematicBreak:
		w.doc.AddPageBreak()
		return nil
	case *ast.FencedCodeBlock:
		return w.c.addCode(w.doc, string(n.Language(w.src)), w.lines(n))
	case *ast.CodeBlock:
		return w.c.addCode(w.doc, "", w.lines(n))
	case *ast.Blockquote:
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			if err := w.block(child, true); err != nil {
				return err
			}
		}
		return nil
	case *east.Table:
		return w.table(n)
	case *ast.HTMLBlock:
		return nil
	default:
		// Unknown containers: convert their children.
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			if err := w.block(child, quoted); err != nil {
				return err
			}
		}
		return nil
	}
}

func (w *walker) heading(n *ast.Heading) error {
	level := n.Level
	if w.c.titleHeading && level == 1 && !w.seenTitle {
		level = 0
		w.seenTitle = true
	}
	_, err := w.doc.AddHeading(w.plain(n), level)
	return err
}

func (w *walker) list(n *ast.List, quoted bool) error {
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		added := false
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			switch child.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				if added {
					// Continuation paragraphs of a loose item.
					if err := w.block(child, quoted); err != nil {
						return err
					}
					continue
				}
				if err := w.listItem(n.IsOrdered(), child, quoted); err != nil {
					return err
				}
				added = true
			default:
				if err := w.block(child, quoted); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (w *walker) listItem(ordered bool, n ast.Node, quoted bool) error {
	var (
		p   *docxgen.Paragraph
		err error
	)
	if ordered {
		p, err = w.doc.AddNumberedItem("")
	} else {
		p, err = w.doc.AddBulletItem("")
	}
	if err != nil {
		return err
	}

	prefix := ""
	if box, ok := n.FirstChild().(*east.TaskCheckBox); ok {
		prefix = taskOpen
		if box.IsChecked {
			prefix = taskDone
		}
	}
	return w.fill(p, n, quoted, prefix)
}

func (w *walker) table(n *east.Table) error {
	var rows [][]string
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, w.plain(cell))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return nil
	}
	opts := []docxgen.TableOption{}
	if _, ok := n.FirstChild().(*east.TableHeader); ok {
		opts = append(opts, docxgen.WithHeaderRow())
	}
	_, err := w.doc.AddTableFromRows(rows, opts...)
	return err
}

// lines returns the raw content of a code block without its final newline.
func (w *walker) lines(n ast.Node) string {
	var b strings.Builder
	segs := n.Lines()
	for i := range segs.Len() {
		seg := segs.At(i)
		b.Write(seg.Value(w.src))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// span is a run of text with uniform formatting.
type span struct {
	text   string
	bold   bool
	italic bool
	code   bool
	strike bool
}

func (s span) sameFormat(o span) bool {
	return s.bold == o.bold && s.italic == o.italic && s.code == o.code && s.strike == o.strike
}

// fill appends the inline content of n to p as runs.
func (w *walker) fill(p *docxgen.Paragraph, n ast.Node, quoted bool, prefix string) error {
	spans := w.spans(n, span{italic: quoted}, nil)
	if prefix != "" {
		if len(spans) > 0 {
			spans[0].text = strings.TrimLeft(spans[0].text, " ")
		}
		spans = append([]span{{text: prefix, italic: quoted}}, spans...)
	}
	for _, s := range mergeSpans(spans) {
		r := p.AddRun(s.text).SetBold(s.bold).SetItalic(s.italic)
		if s.code {
			if err := r.SetFont(w.c.codeFont); err != nil {
				return err
			}
		}
		if s.strike {
			// No strike property on runs; grey marks removed text.
			if err := r.SetColor("808080"); err != nil {
				return err
			}
		}
	}
	return nil
}

// spans flattens the inline children of n, inheriting the format of cur.
func (w *walker) spans(n ast.Node, cur span, out []span) []span {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			s := cur
			s.text = w.text(c, cur.code)
			switch {
			case c.HardLineBreak():
				s.text += "\n"
			case c.SoftLineBreak():
				s.text += " "
			}
			out = append(out, s)
		case *ast.String:
			s := cur
			s.text = string(c.Value)
			out = append(out, s)
		case *ast.Emphasis:
			s := cur
			if c.Level >= 2 {
				s.bold = true
			} else {
				s.italic = true
			}
			out = w.spans(c, s, out)
		case *ast.CodeSpan:
			s := cur
			s.code = true
			out = w.spans(c, s, out)
		case *east.Strikethrough:
			s := cur
			s.strike = true
			out = w.spans(c, s, out)
		case *ast.AutoLink:
			s := cur
			s.text = string(c.Label(w.src))
			out = append(out, s)
		case *east.TaskCheckBox, *ast.RawHTML:
			// Checkboxes become a prefix; raw HTML is dropped.
		default:
			// Links, images and anything else contribute their text.
			out = w.spans(c, cur, out)
		}
	}
	return out
}

// text returns the content of a text node. Outside code spans, backslash
// escapes and entity references are decoded the way goldmark's HTML writer
// does it.
func (w *walker) text(n *ast.Text, code bool) string {
	v := n.Segment.Value(w.src)
	if code || n.IsRaw() {
		return string(v)
	}
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	v = util.ResolveEntityNames(v)
	return string(v)
}

// mergeSpans joins neighbours with the same format and drops empty spans.
func mergeSpans(in []span) []span {
	var out []span
	for _, s := range in {
		if s.text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].sameFormat(s) {
			out[n-1].text += s.text
			continue
		}
		out = append(out, s)
	}
	if n := len(out); n > 0 {
		out[n-1].text = strings.TrimRight(out[n-1].text, " ")
		if out[n-1].text == "" {
			out = out[:n-1]
		}
	}
	return out
}

// plain returns the concatenated text of n's inline content.
func (w *walker) plain(n ast.Node) string {
	var b strings.Builder
	for _, s := range w.spans(n, span{}, nil) {
		b.WriteString(s.text)
	}
	return strings.TrimSpace(b.String())
}
