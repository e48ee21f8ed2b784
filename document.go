package docxgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-docxgen/internal/ooxml"
)

// MaxHeadingLevel is the deepest heading level. Level 0 is the title.
const MaxHeadingLevel = ooxml.MaxHeadingLevel

// Document is an in-memory word-processing document: an append-only
// sequence of blocks plus document-wide settings. Create with NewDocument,
// append blocks in reading order, then call Save.
//
// A Document is not safe for concurrent use. Independent documents may be
// built in parallel.
type Document struct {
	cfg    documentConfig
	blocks []Block
}

// NewDocument creates an empty document. Without options the default font is
// Calibri 11pt on a letter-size portrait page with one-inch margins.
func NewDocument(opts ...Option) (*Document, error) {
	cfg := defaultDocumentConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.finalize()
	return &Document{cfg: cfg}, nil
}

// Font returns the default font family.
func (d *Document) Font() string { return d.cfg.font }

// FontSize returns the default font size in points.
func (d *Document) FontSize() float64 { return d.cfg.fontSize }

// Metadata returns the core document properties.
func (d *Document) Metadata() Metadata {
	m := d.cfg.meta
	m.Keywords = append([]string(nil), m.Keywords...)
	return m
}

// PageSettings returns a copy of the page settings.
func (d *Document) PageSettings() PageSettings { return *d.cfg.page }

// Footer returns a copy of the page footer, or nil when there is none.
func (d *Document) Footer() *Footer {
	if d.cfg.footer == nil {
		return nil
	}
	f := *d.cfg.footer
	return &f
}

// Created returns the creation timestamp recorded in the package.
func (d *Document) Created() time.Time { return d.cfg.created }

// Identifier returns the document identifier.
func (d *Document) Identifier() string { return d.cfg.id }

// Blocks returns the blocks in append order. The slice is a copy; the blocks
// are live handles.
func (d *Document) Blocks() []Block {
	return append([]Block(nil), d.blocks...)
}

// Len returns the number of blocks.
func (d *Document) Len() int { return len(d.blocks) }

// AddHeading appends a heading. Level 0 is the document title; levels 1..9
// map to Heading1..Heading9. Only WithAlign and WithSpacing apply.
func (d *Document) AddHeading(text string, level int, opts ...BlockOption) (*Heading, error) {
	if level < 0 || level > MaxHeadingLevel {
		return nil, fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidHeadingLevel, level, MaxHeadingLevel)
	}
	if err := checkText(text); err != nil {
		return nil, err
	}
	cfg, err := newBlockConfig(opts)
	if err != nil {
		return nil, err
	}
	h := &Heading{level: level, text: text, align: cfg.align, spacing: cfg.spacing}
	d.blocks = append(d.blocks, h)
	return h, nil
}

// AddParagraph appends a paragraph and returns its handle. A non-empty text
// becomes the first run; an empty text gives a blank paragraph.
func (d *Document) AddParagraph(text string, opts ...BlockOption) (*Paragraph, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}
	cfg, err := newBlockConfig(opts)
	if err != nil {
		return nil, err
	}
	p := &Paragraph{style: cfg.style, align: cfg.align, spacing: cfg.spacing}
	if text != "" {
		p.AddRun(text)
	}
	d.blocks = append(d.blocks, p)
	return p, nil
}

// AddBulletItem appends a paragraph in the ListBullet style.
func (d *Document) AddBulletItem(text string, opts ...BlockOption) (*Paragraph, error) {
	return d.AddParagraph(text, withForcedStyle(opts, StyleListBullet)...)
}

// AddNumberedItem appends a paragraph in the ListNumber style.
func (d *Document) AddNumberedItem(text string, opts ...BlockOption) (*Paragraph, error) {
	return d.AddParagraph(text, withForcedStyle(opts, StyleListNumber)...)
}

// withForcedStyle copies opts and appends a style option that wins over any
// style the caller passed.
func withForcedStyle(opts []BlockOption, s Style) []BlockOption {
	out := make([]BlockOption, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, WithStyle(s))
}

// AddTable appends an empty rows × cols table and returns its handle.
func (d *Document) AddTable(rows, cols int, opts ...TableOption) (*Table, error) {
	cfg := tableConfig{style: TableGrid}
	for _, opt := range opts {
		opt(&cfg)
	}
	t, err := newTable(rows, cols, cfg)
	if err != nil {
		return nil, err
	}
	d.blocks = append(d.blocks, t)
	return t, nil
}

// AddTableFromRows appends a table sized to fit rows; short rows are padded
// with empty cells.
func (d *Document) AddTableFromRows(rows [][]string, opts ...TableOption) (*Table, error) {
	cols := 0
	for _, r := range rows {
		if err := checkTexts(r...); err != nil {
			return nil, err
		}
		cols = max(cols, len(r))
	}
	t, err := d.AddTable(len(rows), cols, opts...)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if err := t.SetRow(i, r...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddPageBreak appends a hard page break.
func (d *Document) AddPageBreak() {
	d.blocks = append(d.blocks, &PageBreak{})
}

// String returns the block outline, one block per line.
func (d *Document) String() string {
	return Outline(d.blocks)
}

// appendBlock adds an already-built block. Used when rebuilding a document
// from a package.
func (d *Document) appendBlock(b Block) {
	d.blocks = append(d.blocks, b)
}

// keywords joins the metadata keywords the way Word stores them.
func (d *Document) keywords() string {
	return strings.Join(d.cfg.meta.Keywords, ", ")
}
