package report

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-docxgen"
	"github.com/alnah/go-docxgen/internal/dateutil"
)

// varPattern matches ${name} references and the $$ escape.
var varPattern = regexp.MustCompile(`\$\$|\$\{([A-Za-z_][A-Za-z0-9_.-]*)\}`)

// BuildOptions control how a report becomes a document.
type BuildOptions struct {
	// Now is the time "auto" variables resolve against. Zero means time.Now.
	Now time.Time
	// Locale overrides the report's document.locale for month names.
	Locale string
	// Vars override or extend the report's variables.
	Vars map[string]string
	// Defaults are applied before the report's own settings; Overrides after.
	Defaults  []docxgen.Option
	Overrides []docxgen.Option
}

// Build assembles the document described by the report.
func (r *Report) Build(opts BuildOptions) (*docxgen.Document, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	localeName := r.Document.Locale
	if opts.Locale != "" {
		localeName = opts.Locale
	}
	loc, err := dateutil.ParseLocale(localeName)
	if err != nil {
		return nil, err
	}

	x, err := newExpander(r.Vars, opts.Vars, now, loc)
	if err != nil {
		return nil, err
	}

	docOpts, err := r.documentOptions(x)
	if err != nil {
		return nil, err
	}
	all := make([]docxgen.Option, 0, len(opts.Defaults)+len(docOpts)+len(opts.Overrides))
	all = append(all, opts.Defaults...)
	all = append(all, docOpts...)
	all = append(all, opts.Overrides...)

	doc, err := docxgen.NewDocument(all...)
	if err != nil {
		return nil, err
	}

	for i := range r.Blocks {
		if err := addBlock(doc, &r.Blocks[i], x); err != nil {
			return nil, fmt.Errorf("blocks[%d]: %w", i, err)
		}
	}
	return doc, nil
}

func (r *Report) documentOptions(x *expander) ([]docxgen.Option, error) {
	title, err := x.expand(r.Title)
	if err != nil {
		return nil, err
	}
	meta := docxgen.Metadata{Title: title, Language: r.Metadata.Language}
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&meta.Subject, r.Metadata.Subject},
		{&meta.Author, r.Metadata.Author},
		{&meta.Description, r.Metadata.Description},
	} {
		if *f.dst, err = x.expand(f.src); err != nil {
			return nil, err
		}
	}
	if meta.Keywords, err = x.expandAll(r.Metadata.Keywords); err != nil {
		return nil, err
	}

	var out []docxgen.Option
	if r.Document.Font != "" {
		out = append(out, docxgen.WithFont(r.Document.Font))
	}
	if r.Document.FontSize != 0 {
		out = append(out, docxgen.WithFontSize(r.Document.FontSize))
	}
	if r.Page != nil {
		out = append(out, docxgen.WithPageSettings(&docxgen.PageSettings{
			Size:        r.Page.Size,
			Orientation: r.Page.Orientation,
			Margin:      r.Page.Margin,
		}))
	}
	if r.Footer != nil {
		text, err := x.expand(r.Footer.Text)
		if err != nil {
			return nil, err
		}
		out = append(out, docxgen.WithFooter(&docxgen.Footer{
			Text:           text,
			Align:          docxgen.Alignment(r.Footer.Align),
			Italic:         r.Footer.Italic,
			ShowPageNumber: r.Footer.PageNumber,
		}))
	}
	// The report's metadata wins over defaults: append it last.
	out = append(out, docxgen.WithMetadata(meta))
	return out, nil
}

func (b *Block) blockOptions() []docxgen.BlockOption {
	var opts []docxgen.BlockOption
	if b.Align != "" {
		opts = append(opts, docxgen.WithAlign(docxgen.Alignment(b.Align)))
	}
	if b.Style != "" {
		opts = append(opts, docxgen.WithStyle(docxgen.Style(b.Style)))
	}
	if b.Spacing != nil {
		opts = append(opts, docxgen.WithSpacing(b.Spacing.Before, b.Spacing.After))
	}
	return opts
}

func addBlock(doc *docxgen.Document, b *Block, x *expander) error {
	kind, err := b.Kind()
	if err != nil {
		return err
	}

	switch kind {
	case KindHeading:
		text, err := x.expand(*b.Heading)
		if err != nil {
			return err
		}
		_, err = doc.AddHeading(text, b.Level, b.blockOptions()...)
		return err

	case KindParagraph:
		return addParagraph(doc, b, x)

	case KindBullets, KindNumbered:
		items, add := b.Bullets, doc.AddBulletItem
		if kind == KindNumbered {
			items, add = b.Numbered, doc.AddNumberedItem
		}
		for _, item := range items {
			text, err := x.expand(b.Prefix + item)
			if err != nil {
				return err
			}
			if _, err := add(text, b.blockOptions()...); err != nil {
				return err
			}
		}
		return nil

	case KindTable:
		return addTable(doc, b.Table, x)

	case KindDefinitions:
		for _, d := range b.Definitions {
			term, err := x.expand(d.Term)
			if err != nil {
				return err
			}
			text, err := x.expand(d.Text)
			if err != nil {
				return err
			}
			p, err := doc.AddParagraph("", b.blockOptions()...)
			if err != nil {
				return err
			}
			p.AddRun("• " + term + ": ").SetBold(true)
			if text != "" {
				p.AddRun(text)
			}
		}
		return nil

	case KindLines:
		opts := append([]docxgen.BlockOption{docxgen.WithSpacing(0, 0)}, b.blockOptions()...)
		for _, line := range b.Lines {
			text, err := x.expand(line)
			if err != nil {
				return err
			}
			if _, err := doc.AddParagraph(text, opts...); err != nil {
				return err
			}
		}
		return nil

	case KindPreformatted:
		text, err := x.expand(*b.Preformatted)
		if err != nil {
			return err
		}
		opts := append([]docxgen.BlockOption{docxgen.WithStyle(docxgen.StyleNoSpacing)}, b.blockOptions()...)
		_, err = doc.AddParagraph(text, opts...)
		return err

	case KindBlank:
		for range b.Blank {
			if _, err := doc.AddParagraph(""); err != nil {
				return err
			}
		}
		return nil

	case KindPageBreak:
		doc.AddPageBreak()
		return nil
	}
	return fmt.Errorf("%w: unhandled kind %q", ErrBlock, kind)
}

func addParagraph(doc *docxgen.Document, b *Block, x *expander) error {
	first := ""
	if b.Paragraph != nil {
		text, err := x.expand(*b.Paragraph)
		if err != nil {
			return err
		}
		first = text
	}
	p, err := doc.AddParagraph(first, b.blockOptions()...)
	if err != nil {
		return err
	}
	for _, spec := range b.Runs {
		text, err := x.expand(spec.Text)
		if err != nil {
			return err
		}
		r := p.AddRun(text).SetBold(spec.Bold).SetItalic(spec.Italic)
		if spec.Size != 0 {
			if err := r.SetSize(spec.Size); err != nil {
				return err
			}
		}
		if spec.Color != "" {
			if err := r.SetColor(spec.Color); err != nil {
				return err
			}
		}
		if spec.Font != "" {
			if err := r.SetFont(spec.Font); err != nil {
				return err
			}
		}
	}
	return nil
}

func addTable(doc *docxgen.Document, t *Table, x *expander) error {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells, err := x.expandAll(row)
		if err != nil {
			return err
		}
		rows[i] = cells
	}

	var opts []docxgen.TableOption
	if t.Style == "plain" {
		opts = append(opts, docxgen.WithTableStyle(docxgen.TablePlain))
	}
	if t.Header {
		opts = append(opts, docxgen.WithHeaderRow())
	}
	tbl, err := doc.AddTableFromRows(rows, opts...)
	if err != nil {
		return err
	}

	for _, row := range t.BoldRows {
		if err := tbl.SetRowBold(row); err != nil {
			return err
		}
	}
	for _, col := range t.BoldColumns {
		for row := range tbl.Rows() {
			if err := tbl.SetCellBold(row, col); err != nil {
				return err
			}
		}
	}
	return nil
}

// expander substitutes ${name} references.
type expander struct {
	vars map[string]string
}

func newExpander(base, overrides map[string]string, now time.Time, loc dateutil.Locale) (*expander, error) {
	merged := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}

	// Resolve in key order so errors are reported deterministically.
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	x := &expander{vars: make(map[string]string, len(merged))}
	for _, k := range keys {
		v := merged[k]
		if isDateValue(v) {
			resolved, err := dateutil.Resolve(v, now, loc)
			if err != nil {
				return nil, fmt.Errorf("vars.%s: %w", k, err)
			}
			v = resolved
		}
		x.vars[k] = v
	}
	return x, nil
}

// isDateValue reports whether v asks for a build date. Plain words that
// happen to start with "auto" are left alone.
func isDateValue(v string) bool {
	lower := strings.ToLower(v)
	return lower == "auto" || strings.HasPrefix(lower, "auto:")
}

func (x *expander) expand(s string) (string, error) {
	if !strings.Contains(s, "$") {
		return s, nil
	}
	var missing []string
	out := varPattern.ReplaceAllStringFunc(s, func(m string) string {
		if m == "$$" {
			return "$"
		}
		name := m[2 : len(m)-1]
		v, ok := x.vars[name]
		if !ok {
			missing = append(missing, name)
			return m
		}
		return v
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUndefinedVar, strings.Join(missing, ", "))
	}
	return out, nil
}

func (x *expander) expandAll(in []string) ([]string, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		v, err := x.expand(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
