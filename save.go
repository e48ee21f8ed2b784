package docxgen

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/alnah/go-docxgen/internal/fileutil"
	"github.com/alnah/go-docxgen/internal/ooxml"
)

// Application is recorded as the producing application in the package.
const Application = "go-docxgen"

// Version is the library version recorded in the package.
const Version = "1.0"

// filePerm is the permission of saved documents.
const filePerm = 0o644

// Save writes the document to path on the local filesystem. See SaveFS.
func (d *Document) Save(path string) error {
	return d.SaveFS(afero.NewOsFs(), path)
}

// SaveFS serializes the document and writes it to path on fs. The parent
// directory must exist. The file is replaced atomically; on failure no file
// is left at path and the error wraps ErrWriteDocument. Saving an unchanged
// document again produces identical bytes.
func (d *Document) SaveFS(fs afero.Fs, path string) error {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(fs, path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return nil
}

// WriteTo serializes the document as a .docx package to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := d.pack().WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return n, nil
}

// pack assembles the OOXML package for the current block sequence.
func (d *Document) pack() *ooxml.Package {
	page := d.cfg.page
	width, height := page.dimensions()
	margin := page.marginTwips()
	rc := &renderContext{contentWidth: width - 2*margin}

	doc := ooxml.NewDocument()
	for _, b := range d.blocks {
		doc.Body.Elements = append(doc.Body.Elements, b.render(rc))
	}

	m := strconv.Itoa(margin)
	section := &ooxml.SectionProps{
		PageSize: ooxml.PageSize{W: strconv.Itoa(width), H: strconv.Itoa(height)},
		Margin: ooxml.PageMargin{
			Top: m, Right: m, Bottom: m, Left: m,
			Header: "720", Footer: "720", Gutter: "0",
		},
	}
	if strings.ToLower(page.Orientation) == OrientationLandscape {
		section.PageSize.Orient = OrientationLandscape
	}

	var footer *ooxml.Footer
	if d.cfg.footer != nil {
		footer = renderFooter(d.cfg.footer)
		section.FooterRef = &ooxml.HeaderFooterRef{Type: "default", ID: ooxml.FooterRelID}
	}
	doc.Body.Section = section

	meta := d.cfg.meta
	return &ooxml.Package{
		Document:  doc,
		Styles:    ooxml.NewStyles(ooxml.StyleConfig{Font: d.cfg.font, HalfPoints: halfPoints(d.cfg.fontSize)}),
		Numbering: ooxml.NewNumbering(),
		Settings:  ooxml.NewSettings(),
		Footer:    footer,
		Core: ooxml.NewCoreProperties(ooxml.CoreInfo{
			Title:       meta.Title,
			Subject:     meta.Subject,
			Author:      meta.Author,
			Keywords:    d.keywords(),
			Description: meta.Description,
			Identifier:  d.cfg.id,
			Language:    meta.Language,
			Created:     d.cfg.created,
		}),
		App:      ooxml.NewAppProperties(Application, Version),
		Modified: d.cfg.created,
	}
}

// renderFooter builds the footer part: one paragraph per text line, then the
// page number when requested.
func renderFooter(f *Footer) *ooxml.Footer {
	align := f.Align
	if align == AlignDefault {
		align = AlignCenter
	}

	var runProps *ooxml.RunProps
	if f.Italic {
		runProps = &ooxml.RunProps{Italic: &ooxml.Empty{}}
	}

	newParagraph := func() ooxml.Paragraph {
		props := &ooxml.ParagraphProps{Style: &ooxml.Val{Val: ooxml.StyleFooter}}
		applyParagraphLayout(props, align, nil)
		return ooxml.Paragraph{Props: props}
	}

	var paragraphs []ooxml.Paragraph
	if f.Text != "" {
		for line := range strings.SplitSeq(f.Text, "\n") {
			p := newParagraph()
			if line != "" {
				p.Runs = []ooxml.Run{{Props: runProps, Content: textContent(line)}}
			}
			paragraphs = append(paragraphs, p)
		}
	}
	if f.ShowPageNumber {
		p := newParagraph()
		p.Runs = ooxml.PageNumberRuns(runProps)
		paragraphs = append(paragraphs, p)
	}
	if len(paragraphs) == 0 {
		paragraphs = append(paragraphs, newParagraph())
	}
	return ooxml.NewFooter(paragraphs...)
}
