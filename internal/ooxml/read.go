package ooxml

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParsedPackage is the structural content recovered from a .docx file.
type ParsedPackage struct {
	Body   []BodyElement
	Core   CoreInfo
	Footer []ParsedParagraph
	// Document-wide run defaults from styles.xml; empty or 0 when unset.
	DefaultFont    string
	DefaultHalfPts int
}

// BodyElement is either a paragraph or a table, in document order.
type BodyElement struct {
	Paragraph *ParsedParagraph
	Table     *ParsedTable
}

// ParsedParagraph is a paragraph with its style and runs.
type ParsedParagraph struct {
	Style   string
	Justify string
	// SpacingBefore and SpacingAfter are in twentieths of a point; empty when unset.
	SpacingBefore string
	SpacingAfter  string
	Runs          []ParsedRun
}

// Text concatenates the text of all runs.
func (p ParsedParagraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// IsPageBreak reports whether the paragraph holds nothing but page breaks.
func (p ParsedParagraph) IsPageBreak() bool {
	found := false
	for _, r := range p.Runs {
		if r.Text != "" {
			return false
		}
		if r.PageBreak {
			found = true
		}
	}
	return found
}

// HasPageField reports whether the paragraph holds a PAGE field.
func (p ParsedParagraph) HasPageField() bool {
	for _, r := range p.Runs {
		if name, _, _ := strings.Cut(r.Field, " "); strings.EqualFold(name, "PAGE") {
			return true
		}
	}
	return false
}

// ParsedRun is a run of uniformly formatted text. Line breaks and tabs are
// folded into Text as "\n" and "\t".
type ParsedRun struct {
	Text      string
	Field     string // field instruction, e.g. "PAGE"
	PageBreak bool
	Bold      bool
	Italic    bool
	HalfPts   int
	Color     string
	Font      string
}

// ParsedTable is a table as a grid of cells.
type ParsedTable struct {
	Style     string
	HeaderRow bool
	Rows      [][]ParsedCell
}

// ParsedCell is a table cell.
type ParsedCell struct {
	Paragraphs []ParsedParagraph
}

// Text joins the cell's paragraphs with newlines.
func (c ParsedCell) Text() string {
	parts := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// Bold reports whether every run carrying text in the cell is bold.
func (c ParsedCell) Bold() bool {
	seen := false
	for _, p := range c.Paragraphs {
		for _, r := range p.Runs {
			if r.Text == "" {
				continue
			}
			if !r.Bold {
				return false
			}
			seen = true
		}
	}
	return seen
}

// ReadPackage parses the structural content of a WordprocessingML package.
func ReadPackage(r io.ReaderAt, size int64) (*ParsedPackage, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotZip, err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	docFile, ok := files[PartDocument]
	if !ok {
		return nil, ErrMissingDocumentPart
	}

	var doc xmlDocument
	if err := decodePart(docFile, &doc); err != nil {
		return nil, err
	}

	out := &ParsedPackage{Body: doc.Body.Elements}

	if f, ok := files[PartCore]; ok {
		var core xmlCore
		if err := decodePart(f, &core); err != nil {
			return nil, err
		}
		out.Core = CoreInfo{
			Title:       core.Title,
			Subject:     core.Subject,
			Author:      core.Creator,
			Keywords:    core.Keywords,
			Description: core.Description,
			Identifier:  core.Identifier,
			Language:    core.Language,
		}
	}

	if f, ok := files[PartStyles]; ok {
		var styles xmlStyles
		if err := decodePart(f, &styles); err != nil {
			return nil, err
		}
		props := styles.DocDefaults.RunDefault.Props
		out.DefaultFont = props.Fonts.ASCII
		if n, err := strconv.Atoi(props.Size.Val); err == nil {
			out.DefaultHalfPts = n
		}
	}

	if f, ok := files[PartFooter]; ok {
		var ftr xmlFooter
		if err := decodePart(f, &ftr); err != nil {
			return nil, err
		}
		for _, p := range ftr.Paragraphs {
			out.Footer = append(out.Footer, p.parsed())
		}
	}

	return out, nil
}

func decodePart(f *zip.File, v any) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedPart, f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	if err := xml.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedPart, f.Name, err)
	}
	return nil
}

// The reading structs match on local names only.

type xmlDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    xmlBody  `xml:"body"`
}

type xmlBody struct {
	Elements []BodyElement
}

// UnmarshalXML keeps paragraphs and tables in document order.
func (b *xmlBody) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p xmlParagraph
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				parsed := p.parsed()
				b.Elements = append(b.Elements, BodyElement{Paragraph: &parsed})
			case "tbl":
				var tbl xmlTable
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				parsed := tbl.parsed()
				b.Elements = append(b.Elements, BodyElement{Table: &parsed})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

type xmlVal struct {
	Val string `xml:"val,attr"`
}

// xmlOnOff is a toggle property; present without a value means on.
type xmlOnOff struct {
	Val string `xml:"val,attr"`
}

func (o *xmlOnOff) on() bool {
	if o == nil {
		return false
	}
	switch o.Val {
	case "false", "0", "off":
		return false
	}
	return true
}

type xmlParagraph struct {
	Props struct {
		Style   xmlVal `xml:"pStyle"`
		Justify xmlVal `xml:"jc"`
		Spacing struct {
			Before string `xml:"before,attr"`
			After  string `xml:"after,attr"`
		} `xml:"spacing"`
	} `xml:"pPr"`
	Runs []xmlRun `xml:"r"`
}

func (p xmlParagraph) parsed() ParsedParagraph {
	out := ParsedParagraph{
		Style:         p.Props.Style.Val,
		Justify:       p.Props.Justify.Val,
		SpacingBefore: p.Props.Spacing.Before,
		SpacingAfter:  p.Props.Spacing.After,
	}
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, r.ParsedRun)
	}
	return out
}

type xmlRunProps struct {
	Bold   *xmlOnOff `xml:"b"`
	Italic *xmlOnOff `xml:"i"`
	Size   xmlVal    `xml:"sz"`
	Color  xmlVal    `xml:"color"`
	Fonts  struct {
		ASCII string `xml:"ascii,attr"`
	} `xml:"rFonts"`
}

type xmlRun struct {
	ParsedRun
}

// UnmarshalXML folds the run's ordered content (text, breaks, tabs) into one
// string and records its formatting.
func (r *xmlRun) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				var props xmlRunProps
				if err := d.DecodeElement(&props, &t); err != nil {
					return err
				}
				r.Bold = props.Bold.on()
				r.Italic = props.Italic.on()
				r.Color = props.Color.Val
				r.Font = props.Fonts.ASCII
				if n, err := strconv.Atoi(props.Size.Val); err == nil {
					r.HalfPts = n
				}
			case "t":
				var s string
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				text.WriteString(s)
			case "instrText":
				var s string
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				r.Field = strings.TrimSpace(s)
			case "br":
				if attrValue(t, "type") == BreakPage {
					r.PageBreak = true
				} else {
					text.WriteByte('\n')
				}
				if err := d.Skip(); err != nil {
					return err
				}
			case "tab":
				text.WriteByte('\t')
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			r.Text = text.String()
			return nil
		}
	}
}

func attrValue(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

type xmlTable struct {
	Props struct {
		Style xmlVal `xml:"tblStyle"`
	} `xml:"tblPr"`
	Rows []struct {
		Props struct {
			Header *xmlOnOff `xml:"tblHeader"`
		} `xml:"trPr"`
		Cells []struct {
			Paragraphs []xmlParagraph `xml:"p"`
		} `xml:"tc"`
	} `xml:"tr"`
}

func (t xmlTable) parsed() ParsedTable {
	out := ParsedTable{Style: t.Props.Style.Val}
	for i, row := range t.Rows {
		if i == 0 && row.Props.Header.on() {
			out.HeaderRow = true
		}
		cells := make([]ParsedCell, 0, len(row.Cells))
		for _, c := range row.Cells {
			var cell ParsedCell
			for _, p := range c.Paragraphs {
				cell.Paragraphs = append(cell.Paragraphs, p.parsed())
			}
			cells = append(cells, cell)
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}

type xmlCore struct {
	Title       string `xml:"title"`
	Subject     string `xml:"subject"`
	Creator     string `xml:"creator"`
	Keywords    string `xml:"keywords"`
	Description string `xml:"description"`
	Identifier  string `xml:"identifier"`
	Language    string `xml:"language"`
}

type xmlStyles struct {
	DocDefaults struct {
		RunDefault struct {
			Props xmlRunProps `xml:"rPr"`
		} `xml:"rPrDefault"`
	} `xml:"docDefaults"`
}

type xmlFooter struct {
	Paragraphs []xmlParagraph `xml:"p"`
}
