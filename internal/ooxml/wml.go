package ooxml

import "encoding/xml"

// XML namespaces used in the generated parts.
const (
	NamespaceW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NamespaceR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	namespaceCT  = "http://schemas.openxmlformats.org/package/2006/content-types"
	namespaceRel = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Break types.
const (
	BreakPage = "page"
)

// Document is word/document.xml.
type Document struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Body    Body     `xml:"w:body"`
}

// NewDocument returns an empty document with the namespaces declared.
func NewDocument() *Document {
	return &Document{XmlnsW: NamespaceW, XmlnsR: NamespaceR}
}

// Body holds block-level elements (*Paragraph, *Table) in document order,
// followed by the section properties.
type Body struct {
	Elements []any
	Section  *SectionProps
}

// MarshalXML writes the elements in order. encoding/xml cannot express an
// ordered mix of element types through struct tags alone.
func (b Body) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, el := range b.Elements {
		if err := e.Encode(el); err != nil {
			return err
		}
	}
	if b.Section != nil {
		if err := e.Encode(b.Section); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// Val is the ubiquitous single w:val attribute element.
type Val struct {
	Val string `xml:"w:val,attr"`
}

// Empty is an on/off element written without attributes (<w:b/>).
type Empty struct{}

// Paragraph is <w:p>.
type Paragraph struct {
	XMLName xml.Name        `xml:"w:p"`
	Props   *ParagraphProps `xml:"w:pPr,omitempty"`
	Runs    []Run           `xml:"w:r"`
}

// ParagraphProps is <w:pPr>. Field order follows the CT_PPr sequence.
type ParagraphProps struct {
	Style             *Val     `xml:"w:pStyle,omitempty"`
	KeepNext          *Empty   `xml:"w:keepNext,omitempty"`
	NumPr             *NumPr   `xml:"w:numPr,omitempty"`
	Spacing           *Spacing `xml:"w:spacing,omitempty"`
	Indent            *Indent  `xml:"w:ind,omitempty"`
	ContextualSpacing *Empty   `xml:"w:contextualSpacing,omitempty"`
	Justify           *Val     `xml:"w:jc,omitempty"`
	OutlineLevel      *Val     `xml:"w:outlineLvl,omitempty"`
}

// NumPr attaches a paragraph to a numbering definition.
type NumPr struct {
	Level Val `xml:"w:ilvl"`
	NumID Val `xml:"w:numId"`
}

// Spacing values are in twentieths of a point.
type Spacing struct {
	Before   string `xml:"w:before,attr,omitempty"`
	After    string `xml:"w:after,attr,omitempty"`
	Line     string `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

// Indent values are in twentieths of a point.
type Indent struct {
	Left    string `xml:"w:left,attr,omitempty"`
	Hanging string `xml:"w:hanging,attr,omitempty"`
}

// Run is <w:r>. Content holds *Text, *Break, *Tab, *FieldChar and
// *InstrText values in order.
type Run struct {
	Props   *RunProps
	Content []any
}

// MarshalXML writes the run properties followed by the ordered content.
func (r Run) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: xml.Name{Local: "w:r"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if r.Props != nil {
		if err := e.EncodeElement(r.Props, xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}
	for _, c := range r.Content {
		if err := e.Encode(c); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// RunProps is <w:rPr>. Field order follows the CT_RPr sequence.
type RunProps struct {
	Fonts  *Fonts `xml:"w:rFonts,omitempty"`
	Bold   *Empty `xml:"w:b,omitempty"`
	Italic *Empty `xml:"w:i,omitempty"`
	Color  *Val   `xml:"w:color,omitempty"`
	Size   *Val   `xml:"w:sz,omitempty"`
	SizeCS *Val   `xml:"w:szCs,omitempty"`
}

// Fonts is <w:rFonts>.
type Fonts struct {
	ASCII    string `xml:"w:ascii,attr,omitempty"`
	HAnsi    string `xml:"w:hAnsi,attr,omitempty"`
	CS       string `xml:"w:cs,attr,omitempty"`
	EastAsia string `xml:"w:eastAsia,attr,omitempty"`
}

// AllFonts sets every script slot to the same family.
func AllFonts(name string) *Fonts {
	return &Fonts{ASCII: name, HAnsi: name, CS: name, EastAsia: name}
}

// Text is <w:t>.
type Text struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

// NewText returns a text element that keeps leading and trailing spaces.
func NewText(s string) *Text {
	return &Text{Space: "preserve", Value: s}
}

// Break is <w:br>. An empty Type is a line break.
type Break struct {
	XMLName xml.Name `xml:"w:br"`
	Type    string   `xml:"w:type,attr,omitempty"`
}

// Tab is <w:tab>.
type Tab struct {
	XMLName xml.Name `xml:"w:tab"`
}

// FieldChar is <w:fldChar>.
type FieldChar struct {
	XMLName xml.Name `xml:"w:fldChar"`
	Type    string   `xml:"w:fldCharType,attr"`
}

// InstrText is <w:instrText>.
type InstrText struct {
	XMLName xml.Name `xml:"w:instrText"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

// Table is <w:tbl>.
type Table struct {
	XMLName xml.Name   `xml:"w:tbl"`
	Props   TableProps `xml:"w:tblPr"`
	Grid    TableGrid  `xml:"w:tblGrid"`
	Rows    []TableRow `xml:"w:tr"`
}

// TableProps is <w:tblPr>.
type TableProps struct {
	Style *Val       `xml:"w:tblStyle,omitempty"`
	Width TableWidth `xml:"w:tblW"`
	Look  *TableLook `xml:"w:tblLook,omitempty"`
}

// TableWidth is a width with a unit type (dxa, pct, auto).
type TableWidth struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

// TableLook is <w:tblLook>.
type TableLook struct {
	Val string `xml:"w:val,attr"`
}

// TableGrid is <w:tblGrid>.
type TableGrid struct {
	Cols []GridCol `xml:"w:gridCol"`
}

// GridCol is <w:gridCol>.
type GridCol struct {
	W string `xml:"w:w,attr"`
}

// TableRow is <w:tr>.
type TableRow struct {
	XMLName xml.Name    `xml:"w:tr"`
	Props   *RowProps   `xml:"w:trPr,omitempty"`
	Cells   []TableCell `xml:"w:tc"`
}

// RowProps is <w:trPr>.
type RowProps struct {
	Header *Empty `xml:"w:tblHeader,omitempty"`
}

// TableCell is <w:tc>. Every cell must contain at least one paragraph.
type TableCell struct {
	XMLName    xml.Name    `xml:"w:tc"`
	Props      CellProps   `xml:"w:tcPr"`
	Paragraphs []Paragraph `xml:"w:p"`
}

// CellProps is <w:tcPr>.
type CellProps struct {
	Width TableWidth `xml:"w:tcW"`
}

// SectionProps is the trailing <w:sectPr> of the body.
type SectionProps struct {
	XMLName   xml.Name         `xml:"w:sectPr"`
	FooterRef *HeaderFooterRef `xml:"w:footerReference,omitempty"`
	PageSize  PageSize         `xml:"w:pgSz"`
	Margin    PageMargin       `xml:"w:pgMar"`
}

// HeaderFooterRef links a section to a header or footer part.
type HeaderFooterRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

// PageSize is <w:pgSz>, in twentieths of a point.
type PageSize struct {
	W      string `xml:"w:w,attr"`
	H      string `xml:"w:h,attr"`
	Orient string `xml:"w:orient,attr,omitempty"`
}

// PageMargin is <w:pgMar>, in twentieths of a point.
type PageMargin struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}

// Footer is word/footer1.xml.
type Footer struct {
	XMLName    xml.Name    `xml:"w:ftr"`
	XmlnsW     string      `xml:"xmlns:w,attr"`
	XmlnsR     string      `xml:"xmlns:r,attr"`
	Paragraphs []Paragraph `xml:"w:p"`
}

// NewFooter returns a footer part holding the given paragraphs.
func NewFooter(paragraphs ...Paragraph) *Footer {
	return &Footer{XmlnsW: NamespaceW, XmlnsR: NamespaceR, Paragraphs: paragraphs}
}

// PageNumberRuns returns the runs of a PAGE field showing the current page.
func PageNumberRuns(props *RunProps) []Run {
	return []Run{
		{Props: props, Content: []any{&FieldChar{Type: "begin"}}},
		{Props: props, Content: []any{&InstrText{Space: "preserve", Value: " PAGE "}}},
		{Props: props, Content: []any{&FieldChar{Type: "separate"}}},
		{Props: props, Content: []any{NewText("1")}},
		{Props: props, Content: []any{&FieldChar{Type: "end"}}},
	}
}

// Settings is word/settings.xml.
type Settings struct {
	XMLName        xml.Name `xml:"w:settings"`
	XmlnsW         string   `xml:"xmlns:w,attr"`
	DefaultTabStop Val      `xml:"w:defaultTabStop"`
	CharSpaceCtrl  Val      `xml:"w:characterSpacingControl"`
}

// NewSettings returns the settings part with a half-inch default tab stop.
func NewSettings() *Settings {
	return &Settings{
		XmlnsW:         NamespaceW,
		DefaultTabStop: Val{Val: "720"},
		CharSpaceCtrl:  Val{Val: "doNotCompress"},
	}
}
