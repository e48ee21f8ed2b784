package ooxml

import (
	"encoding/xml"
	"strconv"
)

// Style identifiers written to styles.xml and referenced from paragraphs.
const (
	StyleNormal     = "Normal"
	StyleTitle      = "Title"
	StyleListBullet = "ListBullet"
	StyleListNumber = "ListNumber"
	StyleNoSpacing  = "NoSpacing"
	StyleFooter     = "Footer"
	StyleTableGrid  = "TableGrid"
	StyleTableNone  = "TableNormal"
)

// MaxHeadingLevel is the deepest built-in heading style (Heading9).
const MaxHeadingLevel = 9

// HeadingStyle returns the style ID for a heading level. Level 0 is Title.
func HeadingStyle(level int) string {
	if level == 0 {
		return StyleTitle
	}
	return "Heading" + strconv.Itoa(level)
}

// Styles is word/styles.xml.
type Styles struct {
	XMLName     xml.Name    `xml:"w:styles"`
	XmlnsW      string      `xml:"xmlns:w,attr"`
	DocDefaults DocDefaults `xml:"w:docDefaults"`
	Styles      []Style     `xml:"w:style"`
}

// DocDefaults is <w:docDefaults>.
type DocDefaults struct {
	Run       RunDefault       `xml:"w:rPrDefault"`
	Paragraph ParagraphDefault `xml:"w:pPrDefault"`
}

// RunDefault is <w:rPrDefault>.
type RunDefault struct {
	Props RunProps `xml:"w:rPr"`
}

// ParagraphDefault is <w:pPrDefault>.
type ParagraphDefault struct {
	Props ParagraphProps `xml:"w:pPr"`
}

// Style is one <w:style> definition.
type Style struct {
	Type       string           `xml:"w:type,attr"`
	Default    string           `xml:"w:default,attr,omitempty"`
	ID         string           `xml:"w:styleId,attr"`
	Name       Val              `xml:"w:name"`
	BasedOn    *Val             `xml:"w:basedOn,omitempty"`
	Next       *Val             `xml:"w:next,omitempty"`
	UIPriority *Val             `xml:"w:uiPriority,omitempty"`
	QFormat    *Empty           `xml:"w:qFormat,omitempty"`
	Paragraph  *ParagraphProps  `xml:"w:pPr,omitempty"`
	Run        *RunProps        `xml:"w:rPr,omitempty"`
	Table      *StyleTableProps `xml:"w:tblPr,omitempty"`
}

// StyleTableProps is the <w:tblPr> of a table style.
type StyleTableProps struct {
	Indent     *TableWidth       `xml:"w:tblInd,omitempty"`
	Borders    *TableBorders     `xml:"w:tblBorders,omitempty"`
	CellMargin *TableCellMargins `xml:"w:tblCellMar,omitempty"`
}

// TableBorders is <w:tblBorders>.
type TableBorders struct {
	Top     Border `xml:"w:top"`
	Left    Border `xml:"w:left"`
	Bottom  Border `xml:"w:bottom"`
	Right   Border `xml:"w:right"`
	InsideH Border `xml:"w:insideH"`
	InsideV Border `xml:"w:insideV"`
}

// Border is a single border edge.
type Border struct {
	Val   string `xml:"w:val,attr"`
	Size  string `xml:"w:sz,attr"`
	Space string `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

// TableCellMargins is <w:tblCellMar>.
type TableCellMargins struct {
	Left  TableWidth `xml:"w:left"`
	Right TableWidth `xml:"w:right"`
}

// StyleConfig carries the document-wide defaults baked into styles.xml.
type StyleConfig struct {
	Font       string
	HalfPoints int
}

// heading sizes in half-points, indexed by level (0 = Title).
var headingSizes = [MaxHeadingLevel + 1]int{56, 28, 26, 24, 22, 22, 22, 22, 22, 22}

// heading colours, indexed by level.
var headingColors = [MaxHeadingLevel + 1]string{
	"17365D", "365F91", "4F81BD", "4F81BD", "4F81BD", "243F60", "243F60", "404040", "404040", "404040",
}

// NewStyles builds the style sheet: Normal, Title, Heading1-9, the two list
// styles, NoSpacing, Footer and the two table styles.
func NewStyles(cfg StyleConfig) *Styles {
	halfPoints := strconv.Itoa(cfg.HalfPoints)
	s := &Styles{
		XmlnsW: NamespaceW,
		DocDefaults: DocDefaults{
			Run: RunDefault{Props: RunProps{
				Fonts:  AllFonts(cfg.Font),
				Size:   &Val{Val: halfPoints},
				SizeCS: &Val{Val: halfPoints},
			}},
			Paragraph: ParagraphDefault{Props: ParagraphProps{
				Spacing: &Spacing{After: "200", Line: "276", LineRule: "auto"},
			}},
		},
	}

	s.Styles = append(s.Styles, Style{
		Type:    "paragraph",
		Default: "1",
		ID:      StyleNormal,
		Name:    Val{Val: "Normal"},
		QFormat: &Empty{},
	})

	for level := 0; level <= MaxHeadingLevel; level++ {
		s.Styles = append(s.Styles, headingStyle(level))
	}

	s.Styles = append(s.Styles,
		listStyle(StyleListBullet, "List Bullet", NumIDBullet),
		listStyle(StyleListNumber, "List Number", NumIDDecimal),
		Style{
			Type:       "paragraph",
			ID:         StyleNoSpacing,
			Name:       Val{Val: "No Spacing"},
			UIPriority: &Val{Val: "1"},
			QFormat:    &Empty{},
			Paragraph:  &ParagraphProps{Spacing: &Spacing{After: "0", Line: "240", LineRule: "auto"}},
		},
		Style{
			Type:      "paragraph",
			ID:        StyleFooter,
			Name:      Val{Val: "footer"},
			BasedOn:   &Val{Val: StyleNormal},
			Paragraph: &ParagraphProps{Spacing: &Spacing{After: "0", Line: "240", LineRule: "auto"}},
		},
		Style{
			Type:       "table",
			Default:    "1",
			ID:         StyleTableNone,
			Name:       Val{Val: "Normal Table"},
			UIPriority: &Val{Val: "99"},
			Table: &StyleTableProps{
				Indent: &TableWidth{W: "0", Type: "dxa"},
				CellMargin: &TableCellMargins{
					Left:  TableWidth{W: "108", Type: "dxa"},
					Right: TableWidth{W: "108", Type: "dxa"},
				},
			},
		},
		Style{
			Type:       "table",
			ID:         StyleTableGrid,
			Name:       Val{Val: "Table Grid"},
			BasedOn:    &Val{Val: StyleTableNone},
			UIPriority: &Val{Val: "59"},
			Paragraph:  &ParagraphProps{Spacing: &Spacing{After: "0", Line: "240", LineRule: "auto"}},
			Table: &StyleTableProps{
				Borders: &TableBorders{
					Top:     singleBorder,
					Left:    singleBorder,
					Bottom:  singleBorder,
					Right:   singleBorder,
					InsideH: singleBorder,
					InsideV: singleBorder,
				},
			},
		},
	)
	return s
}

var singleBorder = Border{Val: "single", Size: "4", Space: "0", Color: "auto"}

func headingStyle(level int) Style {
	id := HeadingStyle(level)
	name := "heading " + strconv.Itoa(level)
	if level == 0 {
		name = "Title"
	}
	size := strconv.Itoa(headingSizes[level])

	st := Style{
		Type:       "paragraph",
		ID:         id,
		Name:       Val{Val: name},
		BasedOn:    &Val{Val: StyleNormal},
		Next:       &Val{Val: StyleNormal},
		UIPriority: &Val{Val: strconv.Itoa(9 + min(level, 1))},
		QFormat:    &Empty{},
		Run: &RunProps{
			Color:  &Val{Val: headingColors[level]},
			Size:   &Val{Val: size},
			SizeCS: &Val{Val: size},
		},
	}
	if level == 0 {
		st.Paragraph = &ParagraphProps{
			Spacing:           &Spacing{After: "300", Line: "240", LineRule: "auto"},
			ContextualSpacing: &Empty{},
		}
		return st
	}

	before := "200"
	if level == 1 {
		before = "480"
	}
	st.Paragraph = &ParagraphProps{
		KeepNext:     &Empty{},
		Spacing:      &Spacing{Before: before, After: "0"},
		OutlineLevel: &Val{Val: strconv.Itoa(level - 1)},
	}
	st.Run.Bold = &Empty{}
	if level >= 4 {
		st.Run.Italic = &Empty{}
	}
	return st
}

func listStyle(id, name, numID string) Style {
	return Style{
		Type:       "paragraph",
		ID:         id,
		Name:       Val{Val: name},
		BasedOn:    &Val{Val: StyleNormal},
		UIPriority: &Val{Val: "99"},
		Paragraph: &ParagraphProps{
			NumPr:             &NumPr{Level: Val{Val: "0"}, NumID: Val{Val: numID}},
			ContextualSpacing: &Empty{},
		},
	}
}
