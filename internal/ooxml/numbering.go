package ooxml

import "encoding/xml"

// Numbering instance IDs referenced by the list styles.
const (
	NumIDBullet  = "1"
	NumIDDecimal = "2"
)

// Numbering is word/numbering.xml.
type Numbering struct {
	XMLName  xml.Name      `xml:"w:numbering"`
	XmlnsW   string        `xml:"xmlns:w,attr"`
	Abstract []AbstractNum `xml:"w:abstractNum"`
	Nums     []Num         `xml:"w:num"`
}

// AbstractNum is <w:abstractNum>.
type AbstractNum struct {
	ID         string  `xml:"w:abstractNumId,attr"`
	MultiLevel Val     `xml:"w:multiLevelType"`
	Levels     []Level `xml:"w:lvl"`
}

// Level is <w:lvl>.
type Level struct {
	ILvl      string          `xml:"w:ilvl,attr"`
	Start     Val             `xml:"w:start"`
	Format    Val             `xml:"w:numFmt"`
	Text      Val             `xml:"w:lvlText"`
	Justify   Val             `xml:"w:lvlJc"`
	Paragraph *ParagraphProps `xml:"w:pPr,omitempty"`
	Run       *RunProps       `xml:"w:rPr,omitempty"`
}

// Num is <w:num>, binding a numbering instance to its abstract definition.
type Num struct {
	ID       string `xml:"w:numId,attr"`
	Abstract Val    `xml:"w:abstractNumId"`
}

// NewNumbering returns the two single-level lists used by the ListBullet and
// ListNumber styles.
func NewNumbering() *Numbering {
	indent := &ParagraphProps{Indent: &Indent{Left: "720", Hanging: "360"}}
	return &Numbering{
		XmlnsW: NamespaceW,
		Abstract: []AbstractNum{
			{
				ID:         "0",
				MultiLevel: Val{Val: "singleLevel"},
				Levels: []Level{{
					ILvl:      "0",
					Start:     Val{Val: "1"},
					Format:    Val{Val: "bullet"},
					Text:      Val{Val: "•"},
					Justify:   Val{Val: "left"},
					Paragraph: indent,
				}},
			},
			{
				ID:         "1",
				MultiLevel: Val{Val: "singleLevel"},
				Levels: []Level{{
					ILvl:      "0",
					Start:     Val{Val: "1"},
					Format:    Val{Val: "decimal"},
					Text:      Val{Val: "%1."},
					Justify:   Val{Val: "left"},
					Paragraph: indent,
				}},
			},
		},
		Nums: []Num{
			{ID: NumIDBullet, Abstract: Val{Val: "0"}},
			{ID: NumIDDecimal, Abstract: Val{Val: "1"}},
		},
	}
}
