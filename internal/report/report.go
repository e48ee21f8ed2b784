// Package report builds documents from YAML report definitions.
//
// A definition carries document settings, variables and an ordered list of
// blocks. Each block sets exactly one content key:
//
//	blocks:
//	  - heading: "${project} - Proje Raporu"
//	    level: 0
//	    align: center
//	  - paragraph: "Plain text"
//	  - runs:                       # a paragraph built from formatted runs
//	      - {text: "Proje Raporu", bold: true, size: 24}
//	  - bullets: ["a", "b"]
//	    prefix: "✅ "
//	  - numbered: ["first", "second"]
//	  - table:
//	      rows: [["Metrik", "Değer"], ["Form", "25+"]]
//	      header: true
//	  - definitions:                # "• Term: " in bold, then the text
//	      - {term: Users, text: "Kullanıcı bilgileri"}
//	  - lines: ["src/", "docs/"]    # one paragraph per line, no spacing
//	  - preformatted: |             # NoSpacing paragraph, newlines kept
//	      +----+
//	  - blank: 2
//	  - pageBreak: true
//
// Strings may reference variables as ${name}; "$$" is a literal dollar.
// Variable values go through dateutil.Resolve, so "auto:MMMM YYYY" yields
// the build month in the document locale.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-docxgen/internal/fileutil"
	"github.com/alnah/go-docxgen/internal/yamlutil"
)

var (
	// ErrParse indicates the definition is not valid YAML or fails validation.
	ErrParse = errors.New("invalid report definition")
	// ErrBlock indicates a block sets no content key or more than one.
	ErrBlock = errors.New("invalid report block")
	// ErrUndefinedVar indicates a ${name} reference without a value.
	ErrUndefinedVar = errors.New("undefined report variable")
)

// Report is a parsed report definition.
type Report struct {
	Title    string            `yaml:"title" validate:"required,max=200"`
	Output   string            `yaml:"output" validate:"omitempty,max=255"`
	Metadata Metadata          `yaml:"metadata"`
	Document DocumentSettings  `yaml:"document"`
	Page     *PageSettings     `yaml:"page"`
	Footer   *FooterSettings   `yaml:"footer"`
	Vars     map[string]string `yaml:"vars" validate:"dive,keys,required,max=64,endkeys,max=500"`
	Blocks   []Block           `yaml:"blocks" validate:"required,min=1,dive"`
}

// Metadata is recorded in the document properties. The title defaults to the
// report title.
type Metadata struct {
	Subject     string   `yaml:"subject" validate:"max=200"`
	Author      string   `yaml:"author" validate:"max=100"`
	Keywords    []string `yaml:"keywords" validate:"dive,max=50"`
	Description string   `yaml:"description" validate:"max=500"`
	Language    string   `yaml:"language" validate:"max=20"`
}

// DocumentSettings are document-wide run defaults.
type DocumentSettings struct {
	Font     string  `yaml:"font" validate:"max=64"`
	FontSize float64 `yaml:"fontSize" validate:"omitempty,gte=1,lte=1638"`
	Locale   string  `yaml:"locale" validate:"max=10"`
}

// PageSettings mirror docxgen.PageSettings.
type PageSettings struct {
	Size        string  `yaml:"size" validate:"omitempty,oneof=letter a4 legal"`
	Orientation string  `yaml:"orientation" validate:"omitempty,oneof=portrait landscape"`
	Margin      float64 `yaml:"margin" validate:"omitempty,gte=0.25,lte=3"`
}

// FooterSettings mirror docxgen.Footer.
type FooterSettings struct {
	Text       string `yaml:"text" validate:"max=500"`
	Align      string `yaml:"align" validate:"omitempty,oneof=left center right justify"`
	Italic     bool   `yaml:"italic"`
	PageNumber bool   `yaml:"pageNumber"`
}

// Block is one entry of the blocks list.
type Block struct {
	Heading      *string      `yaml:"heading"`
	Level        int          `yaml:"level" validate:"gte=0,lte=9"`
	Paragraph    *string      `yaml:"paragraph"`
	Runs         []Run        `yaml:"runs" validate:"dive"`
	Bullets      []string     `yaml:"bullets"`
	Numbered     []string     `yaml:"numbered"`
	Prefix       string       `yaml:"prefix" validate:"max=20"`
	Table        *Table       `yaml:"table"`
	Definitions  []Definition `yaml:"definitions" validate:"dive"`
	Lines        []string     `yaml:"lines"`
	Preformatted *string      `yaml:"preformatted"`
	Blank        int          `yaml:"blank" validate:"gte=0,lte=20"`
	PageBreak    bool         `yaml:"pageBreak"`

	Style   string   `yaml:"style" validate:"omitempty,oneof=Normal ListBullet ListNumber NoSpacing"`
	Align   string   `yaml:"align" validate:"omitempty,oneof=left center right justify"`
	Spacing *Spacing `yaml:"spacing"`
}

// Run is a formatted text run.
type Run struct {
	Text   string  `yaml:"text" validate:"required"`
	Bold   bool    `yaml:"bold"`
	Italic bool    `yaml:"italic"`
	Size   float64 `yaml:"size" validate:"omitempty,gte=1,lte=1638"`
	Color  string  `yaml:"color" validate:"max=7"`
	Font   string  `yaml:"font" validate:"max=64"`
}

// Table is a table block.
type Table struct {
	Rows        [][]string `yaml:"rows" validate:"required,min=1"`
	Header      bool       `yaml:"header"`
	BoldRows    []int      `yaml:"boldRows" validate:"dive,gte=0"`
	BoldColumns []int      `yaml:"boldColumns" validate:"dive,gte=0"`
	Style       string     `yaml:"style" validate:"omitempty,oneof=grid plain"`
}

// Definition is a "term: text" line.
type Definition struct {
	Term string `yaml:"term" validate:"required"`
	Text string `yaml:"text"`
}

// Spacing is paragraph spacing in points.
type Spacing struct {
	Before float64 `yaml:"before" validate:"gte=0,lte=1584"`
	After  float64 `yaml:"after" validate:"gte=0,lte=1584"`
}

// BlockKind names the content key a block sets.
type BlockKind string

const (
	KindHeading      BlockKind = "heading"
	KindParagraph    BlockKind = "paragraph"
	KindBullets      BlockKind = "bullets"
	KindNumbered     BlockKind = "numbered"
	KindTable        BlockKind = "table"
	KindDefinitions  BlockKind = "definitions"
	KindLines        BlockKind = "lines"
	KindPreformatted BlockKind = "preformatted"
	KindBlank        BlockKind = "blank"
	KindPageBreak    BlockKind = "pageBreak"
)

// Kind returns the block's content key, or ErrBlock when it sets none or
// several.
func (b *Block) Kind() (BlockKind, error) {
	var kinds []BlockKind
	add := func(set bool, k BlockKind) {
		if set {
			kinds = append(kinds, k)
		}
	}
	add(b.Heading != nil, KindHeading)
	add(b.Paragraph != nil || len(b.Runs) > 0, KindParagraph)
	add(len(b.Bullets) > 0, KindBullets)
	add(len(b.Numbered) > 0, KindNumbered)
	add(b.Table != nil, KindTable)
	add(len(b.Definitions) > 0, KindDefinitions)
	add(len(b.Lines) > 0, KindLines)
	add(b.Preformatted != nil, KindPreformatted)
	add(b.Blank > 0, KindBlank)
	add(b.PageBreak, KindPageBreak)

	switch len(kinds) {
	case 1:
		return kinds[0], nil
	case 0:
		return "", fmt.Errorf("%w: no content key", ErrBlock)
	default:
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = string(k)
		}
		return "", fmt.Errorf("%w: several content keys (%s)", ErrBlock, strings.Join(names, ", "))
	}
}

// Parse decodes and validates a report definition.
func Parse(data []byte) (*Report, error) {
	var r Report
	if err := yamlutil.UnmarshalValidated(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if r.Output != "" {
		if err := fileutil.ValidateBaseName(r.Output); err != nil {
			return nil, fmt.Errorf("%w: output must be a file name: %v", ErrParse, err)
		}
	}
	for i := range r.Blocks {
		if _, err := r.Blocks[i].Kind(); err != nil {
			return nil, fmt.Errorf("blocks[%d]: %w", i, err)
		}
	}
	return &r, nil
}

// OutputName returns the file name to save the report under: the output
// key, or a slug of the title, with a .docx extension. An output key that is
// not a plain file name is ignored.
func (r *Report) OutputName() string {
	name := r.Output
	if name == "" || fileutil.ValidateBaseName(name) != nil {
		name = fileutil.FileName(r.Title)
	}
	out, err := fileutil.EnsureExtension(name, "docx")
	if err != nil {
		return fileutil.DefaultFileName + ".docx"
	}
	return out
}
