// Package tablexport writes the tables of a document to an XLSX workbook,
// one worksheet per table.
package tablexport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"github.com/alnah/go-docxgen"
	"github.com/alnah/go-docxgen/internal/fileutil"
)

var (
	// ErrNoTables indicates the document has no table to export.
	ErrNoTables = errors.New("document has no tables")
	// ErrExport indicates the workbook could not be built or written.
	ErrExport = errors.New("failed to export tables")
)

const (
	maxSheetName      = 31 // Excel limit
	minColWidth       = 8.0
	maxColWidth       = 60.0
	firstSheet        = "Sheet1"
	filePerm          = 0o644
	invalidSheetChars = `:\/?*[]`
)

// Sheet is one table with the worksheet name it is exported under.
type Sheet struct {
	Name  string
	Table *docxgen.Table
}

// Sheets collects the tables of doc in order. Each sheet is named after the
// closest heading above its table; tables without one are "Table N". Names
// are made unique and fit Excel's rules.
func Sheets(doc *docxgen.Document) []Sheet {
	var (
		out     []Sheet
		heading string
		used    = make(map[string]bool)
	)
	for _, b := range doc.Blocks() {
		switch v := b.(type) {
		case *docxgen.Heading:
			heading = v.Text()
		case *docxgen.Table:
			name := sheetName(heading)
			if name == "" {
				name = "Table " + strconv.Itoa(len(out)+1)
			}
			name = uniqueName(name, used)
			used[strings.ToLower(name)] = true
			out = append(out, Sheet{Name: name, Table: v})
		}
	}
	return out
}

// Write exports the tables of doc as an XLSX workbook to w.
func Write(w io.Writer, doc *docxgen.Document) error {
	sheets := Sheets(doc)
	if len(sheets) == 0 {
		return ErrNoTables
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}

	for i, s := range sheets {
		if i == 0 {
			err = f.SetSheetName(firstSheet, s.Name)
		} else {
			_, err = f.NewSheet(s.Name)
		}
		if err != nil {
			return fmt.Errorf("%w: sheet %q: %v", ErrExport, s.Name, err)
		}
		if err := fillSheet(f, s, bold); err != nil {
			return fmt.Errorf("%w: sheet %q: %v", ErrExport, s.Name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}

// WriteFile exports the tables of doc to path on fsys, atomically.
func WriteFile(fsys afero.Fs, path string, doc *docxgen.Document) error {
	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(fsys, path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}

func fillSheet(f *excelize.File, s Sheet, boldStyle int) error {
	t := s.Table
	widths := make([]int, t.Cols())

	for i := range t.Rows() {
		for j := range t.Cols() {
			c, err := t.Cell(i, j)
			if err != nil {
				return err
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(s.Name, ref, c.Text); err != nil {
				return err
			}
			if c.Bold {
				if err := f.SetCellStyle(s.Name, ref, ref, boldStyle); err != nil {
					return err
				}
			}
			widths[j] = max(widths[j], utf8.RuneCountInString(c.Text))
		}
	}

	for j, w := range widths {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		width := min(max(float64(w)+2, minColWidth), maxColWidth)
		if err := f.SetColWidth(s.Name, col, col, width); err != nil {
			return err
		}
	}

	if t.HeaderRow() && t.Rows() > 1 {
		return f.SetPanes(s.Name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
	}
	return nil
}

// sheetName strips characters Excel rejects and truncates to the limit.
func sheetName(s string) string {
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidSheetChars, r) {
			return -1
		}
		return r
	}, s)
	s = strings.Trim(strings.TrimSpace(s), "'")
	return truncate(s, maxSheetName)
}

func uniqueName(name string, used map[string]bool) string {
	if !used[strings.ToLower(name)] {
		return name
	}
	for n := 2; ; n++ {
		suffix := " (" + strconv.Itoa(n) + ")"
		candidate := truncate(name, maxSheetName-utf8.RuneCountInString(suffix)) + suffix
		if !used[strings.ToLower(candidate)] {
			return candidate
		}
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}
