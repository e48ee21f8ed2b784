package docxgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-docxgen/internal/ooxml"
)

// MaxTableCells bounds rows*cols for a single table.
const MaxTableCells = 100_000

// Table is a rows × cols grid of text cells. Its dimensions are fixed at
// creation; out-of-range access fails with ErrCellOutOfRange and leaves the
// table unchanged.
type Table struct {
	rows, cols int
	cells      [][]Cell
	style      TableStyle
	header     bool
}

func newTable(rows, cols int, cfg tableConfig) (*Table, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d (rows and columns must be positive)", ErrInvalidTableSize, rows, cols)
	}
	if rows > MaxTableCells/cols {
		return nil, fmt.Errorf("%w: %dx%d (more than %d cells)", ErrInvalidTableSize, rows, cols, MaxTableCells)
	}
	if err := cfg.style.Validate(); err != nil {
		return nil, err
	}

	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	t := &Table{rows: rows, cols: cols, cells: cells, style: cfg.style}
	t.SetHeaderRow(cfg.header)
	return t, nil
}

// Kind implements Block.
func (t *Table) Kind() BlockKind { return KindTable }

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// Style returns the table style.
func (t *Table) Style() TableStyle { return t.style }

// HeaderRow reports whether row 0 is a header row.
func (t *Table) HeaderRow() bool { return t.header }

func (t *Table) checkIndex(row, col int) error {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrCellOutOfRange, row, col, t.rows, t.cols)
	}
	return nil
}

// Cell returns the cell at (row, col).
func (t *Table) Cell(row, col int) (Cell, error) {
	if err := t.checkIndex(row, col); err != nil {
		return Cell{}, err
	}
	return t.cells[row][col], nil
}

// SetCell replaces the text of the cell at (row, col), keeping its bold flag.
func (t *Table) SetCell(row, col int, text string) error {
	if err := t.checkIndex(row, col); err != nil {
		return err
	}
	if err := checkText(text); err != nil {
		return err
	}
	t.cells[row][col].Text = text
	return nil
}

// SetCellBold makes the whole cell at (row, col) bold, however many runs it
// renders to.
func (t *Table) SetCellBold(row, col int) error {
	if err := t.checkIndex(row, col); err != nil {
		return err
	}
	t.cells[row][col].Bold = true
	return nil
}

// SetRow sets the leading cells of row from values. Either every value is
// written or, when row is out of range or there are more values than
// columns, none is.
func (t *Table) SetRow(row int, values ...string) error {
	if len(values) == 0 {
		return t.checkIndex(row, 0)
	}
	if err := t.checkIndex(row, len(values)-1); err != nil {
		return err
	}
	if err := checkTexts(values...); err != nil {
		return err
	}
	for col, v := range values {
		t.cells[row][col].Text = v
	}
	return nil
}

// SetRowBold makes every cell of row bold.
func (t *Table) SetRowBold(row int) error {
	if err := t.checkIndex(row, 0); err != nil {
		return err
	}
	for col := range t.cells[row] {
		t.cells[row][col].Bold = true
	}
	return nil
}

// SetHeaderRow marks row 0 as a header: its cells become bold and the row
// repeats at the top of each page the table spans. Turning it off keeps the
// cells' bold flags.
func (t *Table) SetHeaderRow(on bool) {
	t.header = on
	if on {
		_ = t.SetRowBold(0)
	}
}

// Values returns a copy of the cell texts.
func (t *Table) Values() [][]string {
	out := make([][]string, t.rows)
	for i, row := range t.cells {
		out[i] = make([]string, t.cols)
		for j, c := range row {
			out[i][j] = c.Text
		}
	}
	return out
}

// String implements Block.
func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table(%dx%d, rows=[", t.rows, t.cols)
	for i, row := range t.cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		for j, c := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(c.Text))
		}
		b.WriteByte(']')
	}
	b.WriteString("])")
	return b.String()
}

func (t *Table) render(rc *renderContext) any {
	colWidth := rc.contentWidth / t.cols
	width := strconv.Itoa(colWidth)

	style := ooxml.StyleTableGrid
	if t.style == TablePlain {
		style = ooxml.StyleTableNone
	}

	out := &ooxml.Table{
		Props: ooxml.TableProps{
			Style: &ooxml.Val{Val: style},
			Width: ooxml.TableWidth{W: "0", Type: "auto"},
			Look:  &ooxml.TableLook{Val: "04A0"},
		},
	}
	for range t.cols {
		out.Grid.Cols = append(out.Grid.Cols, ooxml.GridCol{W: width})
	}

	for i, row := range t.cells {
		tr := ooxml.TableRow{}
		if i == 0 && t.header {
			tr.Props = &ooxml.RowProps{Header: &ooxml.Empty{}}
		}
		for _, c := range row {
			p := ooxml.Paragraph{}
			if c.Text != "" {
				r := ooxml.Run{Content: textContent(c.Text)}
				if c.Bold {
					r.Props = &ooxml.RunProps{Bold: &ooxml.Empty{}}
				}
				p.Runs = []ooxml.Run{r}
			}
			tr.Cells = append(tr.Cells, ooxml.TableCell{
				Props:      ooxml.CellProps{Width: ooxml.TableWidth{W: width, Type: "dxa"}},
				Paragraphs: []ooxml.Paragraph{p},
			})
		}
		out.Rows = append(out.Rows, tr)
	}
	return out
}
