package term

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"
)

// Table renders rows in a bordered, left-aligned grid:
//
//	 ---------------------
//	 | Line | Type       |
//	 ---------------------
//	 | 1    | Identifier |
//	 ---------------------
//
//	 Count: 1
type Table struct {
	header []string
	rows   [][]string
}

func NewTable(header ...string) *Table {
	return &Table{header: header}
}

// AddRow appends a row; cells are formatted with %v. Missing cells render
// empty and extra cells are dropped.
func (t *Table) AddRow(cells ...any) {
	row := make([]string, len(t.header))
	for i := range row {
		if i < len(cells) {
			row[i] = fmt.Sprint(cells[i])
		}
	}
	t.rows = append(t.rows, row)
}

func (t *Table) String() string {
	var b strings.Builder
	t.Write(&b)
	return b.String()
}

func (t *Table) Write(w io.Writer) {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = CellWidth(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			widths[i] = max(widths[i], CellWidth(c))
		}
	}

	total := 1
	for _, n := range widths {
		total += n + 3
	}
	rule := " " + strings.Repeat("-", total) + "\n"

	Wprintf(w, "%s", rule)
	writeRow(w, t.header, widths)
	Wprintf(w, "%s", rule)
	for _, row := range t.rows {
		writeRow(w, row, widths)
	}
	Wprintf(w, "%s", rule)
	Wprintf(w, "\n Count: %d\n", len(t.rows))
}

func writeRow(w io.Writer, cells []string, widths []int) {
	var b strings.Builder
	b.WriteString(" |")
	for i, c := range cells {
		b.WriteByte(' ')
		b.WriteString(c)
		b.WriteString(strings.Repeat(" ", widths[i]-CellWidth(c)))
		b.WriteString(" |")
	}
	b.WriteByte('\n')
	Wprintf(w, "%s", b.String())
}

// CellWidth is the number of terminal cells s occupies. East Asian wide and
// fullwidth runes count as two.
func CellWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
