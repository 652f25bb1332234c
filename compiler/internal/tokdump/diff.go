package tokdump

import (
	"fmt"
	"strings"

	"github.com/desilang/cslex/compiler/internal/lexer"
	"github.com/desilang/cslex/compiler/internal/term"
)

// DiffRow is one aligned pair of tokens (by index). A side past the end of
// its stream is a zero Row.
type DiffRow struct {
	Index int
	Left  Row
	Right Row
}

// Same reports whether both sides have the same kind and text. Positions
// are ignored so that a shifted stream only shows real changes.
func (r DiffRow) Same() bool {
	return r.Left.Kind == r.Right.Kind && r.Left.Text == r.Right.Text
}

// BuildDiff aligns two token streams by index; the result has
// max(len(a), len(b)) rows.
func BuildDiff(a, b []lexer.Token) []DiffRow {
	rows := make([]DiffRow, 0, max(len(a), len(b)))
	left, right := lexer.NewStream(a), lexer.NewStream(b)
	for i := 0; left.More() || right.More(); i++ {
		r := DiffRow{Index: i}
		if left.More() {
			r.Left = RowOf(left.Next())
		}
		if right.More() {
			r.Right = RowOf(right.Next())
		}
		rows = append(rows, r)
	}
	return rows
}

// Changed counts rows whose sides differ.
func Changed(rows []DiffRow) int {
	n := 0
	for _, r := range rows {
		if !r.Same() {
			n++
		}
	}
	return n
}

// FormatDiff pretty prints a side-by-side diff table.
// If limit>0, only the first limit rows are printed; with changedOnly,
// identical rows are skipped (and do not count against limit).
func FormatDiff(rows []DiffRow, limit int, changedOnly bool) string {
	var b strings.Builder

	term.Bprintf(&b, "%-6s | %-7s | %-11s | %-30s || %-7s | %-11s | %-30s\n",
		"idx", "A POS", "A KIND", "A TEXT", "B POS", "B KIND", "B TEXT")
	term.Bprintf(&b, "%s\n", strings.Repeat("-", 6+3+7+3+11+3+30+4+7+3+11+3+30))

	shown := 0
	for _, r := range rows {
		if limit > 0 && shown >= limit {
			break
		}
		if changedOnly && r.Same() {
			continue
		}
		shown++
		mark := " "
		if !r.Same() {
			mark = "*"
		}
		term.Bprintf(&b, "%-5d%s | %-7s | %-11s | %-30s || %-7s | %-11s | %-30s\n",
			r.Index, mark,
			pos(r.Left), label(r.Left.Kind), "'"+normalizeShort(r.Left.Text)+"'",
			pos(r.Right), label(r.Right.Kind), "'"+normalizeShort(r.Right.Text)+"'",
		)
	}
	return b.String()
}

func label(kind string) string {
	if kind == "" {
		return "-"
	}
	return kind
}

func pos(r Row) string {
	if r.Kind == "" {
		return ""
	}
	return fmt.Sprintf("%d:%d", r.Line, r.Col)
}
