package diag

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/desilang/cslex/compiler/internal/term"
)

const tabWidth = 4

// RenderRustStyle formats d with the offending source line and a caret:
//
//	error[CSL0003]: unrecognized character '$'
//	 --> a.cs:1:5
//	 1 | int $x;
//	   |     ^
//	help: this character does not start any token
func RenderRustStyle(d Diagnostic, src string) string {
	var b strings.Builder
	if d.Code != "" {
		term.Bprintf(&b, "%s[%s]: %s\n", d.Level, d.Code, d.Message)
	} else {
		term.Bprintf(&b, "%s: %s\n", d.Level, d.Message)
	}
	if d.Span.Start.Line > 0 && d.Span.Start.Col > 0 {
		if d.File != "" {
			term.Bprintf(&b, " --> %s:%d:%d\n", d.File, d.Span.Start.Line, d.Span.Start.Col)
		} else {
			term.Bprintf(&b, " --> %d:%d\n", d.Span.Start.Line, d.Span.Start.Col)
		}
		printLineWithUnderlines(&b, d, src)
	}

	if strings.TrimSpace(d.Help) != "" {
		term.Bprintf(&b, "help: %s\n", d.Help)
	}
	for _, s := range d.Suggest {
		lead := "help"
		if s.Applicability != "" {
			lead = "help (" + string(s.Applicability) + ")"
		}
		msg := s.Message
		if msg == "" && s.Replacement != "" {
			msg = "replace with " + strconv.Quote(s.Replacement)
		}
		if msg != "" {
			term.Bprintf(&b, "%s: %s\n", lead, msg)
		}
	}
	return b.String()
}

func printLineWithUnderlines(b *strings.Builder, d Diagnostic, src string) {
	lineText := getLineText(src, d.Span.Start.Line)
	lnStr := strconv.Itoa(d.Span.Start.Line)
	linePrefix := " " + lnStr + " | "
	underPrefix := " " + strings.Repeat(" ", len(lnStr)) + " | "

	term.Bprintf(b, "%s%s\n", linePrefix, expandTabs(lineText))
	b.WriteString(underPrefix)
	writeUnderline(b, lineText, d.Span.Start.Col, d.Span.End.Col, d.Label)
	b.WriteByte('\n')

	for _, sg := range d.Suggest {
		if sg.At.Line != d.Span.Start.Line {
			continue
		}
		col := sg.At.Col
		if col == 0 {
			col = utf8.RuneCountInString(lineText) + 1
		}
		label := sg.Label
		if label == "" && sg.Replacement != "" {
			label = "insert " + strconv.Quote(sg.Replacement)
		}
		b.WriteString(underPrefix)
		writeUnderline(b, lineText, col, 0, label)
		b.WriteByte('\n')
	}
}

// writeUnderline draws a caret under rune column col (1-based) of line, and
// tildes up to endCol (exclusive) when given.
func writeUnderline(b *strings.Builder, line string, col, endCol int, label string) {
	runes := []rune(line)
	start := visualWidth(runes[:clamp(col-1, 0, len(runes))])
	span := 1
	if endCol > col {
		stop := clamp(endCol-1, col, len(runes))
		span = max(visualWidth(runes[clamp(col-1, 0, len(runes)):stop]), 1)
	}
	b.WriteString(strings.Repeat(" ", start))
	b.WriteString("^")
	b.WriteString(strings.Repeat("~", span-1))
	if strings.TrimSpace(label) != "" {
		b.WriteString(" ")
		b.WriteString(label)
	}
}

// visualWidth counts terminal cells: tabs are tabWidth, East Asian wide and
// fullwidth runes take two cells.
func visualWidth(rs []rune) int {
	n := 0
	for _, r := range rs {
		switch {
		case r == '\t':
			n += tabWidth
		default:
			n += term.CellWidth(string(r))
		}
	}
	return n
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// getLineText returns line (1-based) of src without its terminator.
func getLineText(src string, line int) string {
	if line <= 0 {
		return ""
	}
	cur := 1
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			if cur == line {
				return strings.TrimSuffix(src[start:i], "\r")
			}
			cur++
			start = i + 1
		}
	}
	if cur == line {
		return src[start:]
	}
	return ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
