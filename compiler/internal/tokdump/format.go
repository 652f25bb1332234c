package tokdump

import (
	"fmt"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/desilang/cslex/compiler/internal/lexer"
	"github.com/desilang/cslex/compiler/internal/term"
)

// normalizeShort trims long texts and escapes newlines/tabs for one-line display.
func normalizeShort(s string) string {
	if r := []rune(s); len(r) > 40 {
		s = string(r[:37]) + "..."
	}
	return escapeControl(s)
}

func escapeControl(s string) string {
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return strings.ReplaceAll(s, "\t", "\\t")
}

// DebugFormat returns a readable dump, one token per line:
// "line:col  KIND  'text'". If limit > 0 only the first limit tokens are shown.
func DebugFormat(toks []lexer.Token, limit int) string {
	var b strings.Builder
	n := len(toks)
	if limit > 0 && limit < n {
		n = limit
	}
	for _, t := range toks[:n] {
		if t.Lex == "" {
			term.Bprintf(&b, "%d:%d  %s\n", t.Line, t.Col, t.Kind)
			continue
		}
		term.Bprintf(&b, "%d:%d  %-11s  '%s'\n", t.Line, t.Col, t.Kind, normalizeShort(t.Lex))
	}
	return b.String()
}

// Table lays tokens out in Line / Column / Type / Value columns. Values are
// trimmed, so whitespace tokens show up empty.
func Table(toks []lexer.Token) *term.Table {
	tb := term.NewTable("Line", "Column", "Type", "Value")
	for _, t := range toks {
		tb.AddRow(t.Line, t.Col, t.Kind, escapeControl(strings.TrimSpace(t.Lex)))
	}
	return tb
}

// EncodeYAML renders tokens as a YAML list of rows.
func EncodeYAML(toks []lexer.Token) ([]byte, error) {
	out, err := yaml.Marshal(Rows(toks))
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}

// DecodeYAML is the inverse of EncodeYAML.
func DecodeYAML(data []byte) ([]Row, error) {
	var rows []Row
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return rows, nil
}
