// Package tokdump renders scanned token streams for people and tools:
// NDJSON and YAML rows, a one-line-per-token debug dump, the tabular
// listing, stream diffs and kind statistics.
package tokdump

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/desilang/cslex/compiler/internal/lexer"
)

// Row is the serialized form of one token.
// Example rows:
//
//	{"kind":"Identifier","text":"foo","line":3,"col":5}
//	{"kind":"Error","text":"Unterminated string","line":1,"col":9,"key":"unterminated_string"}
type Row struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
	// Only set on error rows: the diagnostic catalog key.
	Key string `json:"key,omitempty"`
}

// RowOf converts a token to its serialized form.
func RowOf(t lexer.Token) Row {
	r := Row{Kind: t.Kind.String(), Text: t.Lex, Line: t.Line, Col: t.Col}
	if k, ok := lexer.Classify(t); ok {
		r.Key = k.Key()
	}
	return r
}

// Rows converts a token slice.
func Rows(toks []lexer.Token) []Row {
	out := make([]Row, len(toks))
	for i, t := range toks {
		out[i] = RowOf(t)
	}
	return out
}

// Token converts r back into a token. Unknown kinds are an error.
func (r Row) Token() (lexer.Token, error) {
	k, ok := lexer.ParseKind(r.Kind)
	if !ok {
		return lexer.Token{}, fmt.Errorf("unknown token kind %q at %d:%d", r.Kind, r.Line, r.Col)
	}
	return lexer.Token{Kind: k, Lex: r.Text, Line: r.Line, Col: r.Col}, nil
}

// Tokens converts rows back into tokens, failing on the first unknown kind.
func Tokens(rows []Row) ([]lexer.Token, error) {
	out := make([]lexer.Token, 0, len(rows))
	for i, r := range rows {
		t, err := r.Token()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// WriteNDJSON writes one JSON object per token.
func WriteNDJSON(w io.Writer, toks []lexer.Token) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, t := range toks {
		if err := enc.Encode(RowOf(t)); err != nil {
			return err
		}
	}
	return nil
}

// ParseNDJSON reads NDJSON rows from r.
// Lines that fail to parse as JSON are skipped; a non-nil error reports
// how many were skipped, alongside the rows that did parse.
func ParseNDJSON(r io.Reader) ([]Row, error) {
	var rows []Row

	sc := bufio.NewScanner(r)
	// Long comments make long rows: 64 KiB initial, up to 8 MiB max.
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	lineNo := 0
	bad := 0
	var badLines []string
	for sc.Scan() {
		lineNo++
		raw := strings.TrimSpace(sc.Text())
		// Be tolerant of a BOM on any line (most importantly line 1).
		raw = strings.TrimPrefix(raw, "\ufeff")
		if raw == "" {
			continue
		}

		var row Row
		if err := json.Unmarshal([]byte(raw), &row); err != nil {
			bad++
			if len(badLines) < 5 {
				badLines = append(badLines, fmt.Sprintf("L%d: %s", lineNo, raw))
			}
			continue
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return rows, err
	}
	if bad > 0 {
		return rows, fmt.Errorf("ignored %d malformed NDJSON line(s), first few: %s",
			bad, strings.Join(badLines, " | "))
	}
	return rows, nil
}
