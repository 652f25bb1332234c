package tokdump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/d4l3k/messagediff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desilang/cslex/compiler/internal/lexer"
)

func TestNDJSONRoundTrip(t *testing.T) {
	toks := lexer.Tokenize("x \"a")
	var buf bytes.Buffer
	require.NoError(t, WriteNDJSON(&buf, toks))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `{"kind":"Identifier","text":"x","line":1,"col":2}`, lines[0])
	assert.Equal(t, `{"kind":"Error","text":"Unterminated string","line":1,"col":5,"key":"unterminated_string"}`, lines[2])
	assert.Equal(t, `{"kind":"EOF","text":"","line":1,"col":5}`, lines[3])

	rows, err := ParseNDJSON(&buf)
	require.NoError(t, err)
	back, err := Tokens(rows)
	require.NoError(t, err)
	if diff, equal := messagediff.PrettyDiff(toks, back); !equal {
		t.Fatalf("round trip differs:\n%s", diff)
	}
}

func TestParseNDJSONTolerance(t *testing.T) {
	raw := "\ufeff" + `{"kind":"Keyword","text":"class","line":1,"col":6}

not json
{"kind":"EOF","text":"","line":1,"col":6}
`
	rows, err := ParseNDJSON(strings.NewReader(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ignored 1 malformed NDJSON line(s)")
	assert.Contains(t, err.Error(), "L3: not json")
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Kind: "Keyword", Text: "class", Line: 1, Col: 6}, rows[0])
}

func TestRowUnknownKind(t *testing.T) {
	_, err := Tokens([]Row{{Kind: "Identifier", Text: "a"}, {Kind: "IDENT", Text: "b", Line: 2, Col: 3}})
	require.Error(t, err)
	assert.Equal(t, `row 1: unknown token kind "IDENT" at 2:3`, err.Error())
}

func TestDebugFormat(t *testing.T) {
	got := DebugFormat(lexer.Tokenize("int x"), 0)
	want := "" +
		"1:4  Keyword      'int'\n" +
		"1:5  Whitespace   ' '\n" +
		"1:6  Identifier   'x'\n" +
		"1:6  EOF\n"
	assert.Equal(t, want, got)

	limited := DebugFormat(lexer.Tokenize("int x"), 1)
	assert.Equal(t, "1:4  Keyword      'int'\n", limited)
}

func TestDebugFormatShortensLongText(t *testing.T) {
	long := "// " + strings.Repeat("x", 60)
	got := DebugFormat(lexer.Tokenize(long), 1)
	assert.Contains(t, got, "'// "+strings.Repeat("x", 34)+"...'")
}

func TestTable(t *testing.T) {
	out := Table(lexer.Tokenize("a\nb")).String()
	assert.Contains(t, out, " | Line | Column | Type       | Value |\n")
	assert.Contains(t, out, " | 1    | 2      | Identifier | a     |\n")
	assert.Contains(t, out, " | 2    | 1      | Whitespace |       |\n")
	assert.Contains(t, out, " | 2    | 2      | EOF        |       |\n")
	assert.Contains(t, out, " Count: 4\n")
}

func TestYAMLRoundTrip(t *testing.T) {
	toks := lexer.Tokenize("class C { }")
	data, err := EncodeYAML(toks)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: Keyword")

	rows, err := DecodeYAML(data)
	require.NoError(t, err)
	back, err := Tokens(rows)
	require.NoError(t, err)
	assert.Equal(t, toks, back)
}

func TestDiff(t *testing.T) {
	a := lexer.Tokenize("int x = 1;")
	b := lexer.Tokenize("int y = 1;")
	rows := BuildDiff(a, b)
	require.Len(t, rows, len(a))
	assert.Equal(t, 1, Changed(rows))
	assert.False(t, rows[2].Same())

	out := FormatDiff(rows, 0, true)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[2], "2    * | 1:6"), lines[2])
	assert.Contains(t, lines[2], "'x'")
	assert.Contains(t, lines[2], "'y'")
}

func TestDiffUnevenStreams(t *testing.T) {
	rows := BuildDiff(lexer.Tokenize("x"), lexer.Tokenize("x;"))
	require.Len(t, rows, 3)
	assert.Equal(t, Row{}, rows[2].Left)
	assert.Equal(t, "EOF", rows[2].Right.Kind)
	assert.Equal(t, 2, Changed(rows))

	out := FormatDiff(rows, 2, false)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 4)
	last := strings.Split(strings.TrimRight(FormatDiff(rows, 0, false), "\n"), "\n")[4]
	assert.Contains(t, last, "| -"+strings.Repeat(" ", 10)+" | ''", last)
}

func TestStats(t *testing.T) {
	s := NewStats()
	s.Tally(lexer.NewStream(lexer.Tokenize("public class A {}\n$")))
	s.Tally(lexer.NewStream(lexer.Tokenize("class B")))

	assert.Equal(t, 2, s.Files)
	assert.Equal(t, 3, s.Lines)
	assert.Equal(t, 2, s.Keywords["class"])
	assert.Equal(t, 1, s.Keywords["public"])
	assert.Equal(t, 1, s.ErrorCount())
	assert.Equal(t, 1, s.Errors["UnrecognizedCharacter"])

	report := s.RenderReport(1)
	assert.Contains(t, report, "files: 2  lines: 3  tokens: 13  errors: 1\n")
	assert.Contains(t, report, "keywords (2 distinct):\n  class        2\n")
	assert.NotContains(t, report, "public")
	assert.Contains(t, report, "UnrecognizedCharacter")
}
