package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desilang/cslex/compiler/internal/lexer"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestLexPretty(t *testing.T) {
	p := writeFile(t, t.TempDir(), "a.cs", "int x;")
	code, out, stderr := runCLI(t, "lex", "--format=pretty", p)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, ""+
		"1:4  Keyword      'int'\n"+
		"1:5  Whitespace   ' '\n"+
		"1:6  Identifier   'x'\n"+
		"1:7  Punctuation  ';'\n"+
		"1:7  EOF\n", out)
}

func TestLexTableIsDefault(t *testing.T) {
	p := writeFile(t, t.TempDir(), "a.cs", "x")
	code, out, _ := runCLI(t, "lex", p)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "| Line | Column | Type")
	assert.Contains(t, out, " Count: 2\n")
}

func TestLexSkipTriviaAndLimit(t *testing.T) {
	p := writeFile(t, t.TempDir(), "a.cs", "int /* c */ x ;")
	code, out, _ := runCLI(t, "lex", "-f", "ndjson", "--skip-trivia", "--limit=2", p)
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	var row struct{ Kind, Text string }
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &row))
	assert.Equal(t, "Identifier", row.Kind)
	assert.Equal(t, "x", row.Text)
}

func TestLexStrict(t *testing.T) {
	p := writeFile(t, t.TempDir(), "bad.cs", "x $")
	code, _, _ := runCLI(t, "lex", p)
	assert.Equal(t, 0, code)
	code, _, stderr := runCLI(t, "lex", "--strict", p)
	assert.Equal(t, 1, code)
	assert.Empty(t, stderr)
}

func TestLexMultipleFilesHaveHeaders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.cs", "a")
	writeFile(t, dir, "sub/b.cs", "b")
	writeFile(t, dir, "skip.g.cs", "c")
	code, out, _ := runCLI(t, "lex", "--format=pretty", "--exclude=*.g.cs", dir)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "==> "+filepath.Join(dir, "a.cs")+" <==\n")
	assert.Contains(t, out, "==> "+filepath.Join(dir, "sub", "b.cs")+" <==\n")
	assert.NotContains(t, out, "skip.g.cs")
}

func TestLexMissingFile(t *testing.T) {
	code, _, stderr := runCLI(t, "lex", filepath.Join(t.TempDir(), "nope.cs"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "not found")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.cs", "class A { }")
	bad := writeFile(t, dir, "bad.cs", "var s = \"open")

	code, _, stderr := runCLI(t, "check", good)
	assert.Equal(t, 0, code, stderr)

	code, _, stderr = runCLI(t, "check", good, bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error[CSL0001]: unterminated string")
	assert.Contains(t, stderr, " --> "+bad+":1:")
	assert.Contains(t, stderr, "1 error(s) in 1 of 2 file(s)\n")
}

func TestDiff(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.cs", "int x = 1;")
	b := writeFile(t, dir, "b.cs", "int y = 1;")
	code, out, _ := runCLI(t, "diff", "--changed", "--skip-trivia", a, b)
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "'x'")
	assert.Contains(t, lines[2], "'y'")
}

func TestDiffAgainstSavedDump(t *testing.T) {
	for _, format := range []string{"ndjson", "yaml"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			a := writeFile(t, dir, "a.cs", "int x = 1;")
			b := writeFile(t, dir, "b.cs", "int y = 1;")

			code, dump, stderr := runCLI(t, "lex", "-f", format, a)
			require.Equal(t, 0, code, stderr)
			saved := writeFile(t, dir, "a."+format, dump)

			code, out, stderr := runCLI(t, "diff", "--changed", saved, b)
			require.Equal(t, 0, code, stderr)
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			require.Len(t, lines, 3)
			assert.Contains(t, lines[2], "1:6")
			assert.Contains(t, lines[2], "'x'")
			assert.Contains(t, lines[2], "'y'")

			// a dump diffed against its own source is identical
			code, out, _ = runCLI(t, "diff", "--changed", saved, a)
			require.Equal(t, 0, code)
			assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 2)
		})
	}
}

func TestDiffDumpErrors(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.cs", "x")

	partial := writeFile(t, dir, "partial.ndjson", ""+
		`{"kind":"Identifier","text":"x","line":1,"col":2}`+"\n"+
		"not json\n"+
		`{"kind":"EOF","text":"","line":1,"col":2}`+"\n")
	code, _, stderr := runCLI(t, "diff", partial, b)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "cslex: warning: "+partial+": ignored 1 malformed NDJSON line(s)")

	unknown := writeFile(t, dir, "unknown.ndjson", `{"kind":"Nonsense","text":"x","line":1,"col":2}`+"\n")
	code, _, stderr = runCLI(t, "diff", unknown, b)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown token kind "Nonsense"`)

	garbage := writeFile(t, dir, "garbage.ndjson", "nope\n")
	code, _, stderr = runCLI(t, "diff", garbage, b)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, garbage+": ignored 1 malformed")
}

func TestStats(t *testing.T) {
	p := writeFile(t, t.TempDir(), "a.cs", "public class A { public int x; }")
	code, out, _ := runCLI(t, "stats", "--top=1", p)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "files: 1  lines: 1  tokens: ")
	assert.Contains(t, out, "  public       2\n")
	assert.NotContains(t, out, "  class ")
}

func TestKeywordsAndOperators(t *testing.T) {
	code, out, _ := runCLI(t, "keywords")
	require.Equal(t, 0, code)
	assert.Equal(t, lexer.Keywords(), strings.Fields(out))

	code, out, _ = runCLI(t, "keywords", "--operators")
	require.Equal(t, 0, code)
	ops := strings.Fields(out)
	assert.Equal(t, lexer.Operators(), ops)
	assert.Equal(t, ">>>", ops[len(ops)-1])
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "dev\n", out)

	code, out, _ = runCLI(t, "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "dev\n", out)
}

func TestUsageErrors(t *testing.T) {
	code, _, stderr := runCLI(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "cslex: ")

	code, _, _ = runCLI(t, "lex", "--format=xml", "a.cs")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "diff", "only-one.cs")
	assert.Equal(t, 2, code)
}

func TestHelpExitsZero(t *testing.T) {
	code, out, _ := runCLI(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "lex")
	assert.Contains(t, out, "install-completions")
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.cs", "a b")
	cfg := writeFile(t, dir, "cfg.yaml", "format: ndjson\nskip_trivia: true\n")

	code, out, stderr := runCLI(t, "--config", cfg, "lex", p)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, ""+
		`{"kind":"Identifier","text":"a","line":1,"col":2}`+"\n"+
		`{"kind":"Identifier","text":"b","line":1,"col":4}`+"\n"+
		`{"kind":"EOF","text":"","line":1,"col":4}`+"\n", out)

	// flags still win over the file
	code, out, _ = runCLI(t, "--config", cfg, "lex", "--format=pretty", p)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "1:2  Identifier"), out)
}

func TestLoadYAMLEmpty(t *testing.T) {
	r, err := loadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, r)

	_, err = loadYAML(strings.NewReader("format: [unclosed"))
	assert.Error(t, err)
}
