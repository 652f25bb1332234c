package tokdump

import (
	"sort"
	"strings"

	"github.com/desilang/cslex/compiler/internal/lexer"
	"github.com/desilang/cslex/compiler/internal/term"
)

// Stats tallies token kinds across one or more scans.
type Stats struct {
	Files int
	// number of tokens processed, EOF excluded
	Total int
	Lines int

	Kinds    map[string]int // kind name -> count
	Keywords map[string]int // keyword text -> count
	Errors   map[string]int // error kind -> count
}

// NewStats initializes the counters.
func NewStats() *Stats {
	return &Stats{
		Kinds:    map[string]int{},
		Keywords: map[string]int{},
		Errors:   map[string]int{},
	}
}

// Tally adds one scanned file, reading src up to its EOF token, which
// supplies the line count.
func (s *Stats) Tally(src lexer.Source) {
	s.Files++
	for {
		t := src.Next()
		if t.Kind == lexer.TokEOF {
			s.Lines += t.Line
			return
		}
		s.Total++
		s.Kinds[t.Kind.String()]++
		if t.Kind == lexer.TokKeyword {
			s.Keywords[t.Lex]++
		}
		if k, ok := lexer.Classify(t); ok {
			s.Errors[k.String()]++
		}
	}
}

// ErrorCount is the number of error tokens seen.
func (s *Stats) ErrorCount() int { return s.Kinds[lexer.TokError.String()] }

// RenderReport returns a small human-readable summary. top limits the
// keyword list (0 shows all).
func (s *Stats) RenderReport(top int) string {
	var b strings.Builder
	term.Bprintf(&b, "files: %d  lines: %d  tokens: %d  errors: %d\n", s.Files, s.Lines, s.Total, s.ErrorCount())

	term.Bprintf(&b, "kinds:\n")
	for _, e := range sortedCounts(s.Kinds) {
		term.Bprintf(&b, "  %-12s %d\n", e.name, e.n)
	}
	if len(s.Keywords) > 0 {
		term.Bprintf(&b, "keywords (%d distinct):\n", len(s.Keywords))
		kws := sortedCounts(s.Keywords)
		if top > 0 && top < len(kws) {
			kws = kws[:top]
		}
		for _, e := range kws {
			term.Bprintf(&b, "  %-12s %d\n", e.name, e.n)
		}
	}
	if len(s.Errors) > 0 {
		term.Bprintf(&b, "errors:\n")
		for _, e := range sortedCounts(s.Errors) {
			term.Bprintf(&b, "  %-22s %d\n", e.name, e.n)
		}
	}
	return b.String()
}

type count struct {
	name string
	n    int
}

// sortedCounts orders by count descending, then name.
func sortedCounts(m map[string]int) []count {
	out := make([]count, 0, len(m))
	for k, v := range m {
		out = append(out, count{k, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].n != out[j].n {
			return out[i].n > out[j].n
		}
		return out[i].name < out[j].name
	})
	return out
}
