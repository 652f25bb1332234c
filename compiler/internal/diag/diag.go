package diag

import (
	"fmt"
	"unicode/utf8"

	"github.com/desilang/cslex/compiler/internal/lexer"
)

// Pos marks a 1-based line/column location in a file.
type Pos struct{ Line, Col int }

// Span marks a half-open range [Start, End) within a file.
// A zero End means a single column.
type Span struct {
	Start Pos
	End   Pos
}

// Level is the severity word printed before the code. Lexing only
// produces errors.
type Level string

const LevelError Level = "error"

type Applicability string

const (
	MachineApplicable Applicability = "machine-applicable"
	MaybeIncorrect    Applicability = "maybe-incorrect"
	HasPlaceholders   Applicability = "has-placeholders"
)

// Suggestion is a proposed edit at a position.
type Suggestion struct {
	At            Pos
	Replacement   string
	Message       string
	Label         string
	Applicability Applicability
}

// Diagnostic is a message about a file with an optional span.
type Diagnostic struct {
	Level   Level
	Code    string
	Key     string // catalog key, e.g. "unterminated_string"
	Message string
	File    string
	Span    Span
	Label   string
	Help    string
	Suggest []Suggestion
}

func (d Diagnostic) Error() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("%s[%s]: %s", d.Level, d.Code, d.Message)
	}
	if d.Span.Start.Line == 0 {
		return msg
	}
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Span.Start.Line, d.Span.Start.Col, msg)
	}
	return fmt.Sprintf("%d:%d: %s", d.Span.Start.Line, d.Span.Start.Col, msg)
}

// FromToken builds a diagnostic for a TokError token. ok is false for any
// other kind of token.
//
// Unterminated literals are reported where the scan stopped, which is the
// end of input. An unrecognized character token already carries its own
// column.
func FromToken(file string, tok lexer.Token) (d Diagnostic, ok bool) {
	kind, ok := lexer.Classify(tok)
	if !ok {
		return Diagnostic{}, false
	}
	d = Diagnostic{
		Level: LevelError,
		Key:   kind.Key(),
		File:  file,
		Span:  Span{Start: Pos{Line: tok.Line, Col: tok.Col}},
	}
	switch kind {
	case lexer.UnterminatedString:
		d.Message = "unterminated string"
		d.Label = "input ends inside a string literal"
	case lexer.UnterminatedComment:
		d.Message = "unterminated comment"
		d.Label = "input ends inside a block comment"
	case lexer.UnrecognizedCharacter:
		r, _ := utf8.DecodeRuneInString(tok.Lex)
		d.Message = fmt.Sprintf("unrecognized character %q", r)
	}
	applyRegistry(&d)
	return d, true
}

// FromTokens returns one diagnostic per error token, in stream order.
func FromTokens(file string, toks []lexer.Token) []Diagnostic {
	var out []Diagnostic
	for _, t := range toks {
		if d, ok := FromToken(file, t); ok {
			out = append(out, d)
		}
	}
	return out
}

func applyRegistry(d *Diagnostic) {
	cf, ok := LookupFull("lexer", d.Key)
	if !ok {
		return
	}
	if cf.Entry.ID != "" {
		d.Code = cf.Entry.ID
	}
	if d.Help == "" {
		d.Help = cf.Entry.Help
	}
	for _, s := range cf.Suggestions {
		d.Suggest = append(d.Suggest, Suggestion{
			At:            placeFromWhereSpec(s.Where, d.Span.Start),
			Replacement:   s.Replacement,
			Message:       s.Message,
			Label:         s.Label,
			Applicability: mapApplicability(s.Applicability),
		})
	}
}

func mapApplicability(s string) Applicability {
	switch Applicability(s) {
	case MachineApplicable, HasPlaceholders:
		return Applicability(s)
	default:
		return MaybeIncorrect
	}
}

// placeFromWhereSpec resolves w against the primary position. "eol" is
// resolved later by the renderer, which knows the line text; Col 0 marks it.
func placeFromWhereSpec(w WhereSpec, primary Pos) Pos {
	if w.Kind == "eol" {
		return Pos{Line: primary.Line}
	}
	return primary
}
