package lexer

import "fmt"

// TokKind enumerates token kinds produced by the scanner.
type TokKind int

const (
	// Special
	TokEOF TokKind = iota

	TokIdent
	TokKeyword
	TokNumber
	TokString
	TokOperator
	TokPunct

	// Trivia
	TokWhitespace
	TokComment

	// TokError marks malformed input. Lex holds either the offending rune or
	// a fixed message (see ErrorKind).
	TokError
)

var kindNames = [...]string{
	TokEOF:        "EOF",
	TokIdent:      "Identifier",
	TokKeyword:    "Keyword",
	TokNumber:     "Number",
	TokString:     "String",
	TokOperator:   "Operator",
	TokPunct:      "Punctuation",
	TokWhitespace: "Whitespace",
	TokComment:    "Comment",
	TokError:      "Error",
}

func (k TokKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokKind(%d)", int(k))
}

// ParseKind is the inverse of TokKind.String.
func ParseKind(s string) (TokKind, bool) {
	for k, name := range kindNames {
		if name == s {
			return TokKind(k), true
		}
	}
	return TokEOF, false
}

// IsTrivia reports whether tokens of this kind carry no syntax.
func (k TokKind) IsTrivia() bool { return k == TokWhitespace || k == TokComment }

// Token is a single lexeme with source position.
//
// Line and Col are where the cursor stood after the lexeme was consumed,
// not where it started. The one exception is an unrecognized-character
// Error token, which carries the position of the character itself.
type Token struct {
	Kind TokKind
	Lex  string
	Line int
	Col  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s('%s') at %d:%d", t.Kind, t.Lex, t.Line, t.Col)
}
