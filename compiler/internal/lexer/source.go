package lexer

import "strings"

// Source yields tokens one at a time. An exhausted Source keeps returning
// the zero Token, whose kind is TokEOF, so reading up to EOF always stops.
type Source interface {
	Next() Token
}

// Stream is a Source over an already scanned slice.
type Stream struct {
	toks []Token
	pos  int
}

func NewStream(toks []Token) *Stream { return &Stream{toks: toks} }

// More reports whether Next will return a token from the slice.
func (s *Stream) More() bool { return s.pos < len(s.toks) }

func (s *Stream) Next() Token {
	if !s.More() {
		return Token{}
	}
	t := s.toks[s.pos]
	s.pos++
	return t
}

// Filter returns the tokens for which keep is true, preserving order.
func Filter(toks []Token, keep func(Token) bool) []Token {
	var out []Token
	for _, t := range toks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Significant drops whitespace and comments.
func Significant(toks []Token) []Token {
	return Filter(toks, func(t Token) bool { return !t.Kind.IsTrivia() })
}

// Text concatenates every lexeme. For input without unterminated constructs
// this reproduces the scanned source.
func Text(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Lex)
	}
	return b.String()
}
