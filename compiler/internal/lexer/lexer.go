package lexer

import (
	"unicode"
)

// Scanner turns a complete source buffer into tokens. It is single-use:
// build one per input with New and call Tokenize once.
type Scanner struct {
	src []rune
	i   int

	line int
	col  int

	toks []Token
}

func New(src string) *Scanner {
	return &Scanner{
		src:  []rune(src),
		line: 1,
		col:  1,
	}
}

// Tokenize scans src with a fresh Scanner.
func Tokenize(src string) []Token {
	return New(src).Tokenize()
}

// Tokenize scans the whole buffer. It never fails: malformed input becomes
// TokError tokens and scanning resumes after them. The last token is always
// a single TokEOF with empty text.
func (s *Scanner) Tokenize() []Token {
	for !s.atEOF() {
		ch := s.src[s.i]
		switch {
		case unicode.IsSpace(ch):
			s.emit(s.scanWhitespace())
		case isIdentStart(ch):
			s.emit(s.scanIdent())
		case unicode.IsDigit(ch):
			s.emit(s.scanNumber())
		case ch == '"':
			s.emit(s.scanString())
		case ch == '/' && s.peekAt(1) == '/':
			s.emit(s.scanLineComment())
		case ch == '/' && s.peekAt(1) == '*':
			s.emit(s.scanBlockComment())
		case IsPunctuator(ch):
			s.advance()
			s.emit(s.make(TokPunct, string(ch)))
		case IsOperator(string(ch)):
			s.emit(s.scanOperator())
		default:
			// Stamped before the rune is consumed, unlike every other token.
			s.emit(s.make(TokError, string(ch)))
			s.advance()
		}
	}
	s.emit(s.make(TokEOF, ""))
	return s.toks
}

func (s *Scanner) emit(t Token) { s.toks = append(s.toks, t) }

// make stamps t with the current (post-consumption) cursor position.
func (s *Scanner) make(kind TokKind, lex string) Token {
	return Token{Kind: kind, Lex: lex, Line: s.line, Col: s.col}
}

func (s *Scanner) atEOF() bool { return s.i >= len(s.src) }

// peekAt returns the rune off runes ahead of the cursor, or 0 past the end.
func (s *Scanner) peekAt(off int) rune {
	if j := s.i + off; j < len(s.src) {
		return s.src[j]
	}
	return 0
}

func (s *Scanner) peek() (rune, bool) {
	if s.atEOF() {
		return 0, false
	}
	return s.src[s.i], true
}

func (s *Scanner) advance() {
	if s.src[s.i] == '\n' {
		s.line++
		s.col = 0
	}
	s.i++
	s.col++
}

func (s *Scanner) advanceWhile(pred func(rune) bool) {
	for {
		r, ok := s.peek()
		if !ok || !pred(r) {
			return
		}
		s.advance()
	}
}

func (s *Scanner) lexeme(start int) string { return string(s.src[start:s.i]) }

// ----- scanning helpers -----

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isIdentPart(r rune) bool  { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func isBinDigit(r rune) bool { return r == '0' || r == '1' }

func (s *Scanner) scanWhitespace() Token {
	start := s.i
	s.advanceWhile(unicode.IsSpace)
	return s.make(TokWhitespace, s.lexeme(start))
}

func (s *Scanner) scanIdent() Token {
	start := s.i
	s.advanceWhile(isIdentPart)
	lex := s.lexeme(start)
	if IsKeyword(lex) {
		return s.make(TokKeyword, lex)
	}
	return s.make(TokIdent, lex)
}

// scanNumber recognises 0x.. and 0b.. literals, and decimal literals with at
// most one '.' and an optional e[+-]digits exponent. Only the span is
// recognised; no value is computed.
func (s *Scanner) scanNumber() Token {
	start := s.i
	if s.src[s.i] == '0' {
		switch s.peekAt(1) {
		case 'x', 'X':
			s.advance()
			s.advance()
			s.advanceWhile(isHexDigit)
			return s.make(TokNumber, s.lexeme(start))
		case 'b', 'B':
			s.advance()
			s.advance()
			s.advanceWhile(isBinDigit)
			return s.make(TokNumber, s.lexeme(start))
		}
	}

	seenDot := false
	for {
		r, ok := s.peek()
		if !ok {
			break
		}
		if r == '.' && !seenDot {
			seenDot = true
			s.advance()
			continue
		}
		if !unicode.IsDigit(r) {
			break
		}
		s.advance()
	}

	if r, ok := s.peek(); ok && (r == 'e' || r == 'E') {
		s.advance()
		if r, ok := s.peek(); ok && (r == '+' || r == '-') {
			s.advance()
		}
		s.advanceWhile(unicode.IsDigit)
	}
	return s.make(TokNumber, s.lexeme(start))
}

// scanString has no escape handling: the next '"' always closes the literal.
func (s *Scanner) scanString() Token {
	start := s.i
	s.advance() // opening "
	s.advanceWhile(func(r rune) bool { return r != '"' })
	if s.atEOF() {
		return s.make(TokError, MsgUnterminatedString)
	}
	s.advance() // closing "
	return s.make(TokString, s.lexeme(start))
}

// scanLineComment stops before the newline; the whitespace scan takes it.
func (s *Scanner) scanLineComment() Token {
	start := s.i
	s.advanceWhile(func(r rune) bool { return r != '\n' })
	return s.make(TokComment, s.lexeme(start))
}

func (s *Scanner) scanBlockComment() Token {
	start := s.i
	s.advance() // /
	s.advance() // *
	for !s.atEOF() && !(s.src[s.i] == '*' && s.peekAt(1) == '/') {
		s.advance()
	}
	if s.atEOF() {
		return s.make(TokError, MsgUnterminatedComment)
	}
	s.advance() // *
	s.advance() // /
	return s.make(TokComment, s.lexeme(start))
}

// scanOperator extends the operator one rune at a time for as long as the
// longer string is still in the table.
func (s *Scanner) scanOperator() Token {
	op := string(s.src[s.i])
	s.advance()
	for {
		r, ok := s.peek()
		if !ok {
			break
		}
		ext := op + string(r)
		if !IsOperator(ext) {
			break
		}
		op = ext
		s.advance()
	}
	return s.make(TokOperator, op)
}
