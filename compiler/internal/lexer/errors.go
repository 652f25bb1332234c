package lexer

import "fmt"

// Fixed texts carried by TokError tokens for unterminated constructs.
const (
	MsgUnterminatedString  = "Unterminated string"
	MsgUnterminatedComment = "Unterminated comment"
)

// ErrorKind classifies a TokError token.
type ErrorKind int

const (
	UnterminatedString ErrorKind = iota + 1
	UnterminatedComment
	UnrecognizedCharacter
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "UnterminatedString"
	case UnterminatedComment:
		return "UnterminatedComment"
	case UnrecognizedCharacter:
		return "UnrecognizedCharacter"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Key is the diagnostic catalog key for k.
func (k ErrorKind) Key() string {
	switch k {
	case UnterminatedString:
		return "unterminated_string"
	case UnterminatedComment:
		return "unterminated_comment"
	case UnrecognizedCharacter:
		return "unrecognized_character"
	default:
		return ""
	}
}

// Classify reports which kind of error t is. ok is false for non-error tokens.
//
// Unrecognized-character tokens always hold exactly one rune, so they can
// never collide with the fixed messages.
func Classify(t Token) (kind ErrorKind, ok bool) {
	if t.Kind != TokError {
		return 0, false
	}
	switch t.Lex {
	case MsgUnterminatedString:
		return UnterminatedString, true
	case MsgUnterminatedComment:
		return UnterminatedComment, true
	default:
		return UnrecognizedCharacter, true
	}
}

// Errors returns the TokError tokens of toks in order.
func Errors(toks []Token) []Token {
	return Filter(toks, func(t Token) bool { return t.Kind == TokError })
}
