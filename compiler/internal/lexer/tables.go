package lexer

import "sort"

// Reserved and contextual C# words. Only used to split Keyword from
// Identifier; nothing interprets them.
var keywords = setOf(
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch", "char", "checked", "class", "const", "continue",
	"decimal", "default", "delegate", "do", "double", "else", "enum", "event", "explicit", "extern", "false", "finally",
	"fixed", "float", "for", "foreach", "goto", "if", "implicit", "in", "int", "interface", "internal", "is", "lock",
	"long", "namespace", "new", "null", "object", "operator", "out", "override", "params", "private", "protected", "public",
	"readonly", "ref", "return", "sbyte", "sealed", "short", "sizeof", "stackalloc", "static", "string", "struct",
	"switch", "this", "throw", "true", "try", "typeof", "uint", "ulong", "unchecked", "unsafe", "ushort", "using",
	"virtual", "void", "volatile", "while", "yield", "record", "init", "var", "dynamic", "global", "required", "scoped",
	"nint", "nuint", "with", "when",
)

var punctuators = map[rune]struct{}{
	'{': {}, '}': {}, '(': {}, ')': {}, '[': {}, ']': {}, ';': {}, ':': {}, ',': {}, '#': {}, '@': {},
}

// ':' ',' and '#' are listed here as well as in punctuators. Punctuation is
// checked first, so they only matter as operator continuations.
var operators = setOf(
	"+", "-", "*", "/", "%", "&", "|", "^", "<", ">", "!", "=", "~", "?", ":", ".", ",", "#",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<=", ">=", "!=", "?.", "??", "&&", "||", "++", "--", "<<", ">>", "->",
	"<<=", ">>=", ">>>",
)

func setOf(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// IsKeyword reports whether s is a reserved word (case-sensitive).
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsPunctuator reports whether r always lexes as a one-rune Punctuation token.
func IsPunctuator(r rune) bool {
	_, ok := punctuators[r]
	return ok
}

// IsOperator reports whether s is an entry of the operator table.
func IsOperator(s string) bool {
	_, ok := operators[s]
	return ok
}

// Keywords returns the keyword table, sorted.
func Keywords() []string { return sortedKeys(keywords) }

// Operators returns the operator table, sorted by length then text.
func Operators() []string {
	out := sortedKeys(operators)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) < len(out[j]) })
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
