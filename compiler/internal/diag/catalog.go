package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "CSL0001"
	Title string `json:"title"` // short human title e.g., "unterminated string"
	Help  string `json:"help"`  // optional default help text
}

// WhereSpec places a suggestion relative to a diagnostic's primary
// position. Kind "eol" puts it at the end of the primary line; anything
// else means the primary position itself.
type WhereSpec struct {
	Kind string `json:"kind"`
}

// SuggestionSpec is a catalog-provided fix hint.
type SuggestionSpec struct {
	Where         WhereSpec `json:"where"`
	Replacement   string    `json:"replacement"`
	Message       string    `json:"message"`
	Label         string    `json:"label"`
	Applicability string    `json:"applicability"`
}

// CodeFull is a code entry together with its suggestions.
type CodeFull struct {
	Entry       CodeEntry
	Suggestions []SuggestionSpec
}

type rawEntry struct {
	CodeEntry
	Suggestions []SuggestionSpec `json:"suggestions"`
}

// Registry is the top-level catalog format.
type Registry struct {
	Lexer map[string]rawEntry `json:"lexer"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			regErr = nil // empty catalog is allowed
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

func lookupRaw(domain, key string) (rawEntry, bool) {
	if err := load(); err != nil {
		return rawEntry{}, false
	}
	switch domain {
	case "lexer":
		ce, ok := reg.Lexer[key]
		return ce, ok
	default:
		return rawEntry{}, false
	}
}

// LookupFull returns a code entry and its suggestion hints by (domain, key).
// Only the "lexer" domain exists.
func LookupFull(domain, key string) (CodeFull, bool) {
	ce, ok := lookupRaw(domain, key)
	if !ok {
		return CodeFull{}, false
	}
	return CodeFull{Entry: ce.CodeEntry, Suggestions: ce.Suggestions}, true
}
