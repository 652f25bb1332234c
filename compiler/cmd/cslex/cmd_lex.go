package main

import (
	"github.com/desilang/cslex/compiler/internal/lexer"
	"github.com/desilang/cslex/compiler/internal/term"
	"github.com/desilang/cslex/compiler/internal/tokdump"
)

/* ---------- lex ---------- */

type lexCmd struct {
	inputFlags

	Format     string `short:"f" enum:"table,pretty,ndjson,yaml" default:"table" env:"CSLEX_FORMAT" help:"Output format (${enum})"`
	SkipTrivia bool   `env:"CSLEX_SKIP_TRIVIA" help:"Drop whitespace and comment tokens"`
	Limit      int    `placeholder:"N" help:"Print at most N tokens per file (0 = all)"`
	Strict     bool   `env:"CSLEX_STRICT" help:"Exit 1 when any Error token is produced"`
}

func (c *lexCmd) Run(a *app) error {
	res, err := c.scan(a)
	if err != nil {
		return err
	}
	errs := 0
	for i, r := range res {
		toks := r.Tokens
		errs += len(lexer.Errors(toks))
		if c.SkipTrivia {
			toks = lexer.Significant(toks)
		}
		if c.Limit > 0 && c.Limit < len(toks) {
			toks = toks[:c.Limit]
		}
		// headers only make sense for the human formats
		if len(res) > 1 && (c.Format == "table" || c.Format == "pretty") {
			if i > 0 {
				term.Wprintf(a.Out, "\n")
			}
			term.Wprintf(a.Out, "==> %s <==\n", r.Path)
		}
		if err := c.print(a, toks); err != nil {
			return err
		}
	}
	if errs > 0 {
		a.Log.Verbosef("%d error token(s)", errs)
		if c.Strict {
			return errLexical
		}
	}
	return nil
}

func (c *lexCmd) print(a *app, toks []lexer.Token) error {
	switch c.Format {
	case "pretty":
		term.Wprintf(a.Out, "%s", tokdump.DebugFormat(toks, 0))
	case "ndjson":
		return tokdump.WriteNDJSON(a.Out, toks)
	case "yaml":
		data, err := tokdump.EncodeYAML(toks)
		if err != nil {
			return err
		}
		term.Wprintf(a.Out, "%s", data)
	default:
		tokdump.Table(toks).Write(a.Out)
	}
	return nil
}
