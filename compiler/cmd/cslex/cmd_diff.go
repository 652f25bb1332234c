package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/desilang/cslex/compiler/internal/lexer"
	"github.com/desilang/cslex/compiler/internal/load"
	"github.com/desilang/cslex/compiler/internal/term"
	"github.com/desilang/cslex/compiler/internal/tokdump"
)

/* ---------- diff ---------- */

type diffCmd struct {
	Left       string `arg:"" predictor:"cs" help:"First file: source, or a .ndjson/.yaml dump from lex"`
	Right      string `arg:"" predictor:"cs" help:"Second file: source, or a .ndjson/.yaml dump from lex"`
	Limit      int    `placeholder:"N" help:"Print at most N rows (0 = all)"`
	Changed    bool   `help:"Only print rows whose kind or text differ"`
	SkipTrivia bool   `help:"Compare significant tokens only"`
	Normalize  bool   `env:"CSLEX_NORMALIZE" help:"NFC-normalize source before scanning"`
}

// Run always exits 0 once both sides are read; differences are output,
// not failures.
func (c *diffCmd) Run(a *app) error {
	left, err := c.tokens(a, c.Left)
	if err != nil {
		return err
	}
	right, err := c.tokens(a, c.Right)
	if err != nil {
		return err
	}
	rows := tokdump.BuildDiff(left, right)
	term.Wprintf(a.Out, "%s", tokdump.FormatDiff(rows, c.Limit, c.Changed))
	a.Log.Verbosef("%d of %d row(s) differ", tokdump.Changed(rows), len(rows))
	return nil
}

// tokens scans a source file, or reloads a dump written by
// `lex -f ndjson|yaml`, picked by extension.
func (c *diffCmd) tokens(a *app, path string) ([]lexer.Token, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dump := ext == ".ndjson" || ext == ".jsonl" || ext == ".yaml" || ext == ".yml"
	src, err := load.ReadSource(path, c.Normalize && !dump)
	if err != nil {
		return nil, err
	}

	var toks []lexer.Token
	if !dump {
		toks = lexer.Tokenize(src)
	} else {
		var rows []tokdump.Row
		if ext == ".yaml" || ext == ".yml" {
			rows, err = tokdump.DecodeYAML([]byte(src))
		} else {
			rows, err = tokdump.ParseNDJSON(strings.NewReader(src))
			if err != nil && len(rows) > 0 {
				// keep what parsed, like a partial capture
				a.Log.Warnf("%s: %v", path, err)
				err = nil
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if toks, err = tokdump.Tokens(rows); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if c.SkipTrivia {
		toks = lexer.Significant(toks)
	}
	return toks, nil
}
