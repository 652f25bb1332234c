package main

import (
	"github.com/desilang/cslex/compiler/internal/diag"
	"github.com/desilang/cslex/compiler/internal/term"
)

/* ---------- check ---------- */

type checkCmd struct {
	inputFlags
}

// Run prints one rust-style report per Error token to stderr.
func (c *checkCmd) Run(a *app) error {
	res, err := c.scan(a)
	if err != nil {
		return err
	}
	total, bad := 0, 0
	for _, r := range res {
		ds := diag.FromTokens(r.Path, r.Tokens)
		if len(ds) == 0 {
			continue
		}
		bad++
		total += len(ds)
		for _, d := range ds {
			term.Wprintf(a.Err, "%s", diag.RenderRustStyle(d, r.Source))
		}
	}
	if total > 0 {
		term.Wprintf(a.Err, "%d error(s) in %d of %d file(s)\n", total, bad, len(res))
		return errLexical
	}
	a.Log.Verbosef("%d file(s) clean", len(res))
	return nil
}
