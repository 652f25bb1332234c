package main

import (
	"github.com/desilang/cslex/compiler/internal/lexer"
	"github.com/desilang/cslex/compiler/internal/term"
	"github.com/desilang/cslex/compiler/internal/version"
)

/* ---------- keywords / version ---------- */

type keywordsCmd struct {
	Operators bool `help:"Print the operator table instead, shortest first"`
}

func (c *keywordsCmd) Run(a *app) error {
	words := lexer.Keywords()
	if c.Operators {
		words = lexer.Operators()
	}
	for _, w := range words {
		term.Wprintf(a.Out, "%s\n", w)
	}
	return nil
}

type versionCmd struct{}

func (versionCmd) Run(a *app) error {
	term.Wprintf(a.Out, "%s\n", version.String())
	return nil
}
