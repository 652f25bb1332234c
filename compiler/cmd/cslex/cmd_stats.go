package main

import (
	"github.com/desilang/cslex/compiler/internal/lexer"
	"github.com/desilang/cslex/compiler/internal/term"
	"github.com/desilang/cslex/compiler/internal/tokdump"
)

/* ---------- stats ---------- */

type statsCmd struct {
	inputFlags

	Top int `default:"10" placeholder:"N" help:"Keywords to list (0 = all)"`
}

func (c *statsCmd) Run(a *app) error {
	res, err := c.scan(a)
	if err != nil {
		return err
	}
	s := tokdump.NewStats()
	for _, r := range res {
		s.Tally(lexer.NewStream(r.Tokens))
	}
	term.Wprintf(a.Out, "%s", s.RenderReport(c.Top))
	return nil
}
