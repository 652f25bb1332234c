package main

import (
	"github.com/desilang/cslex/compiler/internal/load"
)

// inputFlags selects and scans the files a command works on.
type inputFlags struct {
	Paths     []string `arg:"" name:"path" predictor:"cs" help:"Files, directories or glob patterns (- reads stdin)"`
	Include   string   `default:"${include}" placeholder:"GLOB" env:"CSLEX_INCLUDE" help:"Files to pick up inside directories"`
	Exclude   []string `placeholder:"GLOB" env:"CSLEX_EXCLUDE" help:"Skip paths matching these globs"`
	Normalize bool     `env:"CSLEX_NORMALIZE" help:"NFC-normalize source before scanning"`
	Jobs      int      `short:"j" env:"CSLEX_JOBS" help:"Files scanned at once (0 = GOMAXPROCS)"`
	CacheSize int      `default:"256" env:"CSLEX_CACHE_SIZE" help:"Token streams kept for identical files"`
}

func (f *inputFlags) scan(a *app) ([]load.Result, error) {
	paths, err := load.Expand(f.Paths, load.Options{Include: f.Include, Exclude: f.Exclude})
	if err != nil {
		return nil, err
	}
	a.Log.Verbosef("%d file(s) selected", len(paths))

	var cache *load.Cache
	if f.CacheSize > 0 {
		if cache, err = load.NewCache(f.CacheSize); err != nil {
			return nil, err
		}
	}
	res, err := load.TokenizeAll(a.Ctx, paths, load.BatchOptions{
		Jobs:      f.Jobs,
		Normalize: f.Normalize,
		Cache:     cache,
		Log:       a.Log,
	})
	if err != nil {
		return nil, err
	}
	if cache != nil {
		hits, misses := cache.Stats()
		a.Log.Verbosef("token cache: %d hit(s), %d miss(es)", hits, misses)
	}
	return res, nil
}
