package load

import (
	"context"
	"crypto/sha256"
	"fmt"
	"runtime"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/desilang/cslex/compiler/internal/lexer"
	"github.com/desilang/cslex/compiler/internal/term"
)

// Cache remembers token streams by source content, so identical files
// (vendored copies, generated twins) are scanned once. It is safe for
// concurrent use. Returned slices are shared: callers must not modify them.
type Cache struct {
	lru    *lru.Cache[[sha256.Size]byte, []lexer.Token]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache returns a cache holding up to size token streams.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[[sha256.Size]byte, []lexer.Token](size)
	if err != nil {
		return nil, fmt.Errorf("token cache: %w", err)
	}
	return &Cache{lru: c}, nil
}

// Tokenize returns the cached stream for src, scanning it on a miss.
func (c *Cache) Tokenize(src string) []lexer.Token {
	key := sha256.Sum256([]byte(src))
	if toks, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return toks
	}
	c.misses.Add(1)
	toks := lexer.Tokenize(src)
	c.lru.Add(key, toks)
	return toks
}

// Stats returns the hit and miss counts so far.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Result is one scanned file.
type Result struct {
	Path   string
	Source string
	Tokens []lexer.Token
}

// BatchOptions controls TokenizeAll.
type BatchOptions struct {
	// Jobs bounds the number of files scanned at once; <= 0 means GOMAXPROCS.
	Jobs      int
	Normalize bool
	Cache     *Cache       // optional
	Log       *term.Logger // optional
}

// TokenizeAll reads and scans paths concurrently, one Scanner per file.
// Results come back in the order of paths. The first read error cancels
// the remaining work and is returned.
func TokenizeAll(ctx context.Context, paths []string, opts BatchOptions) ([]Result, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := ReadSource(p, opts.Normalize)
			if err != nil {
				return err
			}
			var toks []lexer.Token
			if opts.Cache != nil {
				toks = opts.Cache.Tokenize(src)
			} else {
				toks = lexer.Tokenize(src)
			}
			opts.Log.Verbosef("scanned %s: %d tokens", p, len(toks))
			results[i] = Result{Path: p, Source: src, Tokens: toks}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
