// Package load turns command-line arguments into source files and scans
// them, several files at a time.
package load

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned (wrapped with the path) for arguments that name
// neither a file, a directory nor a glob with matches.
var ErrNotFound = errors.New("not found")

// Stdin is the argument that reads source from standard input.
const Stdin = "-"

// DefaultInclude selects files when a directory is given.
const DefaultInclude = "**.cs"

// Options controls Expand.
type Options struct {
	// Include is matched against paths relative to a directory argument.
	Include string
	// Exclude patterns drop a path when they match it or its base name.
	Exclude []string
}

// Expand resolves args into a sorted, deduplicated list of files:
//   - "-" is kept as is (standard input)
//   - a directory is walked and filtered by opts.Include
//   - an argument containing glob metacharacters is walked from its static
//     prefix and matched as a whole
//   - anything else must be an existing file
func Expand(args []string, opts Options) ([]string, error) {
	include := opts.Include
	if include == "" {
		include = DefaultInclude
	}
	inc, err := glob.Compile(include, '/')
	if err != nil {
		return nil, fmt.Errorf("include %q: %w", include, err)
	}
	var excl []glob.Glob
	for _, p := range opts.Exclude {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("exclude %q: %w", p, err)
		}
		excl = append(excl, g)
	}
	excluded := func(p string) bool {
		sp := filepath.ToSlash(p)
		for _, g := range excl {
			if g.Match(sp) || g.Match(filepath.Base(p)) {
				return true
			}
		}
		return false
	}

	var (
		seen = map[string]bool{}
		out  []string
	)
	add := func(p string) {
		p = filepath.Clean(p)
		if seen[p] || excluded(p) {
			return
		}
		seen[p] = true
		out = append(out, p)
	}

	for _, arg := range args {
		if arg == Stdin {
			if !seen[Stdin] {
				seen[Stdin] = true
				out = append(out, Stdin)
			}
			continue
		}
		if hasMeta(arg) {
			n, err := walkGlob(arg, add)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				return nil, fmt.Errorf("%s: %w", arg, ErrNotFound)
			}
			continue
		}
		fi, err := os.Stat(arg)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", arg, ErrNotFound)
		}
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			add(arg)
			continue
		}
		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(arg, p)
			if err != nil {
				return err
			}
			if inc.Match(filepath.ToSlash(rel)) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}

	sort.Strings(out)
	return out, nil
}

func hasMeta(s string) bool { return strings.ContainsAny(s, "*?[{") }

// walkGlob walks from the directory part of pattern preceding the first
// metacharacter and calls add for each matching file.
func walkGlob(pattern string, add func(string)) (int, error) {
	// WalkDir reports cleaned paths, so "./x/*.cs" has to match as "x/*.cs".
	sp := filepath.ToSlash(pattern)
	for strings.HasPrefix(sp, "./") {
		sp = strings.TrimLeft(sp[2:], "/")
	}
	g, err := glob.Compile(sp, '/')
	if err != nil {
		return 0, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	root := "."
	if i := strings.IndexAny(sp, "*?[{"); i > 0 {
		if j := strings.LastIndex(sp[:i], "/"); j >= 0 {
			root = filepath.FromSlash(sp[:j+1])
		}
	}
	n := 0
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if g.Match(filepath.ToSlash(p)) {
			n++
			add(p)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("walk %s: %w", root, err)
	}
	return n, nil
}

// ReadSource returns the text of path ("-" reads stdin) with any leading
// UTF-8 BOM removed. With normalize, the text is converted to NFC so that
// composed and decomposed spellings scan alike.
func ReadSource(path string, normalize bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == Stdin {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read %s: %w", path, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	src := strings.TrimPrefix(string(data), "\ufeff")
	if normalize {
		src = norm.NFC.String(src)
	}
	return src, nil
}
