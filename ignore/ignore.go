// Package ignore implements the ignore file (spec.md §6): a list of
// UNIX-style glob patterns naming source paths to skip, evaluated before
// traversal so excluded directories are never walked.
package ignore

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/wsfmt/wsfmt/errs"
)

// List holds the compiled patterns from one ignore file.
type List struct {
	patterns []glob.Glob
}

// Load reads patterns from path, one per line; blank lines and lines
// starting with '#' are skipped. A missing file is not an error — an
// ignore file is optional — and yields an empty List.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &List{}, nil
		}
		return nil, errs.ConfigError{Message: "reading ignore file: " + err.Error()}
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) (*List, error) {
	l := &List{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		g, err := glob.Compile(line, '/')
		if err != nil {
			return nil, errs.ConfigError{Message: "invalid ignore pattern " + line + ": " + err.Error()}
		}
		l.patterns = append(l.patterns, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.ConfigError{Message: "reading ignore file: " + err.Error()}
	}
	return l, nil
}

// Matches reports whether path (relative to the ignore file's directory,
// using '/' separators) matches any configured pattern.
func (l *List) Matches(path string) bool {
	if l == nil {
		return false
	}
	clean := filepath.ToSlash(path)
	for _, g := range l.patterns {
		if g.Match(clean) {
			return true
		}
		// A pattern without a wildcard path separator also matches any
		// path component, the way a .gitignore-style bare name does.
		if base := filepath.Base(clean); g.Match(base) {
			return true
		}
	}
	return false
}

// Len reports how many patterns are loaded.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.patterns)
}
