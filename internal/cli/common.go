package cli

import (
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wsfmt/wsfmt"
	"github.com/wsfmt/wsfmt/errs"
	"github.com/wsfmt/wsfmt/ignore"
	"github.com/wsfmt/wsfmt/style"
)

func loadStyle() (style.Config, error) {
	overlay := map[string]any{}
	if styleName != "" {
		overlay["BASED_ON_STYLE"] = styleName
	}
	return style.Load(configPath, overlay)
}

func loadIgnore() (*ignore.List, error) {
	return ignore.Load(filepath.Join(directory, ignoreFile))
}

// discoverFiles walks root for files ending in suffix, skipping anything
// ignored excludes. Mirrors the teacher's find.go walk shape, generalized
// from a fixed ".sql" suffix to a caller-supplied one, and built on
// filepath.WalkDir rather than the deprecated filepath.Walk since
// nothing here needs the os.FileInfo a plain DirEntry can't already give.
func discoverFiles(root string, ignored *ignore.List, suffix string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if d.IsDir() {
			if rel != "." && ignored.Matches(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		if ignored.Matches(rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

// parseLineRange parses the --lines flag's "start-end" form. An empty
// string means no restriction (nil, no error).
func parseLineRange(s string) (*wsfmt.LineRange, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil, errs.ConfigError{Message: "--lines must be of the form start-end, got " + strconv.Quote(s)}
	}
	start, errStart := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, errEnd := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errStart != nil || errEnd != nil || start < 1 || end < start {
		return nil, errs.ConfigError{Message: "--lines must be of the form start-end with 1 <= start <= end, got " + strconv.Quote(s)}
	}
	return &wsfmt.LineRange{Start: start, End: end}, nil
}

// formatSource runs one file's bytes through the registered Lexer and
// wsfmt.Format, returning the would-be output without writing anything.
func formatSource(path string, src []byte, cfg style.Config) ([]byte, error) {
	if registeredLexer == nil {
		return nil, errs.ConfigError{Message: "no Lexer registered for " + path + "; call cli.SetLexer before cli.Execute"}
	}
	in, err := registeredLexer.Lex(path, src)
	if err != nil {
		return nil, err
	}
	rng, err := parseLineRange(linesFlag)
	if err != nil {
		return nil, err
	}
	in.Range = rng
	in.Debug = debug
	return wsfmt.Format(in, cfg)
}
