// Package disable implements the disabled-region tracker (spec.md §4.3.6,
// §6): it walks finished LogicalLines and marks each one Disabled when it
// falls inside a directive-comment region, carries a trailing single-line
// disable, matches the configured i18n comment regex, or calls a
// configured i18n function.
package disable

import (
	"regexp"
	"strings"

	"github.com/wsfmt/wsfmt/errs"
	"github.com/wsfmt/wsfmt/logicalline"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

const (
	disableMarker = "disable-formatter"
	enableMarker  = "enable-formatter"
)

// Tracker holds the compiled i18n regex and function-name set for one
// style configuration, so a host formatting many files need not
// recompile the regex per file.
type Tracker struct {
	i18nComment *regexp.Regexp
	i18nCalls   map[string]bool
}

// New compiles cfg's I18N_COMMENT regex once; a malformed pattern is a
// ConfigError, consistent with other style-driven setup failures (style
// package's Apply does the same for malformed knob values).
func New(cfg style.Config) (*Tracker, error) {
	t := &Tracker{i18nCalls: make(map[string]bool, len(cfg.I18nFunctionCall))}
	for _, name := range cfg.I18nFunctionCall {
		t.i18nCalls[name] = true
	}
	if cfg.I18nComment == "" {
		return t, nil
	}
	re, err := regexp.Compile(cfg.I18nComment)
	if err != nil {
		return nil, errs.ConfigError{Message: "invalid I18N_COMMENT pattern: " + err.Error()}
	}
	t.i18nComment = re
	return t, nil
}

// Mark sets Disabled on every Line in lines, in order, threading a region
// flag across the whole slice (spec.md §6's directive-comment rules).
func (t *Tracker) Mark(lines []logicalline.Line) {
	inRegion := false
	for i := range lines {
		line := &lines[i]

		opensRegion, closesRegion, trailingDisable := t.scanDirectives(line)

		if opensRegion {
			inRegion = true
		}
		if inRegion {
			line.Disabled = true
		}
		if closesRegion {
			inRegion = false
		}
		if trailingDisable {
			line.Disabled = true
		}
		if t.matchesI18nComment(line) || t.callsI18nFunction(line.Tokens) {
			line.Disabled = true
		}
	}
}

// scanDirectives inspects every comment token on line and classifies it.
// A standalone comment line carrying "disable-formatter" opens a region
// that persists until a matching "enable-formatter" comment; the same
// marker on a trailing comment of a non-standalone line disables only
// that one line (spec.md §6).
func (t *Tracker) scanDirectives(line *logicalline.Line) (opensRegion, closesRegion, trailingDisable bool) {
	for _, tok := range line.Tokens {
		if tok.Kind != token.Comment {
			continue
		}
		switch {
		case strings.Contains(tok.Text, disableMarker):
			if line.StandaloneComment {
				opensRegion = true
			} else {
				trailingDisable = true
			}
		case strings.Contains(tok.Text, enableMarker):
			closesRegion = true
		}
	}
	return
}

func (t *Tracker) matchesI18nComment(line *logicalline.Line) bool {
	if t.i18nComment == nil {
		return false
	}
	for _, tok := range line.Tokens {
		if tok.Kind == token.Comment && t.i18nComment.MatchString(tok.Text) {
			return true
		}
	}
	return false
}

func (t *Tracker) callsI18nFunction(toks []token.Token) bool {
	if len(t.i18nCalls) == 0 {
		return false
	}
	for i, tok := range toks {
		if tok.Kind != token.Name || !t.i18nCalls[tok.Text] {
			continue
		}
		if i+1 < len(toks) && toks[i+1].Kind == token.OpeningBracket && toks[i+1].Text == "(" {
			return true
		}
	}
	return false
}
