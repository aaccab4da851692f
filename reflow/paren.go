package reflow

import "github.com/wsfmt/wsfmt/style"

// pushParen computes the ParenState a newly opened bracket contributes
// (spec.md §4.3.5 step 1): visual alignment to one column past the
// bracket by default, or a fixed continuation indent off the statement's
// own indent when the style asks for fixed continuation alignment.
func pushParen(cfg style.Config, baseIndent, columnAfterOpen int) ParenState {
	indent := columnAfterOpen
	switch cfg.ContinuationAlignStyle {
	case style.AlignFixed:
		indent = baseIndent + cfg.ContinuationIndentWidth
	case style.AlignValignRight:
		// Unreachable via style.Load (parseContinuationAlign rejects
		// "valign-right"); a Config built directly in Go with this value
		// falls back to visual alignment, same as AlignSpace.
	}
	closingIndent := indent
	if cfg.DedentClosingBrackets || cfg.IndentClosingBrackets {
		closingIndent = baseIndent
		if cfg.IndentClosingBrackets {
			closingIndent += cfg.ContinuationIndentWidth
		}
	}
	return ParenState{Indent: indent, ClosingScopeIndent: closingIndent}
}

// closingIndentFor returns the column a closing bracket starts at when a
// break is chosen immediately before it (spec.md §4.3.5 step 3).
func closingIndentFor(p ParenState, cfg style.Config) int {
	if cfg.DedentClosingBrackets || cfg.IndentClosingBrackets {
		return p.ClosingScopeIndent
	}
	return p.Indent
}
