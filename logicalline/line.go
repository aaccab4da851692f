// Package logicalline groups a flat token stream into LogicalLines: the
// statement-sized units every later pipeline stage (annotation, reflow,
// joining, blank-line planning) operates on (spec.md §2 stage 2, §4.1).
package logicalline

import "github.com/wsfmt/wsfmt/token"

// Line is one LogicalLine: a maximal run of tokens the target language
// treats as one statement, with bracketed continuations folded in
// (spec.md §3, GLOSSARY).
type Line struct {
	Tokens []token.Token

	// Depth is the block nesting level (indent levels), used by the
	// emitter and the reflow engine's non-bracketed continuation indent.
	Depth int

	// Disabled is set by the disabled-region tracker (spec.md §4.3.6);
	// when true the reflow engine is bypassed for this Line entirely.
	Disabled bool

	// StandaloneComment marks a Line that is nothing but a comment not
	// attached to any statement (spec.md §4.1 "standalone comments form
	// their own LogicalLine").
	StandaloneComment bool

	// Previous lets the blank-line planner look backward without
	// threading a slice index everywhere (spec.md §3's "previous_line
	// back-reference").
	Previous *Line
}

// Width is the column-agnostic token count; used by callers deciding
// whether a Line is a trivial one-token line (e.g. a bare "pass").
func (l Line) Width() int {
	return len(l.Tokens)
}

// FirstNonTrivial returns the index of the first token that is not a
// Newline/Indent/Dedent bookkeeping token, or -1 if the line carries none.
func (l Line) FirstNonTrivial() int {
	for i, t := range l.Tokens {
		switch t.Kind {
		case token.Newline, token.Indent, token.Dedent:
			continue
		default:
			return i
		}
	}
	return -1
}
