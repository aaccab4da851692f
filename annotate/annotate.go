// Package annotate implements the Token Annotator (spec.md §4.2): for
// every adjacent token pair in a LogicalLine it assigns spacing, split
// penalty, and break-legality, and tags tokens with the Subtypes later
// stages key off of (named-assign vs default-assign, dict-colon vs
// subscript-colon, and so on).
package annotate

import (
	"github.com/wsfmt/wsfmt/logicalline"
	"github.com/wsfmt/wsfmt/source"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

// Annotate runs both annotator sub-phases (spec.md §4.2.1, §4.2.2) over
// every Line in place. tree is the optional external syntax tree (spec.md
// §1 lists lexing/parsing as out of scope); it is accepted but not read.
// All subtype tagging comes from the bracket/keyword-context heuristics in
// subtype.go, whether or not a tree is supplied.
//
// Annotate is a pure function of (lines, tree, style): spec.md §3
// requires two runs over identical inputs to produce identical
// annotations, so this function must not consult any process-global
// state.
func Annotate(lines []logicalline.Line, tree source.Tree, cfg style.Config) {
	for i := range lines {
		tagSubtypes(lines[i].Tokens, tree)
	}
	for i := range lines {
		annotateLine(lines[i].Tokens, cfg)
	}
}

func annotateLine(toks []token.Token, cfg style.Config) {
	for i := range toks {
		var prev *token.Token
		if i > 0 {
			prev = &toks[i-1]
		}
		spaceBetween(prev, &toks[i], cfg)
		breakBetween(prev, &toks[i], cfg)
		penaltyFor(prev, &toks[i], i, toks, cfg)
	}
	computeTotalLengths(toks)
}

// computeTotalLengths fills Token.TotalLength: the width of each token's
// lexeme plus its leading space, accumulated forward up to (but not
// including) the next token that allows a break before it. The reflow
// engine does not read this field.
func computeTotalLengths(toks []token.Token) {
	for i := len(toks) - 1; i >= 0; i-- {
		width := len(toks[i].Text) + toks[i].SpacesRequiredBefore
		if i+1 < len(toks) && toks[i+1].CanBreakBefore != token.Yes {
			width += toks[i+1].TotalLength
		}
		toks[i].TotalLength = width
	}
}
