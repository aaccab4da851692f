package token

import "github.com/wsfmt/wsfmt/source"

// TriState models a fact that may not yet have been decided by the
// annotator. annotate.Annotate sets every TriState field of every token
// it visits to Yes or No; nothing checks for Unknown afterwards.
type TriState int

const (
	Unknown TriState = iota
	No
	Yes
)

// Token is the immutable unit the rest of wsfmt operates on. A Token is
// produced once by the annotator and never mutated afterward; the reflow
// engine only ever reads it.
type Token struct {
	Text string
	Kind Kind

	Subtypes SubtypeSet

	OriginalLine   int
	OriginalColumn int

	// OpeningBracket/MatchingBracket are indices into the owning
	// LogicalLine's token slice, not pointers: ownership of both tokens
	// stays with that slice, this is a weak cross-reference (spec.md §3,
	// §9 "weak references between paired brackets").
	OpeningBracketIndex int
	MatchingBracketIndex int
	HasMatchingBracket   bool

	SpacesRequiredBefore int
	CanBreakBefore       TriState
	MustBreakBefore      TriState
	SplitPenalty         int

	// TotalLength is the width of Text plus SpacesRequiredBefore,
	// accumulated up to (but not including) the next break-allowed
	// boundary. The reflow engine does not read it.
	TotalLength int
}

func (t Token) HasSubtype(s Subtype) bool {
	return t.Subtypes.Has(s)
}

func (t Token) IsBracket() bool {
	return t.Kind == OpeningBracket || t.Kind == ClosingBracket
}

// Position reconstructs the token's original source position for
// diagnostics; file comes from the enclosing LogicalLine / source.Tree,
// not the Token itself, since many tokens in a file share one FileRef.
func (t Token) Position(file source.FileRef) source.Position {
	return source.Position{File: file, Line: t.OriginalLine, Col: t.OriginalColumn}
}
