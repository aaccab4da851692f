package reflow

import (
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

// applyHeuristics is the pre-pass that resolves the conditional "must
// break" rules spec.md §4.3.4 describes but annotate/breakability.go
// deliberately leaves unset, because they depend on whether a whole
// bracket fits the column limit — information a pairwise annotator does
// not have but a bracket-scanning pre-pass over the finished LogicalLine
// does. Forcing MustBreakBefore here, before the priority-queue search
// runs, is equivalent to the search converging on the same outcome through
// cost alone (the excess-character penalty already discourages an
// overlong no-break line) but is exact and does not depend on the
// calibration of SplitPenaltyExcessCharacter against the other penalties.
func applyHeuristics(toks []token.Token, cfg style.Config) {
	applyLambdaHeuristic(toks, cfg)
	for i := range toks {
		if toks[i].Kind != token.OpeningBracket {
			continue
		}
		close, ok := matchingClose(toks, i)
		if !ok {
			continue
		}
		applyBracketHeuristics(toks, i, close, cfg)
	}
}

// applyLambdaHeuristic enforces ALLOW_MULTILINE_LAMBDAS: when it is
// false (the default), the lambda's colon and the tokens that make up
// its body are forbidden from starting a new line, regardless of what the
// search would otherwise choose. The annotator only tags the lambda's own
// colon (token.LambdaBody, in annotate/subtype.go); this walks forward
// from that colon, tracking bracket depth, to find the rest of the
// body — terminated by a comma or closing bracket back at the depth the
// lambda started at, or by running off the end of the line.
func applyLambdaHeuristic(toks []token.Token, cfg style.Config) {
	if cfg.AllowMultilineLambdas {
		return
	}

	inLambda := false
	lambdaDepth := 0
	depth := 0

	for i := range toks {
		t := &toks[i]

		if inLambda {
			switch {
			case t.Kind == token.Comma && depth == lambdaDepth:
				inLambda = false
			case t.Kind == token.ClosingBracket && depth <= lambdaDepth:
				inLambda = false
			default:
				t.CanBreakBefore = token.No
				t.MustBreakBefore = token.No
			}
		}

		switch t.Kind {
		case token.OpeningBracket:
			depth++
		case token.ClosingBracket:
			depth--
		}

		if t.HasSubtype(token.LambdaBody) {
			t.CanBreakBefore = token.No
			t.MustBreakBefore = token.No
			inLambda = true
			lambdaDepth = depth
		}
	}
}

// matchingClose finds the index of the ClosingBracket that matches the
// OpeningBracket at open, scanning only this bracket's own depth.
func matchingClose(toks []token.Token, open int) (int, bool) {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].Kind {
		case token.OpeningBracket:
			depth++
		case token.ClosingBracket:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// topLevelCommas returns the indices of commas directly inside the
// open/close bracket pair, i.e. not themselves inside a nested bracket.
func topLevelCommas(toks []token.Token, open, close int) []int {
	var commas []int
	depth := 0
	for i := open + 1; i < close; i++ {
		switch toks[i].Kind {
		case token.OpeningBracket:
			depth++
		case token.ClosingBracket:
			depth--
		case token.Comma:
			if depth == 0 {
				commas = append(commas, i)
			}
		}
	}
	return commas
}

// spanWidth is the approximate rendered width of toks[open..close] if laid
// out on a single line: the sum of each token's text length plus its
// required leading space, excluding the opening bracket's own leading
// space (the caller already knows the column the bracket opens at).
func spanWidth(toks []token.Token, open, close int) int {
	width := len(toks[open].Text)
	for i := open + 1; i <= close; i++ {
		width += toks[i].SpacesRequiredBefore + len(toks[i].Text)
	}
	return width
}

func hasTopLevelSubtype(toks []token.Token, open, close int, sub token.Subtype) bool {
	depth := 0
	for i := open + 1; i < close; i++ {
		switch toks[i].Kind {
		case token.OpeningBracket:
			depth++
		case token.ClosingBracket:
			depth--
		}
		if depth == 0 && toks[i].HasSubtype(sub) {
			return true
		}
	}
	return false
}

func hasComment(toks []token.Token, open, close int) bool {
	depth := 0
	for i := open + 1; i < close; i++ {
		switch toks[i].Kind {
		case token.OpeningBracket:
			depth++
		case token.ClosingBracket:
			depth--
		}
		if depth == 0 && toks[i].Kind == token.Comment {
			return true
		}
	}
	return false
}

// forceBreaksAroundElements forces a break before the first element,
// before every top-level comma's following element, and before the
// closing bracket itself — the shape every "all elements on their own
// line" heuristic below wants. A trailing comment directly after a comma
// stays glued to the line it trails; the break lands on the next
// non-comment token instead, matching a trailing "# comment" staying on
// the same physical line as the element before it.
func forceBreaksAroundElements(toks []token.Token, open, close int) {
	if open+1 < close {
		toks[open+1].MustBreakBefore = token.Yes
	}
	for _, c := range topLevelCommas(toks, open, close) {
		j := c + 1
		for j < close && toks[j].Kind == token.Comment {
			j++
		}
		if j < close {
			toks[j].MustBreakBefore = token.Yes
		}
	}
	toks[close].MustBreakBefore = token.Yes
}

func applyBracketHeuristics(toks []token.Token, open, close int, cfg style.Config) {
	isDict := hasTopLevelSubtype(toks, open, close, token.DictKeyColon)
	overlong := spanWidth(toks, open, close) > cfg.ColumnLimit
	lastIsTrailingComma := close > open+1 && toks[close-1].Kind == token.Comma && toks[close-1].HasSubtype(token.TrailingComma)

	// Force-multiline-dict takes precedence over
	// SPLIT_ALL_TOP_LEVEL_COMMA_SEPARATED_VALUES (spec.md §4.3.4).
	if isDict && cfg.ForceMultilineDict {
		forceBreaksAroundElements(toks, open, close)
		return
	}

	if !cfg.DisableSplitListWithComment && hasComment(toks, open, close) {
		forceBreaksAroundElements(toks, open, close)
		return
	}

	if cfg.SplitArgumentsWhenCommaTerminated && !cfg.DisableEndingCommaHeuristic && lastIsTrailingComma {
		forceBreaksAroundElements(toks, open, close)
		return
	}

	if isDict && cfg.EachDictEntryOnSeparateLine && overlong {
		forceBreaksAroundElements(toks, open, close)
		return
	}

	if cfg.SplitComplexComprehension && overlong &&
		(hasTopLevelSubtype(toks, open, close, token.CompForClause) || hasTopLevelSubtype(toks, open, close, token.CompIfClause)) {
		forceBreaksAroundElements(toks, open, close)
		return
	}

	if overlong && (cfg.SplitAllCommaSeparatedValues || cfg.SplitAllTopLevelCommaSeparatedValues) {
		forceBreaksAroundElements(toks, open, close)
		return
	}

	// SPLIT_BEFORE_FIRST_ARGUMENT: once an overlong call/list argument
	// run has to split at all, force every element (including the
	// first) onto its own line rather than letting the search land on
	// an asymmetric single-argument break (spec.md §4.3.4's "either all
	// arguments split or none").
	if cfg.SplitBeforeFirstArgument && !isDict && overlong && len(topLevelCommas(toks, open, close)) > 0 {
		forceBreaksAroundElements(toks, open, close)
		return
	}
}
