package reflow

import (
	"container/heap"

	"github.com/wsfmt/wsfmt/errs"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

// Reflow runs the best-first search (spec.md §4.3.1–§4.3.3) over one
// LogicalLine's tokens and returns the minimum-cost DecisionRecord.
// startColumn and baseIndent come from the LogicalLine's block depth
// (startColumn is where the first token is placed; baseIndent is
// depth*IndentWidth, the column non-bracketed continuations fall back to).
func Reflow(toks []token.Token, cfg style.Config, startColumn, baseIndent int) (DecisionRecord, error) {
	if len(toks) == 0 {
		return DecisionRecord{}, nil
	}

	work := make([]token.Token, len(toks))
	copy(work, toks)
	applyHeuristics(work, cfg)

	start := &State{NextTokenIndex: 0, Column: startColumn}

	pq := &stateHeap{start}
	heap.Init(pq)

	visited := map[fingerprint]int{}
	const maxExplored = 200000

	for explored := 0; pq.Len() > 0; explored++ {
		if explored > maxExplored {
			return DecisionRecord{}, errs.InternalInvariant{Detail: "reflow: explored-state limit reached without reaching goal"}
		}

		s := heap.Pop(pq).(*State)

		if best, ok := visited[s.fingerprint()]; ok && best < s.Cost {
			continue
		}

		if s.NextTokenIndex >= len(work) {
			rec := reconstructDecisionRecord(s, len(work))
			// State.Column is the column after each token; the record
			// holds the column each token starts at.
			for i := range rec.Column {
				rec.Column[i] -= len(work[i].Text)
			}
			return rec, nil
		}

		for _, succ := range successors(s, work, cfg, baseIndent) {
			fp := succ.fingerprint()
			if best, ok := visited[fp]; ok && best <= succ.Cost {
				continue
			}
			visited[fp] = succ.Cost
			heap.Push(pq, succ)
		}
	}

	return DecisionRecord{}, errs.InternalInvariant{Detail: "reflow: frontier exhausted without reaching goal"}
}

// successors generates the legal next states from s (spec.md §4.3.1).
func successors(s *State, toks []token.Token, cfg style.Config, baseIndent int) []*State {
	t := &toks[s.NextTokenIndex]

	canBreak := t.CanBreakBefore == token.Yes
	mustBreak := t.MustBreakBefore == token.Yes

	var out []*State
	if !mustBreak {
		out = append(out, advance(s, toks, cfg, baseIndent, false))
	}
	if canBreak || mustBreak {
		out = append(out, advance(s, toks, cfg, baseIndent, true))
	}
	return out
}

// advance builds the single successor state for either the no-break or
// the break choice at s.NextTokenIndex, applying bracket push/pop and the
// excess-character penalty uniformly (spec.md §4.3.2, §4.3.5).
func advance(s *State, toks []token.Token, cfg style.Config, baseIndent int, brokeHere bool) *State {
	t := &toks[s.NextTokenIndex]

	var columnBeforeToken int
	cost := s.Cost
	stack := s.Stack

	if !brokeHere {
		columnBeforeToken = s.Column + t.SpacesRequiredBefore
	} else {
		if top, ok := s.top(); ok {
			columnBeforeToken = closingIndentForBreak(t, top, cfg)
		} else {
			columnBeforeToken = baseIndent + cfg.ContinuationIndentWidth
		}
		// INDENT_DICTIONARY_VALUE: a value broken onto its own line right
		// after a dict key's colon gets one extra continuation indent
		// beyond the bracket's own alignment, so it reads as nested under
		// its key rather than merely continuing the entry.
		if cfg.IndentDictionaryValue && s.NextTokenIndex > 0 && toks[s.NextTokenIndex-1].HasSubtype(token.DictKeyColon) {
			columnBeforeToken += cfg.ContinuationIndentWidth
		}
		cost += t.SplitPenalty + cfg.SplitPenaltyForAddedLineSplit
	}

	columnAfterToken := columnBeforeToken + len(t.Text)

	switch t.Kind {
	case token.OpeningBracket:
		stack = s.cloneStack()
		stack = append(stack, pushParen(cfg, baseIndent, columnAfterToken))
	case token.ClosingBracket:
		if len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	}

	if excess := columnAfterToken - cfg.ColumnLimit; excess > 0 {
		cost += excess * cfg.SplitPenaltyExcessCharacter
	}

	lineCount := s.LineCount
	if brokeHere {
		lineCount++
	}

	return &State{
		NextTokenIndex: s.NextTokenIndex + 1,
		Column:         columnAfterToken,
		LineCount:      lineCount,
		Stack:          stack,
		Cost:           cost,
		Parent:         s,
		BrokeHere:      brokeHere,
	}
}

// closingIndentForBreak picks the break-column for t given the
// innermost open bracket's ParenState: t's own indent when t is not
// itself the bracket's closing token, or the dedent/indent-adjusted
// closing column when it is (spec.md §4.3.5 step 3).
func closingIndentForBreak(t *token.Token, top ParenState, cfg style.Config) int {
	if t.Kind == token.ClosingBracket {
		return closingIndentFor(top, cfg)
	}
	return top.Indent
}

// stateHeap is a container/heap priority queue ordered by accrued cost,
// tie-broken by (column, next_token_index) for determinism (spec.md
// §4.3.3), then by fewer breaks so far. No other preference between
// earlier and later breaks is applied on a tie.
type stateHeap []*State

func (h stateHeap) Len() int { return len(h) }

func (h stateHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if a.Column != b.Column {
		return a.Column < b.Column
	}
	if a.NextTokenIndex != b.NextTokenIndex {
		return a.NextTokenIndex < b.NextTokenIndex
	}
	return a.LineCount < b.LineCount
}

func (h stateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *stateHeap) Push(x any) {
	*h = append(*h, x.(*State))
}

func (h *stateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
