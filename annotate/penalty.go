package annotate

import (
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

// nearInfinitePenalty stands in for "effectively forbidden but not a hard
// CanBreakBefore=No", used where a break is legal in principle but the
// style says to avoid it outside the conditional heuristics layered on
// top in reflow/heuristics.go (spec.md §4.3.4).
const nearInfinitePenalty = 1 << 20

// penaltyFor assigns curr.SplitPenalty: the base, context-independent
// cost of breaking before curr (spec.md §4.2.2). Contributions are
// additive, per spec.md §4.2.2's "Penalties are additive"; this function
// starts from a kind/subtype base and adds the context knobs spec.md §6
// lists under SPLIT_PENALTY_*. The absolute scale is a calibration
// constant, not a contract (spec.md §9's open question) — only the
// relative ordering between these branches is load-bearing.
func penaltyFor(prev *token.Token, curr *token.Token, index int, toks []token.Token, cfg style.Config) {
	if prev == nil {
		curr.SplitPenalty = 0
		return
	}

	penalty := 0

	switch {
	case prev.Kind == token.Comma:
		penalty = 0
	case prev.Kind == token.OpeningBracket:
		penalty = cfg.SplitPenaltyAfterOpeningBracket
	case curr.HasSubtype(token.CompForClause), curr.HasSubtype(token.CompIfClause):
		penalty = cfg.SplitPenaltyComprehension
	case curr.Kind == token.Keyword && (curr.Text == "if" || curr.Text == "else"):
		penalty = cfg.SplitPenaltyBeforeIfExpr
	case prev.HasSubtype(token.BinaryOperator) || curr.HasSubtype(token.BinaryOperator):
		penalty = cfg.SplitPenaltyArithmeticOperator
	case curr.Kind == token.Operator && curr.Text == ".":
		penalty = cfg.SplitPenaltyArithmeticOperator / 2
	default:
		penalty = cfg.SplitPenaltyForAddedLineSplit
	}

	if (curr.HasSubtype(token.NamedAssign) || curr.HasSubtype(token.DefaultAssign)) &&
		!cfg.AllowSplitBeforeDefaultOrNamedAssigns {
		penalty += nearInfinitePenalty
	}

	if prev.HasSubtype(token.DictKeyColon) && !cfg.AllowSplitBeforeDictValue {
		penalty += nearInfinitePenalty
	}

	if curr.Kind == token.ClosingBracket {
		if cfg.SplitBeforeClosingBracket {
			penalty = cfg.SplitPenaltyForAddedLineSplit / 2
		} else {
			penalty += cfg.SplitPenaltyForAddedLineSplit
		}
	}

	if cfg.CoalesceBrackets && prev.Kind == token.OpeningBracket && curr.Kind == token.OpeningBracket {
		penalty = nearInfinitePenalty
	}

	curr.SplitPenalty = penalty
}
