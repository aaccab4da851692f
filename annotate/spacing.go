package annotate

import (
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

// spaceBetween assigns curr.SpacesRequiredBefore (spec.md §4.2.2). This is
// the data-driven dispatch table spec.md §9 calls for, keyed on
// (prev.Kind, prev.Subtypes, curr.Kind, curr.Subtypes, style) — realized
// here as a function with explicit branches rather than a literal map,
// one of the two forms §9 says are acceptable, chosen because most rules
// need to inspect both tokens' Subtypes together and a map keyed on the
// full cross product would be far larger than the rule count.
func spaceBetween(prev *token.Token, curr *token.Token, cfg style.Config) {
	if prev == nil {
		curr.SpacesRequiredBefore = 0
		return
	}

	switch prev.Kind {
	case token.Newline, token.Indent, token.Dedent:
		curr.SpacesRequiredBefore = 0
		return
	}

	switch curr.Kind {
	case token.Newline, token.Indent, token.Dedent, token.EndOfFile:
		curr.SpacesRequiredBefore = 0
		return
	case token.Comma, token.Semicolon:
		curr.SpacesRequiredBefore = 0
		return
	case token.Comment:
		curr.SpacesRequiredBefore = spacesBeforeComment(cfg)
		return
	}

	if prev.Kind == token.Comma {
		curr.SpacesRequiredBefore = 1
		if curr.Kind == token.ClosingBracket {
			if cfg.SpaceBetweenEndingCommaAndClosingBracket {
				curr.SpacesRequiredBefore = 1
			} else {
				curr.SpacesRequiredBefore = 0
			}
		}
		return
	}

	if prev.Kind == token.At && prev.HasSubtype(token.Decorator) {
		curr.SpacesRequiredBefore = 0
		return
	}

	if curr.HasSubtype(token.NamedAssign) || curr.HasSubtype(token.DefaultAssign) {
		curr.SpacesRequiredBefore = boolToInt(cfg.SpacesAroundDefaultOrNamedAssign)
		return
	}
	if prev.HasSubtype(token.NamedAssign) || prev.HasSubtype(token.DefaultAssign) {
		curr.SpacesRequiredBefore = boolToInt(cfg.SpacesAroundDefaultOrNamedAssign)
		return
	}

	if curr.Kind == token.OpeningBracket {
		if prev.Kind == token.Operator && !prev.HasSubtype(token.UnaryOperator) &&
			!prev.HasSubtype(token.StarExpr) && !prev.HasSubtype(token.DoubleStarExpr) {
			curr.SpacesRequiredBefore = spaceBeforeOperator(prev, cfg)
			return
		}
		curr.SpacesRequiredBefore = spaceBeforeOpenBracket(prev, curr)
		return
	}

	if prev.Kind == token.OpeningBracket {
		curr.SpacesRequiredBefore = spaceAfterOpenBracket(prev, curr, cfg)
		return
	}

	if curr.Kind == token.ClosingBracket {
		curr.SpacesRequiredBefore = spaceBeforeCloseBracket(prev, curr, cfg)
		return
	}

	if curr.Kind == token.Colon {
		curr.SpacesRequiredBefore = spaceBeforeColon(curr, cfg)
		return
	}
	if prev.Kind == token.Colon {
		curr.SpacesRequiredBefore = spaceAfterColon(prev, cfg)
		return
	}

	if curr.Kind == token.Arrow || prev.Kind == token.Arrow {
		curr.SpacesRequiredBefore = 1
		return
	}

	if prev.HasSubtype(token.UnaryOperator) || prev.HasSubtype(token.StarExpr) || prev.HasSubtype(token.DoubleStarExpr) {
		curr.SpacesRequiredBefore = 0
		return
	}

	if curr.Kind == token.Operator {
		curr.SpacesRequiredBefore = spaceBeforeOperator(curr, cfg)
		return
	}
	if prev.Kind == token.Operator {
		curr.SpacesRequiredBefore = spaceBeforeOperator(prev, cfg)
		return
	}

	curr.SpacesRequiredBefore = 1
}

func spaceBeforeOpenBracket(prev *token.Token, curr *token.Token) int {
	switch curr.Text {
	case "(":
		if isCallable(*prev) {
			return 0
		}
	case "[":
		if isSubscriptable(*prev) {
			return 0
		}
	}
	switch prev.Kind {
	case token.OpeningBracket, token.Comma, token.Operator, token.Colon:
		return 0
	}
	return 1
}

func spaceAfterOpenBracket(open *token.Token, curr *token.Token, cfg style.Config) int {
	if curr.Kind == token.ClosingBracket {
		return 0
	}
	if cfg.SpaceInsideBrackets {
		return 1
	}
	switch open.Text {
	case "[":
		if cfg.SpacesAroundListDelimiters {
			return 1
		}
	case "{":
		if cfg.SpacesAroundDictDelimiters {
			return 1
		}
	case "(":
		if cfg.SpacesAroundTupleDelimiters {
			return 1
		}
	}
	return 0
}

func spaceBeforeCloseBracket(prev *token.Token, curr *token.Token, cfg style.Config) int {
	if prev.Kind == token.OpeningBracket {
		return 0
	}
	if cfg.SpaceInsideBrackets {
		return 1
	}
	return 0
}

func spaceBeforeColon(curr *token.Token, cfg style.Config) int {
	switch {
	case curr.HasSubtype(token.SubscriptColon):
		return boolToInt(cfg.SpacesAroundSubscriptColon)
	case curr.HasSubtype(token.DictKeyColon):
		return 0
	case curr.HasSubtype(token.TypedNameColon):
		return 0
	default:
		return 0
	}
}

func spaceAfterColon(prev *token.Token, cfg style.Config) int {
	switch {
	case prev.HasSubtype(token.SubscriptColon):
		return boolToInt(cfg.SpacesAroundSubscriptColon)
	case prev.HasSubtype(token.DictKeyColon):
		return 1
	case prev.HasSubtype(token.TypedNameColon):
		return 1
	default:
		return 1
	}
}

func spaceBeforeOperator(op *token.Token, cfg style.Config) int {
	if op.HasSubtype(token.PowerOperator) {
		return boolToInt(cfg.SpacesAroundPowerOperator)
	}
	if cfg.NoSpacesAroundSelectedBinaryOperators[op.Text] {
		return 0
	}
	if cfg.ArithmeticPrecedenceIndication && isHighPrecedenceArithmetic(op.Text) {
		return 0
	}
	return 1
}

func isHighPrecedenceArithmetic(op string) bool {
	switch op {
	case "*", "/", "//", "%", "@":
		return true
	default:
		return false
	}
}

func spacesBeforeComment(cfg style.Config) int {
	if len(cfg.SpacesBeforeComment) > 0 {
		return cfg.SpacesBeforeComment[0]
	}
	return 2
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
