package annotate

import (
	"github.com/wsfmt/wsfmt/source"
	"github.com/wsfmt/wsfmt/token"
)

// bracketKind classifies what an open bracket is being used for, which is
// exactly the ambiguity spec.md §4.2.1 calls out: the same '(' token kind
// means "call arguments" after a name, "grouping" after an operator, and
// "parameter list" after def/class/lambda.
type bracketKind int

const (
	bracketGroup bracketKind = iota
	bracketCall
	bracketParams
	bracketList
	bracketSubscript
	bracketDictOrSet
)

var statementKeywords = map[string]bool{
	"def": true, "class": true, "lambda": true,
}

var compKeywords = map[string]bool{"for": true, "if": true}

// tagSubtypes is the first annotator sub-phase (spec.md §4.2.1). It walks
// toks once, tracking an explicit bracket-kind stack, and assigns
// Subtypes to tokens whose spacing/splitting differs by syntactic role.
// When tree is non-nil a host could in principle resolve an ambiguity the
// token-context heuristics below cannot (e.g. distinguishing a
// dictionary comprehension from a set comprehension deep inside nested
// brackets); tree is accepted for that purpose but the heuristics here
// already resolve every case spec.md §4.2.1 names without consulting it.
func tagSubtypes(toks []token.Token, tree source.Tree) {
	_ = tree

	var stack []bracketKind
	inDefSignature := false
	afterArrow := false
	sawLambda := false

	top := func() bracketKind {
		if len(stack) == 0 {
			return bracketGroup
		}
		return stack[len(stack)-1]
	}

	prevSignificant := func(i int) *token.Token {
		for j := i - 1; j >= 0; j-- {
			switch toks[j].Kind {
			case token.Newline, token.Indent, token.Dedent, token.Comment:
				continue
			}
			return &toks[j]
		}
		return nil
	}

	for i := range toks {
		t := &toks[i]
		prev := prevSignificant(i)

		switch t.Kind {
		case token.Comma:
			if i+1 < len(toks) && toks[i+1].Kind == token.ClosingBracket {
				t.Subtypes = t.Subtypes.Add(token.TrailingComma)
			}

		case token.At:
			if prev == nil || prev.Kind == token.Newline || prev.Kind == token.Indent || prev.Kind == token.Dedent {
				t.Subtypes = t.Subtypes.Add(token.Decorator)
			} else {
				t.Subtypes = t.Subtypes.Add(token.BinaryOperator)
				t.Subtypes = t.Subtypes.Add(token.MatrixMultiply)
			}

		case token.Keyword:
			if statementKeywords[t.Text] {
				if t.Text == "lambda" {
					sawLambda = true
				} else {
					inDefSignature = true
				}
			}
			if compKeywords[t.Text] && len(stack) > 0 {
				switch t.Text {
				case "for":
					t.Subtypes = t.Subtypes.Add(token.CompForClause)
				case "if":
					t.Subtypes = t.Subtypes.Add(token.CompIfClause)
				}
			}

		case token.OpeningBracket:
			kind := bracketGroup
			switch {
			case t.Text == "{":
				kind = bracketDictOrSet
			case t.Text == "[":
				if prev != nil && isSubscriptable(*prev) {
					kind = bracketSubscript
				} else {
					kind = bracketList
				}
			case t.Text == "(":
				switch {
				case inDefSignature && prev != nil && prev.Kind == token.Name:
					kind = bracketParams
				case prev != nil && isCallable(*prev):
					kind = bracketCall
				default:
					kind = bracketGroup
				}
			}
			stack = append(stack, kind)

		case token.ClosingBracket:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				inDefSignature = false
			}

		case token.Arrow:
			afterArrow = true

		case token.Colon:
			switch {
			case sawLambda:
				t.Subtypes = t.Subtypes.Add(token.LambdaBody)
				sawLambda = false
			case top() == bracketDictOrSet:
				t.Subtypes = t.Subtypes.Add(token.DictKeyColon)
			case top() == bracketSubscript:
				t.Subtypes = t.Subtypes.Add(token.SubscriptColon)
			case top() == bracketParams || afterArrow:
				t.Subtypes = t.Subtypes.Add(token.TypedNameColon)
			}
			if len(stack) == 0 {
				afterArrow = false
			}

		case token.Operator:
			switch t.Text {
			case "=":
				switch top() {
				case bracketCall:
					t.Subtypes = t.Subtypes.Add(token.NamedAssign)
				case bracketParams:
					t.Subtypes = t.Subtypes.Add(token.DefaultAssign)
				}
			case "**":
				if isUnaryContext(prev) {
					t.Subtypes = t.Subtypes.Add(token.DoubleStarExpr)
				} else {
					t.Subtypes = t.Subtypes.Add(token.BinaryOperator)
					t.Subtypes = t.Subtypes.Add(token.PowerOperator)
				}
			case "*":
				if isUnaryContext(prev) {
					t.Subtypes = t.Subtypes.Add(token.StarExpr)
				} else {
					t.Subtypes = t.Subtypes.Add(token.BinaryOperator)
				}
			case "+", "-", "~":
				if isUnaryContext(prev) {
					t.Subtypes = t.Subtypes.Add(token.UnaryOperator)
				} else {
					t.Subtypes = t.Subtypes.Add(token.BinaryOperator)
				}
			default:
				t.Subtypes = t.Subtypes.Add(token.BinaryOperator)
			}

		case token.Name:
			if afterArrow {
				t.Subtypes = t.Subtypes.Add(token.TypedName)
			}
		}
	}
}

// isCallable reports whether prev can be immediately followed by a call
// '(' with no space, per spec.md §4.2.2 ("no space between a function
// name and its opening paren").
func isCallable(prev token.Token) bool {
	switch prev.Kind {
	case token.Name, token.ClosingBracket, token.String:
		return true
	default:
		return false
	}
}

// isSubscriptable mirrors isCallable for "name and its subscript opening
// bracket".
func isSubscriptable(prev token.Token) bool {
	switch prev.Kind {
	case token.Name, token.ClosingBracket, token.String:
		return true
	default:
		return false
	}
}

// isUnaryContext decides whether a +/-/*/** following prev is unary
// (prefix) rather than binary, per spec.md §4.2.1 ("unary '-' vs binary
// '-' is distinguished by syntactic context"): true at the start of an
// expression — nothing before it, or the previous significant token is
// itself an operator, an opening bracket, a comma, a colon, or a keyword.
func isUnaryContext(prev *token.Token) bool {
	if prev == nil {
		return true
	}
	switch prev.Kind {
	case token.Operator, token.OpeningBracket, token.Comma, token.Colon, token.Keyword, token.Semicolon:
		return true
	default:
		return false
	}
}
