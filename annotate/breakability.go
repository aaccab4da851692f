package annotate

import (
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

// breakBetween assigns curr.CanBreakBefore and curr.MustBreakBefore.
//
// CanBreakBefore is false exactly for the canonical unbreakable regions
// spec.md §4.2.2 enumerates (among them the token after a continuation
// marker, which must not be split off it). MustBreakBefore is left No here
// for every token; the conditional
// "must break" rules spec.md §4.2.2/§4.3.4 describes (comma-terminated
// argument lists, comments inside lists, overlong comprehensions) all
// depend on whether the *whole* enclosing bracket fits the column limit,
// which the annotator — working one adjacent pair at a time — cannot
// know. Those are reflow-time decisions (spec.md §4.3.4 says as much:
// "modify penalty at decision time rather than changing the graph
// shape"), implemented in reflow/heuristics.go by raising the no-break
// cost to effectively infinite rather than setting MustBreakBefore here.
func breakBetween(prev *token.Token, curr *token.Token, cfg style.Config) {
	if prev == nil {
		curr.CanBreakBefore = token.No
		curr.MustBreakBefore = token.No
		return
	}

	switch curr.Kind {
	case token.Newline, token.Indent, token.Dedent, token.EndOfFile, token.Comma, token.Semicolon:
		curr.CanBreakBefore = token.No
		curr.MustBreakBefore = token.No
		return
	}

	if prev.Kind == token.Continuation {
		curr.MustBreakBefore = token.No
		curr.CanBreakBefore = token.No
		return
	}

	if isUnbreakablePair(prev, curr, cfg) {
		curr.CanBreakBefore = token.No
		curr.MustBreakBefore = token.No
		return
	}

	curr.CanBreakBefore = token.Yes
	curr.MustBreakBefore = token.No
}

func isUnbreakablePair(prev *token.Token, curr *token.Token, cfg style.Config) bool {
	// A keyword and its following opening paren of a def/class/if/lambda.
	if prev.Kind == token.Keyword && curr.Kind == token.OpeningBracket {
		return true
	}
	// A name (or string, or a closing bracket as in f()()) and its
	// immediately following call '(' or subscript '['.
	if curr.Kind == token.OpeningBracket && curr.SpacesRequiredBefore == 0 &&
		(prev.Kind == token.Name || prev.Kind == token.ClosingBracket || prev.Kind == token.String) {
		return true
	}
	// A closing bracket and its trailing ':' in a compound-statement
	// header.
	if prev.Kind == token.ClosingBracket && curr.Kind == token.Colon {
		return true
	}
	// Decorator '@' and the name it decorates.
	if prev.Kind == token.At && prev.HasSubtype(token.Decorator) {
		return true
	}
	// A unary operator (or star/double-star expansion) and its operand.
	if prev.HasSubtype(token.UnaryOperator) || prev.HasSubtype(token.StarExpr) || prev.HasSubtype(token.DoubleStarExpr) {
		return true
	}
	// The interior of a typed-name annotation, when the style asks for
	// it to stay glued: "name: Type" never breaks between ':' and Type.
	if prev.HasSubtype(token.TypedNameColon) && !cfg.AllowMultilineDictionaryKeys {
		return true
	}
	// A dict key's colon never breaks from its key when dictionary keys
	// may not span lines.
	if curr.HasSubtype(token.DictKeyColon) && !cfg.AllowMultilineDictionaryKeys {
		return true
	}
	return false
}
