package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wsfmt/wsfmt/logicalline"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

func tok(kind token.Kind, text string) token.Token {
	return token.Token{Kind: kind, Text: text}
}

func annotated(cfg style.Config, toks ...token.Token) []token.Token {
	lines := []logicalline.Line{{Tokens: toks}}
	Annotate(lines, nil, cfg)
	return lines[0].Tokens
}

// TestSpacingNormalizesUglySpacing exercises S1: "x=1" and "x = 1" should
// both annotate to the same SpacesRequiredBefore around '='.
func TestSpacingNormalizesUglySpacing(t *testing.T) {
	cfg := style.Default()

	test := func(toks []token.Token, wantSpaces []int) func(*testing.T) {
		return func(t *testing.T) {
			out := annotated(cfg, toks...)
			got := make([]int, len(out))
			for i, tk := range out {
				got[i] = tk.SpacesRequiredBefore
			}
			assert.Equal(t, wantSpaces, got)
		}
	}

	t.Run("", test([]token.Token{
		tok(token.Name, "x"),
		tok(token.Operator, "="),
		tok(token.Number, "1"),
	}, []int{0, 1, 1}))
}

func TestSpacingCallHasNoSpaceBeforeParen(t *testing.T) {
	cfg := style.Default()
	out := annotated(cfg,
		tok(token.Name, "f"),
		tok(token.OpeningBracket, "("),
		tok(token.Name, "x"),
		tok(token.ClosingBracket, ")"),
	)
	assert.Equal(t, 0, out[1].SpacesRequiredBefore)
	assert.Equal(t, 0, out[3].SpacesRequiredBefore)
}

// TestArithmeticPrecedenceIndication exercises S6: with
// ArithmeticPrecedenceIndication on, '*' hugs its operands while '+' keeps
// spaces, showing which operator binds tighter.
func TestArithmeticPrecedenceIndication(t *testing.T) {
	cfg := style.Default()
	cfg.ArithmeticPrecedenceIndication = true

	out := annotated(cfg,
		tok(token.Name, "a"),
		tok(token.Operator, "+"),
		tok(token.Name, "b"),
		tok(token.Operator, "*"),
		tok(token.Name, "c"),
	)
	assert.Equal(t, 1, out[1].SpacesRequiredBefore, "binary + keeps a space")
	assert.Equal(t, 0, out[3].SpacesRequiredBefore, "binary * hugs its operands at high precedence")
	assert.True(t, out[3].HasSubtype(token.BinaryOperator))
}

func TestUnaryMinusHasNoTrailingSpace(t *testing.T) {
	cfg := style.Default()
	out := annotated(cfg,
		tok(token.Operator, "="),
		tok(token.Operator, "-"),
		tok(token.Number, "1"),
	)
	assert.True(t, out[1].HasSubtype(token.UnaryOperator))
	assert.Equal(t, 0, out[2].SpacesRequiredBefore)
}

func TestNamedAssignInCallHasNoSpacesByDefault(t *testing.T) {
	cfg := style.Default()
	out := annotated(cfg,
		tok(token.Name, "f"),
		tok(token.OpeningBracket, "("),
		tok(token.Name, "x"),
		tok(token.Operator, "="),
		tok(token.Number, "1"),
		tok(token.ClosingBracket, ")"),
	)
	assert.True(t, out[3].HasSubtype(token.NamedAssign))
	assert.Equal(t, 0, out[3].SpacesRequiredBefore)
	assert.Equal(t, 0, out[4].SpacesRequiredBefore)
}

func TestDictColonSpacing(t *testing.T) {
	cfg := style.Default()
	out := annotated(cfg,
		tok(token.OpeningBracket, "{"),
		tok(token.String, "'a'"),
		tok(token.Colon, ":"),
		tok(token.Number, "1"),
		tok(token.ClosingBracket, "}"),
	)
	assert.True(t, out[2].HasSubtype(token.DictKeyColon))
	assert.Equal(t, 0, out[2].SpacesRequiredBefore, "no space before a dict colon")
	assert.Equal(t, 1, out[3].SpacesRequiredBefore, "one space after a dict colon")
}

func TestSubscriptColonHasNoSpacesByDefault(t *testing.T) {
	cfg := style.Default()
	out := annotated(cfg,
		tok(token.Name, "x"),
		tok(token.OpeningBracket, "["),
		tok(token.Number, "1"),
		tok(token.Colon, ":"),
		tok(token.Number, "2"),
		tok(token.ClosingBracket, "]"),
	)
	assert.True(t, out[3].HasSubtype(token.SubscriptColon))
	assert.Equal(t, 0, out[3].SpacesRequiredBefore)
	assert.Equal(t, 0, out[4].SpacesRequiredBefore)
}

func TestTrailingCommaTagged(t *testing.T) {
	cfg := style.Default()
	out := annotated(cfg,
		tok(token.OpeningBracket, "["),
		tok(token.Number, "1"),
		tok(token.Comma, ","),
		tok(token.ClosingBracket, "]"),
	)
	assert.True(t, out[2].HasSubtype(token.TrailingComma))
}

func TestBreakabilityDisallowsBreakBeforeCallParen(t *testing.T) {
	cfg := style.Default()
	out := annotated(cfg,
		tok(token.Name, "f"),
		tok(token.OpeningBracket, "("),
		tok(token.Name, "x"),
		tok(token.ClosingBracket, ")"),
	)
	assert.Equal(t, token.No, out[1].CanBreakBefore)
}

func TestBreakabilityAllowsBreakAfterOpeningBracket(t *testing.T) {
	cfg := style.Default()
	out := annotated(cfg,
		tok(token.Name, "f"),
		tok(token.OpeningBracket, "("),
		tok(token.Name, "x"),
		tok(token.Comma, ","),
		tok(token.Name, "y"),
		tok(token.ClosingBracket, ")"),
	)
	assert.Equal(t, token.Yes, out[2].CanBreakBefore)
	assert.Equal(t, token.Yes, out[4].CanBreakBefore)
}

func TestDecoratorStaysGluedToName(t *testing.T) {
	cfg := style.Default()
	out := annotated(cfg,
		tok(token.At, "@"),
		tok(token.Name, "property"),
	)
	assert.True(t, out[0].HasSubtype(token.Decorator))
	assert.Equal(t, 0, out[1].SpacesRequiredBefore)
	assert.Equal(t, token.No, out[1].CanBreakBefore)
}

func TestPenaltyAfterOpeningBracketUsesConfiguredValue(t *testing.T) {
	cfg := style.Default()
	cfg.SplitPenaltyAfterOpeningBracket = 42
	out := annotated(cfg,
		tok(token.Name, "f"),
		tok(token.OpeningBracket, "("),
		tok(token.Name, "x"),
		tok(token.ClosingBracket, ")"),
	)
	assert.Equal(t, 42, out[2].SplitPenalty)
}

func TestPenaltyCoalescesAdjacentOpeningBrackets(t *testing.T) {
	cfg := style.Default()
	cfg.CoalesceBrackets = true
	out := annotated(cfg,
		tok(token.Name, "f"),
		tok(token.OpeningBracket, "("),
		tok(token.OpeningBracket, "["),
		tok(token.Number, "1"),
		tok(token.ClosingBracket, "]"),
		tok(token.ClosingBracket, ")"),
	)
	assert.Equal(t, nearInfinitePenalty, out[2].SplitPenalty)
}
