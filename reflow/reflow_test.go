package reflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsfmt/wsfmt/annotate"
	"github.com/wsfmt/wsfmt/logicalline"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

func tok(kind token.Kind, text string) token.Token {
	return token.Token{Kind: kind, Text: text}
}

func annotated(cfg style.Config, toks ...token.Token) []token.Token {
	lines := []logicalline.Line{{Tokens: toks}}
	annotate.Annotate(lines, nil, cfg)
	return lines[0].Tokens
}

// breakFlags renders a DecisionRecord as a []bool for easy comparison.
func breakFlags(rec DecisionRecord) []bool {
	return rec.BreakBefore
}

// TestTrailingCommaForcesOneArgumentPerLine exercises S3: f(a, b, c,)
// with a trailing comma must split to one argument per line.
func TestTrailingCommaForcesOneArgumentPerLine(t *testing.T) {
	cfg := style.Default()
	toks := annotated(cfg,
		tok(token.Name, "f"),
		tok(token.OpeningBracket, "("),
		tok(token.Name, "a"),
		tok(token.Comma, ","),
		tok(token.Name, "b"),
		tok(token.Comma, ","),
		tok(token.Name, "c"),
		tok(token.Comma, ","),
		tok(token.ClosingBracket, ")"),
	)

	rec, err := Reflow(toks, cfg, 0, 0)
	require.NoError(t, err)

	flags := breakFlags(rec)
	assert.True(t, flags[2], "a breaks onto its own line")
	assert.True(t, flags[4], "b breaks onto its own line")
	assert.True(t, flags[6], "c breaks onto its own line")
	assert.True(t, flags[8], "closing paren breaks onto its own line")
	assert.False(t, flags[1], "no break between f and its call paren")
}

// TestShortCallFitsOnOneLine: when nothing forces a split and the line
// fits, no breaks should be chosen at all.
func TestShortCallFitsOnOneLine(t *testing.T) {
	cfg := style.Default()
	toks := annotated(cfg,
		tok(token.Name, "f"),
		tok(token.OpeningBracket, "("),
		tok(token.Name, "a"),
		tok(token.Comma, ","),
		tok(token.Name, "b"),
		tok(token.ClosingBracket, ")"),
	)

	rec, err := Reflow(toks, cfg, 0, 0)
	require.NoError(t, err)

	for i, brk := range breakFlags(rec) {
		assert.False(t, brk, "token %d should not break on a short fitting line", i)
	}
}

// TestCommentInListForcesPerElementBreaks exercises S4: [a, b, #\nc]
// with default knobs splits every element onto its own line.
func TestCommentInListForcesPerElementBreaks(t *testing.T) {
	cfg := style.Default()
	toks := annotated(cfg,
		tok(token.OpeningBracket, "["),
		tok(token.Name, "a"),
		tok(token.Comma, ","),
		tok(token.Name, "b"),
		tok(token.Comma, ","),
		tok(token.Comment, "#"),
		tok(token.Name, "c"),
		tok(token.ClosingBracket, "]"),
	)

	rec, err := Reflow(toks, cfg, 0, 0)
	require.NoError(t, err)

	flags := breakFlags(rec)
	assert.True(t, flags[1], "a breaks onto its own line")
	assert.True(t, flags[3], "b breaks onto its own line")
	assert.True(t, flags[6], "c breaks onto its own line")
}

// TestCommentInListDisabledHeuristic exercises S5:
// DISABLE_SPLIT_LIST_WITH_COMMENT=true lets a and b share a line.
func TestCommentInListDisabledHeuristic(t *testing.T) {
	cfg := style.Default()
	cfg.DisableSplitListWithComment = true
	toks := annotated(cfg,
		tok(token.OpeningBracket, "["),
		tok(token.Name, "a"),
		tok(token.Comma, ","),
		tok(token.Name, "b"),
		tok(token.Comma, ","),
		tok(token.Comment, "#"),
		tok(token.Name, "c"),
		tok(token.ClosingBracket, "]"),
	)

	rec, err := Reflow(toks, cfg, 0, 0)
	require.NoError(t, err)

	flags := breakFlags(rec)
	assert.False(t, flags[3], "b need not start a new line when the heuristic is disabled")
}

// TestSplitBeforeFirstArgumentForcesSymmetricBreak: once an overlong
// call's argument list has to split, SPLIT_BEFORE_FIRST_ARGUMENT forces
// every argument (including the first) onto its own line rather than
// leaving an asymmetric single-argument break.
func TestSplitBeforeFirstArgumentForcesSymmetricBreak(t *testing.T) {
	cfg := style.Default()
	cfg.ColumnLimit = 20
	cfg.SplitBeforeFirstArgument = true
	toks := annotated(cfg,
		tok(token.Name, "f"),
		tok(token.OpeningBracket, "("),
		tok(token.Name, "a"),
		tok(token.Comma, ","),
		tok(token.Name, "b"),
		tok(token.Comma, ","),
		tok(token.Name, "veryLongArgument"),
		tok(token.ClosingBracket, ")"),
	)

	rec, err := Reflow(toks, cfg, 0, 0)
	require.NoError(t, err)

	flags := breakFlags(rec)
	assert.True(t, flags[2], "a breaks onto its own line")
	assert.True(t, flags[4], "b breaks onto its own line")
	assert.True(t, flags[6], "veryLongArgument breaks onto its own line")
}

// TestAllowMultilineLambdasFalseForcesSingleLine: with the default
// ALLOW_MULTILINE_LAMBDAS=false, nothing inside a lambda body may start
// a new line even under heavy column pressure.
func TestAllowMultilineLambdasFalseForcesSingleLine(t *testing.T) {
	cfg := style.Default()
	cfg.ColumnLimit = 5
	toks := annotated(cfg,
		tok(token.Keyword, "lambda"),
		tok(token.Colon, ":"),
		tok(token.Name, "x"),
		tok(token.Operator, "+"),
		tok(token.Name, "y"),
	)

	rec, err := Reflow(toks, cfg, 0, 0)
	require.NoError(t, err)

	for i, brk := range breakFlags(rec) {
		assert.False(t, brk, "token %d is part of the lambda body and must stay on one line", i)
	}
}

// TestIndentDictionaryValueAddsExtraIndent: a dict value broken onto its
// own line right after its key's colon gets one extra continuation
// indent beyond the bracket's own alignment when INDENT_DICTIONARY_VALUE
// is set.
func TestIndentDictionaryValueAddsExtraIndent(t *testing.T) {
	cfg := style.Default()
	cfg.ColumnLimit = 14
	cfg.IndentDictionaryValue = true
	cfg.AllowSplitBeforeDictValue = true
	cfg.ContinuationAlignStyle = style.AlignFixed
	toks := annotated(cfg,
		tok(token.OpeningBracket, "{"),
		tok(token.String, "'key'"),
		tok(token.Colon, ":"),
		tok(token.String, "'valuevalue'"),
		tok(token.ClosingBracket, "}"),
	)

	rec, err := Reflow(toks, cfg, 0, 0)
	require.NoError(t, err)

	require.True(t, breakFlags(rec)[3], "the dict value breaks onto its own line")
	assert.Equal(t, cfg.ContinuationIndentWidth*2, rec.Column[3], "the value indents one extra level past the bracket's own continuation indent")
}

func TestExcessCharacterPenaltyForcesBreakWhenOverlong(t *testing.T) {
	cfg := style.Default()
	cfg.ColumnLimit = 10
	toks := annotated(cfg,
		tok(token.Name, "aVeryLongName"),
		tok(token.Operator, "+"),
		tok(token.Name, "anotherVeryLongName"),
	)

	rec, err := Reflow(toks, cfg, 0, 0)
	require.NoError(t, err)

	assert.True(t, breakFlags(rec)[1], "breaking before + is cheaper than overflowing the column limit")
}
