package blankline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wsfmt/wsfmt/logicalline"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

func kw(text string) token.Token { return token.Token{Kind: token.Keyword, Text: text} }
func name(text string) token.Token { return token.Token{Kind: token.Name, Text: text} }

func TestTwoBlankLinesAroundTopLevelDef(t *testing.T) {
	cfg := style.Default()
	lines := []logicalline.Line{
		{Depth: 0, Tokens: []token.Token{name("x")}},
		{Depth: 0, Tokens: []token.Token{kw("def"), name("f")}},
		{Depth: 1, Tokens: []token.Token{kw("pass")}},
		{Depth: 0, Tokens: []token.Token{name("y")}},
	}

	plan := Plan(lines, cfg)

	assert.Equal(t, 2, plan[1], "two blank lines before a top-level def")
	assert.Equal(t, 2, plan[3], "two blank lines after a top-level def's body ends")
}

func TestNestedDefBlankLineOnlyOnFirstOne(t *testing.T) {
	cfg := style.Default()
	cfg.BlankLineBeforeNestedClassOrDef = true

	lines := []logicalline.Line{
		{Depth: 0, Tokens: []token.Token{kw("class"), name("C")}},
		{Depth: 1, Tokens: []token.Token{kw("def"), name("a")}},
		{Depth: 2, Tokens: []token.Token{kw("pass")}},
		{Depth: 1, Tokens: []token.Token{kw("def"), name("b")}},
		{Depth: 2, Tokens: []token.Token{kw("pass")}},
	}

	plan := Plan(lines, cfg)

	assert.Equal(t, 1, plan[1], "blank line before the first nested def")
	assert.Equal(t, 0, plan[3], "no blank line before the second nested def in the same block")
}

func TestDisabledRegionPreservesOriginalBlankLines(t *testing.T) {
	cfg := style.Default()
	lines := []logicalline.Line{
		{Depth: 0, Disabled: true, Tokens: []token.Token{{Kind: token.Name, Text: "x", OriginalLine: 1}}},
		{Depth: 0, Disabled: true, Tokens: []token.Token{{Kind: token.Name, Text: "y", OriginalLine: 5}}},
	}

	plan := Plan(lines, cfg)
	assert.Equal(t, 3, plan[1], "three original blank lines (2,3,4) between line 1 and line 5")
}
