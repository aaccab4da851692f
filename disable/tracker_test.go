package disable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsfmt/wsfmt/errs"
	"github.com/wsfmt/wsfmt/logicalline"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

func nameTok(text string) token.Token { return token.Token{Kind: token.Name, Text: text} }
func commentTok(text string) token.Token { return token.Token{Kind: token.Comment, Text: text} }

func TestRegionDisabledBetweenDirectives(t *testing.T) {
	tr, err := New(style.Default())
	require.NoError(t, err)

	lines := []logicalline.Line{
		{Tokens: []token.Token{commentTok("# disable-formatter")}, StandaloneComment: true},
		{Tokens: []token.Token{nameTok("x")}},
		{Tokens: []token.Token{commentTok("# enable-formatter")}, StandaloneComment: true},
		{Tokens: []token.Token{nameTok("y")}},
	}
	tr.Mark(lines)

	assert.True(t, lines[0].Disabled)
	assert.True(t, lines[1].Disabled)
	assert.True(t, lines[2].Disabled, "the enable-formatter line itself is still inside the region")
	assert.False(t, lines[3].Disabled)
}

func TestTrailingDisableAffectsOnlyItsOwnLine(t *testing.T) {
	tr, err := New(style.Default())
	require.NoError(t, err)

	lines := []logicalline.Line{
		{Tokens: []token.Token{nameTok("x"), commentTok("# disable-formatter")}},
		{Tokens: []token.Token{nameTok("y")}},
	}
	tr.Mark(lines)

	assert.True(t, lines[0].Disabled)
	assert.False(t, lines[1].Disabled)
}

func TestI18nCommentRegexDisablesLine(t *testing.T) {
	cfg := style.Default()
	cfg.I18nComment = `I18N_.*`
	tr, err := New(cfg)
	require.NoError(t, err)

	lines := []logicalline.Line{
		{Tokens: []token.Token{nameTok("x"), commentTok("# I18N_CHECK")}},
		{Tokens: []token.Token{nameTok("y"), commentTok("# unrelated")}},
	}
	tr.Mark(lines)

	assert.True(t, lines[0].Disabled)
	assert.False(t, lines[1].Disabled)
}

func TestI18nFunctionCallDisablesLine(t *testing.T) {
	cfg := style.Default()
	cfg.I18nFunctionCall = []string{"_", "gettext"}
	tr, err := New(cfg)
	require.NoError(t, err)

	lines := []logicalline.Line{
		{Tokens: []token.Token{
			nameTok("_"),
			{Kind: token.OpeningBracket, Text: "("},
			{Kind: token.String, Text: "'hello'"},
			{Kind: token.ClosingBracket, Text: ")"},
		}},
		{Tokens: []token.Token{nameTok("x")}},
	}
	tr.Mark(lines)

	assert.True(t, lines[0].Disabled)
	assert.False(t, lines[1].Disabled)
}

func TestInvalidI18nCommentPatternIsConfigError(t *testing.T) {
	cfg := style.Default()
	cfg.I18nComment = "("
	_, err := New(cfg)
	require.Error(t, err)
	assert.IsType(t, errs.ConfigError{}, err)
}
