package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBaseline(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 79, cfg.ColumnLimit)
	assert.Equal(t, 4, cfg.IndentWidth)
	assert.True(t, cfg.SplitArgumentsWhenCommaTerminated)
}

func TestApplyOverridesColumnLimitAndBooleans(t *testing.T) {
	cfg, err := Default().Apply(map[string]any{
		"column_limit":             100,
		"FORCE_MULTILINE_DICT":     true,
		"spaces_before_comment":    []any{2, 4},
		"no_spaces_around_selected_binary_operators": []any{"+", "-"},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.ColumnLimit)
	assert.True(t, cfg.ForceMultilineDict)
	assert.Equal(t, []int{2, 4}, cfg.SpacesBeforeComment)
	assert.True(t, cfg.NoSpacesAroundSelectedBinaryOperators["+"])
}

func TestApplyUnknownKnobIsConfigError(t *testing.T) {
	_, err := Default().Apply(map[string]any{"NOT_A_REAL_KNOB": true})
	require.Error(t, err)
	var cfgErr interface{ Error() string }
	require.ErrorAs(t, err, &cfgErr)
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	base := Default()
	_, err := base.Apply(map[string]any{"COLUMN_LIMIT": 40})
	require.NoError(t, err)
	assert.Equal(t, 79, base.ColumnLimit)
}

func TestLoadDetectsCyclicBasedOnStyle(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte("based_on_style: "+b+"\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("based_on_style: "+a+"\n"), 0o644))

	_, err := Load(a, nil)
	require.Error(t, err)
}

func TestLoadChainsThroughNamedBaseline(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "style.yaml")
	require.NoError(t, os.WriteFile(p, []byte("based_on_style: chromium\nindent_width: 2\n"), 0o644))

	cfg, err := Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.ColumnLimit)
	assert.Equal(t, 2, cfg.IndentWidth)
}
