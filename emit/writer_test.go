package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wsfmt/wsfmt/logicalline"
	"github.com/wsfmt/wsfmt/reflow"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

func TestWriteLineNoBreaks(t *testing.T) {
	cfg := style.Default()
	var buf strings.Builder
	w := New(&buf, cfg, "\n")

	line := logicalline.Line{
		Depth: 0,
		Tokens: []token.Token{
			{Kind: token.Name, Text: "x"},
			{Kind: token.Operator, Text: "=", SpacesRequiredBefore: 1},
			{Kind: token.Number, Text: "1", SpacesRequiredBefore: 1},
		},
	}
	decisions := reflow.DecisionRecord{BreakBefore: []bool{false, false, false}}

	w.WriteLine(line, decisions, 0)
	assert.NoError(t, w.Flush())

	assert.Equal(t, "x = 1\n", buf.String())
}

func TestWriteLineWithBreakIndentsToColumn(t *testing.T) {
	cfg := style.Default()
	var buf strings.Builder
	w := New(&buf, cfg, "\n")

	line := logicalline.Line{
		Depth: 0,
		Tokens: []token.Token{
			{Kind: token.Name, Text: "f"},
			{Kind: token.OpeningBracket, Text: "("},
			{Kind: token.Name, Text: "a"},
		},
	}
	decisions := reflow.DecisionRecord{
		BreakBefore: []bool{false, false, true},
		Column:      []int{0, 0, 4},
	}

	w.WriteLine(line, decisions, 0)
	assert.NoError(t, w.Flush())

	assert.Equal(t, "f(\n    a\n", buf.String())
}

func TestWriteLineBlanksPrecedeLine(t *testing.T) {
	cfg := style.Default()
	var buf strings.Builder
	w := New(&buf, cfg, "\n")

	line := logicalline.Line{Tokens: []token.Token{{Kind: token.Name, Text: "x"}}}
	w.WriteLine(line, reflow.DecisionRecord{BreakBefore: []bool{false}}, 2)
	_ = w.Flush()

	assert.Equal(t, "\n\nx\n", buf.String())
}

func TestWriteDisabledLinePreservesColumns(t *testing.T) {
	cfg := style.Default()
	var buf strings.Builder
	w := New(&buf, cfg, "\n")

	line := logicalline.Line{
		Disabled: true,
		Tokens: []token.Token{
			{Kind: token.Name, Text: "x", OriginalLine: 1, OriginalColumn: 2},
			{Kind: token.Operator, Text: "=", OriginalLine: 1, OriginalColumn: 4, SpacesRequiredBefore: 1},
		},
	}
	w.WriteLine(line, reflow.DecisionRecord{}, 0)
	_ = w.Flush()

	assert.Equal(t, "  x =\n", buf.String())
}

// TestWriteDisabledLineIgnoresAnnotatorSpacing exercises a disabled region
// whose original spacing does not match what the annotator would have
// chosen: writeDisabled must reproduce the original gap (OriginalColumn),
// not SpacesRequiredBefore, or this would silently re-stylize a region
// that is supposed to come out byte-for-byte as written.
func TestWriteDisabledLineIgnoresAnnotatorSpacing(t *testing.T) {
	cfg := style.Default()
	var buf strings.Builder
	w := New(&buf, cfg, "\n")

	line := logicalline.Line{
		Disabled: true,
		Tokens: []token.Token{
			{Kind: token.Name, Text: "x", OriginalLine: 1, OriginalColumn: 0},
			// Original source has 5 spaces before "=", but an annotator
			// would normally want just 1.
			{Kind: token.Operator, Text: "=", OriginalLine: 1, OriginalColumn: 6, SpacesRequiredBefore: 1},
		},
	}
	w.WriteLine(line, reflow.DecisionRecord{}, 0)
	_ = w.Flush()

	assert.Equal(t, "x     =\n", buf.String())
}
