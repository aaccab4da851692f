// Package emit converts the pipeline's finished instructions (joined,
// blank-line-planned LogicalLines plus each one's reflow DecisionRecord)
// into text (spec.md §4.6). It is the only stage that writes bytes.
package emit

import (
	"bufio"
	"io"
	"strings"

	"github.com/wsfmt/wsfmt/logicalline"
	"github.com/wsfmt/wsfmt/reflow"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

// Writer emits one file's worth of LogicalLines. It is not safe for
// concurrent use; a worker pool gives each file its own Writer (spec.md
// §5's "no shared mutable state between files").
type Writer struct {
	w    *bufio.Writer
	cfg  style.Config
	eol  string
	Map  LineMap
}

// New returns a Writer with the given end-of-line sequence ("\n" or
// "\r\n", whatever the source file used). An empty eol defaults to "\n".
func New(w io.Writer, cfg style.Config, eol string) *Writer {
	if eol == "" {
		eol = "\n"
	}
	return &Writer{w: bufio.NewWriter(w), cfg: cfg, eol: eol}
}

// Flush flushes buffered output to the underlying io.Writer.
func (ew *Writer) Flush() error {
	return ew.w.Flush()
}

// WriteLine emits one finished LogicalLine: blanks blank lines, then
// either the line's tokens placed per decisions (a formatted line) or,
// for a disabled line, its tokens reconstructed from their original
// positions (spec.md §4.3.6's "emitted at their original positions").
func (ew *Writer) WriteLine(line logicalline.Line, decisions reflow.DecisionRecord, blanks int) {
	for i := 0; i < blanks; i++ {
		// INDENT_BLANK_LINES: carry the upcoming line's indent onto the
		// blank line instead of leaving it empty.
		if ew.cfg.IndentBlankLines {
			ew.w.WriteString(ew.indent(line.Depth))
		}
		ew.w.WriteString(ew.eol)
		ew.Map.StartLine()
	}

	if line.Disabled {
		ew.writeDisabled(line)
		return
	}
	ew.writeFormatted(line, decisions)
}

func (ew *Writer) indent(depth int) string {
	if ew.cfg.UseTabs {
		return strings.Repeat("\t", depth)
	}
	return strings.Repeat(" ", depth*ew.cfg.IndentWidth)
}

func (ew *Writer) writeFormatted(line logicalline.Line, decisions reflow.DecisionRecord) {
	ew.Map.StartLine()
	ew.w.WriteString(ew.indent(line.Depth))

	for i, t := range line.Tokens {
		if t.Kind == token.Newline {
			continue
		}
		ew.Map.Record(t.OriginalLine)

		if i == 0 {
			ew.w.WriteString(t.Text)
			continue
		}

		broke := i < len(decisions.BreakBefore) && decisions.BreakBefore[i]
		if broke {
			ew.w.WriteString(ew.eol)
			ew.Map.StartLine()
			col := 0
			if i < len(decisions.Column) {
				col = decisions.Column[i]
			}
			ew.w.WriteString(columnSpaces(ew.cfg, col))
		} else {
			ew.w.WriteString(strings.Repeat(" ", t.SpacesRequiredBefore))
		}
		ew.w.WriteString(t.Text)
	}
	ew.w.WriteString(ew.eol)
}

// columnSpaces renders a break-landing column as whitespace: a single
// tab per indent level plus spaces for any alignment beyond that, when
// tabs are enabled (spec.md §4.6 "alignment beyond that uses spaces");
// plain spaces otherwise.
func columnSpaces(cfg style.Config, col int) string {
	if !cfg.UseTabs || cfg.IndentWidth <= 0 {
		return strings.Repeat(" ", col)
	}
	tabs := col / cfg.IndentWidth
	rest := col % cfg.IndentWidth
	return strings.Repeat("\t", tabs) + strings.Repeat(" ", rest)
}

// writeDisabled reconstructs a disabled line's original layout from each
// token's OriginalLine/OriginalColumn. The token model does not retain
// raw inter-token bytes (lexing is out of scope, spec.md §1), so this is
// an approximation of "preserving original whitespace verbatim": exact
// column position and line breaks are reproduced, but any unusual
// original spacing a column count cannot capture (e.g. mixed tabs mid-
// line) is not.
func (ew *Writer) writeDisabled(line logicalline.Line) {
	toks := line.Tokens
	if len(toks) == 0 {
		return
	}

	ew.Map.StartLine()
	currentLine := toks[0].OriginalLine
	ew.w.WriteString(strings.Repeat(" ", toks[0].OriginalColumn))
	prevEndColumn := toks[0].OriginalColumn + len(toks[0].Text)

	for i, t := range toks {
		if t.Kind == token.Newline {
			continue
		}
		if i > 0 && t.OriginalLine != currentLine {
			for currentLine < t.OriginalLine {
				ew.w.WriteString(ew.eol)
				ew.Map.StartLine()
				currentLine++
			}
			ew.w.WriteString(strings.Repeat(" ", t.OriginalColumn))
		} else if i > 0 {
			// Reconstruct the real original gap from column positions
			// rather than SpacesRequiredBefore, which is the annotator's
			// formatted-style spacing and may disagree with what the
			// disabled region actually had.
			gap := t.OriginalColumn - prevEndColumn
			if gap < 0 {
				gap = 0
			}
			ew.w.WriteString(strings.Repeat(" ", gap))
		}
		ew.Map.Record(t.OriginalLine)
		ew.w.WriteString(t.Text)
		prevEndColumn = t.OriginalColumn + len(t.Text)
	}
	ew.w.WriteString(ew.eol)
}
