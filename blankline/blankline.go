// Package blankline implements the blank-line planner (spec.md §4.5): for
// every LogicalLine it decides how many blank physical lines precede it.
package blankline

import (
	"github.com/wsfmt/wsfmt/logicalline"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

// Plan returns, for each entry in lines, the number of blank lines the
// emitter should place before it. lines[0]'s entry is 0, except that it is
// 1 when BlankLineBeforeModuleDocstring is set and the first line is a
// module docstring.
func Plan(lines []logicalline.Line, cfg style.Config) []int {
	out := make([]int, len(lines))
	if len(lines) == 0 {
		return out
	}

	firstNestedSeenAtDepth := map[int]bool{}
	prevDepth := lines[0].Depth
	afterImports := false
	// lastTopLevelDefOrClass tracks whether the most recently seen
	// depth-0 statement was itself a def/class, so the "two blank lines
	// after" side of the rule fires once its whole body (at any nesting
	// depth) has dedented back out, not only when the def line is
	// literally the previous Line.
	lastTopLevelDefOrClass := false

	for i := range lines {
		line := &lines[i]

		if i == 0 {
			if cfg.BlankLineBeforeModuleDocstring && isDocstring(line) {
				out[i] = 1
			}
			prevDepth = line.Depth
			afterImports = isImport(line)
			if line.Depth == 0 {
				lastTopLevelDefOrClass = isDefOrClass(line)
			}
			continue
		}

		prev := &lines[i-1]

		if line.Disabled || prev.Disabled {
			out[i] = originalBlankLines(prev, line)
			prevDepth = line.Depth
			continue
		}

		if line.Depth > prevDepth {
			firstNestedSeenAtDepth[line.Depth] = false
		}

		n := 0

		if line.Depth == 0 && (isDefOrClass(line) || lastTopLevelDefOrClass) {
			n = max(n, cfg.BlankLinesAroundTopLevelDefinition)
		}

		if line.Depth > 0 && isDefOrClass(line) && cfg.BlankLineBeforeNestedClassOrDef && !firstNestedSeenAtDepth[line.Depth] {
			n = max(n, 1)
			firstNestedSeenAtDepth[line.Depth] = true
		}

		if afterImports && line.Depth == 0 && !isImport(line) {
			n = max(n, cfg.BlankLinesBetweenTopLevelImportsAndVariables)
			afterImports = false
		}
		if isImport(line) {
			afterImports = true
		}

		if cfg.BlankLineBeforeClassDocstring && prevStartsClassBody(prev, line) && isDocstring(line) {
			n = max(n, 1)
		}

		out[i] = n
		prevDepth = line.Depth
		if line.Depth == 0 {
			lastTopLevelDefOrClass = isDefOrClass(line)
		}
	}

	return out
}

func originalBlankLines(prev, line *logicalline.Line) int {
	prevLast, ok := lastToken(prev.Tokens)
	if !ok {
		return 0
	}
	first, ok := firstToken(line.Tokens)
	if !ok {
		return 0
	}
	gap := first.OriginalLine - prevLast.OriginalLine - 1
	if gap < 0 {
		return 0
	}
	return gap
}

func lastToken(toks []token.Token) (token.Token, bool) {
	if len(toks) == 0 {
		return token.Token{}, false
	}
	return toks[len(toks)-1], true
}

func firstToken(toks []token.Token) (token.Token, bool) {
	if len(toks) == 0 {
		return token.Token{}, false
	}
	return toks[0], true
}

func isDefOrClass(line *logicalline.Line) bool {
	t, ok := firstToken(line.Tokens)
	return ok && t.Kind == token.Keyword && (t.Text == "def" || t.Text == "class")
}

func isImport(line *logicalline.Line) bool {
	t, ok := firstToken(line.Tokens)
	return ok && t.Kind == token.Keyword && (t.Text == "import" || t.Text == "from")
}

// isDocstring reports whether line is a bare string expression statement:
// one String token (plus its trailing Newline), the shape a module or
// class docstring takes.
func isDocstring(line *logicalline.Line) bool {
	nonTrivial := 0
	onlyString := true
	for _, t := range line.Tokens {
		switch t.Kind {
		case token.Newline, token.Indent, token.Dedent:
			continue
		}
		nonTrivial++
		if t.Kind != token.String && t.Kind != token.FStringPiece {
			onlyString = false
		}
	}
	return nonTrivial == 1 && onlyString
}

// prevStartsClassBody reports whether prev is a "class ...:" header and
// line is the first statement inside it.
func prevStartsClassBody(prev, line *logicalline.Line) bool {
	t, ok := firstToken(prev.Tokens)
	return ok && t.Kind == token.Keyword && t.Text == "class" && line.Depth == prev.Depth+1
}
