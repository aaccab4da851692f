// Package joiner implements the line joiner (spec.md §4.4): it merges a
// compound-statement header ("if cond:") with its single-statement body
// onto one physical line when JOIN_MULTIPLE_LINES is set and the joined
// form still fits the column limit. It never crosses a LogicalLine
// boundary that would require inserting a semicolon, and it never joins
// a body that is itself a nested block (more than one statement, or a
// further compound header).
package joiner

import (
	"github.com/wsfmt/wsfmt/logicalline"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

// Join returns lines with eligible header/body pairs merged. The input
// slice is not modified in place.
func Join(lines []logicalline.Line, cfg style.Config) []logicalline.Line {
	if !cfg.JoinMultipleLines {
		return lines
	}

	out := make([]logicalline.Line, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if i+1 < len(lines) && canJoin(lines, i, cfg) {
			out = append(out, join(lines[i], lines[i+1], cfg))
			i++
			continue
		}
		out = append(out, lines[i])
	}
	return out
}

func canJoin(lines []logicalline.Line, i int, cfg style.Config) bool {
	header, body := lines[i], lines[i+1]

	if header.Disabled || body.Disabled || header.StandaloneComment || body.StandaloneComment {
		return false
	}
	if body.Depth != header.Depth+1 {
		return false
	}
	// The body must be the block's only statement: whatever follows must
	// dedent back out of it, not continue the same block.
	if i+2 < len(lines) && lines[i+2].Depth > header.Depth {
		return false
	}
	if !endsWithColon(header.Tokens) {
		return false
	}
	if endsWithColon(body.Tokens) {
		return false
	}

	return joinedWidth(header, body, cfg) <= cfg.ColumnLimit
}

func join(header, body logicalline.Line, cfg style.Config) logicalline.Line {
	headerToks := stripTrailingNewline(header.Tokens)
	bodyToks := stripTrailingNewline(body.Tokens)

	merged := make([]token.Token, 0, len(headerToks)+len(bodyToks))
	merged = append(merged, headerToks...)
	if len(bodyToks) > 0 {
		first := bodyToks[0]
		first.SpacesRequiredBefore = 1
		first.CanBreakBefore = token.No
		first.MustBreakBefore = token.No
		merged = append(merged, first)
		merged = append(merged, bodyToks[1:]...)
	}

	return logicalline.Line{
		Tokens:   merged,
		Depth:    header.Depth,
		Previous: header.Previous,
	}
}

func endsWithColon(toks []token.Token) bool {
	t, ok := lastNonNewline(toks)
	return ok && t.Kind == token.Colon
}

func lastNonNewline(toks []token.Token) (token.Token, bool) {
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].Kind != token.Newline {
			return toks[i], true
		}
	}
	return token.Token{}, false
}

func stripTrailingNewline(toks []token.Token) []token.Token {
	if len(toks) > 0 && toks[len(toks)-1].Kind == token.Newline {
		return toks[:len(toks)-1]
	}
	return toks
}

// joinedWidth estimates the physical width of header and body laid out on
// one line together, including the header's own indent.
func joinedWidth(header, body logicalline.Line, cfg style.Config) int {
	width := header.Depth * cfg.IndentWidth
	headerToks := stripTrailingNewline(header.Tokens)
	for i, t := range headerToks {
		if i > 0 {
			width += t.SpacesRequiredBefore
		}
		width += len(t.Text)
	}

	bodyToks := stripTrailingNewline(body.Tokens)
	for i, t := range bodyToks {
		if i == 0 {
			width += 1 // the join space
		} else {
			width += t.SpacesRequiredBefore
		}
		width += len(t.Text)
	}

	return width
}
