package logicalline

import (
	"github.com/wsfmt/wsfmt/errs"
	"github.com/wsfmt/wsfmt/source"
	"github.com/wsfmt/wsfmt/token"
)

// Builder turns a flat token stream into LogicalLines (spec.md §4.1).
type Builder struct {
	File source.FileRef

	// StatementRecoveryKinds names token Kinds at which a new statement
	// could resume after a bracket-balance error. Build does not read it:
	// recovery always resumes after the next Newline at bracket depth zero.
	StatementRecoveryKinds []token.Kind
}

// result of building one Line: its tokens plus its open-bracket bookkeeping.
type building struct {
	tokens      []token.Token
	bracketDepth int
	// pendingOpen holds, for each currently-open bracket, the index (in
	// tokens) of its opening token, so ClosingBracket can set the weak
	// cross-reference described in spec.md §3/§9.
	pendingOpen []int
}

func newBuilding() *building {
	return &building{}
}

func (b *building) push(t token.Token) {
	idx := len(b.tokens)
	if t.Kind == token.OpeningBracket {
		t.OpeningBracketIndex = idx
		b.pendingOpen = append(b.pendingOpen, idx)
		b.bracketDepth++
	}
	b.tokens = append(b.tokens, t)
}

// closeBracket records the match between the most recently opened
// bracket and the ClosingBracket token at index idx, returning false if
// there was nothing open to match (an unbalanced ")" with no "(").
func (b *building) closeBracket(idx int) bool {
	if len(b.pendingOpen) == 0 {
		return false
	}
	openIdx := b.pendingOpen[len(b.pendingOpen)-1]
	b.pendingOpen = b.pendingOpen[:len(b.pendingOpen)-1]
	b.bracketDepth--

	open := b.tokens[openIdx]
	open.MatchingBracketIndex = idx
	open.HasMatchingBracket = true
	b.tokens[openIdx] = open

	close := b.tokens[idx]
	close.MatchingBracketIndex = openIdx
	close.HasMatchingBracket = true
	b.tokens[idx] = close
	return true
}

func (b *building) empty() bool {
	return b.FirstNonTrivialIndex() == -1
}

func (b *building) FirstNonTrivialIndex() int {
	for i, t := range b.tokens {
		switch t.Kind {
		case token.Newline, token.Indent, token.Dedent:
			continue
		default:
			return i
		}
	}
	return -1
}

// Build groups toks into LogicalLines. Every non-whitespace token in toks
// appears exactly once, in order, in the returned Lines (spec.md §4.1's
// contract); each unmatched closing bracket also contributes one
// errs.ParseError, and the tokens of that malformed statement end up in a
// Line of their own.
//
// Recovery mirrors the teacher's RecoverToNextStatementCopying
// (sqlparser/sqldocument/document.go): on an unexpected closing bracket,
// skip forward (still copying tokens into the errored Line, so nothing
// vanishes silently) until a Newline at bracket depth zero, then resume a
// fresh Line there — one bad statement is lost, the rest of the file
// still formats.
func (b Builder) Build(toks []token.Token) ([]Line, []error) {
	var lines []Line
	var errors []error
	var prev *Line

	depth := 0
	cur := newBuilding()
	standaloneCandidate := true // true at top of a fresh Line: next token, if alone, may be a standalone comment

	flush := func(standalone bool) {
		if cur.empty() {
			cur = newBuilding()
			return
		}
		line := Line{Tokens: cur.tokens, Depth: depth, StandaloneComment: standalone, Previous: prev}
		lines = append(lines, line)
		prev = &lines[len(lines)-1]
		cur = newBuilding()
		standaloneCandidate = true
	}

	for i := 0; i < len(toks); i++ {
		t := toks[i]

		switch t.Kind {
		case token.Indent:
			depth++
			continue
		case token.Dedent:
			depth--
			if depth < 0 {
				depth = 0
			}
			continue
		}

		if t.Kind == token.Comment && standaloneCandidate && cur.empty() {
			// Look ahead: a comment alone on its line (next real token is
			// a Newline) is a standalone comment Line of its own.
			if i+1 < len(toks) && toks[i+1].Kind == token.Newline {
				cur.push(t)
				cur.push(toks[i+1])
				i++
				flush(true)
				continue
			}
		}
		standaloneCandidate = false

		if t.Kind == token.ClosingBracket {
			cur.push(t)
			if !cur.closeBracket(len(cur.tokens) - 1) {
				errors = append(errors, errs.ParseError{
					Pos:     t.Position(b.File),
					Message: "unmatched closing bracket",
				})
				// Recover: copy tokens up through the next depth-zero
				// Newline into this malformed statement's Line.
				for i+1 < len(toks) {
					i++
					nt := toks[i]
					cur.push(nt)
					if nt.Kind == token.OpeningBracket {
						continue
					}
					if nt.Kind == token.Newline && cur.bracketDepth <= 0 {
						break
					}
				}
				flush(false)
			}
			continue
		}
		cur.push(t)

		if t.Kind == token.Newline && cur.bracketDepth <= 0 {
			flush(false)
		}
	}
	flush(false)

	return lines, errors
}
