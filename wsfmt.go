// Package wsfmt is the root of the formatter core: it wires the pipeline
// described in spec.md §2 (logical-line building, annotation, reflow,
// joining, blank-line planning, emission) into the single entry point
// hosts call, and re-exports the error kinds defined in package errs.
package wsfmt

import (
	"bytes"

	"github.com/wsfmt/wsfmt/annotate"
	"github.com/wsfmt/wsfmt/blankline"
	"github.com/wsfmt/wsfmt/disable"
	"github.com/wsfmt/wsfmt/emit"
	"github.com/wsfmt/wsfmt/errs"
	"github.com/wsfmt/wsfmt/joiner"
	"github.com/wsfmt/wsfmt/logicalline"
	"github.com/wsfmt/wsfmt/reflow"
	"github.com/wsfmt/wsfmt/source"
	"github.com/wsfmt/wsfmt/style"
	"github.com/wsfmt/wsfmt/token"
)

type (
	ParseError        = errs.ParseError
	ConfigError       = errs.ConfigError
	EncodingError     = errs.EncodingError
	InternalInvariant = errs.InternalInvariant
	RunErrors         = errs.RunErrors
)

// Input is one file's worth of pre-lexed tokens, the external boundary
// spec.md §1 draws ("lexing and parsing the target language are out of
// scope; the core consumes an already-tokenized, already-parsed
// representation").
type Input struct {
	File   source.FileRef
	Tokens []token.Token
	Tree   source.Tree // optional; may be nil
	EOL    string      // "\n" or "\r\n"; defaults to "\n"

	// Range restricts formatting to logical lines that touch original
	// source lines [Range.Start, Range.End] (spec.md §8 Invariant 6); a
	// nil Range formats the whole file. Lines outside the range are
	// emitted at their original positions, the same way a disabled
	// region is (see emit.Writer.writeDisabled): only whitespace inside
	// the range may change.
	Range *LineRange

	// Debug, when true, recovers a panic raised while reflowing a line
	// and reports it as an InternalInvariant carrying the recovered
	// value, instead of letting the panic cross Format's boundary.
	Debug bool
}

// LineRange is an inclusive [Start, End] span of 1-based original source
// lines.
type LineRange struct {
	Start int
	End   int
}

func (r LineRange) touches(toks []token.Token) bool {
	for _, t := range toks {
		if t.OriginalLine >= r.Start && t.OriginalLine <= r.End {
			return true
		}
	}
	return false
}

// Format runs the full pipeline over in and returns the formatted bytes.
// A non-nil error is always an errs.RunErrors wrapping one or more
// ParseError/ConfigError/InternalInvariant values (spec.md §7); a
// ParseError is fatal for the file, so Format returns before emitting
// anything rather than emit a partially-recovered document.
func Format(in Input, cfg style.Config) ([]byte, error) {
	builder := logicalline.Builder{File: in.File}
	lines, buildErrs := builder.Build(in.Tokens)
	if len(buildErrs) > 0 {
		return nil, errs.RunErrors{Errors: buildErrs}
	}

	tracker, err := disable.New(cfg)
	if err != nil {
		return nil, errs.RunErrors{Errors: []error{err}}
	}
	tracker.Mark(lines)

	annotate.Annotate(lines, in.Tree, cfg)

	joined := joiner.Join(lines, cfg)
	blanks := blankline.Plan(joined, cfg)

	var buf bytes.Buffer
	w := emit.New(&buf, cfg, in.EOL)

	var runErrs []error
	for i, line := range joined {
		out := line
		if in.Range != nil && !in.Range.touches(line.Tokens) {
			out.Disabled = true
		}

		var decisions reflow.DecisionRecord
		if !out.Disabled {
			baseIndent := line.Depth * cfg.IndentWidth
			decisions, err = reflowLine(line.Tokens, cfg, baseIndent, in.Debug)
			if err != nil {
				runErrs = append(runErrs, err)
				continue
			}
		}
		w.WriteLine(out, decisions, blanks[i])
	}

	if len(runErrs) > 0 {
		return nil, errs.RunErrors{Errors: runErrs}
	}

	if err := w.Flush(); err != nil {
		return nil, errs.RunErrors{Errors: []error{err}}
	}
	return buf.Bytes(), nil
}

// reflowLine runs the reflow engine over one line's tokens. With debug
// set, a panic inside the search is recovered and reported as an
// InternalInvariant carrying the recovered value, mirroring the
// teacher's defensive panic(fmterr) guard in SQLUserError.Error() for a
// should-never-happen condition, but surfaced through the normal
// per-file error path rather than crashing the run.
func reflowLine(toks []token.Token, cfg style.Config, baseIndent int, debug bool) (decisions reflow.DecisionRecord, err error) {
	if debug {
		defer func() {
			if r := recover(); r != nil {
				err = errs.InternalInvariant{Detail: "reflow: recovered panic while reflowing line", Recovered: r}
			}
		}()
	}
	return reflow.Reflow(toks, cfg, baseIndent, baseIndent)
}
