// Package errs holds the four error kinds spec.md §7 defines, split into
// their own package so that every other wsfmt package (style, reflow,
// logicalline, emit, ...) can return them without importing the root
// wsfmt package and creating an import cycle. The root package
// re-exports these as type aliases for callers of the public API.
package errs

import (
	"fmt"
	"strings"

	"github.com/wsfmt/wsfmt/source"
)

// ParseError reports that the input was not syntactically valid; fatal
// for the one file it names, but other files in a run proceed (spec.md
// §7). Mirrors the teacher's SQLCodeParseErrors aggregate shape in
// error.go.
type ParseError struct {
	Pos     source.Position
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Message)
}

// ConfigError reports an unknown knob, a malformed value, or a cyclic
// based_on_style chain. Fatal at startup.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string {
	return "config error: " + e.Message
}

// EncodingError reports that input bytes could not be decoded under the
// detected or specified encoding. Fatal for the one file it names.
type EncodingError struct {
	File source.FileRef
	Err  error
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("%s: encoding error: %s", e.File, e.Err)
}

func (e EncodingError) Unwrap() error {
	return e.Err
}

// InternalInvariant reports that the reflow search frontier emptied
// without reaching the end of a LogicalLine. This is always a bug in
// wsfmt, never a consequence of bad input, so it is reported loudly
// rather than silently emitting corrupted source (spec.md §7).
type InternalInvariant struct {
	Detail string
	// Recovered holds a panic value when wsfmt recovers one while running
	// with debug assertions on, mirroring the teacher's defensive
	// panic(fmterr) guard in SQLUserError.Error() for conditions that are
	// "should never happen" rather than user-facing.
	Recovered any
}

func (e InternalInvariant) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("wsfmt: internal invariant violated: %s (recovered: %v)", e.Detail, e.Recovered)
	}
	return "wsfmt: internal invariant violated: " + e.Detail
}

// RunErrors aggregates the per-file errors collected over one formatting
// run. It walks the slice the same way the teacher's
// SQLCodeParseErrors.Error() walks []sqlparser.Error.
type RunErrors struct {
	Errors []error
}

func (e RunErrors) Error() string {
	var msg strings.Builder
	msg.WriteString("wsfmt: errors were encountered:\n\n")
	for _, err := range e.Errors {
		msg.WriteString(err.Error())
		msg.WriteByte('\n')
	}
	return msg.String()
}

func (e RunErrors) HasErrors() bool {
	return len(e.Errors) > 0
}
