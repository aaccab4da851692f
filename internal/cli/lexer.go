// Package cli wires wsfmt into a cobra command tree: format/diff/check
// sub-commands over a directory tree, grounded on the teacher's
// cli/cmd package (root.go's persistent-flag setup, build.go/hash.go's
// "load inputs, process, print/write results" RunE shape).
package cli

import "github.com/wsfmt/wsfmt"

// Lexer turns one file's raw bytes into wsfmt's external token-stream
// boundary. Tokenizing the target language is explicitly out of scope
// for the formatter core (spec.md §1): a host process supplies one, the
// same way the teacher's DB interface (dbintf.go) names the shape of a
// collaborator it never implements itself.
type Lexer interface {
	Lex(path string, src []byte) (wsfmt.Input, error)
}

var registeredLexer Lexer

// SetLexer registers the Lexer the format/diff/check commands call.
// Call it before Execute; left unset, those commands fail fast with a
// ConfigError naming the gap instead of silently doing nothing.
func SetLexer(l Lexer) {
	registeredLexer = l
}
