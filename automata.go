// Package automata constructs, transforms, and executes finite-state and
// pushdown machines, with a regex front end compiling patterns into
// nondeterministic finite-state machines via Thompson's construction.
//
// This file is the module's root facade: it re-exports package regex's
// compiled pattern type under the module's own name, in the naming
// register of coregx's root regex.go (Compile/MustCompile/Match/Find/
// FindAll), adapted to this spec's match verbs — there are no capture
// groups, since captures are out of scope.
package automata

import (
	"github.com/jmaarleveld/automata/match"
	"github.com/jmaarleveld/automata/regex"
)

// Regexp is a compiled pattern, re-exported from package regex so callers
// can depend on just the module root for the common case.
type Regexp = regex.Regexp

// Config controls pattern compilation, re-exported from package regex.
type Config = regex.Config

// Warning is an advisory notice raised for a degenerate operator position
// that was silently epsilon-filled rather than rejected, re-exported from
// package regex.
type Warning = regex.Warning

// Match is a single match result, re-exported from package match.
type Match = match.Match

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return regex.DefaultConfig()
}

// Compile parses and lowers pattern into a Regexp using DefaultConfig().
func Compile(pattern string) (*Regexp, error) {
	return regex.Compile(pattern)
}

// MustCompile is like Compile but panics if pattern fails to compile.
func MustCompile(pattern string) *Regexp {
	return regex.MustCompile(pattern)
}

// CompileWithConfig is like Compile but with an explicit Config.
func CompileWithConfig(pattern string, config Config) (*Regexp, error) {
	return regex.CompileWithConfig(pattern, config)
}
