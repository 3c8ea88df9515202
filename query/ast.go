/*
Package query implements the QueryAST tagged value and the query algebra
(QueryEngine) that reduces each of the eight surface query families to one
or more dictionary lookups.

An AST is built by one of the New* constructors, optionally rewritten by
Substitute (replacing every '%' placeholder with a concrete word — the
mechanism the cross-filter driver uses to pipe one query's output into
another), and finally executed by an Engine against a Dictionary.
*/
package query

import (
	"errors"
	"regexp"
	"strings"
)

// Kind identifies which of the eight query families (plus the
// length-filter supplement) an AST represents.
type Kind int

const (
	KindRegex Kind = iota
	KindAnagram
	KindBank
	KindTransposeDelete
	KindTransposeAdd
	KindDelete
	KindAdd
	KindChange
	KindLength
)

var (
	// ErrInvalidRegex is returned when a regex pattern (or its
	// substituted form) fails to compile.
	ErrInvalidRegex = errors.New("query: invalid regular expression")
	// ErrMissingLetters is returned when a query that requires a letters
	// argument was built without one.
	ErrMissingLetters = errors.New("query: missing letters argument")
	// ErrInvalidNumber is returned when an n argument failed integer
	// parsing (surfaced by front ends; the AST constructors themselves
	// take an already-parsed int).
	ErrInvalidNumber = errors.New("query: invalid number")
	// ErrInvalidCommand is returned when a front end could not map its
	// input tokens to any AST variant.
	ErrInvalidCommand = errors.New("query: invalid command")
)

// AST is a tagged query value: Kind determines which of Letters/N/Source
// are meaningful.
type AST struct {
	Kind    Kind
	Letters string
	N       int

	// Source is the raw (possibly %-bearing) regex source, valid only
	// when Kind == KindRegex. The compiled, whole-word-anchored pattern
	// is kept separately so Substitute can rewrite Source and recompile
	// without re-deriving it from the compiled form.
	Source string
	regex  *regexp.Regexp
}

// NewRegex builds a KindRegex AST. pattern is anchored to match whole
// words (wrapped as ^(?:pattern)$) before compilation.
func NewRegex(pattern string) (AST, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return AST{}, ErrInvalidRegex
	}
	return AST{Kind: KindRegex, Source: pattern, regex: re}, nil
}

// NewAnagram builds a KindAnagram AST over letters.
func NewAnagram(letters string) (AST, error) {
	if letters == "" {
		return AST{}, ErrMissingLetters
	}
	return AST{Kind: KindAnagram, Letters: letters}, nil
}

// NewBank builds a KindBank AST over letters.
func NewBank(letters string) (AST, error) {
	if letters == "" {
		return AST{}, ErrMissingLetters
	}
	return AST{Kind: KindBank, Letters: letters}, nil
}

// NewTransposeDelete builds a KindTransposeDelete AST.
func NewTransposeDelete(letters string, n int) (AST, error) {
	if letters == "" {
		return AST{}, ErrMissingLetters
	}
	return AST{Kind: KindTransposeDelete, Letters: letters, N: n}, nil
}

// NewTransposeAdd builds a KindTransposeAdd AST.
func NewTransposeAdd(letters string, n int) (AST, error) {
	if letters == "" {
		return AST{}, ErrMissingLetters
	}
	return AST{Kind: KindTransposeAdd, Letters: letters, N: n}, nil
}

// NewDelete builds a KindDelete AST.
func NewDelete(letters string, n int) (AST, error) {
	if letters == "" {
		return AST{}, ErrMissingLetters
	}
	return AST{Kind: KindDelete, Letters: letters, N: n}, nil
}

// NewAdd builds a KindAdd AST.
func NewAdd(letters string, n int) (AST, error) {
	if letters == "" {
		return AST{}, ErrMissingLetters
	}
	return AST{Kind: KindAdd, Letters: letters, N: n}, nil
}

// NewChange builds a KindChange AST.
func NewChange(letters string, n int) (AST, error) {
	if letters == "" {
		return AST{}, ErrMissingLetters
	}
	return AST{Kind: KindChange, Letters: letters, N: n}, nil
}

// NewLength builds a KindLength AST (the length-filter supplement to the
// eight specified query families).
func NewLength(n int) (AST, error) {
	return AST{Kind: KindLength, N: n}, nil
}

// Substitute returns a new AST in which every '%' in the textual parameter
// has been replaced by replacement. For KindRegex, the substitution is
// applied to Source and the result is recompiled — a malformed substituted
// pattern surfaces as ErrInvalidRegex. Every other variant substitutes
// into Letters; N is preserved unchanged.
func Substitute(ast AST, replacement string) (AST, error) {
	if ast.Kind == KindRegex {
		return NewRegex(strings.ReplaceAll(ast.Source, "%", replacement))
	}
	substituted := ast
	substituted.Letters = strings.ReplaceAll(ast.Letters, "%", replacement)
	return substituted, nil
}
