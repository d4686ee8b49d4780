package syntax

import "errors"

// Parse reports exactly two kinds of failure; every other character the
// scanner encounters is a literal.
var (
	// ErrMissingParen reports unbalanced grouping: a ')' with no matching
	// '(', or a pattern that ends with a group still open.
	ErrMissingParen = errors.New("syntax: missing parenthesis")

	// ErrRepeatArgument reports a repetition operator with nothing to
	// repeat, as in "*" or "(+".
	ErrRepeatArgument = errors.New("syntax: missing argument to repetition operator")
)
