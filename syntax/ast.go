// Package syntax parses pattern strings into abstract syntax trees.
//
// The grammar covers literal characters, concatenation, alternation,
// grouping with capture indices, and the repetition operators *, + and ?.
// Parsing is a single left-to-right scan driven by an operand/marker stack
// rather than recursive descent.
package syntax

// Regexp is the interface implemented by all pattern AST nodes.
type Regexp interface {
	regexpNode()
}

// Empty matches the empty string. It is produced when a concatenation or
// alternation collapses zero operands.
type Empty struct{}

func (Empty) regexpNode() {}

// Literal matches a single character.
type Literal struct {
	Char rune
}

func (Literal) regexpNode() {}

// Concat matches its subexpressions in sequence. It always holds at least
// two of them; shorter sequences collapse to Empty or the operand itself.
type Concat struct {
	Subs []Regexp
}

func (Concat) regexpNode() {}

// Alternate matches any one of its subexpressions. Like Concat it always
// holds at least two of them, in left-to-right source order.
type Alternate struct {
	Subs []Regexp
}

func (Alternate) regexpNode() {}

// Star matches zero or more repetitions of its operand.
type Star struct {
	Sub Regexp
}

func (Star) regexpNode() {}

// Plus matches one or more repetitions of its operand.
type Plus struct {
	Sub Regexp
}

func (Plus) regexpNode() {}

// Quest matches zero or one occurrence of its operand.
type Quest struct {
	Sub Regexp
}

func (Quest) regexpNode() {}

// Capture matches its operand and records the consumed input under Index.
// Indices are 1-based and assigned in order of the opening parenthesis,
// independent of nesting depth.
type Capture struct {
	Index int
	Sub   Regexp
}

func (Capture) regexpNode() {}
