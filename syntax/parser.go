package syntax

import "fmt"

// entry is one slot on the parser's working stack: a finished operand, or
// one of the two markers that delimit operands still being collected.
// Markers never appear in a returned AST.
type entry interface {
	stackEntry()
}

// operand wraps a completed subexpression.
type operand struct {
	re Regexp
}

// openGroup marks a '(' whose capture index has already been assigned.
type openGroup struct {
	index int
}

// alternationBar marks a '|' awaiting further branches. At most one bar is
// live per open group; see parser.swapVerticalBar.
type alternationBar struct{}

func (operand) stackEntry()        {}
func (openGroup) stackEntry()      {}
func (alternationBar) stackEntry() {}

func isMarker(e entry) bool {
	switch e.(type) {
	case openGroup, alternationBar:
		return true
	}
	return false
}

// parser holds the working state of one Parse call: the operand/marker
// stack and the capture group counter.
type parser struct {
	stack []entry
	ncap  int
}

func (p *parser) push(re Regexp) {
	p.stack = append(p.stack, operand{re: re})
}

func (p *parser) pop() entry {
	e := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return e
}

// collapse removes every operand above the topmost marker and returns them
// in their original order.
func (p *parser) collapse() []Regexp {
	i := len(p.stack)
	for i > 0 && !isMarker(p.stack[i-1]) {
		i--
	}
	subs := make([]Regexp, 0, len(p.stack)-i)
	for _, e := range p.stack[i:] {
		subs = append(subs, e.(operand).re)
	}
	p.stack = p.stack[:i]
	return subs
}

// concat folds the operands above the topmost marker into one: zero
// operands become Empty, a single operand is kept unwrapped, two or more
// become a Concat.
func (p *parser) concat() {
	subs := p.collapse()
	switch len(subs) {
	case 0:
		p.push(Empty{})
	case 1:
		p.push(subs[0])
	default:
		p.push(Concat{Subs: subs})
	}
}

// alternate folds the accumulated branches into one Alternate. The driver
// always runs concat before alternate, so at least one branch is present;
// zero branches means the driver is broken.
func (p *parser) alternate() {
	subs := p.collapse()
	switch len(subs) {
	case 0:
		panic("syntax: alternate with no branches on stack")
	case 1:
		p.push(subs[0])
	default:
		p.push(Alternate{Subs: subs})
	}
}

// swapVerticalBar floats a bar marker sitting directly below the top entry
// back to the top of the stack. It reports whether a bar was there to swap.
func (p *parser) swapVerticalBar() bool {
	if n := len(p.stack); n >= 2 {
		if _, ok := p.stack[n-2].(alternationBar); ok {
			p.stack[n-2], p.stack[n-1] = p.stack[n-1], p.stack[n-2]
			return true
		}
	}
	return false
}

// Parse converts a pattern into its AST in a single left-to-right scan
// over the pattern's Unicode scalar values.
//
// The six special characters are ( ) | * + ?; every other scalar value
// becomes one Literal. On failure the result is nil and the error is one
// of ErrMissingParen or ErrRepeatArgument. Parse is a pure function of its
// input; concurrent calls share no state.
func Parse(pattern string) (Regexp, error) {
	p := &parser{}
	for _, c := range pattern {
		switch c {
		case '(':
			p.ncap++
			p.stack = append(p.stack, openGroup{index: p.ncap})
		case '|':
			// Collapse the branch scanned so far, then make sure the
			// single bar marker sits on top again so the next branch
			// accumulates beneath it.
			p.concat()
			if !p.swapVerticalBar() {
				p.stack = append(p.stack, alternationBar{})
			}
		case ')':
			p.concat()
			if p.swapVerticalBar() {
				p.pop()
				p.alternate()
			}
			if len(p.stack) < 2 {
				return nil, ErrMissingParen
			}
			sub := p.pop().(operand).re
			group, ok := p.pop().(openGroup)
			if !ok {
				return nil, ErrMissingParen
			}
			p.push(Capture{Index: group.index, Sub: sub})
		case '*', '+', '?':
			if len(p.stack) == 0 {
				return nil, ErrRepeatArgument
			}
			top, ok := p.pop().(operand)
			if !ok {
				return nil, ErrRepeatArgument
			}
			var re Regexp
			switch c {
			case '*':
				re = Star{Sub: top.re}
			case '+':
				re = Plus{Sub: top.re}
			case '?':
				re = Quest{Sub: top.re}
			default:
				panic(fmt.Sprintf("syntax: unhandled repetition operator %q", c))
			}
			p.push(re)
		default:
			p.push(Literal{Char: c})
		}
	}
	// End of input closes like ')' does, except no open group may remain.
	p.concat()
	if p.swapVerticalBar() {
		p.pop()
		p.alternate()
	}
	if len(p.stack) != 1 {
		return nil, ErrMissingParen
	}
	return p.stack[0].(operand).re, nil
}
