package syntax

import (
	"fmt"
	"strings"
)

// Dump renders a node as name{children...} using the short names emp, lit,
// cat, alt, star, plus, que and cap. A Literal renders its character
// directly inside the braces. The format is a debugging aid for tests and
// tooling, not a stable contract.
func Dump(re Regexp) string {
	var b strings.Builder
	dump(&b, re)
	return b.String()
}

func dump(b *strings.Builder, re Regexp) {
	b.WriteString(nodeName(re))
	b.WriteByte('{')
	switch n := re.(type) {
	case Literal:
		b.WriteRune(n.Char)
	case Concat:
		for _, sub := range n.Subs {
			dump(b, sub)
		}
	case Alternate:
		for _, sub := range n.Subs {
			dump(b, sub)
		}
	case Star:
		dump(b, n.Sub)
	case Plus:
		dump(b, n.Sub)
	case Quest:
		dump(b, n.Sub)
	case Capture:
		dump(b, n.Sub)
	}
	b.WriteByte('}')
}

func nodeName(re Regexp) string {
	switch re.(type) {
	case Empty:
		return "emp"
	case Literal:
		return "lit"
	case Concat:
		return "cat"
	case Alternate:
		return "alt"
	case Star:
		return "star"
	case Plus:
		return "plus"
	case Quest:
		return "que"
	case Capture:
		return "cap"
	}
	panic(fmt.Sprintf("syntax: unknown node type %T", re))
}
