package syntax

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, pattern string) Regexp {
	t.Helper()
	re, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	return re
}

func TestParseShapes(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"", "emp{}"},
		{"a", "lit{a}"},
		{"ab", "cat{lit{a}lit{b}}"},
		{"a|b", "alt{lit{a}lit{b}}"},
		{"a*", "star{lit{a}}"},
		{"a+", "plus{lit{a}}"},
		{"a?", "que{lit{a}}"},
		{"(a)", "cap{lit{a}}"},
		{"abc", "cat{lit{a}lit{b}lit{c}}"},
		{"a|b|c", "alt{lit{a}lit{b}lit{c}}"},
		{"a|b|c|d", "alt{lit{a}lit{b}lit{c}lit{d}}"},
		{"(a|b)c", "cat{cap{alt{lit{a}lit{b}}}lit{c}}"},
		{"a(b|c)*d", "cat{lit{a}star{cap{alt{lit{b}lit{c}}}}lit{d}}"},
		{"a**", "star{star{lit{a}}}"},
		{"a*+?", "que{plus{star{lit{a}}}}"},
		{"(ab)+", "plus{cap{cat{lit{a}lit{b}}}}"},
		{"()", "cap{emp{}}"},
		{"(())", "cap{cap{emp{}}}"},
		{"ab|cd", "alt{cat{lit{a}lit{b}}cat{lit{c}lit{d}}}"},
	}
	for _, c := range cases {
		re := mustParse(t, c.pattern)
		if got := Dump(re); got != c.want {
			t.Errorf("Parse(%q) = %s, want %s", c.pattern, got, c.want)
		}
	}
}

func TestParseCaptureIndexes(t *testing.T) {
	re := mustParse(t, "((a)(b))")

	outer, ok := re.(Capture)
	if !ok {
		t.Fatalf("expected Capture, got %T", re)
	}
	if outer.Index != 1 {
		t.Errorf("outer index = %d, want 1", outer.Index)
	}

	cat, ok := outer.Sub.(Concat)
	if !ok {
		t.Fatalf("expected Concat inside outer capture, got %T", outer.Sub)
	}
	if len(cat.Subs) != 2 {
		t.Fatalf("expected 2 concat operands, got %d", len(cat.Subs))
	}

	for i, want := range []int{2, 3} {
		inner, ok := cat.Subs[i].(Capture)
		if !ok {
			t.Fatalf("expected Capture at operand %d, got %T", i, cat.Subs[i])
		}
		if inner.Index != want {
			t.Errorf("inner capture %d index = %d, want %d", i, inner.Index, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		pattern string
		want    error
	}{
		{"(", ErrMissingParen},
		{")", ErrMissingParen},
		{"(a", ErrMissingParen},
		{"a)", ErrMissingParen},
		{"((a)", ErrMissingParen},
		{"(a))", ErrMissingParen},
		{"(|", ErrMissingParen},
		{"*", ErrRepeatArgument},
		{"+", ErrRepeatArgument},
		{"?", ErrRepeatArgument},
		{"|*", ErrRepeatArgument},
		{"(*", ErrRepeatArgument},
		{"a|(*)", ErrRepeatArgument},
	}
	for _, c := range cases {
		re, err := Parse(c.pattern)
		if err == nil {
			t.Errorf("Parse(%q) succeeded with %s, want %v", c.pattern, Dump(re), c.want)
			continue
		}
		if !errors.Is(err, c.want) {
			t.Errorf("Parse(%q) error = %v, want %v", c.pattern, err, c.want)
		}
		if re != nil {
			t.Errorf("Parse(%q) returned a partial AST alongside the error", c.pattern)
		}
	}
}

// A chain of bars stays flat: one bar marker is live at a time, so n bars
// produce a single Alternate with n+1 branches.
func TestParseDegenerateAlternation(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"a|", "alt{lit{a}emp{}}"},
		{"|a", "alt{emp{}lit{a}}"},
		{"|", "alt{emp{}emp{}}"},
		{"||", "alt{emp{}emp{}emp{}}"},
		{"(|)", "cap{alt{emp{}emp{}}}"},
		{"(||)", "cap{alt{emp{}emp{}emp{}}}"},
		{"a||b", "alt{lit{a}emp{}lit{b}}"},
	}
	for _, c := range cases {
		re := mustParse(t, c.pattern)
		if got := Dump(re); got != c.want {
			t.Errorf("Parse(%q) = %s, want %s", c.pattern, got, c.want)
		}
	}
}

func TestParseUnicodeLiterals(t *testing.T) {
	re := mustParse(t, "日本|語")

	alt, ok := re.(Alternate)
	if !ok {
		t.Fatalf("expected Alternate, got %T", re)
	}

	cat, ok := alt.Subs[0].(Concat)
	if !ok {
		t.Fatalf("expected Concat branch, got %T", alt.Subs[0])
	}
	if len(cat.Subs) != 2 {
		t.Fatalf("expected one literal per scalar value, got %d", len(cat.Subs))
	}
	if lit := cat.Subs[0].(Literal); lit.Char != '日' {
		t.Errorf("first literal = %q, want %q", lit.Char, '日')
	}
	if lit := alt.Subs[1].(Literal); lit.Char != '語' {
		t.Errorf("second branch = %q, want %q", lit.Char, '語')
	}
}

func TestParseIsDeterministic(t *testing.T) {
	const pattern = "a(b|c(d|e)*)+f|(g)?"
	first := Dump(mustParse(t, pattern))
	for i := 0; i < 10; i++ {
		if got := Dump(mustParse(t, pattern)); got != first {
			t.Fatalf("parse %d of %q = %s, want %s", i, pattern, got, first)
		}
	}
}

// The collapse rule guarantees that no Concat or Alternate in a returned
// tree ever holds fewer than two operands.
func TestParseNoSingletonSequences(t *testing.T) {
	patterns := []string{
		"", "a", "ab", "a|b", "(a)", "((a)(b))", "(a|b)c", "a**",
		"(|)", "||", "a(b|c(d|e)*)+f", "(((x)))",
	}
	for _, pattern := range patterns {
		checkArity(t, pattern, mustParse(t, pattern))
	}
}

func checkArity(t *testing.T, pattern string, re Regexp) {
	t.Helper()
	switch n := re.(type) {
	case Concat:
		if len(n.Subs) < 2 {
			t.Errorf("Parse(%q): Concat with %d operands", pattern, len(n.Subs))
		}
		for _, sub := range n.Subs {
			checkArity(t, pattern, sub)
		}
	case Alternate:
		if len(n.Subs) < 2 {
			t.Errorf("Parse(%q): Alternate with %d operands", pattern, len(n.Subs))
		}
		for _, sub := range n.Subs {
			checkArity(t, pattern, sub)
		}
	case Star:
		checkArity(t, pattern, n.Sub)
	case Plus:
		checkArity(t, pattern, n.Sub)
	case Quest:
		checkArity(t, pattern, n.Sub)
	case Capture:
		checkArity(t, pattern, n.Sub)
	}
}
