package syntax

import "testing"

func TestDumpRendersEveryVariant(t *testing.T) {
	re := Concat{Subs: []Regexp{
		Empty{},
		Literal{Char: 'x'},
		Alternate{Subs: []Regexp{Literal{Char: 'a'}, Literal{Char: 'b'}}},
		Star{Sub: Literal{Char: 'c'}},
		Plus{Sub: Literal{Char: 'd'}},
		Quest{Sub: Literal{Char: 'e'}},
		Capture{Index: 1, Sub: Literal{Char: 'f'}},
	}}

	want := "cat{emp{}lit{x}alt{lit{a}lit{b}}star{lit{c}}plus{lit{d}}que{lit{e}}cap{lit{f}}}"
	if got := Dump(re); got != want {
		t.Errorf("Dump = %s, want %s", got, want)
	}
}

func TestDumpMultibyteLiteral(t *testing.T) {
	if got := Dump(Literal{Char: 'ß'}); got != "lit{ß}" {
		t.Errorf("Dump = %s, want lit{ß}", got)
	}
}
