package format

import (
	"io"

	"github.com/dhamidi/rex/syntax"
)

// TextEncoder renders a syntax tree in the compact dump notation, one tree
// per line.
type TextEncoder struct {
	w  io.Writer
	re syntax.Regexp
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(re syntax.Regexp) error {
	e.re = re
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return []byte(syntax.Dump(e.re) + "\n"), nil
}
