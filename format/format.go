// Package format renders parsed patterns in machine readable forms.
package format

import (
	"encoding"

	"github.com/dhamidi/rex/syntax"
)

// Encoder writes a parsed pattern to an output stream.
type Encoder interface {
	encoding.TextMarshaler
	Encode(re syntax.Regexp) error
}
