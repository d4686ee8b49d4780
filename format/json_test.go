package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/rex/syntax"
)

func TestJSONEncoder(t *testing.T) {
	re, err := syntax.Parse("(a|b)c")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(re); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var got jsonNode
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if got.Kind != "concat" {
		t.Fatalf("root kind = %q, want concat", got.Kind)
	}
	if len(got.Subs) != 2 {
		t.Fatalf("root has %d subs, want 2", len(got.Subs))
	}

	capture := got.Subs[0]
	if capture.Kind != "capture" || capture.Index != 1 {
		t.Errorf("first operand = %s/%d, want capture/1", capture.Kind, capture.Index)
	}
	if len(capture.Subs) != 1 || capture.Subs[0].Kind != "alternate" {
		t.Errorf("capture does not contain an alternate: %+v", capture.Subs)
	}

	literal := got.Subs[1]
	if literal.Kind != "literal" || literal.Char != "c" {
		t.Errorf("second operand = %s/%q, want literal/c", literal.Kind, literal.Char)
	}
}

func TestTextEncoder(t *testing.T) {
	re, err := syntax.Parse("a*")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(re); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if got := buf.String(); got != "star{lit{a}}\n" {
		t.Errorf("encoded %q, want %q", got, "star{lit{a}}\n")
	}
}

func TestJSONEncoderEmptyPattern(t *testing.T) {
	re, err := syntax.Parse("")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(re); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "{\n  \"kind\": \"empty\"\n}" {
		t.Errorf("unexpected encoding: %s", got)
	}
}
