package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/rex/syntax"
)

// JSONEncoder renders a syntax tree as indented JSON, one object per node.
type JSONEncoder struct {
	w  io.Writer
	re syntax.Regexp
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(re syntax.Regexp) error {
	e.re = re
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildNode(e.re), "", "  ")
}

type jsonNode struct {
	Kind  string     `json:"kind"`
	Char  string     `json:"char,omitempty"`
	Index int        `json:"index,omitempty"`
	Subs  []jsonNode `json:"subs,omitempty"`
}

func buildNode(re syntax.Regexp) jsonNode {
	switch n := re.(type) {
	case syntax.Empty:
		return jsonNode{Kind: "empty"}
	case syntax.Literal:
		return jsonNode{Kind: "literal", Char: string(n.Char)}
	case syntax.Concat:
		return jsonNode{Kind: "concat", Subs: buildNodes(n.Subs)}
	case syntax.Alternate:
		return jsonNode{Kind: "alternate", Subs: buildNodes(n.Subs)}
	case syntax.Star:
		return jsonNode{Kind: "star", Subs: buildNodes([]syntax.Regexp{n.Sub})}
	case syntax.Plus:
		return jsonNode{Kind: "plus", Subs: buildNodes([]syntax.Regexp{n.Sub})}
	case syntax.Quest:
		return jsonNode{Kind: "quest", Subs: buildNodes([]syntax.Regexp{n.Sub})}
	case syntax.Capture:
		return jsonNode{Kind: "capture", Index: n.Index, Subs: buildNodes([]syntax.Regexp{n.Sub})}
	}
	panic(fmt.Sprintf("format: unknown node type %T", re))
}

func buildNodes(subs []syntax.Regexp) []jsonNode {
	nodes := make([]jsonNode, 0, len(subs))
	for _, sub := range subs {
		nodes = append(nodes, buildNode(sub))
	}
	return nodes
}
