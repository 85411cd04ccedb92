package rendertree

import (
	"github.com/webgrove/rendertree/engine"
	"github.com/webgrove/rendertree/geo"
)

// NodeType discriminates render node variants. More variants are expected
// as the engine grows.
type NodeType int

const (
	// RootNode serves no purpose besides being the entry point of the
	// sequence.
	RootNode NodeType = iota
	// TextNode represents text to render, created from heading and
	// paragraph elements.
	TextNode
)

func (t NodeType) String() string {
	switch t {
	case RootNode:
		return "root"
	case TextNode:
		return "text"
	default:
		return "unknown"
	}
}

// TextData is the payload of a text node.
type TextData struct {
	Value string
	Font  string
	Size  float64
	Bold  bool
}

// Node is a read-only view over a session's materialized node slot. It is
// valid until the next call to Next or Close on the owning session;
// callers that need the data longer must copy it out.
type Node struct {
	slot *engine.NodeSlot
}

// Type returns the node variant.
func (n *Node) Type() NodeType {
	if n.slot.Kind() == engine.TextKind {
		return TextNode
	}
	return RootNode
}

// Text returns the text payload. The second result is false when the node
// is not a text node; callers must check it rather than rely on zero
// values.
func (n *Node) Text() (TextData, bool) {
	if n.slot.Kind() != engine.TextKind {
		return TextData{}, false
	}
	return TextData{
		Value: n.slot.Text(),
		Font:  n.slot.Font(),
		Size:  n.slot.FontSize(),
		Bold:  n.slot.Bold(),
	}, true
}

// Pos returns the node's position. Valid for every variant.
func (n *Node) Pos() geo.Position {
	return n.slot.Pos()
}

// Margin returns the node's margin box. Valid for every variant.
func (n *Node) Margin() geo.Rect {
	return n.slot.Margin()
}

// Padding returns the node's padding box. Valid for every variant.
func (n *Node) Padding() geo.Rect {
	return n.slot.Padding()
}
