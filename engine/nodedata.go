package engine

import (
	"fmt"

	"github.com/webgrove/rendertree/geo"
)

// NodeSlot is the single owned node-data slot of a traversal session. It
// is allocated once, mutated in place by CopyNodeData on every advance,
// and released exactly once with FreeNodeSlot.
//
// The slot owns its text payload: ResetData drops the previous payload
// before CopyNodeData installs the next one, so at most one payload is
// alive in the slot at any time.
type NodeSlot struct {
	eng      *Engine
	released bool

	kind     Kind
	text     string
	font     string
	fontSize float64
	bold     bool

	pos     geo.Position
	margin  geo.Rect
	padding geo.Rect
}

// NewNodeSlot allocates a tracked node slot holding a dummy root node.
func (e *Engine) NewNodeSlot() (*NodeSlot, error) {
	if e.opts.failNodeAlloc {
		return nil, fmt.Errorf("%w: node slot alloc", ErrFault)
	}
	slot := &NodeSlot{eng: e, kind: RootKind}
	e.alloc(nodeSlotResource)
	return slot, nil
}

// ResetData releases the slot's owned text payload. The discriminant and
// geometry keep their values until the next CopyNodeData. No-op for a
// root slot.
func (slot *NodeSlot) ResetData() {
	if slot.kind != TextKind {
		return
	}
	slot.text = ""
	slot.font = ""
}

// CopyNodeData copies snap's node data into slot, including fresh copies
// of the text payload for text nodes.
func (e *Engine) CopyNodeData(snap *Snapshot, slot *NodeSlot) {
	slot.kind = snap.Kind()
	slot.text = snap.Text()
	slot.font = snap.Font()
	slot.fontSize = snap.FontSize()
	slot.bold = snap.Bold()
	slot.pos = snap.Pos()
	slot.margin = snap.Margin()
	slot.padding = snap.Padding()
}

// FreeNodeSlot releases a node slot.
func (e *Engine) FreeNodeSlot(slot *NodeSlot) {
	e.release(nodeSlotResource, &slot.released)
}

// Kind returns the slot's current variant.
func (slot *NodeSlot) Kind() Kind { return slot.kind }

// Text returns the slot's text content.
func (slot *NodeSlot) Text() string { return slot.text }

// Font returns the slot's font family.
func (slot *NodeSlot) Font() string { return slot.font }

// FontSize returns the slot's font size.
func (slot *NodeSlot) FontSize() float64 { return slot.fontSize }

// Bold reports whether the slot's node renders bold.
func (slot *NodeSlot) Bold() bool { return slot.bold }

// Pos returns the slot's position.
func (slot *NodeSlot) Pos() geo.Position { return slot.pos }

// Margin returns the slot's margin box.
func (slot *NodeSlot) Margin() geo.Rect { return slot.margin }

// Padding returns the slot's padding box.
func (slot *NodeSlot) Padding() geo.Rect { return slot.padding }
