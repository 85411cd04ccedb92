// Package rendertree walks a laid-out render tree node by node through a
// single-cursor session with a deterministic resource lifecycle. The tree
// itself is built by the engine package from HTML markup under a fixed
// default stylesheet; this package owns the handles the engine hands out
// and materializes one node at a time into a session-owned slot.
package rendertree

import (
	"fmt"
	"io"

	"github.com/webgrove/rendertree/engine"
	"github.com/webgrove/rendertree/internal/debug"
)

// Version of the rendertree module.
const Version = "0.1.0"

// Option configures Open.
type Option func(*sessionOpts)

type sessionOpts struct {
	eng *engine.Engine
}

// WithEngine makes the session use eng instead of a fresh engine. All
// handles the session acquires are accounted for by eng.
func WithEngine(eng *engine.Engine) Option {
	return func(o *sessionOpts) { o.eng = eng }
}

// Session binds one render tree handle, one iterator over it, and the
// single materialized node slot. Sessions are single-threaded and
// non-reentrant: one cursor, one mutable slot, no internal locking.
type Session struct {
	eng  *engine.Engine
	tree *engine.Tree
	iter *engine.TreeIterator
	slot *engine.NodeSlot
	view Node

	done   bool
	closed bool
}

// Open builds a render tree from markup, an iterator over it, and the
// node slot, in that order. If any step fails, every resource acquired by
// an earlier step is released before the error is returned; the error is
// ErrTreeBuild, ErrIteratorBuild or ErrNodeAlloc, wrapping the engine's
// detail. A failed Open leaves nothing to clean up; the caller may retry
// with different input.
func Open(markup string, opts ...Option) (*Session, error) {
	o := &sessionOpts{}
	for _, opt := range opts {
		opt(o)
	}
	eng := o.eng
	if eng == nil {
		eng = engine.New()
	}

	tree, err := eng.BuildTree(markup)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTreeBuild, err)
	}

	iter, err := eng.NewIterator(tree)
	if err != nil {
		eng.FreeTree(tree)
		return nil, fmt.Errorf("%w: %w", ErrIteratorBuild, err)
	}

	slot, err := eng.NewNodeSlot()
	if err != nil {
		eng.FreeIterator(iter)
		eng.FreeTree(tree)
		return nil, fmt.Errorf("%w: %w", ErrNodeAlloc, err)
	}

	s := &Session{
		eng:  eng,
		tree: tree,
		iter: iter,
		slot: slot,
	}
	s.view = Node{slot: slot}
	return s, nil
}

// Next advances the cursor and materializes the next node into the
// session's slot, returning a read-only view of it. The slot's previous
// text payload is released before the iterator moves, so at most one
// payload is owned at any time.
//
// At the end of the tree Next returns io.EOF; further calls keep
// returning io.EOF without touching the iterator or the slot. After
// Close, Next returns ErrClosed.
func (s *Session) Next() (*Node, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.done {
		return nil, io.EOF
	}
	s.slot.ResetData()
	snap := s.iter.Advance()
	if snap == nil {
		s.done = true
		return nil, io.EOF
	}
	s.eng.CopyNodeData(snap, s.slot)
	if debug.Traverse() {
		debug.Logf("rendertree: materialized %s node at (%g, %g)\n",
			s.view.Type(), s.view.Pos().X, s.view.Pos().Y)
	}
	return &s.view, nil
}

// Type returns the discriminant of the last materialized node without
// advancing the cursor. Immediately after Open it reports RootNode, the
// slot's dummy value. Type must not be called after Close.
func (s *Session) Type() NodeType {
	return s.view.Type()
}

// Close releases the iterator, the tree and the node slot, in that order.
// The session is unusable afterwards; a second Close returns ErrClosed
// without touching the engine. Close may be called at any point after a
// successful Open, including before the sequence is exhausted.
func (s *Session) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.eng.FreeIterator(s.iter)
	s.eng.FreeTree(s.tree)
	s.eng.FreeNodeSlot(s.slot)
	return nil
}
