// Package engine is the render engine behind a traversal session. It
// parses markup into a laid-out render tree, hands out tree and iterator
// handles, and accounts for every handle it allocates so that callers can
// verify a balanced acquire/release history.
//
// The engine applies a fixed default stylesheet; it does not compute any
// authored styles.
package engine

import "sync"

// Engine owns all engine-side state: configured failpoints and the handle
// tracker. There is no package-level state; every tree, iterator and node
// slot belongs to the Engine that created it.
type Engine struct {
	opts engineOpts

	mu      sync.Mutex
	live    map[resourceKind]int
	doubled int
}

type engineOpts struct {
	failTree      bool
	failIterator  bool
	failNodeAlloc bool
}

// Option configures an Engine.
type Option func(*engineOpts)

// FailTreeBuild makes every BuildTree call fail with ErrFault. Fault
// injection for exercising construction rollback.
func FailTreeBuild() Option {
	return func(o *engineOpts) { o.failTree = true }
}

// FailIteratorBuild makes every NewIterator call fail with ErrFault.
func FailIteratorBuild() Option {
	return func(o *engineOpts) { o.failIterator = true }
}

// FailNodeAlloc makes every NewNodeSlot call fail with ErrFault.
func FailNodeAlloc() Option {
	return func(o *engineOpts) { o.failNodeAlloc = true }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		live: map[resourceKind]int{},
	}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e
}

type resourceKind int

const (
	treeResource resourceKind = iota
	iteratorResource
	nodeSlotResource
)

// Stats is a snapshot of the engine's handle accounting.
type Stats struct {
	LiveTrees     int
	LiveIterators int
	LiveNodeSlots int
	DoubleFrees   int
}

// Stats returns the current handle accounting.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{
		LiveTrees:     e.live[treeResource],
		LiveIterators: e.live[iteratorResource],
		LiveNodeSlots: e.live[nodeSlotResource],
		DoubleFrees:   e.doubled,
	}
}

// Live returns the total number of outstanding handles.
func (e *Engine) Live() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, c := range e.live {
		n += c
	}
	return n
}

func (e *Engine) alloc(k resourceKind) {
	e.mu.Lock()
	e.live[k]++
	e.mu.Unlock()
}

// release flips the handle's released flag and updates the accounting.
// A second release of the same handle is recorded as a double free and
// otherwise ignored.
func (e *Engine) release(k resourceKind, released *bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if *released {
		e.doubled++
		return
	}
	*released = true
	e.live[k]--
}
