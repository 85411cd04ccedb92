package engine

import "fmt"

// TreeIterator is an opaque forward-only preorder cursor over one tree.
// It starts before the first node; it cannot be reset or rewound. A tree
// supports one iterator at a time.
type TreeIterator struct {
	eng      *Engine
	stack    []*renderNode
	released bool
}

// NewIterator creates an iterator over t. The returned handle is tracked
// until FreeIterator is called.
func (e *Engine) NewIterator(t *Tree) (*TreeIterator, error) {
	if e.opts.failIterator {
		return nil, fmt.Errorf("%w: iterator build", ErrFault)
	}
	it := &TreeIterator{
		eng:   e,
		stack: []*renderNode{t.root},
	}
	e.alloc(iteratorResource)
	return it, nil
}

// Advance moves the cursor to the next node in preorder and returns its
// snapshot, or nil once the tree is exhausted.
func (it *TreeIterator) Advance() *Snapshot {
	n := len(it.stack)
	if n == 0 {
		return nil
	}
	node := it.stack[n-1]
	it.stack = it.stack[:n-1]
	for i := len(node.children) - 1; i >= 0; i-- {
		it.stack = append(it.stack, node.children[i])
	}
	return &Snapshot{n: node}
}

// FreeIterator releases an iterator handle.
func (e *Engine) FreeIterator(it *TreeIterator) {
	e.release(iteratorResource, &it.released)
}
