package rendertree

import "errors"

var (
	// ErrTreeBuild is returned by Open when the engine cannot build a
	// render tree from the markup.
	ErrTreeBuild = errors.New("render tree build failed")

	// ErrIteratorBuild is returned by Open when the engine cannot build
	// an iterator over the tree.
	ErrIteratorBuild = errors.New("render tree iterator build failed")

	// ErrNodeAlloc is returned by Open when the node-data slot cannot be
	// allocated.
	ErrNodeAlloc = errors.New("render node alloc failed")

	// ErrClosed is returned by operations on a closed Session.
	ErrClosed = errors.New("session closed")
)
