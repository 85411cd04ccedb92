package engine

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/webgrove/rendertree/geo"
	"github.com/webgrove/rendertree/internal/debug"
)

// Kind discriminates render node variants.
type Kind int

const (
	// RootKind serves no purpose besides being the entry point.
	RootKind Kind = iota
	// TextKind represents text to render, created from heading and
	// paragraph elements.
	TextKind
)

func (k Kind) String() string {
	switch k {
	case RootKind:
		return "root"
	case TextKind:
		return "text"
	default:
		return "unknown"
	}
}

// renderNode is an engine-internal node of the laid-out tree. Callers only
// ever see it through a Snapshot.
type renderNode struct {
	kind     Kind
	text     string
	font     string
	fontSize float64
	bold     bool

	pos     geo.Position
	margin  geo.Rect
	padding geo.Rect

	children []*renderNode
}

// Tree is an opaque handle to a laid-out render tree. It is owned by
// whoever obtained it from BuildTree and must be released exactly once
// with FreeTree.
type Tree struct {
	eng      *Engine
	root     *renderNode
	released bool
}

// BuildTree parses markup, builds the render tree and computes the cursor
// layout under the default stylesheet. The returned handle is tracked
// until FreeTree is called.
func (e *Engine) BuildTree(markup string) (*Tree, error) {
	if e.opts.failTree {
		return nil, fmt.Errorf("%w: tree build", ErrFault)
	}
	if strings.TrimSpace(markup) == "" {
		return nil, ErrEmptyDocument
	}
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	b := &treeBuilder{root: &renderNode{kind: RootKind}}
	b.walk(doc, nil)
	if debug.Engine() {
		debug.Logf("engine: built tree with %d render nodes\n", len(b.root.children))
	}

	t := &Tree{eng: e, root: b.root}
	e.alloc(treeResource)
	return t, nil
}

// FreeTree releases a tree handle. Releasing a handle twice is recorded
// by the engine's accounting.
func (e *Engine) FreeTree(t *Tree) {
	e.release(treeResource, &t.released)
}

// treeBuilder walks the parsed document in preorder, turning styled
// elements into render nodes and advancing the layout cursor.
type treeBuilder struct {
	root   *renderNode
	cursor geo.Position
}

// walk visits n and its subtree. cur is the render node collecting text
// content, nil outside any styled element.
func (b *treeBuilder) walk(n *html.Node, cur *renderNode) {
	switch n.Type {
	case html.ElementNode:
		if rule, ok := defaultStyles[n.Data]; ok {
			node := b.newTextNode(rule)
			b.root.children = append(b.root.children, node)
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				b.walk(c, node)
			}
			return
		}
	case html.TextNode:
		if cur != nil {
			cur.text += n.Data
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c, cur)
	}
}

// newTextNode creates a text render node at the current cursor position
// and advances the cursor past the node's vertical extent.
func (b *treeBuilder) newTextNode(rule styleRule) *renderNode {
	b.cursor.OffsetY(rule.margin)
	node := &renderNode{
		kind:     TextKind,
		font:     DefaultFont,
		fontSize: rule.size,
		bold:     rule.bold,
		pos:      b.cursor,
		margin:   geo.RectOf(rule.margin, 0, 0, rule.margin),
	}
	b.cursor.OffsetY(rule.size + rule.margin)
	return node
}

// Snapshot is a read-only reference to the iterator's current node. It is
// only valid until the owning tree is released.
type Snapshot struct {
	n *renderNode
}

// Kind returns the node variant.
func (s *Snapshot) Kind() Kind { return s.n.kind }

// Text returns the node's text content; empty for non-text nodes.
func (s *Snapshot) Text() string { return s.n.text }

// Font returns the node's font family; empty for non-text nodes.
func (s *Snapshot) Font() string { return s.n.font }

// FontSize returns the node's font size; zero for non-text nodes.
func (s *Snapshot) FontSize() float64 { return s.n.fontSize }

// Bold reports whether the node renders bold; false for non-text nodes.
func (s *Snapshot) Bold() bool { return s.n.bold }

// Pos returns the node's position.
func (s *Snapshot) Pos() geo.Position { return s.n.pos }

// Margin returns the node's margin box.
func (s *Snapshot) Margin() geo.Rect { return s.n.margin }

// Padding returns the node's padding box.
func (s *Snapshot) Padding() geo.Rect { return s.n.padding }
