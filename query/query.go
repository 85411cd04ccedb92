// Package query compiles boolean filter expressions over materialized
// render nodes, e.g. `bold && font_size > 20` or `type == "text" &&
// value contains "head"`.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/webgrove/rendertree"
)

// Query is a compiled node filter. A Query is immutable and may be
// matched against any number of nodes.
type Query struct {
	src  string
	prog *vm.Program
}

// Compile compiles src into a Query. Compile errors wrap ErrCompile.
func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src, expr.Env(envOf(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &Query{src: src, prog: prog}, nil
}

// Match evaluates the query against one node view.
func (q *Query) Match(n *rendertree.Node) (bool, error) {
	out, err := expr.Run(q.prog, envOf(n))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q returned %T", ErrEval, q.src, out)
	}
	return res, nil
}

// String returns the query source.
func (q *Query) String() string {
	return q.src
}

// envOf builds the expression environment for a node. A nil node yields
// the zero-valued environment used for compile-time type checking.
func envOf(n *rendertree.Node) map[string]any {
	env := map[string]any{
		"type":      "",
		"value":     "",
		"font":      "",
		"font_size": float64(0),
		"bold":      false,
		"x":         float64(0),
		"y":         float64(0),
	}
	if n == nil {
		return env
	}
	env["type"] = n.Type().String()
	pos := n.Pos()
	env["x"] = pos.X
	env["y"] = pos.Y
	if text, ok := n.Text(); ok {
		env["value"] = text.Value
		env["font"] = text.Font
		env["font_size"] = text.Size
		env["bold"] = text.Bold
	}
	return env
}
