// Package desc produces stable, serializable descriptions of a render
// tree traversal: one record per materialized node, renderable as YAML,
// JSON, or a colorized terminal listing.
package desc

import (
	"errors"
	"io"

	"github.com/webgrove/rendertree"
	"github.com/webgrove/rendertree/geo"
)

// Record is the description of one materialized node. Text fields are
// only present for text nodes; geometry is always present.
type Record struct {
	Type  string  `yaml:"type" json:"type"`
	Value string  `yaml:"value,omitempty" json:"value,omitempty"`
	Font  string  `yaml:"font,omitempty" json:"font,omitempty"`
	Size  float64 `yaml:"size,omitempty" json:"size,omitempty"`
	Bold  bool    `yaml:"bold,omitempty" json:"bold,omitempty"`

	Position geo.Position `yaml:"position" json:"position"`
	Margin   geo.Rect     `yaml:"margin" json:"margin"`
	Padding  geo.Rect     `yaml:"padding" json:"padding"`
}

// FromNode copies a node view into an owned Record.
func FromNode(n *rendertree.Node) Record {
	rec := Record{
		Type:     n.Type().String(),
		Position: n.Pos(),
		Margin:   n.Margin(),
		Padding:  n.Padding(),
	}
	if text, ok := n.Text(); ok {
		rec.Value = text.Value
		rec.Font = text.Font
		rec.Size = text.Size
		rec.Bold = text.Bold
	}
	return rec
}

// Of drains s and returns one record per node, in traversal order. The
// session is left exhausted but open; closing it remains the caller's
// responsibility.
func Of(s *rendertree.Session) ([]Record, error) {
	var recs []Record
	for {
		node, err := s.Next()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, FromNode(node))
	}
}
