// Package geo holds the small geometric value types attached to render
// tree nodes: a cursor position and a rectangle of box offsets.
package geo

// Position is the location of the render cursor used to determine where
// to draw an object.
type Position struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// MoveTo moves the position to (x, y).
func (p *Position) MoveTo(x, y float64) {
	p.X = x
	p.Y = y
}

// MoveRelativeTo moves the position relative to another position:
// x = rel.X + dx, y = rel.Y + dy.
func (p *Position) MoveRelativeTo(rel Position, dx, dy float64) {
	p.X = rel.X + dx
	p.Y = rel.Y + dy
}

// OffsetX adjusts x by dx.
func (p *Position) OffsetX(dx float64) {
	p.X += dx
}

// OffsetY adjusts y by dy.
func (p *Position) OffsetY(dy float64) {
	p.Y += dy
}

// Rect is a set of per-edge offsets, used for margin and padding boxes.
type Rect struct {
	Top    float64 `yaml:"top" json:"top"`
	Left   float64 `yaml:"left" json:"left"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
}

// RectOf builds a Rect from the four edge offsets.
func RectOf(top, left, right, bottom float64) Rect {
	return Rect{Top: top, Left: left, Right: right, Bottom: bottom}
}

// IsZero reports whether every edge offset is zero.
func (r Rect) IsZero() bool {
	return r == Rect{}
}
