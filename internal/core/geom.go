// Package core provides fundamental types and utilities shared by the game
// simulation and the platforms that drive it. It contains no Bubble Tea or
// ebiten imports so the simulation stays pure and testable.
package core

// Vec2 is a position or size in world space.
type Vec2 struct {
	X, Y float64
}

// V creates a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned region in world space (y grows upwards).
// BottomLeft is component-wise <= TopRight.
type Rect struct {
	BottomLeft Vec2
	TopRight   Vec2
}

// RectFrom builds a Rect from a bottom-left position and a size.
func RectFrom(pos, size Vec2) Rect {
	return Rect{BottomLeft: pos, TopRight: pos.Add(size)}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.BottomLeft.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.TopRight.X }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.BottomLeft.Y }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.TopRight.Y }

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.TopRight.X - r.BottomLeft.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.TopRight.Y - r.BottomLeft.Y }

// Size returns width and height as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.Width(), Y: r.Height()}
}

// Overlaps reports whether two rectangles share interior area.
// Uses strict separating-axis tests, so touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() &&
		r.Right() > o.Left() &&
		r.Bottom() < o.Top() &&
		r.Top() > o.Bottom()
}

// Contains reports whether the point lies inside the rectangle, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Bottom() && p.Y <= r.Top()
}

// UVRect holds normalized texture-atlas coordinates in [0,1].
type UVRect struct {
	U0, V0, U1, V1 float64
}

// CellRect is an axis-aligned box on the character grid (y grows downwards).
type CellRect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewCellRect creates a new cell rectangle with the given position and dimensions.
func NewCellRect(x, y, w, h int) CellRect {
	return CellRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r CellRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
