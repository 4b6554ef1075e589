package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// projectionEpsilon absorbs float32 noise when snapping projected edges to cells.
const projectionEpsilon = 1e-3

// Camera maps y-up world coordinates onto a y-down viewport (terminal cells or
// window pixels) using an orthographic projection.
type Camera struct {
	World Vec2    // Visible world extent, from the origin
	ViewW float64 // Viewport width in target units
	ViewH float64 // Viewport height in target units

	matrix mgl32.Mat4
}

// NewCamera creates a camera showing world extent (worldW, worldH) on a
// viewport of (viewW, viewH) units.
func NewCamera(worldW, worldH, viewW, viewH float64) *Camera {
	c := &Camera{
		World: V(worldW, worldH),
		ViewW: viewW,
		ViewH: viewH,
	}
	c.rebuild()
	return c
}

// SetViewport changes the target size, e.g. after a terminal resize.
func (c *Camera) SetViewport(viewW, viewH float64) {
	c.ViewW = viewW
	c.ViewH = viewH
}

// rebuild recomputes the view-projection matrix.
func (c *Camera) rebuild() {
	view := mgl32.LookAtV(
		mgl32.Vec3{0, 0, 1},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
	proj := mgl32.Ortho(0, float32(c.World.X), 0, float32(c.World.Y), 0.1, 100)
	c.matrix = proj.Mul4(view)
}

// Project maps a world point to viewport coordinates (origin top-left, y down).
func (c *Camera) Project(p Vec2) (x, y float64) {
	ndc := c.matrix.Mul4x1(mgl32.Vec4{float32(p.X), float32(p.Y), 0, 1})
	x = (float64(ndc.X()) + 1) / 2 * c.ViewW
	y = (1 - float64(ndc.Y())) / 2 * c.ViewH
	return x, y
}

// ProjectRect maps a world rectangle to the cells it covers.
// Any rectangle with positive area covers at least one cell.
func (c *Camera) ProjectRect(r Rect) CellRect {
	left, top := c.Project(V(r.Left(), r.Top()))
	right, bottom := c.Project(V(r.Right(), r.Bottom()))

	x0 := int(math.Floor(left + projectionEpsilon))
	y0 := int(math.Floor(top + projectionEpsilon))
	x1 := int(math.Ceil(right - projectionEpsilon))
	y1 := int(math.Ceil(bottom - projectionEpsilon))

	if r.Width() > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.Height() > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return NewCellRect(x0, y0, x1-x0, y1-y0)
}
