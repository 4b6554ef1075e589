package sprites

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/bombjack/internal/core"
)

// Quad is a destination rectangle in screen pixels (origin top-left).
type Quad struct {
	X, Y, W, H float64
}

// Projector maps draw-list primitives onto a pixel screen and a sheet.
type Projector struct {
	camera *core.Camera
	sheetW float64
	sheetH float64
}

// NewProjector creates a projector for a world of (worldW, worldH) units shown
// on a (screenW, screenH) pixel screen, sampling a sheet of the given size.
func NewProjector(worldW, worldH, screenW, screenH float64, sheet core.SheetLayout) *Projector {
	return &Projector{
		camera: core.NewCamera(worldW, worldH, screenW, screenH),
		sheetW: sheet.Width,
		sheetH: sheet.Height,
	}
}

// Dest returns where p lands on screen. World y grows upwards and screen y
// downwards, so the primitive's top edge becomes the quad's Y.
func (pr *Projector) Dest(p core.Primitive) Quad {
	x0, y0 := pr.camera.Project(core.V(p.Position.X, p.Position.Y+p.Size.Y))
	x1, y1 := pr.camera.Project(core.V(p.Position.X+p.Size.X, p.Position.Y))
	return Quad{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Source returns the sheet pixels a UV rectangle samples. V is measured from
// the sheet's top edge, like the pixel regions it was mapped from.
func (pr *Projector) Source(uv core.UVRect) image.Rectangle {
	return image.Rect(
		int(math.Round(uv.U0*pr.sheetW)),
		int(math.Round(uv.V0*pr.sheetH)),
		int(math.Round(uv.U1*pr.sheetW)),
		int(math.Round(uv.V1*pr.sheetH)),
	)
}

// RGBA converts a draw-list color to an opaque image color.
func RGBA(c core.RGB) color.RGBA {
	return color.RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: 0xff,
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(core.ClampF(v, 0, 1) * 255))
}
