package sprites

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/vovakirdan/bombjack/internal/core"
)

func nearQuad(a, b Quad) bool {
	const eps = 1e-2
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.W-b.W) < eps && math.Abs(a.H-b.H) < eps
}

func TestProjectorDest(t *testing.T) {
	sheet := core.SheetLayout{Width: 1162, Height: 650}
	prim := core.SolidRect(core.V(20, 20), core.V(10, 30), core.RGB{})

	tests := []struct {
		name    string
		screenW float64
		screenH float64
		want    Quad
	}{
		{"one to one", 600, 650, Quad{X: 20, Y: 600, W: 10, H: 30}},
		{"half size", 300, 325, Quad{X: 10, Y: 300, W: 5, H: 15}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pr := NewProjector(600, 650, tc.screenW, tc.screenH, sheet)
			if got := pr.Dest(prim); !nearQuad(got, tc.want) {
				t.Errorf("Dest() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestProjectorSource(t *testing.T) {
	sheet := core.SheetLayout{Width: 1162, Height: 650}
	pr := NewProjector(600, 650, 600, 650, sheet)

	uv := core.UVRect{U0: 601.0 / 1162, V0: 112.0 / 650, U1: 636.0 / 1162, V1: 159.0 / 650}
	if got, want := pr.Source(uv), image.Rect(601, 112, 636, 159); got != want {
		t.Errorf("Source() = %v, expected %v", got, want)
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		in   core.RGB
		want color.RGBA
	}{
		{core.RGB{R: 1, G: 0.5, B: 0}, color.RGBA{255, 128, 0, 255}},
		{core.RGB{R: 2, G: -1, B: 1}, color.RGBA{255, 0, 255, 255}},
	}
	for _, tc := range tests {
		if got := RGBA(tc.in); got != tc.want {
			t.Errorf("RGBA(%+v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
