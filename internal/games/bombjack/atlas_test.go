package bombjack

import (
	"testing"

	"github.com/vovakirdan/bombjack/internal/core"
)

func TestAtlasMapperMap(t *testing.T) {
	m := NewAtlasMapper(1162, 650)

	tests := []struct {
		name       string
		x, y, w, h float64
		want       core.UVRect
	}{
		{"origin", 0, 0, 0, 0, core.UVRect{}},
		{"whole sheet", 0, 0, 1162, 650, core.UVRect{U0: 0, V0: 0, U1: 1, V1: 1}},
		{"bomb", 601, 112, 35, 47, core.UVRect{U0: 601.0 / 1162, V0: 112.0 / 650, U1: 636.0 / 1162, V1: 159.0 / 650}},
		{"outside the sheet is not clamped", 1162, 650, 1162, 650, core.UVRect{U0: 1, V0: 1, U1: 2, V1: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Map(tc.x, tc.y, tc.w, tc.h); got != tc.want {
				t.Errorf("Map(%v, %v, %v, %v) = %+v, expected %+v", tc.x, tc.y, tc.w, tc.h, got, tc.want)
			}
		})
	}
}

func TestAtlasMapperRegion(t *testing.T) {
	m := NewAtlasMapper(1000, 500)
	r := Region{X: 100, Y: 50, W: 200, H: 100}
	if m.MapRegion(r) != m.Map(100, 50, 200, 100) {
		t.Error("MapRegion should match Map for the same rectangle")
	}
	w, h := m.Size()
	if w != 1000 || h != 500 {
		t.Errorf("Size() = (%v, %v), expected (1000, 500)", w, h)
	}
}
