package bombjack

import "github.com/vovakirdan/bombjack/internal/core"

// Region is a pixel rectangle in the sprite sheet, measured from the
// sheet's top-left corner.
type Region struct {
	X, Y, W, H float64
}

// AtlasMapper converts sprite sheet pixel regions to normalized UV rectangles.
type AtlasMapper struct {
	width  float64
	height float64
}

// NewAtlasMapper creates a mapper for a sheet of the given pixel size.
func NewAtlasMapper(width, height float64) AtlasMapper {
	return AtlasMapper{width: width, height: height}
}

// Map returns the UV rectangle for the pixel region (x, y, w, h).
// Regions are not checked against the sheet size.
func (m AtlasMapper) Map(x, y, w, h float64) core.UVRect {
	return core.UVRect{
		U0: x / m.width,
		V0: y / m.height,
		U1: (x + w) / m.width,
		V1: (y + h) / m.height,
	}
}

// MapRegion is Map for a Region value.
func (m AtlasMapper) MapRegion(r Region) core.UVRect {
	return m.Map(r.X, r.Y, r.W, r.H)
}

// Size returns the sheet dimensions in pixels.
func (m AtlasMapper) Size() (width, height float64) {
	return m.width, m.height
}
