package core

import "math"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette holds the approximate RGB value of each terminal color.
var palette = []struct {
	color Color
	rgb   RGB
}{
	{ColorRed, RGB{0.8, 0, 0}},
	{ColorGreen, RGB{0, 0.8, 0}},
	{ColorYellow, RGB{0.8, 0.8, 0}},
	{ColorBlue, RGB{0, 0, 0.8}},
	{ColorMagenta, RGB{0.8, 0, 0.8}},
	{ColorCyan, RGB{0, 0.8, 0.8}},
	{ColorWhite, RGB{0.75, 0.75, 0.75}},
	{ColorBrightRed, RGB{1, 0.33, 0.33}},
	{ColorBrightGreen, RGB{0.33, 1, 0.33}},
	{ColorBrightYellow, RGB{1, 1, 0.33}},
	{ColorBrightBlue, RGB{0.33, 0.33, 1}},
	{ColorBrightMagenta, RGB{1, 0.33, 1}},
	{ColorBrightCyan, RGB{0.33, 1, 1}},
	{ColorBrightWhite, RGB{1, 1, 1}},
	{ColorOrange, RGB{1, 0.53, 0}},
	{ColorGray, RGB{0.54, 0.54, 0.54}},
}

// NearestColor maps an RGB color to the closest terminal color.
func NearestColor(c RGB) Color {
	best := ColorDefault
	bestDist := math.MaxFloat64
	for _, p := range palette {
		dr, dg, db := c.R-p.rgb.R, c.G-p.rgb.G, c.B-p.rgb.B
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = p.color, d
		}
	}
	return best
}
