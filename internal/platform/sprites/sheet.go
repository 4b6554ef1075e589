// Package sprites prepares sprite sheets and screen geometry for pixel
// renderers. It has no window dependency so it can be tested headless.
package sprites

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // Sprite sheets are PNG files
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/bombjack/internal/core"
)

// ErrSheetSize is returned when a loaded sheet is smaller than its layout.
var ErrSheetSize = errors.New("sprites: sheet smaller than layout")

// Placeholder swatch colors, keyed by sprite name prefix.
var (
	backgroundFill = color.RGBA{0x10, 0x18, 0x40, 0xff}
	platformFill   = color.RGBA{0xd0, 0x70, 0x20, 0xff}
	liveBombFill   = color.RGBA{0xe0, 0x20, 0x20, 0xff}
	spentBombFill  = color.RGBA{0x70, 0x70, 0x70, 0xff}
	jackFill       = color.RGBA{0x30, 0x60, 0xf0, 0xff}
	otherFill      = color.RGBA{0xff, 0x00, 0xff, 0xff}
	labelColor     = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Load decodes the sprite sheet at path and checks it covers the layout.
func Load(path string, layout core.SheetLayout) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprites: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprites: decode %s: %w", path, err)
	}

	b := img.Bounds()
	if float64(b.Dx()) < layout.Width || float64(b.Dy()) < layout.Height {
		return nil, fmt.Errorf("%w: %s is %dx%d, need %vx%v", ErrSheetSize, path, b.Dx(), b.Dy(), layout.Width, layout.Height)
	}
	return img, nil
}

// Placeholder paints a stand-in sheet: each region becomes a colored swatch
// with a one-pixel border and a short label, so the game stays playable
// without the original artwork.
func Placeholder(layout core.SheetLayout) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(layout.Width), int(layout.Height)))

	for _, r := range layout.Regions {
		rect := RegionRect(r)
		fill := swatchColor(r.Name)
		draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Src)

		if r.Name == "background" {
			paintStars(img, rect)
			continue
		}
		outlineRect(img, rect, darken(fill))
		label(img, rect, shortName(r.Name))
	}
	return img
}

// RegionRect returns the integer pixel rectangle of a sheet region.
func RegionRect(r core.SheetRegion) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

func swatchColor(name string) color.RGBA {
	switch {
	case name == "background":
		return backgroundFill
	case name == "platform":
		return platformFill
	case name == "bomb.live":
		return liveBombFill
	case strings.HasPrefix(name, "bomb."):
		return spentBombFill
	case strings.HasPrefix(name, "jack."):
		return jackFill
	}
	return otherFill
}

// shortName drops the sprite family: "jack.upleft" labels as "upleft".
func shortName(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
}

func outlineRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// paintStars sprinkles a fixed pattern of dots over the background.
func paintStars(img *image.RGBA, r image.Rectangle) {
	for y := r.Min.Y + 7; y < r.Max.Y; y += 37 {
		for x := r.Min.X + (y*13)%29; x < r.Max.X; x += 53 {
			img.SetRGBA(x, y, color.RGBA{0xc0, 0xc0, 0xff, 0xff})
		}
	}
}

// label writes text clipped to r using the 7x13 basic font.
func label(img *image.RGBA, r image.Rectangle, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img.SubImage(r).(*image.RGBA),
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot:  fixed.P(r.Min.X+2, r.Min.Y+face.Ascent+1),
	}
	d.DrawString(text)
}
