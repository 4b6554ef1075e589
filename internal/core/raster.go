package core

import "strings"

// Glyph is the terminal stand-in for a textured sprite.
type Glyph struct {
	Rune  rune
	Color Color
}

// GlyphTable maps sprite names to glyphs. A name like "jack.left" falls back
// to the entry for its family ("jack") when it has no entry of its own.
type GlyphTable map[string]Glyph

// Lookup returns the glyph for a sprite name.
func (t GlyphTable) Lookup(name string) (Glyph, bool) {
	if g, ok := t[name]; ok {
		return g, true
	}
	if i := strings.IndexByte(name, '.'); i > 0 {
		g, ok := t[name[:i]]
		return g, ok
	}
	return Glyph{}, false
}

// RectRune is the fill character used for solid rectangle primitives.
const RectRune = '▒'

// Rasterize paints a draw-list onto the screen in list order, so later
// primitives cover earlier ones. Sprites without a glyph are skipped.
func Rasterize(dst *Screen, list DrawList, cam *Camera, glyphs GlyphTable) {
	for _, p := range list.Items {
		cells := cam.ProjectRect(p.Bounds())
		if cells.Empty() {
			continue
		}

		switch p.Kind {
		case PrimitiveSprite:
			g, ok := glyphs.Lookup(p.Name)
			if !ok {
				continue
			}
			dst.DrawRect(cells, g.Rune, g.Color)
		case PrimitiveRect:
			dst.DrawRect(cells, RectRune, NearestColor(p.Color))
		}
	}
}
