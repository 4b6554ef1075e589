package core

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrimitiveKind distinguishes the two draw primitives a renderer understands.
type PrimitiveKind int

const (
	PrimitiveSprite PrimitiveKind = iota // Textured quad sampled from the atlas
	PrimitiveRect                        // Solid colored rectangle
)

// RGB is a color with components in [0,1].
type RGB struct {
	R, G, B float64
}

// Primitive is one entry of a draw-list. Sprites use UV and Name;
// rectangles use Color.
type Primitive struct {
	Kind     PrimitiveKind
	Position Vec2   // Bottom-left corner in world space
	Size     Vec2   // Width and height in world units
	UV       UVRect // Atlas region (sprites)
	Name     string // Asset name, e.g. "bomb.live" (sprites)
	Color    RGB    // Fill color (rects)
}

// Bounds returns the world-space rectangle covered by the primitive.
func (p Primitive) Bounds() Rect {
	return RectFrom(p.Position, p.Size)
}

// Sprite builds a textured primitive.
func Sprite(name string, pos, size Vec2, uv UVRect) Primitive {
	return Primitive{Kind: PrimitiveSprite, Name: name, Position: pos, Size: size, UV: uv}
}

// SolidRect builds a colored rectangle primitive.
func SolidRect(pos, size Vec2, c RGB) Primitive {
	return Primitive{Kind: PrimitiveRect, Position: pos, Size: size, Color: c}
}

// DrawList is an ordered list of primitives (painter's order) plus the score
// shown by the text overlay.
type DrawList struct {
	Items []Primitive
	Score int
}

// Add appends primitives in draw order.
func (l *DrawList) Add(p ...Primitive) {
	l.Items = append(l.Items, p...)
}

var scorePrinter = message.NewPrinter(language.English)

// FormatScore renders a score with thousands separators ("12,300").
func FormatScore(score int) string {
	return scorePrinter.Sprintf("%d", score)
}

// SheetRegion names a pixel rectangle of the sprite sheet, measured from the
// sheet's top-left corner.
type SheetRegion struct {
	Name       string
	X, Y, W, H float64
}

// SheetLayout describes every region a game samples from its sprite sheet.
// Renderers use it to paint a stand-in sheet when no image is available.
type SheetLayout struct {
	Width, Height float64
	Regions       []SheetRegion
}
