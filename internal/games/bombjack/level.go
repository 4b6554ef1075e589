package bombjack

import (
	"fmt"

	"github.com/vovakirdan/bombjack/internal/core"
)

// World dimensions of the classic level, in world units (one sheet pixel each).
const (
	WorldWidth  = 600
	WorldHeight = 650
)

// BackgroundRegion is the sheet region drawn behind the level.
var BackgroundRegion = Region{0, 0, WorldWidth, WorldHeight}

// Platform is a static ledge the character can stand on.
type Platform struct {
	Position core.Vec2
	Size     core.Vec2
	Texture  Region
}

// Bounds returns the platform's extent.
func (p Platform) Bounds() core.Rect {
	return core.RectFrom(p.Position, p.Size)
}

// Level is immutable level geometry: world bounds, platforms in draw order
// and bomb spawn points in spawn order.
type Level struct {
	bounds    core.Rect
	platforms []Platform
	spawns    []core.Vec2
}

// NewLevel validates and copies level geometry.
func NewLevel(bounds core.Rect, platforms []Platform, spawns []core.Vec2) (*Level, error) {
	if bounds.Width() < 0 || bounds.Height() < 0 {
		return nil, fmt.Errorf("%w: level bounds %v are inverted", ErrInvalidConfiguration, bounds)
	}
	for i, p := range platforms {
		if p.Size.X < 0 || p.Size.Y < 0 {
			return nil, fmt.Errorf("%w: platform %d has negative size", ErrInvalidConfiguration, i)
		}
	}
	return &Level{
		bounds:    bounds,
		platforms: append([]Platform(nil), platforms...),
		spawns:    append([]core.Vec2(nil), spawns...),
	}, nil
}

// Bounds returns the playable area.
func (l *Level) Bounds() core.Rect {
	return l.bounds
}

// Platforms returns a copy of the platforms in draw order.
func (l *Level) Platforms() []Platform {
	return append([]Platform(nil), l.platforms...)
}

// Spawns returns a copy of the bomb spawn points.
func (l *Level) Spawns() []core.Vec2 {
	return append([]core.Vec2(nil), l.spawns...)
}

// ClassicLevel returns the single hard-coded stage.
func ClassicLevel() *Level {
	lvl, err := NewLevel(classicBounds, classicPlatforms, classicSpawns)
	if err != nil {
		panic(err)
	}
	return lvl
}

var classicBounds = core.Rect{BottomLeft: core.V(20, 20), TopRight: core.V(580, 580)}

var classicPlatforms = []Platform{
	{Position: core.V(325, 459), Size: core.V(150, 22), Texture: Region{780, 42, 150, 22}},
	{Position: core.V(330, 59), Size: core.V(180, 22), Texture: Region{600, 42, 180, 22}},
	{Position: core.V(261, 199), Size: core.V(117, 22), Texture: Region{930, 42, 117, 22}},
	{Position: core.V(135, 389), Size: core.V(91, 22), Texture: Region{1047, 42, 91, 22}},
	{Position: core.V(75, 129), Size: core.V(91, 22), Texture: Region{1047, 42, 91, 22}},
}

var classicSpawns = []core.Vec2{
	// Top left
	core.V(92, 531), core.V(154, 531), core.V(214, 531),
	// Top right
	core.V(414, 531), core.V(474, 531), core.V(534, 531),
	// Left column
	core.V(24, 336), core.V(24, 276), core.V(24, 216), core.V(24, 156),
	// Right column
	core.V(544, 336), core.V(544, 276), core.V(544, 216), core.V(544, 156),
	// Bottom
	core.V(94, 21), core.V(154, 21), core.V(204, 21),
	// Lower right
	core.V(344, 81), core.V(404, 81), core.V(464, 81),
}
