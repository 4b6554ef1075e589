package bombjack

import "github.com/vovakirdan/bombjack/internal/core"

// Debug overlay colors.
var (
	hitboxColor = core.RGB{R: 1, G: 1, B: 0}
	bandColor   = core.RGB{R: 0, G: 0.8, B: 0}
	probeColor  = core.RGB{R: 1, G: 0, B: 1}
	bombColor   = core.RGB{R: 1, G: 0, B: 0}
)

func backgroundSprite(atlas AtlasMapper) core.Primitive {
	return core.Sprite("background", core.V(0, 0), core.V(WorldWidth, WorldHeight), atlas.MapRegion(BackgroundRegion))
}

func platformSprite(p Platform, atlas AtlasMapper) core.Primitive {
	return core.Sprite("platform", p.Position, p.Size, atlas.MapRegion(p.Texture))
}

func bombSprite(b *Bomb) core.Primitive {
	return core.Sprite("bomb."+b.State.String(), b.Position, b.Size, b.Frame())
}

func characterSprite(c *Character) core.Primitive {
	return core.Sprite("jack."+c.Pose.String(), c.Position, c.Size, c.Frame())
}

// DrawList returns the frame's primitives in painter's order: background,
// platforms, bombs, then the character on top.
func (s *Session) DrawList() core.DrawList {
	list := core.DrawList{
		Items: make([]core.Primitive, 0, 2+len(s.level.platforms)+len(s.bombs)),
		Score: s.score,
	}
	list.Add(backgroundSprite(s.atlas))
	for _, p := range s.level.platforms {
		list.Add(platformSprite(p, s.atlas))
	}
	for _, b := range s.bombs {
		list.Add(bombSprite(b))
	}
	list.Add(characterSprite(s.jack))
	return list
}

// DebugOverlay returns rectangles for the ground bands of every platform,
// live bomb hitboxes, the character hitbox and its ground probe.
func (s *Session) DebugOverlay() []core.Primitive {
	band := s.cfg.Physics.GroundBand
	out := make([]core.Primitive, 0, len(s.level.platforms)+len(s.bombs)+2)
	for _, p := range s.level.platforms {
		top := p.Position.Y + p.Size.Y
		out = append(out, core.SolidRect(core.V(p.Position.X, top-band), core.V(p.Size.X, band), bandColor))
	}
	for _, b := range s.bombs {
		if b.Disarmed() {
			continue
		}
		out = append(out, outline(b.Bounds(), bombColor)...)
	}
	out = append(out, outline(s.jack.Bounds(), hitboxColor)...)

	probe := core.V(s.jack.Position.X+s.jack.Size.X/2, s.jack.Position.Y)
	out = append(out, core.SolidRect(core.V(probe.X-1, probe.Y-1), core.V(2, 2), probeColor))
	return out
}

// outline returns four one-unit rectangles tracing r's border.
func outline(r core.Rect, c core.RGB) []core.Primitive {
	w, h := r.Width(), r.Height()
	return []core.Primitive{
		core.SolidRect(r.BottomLeft, core.V(w, 1), c),
		core.SolidRect(core.V(r.Left(), r.Top()-1), core.V(w, 1), c),
		core.SolidRect(r.BottomLeft, core.V(1, h), c),
		core.SolidRect(core.V(r.Right()-1, r.Bottom()), core.V(1, h), c),
	}
}
