package bombjack

import "github.com/vovakirdan/bombjack/internal/core"

// SheetRegions lists every sprite sheet region the game samples, named like
// the sprites that use them. Shared platform textures appear once.
func SheetRegions() []core.SheetRegion {
	out := []core.SheetRegion{sheetRegion("background", BackgroundRegion)}

	seen := make(map[Region]bool)
	for _, p := range classicPlatforms {
		if seen[p.Texture] {
			continue
		}
		seen[p.Texture] = true
		out = append(out, sheetRegion("platform", p.Texture))
	}

	for s := BombLive; s < bombStateCount; s++ {
		for _, r := range BombFrames[s] {
			out = append(out, sheetRegion("bomb."+s.String(), r))
		}
	}
	for p := PoseIdle; p < PoseCount; p++ {
		for _, r := range PoseFrames[p] {
			out = append(out, sheetRegion("jack."+p.String(), r))
		}
	}
	return out
}

func sheetRegion(name string, r Region) core.SheetRegion {
	return core.SheetRegion{Name: name, X: r.X, Y: r.Y, W: r.W, H: r.H}
}
