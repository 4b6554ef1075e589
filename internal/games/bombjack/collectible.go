package bombjack

import (
	"fmt"

	"github.com/vovakirdan/bombjack/internal/core"
)

// BombState is the lifecycle state of a bomb. Live -> Collected is the only
// transition.
type BombState int

const (
	BombLive BombState = iota
	BombCollected

	bombStateCount
)

// String returns the lowercase state name.
func (s BombState) String() string {
	switch s {
	case BombLive:
		return "live"
	case BombCollected:
		return "collected"
	default:
		return fmt.Sprintf("bombstate(%d)", int(s))
	}
}

// BombSize is the hitbox of every bomb.
var BombSize = core.V(36, 48)

// BombFrames lists the sprite sheet regions animated for each bomb state.
var BombFrames = [bombStateCount][]Region{
	BombLive:      {{601, 112, 35, 47}, {720, 112, 35, 47}},
	BombCollected: {{757, 112, 35, 47}, {794, 112, 35, 47}},
}

// Bomb is a stationary collectible.
type Bomb struct {
	Position core.Vec2
	Size     core.Vec2
	State    BombState

	disarmed bool
	counter  uint32 // Per-bomb tick counter; the animation advances on even values
	anims    [bombStateCount]*Animation
}

// NewBomb creates a live bomb at pos. Its animation counter starts at zero.
func NewBomb(pos core.Vec2, atlas AtlasMapper) (*Bomb, error) {
	b := &Bomb{Position: pos, Size: BombSize, State: BombLive}
	for s := BombLive; s < bombStateCount; s++ {
		anim, err := buildAnimation(atlas, BombFrames[s])
		if err != nil {
			return nil, fmt.Errorf("bomb %s: %w", s, err)
		}
		b.anims[s] = anim
	}
	return b, nil
}

// Bounds returns the bomb's hitbox.
func (b *Bomb) Bounds() core.Rect {
	return core.RectFrom(b.Position, b.Size)
}

// Disarmed reports whether the bomb has already been scored.
func (b *Bomb) Disarmed() bool {
	return b.disarmed
}

// Frame returns the frame currently displayed for the bomb's state.
func (b *Bomb) Frame() core.UVRect {
	return b.anims[b.State].Peek()
}

// Animation returns the animation bound to a state.
func (b *Bomb) Animation(s BombState) *Animation {
	return b.anims[s]
}

// collect disarms a live bomb. It returns false if the bomb was already
// collected.
func (b *Bomb) collect() bool {
	if b.disarmed {
		return false
	}
	b.disarmed = true
	b.State = BombCollected
	return true
}

// tick advances the bomb's own counter and animates every other call.
func (b *Bomb) tick() {
	b.counter++
	if b.counter%2 == 0 {
		b.anims[b.State].Advance()
	}
}
