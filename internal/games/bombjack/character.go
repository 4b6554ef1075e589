package bombjack

import (
	"fmt"

	"github.com/vovakirdan/bombjack/internal/core"
)

// Pose is the character's motion classification for the current tick.
type Pose int

const (
	PoseIdle Pose = iota
	PoseUp
	PoseDown
	PoseLeft
	PoseRight
	PoseUpLeft
	PoseUpRight

	PoseCount // Number of poses
)

var poseNames = [PoseCount]string{"idle", "up", "down", "left", "right", "upleft", "upright"}

// String returns the lowercase pose name.
func (p Pose) String() string {
	if p < 0 || p >= PoseCount {
		return fmt.Sprintf("pose(%d)", int(p))
	}
	return poseNames[p]
}

// PoseFrames lists the sprite sheet regions animated for each pose.
var PoseFrames = [PoseCount][]Region{
	PoseIdle:    {{601, 256, 39, 45}},
	PoseUp:      {{600, 208, 40, 48}},
	PoseDown:    {{636, 64, 40, 48}},
	PoseLeft:    {{600, 301, 40, 48}, {639, 256, 40, 48}},
	PoseRight:   {{640, 208, 40, 48}, {648, 160, 40, 48}},
	PoseUpLeft:  {{636, 112, 40, 48}},
	PoseUpRight: {{676, 64, 40, 48}},
}

// Character is the player-controlled sprite.
type Character struct {
	Position core.Vec2 // Bottom-left corner
	Size     core.Vec2
	Thrust   float64 // Upward push applied each tick, kept in [0, max thrust]
	Pose     Pose

	anims [PoseCount]*Animation
}

// NewCharacter creates a character at pos with one animation per pose.
func NewCharacter(pos, size core.Vec2, atlas AtlasMapper) (*Character, error) {
	c := &Character{Position: pos, Size: size, Pose: PoseIdle}
	for p := PoseIdle; p < PoseCount; p++ {
		anim, err := buildAnimation(atlas, PoseFrames[p])
		if err != nil {
			return nil, fmt.Errorf("pose %s: %w", p, err)
		}
		c.anims[p] = anim
	}
	return c, nil
}

// Bounds returns the character's hitbox.
func (c *Character) Bounds() core.Rect {
	return core.RectFrom(c.Position, c.Size)
}

// Animation returns the animation bound to a pose.
func (c *Character) Animation(p Pose) *Animation {
	return c.anims[p]
}

// Frame returns the frame currently displayed for the active pose.
func (c *Character) Frame() core.UVRect {
	return c.anims[c.Pose].Peek()
}

// NextFrame advances the active pose's animation.
func (c *Character) NextFrame() {
	c.anims[c.Pose].Advance()
}
