package bombjack

import (
	"errors"

	"github.com/vovakirdan/bombjack/internal/core"
)

// ErrInvalidConfiguration is returned when game content cannot be built,
// for example an animation without frames.
var ErrInvalidConfiguration = errors.New("bombjack: invalid configuration")

// Animation cycles through a fixed, non-empty list of atlas frames.
type Animation struct {
	frames []core.UVRect
	index  int
}

// NewAnimation creates a looping animation starting at the first frame.
func NewAnimation(frames ...core.UVRect) (*Animation, error) {
	if len(frames) == 0 {
		return nil, ErrInvalidConfiguration
	}
	owned := make([]core.UVRect, len(frames))
	copy(owned, frames)
	return &Animation{frames: owned}, nil
}

// Advance returns the current frame and then moves to the next one,
// wrapping to the first frame after the last.
func (a *Animation) Advance() core.UVRect {
	frame := a.frames[a.index]
	a.index = (a.index + 1) % len(a.frames)
	return frame
}

// Peek returns the current frame without advancing.
func (a *Animation) Peek() core.UVRect {
	return a.frames[a.index]
}

// Index returns the position of the current frame.
func (a *Animation) Index() int {
	return a.index
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.frames)
}

// buildAnimation maps sheet regions through the atlas into an animation.
func buildAnimation(atlas AtlasMapper, regions []Region) (*Animation, error) {
	frames := make([]core.UVRect, len(regions))
	for i, r := range regions {
		frames[i] = atlas.MapRegion(r)
	}
	return NewAnimation(frames...)
}
