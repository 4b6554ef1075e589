package bombjack

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vovakirdan/bombjack/internal/config"
	"github.com/vovakirdan/bombjack/internal/core"
)

// decodeInput turns a 4-bit mask into held directions.
func decodeInput(mask int) core.InputSnapshot {
	return core.InputSnapshot{
		Up:    mask&1 != 0,
		Down:  mask&2 != 0,
		Left:  mask&4 != 0,
		Right: mask&8 != 0,
	}
}

type sessionSnapshot struct {
	jack   Character
	score  int
	states []BombState
	frames []int
}

func snapshotOf(s *Session) sessionSnapshot {
	snap := sessionSnapshot{jack: *s.Character(), score: s.Score()}
	for _, b := range s.Bombs() {
		snap.states = append(snap.states, b.State)
		snap.frames = append(snap.frames, b.Animation(b.State).Index())
	}
	return snap
}

func (a sessionSnapshot) equal(b sessionSnapshot) bool {
	if a.jack.Position != b.jack.Position || a.jack.Thrust != b.jack.Thrust ||
		a.jack.Pose != b.jack.Pose || a.score != b.score {
		return false
	}
	for i := range a.states {
		if a.states[i] != b.states[i] || a.frames[i] != b.frames[i] {
			return false
		}
	}
	return true
}

func newPropertySession() (*Session, *fakeClock) {
	clock := newFakeClock()
	s, err := NewSession(ClassicLevel(), config.DefaultBombJackConfig(), clock)
	if err != nil {
		panic(err)
	}
	return s, clock
}

func TestPropertySession(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("rejected updates leave state unchanged", prop.ForAll(
		func(inputs, gaps []int) bool {
			s, clock := newPropertySession()
			for i, mask := range inputs {
				before := snapshotOf(s)
				last := s.last
				clock.Advance(time.Duration(gaps[i]) * time.Millisecond)

				ticked := s.Update(decodeInput(mask))
				if ticked != (clock.Now().Sub(last) >= tickInterval) {
					return false
				}
				if !ticked && !snapshotOf(s).equal(before) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(120, gen.IntRange(0, 15)),
		gen.SliceOfN(120, gen.IntRange(0, 40)),
	))

	properties.Property("thrust stays clamped and decays while airborne", prop.ForAll(
		func(inputs []int) bool {
			s, clock := newPropertySession()
			jack := s.Character()
			for _, mask := range inputs {
				before := jack.Thrust
				airborne := !(before == 0 && s.IsGrounded())

				clock.Advance(tickInterval)
				s.Update(decodeInput(mask))

				if jack.Thrust < 0 || jack.Thrust > 20 {
					return false
				}
				if airborne && jack.Thrust != core.ClampF(before-0.4, 0, 20) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(300, gen.IntRange(0, 15)),
	))

	properties.Property("character respects the level bounds", prop.ForAll(
		func(inputs []int) bool {
			s, clock := newPropertySession()
			jack := s.Character()
			bounds := s.Level().Bounds()
			for _, mask := range inputs {
				in := decodeInput(mask)
				beforeX := jack.Position.X

				clock.Advance(tickInterval)
				s.Update(in)

				if jack.Position.Y+jack.Size.Y > bounds.Top() {
					return false
				}
				blockedLeft := in.Left && beforeX <= bounds.Left()
				blockedRight := in.Right && beforeX+jack.Size.X >= bounds.Right()
				if blockedLeft && !in.Right && jack.Position.X != beforeX {
					return false
				}
				if blockedRight && !in.Left && jack.Position.X != beforeX {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(400, gen.IntRange(0, 15)),
	))

	properties.Property("collected bombs stay collected and score is 100 per bomb", prop.ForAll(
		func(inputs []int) bool {
			s, clock := newPropertySession()
			seen := make([]bool, len(s.Bombs()))
			for _, mask := range inputs {
				clock.Advance(tickInterval)
				s.Update(decodeInput(mask))

				for i, b := range s.Bombs() {
					if seen[i] && (b.State != BombCollected || !b.Disarmed()) {
						return false
					}
					if b.State == BombCollected {
						seen[i] = true
					}
				}
				if s.Score() != 100*s.Collected() {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(400, gen.IntRange(0, 15)),
	))

	properties.TestingRun(t)
}
