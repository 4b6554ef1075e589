package bombjack

import (
	"fmt"
	"time"

	"github.com/vovakirdan/bombjack/internal/config"
	"github.com/vovakirdan/bombjack/internal/core"
)

// Session is one round of play: a character, the level and its bombs.
// It advances at most one tick per Update call and never catches up on
// missed ticks.
type Session struct {
	cfg      config.BombJackConfig
	clock    core.Clock
	level    *Level
	atlas    AtlasMapper
	jack     *Character
	bombs    []*Bomb
	score    int
	tick     time.Duration
	last     time.Time // Time of the last accepted tick
	frame    uint32    // Accepted tick counter, wraps on overflow
	ticks    uint64
	gained   int  // Bombs collected by the last accepted tick
	launched bool // Whether the last accepted tick started a jump
}

// NewSession creates a session on level using cfg. The first tick is
// accepted once a full tick interval has passed on clock.
func NewSession(level *Level, cfg config.BombJackConfig, clock core.Clock) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = core.SystemClock{}
	}

	atlas := NewAtlasMapper(cfg.Atlas.Width, cfg.Atlas.Height)
	jack, err := NewCharacter(
		core.V(cfg.Character.StartX, cfg.Character.StartY),
		core.V(cfg.Character.Width, cfg.Character.Height),
		atlas,
	)
	if err != nil {
		return nil, fmt.Errorf("character: %w", err)
	}

	spawns := level.Spawns()
	bombs := make([]*Bomb, 0, len(spawns))
	for _, pos := range spawns {
		b, err := NewBomb(pos, atlas)
		if err != nil {
			return nil, err
		}
		bombs = append(bombs, b)
	}

	return &Session{
		cfg:   cfg,
		clock: clock,
		level: level,
		atlas: atlas,
		jack:  jack,
		bombs: bombs,
		tick:  time.Duration(cfg.Timing.TickMillis) * time.Millisecond,
		last:  clock.Now(),
	}, nil
}

// Update runs one simulation tick if the tick interval has elapsed since the
// last accepted tick, and reports whether it did. A clock that went
// backwards counts as not elapsed.
func (s *Session) Update(in core.InputSnapshot) bool {
	now := s.clock.Now()
	if now.Sub(s.last) < s.tick {
		return false
	}
	s.last = now
	s.frame++
	s.ticks++
	s.step(in)
	return true
}

// step applies one tick of movement, collection and animation.
func (s *Session) step(in core.InputSnapshot) {
	jack := s.jack
	phys := s.cfg.Physics
	bounds := s.level.Bounds()

	jack.Pose = PoseIdle
	startY := jack.Position.Y

	onGround := jack.Thrust == 0 && s.IsGrounded()
	if !onGround {
		jack.Position.Y -= phys.Gravity
	}
	jack.Position.Y += jack.Thrust

	s.launched = onGround && in.Up
	if onGround {
		if in.Up {
			jack.Thrust = phys.LaunchThrust
		}
	} else {
		jack.Thrust = core.ClampF(jack.Thrust-phys.ThrustDecay, 0, phys.MaxThrust)
	}

	if top := bounds.Top() - jack.Size.Y; jack.Position.Y > top {
		jack.Position.Y = top
	}

	switch {
	case jack.Position.Y > startY:
		jack.Pose = PoseUp
	case jack.Position.Y < startY:
		jack.Pose = PoseDown
	}

	walking := jack.Position.Y == startY && onGround
	if in.Left && jack.Position.X > bounds.Left() {
		jack.Position.X -= phys.WalkSpeed
		jack.Pose = PoseUpLeft
		if walking {
			jack.Pose = PoseLeft
		}
	}
	if in.Right && jack.Position.X+jack.Size.X < bounds.Right() {
		jack.Position.X += phys.WalkSpeed
		jack.Pose = PoseUpRight
		if walking {
			jack.Pose = PoseRight
		}
	}

	s.gained = 0
	hitbox := jack.Bounds()
	for _, b := range s.bombs {
		if b.Disarmed() || !hitbox.Overlaps(b.Bounds()) {
			continue
		}
		if b.collect() {
			s.score += s.cfg.Scoring.BombReward
			s.gained++
		}
	}

	if s.frame%2 == 0 {
		jack.NextFrame()
	}
	for _, b := range s.bombs {
		b.tick()
	}
}

// IsGrounded reports whether the character rests on the level floor or on a
// platform. Platforms are tested with a single probe at the bottom-center of
// the character against the top band of each platform.
func (s *Session) IsGrounded() bool {
	jack := s.jack
	if jack.Position.Y <= s.level.Bounds().Bottom() {
		return true
	}

	probe := core.V(jack.Position.X+jack.Size.X/2, jack.Position.Y)
	band := s.cfg.Physics.GroundBand
	for _, p := range s.level.platforms {
		top := p.Position.Y + p.Size.Y
		if probe.X >= p.Position.X && probe.X <= p.Position.X+p.Size.X &&
			probe.Y >= top-band && probe.Y <= top {
			return true
		}
	}
	return false
}

// Character returns the player character.
func (s *Session) Character() *Character {
	return s.jack
}

// Bombs returns the bombs in spawn order.
func (s *Session) Bombs() []*Bomb {
	return s.bombs
}

// Level returns the session's level.
func (s *Session) Level() *Level {
	return s.level
}

// Atlas returns the mapper used for every sprite in the session.
func (s *Session) Atlas() AtlasMapper {
	return s.atlas
}

// Score returns the running score.
func (s *Session) Score() int {
	return s.score
}

// Frame returns the wrapping tick counter.
func (s *Session) Frame() uint32 {
	return s.frame
}

// Ticks returns the number of accepted ticks.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// LastCollected returns how many bombs the most recent tick collected.
func (s *Session) LastCollected() int {
	return s.gained
}

// LastLaunched reports whether the most recent tick started a jump.
func (s *Session) LastLaunched() bool {
	return s.launched
}

// Collected returns the number of collected bombs.
func (s *Session) Collected() int {
	n := 0
	for _, b := range s.bombs {
		if b.State == BombCollected {
			n++
		}
	}
	return n
}

// Cleared reports whether every bomb has been collected.
func (s *Session) Cleared() bool {
	return len(s.bombs) > 0 && s.Collected() == len(s.bombs)
}
