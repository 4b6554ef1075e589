// Package config provides YAML-based game configuration loading for Bomb Jack.
// Every value defaults to the constants of the classic level; a YAML file only
// needs to name the fields it changes.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// BombJackConfig contains all tunable configuration for the game.
type BombJackConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Timing    TimingConfig    `yaml:"timing"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Character CharacterConfig `yaml:"character"`
	Atlas     AtlasConfig     `yaml:"atlas"`
	Input     InputConfig     `yaml:"input"`
}

// PhysicsConfig defines the per-tick motion constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Fall applied every airborne tick
	LaunchThrust float64 `yaml:"launch_thrust"` // Thrust set when jumping from the ground
	ThrustDecay  float64 `yaml:"thrust_decay"`  // Thrust lost per airborne tick
	MaxThrust    float64 `yaml:"max_thrust"`    // Upper clamp for thrust
	WalkSpeed    float64 `yaml:"walk_speed"`    // Horizontal step per tick
	GroundBand   float64 `yaml:"ground_band"`   // Depth of a platform's landing band
}

// TimingConfig defines the simulation cadence.
type TimingConfig struct {
	TickMillis int `yaml:"tick_ms"` // Minimum time between accepted ticks
}

// ScoringConfig defines rewards.
type ScoringConfig struct {
	BombReward int `yaml:"bomb_reward"`
}

// CharacterConfig defines the player's spawn placement and hitbox.
type CharacterConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AtlasConfig describes the sprite sheet.
type AtlasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Path   string  `yaml:"path,omitempty"` // PNG sprite sheet; empty uses the generated placeholder
}

// InputConfig tunes terminal key handling.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"` // How long a terminal key press counts as held
}

// Validate checks that the configuration can drive a session.
func (c BombJackConfig) Validate() error {
	switch {
	case c.Timing.TickMillis <= 0:
		return fmt.Errorf("%w: timing.tick_ms must be positive, got %d", ErrInvalid, c.Timing.TickMillis)
	case c.Character.Width <= 0 || c.Character.Height <= 0:
		return fmt.Errorf("%w: character size must be positive, got %gx%g", ErrInvalid, c.Character.Width, c.Character.Height)
	case c.Atlas.Width <= 0 || c.Atlas.Height <= 0:
		return fmt.Errorf("%w: atlas size must be positive, got %gx%g", ErrInvalid, c.Atlas.Width, c.Atlas.Height)
	case c.Physics.MaxThrust < 0 || c.Physics.LaunchThrust < 0:
		return fmt.Errorf("%w: thrust values must not be negative", ErrInvalid)
	case c.Physics.LaunchThrust > c.Physics.MaxThrust:
		return fmt.Errorf("%w: physics.launch_thrust %g exceeds max_thrust %g", ErrInvalid, c.Physics.LaunchThrust, c.Physics.MaxThrust)
	case c.Input.HoldMillis < 0:
		return fmt.Errorf("%w: input.hold_ms must not be negative, got %d", ErrInvalid, c.Input.HoldMillis)
	}
	return nil
}
