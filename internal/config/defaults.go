package config

import (
	_ "embed"
)

//go:embed defaults/bombjack.yaml
var defaultBombJackYAML []byte

// DefaultBombJackConfig returns the default Bomb Jack configuration.
func DefaultBombJackConfig() BombJackConfig {
	return BombJackConfig{
		Physics: PhysicsConfig{
			Gravity:      4.0,
			LaunchThrust: 20.0,
			ThrustDecay:  0.4,
			MaxThrust:    20.0,
			WalkSpeed:    2.0,
			GroundBand:   4.0,
		},
		Timing: TimingConfig{
			TickMillis: 1000 / 60,
		},
		Scoring: ScoringConfig{
			BombReward: 100,
		},
		Character: CharacterConfig{
			StartX: 300,
			StartY: 300,
			Width:  39,
			Height: 45,
		},
		Atlas: AtlasConfig{
			Width:  1162,
			Height: 650,
		},
		Input: InputConfig{
			HoldMillis: 300,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultBombJackYAML))
	copy(out, defaultBombJackYAML)
	return out
}
