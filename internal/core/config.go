package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt their terminal rendering to the screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Platform refresh rate (frames per second, default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each platform frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State     GameState
	Ticked    bool // Whether the simulation advanced this frame
	Collected int  // Number of collectibles picked up this frame
	Jumped    bool // Whether the player launched a jump this frame
	Cleared   bool // Whether the round was cleared this frame
}
