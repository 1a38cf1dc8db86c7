package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 10)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome is the result of a match.
type Outcome int

const (
	OutcomeNone Outcome = iota // Match still running
	OutcomeWon                 // All enemies destroyed
	OutcomeLost                // Player destroyed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "running"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Frame        int     // Ticks simulated so far
	Outcome      Outcome // Match result, OutcomeNone while running
	Banner       string  // Active end-of-game banner, empty while running
	PlayerHealth int     // Current player health
	EnemiesLeft  int     // Enemies still alive
	Paused       bool    // Whether the game is paused
}

// Ended reports whether the match has reached a terminal outcome.
func (s GameState) Ended() bool {
	return s.Outcome != OutcomeNone
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Stop  bool // The driver should end the loop
}
