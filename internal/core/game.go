package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// EndReason tells why a session ended.
type EndReason string

const (
	EndReasonNone     EndReason = ""
	EndReasonTimeout  EndReason = "timeout"
	EndReasonBankrupt EndReason = "bankrupt"
)

// EventKind identifies a discrete gameplay event emitted during a tick.
type EventKind int

const (
	// EventCollect fires when the avatar collects a tile. Delta carries the
	// signed score change.
	EventCollect EventKind = iota
	// EventMiss fires when a tile leaves the bottom of the screen uncollected.
	EventMiss
	// EventSessionEnd fires exactly once, on the tick the session terminates.
	// Reason and Score are set.
	EventSessionEnd
)

// Event is a discrete occurrence for the presentation layer to react to
// (flash, sound, game-over screen). The core never renders or plays anything
// itself.
type Event struct {
	Kind   EventKind
	Delta  int       // EventCollect only
	Reason EndReason // EventSessionEnd only
	Score  int       // EventSessionEnd only: final score
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int       // Current Coin score
	TimeLeft  float64   // Seconds remaining in the session
	GameOver  bool      // Whether the session has ended
	EndReason EndReason // Why it ended (empty while running)
	Paused    bool      // Whether the session is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Game is the interface between the pure game logic and the platform.
// The platform handles input mapping, timing, and rendering; the game
// contains no external dependencies.
type Game interface {
	// ID returns a unique identifier for this game, used for storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by dt seconds.
	// Input is abstracted to platform-level actions (Left, Pause, etc.).
	// Returns the result of this tick including state and events.
	Step(in InputFrame, dt float64) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
