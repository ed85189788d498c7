package core

// RuntimeConfig contains configuration passed to the engine at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (the engine does not rely on it)
	Seed     int64 // RNG seed for deterministic spawns
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

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Largest tile produced this round
	Moves    int  // Directions accepted this round
	Playing  bool // Whether a round is in progress
	GameOver bool // Whether the current round has ended
}

// EventKind classifies something the platform may want to react to.
type EventKind int

const (
	EventRecord     EventKind = iota + 1 // a new largest tile was committed
	EventRoundStart                      // a round was started from the title screen
	EventRoundOver                       // no more tiles can be placed or moved
	EventRoundQuit                       // the player left the round
)

// Event is emitted by a simulation step.
type Event struct {
	Kind  EventKind
	Value int // record value or largest tile, depending on Kind
}

// StepResult is returned by Step() after each simulation step.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Ticks  int // Simulation ticks consumed by this step
	Events []Event
}

// Has reports whether the result carries an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
