package t2040

// StateName is the display name of what the engine is showing.
type StateName string

const (
	NameSplash    StateName = "splash"
	NameIdle      StateName = "idle"
	NamePlaying   StateName = "playing"
	NameAnimating StateName = "animating"
	NameRoundOver StateName = "round_over"
)

// Snapshot is a read-only copy of everything the engine exposes per tick:
// settled tiles, the pending spawn and the live movements.
type Snapshot struct {
	Tick      uint64
	State     StateName
	Session   SessionState
	Round     RoundStatus
	Board     Board
	Spawn     Spawn
	Movements []Movement
	Largest   uint32 // Largest value committed this round
	MaxTile   uint32 // Largest value currently on the board
	Moves     int
	Splash    float64 // Logo brightness, 0..1
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:      e.tick,
		State:     e.stateName(),
		Session:   e.state,
		Round:     e.round,
		Board:     e.grid.Board(),
		Spawn:     e.spawner.Current(),
		Movements: e.queue.Movements(),
		Largest:   e.grid.Largest(),
		MaxTile:   e.grid.MaxTile(),
		Moves:     e.moves,
		Splash:    e.splash.brightness(e.cfg.Splash),
	}
}

func (e *Engine) stateName() StateName {
	switch {
	case e.state == StateSplash:
		return NameSplash
	case e.state == StateIdle:
		return NameIdle
	case e.round != RoundActive:
		return NameRoundOver
	case !e.Settled():
		return NameAnimating
	default:
		return NamePlaying
	}
}
