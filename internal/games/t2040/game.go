// Package t2040 implements the board transition engine of 2040, a
// sliding-tile merge puzzle: the grid, the per-direction merge rules and
// the animated movement and spawn state machine, advanced one host frame
// at a time.
package t2040

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2040/internal/config"
	"github.com/vovakirdan/tui-2040/internal/core"
)

// SessionState is the top-level mode of the engine.
type SessionState int

const (
	StateSplash SessionState = iota
	StateIdle
	StatePlaying
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case StateSplash:
		return "splash"
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// RoundStatus tells whether the current round can continue.
type RoundStatus int

const (
	RoundActive    RoundStatus = iota
	RoundBoardFull             // a new tile could not be placed
	RoundNoMoves               // the board is full and no direction moves anything
)

// String returns the status name.
func (r RoundStatus) String() string {
	switch r {
	case RoundActive:
		return "active"
	case RoundBoardFull:
		return "board_full"
	case RoundNoMoves:
		return "no_moves"
	default:
		return "unknown"
	}
}

// Engine is the whole simulation: one owned value advanced by Step.
type Engine struct {
	cfg    config.EngineConfig
	logger *log.Logger
	audio  Audio
	source Clock

	clock    *GameClock
	rng      *rand.Rand
	grid     Grid
	queue    *TransitionQueue
	spawner  *SpawnController
	resolver MergeResolver
	splash   splash
	tune     tune

	state SessionState
	round RoundStatus
	moves int
	tick  uint64

	screenW int
	screenH int
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source. Defaults to the system monotonic clock.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.source = c
	}
}

// WithAudio sets the tone collaborator. Defaults to silence.
func WithAudio(a Audio) Option {
	return func(e *Engine) {
		e.audio = a
	}
}

// WithLogger sets the logger. Defaults to discarding output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine. Call Reset before the first Step.
func New(cfg config.EngineConfig, opts ...Option) *Engine {
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.source == nil {
		e.source = NewSystemClock()
	}
	if e.audio == nil {
		e.audio = silentAudio{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	e.Reset(core.DefaultConfig())
	return e
}

// Reset returns the engine to the splash screen with an empty board.
func (e *Engine) Reset(rc core.RuntimeConfig) {
	e.rng = rand.New(rand.NewSource(rc.Seed))
	e.clock = NewGameClock(e.source, e.cfg.Clock)
	e.grid.Clear()
	e.queue = NewTransitionQueue(e.cfg.Animation.SlideRate)
	e.spawner = NewSpawnController(e.rng, e.cfg.Spawn.Rate, e.cfg.Spawn.FourChance)
	e.resolver = MergeResolver{CellSpan: e.cfg.Animation.CellSpan}
	e.splash = splash{}
	e.tune = tune{}

	e.state = StateSplash
	e.round = RoundActive
	e.moves = 0
	e.tick = 0
	e.screenW = rc.ScreenW
	e.screenH = rc.ScreenH
}

// Resize records new screen dimensions without touching the simulation.
func (e *Engine) Resize(w, h int) {
	e.screenW = w
	e.screenH = h
}

// Step advances the simulation by the ticks elapsed since the previous
// step and applies at most one input.
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	ticks := e.clock.Tick()
	e.tick += uint64(ticks)

	var events []core.Event
	switch e.state {
	case StateSplash:
		e.stepSplash(ticks)
	case StateIdle:
		events = e.stepIdle(in, events)
	case StatePlaying:
		events = e.stepPlaying(ticks, in, events)
	}

	e.tune.pump(e.audio)

	return core.StepResult{
		State:  e.State(),
		Ticks:  ticks,
		Events: events,
	}
}

func (e *Engine) stepSplash(ticks int) {
	chime, done := e.splash.advance(ticks, e.cfg.Splash)
	if chime {
		e.tune.queue(e.cfg.Jingle)
	}
	if done {
		e.state = StateIdle
		e.logger.Debug("splash finished")
	}
}

func (e *Engine) stepIdle(in core.InputFrame, events []core.Event) []core.Event {
	if !in.Has(core.ActionConfirm) {
		return events
	}
	e.startRound()
	return append(events, core.Event{Kind: core.EventRoundStart})
}

func (e *Engine) stepPlaying(ticks int, in core.InputFrame, events []core.Event) []core.Event {
	if e.spawner.Advance(ticks, &e.grid) {
		if e.round == RoundActive && IsGameOver(&e.grid) {
			events = e.endRound(RoundNoMoves, events)
		}
	}

	wasMoving := e.queue.Live() > 0
	for _, v := range e.queue.Advance(ticks, &e.grid) {
		e.logger.Debug("new largest tile", "value", v)
		tone := e.cfg.RecordTone
		e.audio.PlayTone(tone.Base+tone.Factor*v, tone.DurationMs)
		events = append(events, core.Event{Kind: core.EventRecord, Value: int(v)})
	}
	if wasMoving && e.queue.Live() == 0 {
		events = e.scheduleSpawn(events)
	}

	if e.queue.Live() > 0 || e.spawner.Pending() {
		return events
	}

	if in.Has(core.ActionCancel) {
		e.state = StateIdle
		e.logger.Debug("round left", "largest", e.grid.Largest(), "moves", e.moves)
		return append(events, core.Event{Kind: core.EventRoundQuit, Value: int(e.grid.Largest())})
	}

	if e.round != RoundActive {
		if in.Has(core.ActionConfirm) {
			e.startRound()
			events = append(events, core.Event{Kind: core.EventRoundStart})
		}
		return events
	}

	dir := DirectionFrom(in)
	if dir == DirNone {
		return events
	}

	n, err := e.resolver.Apply(dir, &e.grid, e.queue)
	if err != nil {
		e.logger.Error("movement capacity violated", "direction", dir, "error", err)
		panic(fmt.Sprintf("t2040: %v", err))
	}
	if n == 0 {
		if IsGameOver(&e.grid) {
			events = e.endRound(RoundNoMoves, events)
		}
		return events
	}

	e.moves++
	e.logger.Debug("direction applied", "direction", dir, "movements", n)
	return events
}

// startRound clears the board and schedules the first tile.
func (e *Engine) startRound() {
	e.grid.Clear()
	e.queue.Clear()
	e.spawner.Cancel()
	e.round = RoundActive
	e.moves = 0
	e.state = StatePlaying

	if err := e.spawner.Schedule(&e.grid, CellSet{}); err != nil {
		// An empty board always has room.
		panic(fmt.Sprintf("t2040: first spawn: %v", err))
	}
	e.logger.Debug("round started")
}

func (e *Engine) scheduleSpawn(events []core.Event) []core.Event {
	err := e.spawner.Schedule(&e.grid, e.queue.Destinations())
	switch {
	case err == nil:
		spawn := e.spawner.Current()
		e.logger.Debug("spawn scheduled", "row", spawn.Cell.Row, "col", spawn.Cell.Col, "value", spawn.Value)
		return events
	case errors.Is(err, ErrNoSpace):
		return e.endRound(RoundBoardFull, events)
	default:
		e.logger.Warn("spawn not scheduled", "error", err)
		return events
	}
}

func (e *Engine) endRound(status RoundStatus, events []core.Event) []core.Event {
	e.round = status
	e.logger.Info("round over", "reason", status, "largest", e.grid.MaxTile(), "moves", e.moves)
	return append(events, core.Event{Kind: core.EventRoundOver, Value: int(e.grid.MaxTile())})
}

// Session returns the top-level mode.
func (e *Engine) Session() SessionState {
	return e.state
}

// Round returns the status of the current round.
func (e *Engine) Round() RoundStatus {
	return e.round
}

// Settled reports whether no movement or spawn is in progress.
func (e *Engine) Settled() bool {
	return e.queue.Live() == 0 && !e.spawner.Pending()
}

// State returns the current game state.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    int(e.grid.Largest()),
		Moves:    e.moves,
		Playing:  e.state == StatePlaying,
		GameOver: e.state == StatePlaying && e.round != RoundActive,
	}
}
