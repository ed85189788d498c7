package t2040

import (
	"errors"
	"math/rand"
)

// ErrSpawnPending is returned when a spawn is scheduled while another is
// still appearing.
var ErrSpawnPending = errors.New("t2040: spawn already pending")

// spawnDone is the progress value of an idle spawn.
const spawnDone = 100

// Spawn is the single pending new tile.
type Spawn struct {
	Cell     Cell
	Value    uint32
	Progress int // 0..100; 100 means no pending spawn
}

// Pending reports whether the tile is still appearing.
func (s Spawn) Pending() bool {
	return s.Progress < spawnDone
}

// SpawnController manages the appearance of new tiles.
// At most one Spawn exists at a time by construction.
type SpawnController struct {
	spawn      Spawn
	rate       int
	fourChance float64
	rng        *rand.Rand
}

// NewSpawnController creates an idle controller that advances rate percent
// per tick and spawns a 4 with probability fourChance.
func NewSpawnController(rng *rand.Rand, rate int, fourChance float64) *SpawnController {
	return &SpawnController{
		spawn:      Spawn{Progress: spawnDone},
		rate:       rate,
		fourChance: fourChance,
		rng:        rng,
	}
}

// Current returns the spawn state.
func (c *SpawnController) Current() Spawn {
	return c.spawn
}

// Pending reports whether a spawn is still appearing.
func (c *SpawnController) Pending() bool {
	return c.spawn.Pending()
}

// Cancel drops a pending spawn without committing it.
func (c *SpawnController) Cancel() {
	c.spawn = Spawn{Progress: spawnDone}
}

// Schedule starts a new tile in a random free cell of g, avoiding the
// reserved destinations of live movements. Returns ErrNoSpace when the
// board is full; the controller then stays idle.
func (c *SpawnController) Schedule(g *Grid, reserved CellSet) error {
	if c.spawn.Pending() {
		return ErrSpawnPending
	}

	cell, err := g.FindEmptyCell(c.rng, reserved)
	if err != nil {
		return err
	}

	value := uint32(2)
	if c.fourChance > 0 && c.rng.Float64() < c.fourChance {
		value = 4
	}

	c.spawn = Spawn{Cell: cell, Value: value, Progress: 0}
	return nil
}

// Advance grows the pending tile by ticks*rate percent. When it reaches
// 100 the value is committed into g and Advance reports true.
func (c *SpawnController) Advance(ticks int, g *Grid) bool {
	if !c.spawn.Pending() || ticks <= 0 {
		return false
	}

	c.spawn.Progress = min(c.spawn.Progress+ticks*c.rate, spawnDone)
	if c.spawn.Pending() {
		return false
	}

	g.Commit(c.spawn.Cell.Row, c.spawn.Cell.Col, c.spawn.Value)
	return true
}
