package t2040

import (
	"time"

	"github.com/vovakirdan/tui-2040/internal/config"
)

// Clock is a monotonic microsecond time source read once per step.
type Clock interface {
	NowMicros() uint64
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock counting from now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMicros returns microseconds since the clock was created.
func (c *SystemClock) NowMicros() uint64 {
	return uint64(time.Since(c.start).Microseconds())
}

// GameClock converts measured elapsed time into whole simulation ticks,
// so animation speed does not depend on the host frame rate.
// Leftover microseconds carry over to the next step.
type GameClock struct {
	src      Clock
	divisor  uint64
	maxTicks int
	last     uint64
}

// NewGameClock creates a clock anchored at the current time of src.
func NewGameClock(src Clock, cfg config.ClockConfig) *GameClock {
	c := &GameClock{
		src:      src,
		divisor:  cfg.TickMicros,
		maxTicks: cfg.MaxTicksPerStep,
	}
	c.Anchor()
	return c
}

// Anchor discards any elapsed time not yet turned into ticks.
func (c *GameClock) Anchor() {
	c.last = c.src.NowMicros()
}

// Tick reads the time source once and returns the whole ticks elapsed
// since the previous call. After a long stall the count is capped and the
// backlog is dropped.
func (c *GameClock) Tick() int {
	now := c.src.NowMicros()
	if now < c.last {
		c.last = now
		return 0
	}

	ticks := (now - c.last) / c.divisor
	if c.maxTicks > 0 && ticks > uint64(c.maxTicks) {
		c.last = now
		return c.maxTicks
	}

	c.last += ticks * c.divisor
	return int(ticks)
}
