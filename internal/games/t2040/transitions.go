package t2040

// TransitionQueue owns the in-flight movements and interpolates them
// from the cell a tile left to the cell it settles in.
type TransitionQueue struct {
	pool *MovementPool
	rate int
}

// NewTransitionQueue creates an empty queue that removes rate animation
// units per tick from every live movement.
func NewTransitionQueue(rate int) *TransitionQueue {
	return &TransitionQueue{
		pool: NewMovementPool(),
		rate: rate,
	}
}

// Push queues a movement.
func (q *TransitionQueue) Push(m Movement) error {
	_, err := q.pool.Acquire(m)
	return err
}

// Clear drops every movement without committing it.
func (q *TransitionQueue) Clear() {
	q.pool.Reset()
}

// Live returns the number of movements still in flight.
func (q *TransitionQueue) Live() int {
	return q.pool.Len()
}

// Movements returns a copy of the live movements in emission order.
func (q *TransitionQueue) Movements() []Movement {
	return q.pool.Snapshot()
}

// Destinations returns the cells live movements will settle in.
func (q *TransitionQueue) Destinations() CellSet {
	var set CellSet
	q.pool.Each(func(m *Movement) {
		set.Add(m.End)
	})
	return set
}

// Advance moves every live movement ticks*rate units closer to its end.
// A movement that arrives commits its end value into g exactly once and
// frees its slot. Returns the values that set a new largest-tile record,
// in commit order.
func (q *TransitionQueue) Advance(ticks int, g *Grid) []uint32 {
	if ticks <= 0 {
		return nil
	}

	var records []uint32
	step := ticks * q.rate
	q.pool.Each(func(m *Movement) {
		m.Remaining -= min(m.Remaining, step)
		if m.Remaining > 0 {
			return
		}
		g.Commit(m.End.Row, m.End.Col, m.EndValue)
		if g.record(m.EndValue) {
			records = append(records, m.EndValue)
		}
	})
	return records
}
