package t2040

import "errors"

// MovementCapacity bounds the number of concurrently live movements.
// In every line the tile on the target edge never moves, so a direction
// step produces at most BoardSize-1 movements per line, and input is only
// accepted once the previous step has fully settled.
const MovementCapacity = BoardSize * (BoardSize - 1)

// ErrPoolExhausted is returned when a movement has no free slot.
var ErrPoolExhausted = errors.New("t2040: movement pool exhausted")

var errInertMovement = errors.New("t2040: movement has no travel")

// Movement is one tile changing cell (and maybe value) in a direction step.
type Movement struct {
	Start      Cell
	End        Cell
	StartValue uint32
	EndValue   uint32 // StartValue, or twice it when the tile merged
	Distance   int    // Total animation units of travel
	Remaining  int    // Animation units still to go; zero means settled
}

// Live reports whether the movement is still in flight.
func (m Movement) Live() bool {
	return m.Remaining > 0
}

// Merged reports whether the movement folds two tiles into one.
func (m Movement) Merged() bool {
	return m.EndValue != m.StartValue
}

// Progress returns how much of the travel is done, from 0 to 1.
func (m Movement) Progress() float64 {
	if m.Distance <= 0 || m.Remaining <= 0 {
		return 1
	}
	return 1 - float64(m.Remaining)/float64(m.Distance)
}

// MovementPool is a fixed-capacity arena of movements with a free list.
// Live slots are also kept in insertion order so that movements finishing
// in the same tick are committed in the order they were emitted.
type MovementPool struct {
	slots [MovementCapacity]Movement
	free  [MovementCapacity]int
	nfree int
	live  [MovementCapacity]int
	nlive int
}

// NewMovementPool returns an empty pool.
func NewMovementPool() *MovementPool {
	p := &MovementPool{}
	p.Reset()
	return p
}

// Reset frees every slot.
func (p *MovementPool) Reset() {
	for i := range MovementCapacity {
		p.slots[i] = Movement{}
		p.free[i] = MovementCapacity - 1 - i
	}
	p.nfree = MovementCapacity
	p.nlive = 0
}

// Acquire stores m in a free slot and returns its index.
func (p *MovementPool) Acquire(m Movement) (int, error) {
	if !m.Live() {
		return -1, errInertMovement
	}
	if p.nfree == 0 {
		return -1, ErrPoolExhausted
	}
	p.nfree--
	idx := p.free[p.nfree]
	p.slots[idx] = m
	p.live[p.nlive] = idx
	p.nlive++
	return idx, nil
}

// Len returns the number of occupied slots.
func (p *MovementPool) Len() int {
	return p.nlive
}

// Free returns the number of free slots.
func (p *MovementPool) Free() int {
	return p.nfree
}

// Get returns the movement stored at idx.
func (p *MovementPool) Get(idx int) Movement {
	return p.slots[idx]
}

// Each calls fn for every occupied slot in insertion order.
// fn may update the movement through the pointer; slots whose movement
// is no longer live afterwards are released.
func (p *MovementPool) Each(fn func(m *Movement)) {
	kept := 0
	for i := range p.nlive {
		idx := p.live[i]
		fn(&p.slots[idx])
		if p.slots[idx].Live() {
			p.live[kept] = idx
			kept++
			continue
		}
		p.slots[idx] = Movement{}
		p.free[p.nfree] = idx
		p.nfree++
	}
	p.nlive = kept
}

// Snapshot copies the occupied movements in insertion order.
func (p *MovementPool) Snapshot() []Movement {
	out := make([]Movement, 0, p.nlive)
	for i := range p.nlive {
		out = append(out, p.slots[p.live[i]])
	}
	return out
}
