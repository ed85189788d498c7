package t2040

import "fmt"

// lineMove is a movement within one line, in positions counted from the
// target edge.
type lineMove struct {
	from, to   int
	value      uint32
	endValue   uint32
	cellsMoved int
}

// resolveLine slides and merges one line toward position 0.
// Tiles are processed nearest-to-edge first on a scratch copy. Each tile
// slides over empty positions and may then fold into an equal neighbour,
// but only one collapse is allowed per line per step.
// Returns the settled line and the movements it took to get there.
func resolveLine(line [BoardSize]uint32) ([BoardSize]uint32, []lineMove) {
	var moves []lineMove
	collapsed := false

	for pos := 1; pos < BoardSize; pos++ {
		if line[pos] == 0 {
			continue
		}

		m := lineMove{from: pos, value: line[pos], endValue: line[pos]}
		at := pos

		for at > 0 && line[at-1] == 0 {
			line[at-1] = line[at]
			line[at] = 0
			at--
			m.cellsMoved++
		}

		if !collapsed && at > 0 && line[at-1] == line[at] {
			line[at-1] *= 2
			line[at] = 0
			at--
			collapsed = true
			m.endValue *= 2
			m.cellsMoved++
		}

		if m.cellsMoved > 0 {
			m.to = at
			moves = append(moves, m)
		}
	}

	return line, moves
}

// MergeResolver turns a direction into movements.
type MergeResolver struct {
	CellSpan int // Animation units per cell of travel
}

// Plan computes the movements dir would cause on g without touching it.
// Lines are processed in natural order, line 0 first.
func (r MergeResolver) Plan(dir Direction, g *Grid) []Movement {
	if dir == DirNone {
		return nil
	}

	var out []Movement
	for line := range BoardSize {
		var work [BoardSize]uint32
		for pos := range BoardSize {
			work[pos] = g.At(dir.lineCell(line, pos))
		}

		_, moves := resolveLine(work)
		for _, m := range moves {
			distance := m.cellsMoved * r.CellSpan
			out = append(out, Movement{
				Start:      dir.lineCell(line, m.from),
				End:        dir.lineCell(line, m.to),
				StartValue: m.value,
				EndValue:   m.endValue,
				Distance:   distance,
				Remaining:  distance,
			})
		}
	}
	return out
}

// Apply plans dir on g, queues every movement and vacates the cells the
// moving tiles leave, so that a tile is never both settled and in flight.
// Returns the number of movements queued; zero means the direction
// changed nothing. A full queue is an invariant violation and is
// reported as ErrPoolExhausted.
func (r MergeResolver) Apply(dir Direction, g *Grid, q *TransitionQueue) (int, error) {
	moves := r.Plan(dir, g)
	for i, m := range moves {
		if err := q.Push(m); err != nil {
			return i, fmt.Errorf("apply %s: movement %d of %d: %w", dir, i+1, len(moves), err)
		}
		g.vacate(m.Start)
	}
	return len(moves), nil
}

// HasLegalMove reports whether any direction would move or merge a tile.
func HasLegalMove(g *Grid) bool {
	r := MergeResolver{CellSpan: 1}
	for _, dir := range Directions {
		if len(r.Plan(dir, g)) > 0 {
			return true
		}
	}
	return false
}

// IsGameOver reports whether the round cannot continue: no cell is empty
// and no direction produces a movement.
func IsGameOver(g *Grid) bool {
	return g.EmptyCount() == 0 && !HasLegalMove(g)
}
