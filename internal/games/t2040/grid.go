package t2040

import (
	"errors"
	"math/rand"
)

// BoardSize is the board dimension. The board is always 4x4.
const BoardSize = 4

// ErrNoSpace is returned when no cell is free for a new tile.
var ErrNoSpace = errors.New("t2040: no free cell")

// Cell addresses one board position.
type Cell struct {
	Row, Col int
}

// CellSet marks a set of board positions.
type CellSet [BoardSize][BoardSize]bool

// Add marks c as a member of the set.
func (s *CellSet) Add(c Cell) {
	s[c.Row][c.Col] = true
}

// Has reports whether c is a member of the set.
func (s CellSet) Has(c Cell) bool {
	return s[c.Row][c.Col]
}

// Board is a plain copy of the settled tile values, indexed [row][col].
// Zero means empty; every other value is a power of two >= 2.
type Board [BoardSize][BoardSize]uint32

// Grid is the committed board state: the single source of truth for
// settled tiles. It also remembers the largest value committed by a
// movement since the last Clear.
type Grid struct {
	cells   Board
	largest uint32
}

// GridOf builds a grid holding the given tiles.
func GridOf(b Board) Grid {
	g := Grid{cells: b, largest: 2}
	for _, row := range b {
		for _, v := range row {
			g.largest = max(g.largest, v)
		}
	}
	return g
}

// Clear empties every cell and resets the largest-seen value to 2.
func (g *Grid) Clear() {
	g.cells = Board{}
	g.largest = 2
}

// ValueAt returns the settled value at (row, col), zero when empty.
func (g *Grid) ValueAt(row, col int) uint32 {
	return g.cells[row][col]
}

// At returns the settled value at c.
func (g *Grid) At(c Cell) uint32 {
	return g.cells[c.Row][c.Col]
}

// Commit settles value into (row, col).
func (g *Grid) Commit(row, col int, value uint32) {
	g.cells[row][col] = value
}

// vacate hands a tile over to an in-flight movement.
func (g *Grid) vacate(c Cell) {
	g.cells[c.Row][c.Col] = 0
}

// Largest returns the largest value committed since the last Clear.
func (g *Grid) Largest() uint32 {
	return g.largest
}

// record raises the largest-seen value and reports whether v set a new record.
func (g *Grid) record(v uint32) bool {
	if v <= g.largest {
		return false
	}
	g.largest = v
	return true
}

// Board returns a copy of the settled values.
func (g *Grid) Board() Board {
	return g.cells
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the largest settled value on the board.
func (g *Grid) MaxTile() uint32 {
	var m uint32
	for _, row := range g.cells {
		for _, v := range row {
			m = max(m, v)
		}
	}
	return m
}

// FindEmptyCell picks uniformly at random among the cells that are empty
// and not reserved as the destination of a live movement.
// Returns ErrNoSpace when there is no such cell.
func (g *Grid) FindEmptyCell(rng *rand.Rand, reserved CellSet) (Cell, error) {
	var free [BoardSize * BoardSize]Cell
	n := 0

	for row := range BoardSize {
		for col := range BoardSize {
			c := Cell{Row: row, Col: col}
			if g.cells[row][col] != 0 || reserved.Has(c) {
				continue
			}
			free[n] = c
			n++
		}
	}

	if n == 0 {
		return Cell{}, ErrNoSpace
	}
	return free[rng.Intn(n)], nil
}
