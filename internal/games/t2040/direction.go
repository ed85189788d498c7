package t2040

import "github.com/vovakirdan/tui-2040/internal/core"

// Direction represents a move direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four directions in input priority order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionFrom picks the direction pressed in this frame.
// When several are pressed the priority is up, down, left, right.
func DirectionFrom(in core.InputFrame) Direction {
	switch {
	case in.Has(core.ActionUp):
		return DirUp
	case in.Has(core.ActionDown):
		return DirDown
	case in.Has(core.ActionLeft):
		return DirLeft
	case in.Has(core.ActionRight):
		return DirRight
	default:
		return DirNone
	}
}

// lineCell maps a (line, pos) pair onto the board. pos 0 is the cell on
// the target edge and pos grows away from it; lines are columns for
// vertical moves and rows for horizontal ones.
func (d Direction) lineCell(line, pos int) Cell {
	switch d {
	case DirUp:
		return Cell{Row: pos, Col: line}
	case DirDown:
		return Cell{Row: BoardSize - 1 - pos, Col: line}
	case DirLeft:
		return Cell{Row: line, Col: pos}
	default:
		return Cell{Row: line, Col: BoardSize - 1 - pos}
	}
}
