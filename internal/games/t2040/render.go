package t2040

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2040/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
	footHeight = 1

	boardW = BoardSize*cellWidth + 1
	boardH = BoardSize*cellHeight + 1

	// MinScreenW and MinScreenH are the smallest screen the board fits on.
	MinScreenW = boardW + 2
	MinScreenH = hudHeight + 1 + boardH + footHeight
)

var logo = []string{
	"┏━┓ ┏━┓ ╻ ╻ ┏━┓",
	"┏━┛ ┃┃┃ ┗━┫ ┃┃┃",
	"┗━╸ ┗━┛   ╹ ┗━┛",
}

// tileColors maps tile values to display colors. Larger values share the last color.
var tileColors = []struct {
	value uint32
	color core.Color
}{
	{2, core.ColorWhite},
	{4, core.ColorBrightWhite},
	{8, core.ColorOrange},
	{16, core.ColorBrightRed},
	{32, core.ColorRed},
	{64, core.ColorBrightYellow},
	{128, core.ColorYellow},
	{256, core.ColorGreen},
	{512, core.ColorCyan},
	{1024, core.ColorBrightCyan},
	{2048, core.ColorBlue},
}

// TileColor returns the color a tile of the given value is drawn with.
func TileColor(v uint32) core.Color {
	for _, tc := range tileColors {
		if v <= tc.value {
			return tc.color
		}
	}
	return core.ColorBrightMagenta
}

// Render draws the current state into dst. It does not mutate the engine.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	snap := e.Snapshot()
	if snap.Session == StateSplash {
		renderSplash(dst, snap.Splash)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	renderHUD(dst, snap, boardX)
	renderGrid(dst, boardX, boardY)
	renderTiles(dst, snap, boardX, boardY)
	renderOverlays(dst, snap, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
}

func renderSplash(dst *core.Screen, brightness float64) {
	switch {
	case brightness <= 0:
		return
	case brightness < 0.34:
		dst.SetPen(core.ColorDarkGray)
	case brightness < 0.67:
		dst.SetPen(core.ColorGray)
	default:
		dst.SetPen(core.ColorBrightWhite)
	}

	top := (dst.Height() - len(logo) - 2) / 2
	for i, line := range logo {
		dst.DrawTextCentered(top+i, line)
	}
	dst.DrawTextCentered(top+len(logo)+1, "e i g h t")
	dst.SetPen(core.ColorDefault)
}

func renderHUD(dst *core.Screen, snap Snapshot, boardX int) {
	dst.SetPen(core.ColorBrightWhite)
	dst.DrawTextCentered(0, "2040")

	dst.SetPen(core.ColorDefault)
	dst.DrawText(boardX, 1, fmt.Sprintf("Best: %d", snap.Largest))

	moves := fmt.Sprintf("Moves: %d", snap.Moves)
	dst.DrawText(boardX+boardW-len(moves), 1, moves)
}

// renderGrid draws the 4x4 cell borders.
func renderGrid(dst *core.Screen, boardX, boardY int) {
	dst.SetPen(core.ColorDarkGray)
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}
	dst.SetPen(core.ColorDefault)
}

// cellOrigin returns the top-left interior position of a cell.
func cellOrigin(c Cell, boardX, boardY int) (int, int) {
	return boardX + c.Col*cellWidth + 1, boardY + c.Row*cellHeight + 1
}

// drawValue centers a tile value in the cell interior starting at (x, y).
func drawValue(dst *core.Screen, x, y int, v uint32) {
	s := strconv.FormatUint(uint64(v), 10)
	pad := max((cellWidth-1-len(s))/2, 0)
	dst.SetPen(TileColor(v))
	dst.DrawText(x+pad, y, s)
	dst.SetPen(core.ColorDefault)
}

// renderTiles draws settled tiles, then the appearing tile, then the tiles
// in flight on top.
func renderTiles(dst *core.Screen, snap Snapshot, boardX, boardY int) {
	for row := range BoardSize {
		for col := range BoardSize {
			v := snap.Board[row][col]
			if v == 0 {
				continue
			}
			x, y := cellOrigin(Cell{Row: row, Col: col}, boardX, boardY)
			drawValue(dst, x, y, v)
		}
	}

	if snap.Spawn.Pending() {
		renderSpawn(dst, snap.Spawn, boardX, boardY)
	}

	for _, m := range snap.Movements {
		sx, sy := cellOrigin(m.Start, boardX, boardY)
		ex, ey := cellOrigin(m.End, boardX, boardY)
		t := m.Progress()
		x, y := core.Lerp(sx, ex, t), core.Lerp(sy, ey, t)
		// Clear the interior first so the tile does not mix with grid lines.
		dst.DrawRect(core.NewRect(x, y, cellWidth-1, 1), ' ')
		drawValue(dst, x, y, m.StartValue)
	}
}

// renderSpawn grows the new tile from a dot to its value.
func renderSpawn(dst *core.Screen, s Spawn, boardX, boardY int) {
	x, y := cellOrigin(s.Cell, boardX, boardY)
	cx := x + (cellWidth-1)/2
	switch {
	case s.Progress < 34:
		dst.SetPen(core.ColorDarkGray)
		dst.Set(cx, y, '·')
	case s.Progress < 67:
		dst.SetPen(core.ColorGray)
		dst.Set(cx, y, '•')
	default:
		drawValue(dst, x, y, s.Value)
	}
	dst.SetPen(core.ColorDefault)
}

func renderOverlays(dst *core.Screen, snap Snapshot, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case snap.Session == StateIdle:
		drawOverlay(dst, centerX, centerY, "2040", "Press Enter to start")
	case snap.Round == RoundBoardFull, snap.Round == RoundNoMoves:
		drawOverlay(dst, centerX, centerY,
			"ROUND OVER",
			fmt.Sprintf("Largest tile: %d", snap.MaxTile),
			"Enter: again  Esc: leave")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len([]rune(line))/2, box.Y+1+i, line)
	}
}
