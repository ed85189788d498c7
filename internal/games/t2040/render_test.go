package t2040

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2040/internal/core"
)

func TestRenderTooSmall(t *testing.T) {
	e, _, _ := newTestEngine(t, 1)
	dst := core.NewScreen(20, 8)
	e.Render(dst)
	if !strings.Contains(dst.String(), "Window too small") {
		t.Errorf("small screen:\n%s", dst.String())
	}
}

func TestRenderSplash(t *testing.T) {
	e, clk, _ := newTestEngine(t, 1)
	dst := core.NewScreen(80, 24)

	e.Render(dst)
	if strings.TrimSpace(dst.String()) != "" {
		t.Errorf("splash at level 0 drew:\n%s", dst.String())
	}

	step(e, clk, 120)
	e.Render(dst)
	if !strings.Contains(dst.String(), "e i g h t") {
		t.Errorf("bright splash missing logo:\n%s", dst.String())
	}
}

func TestRenderIdleOverlay(t *testing.T) {
	e, clk, _ := newTestEngine(t, 1)
	skipSplash(t, e, clk)

	dst := core.NewScreen(80, 24)
	e.Render(dst)
	if !strings.Contains(dst.String(), "Press Enter to start") {
		t.Errorf("idle screen:\n%s", dst.String())
	}
}

func TestRenderTileColors(t *testing.T) {
	e, clk, _ := newTestEngine(t, 1)
	startRound(t, e, clk)
	e.grid = GridOf(Board{{2, 0, 0, 128}})

	dst := core.NewScreen(80, 24)
	e.Render(dst)

	// Board is centered: x = (80-29)/2, first interior row y = 5.
	x := (80-boardW)/2 + 3*cellWidth + 1 + 1
	for i, r := range "128" {
		c := dst.GetCell(x+i, hudHeight+2)
		if c.Rune != r || c.Color != TileColor(128) {
			t.Errorf("cell %d = %q/%d, want %q/%d", i, c.Rune, c.Color, r, TileColor(128))
		}
	}
	if !strings.Contains(dst.String(), "Moves: 0") {
		t.Errorf("HUD missing moves:\n%s", dst.String())
	}
}

func TestRenderMovementInterpolated(t *testing.T) {
	e, clk, _ := newTestEngine(t, 1)
	startRound(t, e, clk)
	e.grid = GridOf(Board{{0, 0, 0, 8}})

	step(e, clk, 0, core.ActionLeft)
	step(e, clk, 18) // halfway across three cells

	dst := core.NewScreen(80, 24)
	e.Render(dst)

	row := []rune(dst.Row(hudHeight + 2))
	boardX := (80 - boardW) / 2
	start := boardX + 3*cellWidth + 1
	end := boardX + 1
	found := -1
	for x, r := range row {
		if r == '8' {
			found = x
		}
	}
	if found <= end+cellWidth || found >= start {
		t.Errorf("moving tile drawn at x=%d, want between cells (%d..%d)\n%s", found, end, start, dst.String())
	}
}

func TestRenderRoundOver(t *testing.T) {
	e, clk, _ := newTestEngine(t, 1)
	startRound(t, e, clk)
	e.grid = GridOf(Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	step(e, clk, 0, core.ActionUp)

	dst := core.NewScreen(80, 24)
	e.Render(dst)
	if !strings.Contains(dst.String(), "ROUND OVER") {
		t.Errorf("round over screen:\n%s", dst.String())
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	e, clk, _ := newTestEngine(t, 1)
	startRound(t, e, clk)
	e.grid = GridOf(Board{{0, 2, 2, 4}})
	step(e, clk, 0, core.ActionLeft)
	step(e, clk, 3)

	before := e.Snapshot()
	dst := core.NewScreen(80, 24)
	for range 3 {
		e.Render(dst)
	}
	if after := e.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("Render changed state:\n%+v\n%+v", before, after)
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value uint32
		want  core.Color
	}{
		{2, core.ColorWhite},
		{8, core.ColorOrange},
		{2048, core.ColorBlue},
		{4096, core.ColorBrightMagenta},
	}
	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.want {
			t.Errorf("TileColor(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
