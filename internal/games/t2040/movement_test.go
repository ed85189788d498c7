package t2040

import (
	"errors"
	"testing"
)

func slide(col, remaining int) Movement {
	return Movement{
		Start:      Cell{Row: 0, Col: col},
		End:        Cell{Row: 0, Col: 0},
		StartValue: 2,
		EndValue:   2,
		Distance:   remaining,
		Remaining:  remaining,
	}
}

func TestMovementPoolCapacity(t *testing.T) {
	p := NewMovementPool()
	if p.Free() != MovementCapacity {
		t.Fatalf("Free() = %d, want %d", p.Free(), MovementCapacity)
	}

	for i := range MovementCapacity {
		if _, err := p.Acquire(slide(1, 60)); err != nil {
			t.Fatalf("Acquire() #%d error = %v", i, err)
		}
	}
	if p.Len() != MovementCapacity || p.Free() != 0 {
		t.Fatalf("Len() = %d, Free() = %d; want %d, 0", p.Len(), p.Free(), MovementCapacity)
	}

	if _, err := p.Acquire(slide(1, 60)); !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("Acquire() on full pool error = %v, want ErrPoolExhausted", err)
	}

	p.Reset()
	if p.Len() != 0 || p.Free() != MovementCapacity {
		t.Errorf("after Reset Len() = %d, Free() = %d", p.Len(), p.Free())
	}
}

func TestMovementPoolRejectsInert(t *testing.T) {
	p := NewMovementPool()
	if _, err := p.Acquire(slide(1, 0)); err == nil {
		t.Error("Acquire() of a settled movement succeeded, want error")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestMovementPoolEachKeepsOrder(t *testing.T) {
	p := NewMovementPool()
	for col := 1; col <= 3; col++ {
		if _, err := p.Acquire(slide(col, col*10)); err != nil {
			t.Fatalf("Acquire() error = %v", err)
		}
	}

	// Settle the first movement; the others must keep their order.
	p.Each(func(m *Movement) {
		m.Remaining -= min(m.Remaining, 10)
	})
	if p.Len() != 2 || p.Free() != MovementCapacity-2 {
		t.Fatalf("Len() = %d, Free() = %d; want 2, %d", p.Len(), p.Free(), MovementCapacity-2)
	}

	got := p.Snapshot()
	if got[0].Start.Col != 2 || got[1].Start.Col != 3 {
		t.Errorf("order after release = %+v, want cols 2, 3", got)
	}

	// A released slot is reused and appended last.
	if _, err := p.Acquire(slide(1, 5)); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	got = p.Snapshot()
	if len(got) != 3 || got[2].Start.Col != 1 {
		t.Errorf("Snapshot() = %+v, want reused slot last", got)
	}
}

func TestMovementProgress(t *testing.T) {
	m := slide(2, 120)
	if m.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", m.Progress())
	}
	m.Remaining = 30
	if m.Progress() != 0.75 {
		t.Errorf("Progress() = %v, want 0.75", m.Progress())
	}
	m.Remaining = 0
	if m.Progress() != 1 || m.Live() {
		t.Errorf("settled movement Progress() = %v, Live() = %v", m.Progress(), m.Live())
	}
}
