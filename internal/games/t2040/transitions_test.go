package t2040

import (
	"slices"
	"testing"
)

func TestTransitionConvergence(t *testing.T) {
	for _, ticks := range []int{1, 3, 7, 12, 50} {
		g := GridOf(Board{{0, 0, 0, 2}})
		q := NewTransitionQueue(5)
		r := MergeResolver{CellSpan: 60}
		if _, err := r.Apply(DirLeft, &g, q); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}

		prev := q.Movements()[0].Remaining
		commits := 0
		for q.Live() > 0 {
			before := g.ValueAt(0, 0)
			q.Advance(ticks, &g)
			if before == 0 && g.ValueAt(0, 0) != 0 {
				commits++
			}

			ms := q.Movements()
			if len(ms) == 0 {
				break
			}
			if ms[0].Remaining >= prev || ms[0].Remaining < 0 {
				t.Fatalf("ticks=%d: remaining %d -> %d, want strictly decreasing and non-negative", ticks, prev, ms[0].Remaining)
			}
			prev = ms[0].Remaining
		}

		if commits != 1 {
			t.Errorf("ticks=%d: %d commits, want 1", ticks, commits)
		}

		// A settled queue never commits again.
		g.Commit(0, 0, 0)
		q.Advance(ticks, &g)
		if g.ValueAt(0, 0) != 0 {
			t.Errorf("ticks=%d: settled movement committed twice", ticks)
		}
	}
}

func TestTransitionZeroTicks(t *testing.T) {
	g := GridOf(Board{{0, 2}})
	q := NewTransitionQueue(5)
	if err := q.Push(Movement{Start: Cell{0, 1}, End: Cell{0, 0}, StartValue: 2, EndValue: 2, Distance: 60, Remaining: 60}); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	q.Advance(0, &g)
	if got := q.Movements()[0].Remaining; got != 60 {
		t.Errorf("Remaining after zero ticks = %d, want 60", got)
	}
}

func TestTransitionRecords(t *testing.T) {
	g := GridOf(Board{{2, 2, 4, 4}})
	q := NewTransitionQueue(5)
	r := MergeResolver{CellSpan: 60}
	if _, err := r.Apply(DirLeft, &g, q); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	var records []uint32
	for q.Live() > 0 {
		records = append(records, q.Advance(12, &g)...)
	}

	if want := []uint32{}; !slices.Equal(records, want) {
		t.Errorf("records = %v, want none (4 was already on the board)", records)
	}
	if got := g.Board()[0]; got != [4]uint32{4, 4, 4, 0} {
		t.Errorf("row = %v, want [4 4 4 0]", got)
	}

	g = GridOf(Board{{8, 8}})
	if _, err := r.Apply(DirLeft, &g, q); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	records = records[:0]
	for q.Live() > 0 {
		records = append(records, q.Advance(12, &g)...)
	}
	if want := []uint32{16}; !slices.Equal(records, want) {
		t.Errorf("records = %v, want %v", records, want)
	}
	if g.Largest() != 16 {
		t.Errorf("Largest() = %d, want 16", g.Largest())
	}
}

func TestTransitionSameTickCommitOrder(t *testing.T) {
	// Both movements end in (0,0); the merge must win even if they settle
	// in the same tick.
	g := GridOf(Board{{0, 0, 2, 2}})
	q := NewTransitionQueue(5)
	r := MergeResolver{CellSpan: 60}
	if _, err := r.Apply(DirLeft, &g, q); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	q.Advance(1000, &g)
	if q.Live() != 0 {
		t.Fatalf("Live() = %d, want 0", q.Live())
	}
	if got := g.ValueAt(0, 0); got != 4 {
		t.Errorf("ValueAt(0,0) = %d, want 4", got)
	}
}
