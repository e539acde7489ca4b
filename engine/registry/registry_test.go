package registry

import (
	"sync"
	"testing"
)

func TestAddAssignsStableIDs(t *testing.T) {
	r := New[string]()
	a := r.Add("a")
	b := r.Add("b")
	if a != 1 || b != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", a, b)
	}
	r.DrainReady()
	if c := r.Add("c"); c != 3 {
		t.Fatalf("id after drain = %d, want 3", c)
	}
	snap := r.Snapshot()
	if len(snap) != 3 || snap[1].ID != b || snap[1].Value != "b" {
		t.Fatalf("Snapshot() = %+v", snap)
	}
}

func TestSnapshotOrderAndIsolation(t *testing.T) {
	r := New[int]()
	for i := range 5 {
		r.Add(i * 10)
	}
	snap := r.Snapshot()
	r.Add(99)
	if len(snap) != 5 {
		t.Fatalf("snapshot len = %d, want 5", len(snap))
	}
	for i, e := range snap {
		if e.Value != i*10 || e.ID != ID(i+1) {
			t.Fatalf("snap[%d] = %+v", i, e)
		}
	}
	if r.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", r.Len())
	}
}

func TestDrainReady(t *testing.T) {
	r := New[string]()
	r.Add("x")
	r.Add("y")
	ready := r.DrainReady()
	if len(ready) != 2 || ready[0].Value != "x" || ready[1].Value != "y" {
		t.Fatalf("DrainReady() = %+v", ready)
	}
	if again := r.DrainReady(); again != nil {
		t.Fatalf("second drain = %+v, want nil", again)
	}
	r.Add("z")
	if next := r.DrainReady(); len(next) != 1 || next[0].Value != "z" {
		t.Fatalf("drain after add = %+v", next)
	}
}

func TestConcurrentAdd(t *testing.T) {
	r := New[int]()
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				r.Add(g*100 + i)
			}
		}()
	}
	wg.Wait()
	if r.Len() != 400 {
		t.Fatalf("Len() = %d, want 400", r.Len())
	}
	seen := map[ID]bool{}
	for _, e := range r.DrainReady() {
		if seen[e.ID] {
			t.Fatalf("duplicate id %d", e.ID)
		}
		seen[e.ID] = true
	}
	if len(seen) != 400 {
		t.Fatalf("drained %d, want 400", len(seen))
	}
}
