package core

import (
	"path"
	"testing"
)

func TestQTableDefaults(t *testing.T) {
	q := NewQTable()
	if got := q.Get("s", "a"); got != 0 {
		t.Errorf("expected default utility 0, got %f", got)
	}
	if got := q.Max("s"); got != 0 {
		t.Errorf("expected max 0 for unvisited state, got %f", got)
	}
	if q.Size() != 0 {
		t.Errorf("reads should not create entries, size is %d", q.Size())
	}
}

func TestQTableSetAndOverwrite(t *testing.T) {
	q := NewQTable()
	q.Set("s", "a", 1.5)
	if got := q.Get("s", "a"); got != 1.5 {
		t.Errorf("expected 1.5, got %f", got)
	}
	q.Set("s", "a", -0.5)
	if got := q.Get("s", "a"); got != -0.5 {
		t.Errorf("expected overwrite to -0.5, got %f", got)
	}
	if q.Size() != 1 {
		t.Errorf("expected 1 state, got %d", q.Size())
	}
}

func TestQTableMax(t *testing.T) {
	q := NewQTable()
	q.Set("s", "a", 1.5)
	q.Set("s", "b", -2)
	if got := q.Max("s"); got != 1.5 {
		t.Errorf("expected max 1.5, got %f", got)
	}

	// all-negative rows must not report the zero default
	q.Set("n", "a", -3)
	q.Set("n", "b", -1)
	if got := q.Max("n"); got != -1 {
		t.Errorf("expected max -1, got %f", got)
	}
}

func TestQTableRecordLoad(t *testing.T) {
	q := NewQTable()
	q.Set("s1", "a", 1.5)
	q.Set("s1", "b", -2)
	q.Set("s2", "a", 0.25)

	file := path.Join(t.TempDir(), "qtable.jsonl")
	if err := q.Record(file); err != nil {
		t.Fatalf("error recording table: %v", err)
	}

	loaded := NewQTable()
	if err := loaded.Load(file); err != nil {
		t.Fatalf("error loading table: %v", err)
	}
	for _, state := range q.States() {
		for action, val := range q.Values(state) {
			if got := loaded.Get(state, action); got != val {
				t.Errorf("loaded Q[%s][%s] = %f, expected %f", state, action, got, val)
			}
		}
	}
	if loaded.Size() != q.Size() {
		t.Errorf("loaded %d states, expected %d", loaded.Size(), q.Size())
	}
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	if got := c.Get("s", "a"); got != 0 {
		t.Errorf("expected default count 0, got %d", got)
	}
	if c.Row("s") != nil {
		t.Errorf("reads should not create rows")
	}
	c.Incr("s", "a")
	c.Incr("s", "a")
	c.Incr("s", "b")
	if got := c.Get("s", "a"); got != 2 {
		t.Errorf("expected count 2, got %d", got)
	}
	if got := c.Row("s")["b"]; got != 1 {
		t.Errorf("expected count 1, got %d", got)
	}
}
