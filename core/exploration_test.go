package core

import (
	"testing"

	erand "golang.org/x/exp/rand"
)

func TestAtLeastNTimesKeepsVisitedUtilities(t *testing.T) {
	explore := NewAtLeastNTimes(5, 2)
	actions := []Action{testAction("a"), testAction("b")}
	utilities := map[string]float64{"a": 10, "b": 0}
	visits := map[string]int{"a": 3, "b": 0}

	// b is under-visited and counts as 5, a keeps its higher utility
	if got := explore(actions, utilities, 1, visits); got.Hash() != "a" {
		t.Errorf("expected a, got %s", got.Hash())
	}

	// with a lower learned utility the optimistic floor wins
	utilities["a"] = 2
	if got := explore(actions, utilities, 1, visits); got.Hash() != "b" {
		t.Errorf("expected b, got %s", got.Hash())
	}
}

func TestAtLeastNTimesOverridesRegardlessOfValue(t *testing.T) {
	explore := NewAtLeastNTimes(1, 3)
	actions := []Action{testAction("a"), testAction("b")}
	// b has a huge recorded utility but is under-visited, so both
	// actions count as 1 and the tie goes to the first
	utilities := map[string]float64{"a": 1, "b": 100}
	visits := map[string]int{"a": 5, "b": 0}
	if got := explore(actions, utilities, 1, visits); got.Hash() != "a" {
		t.Errorf("expected a, got %s", got.Hash())
	}
}

func TestAtLeastNTimesTieBreak(t *testing.T) {
	explore := NewAtLeastNTimes(0, 0)
	actions := []Action{testAction("x"), testAction("y"), testAction("z")}
	// equal utilities resolve to the first listed action
	if got := explore(actions, nil, 1, nil); got.Hash() != "x" {
		t.Errorf("expected x, got %s", got.Hash())
	}
}

func TestSoftMaxReturnsMember(t *testing.T) {
	explore := NewSoftMax(erand.NewSource(42))
	actions := []Action{testAction("a"), testAction("b"), testAction("c")}
	utilities := map[string]float64{"a": 1, "b": 2, "c": 3}
	members := map[string]bool{"a": true, "b": true, "c": true}
	for i := 0; i < 1000; i++ {
		got := explore(actions, utilities, 0.5, nil)
		if got == nil || !members[got.Hash()] {
			t.Fatalf("selected action not in the candidate set: %v", got)
		}
	}
}

func TestSoftMaxUniformOnEqualUtilities(t *testing.T) {
	explore := NewSoftMax(erand.NewSource(42))
	actions := []Action{testAction("a"), testAction("b"), testAction("c"), testAction("d")}
	utilities := map[string]float64{"a": 2, "b": 2, "c": 2, "d": 2}

	trials := 8000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		counts[explore(actions, utilities, 1, nil).Hash()]++
	}
	for _, a := range actions {
		frac := float64(counts[a.Hash()]) / float64(trials)
		if frac < 0.15 || frac > 0.35 {
			t.Errorf("action %s drawn with frequency %f, expected close to 0.25", a.Hash(), frac)
		}
	}
}

func TestSoftMaxLowTemperatureSharpens(t *testing.T) {
	explore := NewSoftMax(erand.NewSource(7))
	actions := []Action{testAction("a"), testAction("b")}
	utilities := map[string]float64{"a": 0, "b": 1}

	// at the temperature floor the max-utility action dominates
	picked := 0
	for i := 0; i < 200; i++ {
		if explore(actions, utilities, 0, nil).Hash() == "b" {
			picked++
		}
	}
	if picked < 199 {
		t.Errorf("expected b to dominate at low temperature, got %d/200", picked)
	}
}

func TestSoftMaxHighTemperatureFlattens(t *testing.T) {
	explore := NewSoftMax(erand.NewSource(7))
	actions := []Action{testAction("a"), testAction("b")}
	utilities := map[string]float64{"a": 0, "b": 1}

	trials := 8000
	picked := 0
	for i := 0; i < trials; i++ {
		if explore(actions, utilities, 100, nil).Hash() == "b" {
			picked++
		}
	}
	frac := float64(picked) / float64(trials)
	if frac < 0.4 || frac > 0.6 {
		t.Errorf("expected near-uniform draws at high temperature, got fraction %f", frac)
	}
}
