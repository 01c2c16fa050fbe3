package core

import (
	"math"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// ExplorationFunc selects one action among the candidates given the
// current utility estimates, a temperature and per-action visit
// counts. utilities and visits are keyed by Action.Hash() and default
// to zero for missing entries. Must be called with a non-empty
// action slice; empty-action handling belongs to the learner.
type ExplorationFunc func(actions []Action, utilities map[string]float64, temperature float64, visits map[string]int) Action

// NewAtLeastNTimes returns an optimistic exploration function: any
// action visited fewer than minN times counts as optimisticReward
// regardless of its learned utility, forcing under-visited actions to
// be tried. Ties go to the action listed first.
func NewAtLeastNTimes(optimisticReward float64, minN int) ExplorationFunc {
	return func(actions []Action, utilities map[string]float64, temperature float64, visits map[string]int) Action {
		best := actions[0]
		bestVal := math.Inf(-1)
		for _, a := range actions {
			val := utilities[a.Hash()]
			if visits[a.Hash()] < minN {
				val = optimisticReward
			}
			if val > bestVal {
				best = a
				bestVal = val
			}
		}
		return best
	}
}

// NewSoftMax returns a Boltzmann exploration function. Utilities are
// min-max normalized to [0,1], sharpened by the temperature and
// turned into a probability distribution; one action is sampled from
// it. Lower temperatures concentrate the distribution on the
// max-utility action, higher temperatures flatten it.
//
// When all utilities are equal an action is chosen uniformly at
// random. The temperature is floored at 0.01.
//
// A nil src uses the package-level source of golang.org/x/exp/rand;
// seed it before constructing learners for reproducible runs.
func NewSoftMax(src erand.Source) ExplorationFunc {
	var rnd *erand.Rand
	if src != nil {
		rnd = erand.New(src)
	}
	return func(actions []Action, utilities map[string]float64, temperature float64, visits map[string]int) Action {
		if temperature < temperatureFloor {
			temperature = temperatureFloor
		}

		vals := make([]float64, len(actions))
		lo, hi := math.Inf(1), math.Inf(-1)
		for i, a := range actions {
			v := utilities[a.Hash()]
			vals[i] = v
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}

		if lo == hi {
			// Degenerate range, every action is equally good
			if rnd != nil {
				return actions[rnd.Intn(len(actions))]
			}
			return actions[erand.Intn(len(actions))]
		}

		sum := float64(0)
		weights := make([]float64, len(actions))
		for i, v := range vals {
			e := math.Exp(((v - lo) / (hi - lo)) / temperature)
			weights[i] = e
			sum += e
		}
		for i := range weights {
			weights[i] = weights[i] / sum
		}
		// using the sampleuv library to sample based on the weights
		i, ok := sampleuv.NewWeighted(weights, src).Take()
		if !ok {
			return actions[0]
		}
		return actions[i]
	}
}
