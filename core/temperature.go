package core

import "math"

// TemperatureFunc maps a non-negative trial count to a positive
// temperature. Schedules must be non-increasing in n with codomain
// (0, initial].
type TemperatureFunc func(n int) float64

// floor for schedules and softmax sharpness, keeps divisions away
// from zero
const temperatureFloor = 0.01

// NewExponentialDecay returns the schedule initial / exp(n * alpha).
// When exp(n * alpha) overflows the schedule saturates at 0.01
// instead of propagating the overflow.
func NewExponentialDecay(initial, alpha float64) TemperatureFunc {
	return func(n int) float64 {
		e := math.Exp(float64(n) * alpha)
		if math.IsInf(e, 1) {
			return temperatureFloor
		}
		return initial / e
	}
}
