package core

// Environment drives a learner from the outside: Reset starts an
// episode, Step applies an action and returns the next percept with
// the observed reward. A true terminal flag closes the episode.
type Environment interface {
	Reset() State
	Step(Action) (State, float64, bool)
}

type EnvironmentConstructor interface {
	// NewEnvironment creates a new environment with the given instance number.
	NewEnvironment(int) Environment
}
