package core

// State of the system that the learner observes
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
}

// An Action that the learner can take
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}

// ActionsFunc returns the actions available from a state.
// An empty slice is a valid terminal-like signal, not an error.
type ActionsFunc func(State) []Action

// PerceptFunc cleans a raw percept into a canonical state key
type PerceptFunc func(percept interface{}) State

// IdentityPercept treats the percept itself as the state
func IdentityPercept(percept interface{}) State {
	return percept.(State)
}
