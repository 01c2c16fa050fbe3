package core

// Learner runs one step of the agent/environment interaction loop:
// pick an action for the current percept and fold the previously
// observed reward into the value table (deferred one-step update).
type Learner interface {
	// Step derives the state from the percept, updates the table for
	// the previous transition and returns the next action. A nil
	// action means the state has nothing left to choose.
	Step(percept interface{}) Action
	// SetReward records the reward observed after the last action.
	// Terminal rewards close the trial: the pair that led here keeps
	// the raw reward as an absorbing estimate, with no bootstrapping
	// and no learning-rate blending.
	SetReward(reward float64, terminal bool)

	// read-only accessors for external instrumentation
	Q() *QTable
	Trials() int
	Discount() float64
	Temperature() TemperatureFunc
}

type LearnerConfig struct {
	// Exploration picks the next action from the candidates
	Exploration ExplorationFunc
	// Discount factor of future value, in (0, 1]
	Discount float64
	// Temperature drives both the learning rate and softmax
	// exploration, decaying over trials
	Temperature TemperatureFunc
	// Actions is the environment collaborator listing the choices
	// available from a state
	Actions ActionsFunc
	// Percept cleans raw percepts into state keys. Defaults to the
	// identity (percepts must already be States)
	Percept PerceptFunc
	// Q optionally seeds the value table
	Q *QTable
}

// updateRule folds one observed transition into the value table.
// Concrete learners differ only in the bootstrap target.
type updateRule func(s State, a Action, reward float64, next State, nextAction Action)

type learner struct {
	q           *QTable
	counter     *Counter
	exploration ExplorationFunc
	discount    float64
	temperature TemperatureFunc
	actions     ActionsFunc
	percept     PerceptFunc

	update updateRule

	lastState  State
	lastAction Action
	lastReward float64
	trials     int
}

func newLearner(cfg LearnerConfig) *learner {
	q := cfg.Q
	if q == nil {
		q = NewQTable()
	}
	percept := cfg.Percept
	if percept == nil {
		percept = IdentityPercept
	}
	return &learner{
		q:           q,
		counter:     NewCounter(),
		exploration: cfg.Exploration,
		discount:    cfg.Discount,
		temperature: cfg.Temperature,
		actions:     cfg.Actions,
		percept:     percept,
	}
}

func (l *learner) Q() *QTable { return l.q }

func (l *learner) Trials() int { return l.trials }

func (l *learner) Discount() float64 { return l.discount }

func (l *learner) Temperature() TemperatureFunc { return l.temperature }

func (l *learner) SetReward(reward float64, terminal bool) {
	l.lastReward = reward
	if terminal {
		l.trials += 1
		if l.lastState != nil && l.lastAction != nil {
			l.q.Set(l.lastState.Hash(), l.lastAction.Hash(), reward)
		}
	}
}

// Note: a terminal reward does not clear lastState/lastAction. The
// first Step of the next episode still applies one update for the
// pre-terminal pair before advancing. Drivers that want a clean
// episode boundary construct a fresh learner instead.
func (l *learner) Step(percept interface{}) Action {
	if l.update == nil {
		panic("learner: update rule not set, construct via NewTDLearner or NewSARSALearner")
	}

	s := l.lastState
	a := l.lastAction

	state := l.percept(percept)
	actions := l.actions(state)

	var current Action
	if len(actions) > 0 {
		current = l.exploration(
			actions,
			l.q.Values(state.Hash()),
			l.temperature(l.trials),
			l.counter.Row(state.Hash()),
		)
	}

	if s != nil && a != nil {
		l.counter.Incr(s.Hash(), a.Hash())
		l.update(s, a, l.lastReward, state, current)
	}

	l.lastState = state
	l.lastAction = current
	return current
}

// learningRate caps the schedule at 1 so updates never overshoot the
// TD target
func (l *learner) learningRate(n int) float64 {
	lr := l.temperature(n)
	if lr > 1 {
		return 1
	}
	return lr
}

// TDLearner is the off-policy variant: it bootstraps from the best
// value recorded at the successor state regardless of which action
// the policy takes there (Q-learning).
type TDLearner struct {
	*learner
}

var _ Learner = &TDLearner{}

func NewTDLearner(cfg LearnerConfig) *TDLearner {
	l := &TDLearner{learner: newLearner(cfg)}
	l.update = l.updateRule
	return l
}

func (l *TDLearner) updateRule(s State, a Action, reward float64, next State, _ Action) {
	sh, ah := s.Hash(), a.Hash()
	lr := l.learningRate(l.counter.Get(sh, ah))
	cur := l.q.Get(sh, ah)
	l.q.Set(sh, ah, cur+lr*(reward+l.discount*l.q.Max(next.Hash())-cur))
}

// SARSALearner is the on-policy variant: it bootstraps from the value
// of the action actually selected at the successor state.
type SARSALearner struct {
	*learner
}

var _ Learner = &SARSALearner{}

func NewSARSALearner(cfg LearnerConfig) *SARSALearner {
	l := &SARSALearner{learner: newLearner(cfg)}
	l.update = l.updateRule
	return l
}

func (l *SARSALearner) updateRule(s State, a Action, reward float64, next State, nextAction Action) {
	sh, ah := s.Hash(), a.Hash()
	lr := l.learningRate(l.counter.Get(sh, ah))
	cur := l.q.Get(sh, ah)
	target := float64(0)
	if nextAction != nil {
		target = l.q.Get(next.Hash(), nextAction.Hash())
	}
	l.q.Set(sh, ah, cur+lr*(reward+l.discount*target-cur))
}

// LearnerConstructor builds independent learner instances, one per
// parallel worker. Learners never share tables.
type LearnerConstructor interface {
	NewLearner() Learner
}

// LearnerConstructorFunc adapts a closure to a LearnerConstructor
type LearnerConstructorFunc func() Learner

func (f LearnerConstructorFunc) NewLearner() Learner {
	return f()
}
