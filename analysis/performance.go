package analysis

import (
	"path"

	"github.com/zeu5/tabular-rl/core"
	"github.com/zeu5/tabular-rl/util"
)

// PerformanceCounter records per-trial statistics for the learners it
// tracks: accumulated terminal rewards, number of known states and
// the temperature at the end of each trial.
//
// Tracking wraps the learner: the wrapper appends to the series on
// terminal rewards and then delegates to the original SetReward, so
// learning behavior is observed but never altered.
type PerformanceCounter struct {
	learners []*trackedLearner
}

func NewPerformanceCounter() *PerformanceCounter {
	return &PerformanceCounter{
		learners: make([]*trackedLearner, 0),
	}
}

// Track returns a learner that records statistics before delegating
// every call to l. Use the returned instance in place of l.
func (p *PerformanceCounter) Track(name string, l core.Learner) core.Learner {
	t := &trackedLearner{
		Learner: l,
		name:    name,
		dataset: newPerformanceDataSet(name),
	}
	p.learners = append(p.learners, t)
	return t
}

// PerformanceDataSet holds the trials-indexed series of one learner
type PerformanceDataSet struct {
	Name               string    `json:"name"`
	AccumulatedRewards []float64 `json:"accumulated_rewards"`
	KnownStates        []int     `json:"known_states"`
	Temperatures       []float64 `json:"temperatures"`
}

func newPerformanceDataSet(name string) *PerformanceDataSet {
	return &PerformanceDataSet{
		Name:               name,
		AccumulatedRewards: make([]float64, 0),
		KnownStates:        make([]int, 0),
		Temperatures:       make([]float64, 0),
	}
}

// DataSets returns the recorded series in tracking order
func (p *PerformanceCounter) DataSets() []*PerformanceDataSet {
	out := make([]*PerformanceDataSet, len(p.learners))
	for i, t := range p.learners {
		out[i] = t.dataset
	}
	return out
}

// SaveJson writes all recorded series to dir/performance.json
func (p *PerformanceCounter) SaveJson(dir string) error {
	return util.SaveJson(path.Join(dir, "performance.json"), p.DataSets())
}

type trackedLearner struct {
	core.Learner
	name    string
	dataset *PerformanceDataSet
}

var _ core.Learner = &trackedLearner{}

// SetReward records the trial statistics on terminal rewards, then
// delegates unchanged.
func (t *trackedLearner) SetReward(reward float64, terminal bool) {
	if terminal {
		d := t.dataset
		last := float64(0)
		if n := len(d.AccumulatedRewards); n > 0 {
			last = d.AccumulatedRewards[n-1]
		}
		d.AccumulatedRewards = append(d.AccumulatedRewards, last+reward)
		d.KnownStates = append(d.KnownStates, t.Learner.Q().Size())
		d.Temperatures = append(d.Temperatures, t.Learner.Temperature()(t.Learner.Trials()))
	}
	t.Learner.SetReward(reward, terminal)
}
