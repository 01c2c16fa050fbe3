package analysis

import (
	"github.com/zeu5/tabular-rl/core"
)

// CoverageDataSet tracks the growth of the explored state space, one
// entry per analyzed episode
type CoverageDataSet struct {
	Experiment   string `json:"experiment"`
	Run          int    `json:"run"`
	UniqueStates []int  `json:"unique_states"`
	TimeSteps    []int  `json:"time_steps"`
}

func (c *CoverageDataSet) Copy() *CoverageDataSet {
	out := &CoverageDataSet{
		Experiment:   c.Experiment,
		Run:          c.Run,
		UniqueStates: make([]int, len(c.UniqueStates)),
		TimeSteps:    make([]int, len(c.TimeSteps)),
	}
	copy(out.UniqueStates, c.UniqueStates)
	copy(out.TimeSteps, c.TimeSteps)
	return out
}

// CoverageAnalyzer counts the distinct states visited across the
// episodes of a run
type CoverageAnalyzer struct {
	seen      map[string]bool
	timeSteps int
	dataset   *CoverageDataSet
}

var _ core.Analyzer = &CoverageAnalyzer{}

func NewCoverageAnalyzer(experiment string, run int) *CoverageAnalyzer {
	return &CoverageAnalyzer{
		seen: make(map[string]bool),
		dataset: &CoverageDataSet{
			Experiment:   experiment,
			Run:          run,
			UniqueStates: make([]int, 0),
			TimeSteps:    make([]int, 0),
		},
	}
}

func (c *CoverageAnalyzer) Analyze(episode int, trace *core.Trace) {
	for i := 0; i < trace.Len(); i++ {
		step := trace.Step(i)
		c.seen[step.State.Hash()] = true
		c.seen[step.NextState.Hash()] = true
	}
	c.timeSteps += trace.Len()
	c.dataset.UniqueStates = append(c.dataset.UniqueStates, len(c.seen))
	c.dataset.TimeSteps = append(c.dataset.TimeSteps, c.timeSteps)
}

func (c *CoverageAnalyzer) DataSet() core.DataSet {
	return c.dataset.Copy()
}

func (c *CoverageAnalyzer) Reset() {
	c.seen = make(map[string]bool)
	c.timeSteps = 0
	c.dataset = &CoverageDataSet{
		Experiment:   c.dataset.Experiment,
		Run:          c.dataset.Run,
		UniqueStates: make([]int, 0),
		TimeSteps:    make([]int, 0),
	}
}

type CoverageAnalyzerConstructor struct {
}

var _ core.AnalyzerConstructor = &CoverageAnalyzerConstructor{}

func NewCoverageAnalyzerConstructor() *CoverageAnalyzerConstructor {
	return &CoverageAnalyzerConstructor{}
}

func (c *CoverageAnalyzerConstructor) NewAnalyzer(experiment string, run int) core.Analyzer {
	return NewCoverageAnalyzer(experiment, run)
}
