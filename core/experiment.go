package core

// Experiment pairs one learner with one environment. Learners own
// their tables, so comparative runs need one instance each.
type Experiment struct {
	Name        string
	Environment Environment
	Learner     Learner
}

// ParallelExperiment builds a fresh environment and learner per
// worker
type ParallelExperiment struct {
	Name        string
	Environment EnvironmentConstructor
	Learner     LearnerConstructor
}

type DataSet interface{}

type Analyzer interface {
	Analyze(episode int, trace *Trace)
	DataSet() DataSet
	Reset()
}

type AnalyzerConstructor interface {
	// new analyzer based on experiment name and run
	NewAnalyzer(string, int) Analyzer
}

type RunConfig struct {
	Episodes int
	Horizon  int
}

type Comparison struct {
	Experiments []*Experiment
	Analyzers   map[string]Analyzer
}

func NewComparison() *Comparison {
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		Analyzers:   make(map[string]Analyzer),
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) AddAnalysis(name string, a Analyzer) {
	c.Analyzers[name] = a
}

type ParallelComparison struct {
	Experiments []*ParallelExperiment
	Analyzers   map[string]AnalyzerConstructor
}

func NewParallelComparison() *ParallelComparison {
	return &ParallelComparison{
		Experiments: make([]*ParallelExperiment, 0),
		Analyzers:   make(map[string]AnalyzerConstructor),
	}
}

func (c *ParallelComparison) AddExperiment(e *ParallelExperiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *ParallelComparison) AddAnalysis(name string, a AnalyzerConstructor) {
	c.Analyzers[name] = a
}
