package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/gosuri/uilive"
)

var ErrRunCancelled = errors.New("run cancelled")

type experimentRunContext struct {
	run       int
	ctx       context.Context
	analyzers map[string]Analyzer

	writer io.Writer

	*RunConfig
}

type ExperimentResult struct {
	CompletedEpisodes int
	TotalTimeSteps    int

	Error    error
	Datasets map[string]DataSet
}

func (r *ExperimentResult) IsError() bool {
	return r.Error != nil
}

// runEpisode drives the learner against the environment for one
// episode: the learner picks an action for the current percept, the
// environment applies it and the resulting reward is handed back
// before the next pick. Stops on the horizon, a terminal reward or a
// state with no actions.
func (e *Experiment) runEpisode(horizon int) *Trace {
	trace := NewTrace()
	state := e.Environment.Reset()
	for step := 0; step < horizon; step++ {
		action := e.Learner.Step(state)
		if action == nil {
			break
		}
		next, reward, terminal := e.Environment.Step(action)
		e.Learner.SetReward(reward, terminal)
		trace.AddStep(&Step{
			State:     state,
			Action:    action,
			NextState: next,
			Reward:    reward,
			Terminal:  terminal,
		})
		if terminal {
			break
		}
		state = next
	}
	return trace
}

func (e *Experiment) run(ctx *experimentRunContext) *ExperimentResult {
	result := &ExperimentResult{
		Datasets: make(map[string]DataSet),
	}

EpisodeLoop:
	for episode := 0; episode < ctx.Episodes; episode++ {
		select {
		case <-ctx.ctx.Done():
			result.Error = ErrRunCancelled
			break EpisodeLoop
		default:
		}

		fmt.Fprintf(
			ctx.writer,
			"Experiment: %s, Run %d, Episode %d/%d, Trials: %d, States: %d\n",
			e.Name, ctx.run, episode, ctx.Episodes, e.Learner.Trials(), e.Learner.Q().Size(),
		)
		trace := e.runEpisode(ctx.Horizon)
		result.TotalTimeSteps += trace.Len()
		result.CompletedEpisodes++

		for _, a := range ctx.analyzers {
			a.Analyze(episode, trace)
		}
	}

	for name, a := range ctx.analyzers {
		result.Datasets[name] = a.DataSet()
	}
	return result
}

// Run the experiments one after the other, sharing the analyzers
// (reset before each experiment) and collecting one result per
// experiment name.
func (c *Comparison) Run(ctx context.Context, rConfig *RunConfig) map[string]*ExperimentResult {
	writer := uilive.New()
	writer.Start()
	defer writer.Stop()

	results := make(map[string]*ExperimentResult)
	for _, e := range c.Experiments {
		select {
		case <-ctx.Done():
			return results
		default:
		}

		eCtx := &experimentRunContext{
			ctx:       ctx,
			analyzers: make(map[string]Analyzer),
			writer:    writer.Newline(),
			RunConfig: rConfig,
		}
		for name, a := range c.Analyzers {
			a.Reset()
			eCtx.analyzers[name] = a
		}

		results[e.Name] = e.run(eCtx)
	}
	return results
}

// parallelWorker is a worker that runs experiments
type parallelWorker struct {
	id int
}

// parallelWork is a struct that contains all the information needed to run an experiment
type parallelWork struct {
	experiment *ParallelExperiment
	comp       *ParallelComparison
	runNumber  int
	writer     io.Writer
	rConfig    *RunConfig
	wg         *sync.WaitGroup
}

// parallelResult is a struct that contains the result of running an experiment
type parallelResult struct {
	experimentName string
	run            int
	result         *ExperimentResult
}

// Worker main loop that consumes work from a channel
func (w *parallelWorker) run(ctx context.Context, workCh <-chan *parallelWork, resultsCh chan<- *parallelResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case work, more := <-workCh:
			if !more {
				return
			}
			result := w.runWork(ctx, work)
			resultsCh <- result
		}
	}
}

// Run an experiment by constructing the experiment context, *Experiment
func (w *parallelWorker) runWork(ctx context.Context, work *parallelWork) *parallelResult {
	eCtx := &experimentRunContext{
		run:       work.runNumber,
		ctx:       ctx,
		analyzers: make(map[string]Analyzer),
		writer:    work.writer,
		RunConfig: work.rConfig,
	}

	for name, aC := range work.comp.Analyzers {
		eCtx.analyzers[name] = aC.NewAnalyzer(work.experiment.Name, work.runNumber)
	}

	// Construct the experiment with a fresh environment and learner
	exp := &Experiment{
		Name:        work.experiment.Name,
		Environment: work.experiment.Environment.NewEnvironment(w.id),
		Learner:     work.experiment.Learner.NewLearner(),
	}

	// Run the experiment
	result := exp.run(eCtx)
	work.wg.Done()

	return &parallelResult{
		experimentName: work.experiment.Name,
		run:            work.runNumber,
		result:         result,
	}
}

// Run each experiment of the comparison on a pool of workers. Every
// worker gets its own learner and environment instance, tables are
// never shared.
func (c *ParallelComparison) Run(ctx context.Context, runs int, rConfig *RunConfig, parallelism int) map[string][]*ExperimentResult {
	results := make(map[string][]*ExperimentResult)
	for run := 0; run < runs; run++ {
		select {
		case <-ctx.Done():
			return results
		default:
		}
		// Create workers and channels
		wg := new(sync.WaitGroup)
		writer := uilive.New()
		writer.Start()
		fmt.Fprintf(writer, "Run %d\n", run)

		workCh := make(chan *parallelWork, parallelism)
		resultsCh := make(chan *parallelResult, parallelism)

		// Start workers
		workers := make([]*parallelWorker, parallelism)
		for i := 0; i < parallelism; i++ {
			workers[i] = &parallelWorker{id: i}
			go workers[i].run(ctx, workCh, resultsCh)
		}

		// Gather results
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				select {
				case <-ctx.Done():
					return
				case result, more := <-resultsCh:
					if !more {
						return
					}
					results[result.experimentName] = append(results[result.experimentName], result.result)
				}
			}
		}()

		// Run experiments by sending work to workers
		for _, e := range c.Experiments {
			wg.Add(1)
			select {
			case <-ctx.Done():
				return results
			case workCh <- &parallelWork{
				experiment: e,
				comp:       c,
				runNumber:  run,
				rConfig:    rConfig,
				wg:         wg,
				writer:     writer.Newline(),
			}:
			}
		}

		// Wait for all work to finish
		wg.Wait()
		close(resultsCh)
		close(workCh)
		<-done
		writer.Stop()
	}
	return results
}
