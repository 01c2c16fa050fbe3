package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/spf13/cobra"
	erand "golang.org/x/exp/rand"

	"github.com/zeu5/tabular-rl/analysis"
	"github.com/zeu5/tabular-rl/core"
	"github.com/zeu5/tabular-rl/envs/grid"
	"github.com/zeu5/tabular-rl/util"
)

func GridCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Compare TD and SARSA learners on a gridworld",
		Run: func(cmd *cobra.Command, args []string) {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt) // channel for interrupts from os

			doneCh := make(chan struct{}) // channel for done signal from application

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				select {
				case <-sigCh:
				case <-doneCh:
				}
				cancel()
			}()

			if flags.Seed != 0 {
				erand.Seed(flags.Seed)
			}

			if flags.Parallelism > 1 {
				runGridParallel(ctx)
				close(doneCh)
				return
			}

			counter := analysis.NewPerformanceCounter()
			cmp := core.NewComparison()

			tdEnv := grid.NewEnvironment(flags.Height, flags.Width)
			tdLearner := core.NewTDLearner(learnerConfig())
			cmp.AddExperiment(&core.Experiment{
				Name:        "td",
				Environment: tdEnv,
				Learner:     counter.Track("td", tdLearner),
			})

			sarsaEnv := grid.NewEnvironment(flags.Height, flags.Width)
			sarsaLearner := core.NewSARSALearner(learnerConfig())
			cmp.AddExperiment(&core.Experiment{
				Name:        "sarsa",
				Environment: sarsaEnv,
				Learner:     counter.Track("sarsa", sarsaLearner),
			})

			cmp.AddAnalysis("coverage", analysis.NewCoverageAnalyzer("grid", 0))

			results := cmp.Run(ctx, &core.RunConfig{
				Episodes: flags.Episodes,
				Horizon:  flags.Horizon,
			})
			close(doneCh)

			if err := counter.SaveJson(flags.SavePath); err != nil {
				fmt.Println(err)
			}
			if err := counter.Plot(flags.SavePath); err != nil {
				fmt.Println(err)
			}
			if err := tdLearner.Q().Record(path.Join(flags.SavePath, "td_qtable.jsonl")); err != nil {
				fmt.Println(err)
			}
			if err := sarsaLearner.Q().Record(path.Join(flags.SavePath, "sarsa_qtable.jsonl")); err != nil {
				fmt.Println(err)
			}
			for name, result := range results {
				if result.IsError() {
					fmt.Printf("Experiment %s: %v\n", name, result.Error)
					continue
				}
				util.SaveJson(path.Join(flags.SavePath, name+"_coverage.json"), result.Datasets["coverage"])
			}
		},
	}

	return cmd
}

// runGridParallel repeats the comparison over independent runs with
// fresh environments and learners per run.
func runGridParallel(ctx context.Context) {
	cmp := core.NewParallelComparison()
	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "td",
		Environment: grid.NewConstructor(flags.Height, flags.Width),
		Learner: core.LearnerConstructorFunc(func() core.Learner {
			return core.NewTDLearner(learnerConfig())
		}),
	})
	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "sarsa",
		Environment: grid.NewConstructor(flags.Height, flags.Width),
		Learner: core.LearnerConstructorFunc(func() core.Learner {
			return core.NewSARSALearner(learnerConfig())
		}),
	})
	cmp.AddAnalysis("coverage", analysis.NewCoverageAnalyzerConstructor())

	results := cmp.Run(ctx, flags.NumRuns, &core.RunConfig{
		Episodes: flags.Episodes,
		Horizon:  flags.Horizon,
	}, flags.Parallelism)

	for name, runResults := range results {
		datasets := make([]core.DataSet, 0, len(runResults))
		for _, result := range runResults {
			if result.IsError() {
				fmt.Printf("Experiment %s: %v\n", name, result.Error)
				continue
			}
			datasets = append(datasets, result.Datasets["coverage"])
		}
		util.SaveJson(path.Join(flags.SavePath, name+"_coverage.json"), datasets)
	}
}

func learnerConfig() core.LearnerConfig {
	var exploration core.ExplorationFunc
	switch flags.Exploration {
	case "optimistic":
		exploration = core.NewAtLeastNTimes(flags.OptimisticReward, flags.MinVisits)
	default:
		exploration = core.NewSoftMax(nil)
	}
	return core.LearnerConfig{
		Exploration: exploration,
		Discount:    flags.Discount,
		Temperature: core.NewExponentialDecay(flags.InitialTemperature, flags.TemperatureAlpha),
		Actions:     grid.Actions(flags.Height, flags.Width),
	}
}
