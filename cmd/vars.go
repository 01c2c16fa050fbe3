package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flags    *Flags = DefaultFlags()
	savePath string
	seed     uint64

	numRuns     int
	episodes    int
	horizon     int
	parallelism int

	discount           float64
	initialTemperature float64
	temperatureAlpha   float64
	exploration        string
	optimisticReward   float64
	minVisits          int

	gridHeight int
	gridWidth  int
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Seed for the process-wide random source (0 leaves it unseeded)")

	cmd.PersistentFlags().IntVar(&numRuns, "num-runs", flags.NumRuns, "Number of runs")
	cmd.PersistentFlags().IntVar(&episodes, "episodes", flags.Episodes, "Number of episodes")
	cmd.PersistentFlags().IntVar(&horizon, "horizon", flags.Horizon, "Horizon")
	cmd.PersistentFlags().IntVar(&parallelism, "parallelism", flags.Parallelism, "Number of parallel workers (1 runs sequentially)")

	cmd.PersistentFlags().Float64Var(&discount, "discount", flags.Discount, "Discount factor")
	cmd.PersistentFlags().Float64Var(&initialTemperature, "initial-temperature", flags.InitialTemperature, "Initial temperature of the decay schedule")
	cmd.PersistentFlags().Float64Var(&temperatureAlpha, "temperature-alpha", flags.TemperatureAlpha, "Decay rate of the temperature schedule")
	cmd.PersistentFlags().StringVar(&exploration, "exploration", flags.Exploration, "Exploration strategy (softmax|optimistic)")
	cmd.PersistentFlags().Float64Var(&optimisticReward, "optimistic-reward", flags.OptimisticReward, "Utility assumed for under-visited actions")
	cmd.PersistentFlags().IntVar(&minVisits, "min-visits", flags.MinVisits, "Visits below which an action counts as under-visited")

	cmd.PersistentFlags().IntVar(&gridHeight, "grid-height", flags.Height, "Height of the gridworld")
	cmd.PersistentFlags().IntVar(&gridWidth, "grid-width", flags.Width, "Width of the gridworld")
}

func UpdateFlags() {
	flags.SavePath = savePath
	flags.Seed = seed

	flags.NumRuns = numRuns
	flags.Episodes = episodes
	flags.Horizon = horizon
	flags.Parallelism = parallelism

	flags.Discount = discount
	flags.InitialTemperature = initialTemperature
	flags.TemperatureAlpha = temperatureAlpha
	flags.Exploration = exploration
	flags.OptimisticReward = optimisticReward
	flags.MinVisits = minVisits

	flags.Height = gridHeight
	flags.Width = gridWidth
}
