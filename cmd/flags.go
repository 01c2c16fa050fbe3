package cmd

import (
	"path"

	"github.com/zeu5/tabular-rl/util"
)

type Flags struct {
	RunFlags
	LearnerFlags
	GridFlags
	SavePath string
	Seed     uint64
}

type RunFlags struct {
	NumRuns     int
	Episodes    int
	Horizon     int
	Parallelism int
}

type LearnerFlags struct {
	Discount           float64
	InitialTemperature float64
	TemperatureAlpha   float64
	Exploration        string
	OptimisticReward   float64
	MinVisits          int
}

type GridFlags struct {
	Height int
	Width  int
}

func DefaultFlags() *Flags {
	return &Flags{
		RunFlags: RunFlags{
			NumRuns:     1,
			Episodes:    1000,
			Horizon:     100,
			Parallelism: 1,
		},
		LearnerFlags: LearnerFlags{
			Discount:           0.9,
			InitialTemperature: 100,
			TemperatureAlpha:   0.005,
			Exploration:        "softmax",
			OptimisticReward:   2,
			MinVisits:          5,
		},
		GridFlags: GridFlags{
			Height: 10,
			Width:  10,
		},
		SavePath: "results",
		Seed:     0,
	}
}

func (f *Flags) Record() {
	util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
