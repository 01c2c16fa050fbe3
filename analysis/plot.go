package analysis

import (
	"path"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

type series struct {
	name string
	vals []float64
}

// Plot renders the recorded series as line charts, one png per series
// kind with one line per tracked learner.
func (p *PerformanceCounter) Plot(dir string) error {
	rewards := make([]series, 0)
	states := make([]series, 0)
	temps := make([]series, 0)
	for _, d := range p.DataSets() {
		knownStates := make([]float64, len(d.KnownStates))
		for i, v := range d.KnownStates {
			knownStates[i] = float64(v)
		}
		rewards = append(rewards, series{d.Name, d.AccumulatedRewards})
		states = append(states, series{d.Name, knownStates})
		temps = append(temps, series{d.Name, d.Temperatures})
	}

	if err := plotSeries(path.Join(dir, "accumulated_rewards.png"), "Accumulated rewards", rewards); err != nil {
		return err
	}
	if err := plotSeries(path.Join(dir, "known_states.png"), "Known states", states); err != nil {
		return err
	}
	return plotSeries(path.Join(dir, "temperatures.png"), "Temperatures", temps)
}

func plotSeries(file, title string, all []series) error {
	plt := plot.New()
	plt.Title.Text = title
	plt.X.Label.Text = "Trials"

	args := make([]interface{}, 0, 2*len(all))
	for _, s := range all {
		pts := make(plotter.XYs, len(s.vals))
		for i, v := range s.vals {
			pts[i].X = float64(i)
			pts[i].Y = v
		}
		args = append(args, s.name, pts)
	}
	if err := plotutil.AddLines(plt, args...); err != nil {
		return err
	}
	return plt.Save(8*vg.Inch, 4*vg.Inch, file)
}
