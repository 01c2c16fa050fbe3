package grid

import (
	"fmt"

	"github.com/zeu5/tabular-rl/core"
)

type Position struct {
	I int
	J int
}

var _ core.State = &Position{}

func (p *Position) Hash() string {
	return fmt.Sprintf("(%d, %d)", p.I, p.J)
}

func (p *Position) Eq(other Position) bool {
	return p.I == other.I && p.J == other.J
}

type Movement struct {
	Direction string
}

var _ core.Action = &Movement{}

func (m *Movement) Hash() string {
	return m.Direction
}

var (
	MovementUp    = &Movement{Direction: "Up"}
	MovementDown  = &Movement{Direction: "Down"}
	MovementLeft  = &Movement{Direction: "Left"}
	MovementRight = &Movement{Direction: "Right"}
)

// Environment is a bounded grid with a single terminal goal cell.
// Every non-goal move costs StepPenalty, reaching the goal pays
// GoalReward and ends the episode.
type Environment struct {
	Height      int
	Width       int
	Goal        Position
	GoalReward  float64
	StepPenalty float64

	curPos *Position
}

var _ core.Environment = &Environment{}

func NewEnvironment(height, width int) *Environment {
	return &Environment{
		Height:      height,
		Width:       width,
		Goal:        Position{I: height - 1, J: width - 1},
		GoalReward:  1,
		StepPenalty: -0.04,
		curPos:      &Position{I: 0, J: 0},
	}
}

func (g *Environment) Reset() core.State {
	g.curPos = &Position{I: 0, J: 0}
	return g.curPos
}

func (g *Environment) Step(a core.Action) (core.State, float64, bool) {
	movement := a.(*Movement)
	newPos := &Position{I: g.curPos.I, J: g.curPos.J}
	switch movement.Direction {
	case "Up":
		newPos.I = min(g.Height-1, g.curPos.I+1)
	case "Down":
		newPos.I = max(0, g.curPos.I-1)
	case "Left":
		newPos.J = max(0, g.curPos.J-1)
	case "Right":
		newPos.J = min(g.Width-1, g.curPos.J+1)
	}
	g.curPos = newPos
	if newPos.Eq(g.Goal) {
		return newPos, g.GoalReward, true
	}
	return newPos, g.StepPenalty, false
}

// Actions returns the collaborator listing the moves that stay on a
// height x width board, for core.LearnerConfig.Actions.
func Actions(height, width int) core.ActionsFunc {
	return func(s core.State) []core.Action {
		p := s.(*Position)
		out := make([]core.Action, 0, 4)
		if p.I < height-1 {
			out = append(out, MovementUp)
		}
		if p.I > 0 {
			out = append(out, MovementDown)
		}
		if p.J > 0 {
			out = append(out, MovementLeft)
		}
		if p.J < width-1 {
			out = append(out, MovementRight)
		}
		return out
	}
}

// Actions lists the moves that stay on the board
func (g *Environment) Actions(s core.State) []core.Action {
	return Actions(g.Height, g.Width)(s)
}

type Constructor struct {
	Height int
	Width  int
}

var _ core.EnvironmentConstructor = &Constructor{}

func NewConstructor(height, width int) *Constructor {
	return &Constructor{
		Height: height,
		Width:  width,
	}
}

func (c *Constructor) NewEnvironment(_ int) core.Environment {
	return NewEnvironment(c.Height, c.Width)
}
