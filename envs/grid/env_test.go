package grid

import "testing"

func TestActionsAtEdges(t *testing.T) {
	g := NewEnvironment(3, 3)

	origin := g.Actions(&Position{I: 0, J: 0})
	if len(origin) != 2 {
		t.Errorf("expected 2 actions at the origin, got %d", len(origin))
	}
	seen := make(map[string]bool)
	for _, a := range origin {
		seen[a.Hash()] = true
	}
	if !seen["Up"] || !seen["Right"] {
		t.Errorf("expected Up and Right at the origin, got %v", seen)
	}

	center := g.Actions(&Position{I: 1, J: 1})
	if len(center) != 4 {
		t.Errorf("expected 4 actions at the center, got %d", len(center))
	}

	corner := g.Actions(&Position{I: 2, J: 2})
	if len(corner) != 2 {
		t.Errorf("expected 2 actions at the far corner, got %d", len(corner))
	}
}

func TestStepMoves(t *testing.T) {
	g := NewEnvironment(3, 3)
	g.Reset()

	state, reward, terminal := g.Step(MovementUp)
	pos := state.(*Position)
	if !pos.Eq(Position{I: 1, J: 0}) {
		t.Errorf("expected (1, 0), got %s", pos.Hash())
	}
	if reward != g.StepPenalty || terminal {
		t.Errorf("expected a non-terminal step penalty, got %f terminal=%v", reward, terminal)
	}

	state, _, _ = g.Step(MovementDown)
	state, _, _ = g.Step(MovementDown) // clamped at the bottom edge
	if pos := state.(*Position); !pos.Eq(Position{I: 0, J: 0}) {
		t.Errorf("expected clamping at (0, 0), got %s", pos.Hash())
	}
}

func TestGoalIsTerminal(t *testing.T) {
	g := NewEnvironment(2, 2)
	g.Reset()

	_, reward, terminal := g.Step(MovementUp)
	if terminal {
		t.Fatalf("reached the goal too early")
	}
	if reward != g.StepPenalty {
		t.Errorf("expected step penalty, got %f", reward)
	}

	state, reward, terminal := g.Step(MovementRight)
	if !terminal {
		t.Fatalf("expected the goal to be terminal")
	}
	if reward != g.GoalReward {
		t.Errorf("expected goal reward %f, got %f", g.GoalReward, reward)
	}
	if pos := state.(*Position); !pos.Eq(g.Goal) {
		t.Errorf("expected the goal position, got %s", pos.Hash())
	}
}

func TestResetReturnsOrigin(t *testing.T) {
	g := NewEnvironment(3, 3)
	g.Step(MovementUp)
	state := g.Reset()
	if pos := state.(*Position); !pos.Eq(Position{I: 0, J: 0}) {
		t.Errorf("expected reset to the origin, got %s", pos.Hash())
	}
}

func TestConstructor(t *testing.T) {
	env := NewConstructor(4, 5).NewEnvironment(0).(*Environment)
	if env.Height != 4 || env.Width != 5 {
		t.Errorf("expected a 4x5 grid, got %dx%d", env.Height, env.Width)
	}
	if !env.Goal.Eq(Position{I: 3, J: 4}) {
		t.Errorf("expected the goal at the far corner, got %s", env.Goal.Hash())
	}
}
