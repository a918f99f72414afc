package dilemma

import (
	"math"
	"reflect"
	"testing"

	"github.com/dilemmalab/dilemma/game"
)

func newTestQLearning(t *testing.T, cfg Config) *QLearning {
	t.Helper()
	q, err := NewQLearning(game.DefaultActions, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func TestRunRecordsFinalAction(t *testing.T) {
	testCases := []struct {
		episodes   int
		wantLength int
	}{
		{episodes: 5, wantLength: 6},
		{episodes: 1, wantLength: 2},
		{episodes: 0, wantLength: 1},
		{episodes: -3, wantLength: 1},
	}

	for _, tc := range testCases {
		cfg := Config{Alpha: 0.1, Gamma: 0.9, Epsilon: 0.1, Seed: 1}
		agentA := newTestQLearning(t, cfg)
		agentB := newTestQLearning(t, Config{Alpha: 0.1, Gamma: 0.9, Epsilon: 0.1, Seed: 2})

		NewSimulator(game.NewDefaultMatrix()).Run(agentA, agentB, tc.episodes)

		if len(agentA.History()) != tc.wantLength || len(agentB.History()) != tc.wantLength {
			t.Errorf("%d episodes: history lengths %d and %d, expected %d",
				tc.episodes, len(agentA.History()), len(agentB.History()), tc.wantLength)
		}
	}
}

func TestRunFirstEpisodeGreedy(t *testing.T) {
	// With epsilon = 0 and all-zero tables, both agents exploit and the
	// tie-break selects Cooperate. The (C, C) payoff is (6, 6), so the
	// single update leaves exactly one changed entry per table:
	// Q[C] = alpha * 6 = 0.6.
	cfg := Config{Alpha: 0.1, Gamma: 0.9, Epsilon: 0}
	agentA := newTestQLearning(t, cfg)
	agentB := newTestQLearning(t, cfg)

	NewSimulator(game.NewDefaultMatrix()).Run(agentA, agentB, 1)

	for name, agent := range map[string]*QLearning{"A": agentA, "B": agentB} {
		if got := agent.values[game.Cooperate]; math.Abs(got-0.6) > 1e-9 {
			t.Errorf("agent %v: Q[Cooperate] = %v, expected 0.6", name, got)
		}
		if got := agent.values[game.Defect]; got != 0 {
			t.Errorf("agent %v: Q[Defect] = %v, expected to stay 0", name, got)
		}
		if !reflect.DeepEqual(agent.History(), []int{1, 1}) {
			t.Errorf("agent %v: history %v, expected [1 1]", name, agent.History())
		}
	}
}

func TestRunLOLASeesUpdatedOpponentValues(t *testing.T) {
	// Updates are sequential: agent B's shaping term reads agent A's table
	// after A's update in the same round. With epsilon = 0 both play
	// Cooperate; A's update sets Q_A[C] = 0.6, so B's shaped value is
	// 0.6 + beta * 0.6.
	cfg := Config{Alpha: 0.1, Gamma: 0.9, Epsilon: 0}
	agentA := newTestQLearning(t, cfg)
	agentB, err := NewLOLA(game.DefaultActions, cfg, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	NewSimulator(game.NewDefaultMatrix()).Run(agentA, agentB, 1)

	if got := agentB.values[game.Cooperate]; math.Abs(got-0.9) > 1e-9 {
		t.Errorf("LOLA agent's Q[Cooperate] = %v, expected 0.9", got)
	}
}

func TestRunMixedAgentKinds(t *testing.T) {
	// A LOLA agent and a Q-learning agent must be drivable in either slot.
	cfg := Config{Alpha: 0.1, Gamma: 0.9, Epsilon: 0.2, Seed: 11}
	lola, err := NewLOLA(game.DefaultActions, cfg, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	q := newTestQLearning(t, Config{Alpha: 0.1, Gamma: 0.9, Epsilon: 0.2, Seed: 12})

	NewSimulator(game.NewDefaultMatrix()).Run(lola, q, 20)

	if len(lola.History()) != 21 || len(q.History()) != 21 {
		t.Errorf("history lengths %d and %d, expected 21", len(lola.History()), len(q.History()))
	}
}

func TestSimulateStrategiesConstant(t *testing.T) {
	movesA, movesB, payoffA, payoffB := SimulateStrategies(
		AlwaysCooperate, AlwaysDefect, game.NewDefaultMatrix(), 3, 1.0)

	if !reflect.DeepEqual(movesA, []int{1, 1, 1}) {
		t.Errorf("cooperator's moves are %v, expected [1 1 1]", movesA)
	}
	if !reflect.DeepEqual(movesB, []int{0, 0, 0}) {
		t.Errorf("defector's moves are %v, expected [0 0 0]", movesB)
	}
	if math.Abs(payoffA-6.0) > 1e-9 {
		t.Errorf("cooperator's payoff is %v, expected 6", payoffA)
	}
	if math.Abs(payoffB-30.0) > 1e-9 {
		t.Errorf("defector's payoff is %v, expected 30", payoffB)
	}
}

func TestSimulateStrategiesZeroRounds(t *testing.T) {
	movesA, movesB, payoffA, payoffB := SimulateStrategies(
		AlwaysCooperate, AlwaysDefect, game.NewDefaultMatrix(), 0, 0.9)

	if len(movesA) != 0 || len(movesB) != 0 {
		t.Errorf("expected empty move sequences, got %v and %v", movesA, movesB)
	}
	if payoffA != 0 || payoffB != 0 {
		t.Errorf("expected zero payoffs, got %v and %v", payoffA, payoffB)
	}
}

func TestSimulateStrategiesDiscountMonotonic(t *testing.T) {
	matrix := game.NewDefaultMatrix()
	discounts := []float64{1.0, 0.9, 0.5, 0.1}

	prevA := math.Inf(1)
	prevB := math.Inf(1)
	for _, d := range discounts {
		_, _, payoffA, payoffB := SimulateStrategies(AlwaysCooperate, AlwaysDefect, matrix, 10, d)
		if payoffA >= prevA || payoffB >= prevB {
			t.Errorf("discount %v: payoffs (%v, %v) did not decrease from (%v, %v)",
				d, payoffA, payoffB, prevA, prevB)
		}
		prevA, prevB = payoffA, payoffB
	}
}

func TestSimulateStrategiesPassesOpponentHistory(t *testing.T) {
	// Each strategy must see the other player's moves, not its own.
	var seenByA [][]game.Action
	spy := func(opponentMoves []game.Action) game.Action {
		seenByA = append(seenByA, append([]game.Action(nil), opponentMoves...))
		return game.Cooperate
	}

	SimulateStrategies(spy, AlwaysDefect, game.NewDefaultMatrix(), 3, 1.0)

	want := [][]game.Action{
		{},
		{game.Defect},
		{game.Defect, game.Defect},
	}
	if len(seenByA) != len(want) {
		t.Fatalf("strategy called %d times, expected %d", len(seenByA), len(want))
	}
	for i := range want {
		if len(seenByA[i]) != len(want[i]) {
			t.Errorf("round %d: saw history %v, expected %v", i, seenByA[i], want[i])
			continue
		}
		for j := range want[i] {
			if seenByA[i][j] != want[i][j] {
				t.Errorf("round %d: saw history %v, expected %v", i, seenByA[i], want[i])
				break
			}
		}
	}
}
