package dilemma

import (
	"github.com/golang/glog"

	"github.com/dilemmalab/dilemma/game"
)

// Simulator drives two learning agents against each other over a shared
// payoff matrix.
type Simulator struct {
	matrix *game.PayoffMatrix
}

func NewSimulator(matrix *game.PayoffMatrix) *Simulator {
	return &Simulator{matrix: matrix}
}

// Run plays the given number of training episodes between the two agents.
// Each episode: both agents choose, both moves are recorded, the payoff
// pair is resolved, then both agents learn. Learning is strictly
// sequential: agentA updates first, and the snapshot handed to agentB is
// taken after agentA's update.
//
// After the last episode each agent chooses and records one more action
// without learning, capturing the converged policy. A run of N episodes
// therefore leaves N+1 recorded moves; episodes < 1 runs no training but
// still records the final action.
func (s *Simulator) Run(agentA, agentB Learner, episodes int) {
	for i := 0; i < episodes; i++ {
		actionA := agentA.ChooseAction()
		actionB := agentB.ChooseAction()

		agentA.RecordHistory(actionA)
		agentB.RecordHistory(actionB)

		rewardA, rewardB := s.matrix.Resolve(actionA, actionB)

		agentA.learn(actionA, rewardA, actionB, agentB.Values())
		agentB.learn(actionB, rewardB, actionA, agentA.Values())
	}

	finalA := agentA.ChooseAction()
	finalB := agentB.ChooseAction()
	agentA.RecordHistory(finalA)
	agentB.RecordHistory(finalB)

	glog.Infof("Final actions after training: agent A chooses %v, agent B chooses %v", finalA, finalB)
}

// Strategy is a stateless decision rule: given the opponent's moves so
// far, return the next action.
type Strategy func(opponentMoves []game.Action) game.Action

// SimulateStrategies folds two strategies against each other for the
// given number of rounds. The payoff pair of 0-indexed round r is scaled
// by discount^r before it is accumulated. It returns both encoded move
// sequences (Cooperate = 1, Defect = 0) and both discounted totals; its
// result is fully determined by the strategies and the discount.
// rounds <= 0 yields empty histories and zero totals.
func SimulateStrategies(strategyA, strategyB Strategy, matrix *game.PayoffMatrix, rounds int, discount float64) ([]int, []int, float64, float64) {
	var historyA, historyB []game.Action
	movesA := []int{}
	movesB := []int{}
	var totalA, totalB float64

	for r := 0; r < rounds; r++ {
		moveA := strategyA(historyB)
		moveB := strategyB(historyA)

		historyA = append(historyA, moveA)
		historyB = append(historyB, moveB)
		movesA = append(movesA, moveA.Encoded())
		movesB = append(movesB, moveB.Encoded())

		rewardA, rewardB := matrix.ResolveDiscounted(moveA, moveB, r, discount)
		totalA += rewardA
		totalB += rewardB
	}

	return movesA, movesB, totalA, totalB
}
