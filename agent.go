// Package dilemma simulates repeated two-player games between independent
// learning agents. Each round both agents pick an action, collect the
// payoff for the joint action, and update their value estimates.
package dilemma

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/dilemmalab/dilemma/game"
)

// Learner is the capability the Simulator requires of an agent. The learn
// hook receives a snapshot of the opponent's value table so the Simulator
// never has to inspect the agent's concrete type; opponent-unaware
// learners simply ignore it.
type Learner interface {
	ChooseAction() game.Action
	RecordHistory(game.Action)
	History() []int
	Values() ValueTable

	learn(action game.Action, reward float64, opponentAction game.Action, opponentValues ValueTable)
}

// Config holds the hyperparameters shared by both agent kinds, plus the
// seed for the agent's private randomness. Each agent owns its own
// rand.Rand so that interleaving two agents' choices never perturbs either
// agent's draw sequence.
type Config struct {
	Alpha   float64 // learning rate, in (0, 1]
	Gamma   float64 // discount factor, in [0, 1]
	Epsilon float64 // exploration rate, in [0, 1]
	Seed    int64
}

func (c Config) validate() error {
	if c.Alpha <= 0 || c.Alpha > 1 {
		return errors.Errorf("alpha must be in (0, 1], got %v", c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return errors.Errorf("gamma must be in [0, 1], got %v", c.Gamma)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return errors.Errorf("epsilon must be in [0, 1], got %v", c.Epsilon)
	}
	return nil
}

// QLearning is a tabular Q-learning agent over a small fixed action set.
// The repeated game has no environment state, so the update bootstraps on
// the value of the action the opponent just played rather than on the
// agent's own best next action.
type QLearning struct {
	actions []game.Action
	alpha   float64
	gamma   float64
	epsilon float64
	values  ValueTable
	history []int
	rng     *rand.Rand
}

// NewQLearning returns an agent with a zero-initialized value table and a
// private random source seeded from cfg.Seed.
func NewQLearning(actions []game.Action, cfg Config) (*QLearning, error) {
	if len(actions) == 0 {
		return nil, errors.New("action set must not be empty")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &QLearning{
		actions: append([]game.Action(nil), actions...),
		alpha:   cfg.Alpha,
		gamma:   cfg.Gamma,
		epsilon: cfg.Epsilon,
		values:  NewValueTable(actions),
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// ChooseAction explores with probability epsilon, sampling uniformly from
// the action set, and otherwise exploits the current value table. Equal
// values exploit to the earliest action in construction order.
func (q *QLearning) ChooseAction() game.Action {
	if q.rng.Float64() < q.epsilon {
		return q.actions[q.rng.Intn(len(q.actions))]
	}

	return q.values.ArgMax(q.actions)
}

// Update applies the one-step tabular update
//
//	Q[a] ← (1-α)·Q[a] + α·(r + γ·Q[opponentAction] − Q[a])
//
// for the observed reward, bootstrapping on the opponent's played action.
func (q *QLearning) Update(action game.Action, reward float64, opponentAction game.Action) {
	current := q.values[action]
	next := q.values[opponentAction]
	q.values[action] = (1-q.alpha)*current + q.alpha*(reward+q.gamma*next-current)
}

// RecordHistory appends the encoded action to the agent's move history.
func (q *QLearning) RecordHistory(action game.Action) {
	q.history = append(q.history, action.Encoded())
}

// History returns the encoded moves recorded so far.
func (q *QLearning) History() []int {
	return q.history
}

// Values returns an independent snapshot of the agent's value table.
func (q *QLearning) Values() ValueTable {
	return q.values.Clone()
}

func (q *QLearning) learn(action game.Action, reward float64, opponentAction game.Action, _ ValueTable) {
	q.Update(action, reward, opponentAction)
}

// LOLA is a Q-learning agent with a one-step opponent-awareness bonus:
// after the standard update it reinforces its chosen action by beta times
// the best value in the opponent's table, whichever action the opponent
// played. This shaping term is a simplified stand-in for full LOLA's
// gradient through the opponent's update, not the exact method.
type LOLA struct {
	QLearning
	beta float64
}

// NewLOLA returns a LOLA agent with shaping weight beta >= 0.
func NewLOLA(actions []game.Action, cfg Config, beta float64) (*LOLA, error) {
	if beta < 0 {
		return nil, errors.Errorf("beta must be non-negative, got %v", beta)
	}

	q, err := NewQLearning(actions, cfg)
	if err != nil {
		return nil, err
	}

	return &LOLA{QLearning: *q, beta: beta}, nil
}

// Update applies the Q-learning step, then the shaping bonus derived from
// the opponent's value table. The snapshot is only read.
func (l *LOLA) Update(action game.Action, reward float64, opponentAction game.Action, opponentValues ValueTable) {
	l.QLearning.Update(action, reward, opponentAction)
	l.values[action] += l.beta * opponentValues.Max()
}

func (l *LOLA) learn(action game.Action, reward float64, opponentAction game.Action, opponentValues ValueTable) {
	l.Update(action, reward, opponentAction, opponentValues)
}
