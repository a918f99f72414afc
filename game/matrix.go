package game

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Payoff is the pair of rewards for one joint action: A for the first
// (row) player, B for the second (column) player.
type Payoff struct {
	A, B float64
}

// PayoffMatrix is a complete mapping from ordered pairs of actions to the
// two players' rewards. It is immutable after construction.
type PayoffMatrix struct {
	actions []Action
	payoffs map[[2]Action]Payoff
}

// NewPayoffMatrix builds a matrix over the given ordered action set.
// The payoffs must define exactly one entry for every pair in the
// action set × action set.
func NewPayoffMatrix(actions []Action, payoffs map[[2]Action]Payoff) (*PayoffMatrix, error) {
	if len(actions) == 0 {
		return nil, errors.New("payoff matrix requires a non-empty action set")
	}

	for _, a := range actions {
		for _, b := range actions {
			if _, ok := payoffs[[2]Action{a, b}]; !ok {
				return nil, errors.Errorf("payoff matrix has no entry for (%v, %v)", a, b)
			}
		}
	}

	if len(payoffs) != len(actions)*len(actions) {
		return nil, errors.Errorf("payoff matrix has %d entries, want %d",
			len(payoffs), len(actions)*len(actions))
	}

	m := &PayoffMatrix{
		actions: append([]Action(nil), actions...),
		payoffs: make(map[[2]Action]Payoff, len(payoffs)),
	}
	for pair, p := range payoffs {
		m.payoffs[pair] = p
	}

	return m, nil
}

// NewDefaultMatrix returns the prisoner's dilemma payoffs used throughout
// this package: mutual cooperation pays (6, 6), mutual defection (4, 4),
// and unilateral defection pays the defector 10 against the cooperator's 2.
func NewDefaultMatrix() *PayoffMatrix {
	m, err := NewPayoffMatrix(DefaultActions, map[[2]Action]Payoff{
		{Cooperate, Cooperate}: {6, 6},
		{Cooperate, Defect}:    {2, 10},
		{Defect, Cooperate}:    {10, 2},
		{Defect, Defect}:       {4, 4},
	})
	if err != nil {
		panic(err)
	}
	return m
}

// Actions returns the ordered action set the matrix is defined over.
func (m *PayoffMatrix) Actions() []Action {
	return m.actions
}

// Resolve returns the two players' rewards for the given joint action.
// A missing pair means an agent's action set disagrees with the matrix's
// domain; that is a programming error, so it panics.
func (m *PayoffMatrix) Resolve(a, b Action) (float64, float64) {
	p, ok := m.payoffs[[2]Action{a, b}]
	if !ok {
		panic(fmt.Errorf("no payoff defined for (%v, %v)", a, b))
	}

	return p.A, p.B
}

// ResolveDiscounted returns the rewards for the given joint action in
// 0-indexed round r, scaled by discount^r. Round 0 is undiscounted; with
// discount < 1 later rounds carry strictly less weight, so cumulative
// payoffs converge for arbitrarily long horizons.
func (m *PayoffMatrix) ResolveDiscounted(a, b Action, round int, discount float64) (float64, float64) {
	ra, rb := m.Resolve(a, b)
	d := math.Pow(discount, float64(round))
	return ra * d, rb * d
}
