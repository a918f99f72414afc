package dilemma

import (
	"math"

	"github.com/dilemmalab/dilemma/game"
)

// ValueTable holds one value estimate per action. A table is owned by
// exactly one agent; the opponent only ever sees a Clone.
type ValueTable map[game.Action]float64

// NewValueTable returns a zero-initialized table over the given actions.
func NewValueTable(actions []game.Action) ValueTable {
	vt := make(ValueTable, len(actions))
	for _, a := range actions {
		vt[a] = 0
	}
	return vt
}

// Clone returns an independent copy of the table.
func (vt ValueTable) Clone() ValueTable {
	out := make(ValueTable, len(vt))
	for a, v := range vt {
		out[a] = v
	}
	return out
}

// Max returns the largest value in the table.
func (vt ValueTable) Max() float64 {
	best := math.Inf(-1)
	for _, v := range vt {
		if v > best {
			best = v
		}
	}
	return best
}

// ArgMax returns the action with the highest value. Ties go to the
// earliest action in the given order, so a fixed seed always reproduces
// the same trajectory.
func (vt ValueTable) ArgMax(actions []game.Action) game.Action {
	best := actions[0]
	for _, a := range actions[1:] {
		if vt[a] > vt[best] {
			best = a
		}
	}
	return best
}
