// Package equilibrium expresses the finitely repeated stage game as an
// extensive-form game tree, so that counterfactual regret minimization can
// compute an equilibrium baseline to compare the learning agents against.
package equilibrium

import (
	"fmt"

	"github.com/timpalpant/go-cfr"

	"github.com/dilemmalab/dilemma/game"
)

// GameNode implements cfr.GameTreeNode for the repeated two-player game.
// Moves within a round are simultaneous: player 0 moves first in the tree,
// but player 1's information set hides player 0's pending action, so both
// players decide knowing only the rounds already resolved.
type GameNode struct {
	matrix   *game.PayoffMatrix
	rounds   int
	discount float64

	// past holds the joint actions of completed rounds.
	past [][2]game.Action
	// pending is player 0's action in the current round, once chosen.
	pending game.Action
	player  int

	// children are the possible next states, one per action.
	children []GameNode
	parent   *GameNode
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &GameNode{}

// NewGame creates a root node for a game of the given number of repeated
// rounds over the matrix. The payoff pair of 0-indexed round r is scaled
// by discount^r in the terminal utilities.
func NewGame(matrix *game.PayoffMatrix, rounds int, discount float64) *GameNode {
	return &GameNode{
		matrix:   matrix,
		rounds:   rounds,
		discount: discount,
	}
}

// Type implements cfr.GameTreeNode. The game has no chance events.
func (gn *GameNode) Type() cfr.NodeType {
	if len(gn.past) >= gn.rounds {
		return cfr.TerminalNodeType
	}
	return cfr.PlayerNodeType
}

// Player implements cfr.GameTreeNode.
func (gn *GameNode) Player() int {
	return gn.player
}

// NumChildren implements cfr.GameTreeNode.
func (gn *GameNode) NumChildren() int {
	if gn.Type() == cfr.TerminalNodeType {
		return 0
	}
	return len(gn.matrix.Actions())
}

// GetChild implements cfr.GameTreeNode. Child i is the state reached when
// the player to move plays the i-th action of the matrix's action set.
func (gn *GameNode) GetChild(i int) cfr.GameTreeNode {
	if gn.children == nil {
		gn.buildChildren()
	}
	return &gn.children[i]
}

func (gn *GameNode) buildChildren() {
	actions := gn.matrix.Actions()
	gn.children = make([]GameNode, len(actions))
	for i, a := range actions {
		child := *gn
		child.children = nil
		child.parent = gn
		if gn.player == 0 {
			child.pending = a
			child.player = 1
		} else {
			resolved := make([][2]game.Action, len(gn.past), len(gn.past)+1)
			copy(resolved, gn.past)
			child.past = append(resolved, [2]game.Action{gn.pending, a})
			child.player = 0
		}
		gn.children[i] = child
	}
}

// Parent implements cfr.GameTreeNode.
func (gn *GameNode) Parent() cfr.GameTreeNode {
	return gn.parent
}

// GetChildProbability implements cfr.GameTreeNode.
func (gn *GameNode) GetChildProbability(i int) float64 {
	panic("cannot get the probability of a non-chance node")
}

// SampleChild implements cfr.GameTreeNode.
func (gn *GameNode) SampleChild() (cfr.GameTreeNode, float64) {
	panic("cannot sample the child of a non-chance node")
}

// InfoSet implements cfr.GameTreeNode. A player's information set is the
// public history of resolved rounds; player 0's pending action is never
// part of it.
func (gn *GameNode) InfoSet(player int) cfr.InfoSet {
	return &infoSet{key: fmt.Sprintf("%d:%s", player, historyKey(gn.past))}
}

// InfoSetKey implements cfr.GameTreeNode. It is the equivalent of
// InfoSet(player).Key().
func (gn *GameNode) InfoSetKey(player int) []byte {
	return gn.InfoSet(player).Key()
}

// Utility implements cfr.GameTreeNode. The game is general-sum: each
// player's utility is their own discounted total payoff.
func (gn *GameNode) Utility(player int) float64 {
	if gn.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	var total float64
	for r, joint := range gn.past {
		ra, rb := gn.matrix.ResolveDiscounted(joint[0], joint[1], r, gn.discount)
		if player == 0 {
			total += ra
		} else {
			total += rb
		}
	}

	return total
}

// Close implements cfr.GameTreeNode.
func (gn *GameNode) Close() {
	gn.children = nil
}

// String implements fmt.Stringer.
func (gn *GameNode) String() string {
	return fmt.Sprintf("player %d to move in round %d of %d (history %s)",
		gn.player, len(gn.past), gn.rounds, historyKey(gn.past))
}

func historyKey(past [][2]game.Action) string {
	buf := make([]byte, 0, 2*len(past))
	for _, joint := range past {
		buf = append(buf, '0'+byte(joint[0]), '0'+byte(joint[1]))
	}
	return string(buf)
}
