package dilemma

import "github.com/dilemmalab/dilemma/game"

// AlwaysCooperate cooperates unconditionally.
func AlwaysCooperate(_ []game.Action) game.Action {
	return game.Cooperate
}

// AlwaysDefect defects unconditionally.
func AlwaysDefect(_ []game.Action) game.Action {
	return game.Defect
}

// TitForTat cooperates on the first round, then mirrors the opponent's
// previous move.
func TitForTat(opponentMoves []game.Action) game.Action {
	if len(opponentMoves) == 0 {
		return game.Cooperate
	}
	return opponentMoves[len(opponentMoves)-1]
}

// GrimTrigger cooperates until the opponent defects once, then defects
// forever.
func GrimTrigger(opponentMoves []game.Action) game.Action {
	for _, m := range opponentMoves {
		if m == game.Defect {
			return game.Defect
		}
	}
	return game.Cooperate
}
