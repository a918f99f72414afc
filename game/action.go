package game

// Action is one discrete choice available to a player each round.
type Action uint8

const (
	Cooperate Action = iota
	Defect
)

var actionStr = [...]string{
	"Cooperate",
	"Defect",
}

// String implements Stringer.
func (a Action) String() string {
	return actionStr[a]
}

// Encoded returns the numeric encoding used in move histories:
// Cooperate encodes to 1, every other action to 0.
func (a Action) Encoded() int {
	if a == Cooperate {
		return 1
	}
	return 0
}

// DefaultActions is the ordered action set of the prisoner's dilemma.
// Order matters: agents break value ties in favor of earlier actions.
var DefaultActions = []Action{Cooperate, Defect}
