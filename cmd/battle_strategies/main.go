// Play every pair of canned strategies against each other and report the
// discounted payoffs.
package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/dilemmalab/dilemma"
	"github.com/dilemmalab/dilemma/game"
	"github.com/dilemmalab/dilemma/stats"
)

var strategies = []struct {
	name     string
	strategy dilemma.Strategy
}{
	{"AlwaysCooperate", dilemma.AlwaysCooperate},
	{"AlwaysDefect", dilemma.AlwaysDefect},
	{"TitForTat", dilemma.TitForTat},
	{"GrimTrigger", dilemma.GrimTrigger},
}

func main() {
	rounds := flag.Int("rounds", 50, "Number of rounds per matchup")
	discount := flag.Float64("discount", 0.9, "Per-round payoff discount")
	flag.Parse()
	defer glog.Flush()

	matrix := game.NewDefaultMatrix()
	for _, a := range strategies {
		for _, b := range strategies {
			movesA, movesB, payoffA, payoffB := dilemma.SimulateStrategies(
				a.strategy, b.strategy, matrix, *rounds, *discount)

			glog.Infof("%v vs %v: payoffs %.2f / %.2f, cooperation rates %.2f / %.2f",
				a.name, b.name, payoffA, payoffB,
				stats.CooperationRate(movesA), stats.CooperationRate(movesB))
		}
	}
}
