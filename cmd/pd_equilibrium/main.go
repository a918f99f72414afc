// Compute an equilibrium of the finitely repeated prisoner's dilemma with
// vanilla CFR, as a baseline for the learning agents.
package main

import (
	"flag"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"

	"github.com/dilemmalab/dilemma/equilibrium"
	"github.com/dilemmalab/dilemma/game"
)

func main() {
	rounds := flag.Int("rounds", 2, "Number of repeated rounds in the game tree")
	discount := flag.Float64("discount", 1.0, "Per-round payoff discount")
	iter := flag.Int("iter", 1000, "Number of CFR iterations")
	flag.Parse()
	defer glog.Flush()

	root := equilibrium.NewGame(game.NewDefaultMatrix(), *rounds, *discount)

	total := 0
	tree.Visit(root, func(node cfr.GameTreeNode) {
		total++
	})
	glog.Infof("Game tree has %d nodes", total)

	vanillaCFR := cfr.New(cfr.NewPolicyTable(cfr.DiscountParams{}))
	for i := 1; i <= *iter; i++ {
		expectedValue := vanillaCFR.Run(root)
		if *iter >= 10 && i%(*iter/10) == 0 {
			glog.Infof("After %d iterations, expected value: %v", i, expectedValue)
		}
	}
}
