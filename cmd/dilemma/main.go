// Train two learning agents against each other in the iterated prisoner's
// dilemma and report their converged behavior.
package main

import (
	"flag"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/dilemmalab/dilemma"
	"github.com/dilemmalab/dilemma/game"
	"github.com/dilemmalab/dilemma/moveplot"
	"github.com/dilemmalab/dilemma/stats"
)

func main() {
	episodes := flag.Int("episodes", 100, "Number of training episodes")
	alpha := flag.Float64("alpha", 0.1, "Learning rate")
	gamma := flag.Float64("gamma", 0.9, "Discount factor")
	epsilon := flag.Float64("epsilon", 0.1, "Exploration rate")
	beta := flag.Float64("beta", 0.2, "LOLA shaping weight")
	kindA := flag.String("agent_a", "lola", "Kind of agent A: qlearning or lola")
	kindB := flag.String("agent_b", "lola", "Kind of agent B: qlearning or lola")
	seedA := flag.Int64("seed_a", 42, "Random seed for agent A")
	seedB := flag.Int64("seed_b", 43, "Random seed for agent B")
	plotPath := flag.String("plot", "", "If set, save a moves-over-time plot to this path")
	flag.Parse()
	defer glog.Flush()

	agentA, err := newAgent(*kindA, dilemma.Config{Alpha: *alpha, Gamma: *gamma, Epsilon: *epsilon, Seed: *seedA}, *beta)
	if err != nil {
		glog.Fatal(err)
	}
	agentB, err := newAgent(*kindB, dilemma.Config{Alpha: *alpha, Gamma: *gamma, Epsilon: *epsilon, Seed: *seedB}, *beta)
	if err != nil {
		glog.Fatal(err)
	}

	sim := dilemma.NewSimulator(game.NewDefaultMatrix())
	sim.Run(agentA, agentB, *episodes)

	glog.Infof("Agent A (%v): values %v, cooperation rate %.3f",
		*kindA, agentA.Values(), stats.CooperationRate(agentA.History()))
	glog.Infof("Agent B (%v): values %v, cooperation rate %.3f",
		*kindB, agentB.Values(), stats.CooperationRate(agentB.History()))

	if *plotPath != "" {
		if err := moveplot.SaveMoves(agentA.History(), agentB.History(), *plotPath); err != nil {
			glog.Fatal(err)
		}
		glog.Infof("Saved move plot to %v", *plotPath)
	}
}

func newAgent(kind string, cfg dilemma.Config, beta float64) (dilemma.Learner, error) {
	switch kind {
	case "qlearning":
		return dilemma.NewQLearning(game.DefaultActions, cfg)
	case "lola":
		return dilemma.NewLOLA(game.DefaultActions, cfg, beta)
	default:
		return nil, errors.Errorf("unknown agent kind: %v", kind)
	}
}
