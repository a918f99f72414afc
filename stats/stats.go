// Package stats summarizes simulation outcomes.
package stats

import "gonum.org/v1/gonum/stat"

// CooperationRate returns the fraction of recorded moves that were
// cooperations, given an encoded move history (Cooperate = 1, Defect = 0).
// An empty history has rate 0.
func CooperationRate(moves []int) float64 {
	if len(moves) == 0 {
		return 0
	}

	xs := make([]float64, len(moves))
	for i, m := range moves {
		xs[i] = float64(m)
	}
	return stat.Mean(xs, nil)
}

// PayoffSummary returns the mean and standard deviation of a sequence of
// per-round payoffs.
func PayoffSummary(payoffs []float64) (mean, stddev float64) {
	mean = stat.Mean(payoffs, nil)
	stddev = stat.StdDev(payoffs, nil)
	return mean, stddev
}

// DiscountedReturn folds per-round payoffs into a single return, weighting
// 0-indexed round r by discount^r.
func DiscountedReturn(payoffs []float64, discount float64) float64 {
	weight := 1.0
	var total float64
	for _, p := range payoffs {
		total += weight * p
		weight *= discount
	}
	return total
}
