// Package moveplot renders agents' move histories to image files.
package moveplot

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SaveMoves writes a moves-over-time line plot of the two agents' encoded
// histories (Cooperate = 1, Defect = 0) to path. Rounds are numbered from
// 1 on the x axis; the image format is inferred from the path extension.
func SaveMoves(movesA, movesB []int, path string) error {
	p := plot.New()
	p.Title.Text = "Moves over Time: Agent 1 vs. Agent 2"
	p.X.Label.Text = "Rounds"
	p.Y.Label.Text = "Move (Cooperate = 1, Defect = 0)"
	p.Add(plotter.NewGrid())

	err := plotutil.AddLinePoints(p,
		"Agent 1", points(movesA),
		"Agent 2", points(movesB))
	if err != nil {
		return errors.Wrap(err, "building move plot")
	}

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving move plot to %v", path)
	}

	return nil
}

func points(moves []int) plotter.XYs {
	xys := make(plotter.XYs, len(moves))
	for i, m := range moves {
		xys[i].X = float64(i + 1)
		xys[i].Y = float64(m)
	}
	return xys
}
