// Package tourplot renders a solved tour's visiting order to a PNG, a
// debugging aid for test authors staring at a suspicious tour order with
// nothing but a slice of indices to go on.
package tourplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/scanbot-robotics/scanplan/spatialmath"
	"github.com/scanbot-robotics/scanplan/tour"
)

// Render draws start followed by stops in visiting order as a connected
// scatter plot and writes it to path as a PNG.
func Render(start spatialmath.RobotPose, stops []tour.Stop, path string) error {
	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("tourplot: creating plot: %w", err)
	}

	pts := make(plotter.XYs, len(stops)+1)
	pts[0].X, pts[0].Y = float64(start.X()), float64(start.Y())
	for i, s := range stops {
		pts[i+1].X, pts[i+1].Y = float64(s.Pose.X()), float64(s.Pose.Y())
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("tourplot: building route line: %w", err)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("tourplot: building stop markers: %w", err)
	}

	p.Title.Text = "tour visiting order"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(line, scatter)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("tourplot: saving %s: %w", path, err)
	}
	return nil
}
