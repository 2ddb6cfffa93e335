package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/nluthra2001/schedsim/internal/scheduler"
)

var ErrNothingToPlot = errors.New("nothing to plot")

// SaveChart draws waiting and turnaround bars and saves them to path; the
// image format follows the file extension. A single result is plotted per
// process, several results are compared by their averages.
func SaveChart(path string, results ...scheduler.Result) error {
	labels, waiting, turnaround := chartSeries(results)
	if len(labels) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = chartTitle(results)
	p.Y.Label.Text = "Ticks"

	width := vg.Points(20)
	waitBars, err := plotter.NewBarChart(waiting, width)
	if err != nil {
		return fmt.Errorf("waiting bars: %w", err)
	}
	waitBars.LineStyle.Width = vg.Length(0)
	waitBars.Color = plotutil.Color(0)
	waitBars.Offset = -width / 2

	turnaroundBars, err := plotter.NewBarChart(turnaround, width)
	if err != nil {
		return fmt.Errorf("turnaround bars: %w", err)
	}
	turnaroundBars.LineStyle.Width = vg.Length(0)
	turnaroundBars.Color = plotutil.Color(1)
	turnaroundBars.Offset = width / 2

	p.Add(waitBars, turnaroundBars)
	p.Legend.Add("Waiting", waitBars)
	p.Legend.Add("Turnaround", turnaroundBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart %s: %w", path, err)
	}
	return nil
}

func chartTitle(results []scheduler.Result) string {
	if len(results) == 1 {
		return title(results[0])
	}
	return "Average times per algorithm"
}

func chartSeries(results []scheduler.Result) (labels []string, waiting, turnaround plotter.Values) {
	if len(results) == 1 {
		res := results[0]
		for _, m := range res.Metrics {
			labels = append(labels, fmt.Sprintf("P%d", m.ProcessID))
			waiting = append(waiting, float64(m.WaitingTime))
			turnaround = append(turnaround, float64(m.TurnaroundTime))
		}
		return labels, waiting, turnaround
	}

	for _, res := range results {
		labels = append(labels, string(res.Algorithm))
		waiting = append(waiting, res.AverageWaiting())
		turnaround = append(turnaround, res.AverageTurnaround())
	}
	return labels, waiting, turnaround
}
