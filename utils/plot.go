package utils

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderProgressPlot writes a PNG time-series chart of jump heights to w.
// Dates are expected to be offset-adjusted already; heights are in the
// display unit named by heightUnit.
func RenderProgressPlot(w io.Writer, dates []time.Time, heights []float64, heightUnit string, years int) error {
	graph := chart.Chart{
		Title:  fmt.Sprintf("Jump progress, last %d year(s)", years),
		Width:  800,
		Height: 450,
		XAxis: chart.XAxis{
			Name:           "date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: fmt.Sprintf("height (%s)", heightUnit),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "jump height",
				XValues: dates,
				YValues: heights,
			},
		},
	}

	return graph.Render(chart.PNG, w)
}
