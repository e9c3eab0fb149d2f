// Package charts exports run figures as image files: collector time
// series as line plots and the final wealth distribution as a bar
// histogram. Colors follow the same "tab:" palette the portrayal
// records use.
package charts

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/agentviz/internal/portray"
	"github.com/san-kum/agentviz/internal/wealth"
)

// RGBA maps a symbolic color id onto the tab palette.
func RGBA(c portray.ColorID) color.RGBA {
	switch c {
	case portray.ColorBlue:
		return color.RGBA{R: 31, G: 119, B: 180, A: 255}
	case portray.ColorRed:
		return color.RGBA{R: 214, G: 39, B: 40, A: 255}
	case portray.ColorGreen:
		return color.RGBA{R: 44, G: 160, B: 44, A: 255}
	case portray.ColorOrange:
		return color.RGBA{R: 255, G: 127, B: 14, A: 255}
	case portray.ColorPurple:
		return color.RGBA{R: 148, G: 103, B: 189, A: 255}
	default:
		return color.RGBA{R: 127, G: 127, B: 127, A: 255}
	}
}

// SaveSeries writes a line plot of one collector series. The output
// format follows the file extension (.png, .svg, .pdf).
func SaveSeries(path, name string, series []float64) error {
	if len(series) == 0 {
		return fmt.Errorf("charts: empty series %q", name)
	}

	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = "step"
	p.Y.Label.Text = name

	xys := make(plotter.XYs, len(series))
	for i, v := range series {
		xys[i].X = float64(i)
		xys[i].Y = v
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = RGBA(portray.ColorBlue)
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// SaveHistogram writes a bar chart of the wealth distribution, one bar
// per integer wealth level.
func SaveHistogram(path string, wealths []float64) error {
	if len(wealths) == 0 {
		return fmt.Errorf("charts: no wealth values")
	}

	bins := wealth.Histogram(wealths)

	p := plot.New()
	p.Title.Text = "wealth distribution"
	p.X.Label.Text = "wealth"
	p.Y.Label.Text = "agents"

	values := make(plotter.Values, len(bins))
	for i, n := range bins {
		values[i] = float64(n)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = RGBA(portray.ColorBlue)
	bars.LineStyle.Width = 0
	p.Add(bars)

	labels := make([]string, len(bins))
	for i := range bins {
		labels[i] = strconv.Itoa(i)
	}
	p.NominalX(labels...)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
