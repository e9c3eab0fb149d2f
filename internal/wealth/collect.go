package wealth

import (
	"sort"

	"github.com/san-kum/agentviz/internal/abm"
)

// GiniOf computes the Gini coefficient of a wealth distribution:
// 0 for perfect equality, approaching 1 as one holder takes everything.
func GiniOf(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	total := 0.0
	for _, v := range sorted {
		total += v
	}
	if total == 0 {
		return 0
	}

	b := 0.0
	for i, v := range sorted {
		b += v * float64(n-i)
	}
	return 1 + 1/float64(n) - 2*b/(float64(n)*total)
}

// Gini tracks the wealth Gini coefficient per step.
type Gini struct {
	model  *Model
	series []float64
}

func NewGini(m *Model) *Gini {
	return &Gini{model: m, series: make([]float64, 0)}
}

func (g *Gini) Name() string { return "gini" }

func (g *Gini) Observe(_ abm.Model) {
	g.series = append(g.series, GiniOf(g.model.Wealths()))
}

func (g *Gini) Value() float64 {
	if len(g.series) == 0 {
		return 0
	}
	return g.series[len(g.series)-1]
}

func (g *Gini) Series() []float64 {
	out := make([]float64, len(g.series))
	copy(out, g.series)
	return out
}

func (g *Gini) Reset() { g.series = g.series[:0] }

// MeanWealth tracks the average agent wealth per step. The exchange
// rule conserves total wealth, so the series doubles as a sanity check.
type MeanWealth struct {
	model  *Model
	series []float64
}

func NewMeanWealth(m *Model) *MeanWealth {
	return &MeanWealth{model: m, series: make([]float64, 0)}
}

func (c *MeanWealth) Name() string { return "mean_wealth" }

func (c *MeanWealth) Observe(_ abm.Model) {
	ws := c.model.Wealths()
	total := 0.0
	for _, w := range ws {
		total += w
	}
	c.series = append(c.series, total/float64(len(ws)))
}

func (c *MeanWealth) Value() float64 {
	if len(c.series) == 0 {
		return 0
	}
	return c.series[len(c.series)-1]
}

func (c *MeanWealth) Series() []float64 {
	out := make([]float64, len(c.series))
	copy(out, c.series)
	return out
}

func (c *MeanWealth) Reset() { c.series = c.series[:0] }

// Histogram bins the current wealth distribution into integer buckets
// [0, max]. Used by the histogram views.
func Histogram(values []float64) []int {
	max := 0
	for _, v := range values {
		if int(v) > max {
			max = int(v)
		}
	}
	bins := make([]int, max+1)
	for _, v := range values {
		if v < 0 {
			continue
		}
		bins[int(v)]++
	}
	return bins
}
