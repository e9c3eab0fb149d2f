package wealth

import (
	"math"
	"testing"
)

func TestGiniOf(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"all zero", []float64{0, 0, 0}, 0},
		{"perfect equality", []float64{1, 1, 1, 1}, 0},
		{"one holds everything", []float64{0, 0, 0, 4}, 0.75},
		{"two of four", []float64{0, 0, 2, 2}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GiniOf(tt.values)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("GiniOf(%v) = %f, want %f", tt.values, got, tt.want)
			}
		})
	}
}

func TestGiniOf_DoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	GiniOf(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestHistogram(t *testing.T) {
	bins := Histogram([]float64{0, 0, 1, 3, 3, 3})
	want := []int{2, 1, 0, 3}
	if len(bins) != len(want) {
		t.Fatalf("expected %d bins, got %d", len(want), len(bins))
	}
	for i := range want {
		if bins[i] != want[i] {
			t.Errorf("bins[%d] = %d, want %d", i, bins[i], want[i])
		}
	}
}

func TestGiniCollector(t *testing.T) {
	m, err := NewModel(20, 10, 10, 42)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGini(m)

	g.Observe(m)
	if g.Value() != 0 {
		t.Errorf("initial gini should be 0 (equal wealth), got %f", g.Value())
	}

	for i := 0; i < 50; i++ {
		m.Step()
		g.Observe(m)
	}

	if len(g.Series()) != 51 {
		t.Errorf("expected 51 samples, got %d", len(g.Series()))
	}
	if v := g.Value(); v < 0 || v >= 1 {
		t.Errorf("gini out of range: %f", v)
	}

	g.Reset()
	if len(g.Series()) != 0 {
		t.Error("series should be empty after reset")
	}
}

func TestMeanWealthConserved(t *testing.T) {
	m, err := NewModel(30, 10, 10, 7)
	if err != nil {
		t.Fatal(err)
	}
	c := NewMeanWealth(m)

	c.Observe(m)
	for i := 0; i < 25; i++ {
		m.Step()
		c.Observe(m)
	}

	for i, v := range c.Series() {
		if math.Abs(v-1.0) > 1e-9 {
			t.Fatalf("mean wealth drifted at sample %d: %f", i, v)
		}
	}
}
