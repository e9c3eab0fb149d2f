package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/san-kum/agentviz/internal/abm"
)

func testResult() *abm.Result {
	return &abm.Result{
		Steps: 3,
		Series: map[string][]float64{
			"gini":        {0, 0.1, 0.2, 0.25},
			"mean_wealth": {1, 1, 1, 1},
		},
		Final: map[string]float64{"gini": 0.25, "mean_wealth": 1},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	wealths := []float64{0, 2, 1, 1}
	runID, err := st.Save(4, 5, 5, 42, testResult(), wealths)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Agents != 4 {
		t.Errorf("agents = %d, want 4", meta.Agents)
	}
	if meta.Steps != 3 {
		t.Errorf("steps = %d, want 3", meta.Steps)
	}
	if meta.Seed != 42 {
		t.Errorf("seed = %d, want 42", meta.Seed)
	}
	if meta.Final["gini"] != 0.25 {
		t.Errorf("final gini = %f, want 0.25", meta.Final["gini"])
	}
}

func TestStoreSeriesRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(4, 5, 5, 1, testResult(), []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatal(err)
	}
	gini, ok := series["gini"]
	if !ok {
		t.Fatal("gini series missing")
	}
	if len(gini) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(gini))
	}
	if math.Abs(gini[3]-0.25) > 1e-9 {
		t.Errorf("gini[3] = %f, want 0.25", gini[3])
	}
}

func TestStoreWealthRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	wealths := []float64{0, 3, 1}
	runID, err := st.Save(3, 4, 4, 1, testResult(), wealths)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := st.LoadWealth(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 3 {
		t.Fatalf("expected 3 values, got %d", len(loaded))
	}
	for i := range wealths {
		if loaded[i] != wealths[i] {
			t.Errorf("wealth[%d] = %f, want %f", i, loaded[i], wealths[i])
		}
	}
}

func TestStoreListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir should not fail: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{ID: "run_1", Agents: 2, Width: 3, Height: 3, Steps: 1, Seed: 9,
		Final: map[string]float64{"gini": 0.5}}
	series := map[string][]float64{"gini": {0, 0.5}}
	wealth := []float64{0, 2}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, series, wealth); err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.ID != "run_1" {
		t.Errorf("id = %s", data.ID)
	}
	if len(data.Series["gini"]) != 2 {
		t.Errorf("gini series length = %d", len(data.Series["gini"]))
	}
}
