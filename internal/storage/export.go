package storage

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the flat JSON shape of one run, for downstream tools.
type ExportData struct {
	ID     string               `json:"id"`
	Agents int                  `json:"agents"`
	Width  int                  `json:"width"`
	Height int                  `json:"height"`
	Steps  int                  `json:"steps"`
	Seed   int64                `json:"seed"`
	Series map[string][]float64 `json:"series"`
	Wealth []float64            `json:"wealth"`
	Final  map[string]float64   `json:"final"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, series map[string][]float64, wealth []float64) error {
	data := ExportData{
		ID:     meta.ID,
		Agents: meta.Agents,
		Width:  meta.Width,
		Height: meta.Height,
		Steps:  meta.Steps,
		Seed:   meta.Seed,
		Series: series,
		Wealth: wealth,
		Final:  meta.Final,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSONStdout(meta *RunMetadata, series map[string][]float64, wealth []float64) error {
	return ExportJSON(os.Stdout, meta, series, wealth)
}
