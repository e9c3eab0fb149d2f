package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/agentviz/internal/abm"
)

// Store persists runs under a base directory, one subdirectory per run:
// metadata.json, series.csv (per-step collector values) and wealth.csv
// (final per-agent wealth).
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Agents    int                `json:"agents"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Steps     int                `json:"steps"`
	Seed      int64              `json:"seed"`
	Final     map[string]float64 `json:"final"`
}

func (s *Store) Save(agents, width, height int, seed int64, result *abm.Result, wealths []float64) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Agents:    agents,
		Width:     width,
		Height:    height,
		Steps:     result.Steps,
		Seed:      seed,
		Final:     result.Final,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeSeries(filepath.Join(runDir, "series.csv"), result.Series); err != nil {
		return "", err
	}
	if err := s.writeWealth(filepath.Join(runDir, "wealth.csv"), wealths); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeSeries(path string, series map[string][]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	header := append([]string{"step"}, names...)
	if err := w.Write(header); err != nil {
		return err
	}

	rows := 0
	for _, name := range names {
		if len(series[name]) > rows {
			rows = len(series[name])
		}
	}

	for i := 0; i < rows; i++ {
		row := []string{strconv.Itoa(i)}
		for _, name := range names {
			vals := series[name]
			if i < len(vals) {
				row = append(row, strconv.FormatFloat(vals[i], 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) writeWealth(path string, wealths []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"agent", "wealth"}); err != nil {
		return err
	}
	for i, v := range wealths {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 0, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads the per-step collector values back, keyed by
// collector name.
func (s *Store) LoadSeries(runID string) (map[string][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return map[string][]float64{}, nil
	}

	header := records[0]
	series := make(map[string][]float64, len(header)-1)
	for col := 1; col < len(header); col++ {
		series[header[col]] = make([]float64, 0, len(records)-1)
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		for col := 1; col < len(header) && col < len(record); col++ {
			val, err := strconv.ParseFloat(record[col], 64)
			if err != nil {
				continue
			}
			series[header[col]] = append(series[header[col]], val)
		}
	}

	return series, nil
}

// LoadWealth reads the final per-agent wealth distribution back.
func (s *Store) LoadWealth(runID string) ([]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "wealth.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	wealths := make([]float64, 0, len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		val, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		wealths = append(wealths, val)
	}
	return wealths, nil
}
