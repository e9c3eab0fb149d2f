package abm

import (
	"context"
	"fmt"
)

// Simulator owns the step loop for one model.
type Simulator struct {
	model      Model
	collectors []Collector
	observers  []Observer
}

func New(model Model) *Simulator {
	return &Simulator{
		model:      model,
		collectors: make([]Collector, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddCollector(c Collector) { s.collectors = append(s.collectors, c) }
func (s *Simulator) AddObserver(o Observer)   { s.observers = append(s.observers, o) }

// Run advances the model cfg.Steps times. Collectors observe after
// every step; the initial state is observed before the first step so a
// run of N steps yields N+1 samples per collector.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if s.model == nil {
		return nil, ErrNilModel
	}
	if cfg.Steps <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, cfg.Steps)
	}
	if len(s.model.Agents()) == 0 {
		return nil, ErrEmptyPopulation
	}

	for _, c := range s.collectors {
		c.Reset()
		c.Observe(s.model)
	}

	result := &Result{
		Series: make(map[string][]float64),
		Final:  make(map[string]float64),
	}

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		s.model.Step()
		result.Steps++

		for _, c := range s.collectors {
			c.Observe(s.model)
		}
		for _, o := range s.observers {
			o.OnStep(s.model, i)
		}
	}

	s.finish(result)
	return result, nil
}

func (s *Simulator) finish(result *Result) {
	for _, c := range s.collectors {
		result.Series[c.Name()] = c.Series()
		result.Final[c.Name()] = c.Value()
	}
}
