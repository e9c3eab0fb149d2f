package config

// Param describes one user-adjustable run parameter: a labeled range
// with a step and default, consumed at model-construction time. The
// schema is what interactive frontends render as sliders.
type Param struct {
	Name    string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Schema returns the adjustable parameters in display order.
func Schema() []Param {
	return []Param{
		{Name: "agents", Label: "Number of agents", Min: 1, Max: 500, Step: 1, Default: DefaultAgents},
		{Name: "width", Label: "Grid width", Min: 2, Max: 50, Step: 1, Default: DefaultWidth},
		{Name: "height", Label: "Grid height", Min: 2, Max: 50, Step: 1, Default: DefaultHeight},
		{Name: "steps", Label: "Steps per run", Min: 1, Max: 10000, Step: 1, Default: DefaultSteps},
	}
}

// ParamByName looks a parameter up in the schema.
func ParamByName(name string) (Param, bool) {
	for _, p := range Schema() {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Clamp snaps v into the parameter's range and onto its step.
func (p Param) Clamp(v float64) float64 {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	if p.Step > 0 {
		n := int((v-p.Min)/p.Step + 0.5)
		v = p.Min + float64(n)*p.Step
		if v > p.Max {
			v = p.Max
		}
	}
	return v
}
