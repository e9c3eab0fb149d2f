package config

var Presets = map[string]*Config{
	"default": {
		Agents: 100, Width: 10, Height: 10, Steps: 100, FPS: 30, Theme: "ocean",
	},
	"sparse": {
		Agents: 30, Width: 20, Height: 20, Steps: 200, FPS: 30, Theme: "ocean",
	},
	"dense": {
		Agents: 400, Width: 10, Height: 10, Steps: 100, FPS: 30, Theme: "ocean",
	},
	"long": {
		Agents: 100, Width: 10, Height: 10, Steps: 1000, FPS: 60, Theme: "minimal",
	},
	"tiny": {
		Agents: 10, Width: 5, Height: 5, Steps: 50, FPS: 15, Theme: "retro",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
