package config

import (
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Agents <= 0 {
		t.Error("agents should be positive")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("grid dimensions should be positive")
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default ok", func(c *Config) {}, false},
		{"too many agents", func(c *Config) { c.Agents = 9999 }, true},
		{"zero agents", func(c *Config) { c.Agents = 0 }, true},
		{"width too small", func(c *Config) { c.Width = 1 }, true},
		{"max steps", func(c *Config) { c.Steps = 10000 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Agents = 42
	cfg.Seed = 7
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Agents != 42 {
		t.Errorf("agents = %d, want 42", loaded.Agents)
	}
	if loaded.Seed != 7 {
		t.Errorf("seed = %d, want 7", loaded.Seed)
	}
	// Fields absent from the file keep defaults.
	if loaded.FPS != DefaultFPS {
		t.Errorf("fps = %d, want %d", loaded.FPS, DefaultFPS)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sparse")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Agents != 30 {
		t.Errorf("expected 30 agents, got %d", cfg.Agents)
	}

	// Presets return copies; mutating one must not leak.
	cfg.Agents = 1
	if GetPreset("sparse").Agents != 30 {
		t.Error("preset mutated through returned copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	sort.Strings(names)
	found := false
	for _, n := range names {
		if n == "default" {
			found = true
		}
	}
	if !found {
		t.Error("expected a default preset")
	}
}

func TestParamSchema(t *testing.T) {
	schema := Schema()
	if len(schema) == 0 {
		t.Fatal("expected parameters in schema")
	}
	for _, p := range schema {
		if p.Min > p.Max {
			t.Errorf("param %s: min > max", p.Name)
		}
		if p.Default < p.Min || p.Default > p.Max {
			t.Errorf("param %s: default outside range", p.Name)
		}
	}
}

func TestParamClamp(t *testing.T) {
	p, ok := ParamByName("agents")
	if !ok {
		t.Fatal("agents param missing")
	}

	tests := []struct {
		in   float64
		want float64
	}{
		{-5, p.Min},
		{1e9, p.Max},
		{50, 50},
		{50.4, 50},
	}
	for _, tt := range tests {
		if got := p.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
