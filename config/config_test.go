package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `paths:
  data_dir: "/srv/ariel/data"
  output_dir: "/srv/ariel/obs"
strategies:
  - name: "custom"
    months:
      - month: "sep"
        ra_min: 330
        ra_max: 30
        start: "2025-09-01T12:00"
        end: "2025-10-01T12:00"
sheets:
  url: "https://example.test/export?format=csv"
simbad:
  batch_size: 25
keck:
  instrument: "KPF"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"paths.data_dir", cfg.Paths.DataDir, "/srv/ariel/data"},
		{"paths.output_dir", cfg.Paths.OutputDir, "/srv/ariel/obs"},
		{"paths.template default", cfg.Paths.Template, filepath.Join("/srv/ariel/data", "kpf_ob_template.json")},
		{"strategy count", len(cfg.Strategies), 1},
		{"strategy name", cfg.Strategies[0].Name, "custom"},
		{"month key", cfg.Strategies[0].Months[0].Month, "sep"},
		{"wraparound band kept", cfg.Strategies[0].Months[0].Wraps(), true},
		{"sheets.url", cfg.Sheets.URL, "https://example.test/export?format=csv"},
		{"sheets timeout default", cfg.Sheets.TimeoutSeconds, 60},
		{"simbad.batch_size", cfg.Simbad.BatchSize, 25},
		{"simbad url default", cfg.Simbad.BaseURL != "", true},
		{"keck.instrument", cfg.Keck.Instrument, "KPF"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Paths.DataDir != "data" || cfg.Paths.OutputDir != "obs" {
		t.Errorf("default paths = %+v", cfg.Paths)
	}
	if len(cfg.Strategies) != 2 {
		t.Fatalf("got %d default strategies, want 2", len(cfg.Strategies))
	}
	if cfg.Strategies[0].Name != "version1" || cfg.Strategies[1].Name != "version2" {
		t.Errorf("default strategy names = %v", cfg.StrategyNames())
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("want error for explicit missing file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ARIELKPF_PATHS__DATA_DIR", "/env/data")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Paths.DataDir != "/env/data" {
		t.Errorf("data_dir = %q, want /env/data", cfg.Paths.DataDir)
	}
}

func TestLoadRejectsInvalidStrategy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `strategies:
  - name: "broken"
    months:
      - month: "nov"
        ra_min: 300
        ra_max: 300
        start: "2025-11-01T12:00"
        end: "2025-12-01T12:00"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(path)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("want ConfigError, got %v", err)
	}
}

func TestStrategyLookup(t *testing.T) {
	cfg := &Config{Strategies: DefaultStrategies()}
	s, err := cfg.Strategy("version2")
	if err != nil {
		t.Fatalf("Strategy: %v", err)
	}
	if got := s.MonthKeys(); len(got) != 3 || got[0] != "febmar" {
		t.Errorf("month keys = %v", got)
	}

	_, err = cfg.Strategy("version9")
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("want ConfigError, got %v", err)
	}
	if len(cerr.Valid) != 2 {
		t.Errorf("error should list valid strategies, got %v", cerr.Valid)
	}
}
