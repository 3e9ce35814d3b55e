package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/petigura/ariel-kpf/infra/keck"
	"github.com/petigura/ariel-kpf/infra/sheets"
	"github.com/petigura/ariel-kpf/infra/simbad"
)

// DefaultPath is consulted when no config file is given. Unlike an explicit
// path it may be absent, in which case the built-in defaults apply.
const DefaultPath = "arielkpf.yaml"

type Config struct {
	Paths      PathsConfig      `json:"paths"`
	Strategies []StrategyConfig `json:"strategies"`
	Sheets     sheets.Config    `json:"sheets"`
	Simbad     simbad.Config    `json:"simbad"`
	Keck       keck.Config      `json:"keck"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	case explicit || !os.IsNotExist(statErr):
		return nil, fmt.Errorf("config file: %w", statErr)
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("ARIELKPF_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "arielkpf_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Paths.SetDefaults()
	cfg.Sheets.SetDefaults()
	cfg.Simbad.SetDefaults()
	cfg.Keck.SetDefaults()
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = DefaultStrategies()
	}
	if err := cfg.Paths.Validate(); err != nil {
		return nil, err
	}
	for _, s := range cfg.Strategies {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	if err := cfg.Sheets.Validate(); err != nil {
		return nil, &ConfigError{What: "sheets", Reason: err.Error()}
	}
	if err := cfg.Simbad.Validate(); err != nil {
		return nil, &ConfigError{What: "simbad", Reason: err.Error()}
	}
	if err := cfg.Keck.Validate(); err != nil {
		return nil, &ConfigError{What: "keck", Reason: err.Error()}
	}
	return &cfg, nil
}

// StrategyNames lists configured strategies in declaration order.
func (c *Config) StrategyNames() []string {
	names := make([]string, len(c.Strategies))
	for i, s := range c.Strategies {
		names[i] = s.Name
	}
	return names
}

// Strategy finds a strategy by name.
func (c *Config) Strategy(name string) (*StrategyConfig, error) {
	for i := range c.Strategies {
		if c.Strategies[i].Name == name {
			return &c.Strategies[i], nil
		}
	}
	return nil, &ConfigError{What: "strategy", Name: name, Valid: c.StrategyNames()}
}
