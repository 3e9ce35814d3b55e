package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"
)

// Catalog filename prefixes in the data directory. Full filenames carry a
// timestamp suffix, e.g. ariel_targets_20251003_142501.csv.
const (
	CatalogPrefix    = "ariel_targets"
	KPFCatalogPrefix = "ariel_kpf_targets"

	stampLayout = "20060102_150405"
)

// PathsConfig locates catalog inputs and observing block outputs.
type PathsConfig struct {
	// DataDir holds downloaded target catalogs and the OB template.
	DataDir string `json:"data_dir"`
	// OutputDir receives generated observing block files.
	OutputDir string `json:"output_dir"`
	// Template is the observing block template file.
	Template string `json:"template"`
	// RunLog is the JSONL history of generation runs.
	RunLog string `json:"run_log"`
}

// SetDefaults applies sane defaults.
func (c *PathsConfig) SetDefaults() {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.OutputDir == "" {
		c.OutputDir = "obs"
	}
	if c.Template == "" {
		c.Template = filepath.Join(c.DataDir, "kpf_ob_template.json")
	}
	if c.RunLog == "" {
		c.RunLog = filepath.Join(c.OutputDir, "runs.jsonl")
	}
}

// Validate checks mandatory fields.
func (c PathsConfig) Validate() error {
	if c.DataDir == "" {
		return &ConfigError{What: "paths", Reason: "data_dir is required"}
	}
	if c.OutputDir == "" {
		return &ConfigError{What: "paths", Reason: "output_dir is required"}
	}
	if c.Template == "" {
		return &ConfigError{What: "paths", Reason: "template is required"}
	}
	return nil
}

// StampedCatalog returns the data-dir filename for a catalog written at t.
func (c PathsConfig) StampedCatalog(prefix string, t time.Time) string {
	return filepath.Join(c.DataDir, fmt.Sprintf("%s_%s.csv", prefix, t.Format(stampLayout)))
}

// LatestCatalog resolves the newest catalog with the given prefix. Newest
// means the lexicographically greatest filename: the timestamp suffix is
// zero padded, so name order is write order regardless of file mtimes.
func (c PathsConfig) LatestCatalog(prefix string) (string, error) {
	pattern := filepath.Join(c.DataDir, prefix+"_*.csv")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", &ConfigError{What: "catalog", Name: pattern, Reason: "no files match"}
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
