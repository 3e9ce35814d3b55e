package simbad

import "fmt"

// DefaultBaseURL is the synchronous TAP endpoint of the SIMBAD service.
const DefaultBaseURL = "https://simbad.cds.unistra.fr/simbad/sim-tap/sync"

// Config for the SIMBAD TAP resolver.
type Config struct {
	// BaseURL is the synchronous TAP query endpoint.
	BaseURL string `json:"base_url"`
	// TimeoutSeconds bounds a single TAP query.
	TimeoutSeconds int `json:"timeout_seconds"`
	// BatchSize caps identifiers per TAP query.
	BatchSize int `json:"batch_size"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 120
	}
	if c.BatchSize == 0 {
		c.BatchSize = 100
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive")
	}
	return nil
}
