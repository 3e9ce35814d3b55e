package keck

import "fmt"

// DefaultBaseURL is the Keck telescope schedule query form.
const DefaultBaseURL = "https://www2.keck.hawaii.edu/observing/keckSchedule/queryForm.php"

// Config for the telescope schedule client.
type Config struct {
	// BaseURL is the schedule query endpoint.
	BaseURL string `json:"base_url"`
	// Instrument filters schedule rows server side.
	Instrument string `json:"instrument"`
	// TimeoutSeconds bounds a single query.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Instrument == "" {
		c.Instrument = "KPF-CC"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 30
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Instrument == "" {
		return fmt.Errorf("instrument is required")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive")
	}
	return nil
}
