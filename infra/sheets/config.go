package sheets

import "fmt"

// DefaultURL is the CSV export endpoint of the published ARIEL target list.
const DefaultURL = "https://docs.google.com/spreadsheets/d/1gAAznK9h4rC-JTsTA1V8eBtJKIj53AjrTiyIJVjrGuE/export?format=csv"

// Config locates the published target-list spreadsheet.
type Config struct {
	// URL is the CSV export endpoint of the published sheet.
	URL string `json:"url"`
	// TimeoutSeconds bounds a single download.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 60
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive")
	}
	return nil
}
