package config

import (
	"fmt"
	"time"
)

// TimeLayout is the civil-time layout for scheduling windows, used both in
// config files and in generated observing blocks.
const TimeLayout = "2006-01-02T15:04"

// MonthWindow pairs a right-ascension band with the scheduling window in
// which its targets may be observed.
type MonthWindow struct {
	// Month keys the window within its strategy, e.g. "nov" or "febmar".
	Month string `json:"month"`
	// RAMin and RAMax bound the band in degrees. The band is half open:
	// RAMin is inside, RAMax is not. RAMin above RAMax wraps through 0h.
	RAMin float64 `json:"ra_min"`
	RAMax float64 `json:"ra_max"`
	// Start and End bound the scheduling window, layout TimeLayout.
	Start string `json:"start"`
	End   string `json:"end"`
	// Visits overrides the number of nights requested per target. Zero
	// keeps the strategy constant of four.
	Visits int `json:"visits,omitempty"`
	// MinNights overrides the internight cadence floor. Zero keeps the
	// strategy constant of one night.
	MinNights int `json:"min_nights,omitempty"`
}

// StrategyConfig names an ordered set of observing months.
type StrategyConfig struct {
	Name   string        `json:"name"`
	Months []MonthWindow `json:"months"`
}

// DefaultStrategies returns the built-in observing strategies. version1 is
// the 2025B single-month plan, version2 the 2026B two-month plan.
func DefaultStrategies() []StrategyConfig {
	return []StrategyConfig{
		{
			Name: "version1",
			Months: []MonthWindow{
				{Month: "nov", RAMin: 300, RAMax: 360, Start: "2025-11-01T12:00", End: "2025-12-01T12:00"},
				{Month: "dec", RAMin: 0, RAMax: 60, Start: "2025-12-01T12:00", End: "2026-01-01T12:00"},
				{Month: "jan", RAMin: 60, RAMax: 120, Start: "2026-01-01T12:00", End: "2026-02-01T12:00"},
			},
		},
		{
			Name: "version2",
			Months: []MonthWindow{
				{Month: "febmar", RAMin: 120, RAMax: 180, Start: "2026-02-01T12:00", End: "2026-04-01T12:00"},
				{Month: "aprmay", RAMin: 180, RAMax: 240, Start: "2026-04-01T12:00", End: "2026-06-01T12:00"},
				{Month: "junjul", RAMin: 240, RAMax: 300, Start: "2026-06-01T12:00", End: "2026-08-01T12:00"},
			},
		},
	}
}

// Wraps reports whether the band crosses 0h.
func (w MonthWindow) Wraps() bool { return w.RAMin > w.RAMax }

// Year returns the calendar year the scheduling window opens. Validate
// rejects unparsable windows, so zero never escapes a loaded config.
func (w MonthWindow) Year() int {
	t, err := time.Parse(TimeLayout, w.Start)
	if err != nil {
		return 0
	}
	return t.Year()
}

func (w MonthWindow) validate() error {
	if w.Month == "" {
		return &ConfigError{What: "month window", Reason: "missing month key"}
	}
	if w.RAMin < 0 || w.RAMin > 360 || w.RAMax < 0 || w.RAMax > 360 {
		return &ConfigError{What: "month window", Name: w.Month,
			Reason: fmt.Sprintf("right-ascension band [%v,%v) outside [0,360]", w.RAMin, w.RAMax)}
	}
	if w.RAMin == w.RAMax {
		return &ConfigError{What: "month window", Name: w.Month,
			Reason: fmt.Sprintf("right-ascension band [%v,%v) is empty", w.RAMin, w.RAMax)}
	}
	start, err := time.Parse(TimeLayout, w.Start)
	if err != nil {
		return &ConfigError{What: "month window", Name: w.Month,
			Reason: fmt.Sprintf("start %q does not match layout %s", w.Start, TimeLayout)}
	}
	end, err := time.Parse(TimeLayout, w.End)
	if err != nil {
		return &ConfigError{What: "month window", Name: w.Month,
			Reason: fmt.Sprintf("end %q does not match layout %s", w.End, TimeLayout)}
	}
	if !start.Before(end) {
		return &ConfigError{What: "month window", Name: w.Month,
			Reason: fmt.Sprintf("start %s not before end %s", w.Start, w.End)}
	}
	if w.Visits < 0 || w.MinNights < 0 {
		return &ConfigError{What: "month window", Name: w.Month,
			Reason: "visits and min_nights cannot be negative"}
	}
	return nil
}

// segments expands the band into non-wrapping half-open intervals.
func (w MonthWindow) segments() [][2]float64 {
	if w.Wraps() {
		return [][2]float64{{w.RAMin, 360}, {0, w.RAMax}}
	}
	return [][2]float64{{w.RAMin, w.RAMax}}
}

func bandsOverlap(a, b MonthWindow) bool {
	for _, s := range a.segments() {
		for _, t := range b.segments() {
			if s[0] < t[1] && t[0] < s[1] {
				return true
			}
		}
	}
	return false
}

// Validate checks the strategy is internally consistent: every window well
// formed, month keys unique, and no two bands claiming the same sky.
func (s StrategyConfig) Validate() error {
	if s.Name == "" {
		return &ConfigError{What: "strategy", Reason: "missing name"}
	}
	if len(s.Months) == 0 {
		return &ConfigError{What: "strategy", Name: s.Name, Reason: "no months defined"}
	}
	seen := make(map[string]bool, len(s.Months))
	for _, m := range s.Months {
		if err := m.validate(); err != nil {
			return fmt.Errorf("strategy %s: %w", s.Name, err)
		}
		if seen[m.Month] {
			return &ConfigError{What: "month", Name: m.Month, Reason: "defined twice in strategy " + s.Name}
		}
		seen[m.Month] = true
	}
	for i := 0; i < len(s.Months); i++ {
		for j := i + 1; j < len(s.Months); j++ {
			if bandsOverlap(s.Months[i], s.Months[j]) {
				return &ConfigError{What: "month windows", Name: s.Months[i].Month + ", " + s.Months[j].Month,
					Reason: "right-ascension bands overlap in strategy " + s.Name}
			}
		}
	}
	return nil
}

// MonthKeys lists window keys in strategy order.
func (s *StrategyConfig) MonthKeys() []string {
	keys := make([]string, len(s.Months))
	for i, m := range s.Months {
		keys[i] = m.Month
	}
	return keys
}

// Month finds a window by key.
func (s *StrategyConfig) Month(key string) (*MonthWindow, error) {
	for i := range s.Months {
		if s.Months[i].Month == key {
			return &s.Months[i], nil
		}
	}
	return nil, &ConfigError{What: "month", Name: key, Valid: s.MonthKeys()}
}
