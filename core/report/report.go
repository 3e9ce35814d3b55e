// Package report accounts for what a generation run did: how many targets
// came in, where every excluded target went, and which files were written.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/petigura/ariel-kpf/core/logger"
)

// Stages an exclusion can happen at.
const (
	StageLoad  = "load"
	StageKPF   = "kpf-filter"
	StageRA    = "ra-filter"
	StageBuild = "build"
)

// Exclusion records one target dropped from an output, and why.
type Exclusion struct {
	Identifier string `json:"identifier"`
	Stage      string `json:"stage"`
	Reason     string `json:"reason"`
}

// MonthReport accounts for one month window of a run.
type MonthReport struct {
	Strategy string      `json:"strategy"`
	Month    string      `json:"month"`
	Eligible int         `json:"eligible"` // targets entering the window filter
	Selected int         `json:"selected"` // targets inside the band
	Built    int         `json:"built"`    // blocks written
	Files    []string    `json:"files"`
	Excluded []Exclusion `json:"excluded,omitempty"`
}

// Balanced reports whether every eligible target is accounted for, either
// built into a block or excluded with a reason.
func (m MonthReport) Balanced() bool {
	return m.Built+len(m.Excluded) == m.Eligible
}

// RunReport accounts for a whole generation run.
type RunReport struct {
	ID       string        `json:"id"`
	Catalog  string        `json:"catalog"`
	Strategy string        `json:"strategy"`
	Started  time.Time     `json:"started"`
	Finished time.Time     `json:"finished"`
	Loaded   int           `json:"loaded"`             // rows parsed into targets
	Excluded []Exclusion   `json:"excluded,omitempty"` // run-level drops: load skips, flag filter
	Months   []MonthReport `json:"months"`
}

// NewRun starts an empty report with a fresh id.
func NewRun(strategy string) *RunReport {
	return &RunReport{
		ID:       uuid.NewString(),
		Strategy: strategy,
		Started:  time.Now().UTC(),
	}
}

// Finish stamps the end of the run.
func (r *RunReport) Finish() {
	r.Finished = time.Now().UTC()
}

// TotalBuilt sums built blocks across months.
func (r *RunReport) TotalBuilt() int {
	n := 0
	for _, m := range r.Months {
		n += m.Built
	}
	return n
}

// Sink receives accounting as the run produces it.
type Sink interface {
	RecordMonth(m MonthReport) error
	RecordRun(r RunReport) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordMonth(MonthReport) error { return nil }
func (NopSink) RecordRun(RunReport) error     { return nil }

// LogSink narrates accounting through a logger.
type LogSink struct {
	Log logger.Logger
}

func (s LogSink) RecordMonth(m MonthReport) error {
	s.Log.Infof("%s/%s: %d of %d targets selected, %d blocks built",
		m.Strategy, m.Month, m.Selected, m.Eligible, m.Built)
	for _, ex := range m.Excluded {
		s.Log.Debugf("excluded %s at %s: %s", ex.Identifier, ex.Stage, ex.Reason)
	}
	return nil
}

func (s LogSink) RecordRun(r RunReport) error {
	s.Log.Infof("run %s: %d targets loaded, %d blocks built across %d months in %s",
		r.ID, r.Loaded, r.TotalBuilt(), len(r.Months),
		r.Finished.Sub(r.Started).Round(time.Millisecond))
	for _, ex := range r.Excluded {
		s.Log.Debugf("excluded %s at %s: %s", ex.Identifier, ex.Stage, ex.Reason)
	}
	return nil
}

// Multi fans accounting out to several sinks.
type Multi []Sink

func (m Multi) RecordMonth(r MonthReport) error {
	for _, s := range m {
		if err := s.RecordMonth(r); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) RecordRun(r RunReport) error {
	for _, s := range m {
		if err := s.RecordRun(r); err != nil {
			return err
		}
	}
	return nil
}
