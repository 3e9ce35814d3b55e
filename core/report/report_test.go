package report

import (
	"path/filepath"
	"testing"
)

func TestMonthReportBalanced(t *testing.T) {
	m := MonthReport{
		Eligible: 5,
		Selected: 3,
		Built:    3,
		Excluded: []Exclusion{
			{Identifier: "HD 1", Stage: StageRA, Reason: "outside band"},
			{Identifier: "HD 2", Stage: StageRA, Reason: "outside band"},
		},
	}
	if !m.Balanced() {
		t.Error("3 built + 2 excluded should balance 5 eligible")
	}

	m.Excluded = m.Excluded[:1]
	if m.Balanced() {
		t.Error("a silently lost target must not balance")
	}
}

func TestRunReportTotals(t *testing.T) {
	r := NewRun("version1")
	if r.ID == "" {
		t.Fatal("run id missing")
	}
	r.Months = []MonthReport{{Built: 4}, {Built: 7}}
	if got := r.TotalBuilt(); got != 11 {
		t.Errorf("TotalBuilt = %d, want 11", got)
	}
	r.Finish()
	if r.Finished.Before(r.Started) {
		t.Error("finish precedes start")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.jsonl")
	st, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for _, strategy := range []string{"version1", "version1", "version2"} {
		r := NewRun(strategy)
		r.Loaded = 10
		r.Finish()
		if err := st.RecordRun(*r); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	runs, err := st.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[1].Strategy != "version2" {
		t.Errorf("last run strategy = %q, want version2", runs[1].Strategy)
	}

	all, err := st.Recent(0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d runs, want 3", len(all))
	}
}

func TestMultiFansOut(t *testing.T) {
	var a, b countingSink
	m := Multi{&a, &b}
	if err := m.RecordMonth(MonthReport{}); err != nil {
		t.Fatalf("RecordMonth: %v", err)
	}
	if err := m.RecordRun(RunReport{}); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if a.months != 1 || b.months != 1 || a.runs != 1 || b.runs != 1 {
		t.Errorf("fan out counts: %+v %+v", a, b)
	}
}

type countingSink struct {
	months, runs int
}

func (c *countingSink) RecordMonth(MonthReport) error { c.months++; return nil }
func (c *countingSink) RecordRun(RunReport) error     { c.runs++; return nil }
