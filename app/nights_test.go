package app

import (
	"errors"
	"testing"
	"time"

	"github.com/petigura/ariel-kpf/config"
)

func TestSemesterRange(t *testing.T) {
	cases := []struct {
		sem  string
		from string
		to   string
	}{
		{"2025A", "2025-02-01", "2025-07-31"},
		{"2025B", "2025-08-01", "2026-01-31"},
		{"2026b", "2026-08-01", "2027-01-31"},
	}
	for _, c := range cases {
		from, to, err := semesterRange(c.sem)
		if err != nil {
			t.Fatalf("%s: %v", c.sem, err)
		}
		if from.Format("2006-01-02") != c.from || to.Format("2006-01-02") != c.to {
			t.Errorf("%s: got %s to %s, want %s to %s",
				c.sem, from.Format(time.DateOnly), to.Format(time.DateOnly), c.from, c.to)
		}
	}
}

func TestSemesterRangeRejectsGarbage(t *testing.T) {
	for _, sem := range []string{"", "2025", "2025C", "late25", "2025AB"} {
		_, _, err := semesterRange(sem)
		var cerr *config.ConfigError
		if !errors.As(err, &cerr) {
			t.Errorf("%q: want ConfigError, got %v", sem, err)
		}
	}
}
