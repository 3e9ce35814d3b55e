package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/petigura/ariel-kpf/config"
	"github.com/petigura/ariel-kpf/infra/keck"
)

// Nights downloads the telescope schedule for one semester and saves the
// allocated nights in the data directory.
func (s *Service) Nights(ctx context.Context, sem string) (string, int, error) {
	from, to, err := semesterRange(sem)
	if err != nil {
		return "", 0, err
	}
	nights, err := s.keck.Schedule(ctx, sem, from, to)
	if err != nil {
		return "", 0, fmt.Errorf("schedule %s: %w", sem, err)
	}
	for month, n := range keck.NightsByMonth(nights) {
		s.log.Debugf("%s: %d nights in %s", sem, n, month)
	}

	path := filepath.Join(s.cfg.Paths.DataDir, fmt.Sprintf("keck_schedule_%s.csv", sem))
	if err := writeNights(path, nights); err != nil {
		return "", 0, err
	}
	s.log.Infof("%s: %d %s nights saved to %s", sem, len(nights), s.cfg.Keck.Instrument, path)
	return path, len(nights), nil
}

// semesterRange maps a semester name like 2025B onto its calendar span.
// Semester A runs February through July, B runs August through the
// following January.
func semesterRange(sem string) (from, to time.Time, err error) {
	if len(sem) != 5 {
		return from, to, &config.ConfigError{What: "semester", Name: sem, Reason: "want a year and a letter, like 2025B"}
	}
	year, perr := strconv.Atoi(sem[:4])
	if perr != nil {
		return from, to, &config.ConfigError{What: "semester", Name: sem, Reason: "want a year and a letter, like 2025B"}
	}
	switch strings.ToUpper(sem[4:]) {
	case "A":
		from = time.Date(year, time.February, 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(year, time.July, 31, 0, 0, 0, 0, time.UTC)
	case "B":
		from = time.Date(year, time.August, 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(year+1, time.January, 31, 0, 0, 0, 0, time.UTC)
	default:
		return from, to, &config.ConfigError{What: "semester", Name: sem, Valid: []string{sem[:4] + "A", sem[:4] + "B"}}
	}
	return from, to, nil
}

func writeNights(path string, nights []keck.Night) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"Date", "Instrument"}); err != nil {
		return err
	}
	for _, n := range nights {
		if err := cw.Write([]string{n.Date.Format("2006-01-02"), n.Instrument}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
