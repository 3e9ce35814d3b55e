package report

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"
)

// Store persists run reports in a JSONL file, one run per line, and reads
// them back for the history listing. It only keeps whole runs; per-month
// records reach it nested in the run.
type Store struct {
	path string
	mu   sync.Mutex
}

var _ Sink = (*Store)(nil)

func NewStore(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	if cerr := f.Close(); cerr != nil {
		return nil, cerr
	}
	return &Store{path: path}, nil
}

func (s *Store) RecordMonth(MonthReport) error { return nil }

func (s *Store) RecordRun(r RunReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	enc := json.NewEncoder(f)
	return enc.Encode(r)
}

// Recent returns the last n runs, oldest first. Lines that fail to decode
// are skipped so one corrupt record cannot hide the rest of the history.
func (s *Store) Recent(n int) ([]RunReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var runs []RunReport
	scanner := bufio.NewScanner(f)
	// Runs with long exclusion lists overflow the default line buffer.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		var r RunReport
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			continue
		}
		runs = append(runs, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read run log: %w", err)
	}
	if n > 0 && len(runs) > n {
		runs = runs[len(runs)-n:]
	}
	return runs, nil
}
