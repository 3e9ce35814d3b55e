// Package app wires configuration, infra clients and the core pipeline
// into the operations the CLI exposes.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/petigura/ariel-kpf/config"
	"github.com/petigura/ariel-kpf/core/logger"
	"github.com/petigura/ariel-kpf/core/report"
	"github.com/petigura/ariel-kpf/infra/keck"
	infralog "github.com/petigura/ariel-kpf/infra/logger"
	"github.com/petigura/ariel-kpf/infra/sheets"
	"github.com/petigura/ariel-kpf/infra/simbad"
)

// Service orchestrates one invocation of the target pipeline.
type Service struct {
	cfg    *config.Config
	log    logger.Logger
	sink   report.Sink
	sheets *sheets.Client
	simbad *simbad.Client
	keck   *keck.Client

	// now stamps output filenames; swapped in tests.
	now func() time.Time
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := infralog.New("app")
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	store, err := report.NewStore(cfg.Paths.RunLog)
	if err != nil {
		return nil, fmt.Errorf("run log: %w", err)
	}
	return &Service{
		cfg:    cfg,
		log:    logg,
		sink:   report.Multi{report.LogSink{Log: logg}, store},
		sheets: sheets.NewClient(cfg.Sheets),
		simbad: simbad.NewClient(cfg.Simbad),
		keck:   keck.NewClient(cfg.Keck),
		now:    time.Now,
	}, nil
}

// Runs returns the last n generation runs, oldest first.
func (s *Service) Runs(n int) ([]report.RunReport, error) {
	store, err := report.NewStore(s.cfg.Paths.RunLog)
	if err != nil {
		return nil, fmt.Errorf("run log: %w", err)
	}
	return store.Recent(n)
}
