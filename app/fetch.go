package app

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/petigura/ariel-kpf/config"
	"github.com/petigura/ariel-kpf/core/catalog"
	"github.com/petigura/ariel-kpf/infra/sheets"
)

// Fetch downloads the published target list, verifies it parses as a
// catalog and saves the raw bytes under a timestamped name. The file is
// written verbatim so the download can be diffed against later ones.
// A non-empty url overrides the configured export endpoint for this call.
func (s *Service) Fetch(ctx context.Context, url string) (string, error) {
	client := s.sheets
	if url != "" {
		cfg := s.cfg.Sheets
		cfg.URL = url
		client = sheets.NewClient(cfg)
	}
	body, err := client.Download(ctx)
	if err != nil {
		return "", fmt.Errorf("download catalog: %w", err)
	}
	cat, err := catalog.Read(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("downloaded catalog: %w", err)
	}

	path := s.cfg.Paths.StampedCatalog(config.CatalogPrefix, s.now())
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("save catalog: %w", err)
	}
	s.logCatalogSummary(path, cat)
	return path, nil
}

// Targets reduces the newest downloaded catalog to the rows flagged for
// KPF follow-up and writes them as a new timestamped catalog.
func (s *Service) Targets() (string, error) {
	src, err := s.cfg.Paths.LatestCatalog(config.CatalogPrefix)
	if err != nil {
		return "", err
	}
	cat, err := catalog.ReadFile(src)
	if err != nil {
		return "", err
	}
	kpf, rest := catalog.FilterKPF(cat.Targets)
	s.log.Infof("%s: %d of %d targets flagged for KPF", src, len(kpf), len(kpf)+len(rest))

	path := s.cfg.Paths.StampedCatalog(config.KPFCatalogPrefix, s.now())
	if err := catalog.WriteFile(path, kpf); err != nil {
		return "", err
	}
	s.logCatalogSummary(path, &catalog.Catalog{Targets: kpf})
	return path, nil
}

func (s *Service) logCatalogSummary(path string, cat *catalog.Catalog) {
	n := len(cat.Targets)
	if n == 0 {
		s.log.Warnf("%s: catalog is empty", path)
		return
	}
	ras := make([]float64, n)
	decs := make([]float64, n)
	vmags := make([]float64, n)
	kpfCount := 0
	for i, t := range cat.Targets {
		ras[i] = t.RADeg()
		decs[i] = t.DecDeg()
		vmags[i] = t.VMag
		if t.KPF() {
			kpfCount++
		}
	}
	s.log.Infof("%s: %d targets (%d KPF), ra %.2f-%.2f, dec %.2f-%.2f, vmag %.2f-%.2f",
		path, n, kpfCount,
		floats.Min(ras), floats.Max(ras),
		floats.Min(decs), floats.Max(decs),
		floats.Min(vmags), floats.Max(vmags))
	for _, issue := range cat.Skipped {
		s.log.Warnf("%s: dropped row %s (column %q: %s)", path, issue.Row, issue.Column, issue.Reason)
	}
}
