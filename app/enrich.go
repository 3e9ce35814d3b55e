package app

import (
	"context"

	"github.com/petigura/ariel-kpf/config"
	"github.com/petigura/ariel-kpf/core/catalog"
)

// Enrich resolves every target of the newest KPF catalog against the name
// service and writes a new timestamped catalog with the merged fields.
// batchSize zero keeps the configured batch size. A failed batch degrades
// to "no enrichment for its identifiers" and the run continues: those rows
// are written back unchanged.
func (s *Service) Enrich(ctx context.Context, batchSize int) (string, error) {
	if batchSize <= 0 {
		batchSize = s.cfg.Simbad.BatchSize
	}
	src, err := s.cfg.Paths.LatestCatalog(config.KPFCatalogPrefix)
	if err != nil {
		return "", err
	}
	cat, err := catalog.ReadFile(src)
	if err != nil {
		return "", err
	}

	ids := make([]string, len(cat.Targets))
	for i, t := range cat.Targets {
		ids[i] = t.Name
	}

	resolved := make(map[string]catalog.Enrichment, len(ids))
	failed := 0
	for start := 0; start < len(ids); start += batchSize {
		end := min(start+batchSize, len(ids))
		batch, err := s.simbad.Resolve(ctx, ids[start:end])
		if err != nil {
			failed += end - start
			s.log.Errorf("resolve batch %d-%d: %v", start, end-1, err)
			for _, id := range ids[start:end] {
				s.log.Warnf("no enrichment for %s: batch failed", id)
			}
			continue
		}
		for id, e := range batch {
			resolved[id] = e
		}
	}

	merged := make([]catalog.Target, len(cat.Targets))
	hits := 0
	for i, t := range cat.Targets {
		merged[i] = t
		e, ok := resolved[t.Name]
		if !ok {
			continue
		}
		merged[i].Enrichment = mergeEnrichment(t.Enrichment, e)
		if merged[i].Resolved() {
			hits++
		}
	}
	s.log.Infof("%s: %d of %d targets enriched (%d in failed batches)",
		src, hits, len(merged), failed)

	path := s.cfg.Paths.StampedCatalog(config.KPFCatalogPrefix, s.now())
	if err := catalog.WriteFile(path, merged); err != nil {
		return "", err
	}
	return path, nil
}

// mergeEnrichment overlays resolved values on whatever the catalog already
// carried. The service is authoritative only where it answered; a field it
// left empty keeps its prior value.
func mergeEnrichment(old, res catalog.Enrichment) catalog.Enrichment {
	out := old
	if res.GaiaID != nil {
		out.GaiaID = res.GaiaID
	}
	if res.TwoMASSID != nil {
		out.TwoMASSID = res.TwoMASSID
	}
	if res.Parallax != nil {
		out.Parallax = res.Parallax
	}
	if res.PMRA != nil {
		out.PMRA = res.PMRA
	}
	if res.PMDec != nil {
		out.PMDec = res.PMDec
	}
	if res.GMag != nil {
		out.GMag = res.GMag
	}
	if res.JMag != nil {
		out.JMag = res.JMag
	}
	if res.RV != nil {
		out.RV = res.RV
	}
	if res.SpecType != nil {
		out.SpecType = res.SpecType
	}
	return out
}
