package app

import (
	"github.com/petigura/ariel-kpf/config"
	"github.com/petigura/ariel-kpf/core/catalog"
	"github.com/petigura/ariel-kpf/core/semester"
)

// Magsplit plans the named strategy's semester: the newest KPF catalog is
// bucketed into the strategy's month bands and each set is cut into bright
// and faint halves of roughly equal charged observing time.
func (s *Service) Magsplit(strategy string) (*semester.Plan, error) {
	if strategy == "" {
		strategy = DefaultStrategy
	}
	strat, err := s.cfg.Strategy(strategy)
	if err != nil {
		return nil, err
	}
	src, err := s.cfg.Paths.LatestCatalog(config.KPFCatalogPrefix)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.ReadFile(src)
	if err != nil {
		return nil, err
	}

	bands := make([]semester.Band, len(strat.Months))
	for i, w := range strat.Months {
		bands[i] = semester.Band{Key: w.Month, Range: catalog.RARange{Min: w.RAMin, Max: w.RAMax}}
	}
	plan := semester.BuildPlan(cat.Targets, bands)
	s.log.Infof("%s: %d targets in semester, %d outside every band",
		strat.Name, len(plan.Semester.Bright.Targets)+len(plan.Semester.Faint.Targets), plan.Outside)
	return &plan, nil
}
