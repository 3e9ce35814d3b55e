package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/petigura/ariel-kpf/config"
	"github.com/petigura/ariel-kpf/core/catalog"
	"github.com/petigura/ariel-kpf/core/ob"
	"github.com/petigura/ariel-kpf/core/report"
)

// GenerateOptions select what one generation run covers.
type GenerateOptions struct {
	// Strategy names the observing strategy. Empty means DefaultStrategy.
	Strategy string
	// Month restricts the run to one window of the strategy. Empty means
	// every window plus the aggregate files.
	Month string
	// TestTargets sizes the small test partition. Zero means ob.TestSize.
	TestTargets int
	// Catalog overrides the input file. Empty resolves the newest
	// ariel_kpf_targets catalog in the data directory.
	Catalog string
}

// DefaultStrategy is used when a run does not name one.
const DefaultStrategy = "version1"

// Generate builds observing blocks for every requested month window and
// writes the full, test and extended-test partitions of each. The returned
// report accounts for every target that entered the run.
func (s *Service) Generate(opts GenerateOptions) (*report.RunReport, error) {
	if opts.Strategy == "" {
		opts.Strategy = DefaultStrategy
	}
	if opts.TestTargets == 0 {
		opts.TestTargets = ob.TestSize
	}
	strat, err := s.cfg.Strategy(opts.Strategy)
	if err != nil {
		return nil, err
	}
	months := strat.Months
	if opts.Month != "" {
		w, err := strat.Month(opts.Month)
		if err != nil {
			return nil, err
		}
		months = []config.MonthWindow{*w}
	}

	tmpl, err := ob.LoadTemplate(s.cfg.Paths.Template)
	if err != nil {
		return nil, err
	}

	catalogPath := opts.Catalog
	if catalogPath == "" {
		catalogPath, err = s.cfg.Paths.LatestCatalog(config.KPFCatalogPrefix)
		if err != nil {
			return nil, err
		}
	}
	cat, err := catalog.ReadFile(catalogPath)
	if err != nil {
		return nil, err
	}
	s.log.Infof("catalog %s: %d targets", catalogPath, len(cat.Targets))

	run := report.NewRun(strat.Name)
	run.Catalog = catalogPath
	run.Loaded = len(cat.Targets)
	for _, issue := range cat.Skipped {
		run.Excluded = append(run.Excluded, report.Exclusion{
			Identifier: issue.Row,
			Stage:      report.StageLoad,
			Reason:     fmt.Sprintf("column %q: %s", issue.Column, issue.Reason),
		})
	}

	var aggregate []ob.OB
	for _, w := range months {
		blocks, mr, err := s.generateMonth(strat.Name, w, cat.Targets, tmpl, opts.TestTargets)
		if err != nil {
			return nil, err
		}
		run.Months = append(run.Months, *mr)
		aggregate = append(aggregate, blocks...)
	}

	// A single-month run is a partial view of the strategy; only a run over
	// every window gets the cross-month aggregate.
	if opts.Month == "" {
		files, err := s.writePartitions(blockStem(strat.Name, months[0].Year()), aggregate, opts.TestTargets)
		if err != nil {
			return nil, err
		}
		s.log.Infof("aggregate: %d blocks across %d months", len(aggregate), len(months))
		run.Months[len(run.Months)-1].Files = append(run.Months[len(run.Months)-1].Files, files...)
	}

	run.Finish()
	if err := s.sink.RecordRun(*run); err != nil {
		return nil, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

// generateMonth filters the catalog to one window, builds its blocks and
// writes its three partitions. A systemic template fault aborts; a fault in
// one target's data excludes only that target.
func (s *Service) generateMonth(strategy string, w config.MonthWindow, targets []catalog.Target, tmpl *ob.Template, testTargets int) ([]ob.OB, *report.MonthReport, error) {
	in, out := catalog.FilterRA(targets, catalog.RARange{Min: w.RAMin, Max: w.RAMax})
	mr := &report.MonthReport{
		Strategy: strategy,
		Month:    w.Month,
		Eligible: len(targets),
		Selected: len(in),
	}
	for _, t := range out {
		mr.Excluded = append(mr.Excluded, report.Exclusion{
			Identifier: t.Name,
			Stage:      report.StageRA,
			Reason:     fmt.Sprintf("ra %.4f outside [%v,%v)", t.RADeg(), w.RAMin, w.RAMax),
		})
	}

	c := ob.Constraint{Start: w.Start, End: w.End, Visits: w.Visits, MinNights: w.MinNights}
	blocks := make([]ob.OB, 0, len(in))
	for _, t := range in {
		b, err := tmpl.Build(t, c)
		if err != nil {
			var me *ob.MappingError
			if errors.As(err, &me) && me.Systemic {
				return nil, nil, err
			}
			s.log.Warnf("%s/%s: %v", strategy, w.Month, err)
			mr.Excluded = append(mr.Excluded, report.Exclusion{
				Identifier: t.Name,
				Stage:      report.StageBuild,
				Reason:     err.Error(),
			})
			continue
		}
		blocks = append(blocks, b)
	}
	mr.Built = len(blocks)

	files, err := s.writePartitions(blockStem(w.Month, w.Year()), blocks, testTargets)
	if err != nil {
		return nil, nil, err
	}
	mr.Files = files
	if err := s.sink.RecordMonth(*mr); err != nil {
		return nil, nil, fmt.Errorf("record month %s: %w", w.Month, err)
	}
	return blocks, mr, nil
}

// writePartitions writes the full list and its two head/tail reductions.
func (s *Service) writePartitions(stem string, blocks []ob.OB, testTargets int) ([]string, error) {
	parts := []struct {
		suffix string
		blocks []ob.OB
	}{
		{"", blocks},
		{"_test", ob.HeadTail(blocks, testTargets)},
		{"_test_extended", ob.HeadTail(blocks, ob.TestExtendedSize)},
	}
	files := make([]string, 0, len(parts))
	for _, p := range parts {
		path := filepath.Join(s.cfg.Paths.OutputDir, stem+p.suffix+".json")
		if err := ob.WriteFile(path, p.blocks); err != nil {
			return nil, err
		}
		s.log.Debugf("wrote %s: %d blocks", path, len(p.blocks))
		files = append(files, path)
	}
	return files, nil
}

func blockStem(name string, year int) string {
	return fmt.Sprintf("obs_%s_%d", name, year)
}
