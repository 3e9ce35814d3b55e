package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/unit"
)

// Column names recognized in catalog files. The first four are required;
// the rest are optional and unknown columns are ignored.
const (
	colIdentifier = "identifier"
	colRA         = "ra"
	colDec        = "dec"
	colVMag       = "vmag"

	colTessMag      = "tess_mag"
	colExpTime      = "t_sec"
	colExpMeter     = "expmeter"
	colObserveKPF   = "observe_kpf"
	colPeriod       = "period"
	colPlanetRadius = "planet_radius"
	colEpoch        = "epoch"

	colGaiaID    = "gaia_id"
	colTwoMASSID = "twomass_id"
	colParallax  = "parallax"
	colPMRA      = "pm_ra"
	colPMDec     = "pm_dec"
	colGMag      = "g_mag"
	colJMag      = "j_mag"
	colRV        = "rv"
	colSpecType  = "spec_type"
)

var requiredColumns = []string{colIdentifier, colRA, colDec, colVMag}

// RowIssue describes a row dropped during load because a non-essential cell
// could not be parsed. Rows with malformed essential cells abort the load
// instead, so a shrunk target set can never pass for a filter result.
type RowIssue struct {
	Row    string
	Column string
	Reason string
}

// Catalog is the result of loading a target file.
type Catalog struct {
	Targets []Target
	Skipped []RowIssue
}

// ReadFile loads a catalog from a CSV file.
func ReadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return c, nil
}

// Read parses catalog rows from r. The header row must contain the required
// columns identifier, ra, dec and vmag; a missing required column or a
// malformed essential cell yields a DataError naming the column and, where
// possible, the row identifier.
func Read(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &DataError{Reason: "empty catalog file"}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, &DataError{Column: col, Reason: "required column missing"}
		}
	}

	c := &Catalog{}
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return c, nil
		}
		if err != nil {
			return nil, &DataError{Row: strconv.Itoa(row), Reason: err.Error()}
		}

		cell := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		name := cell(colIdentifier)
		if name == "" {
			return nil, dataErrorf(strconv.Itoa(row), colIdentifier, "empty identifier")
		}
		raDeg, err := parseFinite(cell(colRA))
		if err != nil {
			return nil, dataErrorf(name, colRA, "%v", err)
		}
		if raDeg < 0 || raDeg > 360 {
			return nil, dataErrorf(name, colRA, "right ascension %v out of range [0,360]", raDeg)
		}
		if raDeg == 360 {
			raDeg = 0
		}
		decDeg, err := parseFinite(cell(colDec))
		if err != nil {
			return nil, dataErrorf(name, colDec, "%v", err)
		}
		if decDeg < -90 || decDeg > 90 {
			return nil, dataErrorf(name, colDec, "declination %v out of range [-90,90]", decDeg)
		}
		vmag, err := parseFinite(cell(colVMag))
		if err != nil {
			return nil, dataErrorf(name, colVMag, "%v", err)
		}

		// Non-essential cells: empty means absent; a value that fails to
		// parse drops the row and records the reason.
		var bad *RowIssue
		optF := func(col string) *float64 {
			if bad != nil {
				return nil
			}
			s := cell(col)
			if s == "" {
				return nil
			}
			v, err := parseFinite(s)
			if err != nil {
				bad = &RowIssue{Row: name, Column: col, Reason: err.Error()}
				return nil
			}
			return &v
		}
		optS := func(col string) *string {
			s := cell(col)
			if s == "" {
				return nil
			}
			return &s
		}
		optB := func(col string) *bool {
			if bad != nil {
				return nil
			}
			s := cell(col)
			if s == "" {
				return nil
			}
			v, err := strconv.ParseBool(s)
			if err != nil {
				bad = &RowIssue{Row: name, Column: col, Reason: err.Error()}
				return nil
			}
			return &v
		}

		t := Target{
			Name:         name,
			RA:           unit.AngleFromDeg(raDeg),
			Dec:          unit.AngleFromDeg(decDeg),
			VMag:         vmag,
			TessMag:      optF(colTessMag),
			ExpTimeSec:   optF(colExpTime),
			ExpMeter:     optF(colExpMeter),
			ObserveKPF:   optB(colObserveKPF),
			Period:       optF(colPeriod),
			PlanetRadius: optF(colPlanetRadius),
			Epoch:        optF(colEpoch),
			Enrichment: Enrichment{
				GaiaID:    optS(colGaiaID),
				TwoMASSID: optS(colTwoMASSID),
				Parallax:  optF(colParallax),
				PMRA:      optF(colPMRA),
				PMDec:     optF(colPMDec),
				GMag:      optF(colGMag),
				JMag:      optF(colJMag),
				RV:        optF(colRV),
				SpecType:  optS(colSpecType),
			},
		}
		if bad != nil {
			c.Skipped = append(c.Skipped, *bad)
			continue
		}
		c.Targets = append(c.Targets, t)
	}
}

func parseFinite(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not numeric: %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value: %q", s)
	}
	return v, nil
}
