package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// columns is the canonical output order. Reading does not depend on column
// order, so a file written here round-trips through Read.
var columns = []string{
	colIdentifier, colRA, colDec, colVMag,
	colTessMag, colExpTime, colExpMeter, colObserveKPF,
	colPeriod, colPlanetRadius, colEpoch,
	colGaiaID, colTwoMASSID, colParallax, colPMRA, colPMDec,
	colGMag, colJMag, colRV, colSpecType,
}

// WriteFile writes targets to path as CSV, creating or truncating the file.
func WriteFile(path string, targets []Target) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close catalog: %w", cerr)
		}
	}()
	return Write(f, targets)
}

// Write emits targets as CSV in the canonical column order. Absent optional
// fields become empty cells.
func Write(w io.Writer, targets []Target) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range targets {
		rec := []string{
			t.Name,
			fmtFloat(t.RADeg()),
			fmtFloat(t.DecDeg()),
			fmtFloat(t.VMag),
			fmtOptFloat(t.TessMag),
			fmtOptFloat(t.ExpTimeSec),
			fmtOptFloat(t.ExpMeter),
			fmtOptBool(t.ObserveKPF),
			fmtOptFloat(t.Period),
			fmtOptFloat(t.PlanetRadius),
			fmtOptFloat(t.Epoch),
			fmtOptString(t.GaiaID),
			fmtOptString(t.TwoMASSID),
			fmtOptFloat(t.Parallax),
			fmtOptFloat(t.PMRA),
			fmtOptFloat(t.PMDec),
			fmtOptFloat(t.GMag),
			fmtOptFloat(t.JMag),
			fmtOptFloat(t.RV),
			fmtOptString(t.SpecType),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write target %s: %w", t.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fmtOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return fmtFloat(*v)
}

func fmtOptBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

func fmtOptString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
