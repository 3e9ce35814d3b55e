package ob

import (
	"fmt"
	"strconv"

	"github.com/petigura/ariel-kpf/core/catalog"
)

// Exposure times are inflated to allow for up to a 4x slowdown on sky.
const slowdownFactor = 4

// Scheduling defaults applied to every block.
const (
	DefaultVisits    = 4
	DefaultMinNights = 1
)

// Keys the scheduling service fills in itself; stale template values are
// dropped so they cannot shadow the computed ones.
var autoFilledKeys = []string{
	"total_observations_requested",
	"total_time_for_target",
	"total_time_for_target_hours",
}

// Constraint bounds when a block may be scheduled.
type Constraint struct {
	// Start and End are civil times, layout 2006-01-02T15:04.
	Start string
	End   string
	// Visits is the number of nights requested over the window. Zero
	// means DefaultVisits.
	Visits int
	// MinNights is the internight cadence floor. Zero means
	// DefaultMinNights.
	MinNights int
}

// Build renders one observing block for a target. The template is never
// mutated, so repeated builds from the same template are independent.
func (t *Template) Build(tgt catalog.Target, c Constraint) (OB, error) {
	if tgt.ExpTimeSec != nil && *tgt.ExpTimeSec < 0 {
		return nil, &MappingError{Target: tgt.Name, Section: "observation", Field: "ExpTime",
			Reason: fmt.Sprintf("exposure time %v is negative", *tgt.ExpTimeSec)}
	}
	if tgt.ExpMeter != nil && *tgt.ExpMeter < 0 {
		return nil, &MappingError{Target: tgt.Name, Section: "observation", Field: "ExpMeterThreshold",
			Reason: fmt.Sprintf("exposure meter threshold %v is negative", *tgt.ExpMeter)}
	}
	if c.Visits == 0 {
		c.Visits = DefaultVisits
	}
	if c.MinNights == 0 {
		c.MinNights = DefaultMinNights
	}

	block := t.Base()
	target, err := block.section("target")
	if err != nil {
		return nil, err
	}
	observation, err := block.section("observation")
	if err != nil {
		return nil, err
	}
	schedule, err := block.section("schedule")
	if err != nil {
		return nil, err
	}

	target["TargetName"] = tgt.Name
	target["RA"] = catalog.FormatRA(tgt.RA)
	target["DEC"] = catalog.FormatDec(tgt.Dec)
	target["ra_deg"] = tgt.RADeg()
	target["dec_deg"] = tgt.DecDeg()
	setOrDrop(target, "GaiaID", tgt.GaiaID)
	setOrDrop(target, "2MASSID", tgt.TwoMASSID)
	setOrDrop(target, "Parallax", tgt.Parallax)
	setOrDrop(target, "PMRA", tgt.PMRA)
	setOrDrop(target, "PMDEC", tgt.PMDec)
	setOrDrop(target, "Gmag", tgt.GMag)
	setOrDrop(target, "Jmag", tgt.JMag)
	setOrDrop(target, "RadVel", tgt.RV)
	setOrDrop(target, "SpecType", tgt.SpecType)

	// Object must match TargetName or downstream tooling rejects the block.
	observation["Object"] = tgt.Name
	if tgt.ExpTimeSec != nil {
		observation["ExpTime"] = strconv.Itoa(int(*tgt.ExpTimeSec * slowdownFactor))
	}
	if tgt.ExpMeter != nil {
		observation["ExpMeterThreshold"] = *tgt.ExpMeter
	}

	schedule["custom_time_constraints"] = []any{
		map[string]any{
			"start_datetime": c.Start,
			"end_datetime":   c.End,
		},
	}
	schedule["num_nights_per_semester"] = c.Visits
	schedule["num_internight_cadence"] = c.MinNights
	for _, k := range autoFilledKeys {
		delete(schedule, k)
	}

	if _, ok := block["metadata"]; !ok {
		block["metadata"] = map[string]any{}
	}
	return block, nil
}

// setOrDrop writes the key when a value is known and removes it otherwise,
// so no block carries a template placeholder for data we lack.
func setOrDrop[T any](section map[string]any, key string, v *T) {
	if v == nil {
		delete(section, key)
		return
	}
	section[key] = *v
}
