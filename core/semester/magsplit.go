// Package semester plans how a semester's targets divide into groups of
// equal observing time.
package semester

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/petigura/ariel-kpf/core/catalog"
)

// Cost model for one target over a semester: a fixed per-visit overhead on
// top of the exposure, times the visit cadence.
const (
	OverheadSec     = 180
	VisitsPerTarget = 4
)

// Cost returns the semester observing cost of one target in seconds.
// Targets without an exposure estimate still cost their overhead.
func Cost(t catalog.Target) float64 {
	exp := 0.0
	if t.ExpTimeSec != nil {
		exp = *t.ExpTimeSec
	}
	return (exp + OverheadSec) * VisitsPerTarget
}

// Group is one magnitude half of a split.
type Group struct {
	Targets  []catalog.Target
	TotalSec float64
	VMagMin  float64 // brightest member
	VMagMax  float64 // faintest member
}

func (g Group) TotalHours() float64 { return g.TotalSec / 3600 }

func newGroup(ts []catalog.Target) Group {
	g := Group{Targets: ts}
	if len(ts) == 0 {
		return g
	}
	vmags := make([]float64, len(ts))
	for i, t := range ts {
		g.TotalSec += Cost(t)
		vmags[i] = t.VMag
	}
	g.VMagMin = floats.Min(vmags)
	g.VMagMax = floats.Max(vmags)
	return g
}

// Split divides a target set into a bright and a faint half of roughly
// equal observing time.
type Split struct {
	Label   string
	CutVMag float64
	Bright  Group
	Faint   Group
}

// SplitByMagnitude orders targets brightest first and cuts where the
// cumulative observing time lands nearest to half the total. The cut is a
// magnitude threshold, so targets tied at the cutoff all go to the bright
// half even when that unbalances the time.
func SplitByMagnitude(label string, targets []catalog.Target) Split {
	s := Split{Label: label}
	if len(targets) == 0 {
		return s
	}
	ts := make([]catalog.Target, len(targets))
	copy(ts, targets)
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].VMag < ts[j].VMag })

	costs := make([]float64, len(ts))
	for i, t := range ts {
		costs[i] = Cost(t)
	}
	cum := make([]float64, len(ts))
	floats.CumSum(cum, costs)
	half := cum[len(cum)-1] / 2

	pos := sort.SearchFloat64s(cum, half)
	if pos >= len(ts) {
		pos = len(ts) - 1
	}
	if pos > 0 && half-cum[pos-1] <= cum[pos]-half {
		pos--
	}
	s.CutVMag = ts[pos].VMag

	var bright, faint []catalog.Target
	for _, t := range ts {
		if t.VMag <= s.CutVMag {
			bright = append(bright, t)
		} else {
			faint = append(faint, t)
		}
	}
	s.Bright = newGroup(bright)
	s.Faint = newGroup(faint)
	return s
}

// Band pairs a month key with its right-ascension range.
type Band struct {
	Key   string
	Range catalog.RARange
}

// Plan is a semester magnitude split: the whole semester plus each month
// band, all cut independently.
type Plan struct {
	Semester Split
	Months   []Split
	Outside  int // targets in no band, left out of every split
}

// BuildPlan buckets targets into the given bands and splits the semester
// and each band by magnitude. A target belongs to the first band that
// contains it; bands normally do not overlap.
func BuildPlan(targets []catalog.Target, bands []Band) Plan {
	var inSemester []catalog.Target
	byBand := make([][]catalog.Target, len(bands))
	outside := 0
	for _, t := range targets {
		placed := false
		for i, b := range bands {
			if b.Range.Contains(t.RADeg()) {
				byBand[i] = append(byBand[i], t)
				placed = true
				break
			}
		}
		if placed {
			inSemester = append(inSemester, t)
		} else {
			outside++
		}
	}

	p := Plan{
		Semester: SplitByMagnitude("semester", inSemester),
		Outside:  outside,
	}
	for i, b := range bands {
		p.Months = append(p.Months, SplitByMagnitude(b.Key, byBand[i]))
	}
	return p
}
