package catalog

// RARange is a half-open right-ascension interval [Min,Max) in degrees.
// Min > Max denotes an interval crossing 0h, equivalent to the union
// [Min,360) and [0,Max). Equal endpoints denote an empty interval.
type RARange struct {
	Min float64
	Max float64
}

// Contains reports whether deg falls inside the interval.
func (r RARange) Contains(deg float64) bool {
	if r.Min <= r.Max {
		return deg >= r.Min && deg < r.Max
	}
	return deg >= r.Min || deg < r.Max
}

// Wraps reports whether the interval crosses 0h.
func (r RARange) Wraps() bool { return r.Min > r.Max }

// FilterRA splits targets into those whose right ascension falls inside r
// and those outside it. Both slices preserve the input order.
func FilterRA(targets []Target, r RARange) (in, out []Target) {
	for _, t := range targets {
		if r.Contains(t.RADeg()) {
			in = append(in, t)
		} else {
			out = append(out, t)
		}
	}
	return in, out
}

// FilterKPF splits targets on the observe flag. Targets without the flag
// are not selected.
func FilterKPF(targets []Target) (in, out []Target) {
	for _, t := range targets {
		if t.KPF() {
			in = append(in, t)
		} else {
			out = append(out, t)
		}
	}
	return in, out
}
