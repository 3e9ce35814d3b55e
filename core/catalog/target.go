package catalog

import "github.com/soniakeys/unit"

// Target is one row of the ARIEL candidate catalog.
type Target struct {
	Name string     // catalog designation, e.g. "TIC 269701147"
	RA   unit.Angle // J2000 right ascension
	Dec  unit.Angle // J2000 declination
	VMag float64    // Johnson V magnitude

	// Observation planning fields, present only when the catalog carries them.
	TessMag      *float64
	ExpTimeSec   *float64 // single-visit exposure length in seconds
	ExpMeter     *float64 // exposure-meter termination threshold
	ObserveKPF   *bool    // target selected for KPF follow-up
	Period       *float64 // orbital period in days
	PlanetRadius *float64 // Earth radii
	Epoch        *float64 // transit epoch, BJD

	Enrichment
}

// Enrichment carries fields merged from the name-resolution service.
// A nil field means the service did not supply a value; that is a normal
// state and never an error.
type Enrichment struct {
	GaiaID    *string  // Gaia designation
	TwoMASSID *string  // 2MASS designation
	Parallax  *float64 // mas
	PMRA      *float64 // proper motion in RA, mas/yr
	PMDec     *float64 // proper motion in Dec, mas/yr
	GMag      *float64 // Gaia G magnitude
	JMag      *float64 // 2MASS J magnitude
	RV        *float64 // radial velocity, km/s
	SpecType  *string  // spectral type
}

// Resolved reports whether any enrichment field is set.
func (e Enrichment) Resolved() bool {
	return e.GaiaID != nil || e.TwoMASSID != nil || e.Parallax != nil ||
		e.PMRA != nil || e.PMDec != nil || e.GMag != nil || e.JMag != nil ||
		e.RV != nil || e.SpecType != nil
}

// RADeg returns the right ascension in degrees.
func (t Target) RADeg() float64 { return t.RA.Deg() }

// DecDeg returns the declination in degrees.
func (t Target) DecDeg() float64 { return t.Dec.Deg() }

// KPF reports whether the target is flagged for KPF follow-up.
func (t Target) KPF() bool { return t.ObserveKPF != nil && *t.ObserveKPF }
