package catalog

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// Rounding happens once, on integer centiseconds, so carries propagate
// through seconds, minutes and hours instead of producing "59.100".

// FormatRA renders a right ascension as a sexagesimal hour angle
// "HH:MM:SS.ss". Values that round up to 24h wrap to "00:00:00.00".
func FormatRA(a unit.Angle) string {
	const day = 24 * 360000 // centiseconds of time
	cs := int64(math.Round(a.Deg() / 15 * 360000))
	cs %= day
	if cs < 0 {
		cs += day
	}
	hh := cs / 360000
	cs %= 360000
	mm := cs / 6000
	cs %= 6000
	return fmt.Sprintf("%02d:%02d:%02d.%02d", hh, mm, cs/100, cs%100)
}

// FormatDec renders a declination as "[-]DD:MM:SS.ss". The minus sign
// appears only when the value still differs from zero after rounding.
func FormatDec(a unit.Angle) string {
	cas := int64(math.Round(a.Deg() * 360000)) // centiarcseconds
	sign := ""
	if cas < 0 {
		sign = "-"
		cas = -cas
	}
	dd := cas / 360000
	cas %= 360000
	mm := cas / 6000
	cas %= 6000
	return fmt.Sprintf("%s%02d:%02d:%02d.%02d", sign, dd, mm, cas/100, cas%100)
}
