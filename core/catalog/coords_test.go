package catalog

import (
	"testing"

	"github.com/soniakeys/unit"
)

func TestFormatRA(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want string
	}{
		{"zero", 0, "00:00:00.00"},
		{"one hour", 15, "01:00:00.00"},
		{"noon", 180, "12:00:00.00"},
		{"fractional", 202.51, "13:30:02.40"},
		{"sub second", 15.0000417, "01:00:00.01"},
		{"carry into minute", 15.2499999, "01:01:00.00"},
		{"carry into hour", 44.9999999, "03:00:00.00"},
		{"carry wraps day", 359.9999999, "00:00:00.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRA(unit.AngleFromDeg(tt.deg))
			if got != tt.want {
				t.Errorf("FormatRA(%v) = %q, want %q", tt.deg, got, tt.want)
			}
		})
	}
}

func TestFormatDec(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want string
	}{
		{"zero", 0, "00:00:00.00"},
		{"positive", 12.345, "12:20:42.00"},
		{"negative", -12.345, "-12:20:42.00"},
		{"no sign padding above 9", 60, "60:00:00.00"},
		{"small negative keeps sign", -0.0001, "-00:00:00.36"},
		{"negative rounding to zero drops sign", -0.000001, "00:00:00.00"},
		{"carry to pole", -89.9999999, "-90:00:00.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDec(unit.AngleFromDeg(tt.deg))
			if got != tt.want {
				t.Errorf("FormatDec(%v) = %q, want %q", tt.deg, got, tt.want)
			}
		})
	}
}
