package ob

import (
	"errors"
	"testing"
)

const templateSrc = `[
  {
    "target": {
      "TargetName": "placeholder",  # set per target
      "RA": "00:00:00.00",
      "DEC": "+00:00:00.00",
      "Frame": "icrs # not a comment",
      "GaiaID": "auto",
      "2MASSID": "auto",
      "Parallax": 0.0,
      "PMRA": 0.0,
      "PMDEC": 0.0,
      "Gmag": 0.0,
      "Jmag": 0.0,
      "RadVel": 0.0,
      "SpecType": "G0V",
      "#note": "identification fields are filled per target"
    },
    "observation": {
      "Object": "placeholder",
      "ExpTime": "60",
      "ExpMeterThreshold": 50000,
      "NumExposures": 1
    },
    "schedule": {
      "custom_time_constraints": [],
      "total_observations_requested": 15,   # filled by the scheduler
      "total_time_for_target": 3.0,
      "total_time_for_target_hours": 3.0,
      "weather_band": "nominal"
    }
  }
]`

func mustTemplate(t *testing.T) *Template {
	t.Helper()
	tpl, err := ParseTemplate([]byte(templateSrc))
	if err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
	return tpl
}

func TestParseTemplateStripsAnnotations(t *testing.T) {
	tpl := mustTemplate(t)
	base := tpl.Base()

	target, err := base.section("target")
	if err != nil {
		t.Fatalf("target section: %v", err)
	}
	if _, ok := target["#note"]; ok {
		t.Error("annotation key survived parsing")
	}
	if got := target["Frame"]; got != "icrs # not a comment" {
		t.Errorf("hash inside string literal mangled: %v", got)
	}
	if got := target["TargetName"]; got != "placeholder" {
		t.Errorf("line comment stripping broke values: %v", got)
	}
}

func TestParseTemplateErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not an array", `{"target": {}}`},
		{"empty array", `[]`},
		{"missing schedule", `[{"target": {}, "observation": {}}]`},
		{"section not an object", `[{"target": [], "observation": {}, "schedule": {}}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate([]byte(tt.src))
			var merr *MappingError
			if !errors.As(err, &merr) {
				t.Fatalf("want MappingError, got %v", err)
			}
			if !merr.Systemic {
				t.Errorf("template faults are systemic: %v", merr)
			}
		})
	}
}

func TestBaseCopiesDeeply(t *testing.T) {
	tpl := mustTemplate(t)
	a := tpl.Base()
	sched, _ := a.section("schedule")
	sched["weather_band"] = "poor"
	delete(sched, "total_observations_requested")

	b := tpl.Base()
	got, _ := b.section("schedule")
	if got["weather_band"] != "nominal" {
		t.Error("mutating one copy leaked into the template")
	}
	if _, ok := got["total_observations_requested"]; !ok {
		t.Error("deleting from one copy leaked into the template")
	}
}
