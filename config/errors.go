package config

import (
	"fmt"
	"strings"
)

// ConfigError reports configuration that cannot drive a run: an unknown
// name where only enumerated choices exist, or a setting whose value is
// invalid.
type ConfigError struct {
	What   string   // kind of setting, e.g. "strategy" or "month"
	Name   string   // offending value, when there is one
	Valid  []string // accepted choices, when enumerable
	Reason string   // invalidity detail, when not a bad enumeration
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("config: ")
	switch {
	case e.Reason != "" && e.Name != "":
		fmt.Fprintf(&b, "%s %q: %s", e.What, e.Name, e.Reason)
	case e.Reason != "":
		fmt.Fprintf(&b, "%s: %s", e.What, e.Reason)
	default:
		fmt.Fprintf(&b, "unknown %s %q", e.What, e.Name)
	}
	if len(e.Valid) > 0 {
		fmt.Fprintf(&b, " (valid: %s)", strings.Join(e.Valid, ", "))
	}
	return b.String()
}
