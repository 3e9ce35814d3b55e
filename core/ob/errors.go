package ob

import (
	"fmt"
	"strings"
)

// MappingError reports a failure to map catalog data onto the template.
// Systemic faults lie in the template itself and doom every block built
// from it; non-systemic ones concern a single target.
type MappingError struct {
	Target   string // target identifier, empty for template-level faults
	Section  string // block section involved
	Field    string // key involved, when one is
	Reason   string
	Systemic bool
}

func (e *MappingError) Error() string {
	var b strings.Builder
	b.WriteString("ob: ")
	if e.Target != "" {
		fmt.Fprintf(&b, "target %s: ", e.Target)
	} else if e.Systemic {
		b.WriteString("template: ")
	}
	if e.Section != "" {
		fmt.Fprintf(&b, "section %q", e.Section)
		if e.Field != "" {
			fmt.Fprintf(&b, " field %q", e.Field)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Reason)
	return b.String()
}
