// Package ob builds KPF observing blocks from an annotated template and
// catalog targets.
package ob

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// OB is one observing block document. Its structure comes from the
// template; the builder only touches the sections and keys it owns.
type OB map[string]any

// Sections every usable template must carry.
var requiredSections = []string{"target", "observation", "schedule"}

// Template is a parsed observing block template. The source file is JSON
// with two annotation conventions layered on top: `#` starts a comment
// running to end of line, and object keys beginning with `#` are inline
// notes. Both are stripped before use.
type Template struct {
	base OB
}

// LoadTemplate reads and parses the template file.
func LoadTemplate(path string) (*Template, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	t, err := ParseTemplate(src)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return t, nil
}

// ParseTemplate parses annotated template source. The document is a JSON
// array; its first element is the block every target is built from.
func ParseTemplate(src []byte) (*Template, error) {
	clean := stripLineComments(string(src))
	var docs []OB
	if err := json.Unmarshal([]byte(clean), &docs); err != nil {
		return nil, &MappingError{Reason: fmt.Sprintf("not a block array: %v", err), Systemic: true}
	}
	if len(docs) == 0 {
		return nil, &MappingError{Reason: "block array is empty", Systemic: true}
	}
	base := docs[0]
	stripAnnotationKeys(base)
	for _, sec := range requiredSections {
		if _, err := base.section(sec); err != nil {
			return nil, err
		}
	}
	return &Template{base: base}, nil
}

// Base returns a deep copy of the parsed template block. Callers may
// mutate the copy freely; the template itself never changes.
func (t *Template) Base() OB {
	return deepCopy(t.base).(OB)
}

// stripLineComments removes `#` comments, leaving `#` inside JSON string
// literals alone. JSON strings cannot span lines, so the scan state resets
// per line.
func stripLineComments(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		inString := false
		escaped := false
		cut := -1
		for j, r := range line {
			switch {
			case escaped:
				escaped = false
			case r == '\\' && inString:
				escaped = true
			case r == '"':
				inString = !inString
			case r == '#' && !inString:
				cut = j
			}
			if cut >= 0 {
				break
			}
		}
		if cut >= 0 {
			lines[i] = strings.TrimRight(line[:cut], " \t")
		}
	}
	return strings.Join(lines, "\n")
}

// stripAnnotationKeys deletes `#`-prefixed keys at every nesting level.
func stripAnnotationKeys(doc map[string]any) {
	for k, v := range doc {
		if strings.HasPrefix(k, "#") {
			delete(doc, k)
			continue
		}
		stripAnnotationValues(v)
	}
}

func stripAnnotationValues(v any) {
	switch vv := v.(type) {
	case map[string]any:
		stripAnnotationKeys(vv)
	case OB:
		stripAnnotationKeys(vv)
	case []any:
		for _, e := range vv {
			stripAnnotationValues(e)
		}
	}
}

func deepCopy(v any) any {
	switch vv := v.(type) {
	case OB:
		out := make(OB, len(vv))
		for k, e := range vv {
			out[k] = deepCopy(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, e := range vv {
			out[k] = deepCopy(e)
		}
		return out
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = deepCopy(e)
		}
		return out
	default:
		return v
	}
}

func (ob OB) section(name string) (map[string]any, error) {
	v, ok := ob[name]
	if !ok {
		return nil, &MappingError{Section: name, Reason: "section missing", Systemic: true}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &MappingError{Section: name, Reason: fmt.Sprintf("section is %T, not an object", v), Systemic: true}
	}
	return m, nil
}
