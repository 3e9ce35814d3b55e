package catalog

import "fmt"

// DataError reports a malformed or incomplete catalog row or column. Row
// carries the target identifier when one could be read, otherwise the
// 1-based row number.
type DataError struct {
	Row    string
	Column string
	Reason string
}

func (e *DataError) Error() string {
	switch {
	case e.Row == "":
		return fmt.Sprintf("catalog: column %q: %s", e.Column, e.Reason)
	case e.Column == "":
		return fmt.Sprintf("catalog: row %s: %s", e.Row, e.Reason)
	default:
		return fmt.Sprintf("catalog: row %s, column %q: %s", e.Row, e.Column, e.Reason)
	}
}

func dataErrorf(row, column, format string, args ...any) *DataError {
	return &DataError{Row: row, Column: column, Reason: fmt.Sprintf(format, args...)}
}
