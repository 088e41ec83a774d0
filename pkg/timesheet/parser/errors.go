package parser

import "fmt"

// FormatError indicates a sheet identifier that does not match
// "<prefix>TimeSheet_w<YYYYMMDD>_<FL><ext>".
type FormatError struct {
	Identifier string
	Reason     string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed sheet identifier %q: %s", e.Identifier, e.Reason)
}

// ParseError indicates a field that could not be parsed, such as a
// non-numeric hours cell or a bad date segment.
type ParseError struct {
	Field string // "hours", "date"
	Cell  string // cell reference, if known
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	if e.Cell != "" {
		msg += " at " + e.Cell
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructuralError indicates a sheet whose layout is not a timesheet:
// missing day rows or an unrecognized day label.
type StructuralError struct {
	Row    int // 1-based sheet row, 0 if not row specific
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	return e.Reason
}
