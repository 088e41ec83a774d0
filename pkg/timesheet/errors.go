package timesheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/parser"
)

// Per-sheet decode failures. They are caught by the loader and reported in
// Batch.Skipped rather than returned.
type (
	FormatError     = parser.FormatError
	ParseError      = parser.ParseError
	StructuralError = parser.StructuralError
)

// ErrNotDirectory indicates the root path is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// IOError is a fatal failure to read input or write output.
type IOError struct {
	Path string
	Op   string // "read", "write", "open"
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// SheetError wraps a decode failure with the name of the offending sheet.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheet string, err error) *SheetError {
	return &SheetError{Sheet: sheet, Err: err}
}
