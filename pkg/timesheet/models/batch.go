package models

// SkippedSheet records a sheet excluded from a batch.
type SkippedSheet struct {
	Sheet  string `json:"sheet"`
	Reason string `json:"reason"`
}

// Batch is the result of loading a directory of timesheets.
type Batch struct {
	// Timesheets keeps the source enumeration order.
	Timesheets []Timesheet `json:"timesheets"`
	// Skipped lists sheets that failed to decode.
	Skipped []SkippedSheet `json:"skipped,omitempty"`
}
