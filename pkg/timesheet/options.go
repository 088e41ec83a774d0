// Package timesheet loads weekly timesheet spreadsheets and folds them into
// project, employee, and timeline overviews.
package timesheet

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/parser"
)

// HoursPolicy decides which hour values a sheet may carry.
type HoursPolicy = parser.HoursPolicy

const (
	HoursAny         = parser.HoursAny
	HoursNonNegative = parser.HoursNonNegative
	HoursPositive    = parser.HoursPositive
)

// CacheMode selects how the persisted Timesheet set is used.
type CacheMode string

const (
	// CacheOff always scans the spreadsheets and persists nothing.
	CacheOff CacheMode = "off"
	// CacheRead reuses the persisted set instead of scanning.
	CacheRead CacheMode = "read"
	// CacheWrite scans the spreadsheets and persists the result.
	CacheWrite CacheMode = "write"
	// CacheReadWrite reuses the persisted set when present, otherwise scans
	// and persists.
	CacheReadWrite CacheMode = "read-write"
)

// Reads reports whether the mode consults an existing cache.
func (m CacheMode) Reads() bool {
	return m == CacheRead || m == CacheReadWrite
}

// Writes reports whether the mode persists a freshly loaded set.
func (m CacheMode) Writes() bool {
	return m == CacheWrite || m == CacheReadWrite
}

// DefaultCachePath is the cache file used when Options.CachePath is empty.
const DefaultCachePath = "timesheets.cache.json"

// DefaultOutputPath is the report artifact written when Options.OutputPath
// is empty.
const DefaultOutputPath = "report.xlsx"

// Options configures a report run.
type Options struct {
	// Root is the directory scanned for timesheet files.
	Root string
	// Extension selects which files in Root are timesheets.
	Extension string
	// Cache selects cache behavior.
	Cache CacheMode
	// CachePath is the cache file location.
	CachePath string
	// OutputPath is the report workbook location.
	OutputPath string
	// Hours is the policy applied to every hours cell.
	Hours HoursPolicy
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *log.Logger
}

// DefaultOptions returns default report options.
func DefaultOptions() Options {
	return Options{
		Root:       "timesheets",
		Extension:  parser.DefaultExtension,
		Cache:      CacheOff,
		CachePath:  DefaultCachePath,
		OutputPath: DefaultOutputPath,
		Hours:      HoursAny,
	}
}

func (o Options) extension() string {
	if o.Extension == "" {
		return parser.DefaultExtension
	}
	return o.Extension
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}
