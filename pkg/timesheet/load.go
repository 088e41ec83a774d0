package timesheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/parser"
	"github.com/xuri/excelize/v2"
)

// LoadDir loads every timesheet file in opts.Root, in file name order.
// A sheet that fails to decode is recorded in Batch.Skipped and the batch
// continues; only a failure to read the directory itself is returned.
func LoadDir(opts Options) (*models.Batch, error) {
	logger := opts.logger()

	info, err := os.Stat(opts.Root)
	if err != nil {
		return nil, &IOError{Path: opts.Root, Op: "read", Err: err}
	}
	if !info.IsDir() {
		return nil, &IOError{Path: opts.Root, Op: "read", Err: ErrNotDirectory}
	}

	dirEntries, err := os.ReadDir(opts.Root)
	if err != nil {
		return nil, &IOError{Path: opts.Root, Op: "read", Err: err}
	}

	batch := &models.Batch{}
	ext := strings.ToLower(opts.extension())
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || strings.HasPrefix(name, "~$") || !strings.HasSuffix(strings.ToLower(name), ext) {
			continue
		}

		logger.Debug("Loading timesheet", "file", name)
		ts, err := LoadFile(filepath.Join(opts.Root, name), opts)
		if err != nil {
			var sheetErr *SheetError
			if !errors.As(err, &sheetErr) {
				sheetErr = NewSheetError(name, err)
			}
			logger.Debug("Skipping timesheet", "sheet", name, "error", sheetErr.Err)
			batch.Skipped = append(batch.Skipped, models.SkippedSheet{
				Sheet:  name,
				Reason: sheetErr.Err.Error(),
			})
			continue
		}
		batch.Timesheets = append(batch.Timesheets, ts)
	}

	logger.Info("Loaded timesheets", "loaded", len(batch.Timesheets), "skipped", len(batch.Skipped))
	return batch, nil
}

// LoadFile decodes the active sheet of one timesheet workbook. The
// identifier is checked before the file is opened.
func LoadFile(path string, opts Options) (models.Timesheet, error) {
	name := filepath.Base(path)
	anchor, err := parser.ParseTitle(path, opts.extension())
	if err != nil {
		return models.Timesheet{}, NewSheetError(name, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Timesheet{}, NewSheetError(name, &IOError{Path: path, Op: "open", Err: err})
	}
	defer f.Close()

	sheetName := parser.ActiveSheet(f)
	if sheetName == "" {
		return models.Timesheet{}, NewSheetError(name, &StructuralError{Reason: "workbook has no sheets"})
	}

	table, err := parser.ReadTable(f, sheetName, name)
	if err != nil {
		return models.Timesheet{}, NewSheetError(name, &IOError{Path: path, Op: "read", Err: err})
	}
	opts.logger().Debug("Read sheet", "file", name, "sheet", sheetName, "range", parser.Bounds(table))

	ts, err := decode(table, anchor, opts)
	if err != nil {
		return models.Timesheet{}, NewSheetError(name, err)
	}
	return ts, nil
}

// LoadTable decodes a raw table whose Name is the sheet identifier.
func LoadTable(table models.Table, opts Options) (models.Timesheet, error) {
	anchor, err := parser.ParseTitle(table.Name, opts.extension())
	if err != nil {
		return models.Timesheet{}, NewSheetError(table.Name, err)
	}
	ts, err := decode(table, anchor, opts)
	if err != nil {
		return models.Timesheet{}, NewSheetError(table.Name, err)
	}
	return ts, nil
}

func decode(table models.Table, anchor models.WeekAnchor, opts Options) (models.Timesheet, error) {
	table, legacy := parser.Normalize(table)
	if legacy {
		opts.logger().Debug("Old timesheet layout, dropping first column", "sheet", table.Name)
	}

	region, err := parser.DayRegion(table)
	if err != nil {
		return models.Timesheet{}, err
	}

	days := make([]models.DayRecord, len(models.DayLabels))
	seen := make(map[models.DayLabel]int, len(models.DayLabels))
	for i, cells := range region {
		sheetRow := parser.FirstDayRow + i
		row, err := parser.DecodeRow(cells, sheetRow)
		if err != nil {
			return models.Timesheet{}, err
		}
		if prev, dup := seen[row.Label]; dup {
			return models.Timesheet{}, &StructuralError{
				Row:    sheetRow,
				Reason: fmt.Sprintf("duplicate day label %s (first seen in row %d)", row.Label, prev),
			}
		}
		seen[row.Label] = sheetRow

		rec, err := row.Resolve(anchor.WeekEnding, opts.Hours)
		if err != nil {
			return models.Timesheet{}, err
		}
		days[row.Label.Offset()] = rec
	}

	return models.Timesheet{
		Source:     table.Name,
		Employee:   anchor.Initials,
		WeekEnding: anchor.WeekEnding,
		Days:       days,
	}, nil
}
