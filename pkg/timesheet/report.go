package timesheet

import (
	"errors"
	"time"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/aggregate"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/cache"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/output"
)

// Result is the outcome of a report run.
type Result struct {
	Batch     *models.Batch
	Overviews models.Overviews
	// FromCache is set when the batch was read from the cache file.
	FromCache bool
}

// Build loads the timesheet set (from the cache or by scanning opts.Root)
// and aggregates it. It does not write the report artifact.
func Build(opts Options) (*Result, error) {
	logger := opts.logger()
	cachePath := opts.CachePath
	if cachePath == "" {
		cachePath = DefaultCachePath
	}

	res := &Result{}
	if opts.Cache.Reads() {
		f, err := cache.Load(cachePath)
		switch {
		case err == nil:
			logger.Info("Using cached timesheets", "path", cachePath, "created", f.CreatedAt.Format(time.RFC3339))
			if f.Root != "" && f.Root != opts.Root {
				logger.Warn("Cache was built from a different root", "cache_root", f.Root, "root", opts.Root)
			}
			res.Batch = f.Batch
			res.FromCache = true
		case opts.Cache == CacheReadWrite && errors.Is(err, cache.ErrNotFound):
			logger.Debug("No cache yet, scanning", "path", cachePath)
		default:
			return nil, &IOError{Path: cachePath, Op: "read", Err: err}
		}
	}

	if res.Batch == nil {
		batch, err := LoadDir(opts)
		if err != nil {
			return nil, err
		}
		res.Batch = batch
		if opts.Cache.Writes() {
			if err := cache.Save(cachePath, opts.Root, batch, time.Now()); err != nil {
				return nil, &IOError{Path: cachePath, Op: "write", Err: err}
			}
			logger.Info("Wrote timesheet cache", "path", cachePath, "sheets", len(batch.Timesheets))
		}
	}

	res.Overviews = Aggregate(res.Batch.Timesheets)
	return res, nil
}

// Aggregate folds timesheets into the three overviews.
func Aggregate(sheets []models.Timesheet) models.Overviews {
	return aggregate.All(sheets)
}

// Run builds the report and writes the workbook to opts.OutputPath.
// beforeWrite, when non-nil, sees the result before the workbook is written.
func Run(opts Options, beforeWrite func(*Result)) (*Result, error) {
	res, err := Build(opts)
	if err != nil {
		return nil, err
	}
	if beforeWrite != nil {
		beforeWrite(res)
	}

	out := opts.OutputPath
	if out == "" {
		out = DefaultOutputPath
	}
	if err := output.WriteWorkbook(out, &res.Overviews); err != nil {
		return nil, &IOError{Path: out, Op: "write", Err: err}
	}
	opts.logger().Info("Wrote report", "path", out)
	return res, nil
}
