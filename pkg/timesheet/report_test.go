package timesheet

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/output"
	"github.com/xuri/excelize/v2"
)

func reportFixture(t *testing.T) Options {
	t.Helper()
	root := filepath.Join(t.TempDir(), "timesheets")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	writeSheet(t, root, "TimeSheet_w20230106_AB.xlsx", dayRows{"Wednesday": {"PRJ1", 2, "x"}}, false)
	writeSheet(t, root, "TimeSheet_w20230106_CD.xlsx", dayRows{"Friday": {"PRJ2", 4, "z"}}, false)
	writeSheet(t, root, "TimeSheet_w20230106_XAB.xlsx", nil, false)

	out := t.TempDir()
	opts := DefaultOptions()
	opts.Root = root
	opts.CachePath = filepath.Join(out, "cache", "sheets.json")
	opts.OutputPath = filepath.Join(out, "report.xlsx")
	return opts
}

func TestBuild(t *testing.T) {
	opts := reportFixture(t)
	res, err := Build(opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if res.FromCache {
		t.Error("expected a fresh scan")
	}
	if len(res.Batch.Timesheets) != 2 || len(res.Batch.Skipped) != 1 {
		t.Fatalf("unexpected batch %+v", res.Batch)
	}
	if h, _ := res.Overviews.Projects.Hours("PRJ2"); h != 4 {
		t.Errorf("PRJ2 = %v, expected 4", h)
	}
	// Wednesday 2023-01-04 through Friday 2023-01-06.
	if len(res.Overviews.Timeline) != 3 {
		t.Errorf("expected 3 timeline slots, got %d", len(res.Overviews.Timeline))
	}
	if _, err := os.Stat(opts.CachePath); !os.IsNotExist(err) {
		t.Error("cache written with CacheOff")
	}
}

func TestBuildCacheRoundTrip(t *testing.T) {
	opts := reportFixture(t)
	opts.Cache = CacheWrite
	fresh, err := Build(opts)
	if err != nil {
		t.Fatalf("Build(write) failed: %v", err)
	}

	// The cached set is used even after the spreadsheets are gone.
	if err := os.RemoveAll(opts.Root); err != nil {
		t.Fatal(err)
	}
	opts.Cache = CacheRead
	cached, err := Build(opts)
	if err != nil {
		t.Fatalf("Build(read) failed: %v", err)
	}
	if !cached.FromCache {
		t.Error("expected cached batch")
	}

	a, _ := output.ToJSON(&fresh.Overviews, false)
	b, _ := output.ToJSON(&cached.Overviews, false)
	if string(a) != string(b) {
		t.Errorf("cached overviews differ:\n%s\n%s", a, b)
	}
	if !reflect.DeepEqual(fresh.Batch.Skipped, cached.Batch.Skipped) {
		t.Errorf("skipped differ: %+v vs %+v", fresh.Batch.Skipped, cached.Batch.Skipped)
	}
}

func TestBuildCacheOtherRoot(t *testing.T) {
	opts := reportFixture(t)
	opts.Cache = CacheWrite
	if _, err := Build(opts); err != nil {
		t.Fatalf("Build(write) failed: %v", err)
	}

	var buf bytes.Buffer
	opts.Logger = log.New(&buf)
	opts.Cache = CacheRead
	opts.Root = t.TempDir()
	res, err := Build(opts)
	if err != nil {
		t.Fatalf("Build(read) failed: %v", err)
	}
	if !res.FromCache {
		t.Error("expected cached batch")
	}
	if !strings.Contains(buf.String(), "Cache was built from a different root") {
		t.Errorf("missing root warning in log output:\n%s", buf.String())
	}
}

func TestBuildCacheMissing(t *testing.T) {
	opts := reportFixture(t)
	opts.Cache = CacheRead
	_, err := Build(opts)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}

	opts.Cache = CacheReadWrite
	res, err := Build(opts)
	if err != nil {
		t.Fatalf("Build(read-write) failed: %v", err)
	}
	if res.FromCache {
		t.Error("expected a fresh scan")
	}
	if _, err := os.Stat(opts.CachePath); err != nil {
		t.Errorf("cache not written: %v", err)
	}
}

func TestRunWritesWorkbook(t *testing.T) {
	opts := reportFixture(t)
	if _, err := Run(opts, nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	f, err := excelize.OpenFile(opts.OutputPath)
	if err != nil {
		t.Fatalf("Failed to open report: %v", err)
	}
	defer f.Close()

	v, err := f.GetCellValue(output.TimelineSheet, "B1")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if v != "AB, PRJ1 (2.0): x" {
		t.Errorf("timeline B1 = %q", v)
	}
}

func TestRunBeforeWrite(t *testing.T) {
	opts := reportFixture(t)
	called := false
	res, err := Run(opts, func(r *Result) {
		called = true
		if len(r.Batch.Skipped) != 1 {
			t.Errorf("expected 1 skipped sheet, got %+v", r.Batch.Skipped)
		}
		if _, err := os.Stat(opts.OutputPath); !os.IsNotExist(err) {
			t.Errorf("report written before hook: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !called {
		t.Error("hook not called")
	}
	if len(res.Batch.Timesheets) != 2 {
		t.Errorf("expected 2 timesheets, got %d", len(res.Batch.Timesheets))
	}
}

func TestRunUnwritableOutput(t *testing.T) {
	opts := reportFixture(t)
	opts.OutputPath = filepath.Join(t.TempDir(), "missing", "dir", "report.xlsx")
	_, err := Run(opts, nil)
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "write" {
		t.Fatalf("expected write IOError, got %v", err)
	}
}
