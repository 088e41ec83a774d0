package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ukaji3/timesheet-go/pkg/timesheet"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/output"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/parser"
)

type reportFlags struct {
	cacheRead   bool
	cacheWrite  bool
	cachePath   string
	outputPath  string
	jsonOut     bool
	pretty      bool
	hoursPolicy string
}

func newReportCmd(g *globalFlags) *cobra.Command {
	f := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "report [root]",
		Short: "Build the report workbook from a directory of timesheets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(g, args)
			if err != nil {
				return err
			}
			return runReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, f)
		},
	}

	cmd.Flags().BoolVar(&f.cacheRead, "cache-read", false, "Reuse the cached timesheet set instead of scanning")
	cmd.Flags().BoolVar(&f.cacheWrite, "cache-write", false, "Persist the freshly loaded timesheet set")
	cmd.Flags().StringVar(&f.cachePath, "cache-path", timesheet.DefaultCachePath, "Cache file location")
	cmd.Flags().StringVarP(&f.outputPath, "output", "o", timesheet.DefaultOutputPath, "Report workbook path")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "Also print the overviews as JSON to stdout")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&f.hoursPolicy, "hours-policy", string(timesheet.HoursAny), "Accepted hours: any, non-negative, positive")
	return cmd
}

func (f *reportFlags) options(g *globalFlags, args []string) (timesheet.Options, error) {
	opts := timesheet.DefaultOptions()
	if len(args) == 1 {
		opts.Root = args[0]
	}
	opts.CachePath = f.cachePath
	opts.OutputPath = f.outputPath

	switch {
	case f.cacheRead && f.cacheWrite:
		opts.Cache = timesheet.CacheReadWrite
	case f.cacheRead:
		opts.Cache = timesheet.CacheRead
	case f.cacheWrite:
		opts.Cache = timesheet.CacheWrite
	}

	policy, err := parser.ParseHoursPolicy(f.hoursPolicy)
	if err != nil {
		return opts, err
	}
	opts.Hours = policy

	opts.Logger, err = g.logger()
	return opts, err
}

func runReport(stdout, stderr io.Writer, opts timesheet.Options, f *reportFlags) error {
	res, err := timesheet.Run(opts, func(r *timesheet.Result) {
		printSkipped(stderr, r.Batch.Skipped)
	})
	if err != nil {
		return err
	}

	if f.jsonOut {
		data, err := output.ToJSON(&res.Overviews, f.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
	}

	source := opts.Root
	if res.FromCache {
		source = opts.CachePath
	}
	fmt.Fprintf(stderr, "%s %d timesheets from %s into %s\n",
		successStyle.Render("Reported"), len(res.Batch.Timesheets), source, opts.OutputPath)
	return nil
}

func printSkipped(w io.Writer, skipped []models.SkippedSheet) {
	if len(skipped) == 0 {
		return
	}
	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Skipped %d timesheet(s):", len(skipped))))
	for _, s := range skipped {
		fmt.Fprintf(w, "  %s: %s\n", codeStyle.Render(s.Sheet), s.Reason)
	}
}
