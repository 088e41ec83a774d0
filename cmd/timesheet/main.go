// Package main provides the CLI entry point for timesheet.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/timesheet-go/internal/logger"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	logFile string
}

func (g *globalFlags) logger() (*log.Logger, error) {
	return logger.New(logger.Config{Verbose: g.verbose, File: g.logFile})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Aggregate weekly timesheet spreadsheets into a report",
		Long: `timesheet reads weekly per-employee timesheet workbooks
(TimeSheet_wYYYYMMDD_FL.xlsx) and writes a report workbook with project
totals, employee weekly totals, and a merged day-by-day timeline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "Also write logs to this file (rotated)")

	rootCmd.AddCommand(newReportCmd(g))
	rootCmd.AddCommand(newClockCmd(g))
	rootCmd.AddCommand(newDayCmd(g))
	return rootCmd
}
