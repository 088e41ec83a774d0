package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/parser"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/today"
)

func newClockCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clock <timesheet.xlsx> <hours> <project> <day> [description...]",
		Short: "Write one entry into a day row of a timesheet workbook",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := g.logger()
			if err != nil {
				return err
			}
			path, project := args[0], args[2]
			hours, err := parser.ParseHours(args[1], parser.HoursAny)
			if err != nil {
				return err
			}
			label, err := parseDay(args[3])
			if err != nil {
				return err
			}
			entry := models.ProjectEntry{
				Project:     project,
				Hours:       hours,
				Description: strings.Join(args[4:], " "),
			}
			if err := today.Clock(path, label, entry); err != nil {
				return fmt.Errorf("clock failed: %w", err)
			}
			log.Debug("Clocked entry", "file", path, "day", label, "project", project, "hours", hours)
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Wrote to timesheet."))
			return nil
		},
	}
}

func parseDay(s string) (models.DayLabel, error) {
	label, ok := models.ParseDayLabel(s)
	if !ok {
		return 0, fmt.Errorf("invalid day: %s (must be Sunday through Friday)", s)
	}
	return label, nil
}
