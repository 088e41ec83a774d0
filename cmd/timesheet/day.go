package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/parser"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/today"
)

type dayFlags struct {
	file   string
	dryRun bool
}

func defaultDayFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "timesheet", "today.json")
}

func (f *dayFlags) store(g *globalFlags) (*today.Store, error) {
	log, err := g.logger()
	if err != nil {
		return nil, err
	}
	return today.NewStore(f.file, today.WithDryRun(f.dryRun), today.WithLogger(log)), nil
}

func newDayCmd(g *globalFlags) *cobra.Command {
	f := &dayFlags{}
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Track the in-progress day before it goes into a timesheet",
	}
	cmd.PersistentFlags().StringVar(&f.file, "file", defaultDayFile(), "Day file location")
	cmd.PersistentFlags().BoolVar(&f.dryRun, "dry-run", false, "Log changes instead of saving them")

	cmd.AddCommand(
		dayAddCmd(g, f),
		dayListCmd(g, f),
		dayRemoveCmd(g, f),
		dayStartCmd(g, f),
		dayFinishCmd(g, f),
		dayExportCmd(g, f),
		dayClearCmd(g, f),
	)
	return cmd
}

func dayAddCmd(g *globalFlags, f *dayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <project> <hours> [description...]",
		Short: "Add hours to a project",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.store(g)
			if err != nil {
				return err
			}
			hours, err := parser.ParseHours(args[1], parser.HoursAny)
			if err != nil {
				return err
			}
			e, merged, err := s.Add(args[0], hours, strings.Join(args[2:], " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if merged {
				fmt.Fprintf(out, "%s %s %s\n", warnStyle.Render("Project"), codeStyle.Render(e.Project), warnStyle.Render("already exists! Adding hours."))
				return nil
			}
			fmt.Fprintf(out, "%s %s%s\n", successStyle.Render("Added"), codeStyle.Render(e.Project), successStyle.Render("!"))
			return nil
		},
	}
}

func dayListCmd(g *globalFlags, f *dayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List today's entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.store(g)
			if err != nil {
				return err
			}
			d, err := s.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render("Code (Hours): Description"))
			if w := d.Working; w != nil {
				fmt.Fprintf(out, "%s (%s, running): %s\n", codeStyle.Render(w.Project), parser.FormatHours(s.Elapsed(*w)), w.Description)
			}
			for _, e := range d.Entries {
				fmt.Fprintf(out, "%s (%s): %s\n", codeStyle.Render(e.Project), parser.FormatHours(e.Hours), e.Description)
			}
			return nil
		},
	}
}

func dayRemoveCmd(g *globalFlags, f *dayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <last | project hours description...>",
		Short: "Remove the last entry or hours from an entry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && args[0] == "last" {
				return nil
			}
			if len(args) < 3 {
				return fmt.Errorf("expected 3 arguments or 'last' for rm, given %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.store(g)
			if err != nil {
				return err
			}
			var r today.Removal
			if len(args) == 1 {
				r, err = s.RemoveLast()
			} else {
				var hours float64
				hours, err = parser.ParseHours(args[1], parser.HoursAny)
				if err != nil {
					return err
				}
				r, err = s.Remove(args[0], hours, strings.Join(args[2:], " "))
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if r.Deleted {
				fmt.Fprintf(out, "%s %s %s\n", successStyle.Render("Removed"), codeStyle.Render(r.Entry.Project), successStyle.Render("from sheet."))
				return nil
			}
			fmt.Fprintf(out, "%s %s %s\n", successStyle.Render("Reduced"), codeStyle.Render(r.Entry.Project), successStyle.Render("to "+parser.FormatHours(r.Entry.Hours)+" hours."))
			return nil
		},
	}
}

func dayStartCmd(g *globalFlags, f *dayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "start [project description...]",
		Short: "Start timing a working project",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return fmt.Errorf("expected 0 or at least 2 arguments, given 1")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.store(g)
			if err != nil {
				return err
			}
			var project, desc string
			if len(args) >= 2 {
				project, desc = args[0], strings.Join(args[1:], " ")
			}
			w, err := s.Start(project, desc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", successStyle.Render("Started project"), codeStyle.Render(w.Project), successStyle.Render("at "+w.StartedAt.Format("15:04:05")))
			return nil
		},
	}
}

func dayFinishCmd(g *globalFlags, f *dayFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "finish [project description...]",
		Aliases: []string{"end"},
		Short:   "Stop the working project and book its hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.store(g)
			if err != nil {
				return err
			}
			var project, desc string
			if len(args) > 0 {
				project, desc = args[0], strings.Join(args[1:], " ")
			}
			e, err := s.Finish(project, desc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", successStyle.Render("Finished"), codeStyle.Render(e.Project), parser.FormatHours(e.Hours))
			return nil
		},
	}
}

func dayExportCmd(g *globalFlags, f *dayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export <timesheet.xlsx> <day>",
		Short: "Write today's entries into a timesheet workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.store(g)
			if err != nil {
				return err
			}
			label, err := parseDay(args[1])
			if err != nil {
				return err
			}
			d, err := s.Load()
			if err != nil {
				return err
			}
			entries := make([]models.ProjectEntry, 0, len(d.Entries))
			for _, e := range d.Entries {
				entries = append(entries, e.ProjectEntry())
			}
			if f.dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "Would write %d entries to %s (%s)\n", len(entries), args[0], label)
				return nil
			}
			if err := today.Clock(args[0], label, entries...); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d entries to %s\n", successStyle.Render("Exported"), len(entries), args[0])
			return nil
		},
	}
}

func dayClearCmd(g *globalFlags, f *dayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the day file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.store(g)
			if err != nil {
				return err
			}
			if err := s.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Cleared "+s.Path()))
			return nil
		},
	}
}
