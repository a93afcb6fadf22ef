package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/phpmono/phpmono/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the build task across workspaces via Turborepo",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolP("json", "j", false, "Print a JSON summary")
	buildCmd.Flags().Bool("table", false, "Print a table summary")
}

// taskSummary is the post-run report for task commands that support
// --json and --table output.
type taskSummary struct {
	Task     string `json:"task"`
	Filter   string `json:"filter,omitempty"`
	ExitCode int    `json:"exitCode"`
	Duration string `json:"duration"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	opts := taskOptions(cmd)
	if err := svc.checkFilter(opts.Filter); err != nil {
		return err
	}

	start := time.Now()
	code, err := svc.turbo.Run("build", opts)
	if err != nil {
		return err
	}
	summary := taskSummary{
		Task:     "build",
		Filter:   opts.Filter,
		ExitCode: code,
		Duration: time.Since(start).Round(time.Millisecond).String(),
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asTable, _ := cmd.Flags().GetBool("table")
	switch {
	case asJSON:
		if err := ui.JSON(summary); err != nil {
			return err
		}
	case asTable:
		ui.Table(
			[]string{"Task", "Filter", "Exit", "Duration"},
			[][]string{{summary.Task, summary.Filter, fmt.Sprint(summary.ExitCode), summary.Duration}},
		)
	}

	if code != 0 {
		return fmt.Errorf("build failed (exit %d)", code)
	}
	if !asJSON && !asTable {
		ui.Success(fmt.Sprintf("Build finished in %s", summary.Duration))
	}
	return nil
}
