package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:     "test",
	Aliases: []string{"t", "phpunit"},
	Short:   "Run the test task via Turborepo",
	Long: `Runs the test task across workspaces. Suite and filter flags are
forwarded to PHPUnit through the task runner.`,
	RunE: runTest,
}

func init() {
	testCmd.Flags().BoolP("unit", "u", false, "Run only the Unit suite")
	testCmd.Flags().Bool("feature", false, "Run only the Feature suite")
	testCmd.Flags().BoolP("coverage", "c", false, "Collect coverage")
	testCmd.Flags().String("filter", "", "PHPUnit --filter expression")
}

func runTest(cmd *cobra.Command, args []string) error {
	opts := taskOptions(cmd)
	if err := svc.checkFilter(opts.Filter); err != nil {
		return err
	}

	var extra []string
	if unit, _ := cmd.Flags().GetBool("unit"); unit {
		extra = append(extra, "--testsuite=Unit")
	}
	if feature, _ := cmd.Flags().GetBool("feature"); feature {
		extra = append(extra, "--testsuite=Feature")
	}
	if coverage, _ := cmd.Flags().GetBool("coverage"); coverage {
		extra = append(extra, "--coverage-text")
	}
	if filter, _ := cmd.Flags().GetString("filter"); filter != "" {
		extra = append(extra, fmt.Sprintf("--filter=%s", filter))
	}

	code, err := svc.turbo.Run("test", opts, extra...)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("tests failed (exit %d)", code)
	}
	return nil
}
