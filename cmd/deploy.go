package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phpmono/phpmono/internal/ui"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Run tests and then the deploy task",
	RunE:  runDeploy,
}

func init() {
	deployCmd.Flags().Bool("skip-tests", false, "Deploy without running tests first")
}

func runDeploy(cmd *cobra.Command, args []string) error {
	opts := taskOptions(cmd)
	if err := svc.checkFilter(opts.Filter); err != nil {
		return err
	}

	if skip, _ := cmd.Flags().GetBool("skip-tests"); !skip {
		ui.Info("Running tests before deploy")
		code, err := svc.turbo.Run("test", opts)
		if err != nil {
			return err
		}
		if code != 0 {
			return fmt.Errorf("tests failed (exit %d), deploy aborted", code)
		}
	} else {
		ui.Warn("Skipping tests")
	}

	code, err := svc.turbo.Run("deploy", opts)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("deploy failed (exit %d)", code)
	}
	ui.Success("Deploy finished")
	return nil
}
