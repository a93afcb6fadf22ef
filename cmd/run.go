package main

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:     "run <task>",
	Aliases: []string{"exec", "execute"},
	Short:   "Run an arbitrary task via Turborepo",
	Long: `Runs a named task across workspaces. The task graph, caching, and
scheduling are all Turborepo's; this command only translates flags. The
child's exit code is forwarded unmodified.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolP("parallel", "p", false, "Run without respecting the task graph")
	runCmd.Flags().Bool("continue", false, "Keep running other tasks after a failure")
}

func runRun(cmd *cobra.Command, args []string) error {
	opts := taskOptions(cmd)
	if parallel, _ := cmd.Flags().GetBool("parallel"); parallel {
		opts.Parallel = true
	}
	if cont, _ := cmd.Flags().GetBool("continue"); cont {
		opts.ContinueOnError = true
	}
	if err := svc.checkFilter(opts.Filter); err != nil {
		return err
	}

	code, err := svc.turbo.Run(args[0], opts)
	if err != nil {
		return err
	}
	if code != 0 {
		return exitCodeError{code: code}
	}
	return nil
}
