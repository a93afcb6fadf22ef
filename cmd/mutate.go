package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mutateCmd = &cobra.Command{
	Use:     "mutate",
	Aliases: []string{"infection"},
	Short:   "Run mutation testing via Turborepo",
	Long: `Runs the mutate task, which drives Infection inside each
workspace. Mutation runs are long; this command deliberately sets no
timeout. The tool's raw exit code is forwarded so CI can read Infection's
MSI threshold failures directly.`,
	RunE: runMutate,
}

func init() {
	mutateCmd.Flags().Float64("min-msi", 80, "Minimum mutation score indicator")
	mutateCmd.Flags().Float64("min-covered-msi", 90, "Minimum covered-code MSI")
	mutateCmd.Flags().IntP("threads", "t", 0, "Worker threads (0 = tool default)")
	mutateCmd.Flags().Bool("show-mutations", false, "Print escaped mutants")
}

func runMutate(cmd *cobra.Command, args []string) error {
	opts := taskOptions(cmd)
	if err := svc.checkFilter(opts.Filter); err != nil {
		return err
	}

	minMSI, _ := cmd.Flags().GetFloat64("min-msi")
	minCoveredMSI, _ := cmd.Flags().GetFloat64("min-covered-msi")
	extra := []string{
		fmt.Sprintf("--min-msi=%g", minMSI),
		fmt.Sprintf("--min-covered-msi=%g", minCoveredMSI),
	}
	if threads, _ := cmd.Flags().GetInt("threads"); threads > 0 {
		extra = append(extra, fmt.Sprintf("--threads=%d", threads))
	}
	if show, _ := cmd.Flags().GetBool("show-mutations"); show {
		extra = append(extra, "--show-mutations")
	}

	code, err := svc.turbo.RunUnbounded("mutate", opts, extra...)
	if err != nil {
		return err
	}
	if code != 0 {
		return exitCodeError{code: code}
	}
	return nil
}
