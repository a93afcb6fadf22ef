package main

import (
	"github.com/spf13/cobra"
)

var turboCmd = &cobra.Command{
	Use:     "turbo <command...>",
	Aliases: []string{"tb"},
	Short:   "Forward arbitrary arguments to Turborepo",
	Long: `Runs turbo with the given arguments unchanged, rooted at the
monorepo. The child's exit code is forwarded as-is.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTurbo,
}

func init() {
	turboCmd.Flags().SetInterspersed(false)
}

func runTurbo(cmd *cobra.Command, args []string) error {
	code, err := svc.turbo.Passthrough(args)
	if err != nil {
		return err
	}
	if code != 0 {
		return exitCodeError{code: code}
	}
	return nil
}
