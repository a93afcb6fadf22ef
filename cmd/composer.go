package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var composerCmd = &cobra.Command{
	Use:     "composer <command...>",
	Aliases: []string{"comp"},
	Short:   "Forward arbitrary arguments to Composer in a workspace",
	Long: `Runs composer with the given arguments unchanged, rooted at the
target workspace. The child's exit code is forwarded as-is so CI systems
can interpret Composer's own codes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runComposer,
}

func init() {
	// Stop flag parsing at the first positional so composer's own flags
	// pass through untouched.
	composerCmd.Flags().SetInterspersed(false)
}

func runComposer(cmd *cobra.Command, args []string) error {
	ws, err := svc.resolveWorkspace(cmd)
	if err != nil {
		return err
	}
	code, err := svc.composer.RunCommand(strings.Join(args, " "), ws.Path)
	if err != nil {
		return err
	}
	if code != 0 {
		return exitCodeError{code: code}
	}
	return nil
}
