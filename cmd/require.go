package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phpmono/phpmono/internal/ui"
)

var requireCmd = &cobra.Command{
	Use:     "require <package>",
	Aliases: []string{"req", "add"},
	Short:   "Add a Composer dependency to a workspace",
	Args:    cobra.ExactArgs(1),
	RunE:    runRequire,
}

func init() {
	requireCmd.Flags().BoolP("dev", "d", false, "Add to require-dev")
}

func runRequire(cmd *cobra.Command, args []string) error {
	ws, err := svc.resolveWorkspace(cmd)
	if err != nil {
		return err
	}
	dev, _ := cmd.Flags().GetBool("dev")

	code, err := svc.composer.RequirePackage(ws, args[0], dev)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("composer require failed in %s", ws.Name)
	}
	ui.Success(fmt.Sprintf("Added %s to %s", args[0], ws.Name))
	return nil
}
