package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phpmono/phpmono/internal/ui"
)

var updateCmd = &cobra.Command{
	Use:     "update [package]",
	Aliases: []string{"up", "upgrade"},
	Short:   "Update Composer dependencies in a workspace",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ws, err := svc.resolveWorkspace(cmd)
	if err != nil {
		return err
	}
	pkg := ""
	if len(args) > 0 {
		pkg = args[0]
	}

	code, err := svc.composer.UpdatePackage(ws, pkg)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("composer update failed in %s", ws.Name)
	}
	ui.Success(fmt.Sprintf("Updated dependencies in %s", ws.Name))
	return nil
}
