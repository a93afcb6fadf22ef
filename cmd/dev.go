package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phpmono/phpmono/internal/turbo"
	"github.com/phpmono/phpmono/internal/ui"
	"github.com/phpmono/phpmono/internal/workspace"
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Start the dev server for an app workspace",
	RunE:  runDev,
}

func init() {
	// --port is reserved for a future feature and currently ignored.
	devCmd.Flags().IntP("port", "p", 0, "Dev server port (reserved)")
}

func runDev(cmd *cobra.Command, args []string) error {
	reg, err := svc.workspaces()
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("workspace")
	var ws workspace.Workspace
	if name != "" {
		found, ok := reg.Find(name)
		if !ok {
			return &workspace.NotFoundError{Name: name}
		}
		ws = found
	} else {
		apps := reg.FilterByType(workspace.TypeApp)
		if len(apps) == 0 {
			return fmt.Errorf("no app workspaces found under %s", svc.cfg.Root)
		}
		ws = apps[0]
		ui.Comment(fmt.Sprintf("No workspace specified, using %s", ws.Name))
	}
	if ws.Type != workspace.TypeApp {
		return fmt.Errorf("workspace %s is a package; dev servers run in apps only", ws.Name)
	}

	ui.Info(fmt.Sprintf("Starting dev server for %s", ws.Name))
	code, err := svc.turbo.Run("dev", turbo.Options{Filter: ws.Name})
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("dev server exited with %d", code)
	}
	return nil
}
