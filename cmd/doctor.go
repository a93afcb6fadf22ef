package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phpmono/phpmono/internal/doctor"
	"github.com/phpmono/phpmono/internal/envfile"
	"github.com/phpmono/phpmono/internal/ui"
	"github.com/phpmono/phpmono/internal/workspace"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of the monorepo environment",
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	host := doctor.CheckHost()
	ui.Info(fmt.Sprintf("Host: %s (%s), %d CPUs, %s memory", host.Platform, host.OS, host.CPUs, host.Memory))

	missing := 0
	rows := [][]string{}
	for _, tool := range doctor.CheckTools() {
		v := tool.Version
		if !tool.Installed {
			v = "Not installed"
			missing++
		}
		rows = append(rows, []string{tool.Name, v})
	}
	ui.Table([]string{"Tool", "Version"}, rows)

	reg, err := svc.workspaces()
	if err != nil {
		return err
	}
	wsRows := [][]string{}
	for _, ws := range reg.All() {
		wsRows = append(wsRows, []string{ws.Name, string(ws.Type), string(workspace.DetectFramework(ws)), workspaceEnv(ws)})
	}
	if len(wsRows) == 0 {
		ui.Warn("No workspaces found. Expected composer.json projects under apps/ or packages/.")
	} else {
		ui.Table([]string{"Workspace", "Type", "Framework", "Env"}, wsRows)
	}

	if missing > 0 {
		ui.Warn(fmt.Sprintf("%d tool(s) missing; some commands will not work", missing))
	} else {
		ui.Success("All tools installed")
	}
	return nil
}

// workspaceEnv reads the workspace's environment file and reports its
// APP_ENV, or "-" when no environment has been provisioned.
func workspaceEnv(ws workspace.Workspace) string {
	for _, file := range []string{".env", ".env.local"} {
		vars, err := envfile.Read(filepath.Join(ws.Path, file))
		if err != nil {
			continue
		}
		if env, ok := vars["APP_ENV"]; ok && env != "" {
			return env
		}
	}
	return "-"
}
