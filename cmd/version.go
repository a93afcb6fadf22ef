package main

import (
	"github.com/spf13/cobra"

	"github.com/phpmono/phpmono/internal/doctor"
	"github.com/phpmono/phpmono/internal/ui"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"ver", "v"},
	Short:   "Show CLI and tool versions",
	// Always exits 0: missing tools are reported, never treated as errors.
	RunE: runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	rows := [][]string{{"phpmono", version}}
	for _, tool := range doctor.CheckTools() {
		v := tool.Version
		if !tool.Installed {
			v = "Not installed"
		}
		rows = append(rows, []string{tool.Name, v})
	}
	ui.Table([]string{"Tool", "Version"}, rows)
	return nil
}
