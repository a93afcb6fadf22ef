package main

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/phpmono/phpmono/internal/turbo"
	"github.com/phpmono/phpmono/internal/ui"
	"github.com/phpmono/phpmono/internal/workspace"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a package workspace",
	Long: `Runs the publish task for one package workspace. Publishing is
destructive, so it always asks for confirmation and the default answer
is no.`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringP("tag", "t", "latest", "Dist tag or semver version to publish")
	publishCmd.Flags().Bool("dry-run", false, "Show what would be published without doing it")
}

func runPublish(cmd *cobra.Command, args []string) error {
	ws, err := svc.resolveWorkspace(cmd)
	if err != nil {
		return err
	}
	if ws.Type != workspace.TypePackage {
		return fmt.Errorf("workspace %s is an app; only packages can be published", ws.Name)
	}

	tag, _ := cmd.Flags().GetString("tag")
	if tag != "latest" {
		if _, err := semver.NewVersion(tag); err != nil {
			return fmt.Errorf("tag %q is not a valid semver version: %w", tag, err)
		}
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ok, err := svc.confirm(
		fmt.Sprintf("Publish %s@%s?", ws.Name, tag),
		false,
		svc.interactive(cmd),
	)
	if err != nil {
		return err
	}
	if !ok {
		ui.Comment("Publish cancelled.")
		return nil
	}

	extra := []string{fmt.Sprintf("--tag=%s", tag)}
	if dryRun {
		extra = append(extra, "--dry-run")
	}
	code, err := svc.turbo.Run("publish", turbo.Options{Filter: ws.Name}, extra...)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("publish failed (exit %d)", code)
	}
	ui.Success(fmt.Sprintf("Published %s@%s", ws.Name, tag))
	return nil
}
