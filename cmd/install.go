package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phpmono/phpmono/internal/envfile"
	"github.com/phpmono/phpmono/internal/scaffold"
	"github.com/phpmono/phpmono/internal/ui"
	"github.com/phpmono/phpmono/internal/workspace"
)

var installCmd = &cobra.Command{
	Use:     "install [name]",
	Aliases: []string{"i"},
	Short:   "Scaffold a new framework application",
	Long: `Clones a framework template into the apps directory, renames its
composer manifest, restarts version control history, and writes the
framework's initial environment file. An existing destination is never
overwritten; --force permits reusing an empty pre-created directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

var frameworkChoices = []string{
	string(workspace.FrameworkLaravel),
	string(workspace.FrameworkSymfony),
	string(workspace.FrameworkMagento),
	string(workspace.FrameworkSkeleton),
}

func init() {
	installCmd.Flags().String("framework", "", "Framework template (laravel, symfony, magento, skeleton)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	interactive := svc.interactive(cmd)

	name := ""
	if len(args) > 0 {
		name = args[0]
	} else {
		var err error
		name, err = svc.input("Application name", "app", interactive)
		if err != nil {
			return err
		}
	}

	fw, _ := cmd.Flags().GetString("framework")
	if fw == "" {
		var err error
		fw, err = svc.selectOne("Which framework?", frameworkChoices, interactive)
		if err != nil {
			return err
		}
	}
	template, ok := scaffold.Templates[workspace.Framework(fw)]
	if !ok {
		return fmt.Errorf("unknown framework %q (expected one of: laravel, symfony, magento, skeleton)", fw)
	}

	appsDir := workspace.AppsDir(svc.cfg.Root)
	dest := filepath.Join(svc.cfg.Root, appsDir, name)
	if entries, err := os.ReadDir(dest); err == nil {
		if len(entries) > 0 {
			return fmt.Errorf("destination %s already exists and is not empty", filepath.Join(appsDir, name))
		}
		if force, _ := cmd.Flags().GetBool("force"); !force {
			return fmt.Errorf("destination %s already exists; pass --force to reuse the empty directory", filepath.Join(appsDir, name))
		}
	}

	ok, err := svc.confirm(fmt.Sprintf("Scaffold a %s application into %s?", fw, filepath.Join(appsDir, name)), true, interactive)
	if err != nil {
		return err
	}
	if !ok {
		ui.Comment("Install cancelled.")
		return nil
	}

	ui.Info(fmt.Sprintf("Cloning %s", template))
	if err := scaffold.CloneTemplate(template, dest, name); err != nil {
		return err
	}

	settings := scaffold.NewSettings(name)
	provider := scaffold.ProviderFor(workspace.Framework(fw))
	for _, op := range provider.BuildOperations(settings) {
		if err := envfile.Apply(op, dest); err != nil {
			return err
		}
	}

	ui.Success(fmt.Sprintf("Created %s application %s", fw, name))

	installDeps, err := svc.confirm("Install composer dependencies now?", true, interactive)
	if err != nil {
		return err
	}
	if !installDeps {
		ui.Comment(fmt.Sprintf("Next: phpmono composer install --workspace %s", name))
		return nil
	}
	ws := workspace.Workspace{Name: name, Path: dest, Type: workspace.TypeApp}
	code, err := svc.composer.InstallDependencies(ws)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("composer install failed (exit %d)", code)
	}
	return nil
}
