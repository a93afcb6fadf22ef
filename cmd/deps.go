package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phpmono/phpmono/internal/composer"
	"github.com/phpmono/phpmono/internal/config"
	"github.com/phpmono/phpmono/internal/toolexec"
	"github.com/phpmono/phpmono/internal/turbo"
	"github.com/phpmono/phpmono/internal/ui"
	"github.com/phpmono/phpmono/internal/workspace"
)

// services holds the shared components every command uses: the parsed
// config, the tool adapters, prompt functions, and the lazily discovered
// workspace registry. It is built once in main and never rebuilt; each
// CLI process runs exactly one command.
type services struct {
	cfg      config.Config
	composer *composer.Adapter
	turbo    *turbo.Adapter

	confirm   func(question string, defaultYes bool, interactive bool) (bool, error)
	selectOne func(title string, options []string, interactive bool) (string, error)
	input     func(title, placeholder string, interactive bool) (string, error)

	registry *workspace.Registry
}

var svc *services

func newServices() (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	runner := toolexec.NewStreamRunner()
	return &services{
		cfg:       cfg,
		composer:  composer.New(runner),
		turbo:     turbo.New(runner, cfg.Root),
		confirm:   ui.Confirm,
		selectOne: ui.Select,
		input:     ui.Input,
	}, nil
}

// workspaces discovers the registry on first use and shares it afterward.
func (s *services) workspaces() (*workspace.Registry, error) {
	if s.registry == nil {
		reg, err := workspace.Discover(s.cfg.Root)
		if err != nil {
			return nil, err
		}
		s.registry = reg
	}
	return s.registry, nil
}

// interactive reports whether prompts may run, honoring both the
// --no-interaction flag and the PHPMONO_NO_INTERACTION environment knob.
func (s *services) interactive(cmd *cobra.Command) bool {
	flagged, _ := cmd.Flags().GetBool("no-interaction")
	return !flagged && !s.cfg.NonInteractive
}

// resolveWorkspace picks the workspace a command targets. An explicit
// --workspace must match exactly; with no flag the first discovered
// workspace is auto-selected.
func (s *services) resolveWorkspace(cmd *cobra.Command) (workspace.Workspace, error) {
	reg, err := s.workspaces()
	if err != nil {
		return workspace.Workspace{}, err
	}
	name, _ := cmd.Flags().GetString("workspace")
	if name != "" {
		if ws, ok := reg.Find(name); ok {
			return ws, nil
		}
		return workspace.Workspace{}, &workspace.NotFoundError{Name: name}
	}
	all := reg.All()
	if len(all) == 0 {
		return workspace.Workspace{}, fmt.Errorf("no workspaces found under %s", s.cfg.Root)
	}
	ui.Comment(fmt.Sprintf("No workspace specified, using %s", all[0].Name))
	return all[0], nil
}

// taskOptions translates the common persistent flags into turbo options.
// Only flags the user actually set produce option fields.
func taskOptions(cmd *cobra.Command) turbo.Options {
	opts := turbo.Options{}
	if filter, _ := cmd.Flags().GetString("workspace"); filter != "" {
		opts.Filter = filter
	}
	if force, _ := cmd.Flags().GetBool("force"); force {
		opts.Force = true
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		opts.NoCache = true
	}
	return opts
}

// checkFilter warns early when a --workspace pattern matches nothing, so
// the user sees a workspace error instead of an opaque turbo no-op.
func (s *services) checkFilter(pattern string) error {
	if pattern == "" {
		return nil
	}
	reg, err := s.workspaces()
	if err != nil {
		return err
	}
	if len(reg.Match(pattern)) == 0 {
		return &workspace.NotFoundError{Name: pattern}
	}
	return nil
}
