// Package composer wraps the Composer dependency manager as a subprocess.
// Arguments are forwarded, output is streamed, and exit codes come back
// unmodified; no dependency resolution happens in-process.
package composer

import (
	"strings"

	"github.com/phpmono/phpmono/internal/toolexec"
	"github.com/phpmono/phpmono/internal/workspace"
)

const binary = "composer"

type Adapter struct {
	runner toolexec.Runner
}

func New(runner toolexec.Runner) *Adapter {
	return &Adapter{runner: runner}
}

// RunCommand forwards a raw argument string to composer rooted at dir.
// Nothing is validated; composer owns its own flag surface.
func (a *Adapter) RunCommand(rawArgs string, dir string) (int, error) {
	res, err := a.runner.Run(toolexec.Invocation{
		Path:        binary,
		Args:        strings.Fields(rawArgs),
		Dir:         dir,
		Interactive: true,
	})
	return res.ExitCode, err
}

// RequirePackage runs composer require [--dev] <spec> inside the workspace.
func (a *Adapter) RequirePackage(ws workspace.Workspace, packageSpec string, dev bool) (int, error) {
	args := []string{"require"}
	if dev {
		args = append(args, "--dev")
	}
	args = append(args, packageSpec)
	res, err := a.runner.Run(toolexec.Invocation{
		Path:        binary,
		Args:        args,
		Dir:         ws.Path,
		Interactive: true,
	})
	return res.ExitCode, err
}

// UpdatePackage runs composer update, optionally narrowed to one package.
func (a *Adapter) UpdatePackage(ws workspace.Workspace, packageName string) (int, error) {
	args := []string{"update"}
	if packageName != "" {
		args = append(args, packageName)
	}
	res, err := a.runner.Run(toolexec.Invocation{
		Path:        binary,
		Args:        args,
		Dir:         ws.Path,
		Interactive: true,
	})
	return res.ExitCode, err
}

// InstallDependencies runs composer install inside the workspace.
func (a *Adapter) InstallDependencies(ws workspace.Workspace) (int, error) {
	res, err := a.runner.Run(toolexec.Invocation{
		Path:        binary,
		Args:        []string{"install"},
		Dir:         ws.Path,
		Interactive: true,
	})
	return res.ExitCode, err
}

// Version probes the installed composer. ok is false when composer is not
// on PATH; that is not an error.
func (a *Adapter) Version() (string, bool) {
	return toolexec.Probe(binary, "--version")
}
