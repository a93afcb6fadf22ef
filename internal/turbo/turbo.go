// Package turbo wraps the Turborepo task runner as a subprocess. Caching,
// parallelism, and task-graph ordering all belong to turbo itself; this
// adapter only translates options into flags and spawns the process.
package turbo

import (
	"fmt"

	"github.com/phpmono/phpmono/internal/toolexec"
)

const binary = "turbo"

// Options select turbo behavior for one task run. Zero-value fields add
// no flags, so turbo's own defaults apply.
type Options struct {
	Filter          string // restrict to one workspace or pattern
	Force           bool   // bypass the task cache
	NoCache         bool   // disable cache writes entirely
	Parallel        bool
	ContinueOnError bool
}

func (o Options) args() []string {
	var args []string
	if o.Filter != "" {
		args = append(args, fmt.Sprintf("--filter=%s", o.Filter))
	}
	if o.Force {
		args = append(args, "--force")
	}
	if o.NoCache {
		args = append(args, "--no-cache")
	}
	if o.Parallel {
		args = append(args, "--parallel")
	}
	if o.ContinueOnError {
		args = append(args, "--continue")
	}
	return args
}

type Adapter struct {
	runner toolexec.Runner
	dir    string // monorepo root; turbo resolves its own config from here
}

func New(runner toolexec.Runner, dir string) *Adapter {
	return &Adapter{runner: runner, dir: dir}
}

// Run executes `turbo run <task>` with the translated options. Arguments
// in extraArgs are forwarded to the underlying task after "--". The exit
// code is turbo's own, unmodified.
func (a *Adapter) Run(task string, opts Options, extraArgs ...string) (int, error) {
	args := append([]string{"run", task}, opts.args()...)
	if len(extraArgs) > 0 {
		args = append(args, "--")
		args = append(args, extraArgs...)
	}
	res, err := a.runner.Run(toolexec.Invocation{
		Path: binary,
		Args: args,
		Dir:  a.dir,
	})
	return res.ExitCode, err
}

// RunUnbounded is Run with an explicitly unlimited timeout, for
// long-haul tasks like mutation testing. StreamRunner applies no timeout
// unless one is set, so this documents intent more than it changes
// behavior.
func (a *Adapter) RunUnbounded(task string, opts Options, extraArgs ...string) (int, error) {
	return a.Run(task, opts, extraArgs...)
}

// Passthrough forwards raw arguments to the turbo binary untouched.
func (a *Adapter) Passthrough(rawArgs []string) (int, error) {
	res, err := a.runner.Run(toolexec.Invocation{
		Path: binary,
		Args: rawArgs,
		Dir:  a.dir,
	})
	return res.ExitCode, err
}

// Version probes the installed turbo. ok is false when turbo is missing.
func (a *Adapter) Version() (string, bool) {
	return toolexec.Probe(binary, "--version")
}
