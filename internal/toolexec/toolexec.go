// Package toolexec spawns external tool processes and streams their output.
package toolexec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Invocation describes a single external-process call.
type Invocation struct {
	Path        string
	Args        []string
	Dir         string
	Env         []string      // appended to the parent environment
	Interactive bool          // wire stdin through for prompts inside the child
	Timeout     time.Duration // 0 means no timeout
}

// Result is what survives a finished invocation.
type Result struct {
	ExitCode int
	Duration time.Duration
}

// Runner executes invocations. Commands hold a Runner so tests can
// substitute a recording fake.
type Runner interface {
	Run(inv Invocation) (Result, error)
}

// StreamRunner runs invocations with stdout/stderr wired straight to the
// console. Output is never buffered; the caller blocks until the child exits.
type StreamRunner struct{}

func NewStreamRunner() *StreamRunner {
	return &StreamRunner{}
}

func (r *StreamRunner) Run(inv Invocation) (Result, error) {
	if inv.Dir != "" {
		info, err := os.Stat(inv.Dir)
		if err != nil || !info.IsDir() {
			return Result{ExitCode: 1}, fmt.Errorf("working directory %s does not exist", inv.Dir)
		}
	}

	ctx := context.Background()
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if inv.Interactive {
		cmd.Stdin = os.Stdin
	}
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}

	start := time.Now()
	err := cmd.Run()
	res := Result{Duration: time.Since(start)}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		res.ExitCode = 1
		return res, fmt.Errorf("%s: %w", inv.Path, err)
	}
	return res, nil
}

// Probe runs a binary with the given args and returns its trimmed combined
// first line of output. Returns ok=false when the binary is not installed.
func Probe(bin string, args ...string) (version string, ok bool) {
	if _, err := exec.LookPath(bin); err != nil {
		return "", false
	}
	out, err := exec.Command(bin, args...).Output()
	if err != nil {
		return "", false
	}
	line := strings.TrimSpace(string(out))
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	return line, true
}
