package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phpmono/phpmono/internal/ui"
)

// Version information (can be set at build time)
var version = "0.2.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "phpmono",
	Short: "Manage PHP monorepos with Composer and Turborepo",
	Long: `phpmono manages PHP monorepos. It scaffolds framework applications
(Laravel, Symfony, Magento, Skeleton), wraps Composer dependency
operations per workspace, and delegates task orchestration to Turborepo.

The monorepo root is the working directory unless PHPMONO_ROOT is set.
Workspaces live under apps/ and packages/, one level deep, each with a
composer.json.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitCodeError carries a child process exit code through the command
// boundary so passthrough commands forward it unmodified.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// RegistrationError reports two commands claiming the same invocation token.
type RegistrationError struct {
	Token  string
	First  string
	Second string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("commands %q and %q both register token %q", e.First, e.Second, e.Token)
}

func init() {
	rootCmd.PersistentFlags().StringP("workspace", "w", "", "Target workspace name or pattern")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Bypass the task cache")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable task caching entirely")
	rootCmd.PersistentFlags().BoolP("no-interaction", "n", false, "Never ask interactive questions")
	rootCmd.SuggestionsMinimumDistance = 2

	rootCmd.AddCommand(
		installCmd,
		requireCmd,
		updateCmd,
		composerCmd,
		buildCmd,
		devCmd,
		testCmd,
		typecheckCmd,
		mutateCmd,
		deployCmd,
		publishCmd,
		runCmd,
		turboCmd,
		versionCmd,
		doctorCmd,
	)
}

// validateCommands checks that no two commands share a name or alias.
// Collisions are structural defects and abort the process before dispatch.
func validateCommands(root *cobra.Command) error {
	seen := make(map[string]string)
	for _, c := range root.Commands() {
		tokens := append([]string{c.Name()}, c.Aliases...)
		for _, token := range tokens {
			if first, ok := seen[token]; ok {
				return &RegistrationError{Token: token, First: first, Second: c.Name()}
			}
			seen[token] = c.Name()
		}
	}
	return nil
}

func main() {
	if err := validateCommands(rootCmd); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}

	var err error
	svc, err = newServices()
	if err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}

	// Single top-level error boundary: uncaught command errors are
	// rendered as one styled line, passthrough codes are forwarded as-is.
	if err := rootCmd.Execute(); err != nil {
		var ece exitCodeError
		if errors.As(err, &ece) {
			os.Exit(ece.code)
		}
		ui.Error(err.Error())
		os.Exit(1)
	}
}
