package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var typecheckCmd = &cobra.Command{
	Use:     "typecheck",
	Aliases: []string{"tc", "phpstan"},
	Short:   "Run static analysis via Turborepo",
	RunE:    runTypecheck,
}

func init() {
	typecheckCmd.Flags().IntP("level", "l", -1, "PHPStan rule level (0-9)")
}

func runTypecheck(cmd *cobra.Command, args []string) error {
	opts := taskOptions(cmd)
	if err := svc.checkFilter(opts.Filter); err != nil {
		return err
	}

	var extra []string
	if level, _ := cmd.Flags().GetInt("level"); level >= 0 {
		extra = append(extra, fmt.Sprintf("--level=%d", level))
	}

	code, err := svc.turbo.Run("typecheck", opts, extra...)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("typecheck failed (exit %d)", code)
	}
	return nil
}
