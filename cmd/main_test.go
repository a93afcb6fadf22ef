package main

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
)

func TestValidateCommandsAcceptsRegisteredSet(t *testing.T) {
	if err := validateCommands(rootCmd); err != nil {
		t.Errorf("registered command set has a collision: %v", err)
	}
}

func TestValidateCommandsRejectsCollisions(t *testing.T) {
	tests := []struct {
		name   string
		first  *cobra.Command
		second *cobra.Command
		token  string
	}{
		{
			name:   "duplicate name",
			first:  &cobra.Command{Use: "build"},
			second: &cobra.Command{Use: "build"},
			token:  "build",
		},
		{
			name:   "alias collides with name",
			first:  &cobra.Command{Use: "test"},
			second: &cobra.Command{Use: "check", Aliases: []string{"test"}},
			token:  "test",
		},
		{
			name:   "alias collides with alias",
			first:  &cobra.Command{Use: "update", Aliases: []string{"up"}},
			second: &cobra.Command{Use: "upload", Aliases: []string{"up"}},
			token:  "up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := &cobra.Command{Use: "root"}
			root.AddCommand(tt.first, tt.second)

			err := validateCommands(root)
			var regErr *RegistrationError
			if !errors.As(err, &regErr) {
				t.Fatalf("expected RegistrationError, got %v", err)
			}
			if regErr.Token != tt.token {
				t.Errorf("token = %q, want %q", regErr.Token, tt.token)
			}
			if regErr.First == "" || regErr.Second == "" {
				t.Error("RegistrationError should name both conflicting commands")
			}
		})
	}
}

func TestExitCodeErrorCarriesCode(t *testing.T) {
	err := error(exitCodeError{code: 7})
	var ece exitCodeError
	if !errors.As(err, &ece) {
		t.Fatal("errors.As failed")
	}
	if ece.code != 7 {
		t.Errorf("code = %d, want 7", ece.code)
	}
}
