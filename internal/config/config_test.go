package config

import (
	"os"
	"testing"
)

func TestLoadDefaultsToWorkingDirectory(t *testing.T) {
	t.Setenv("PHPMONO_ROOT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cwd, _ := os.Getwd()
	if cfg.Root != cwd {
		t.Errorf("Root = %q, want working directory %q", cfg.Root, cwd)
	}
	if cfg.NonInteractive {
		t.Error("NonInteractive should default to false")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PHPMONO_ROOT", "/srv/mono")
	t.Setenv("PHPMONO_NO_INTERACTION", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Root != "/srv/mono" {
		t.Errorf("Root = %q", cfg.Root)
	}
	if !cfg.NonInteractive {
		t.Error("NonInteractive should be true")
	}
}
