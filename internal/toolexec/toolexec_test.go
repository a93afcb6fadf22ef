package toolexec

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestStreamRunnerExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("sh not available")
	}

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"success", []string{"-c", "exit 0"}, 0},
		{"failure code preserved", []string{"-c", "exit 3"}, 3},
	}

	runner := NewStreamRunner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runner.Run(Invocation{Path: "sh", Args: tt.args})
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.ExitCode != tt.want {
				t.Errorf("exit code = %d, want %d", res.ExitCode, tt.want)
			}
		})
	}
}

func TestStreamRunnerMissingWorkingDirectory(t *testing.T) {
	runner := NewStreamRunner()
	_, err := runner.Run(Invocation{
		Path: "sh",
		Args: []string{"-c", "true"},
		Dir:  filepath.Join(t.TempDir(), "gone"),
	})
	if err == nil {
		t.Fatal("expected error for missing working directory")
	}
}

func TestStreamRunnerMissingBinary(t *testing.T) {
	runner := NewStreamRunner()
	_, err := runner.Run(Invocation{Path: "definitely-not-a-real-binary-xyz"})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestProbeMissingBinary(t *testing.T) {
	if _, ok := Probe("definitely-not-a-real-binary-xyz", "--version"); ok {
		t.Error("Probe reported a missing binary as installed")
	}
}

func TestProbeFirstLineOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("sh not available")
	}
	version, ok := Probe("sh", "-c", "echo line1; echo line2")
	if !ok {
		t.Fatal("Probe failed for sh")
	}
	if version != "line1" {
		t.Errorf("version = %q, want first line only", version)
	}
}
