package scaffold

import (
	"strings"
	"testing"

	"github.com/phpmono/phpmono/internal/envfile"
	"github.com/phpmono/phpmono/internal/workspace"
)

func TestNewSettingsGeneratesSecretsOnce(t *testing.T) {
	s := NewSettings("shop")

	if !strings.HasPrefix(s.AppKey, "base64:") {
		t.Errorf("AppKey = %q, want base64: prefix", s.AppKey)
	}
	if len(s.AppSecret) != 32 {
		t.Errorf("AppSecret length = %d, want 32 hex chars", len(s.AppSecret))
	}

	// Retry semantics: building operations twice from the same settings
	// must not rotate the secret.
	provider := ProviderFor(workspace.FrameworkLaravel)
	first := findPair(t, provider.BuildOperations(s), "APP_KEY")
	second := findPair(t, provider.BuildOperations(s), "APP_KEY")
	if first != second {
		t.Errorf("APP_KEY rotated between builds: %q vs %q", first, second)
	}

	other := NewSettings("shop")
	if other.AppKey == s.AppKey {
		t.Error("two settings constructions produced the same key")
	}
}

func findPair(t *testing.T, ops []envfile.Operation, key string) string {
	t.Helper()
	for _, op := range ops {
		for _, p := range op.Pairs {
			if p.Key == key {
				return p.Value
			}
		}
	}
	t.Fatalf("key %s not found in operations", key)
	return ""
}

func TestProviderOperations(t *testing.T) {
	s := NewSettings("shop")

	tests := []struct {
		framework workspace.Framework
		file      string
		mustHave  []string
	}{
		{workspace.FrameworkLaravel, ".env", []string{"APP_NAME", "APP_KEY", "APP_URL", "DB_CONNECTION"}},
		{workspace.FrameworkSymfony, ".env.local", []string{"APP_ENV", "APP_SECRET", "DATABASE_URL"}},
		{workspace.FrameworkMagento, ".env", []string{"MAGE_MODE", "BASE_URL", "CRYPT_KEY"}},
		{workspace.FrameworkSkeleton, ".env", []string{"APP_NAME", "APP_ENV"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.framework), func(t *testing.T) {
			provider := ProviderFor(tt.framework)
			if provider.Framework() != tt.framework {
				t.Errorf("Framework() = %q", provider.Framework())
			}
			ops := provider.BuildOperations(s)
			if len(ops) != 1 {
				t.Fatalf("got %d operations, want 1", len(ops))
			}
			op := ops[0]
			if op.File != tt.file {
				t.Errorf("file = %q, want %q", op.File, tt.file)
			}
			if op.Action != envfile.ActionSet {
				t.Errorf("action = %q, want set", op.Action)
			}
			keys := make(map[string]bool)
			for _, p := range op.Pairs {
				if keys[p.Key] {
					t.Errorf("duplicate key %q in operation", p.Key)
				}
				keys[p.Key] = true
			}
			for _, key := range tt.mustHave {
				if !keys[key] {
					t.Errorf("operation missing key %q", key)
				}
			}
		})
	}
}

func TestProviderForUnknownFrameworkFallsBack(t *testing.T) {
	provider := ProviderFor(workspace.Framework("zend"))
	if provider.Framework() != workspace.FrameworkSkeleton {
		t.Errorf("fallback provider = %q, want skeleton", provider.Framework())
	}
}
