package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// monorepo builds a scratch root with manifest-bearing workspace dirs.
func monorepo(t *testing.T, manifests map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range manifests {
		dir := filepath.Join(root, rel)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "composer.json"), []byte(content), 0o644); err != nil {
			t.Fatalf("writing manifest: %v", err)
		}
	}
	return root
}

func TestDiscover(t *testing.T) {
	root := monorepo(t, map[string]string{
		"apps/api":     `{"name": "acme/api"}`,
		"packages/lib": `{"name": "acme/lib"}`,
	})

	reg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("discovered %d workspaces, want 2", reg.Len())
	}

	api, ok := reg.Find("api")
	if !ok {
		t.Fatal("Find(api) returned absent")
	}
	if api.Type != TypeApp {
		t.Errorf("api type = %q, want %q", api.Type, TypeApp)
	}
	if api.Path != filepath.Join(root, "apps", "api") {
		t.Errorf("api path = %q", api.Path)
	}

	lib, ok := reg.Find("lib")
	if !ok {
		t.Fatal("Find(lib) returned absent")
	}
	if lib.Type != TypePackage {
		t.Errorf("lib type = %q, want %q", lib.Type, TypePackage)
	}

	if _, ok := reg.Find("missing"); ok {
		t.Error("Find(missing) should return absent")
	}
}

func TestDiscoverSkipsDirsWithoutManifest(t *testing.T) {
	root := monorepo(t, map[string]string{"apps/api": `{"name": "acme/api"}`})
	if err := os.MkdirAll(filepath.Join(root, "apps", "scratch"), 0o755); err != nil {
		t.Fatal(err)
	}

	reg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if reg.Len() != 1 {
		t.Errorf("discovered %d workspaces, want 1", reg.Len())
	}
}

func TestDiscoverNameFallsBackToDirectory(t *testing.T) {
	root := monorepo(t, map[string]string{"apps/api": `{}`})

	reg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if _, ok := reg.Find("api"); !ok {
		t.Error("expected directory-name fallback to find api")
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestDiscoverEmptyRootIsNotAnError(t *testing.T) {
	reg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry, got %d", reg.Len())
	}
}

func TestDiscoverRootConfigOverride(t *testing.T) {
	root := monorepo(t, map[string]string{
		"services/api": `{"name": "acme/api"}`,
		"libs/lib":     `{"name": "acme/lib"}`,
	})
	yaml := "apps:\n  - services\npackages:\n  - libs\n"
	if err := os.WriteFile(filepath.Join(root, "phpmono.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	api, ok := reg.Find("api")
	if !ok || api.Type != TypeApp {
		t.Errorf("expected api app from services/, got %+v ok=%v", api, ok)
	}
	lib, ok := reg.Find("lib")
	if !ok || lib.Type != TypePackage {
		t.Errorf("expected lib package from libs/, got %+v ok=%v", lib, ok)
	}
}

func TestAppsDir(t *testing.T) {
	root := t.TempDir()
	if got := AppsDir(root); got != "apps" {
		t.Errorf("AppsDir = %q, want apps", got)
	}

	yaml := "apps:\n  - services\n  - legacy\n"
	if err := os.WriteFile(filepath.Join(root, "phpmono.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := AppsDir(root); got != "services" {
		t.Errorf("AppsDir with override = %q, want services", got)
	}
}

func TestFilterByType(t *testing.T) {
	root := monorepo(t, map[string]string{
		"apps/api":      `{"name": "acme/api"}`,
		"apps/admin":    `{"name": "acme/admin"}`,
		"packages/lib":  `{"name": "acme/lib"}`,
		"packages/sdk":  `{"name": "acme/sdk"}`,
		"packages/core": `{"name": "acme/core"}`,
	})

	reg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if got := len(reg.FilterByType(TypeApp)); got != 2 {
		t.Errorf("apps = %d, want 2", got)
	}
	if got := len(reg.FilterByType(TypePackage)); got != 3 {
		t.Errorf("packages = %d, want 3", got)
	}
}

func TestMatch(t *testing.T) {
	root := monorepo(t, map[string]string{
		"apps/api-gateway": `{"name": "acme/api-gateway"}`,
		"apps/api-auth":    `{"name": "acme/api-auth"}`,
		"packages/lib":     `{"name": "acme/lib"}`,
	})
	reg, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	tests := []struct {
		pattern string
		want    int
	}{
		{"api-*", 2},
		{"lib", 1},
		{"nothing-*", 0},
		{"*", 3},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := len(reg.Match(tt.pattern)); got != tt.want {
				t.Errorf("Match(%q) = %d workspaces, want %d", tt.pattern, got, tt.want)
			}
		})
	}
}
