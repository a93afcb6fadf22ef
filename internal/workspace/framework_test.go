package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectFramework(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     Framework
	}{
		{
			name:     "laravel",
			manifest: `{"require": {"php": "^8.2", "laravel/framework": "^11.0"}}`,
			want:     FrameworkLaravel,
		},
		{
			name:     "symfony",
			manifest: `{"require": {"symfony/framework-bundle": "^7.0"}}`,
			want:     FrameworkSymfony,
		},
		{
			name:     "magento",
			manifest: `{"require": {"magento/product-community-edition": "2.4.7"}}`,
			want:     FrameworkMagento,
		},
		{
			name:     "plain library",
			manifest: `{"require": {"php": "^8.2"}}`,
			want:     FrameworkSkeleton,
		},
		{
			name:     "malformed manifest",
			manifest: `{]`,
			want:     FrameworkSkeleton,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "composer.json"), []byte(tt.manifest), 0o644); err != nil {
				t.Fatal(err)
			}
			got := DetectFramework(Workspace{Name: tt.name, Path: dir, Type: TypeApp})
			if got != tt.want {
				t.Errorf("DetectFramework = %q, want %q", got, tt.want)
			}
		})
	}
}
