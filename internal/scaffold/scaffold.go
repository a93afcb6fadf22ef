// Package scaffold creates new framework applications from template
// repositories and builds their initial environment configuration.
package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/phpmono/phpmono/internal/workspace"
)

// ScaffoldError reports a failed clone or post-clone rewrite.
type ScaffoldError struct {
	Template string
	Dest     string
	Err      error
}

func (e *ScaffoldError) Error() string {
	return fmt.Sprintf("scaffolding %s into %s: %v", e.Template, e.Dest, e.Err)
}

func (e *ScaffoldError) Unwrap() error { return e.Err }

// Templates maps each framework to the repository the scaffolder clones.
var Templates = map[workspace.Framework]string{
	workspace.FrameworkLaravel:  "https://github.com/laravel/laravel.git",
	workspace.FrameworkSymfony:  "https://github.com/symfony/skeleton.git",
	workspace.FrameworkMagento:  "https://github.com/magento/magento2.git",
	workspace.FrameworkSkeleton: "https://github.com/php-pds/skeleton.git",
}

// CloneTemplate clones a template repository into dest, renames the package
// in its composer manifest, and restarts version-control history so the new
// application does not inherit the template's commits.
func CloneTemplate(templateURL, dest, newName string) error {
	if entries, err := os.ReadDir(dest); err == nil && len(entries) > 0 {
		return &ScaffoldError{Template: templateURL, Dest: dest, Err: fmt.Errorf("destination already exists and is not empty")}
	}

	_, err := git.PlainClone(dest, false, &git.CloneOptions{
		URL:      templateURL,
		Depth:    1,
		Progress: os.Stdout,
	})
	if err != nil {
		return &ScaffoldError{Template: templateURL, Dest: dest, Err: err}
	}

	if err := renameManifest(dest, newName); err != nil {
		return &ScaffoldError{Template: templateURL, Dest: dest, Err: err}
	}

	if err := os.RemoveAll(filepath.Join(dest, ".git")); err != nil {
		return &ScaffoldError{Template: templateURL, Dest: dest, Err: err}
	}
	if _, err := git.PlainInit(dest, false); err != nil {
		return &ScaffoldError{Template: templateURL, Dest: dest, Err: err}
	}
	return nil
}

// renameManifest rewrites the name field of the cloned composer.json,
// keeping every other field as the template shipped it.
func renameManifest(dest, newName string) error {
	manifest := filepath.Join(dest, "composer.json")
	data, err := os.ReadFile(manifest)
	if err != nil {
		if os.IsNotExist(err) {
			// Template without a manifest still scaffolds; the registry
			// will fall back to the directory name.
			return nil
		}
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing template manifest: %w", err)
	}
	doc["name"] = fmt.Sprintf("app/%s", newName)
	out, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(manifest, append(out, '\n'), 0o644)
}
