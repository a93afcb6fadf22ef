// Package workspace discovers apps and packages inside a PHP monorepo.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Type distinguishes deployable apps from publishable packages.
type Type string

const (
	TypeApp     Type = "app"
	TypePackage Type = "package"
)

const manifestFile = "composer.json"

// Workspace is one app or package directory inside the monorepo.
// Records are immutable after discovery.
type Workspace struct {
	Name string
	Path string
	Type Type
}

// Registry holds the workspaces found by one discovery scan.
type Registry struct {
	workspaces []Workspace
}

// ConfigurationError reports a root that cannot be scanned.
type ConfigurationError struct {
	Root string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cannot scan monorepo root %s: %v", e.Root, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NotFoundError reports a workspace name the user asked for that does not
// exist in this monorepo.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("workspace %q not found", e.Name)
}

// rootConfig is the optional phpmono.yaml at the monorepo root. It can
// override which subdirectories are scanned for each workspace type.
type rootConfig struct {
	Apps     []string `yaml:"apps"`
	Packages []string `yaml:"packages"`
}

func loadRootConfig(root string) rootConfig {
	cfg := rootConfig{Apps: []string{"apps"}, Packages: []string{"packages"}}
	data, err := os.ReadFile(filepath.Join(root, "phpmono.yaml"))
	if err != nil {
		return cfg
	}
	var fileCfg rootConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg
	}
	if len(fileCfg.Apps) > 0 {
		cfg.Apps = fileCfg.Apps
	}
	if len(fileCfg.Packages) > 0 {
		cfg.Packages = fileCfg.Packages
	}
	return cfg
}

// AppsDir returns the first directory Discover scans for apps, honoring a
// phpmono.yaml override. Scaffolding resolves new application paths through
// it so they land where discovery will find them.
func AppsDir(root string) string {
	return loadRootConfig(root).Apps[0]
}

// Discover scans the monorepo root one level deep under the app and package
// directories. A directory qualifies as a workspace when it contains a
// composer.json. Scan order is preserved; some commands rely on first-match
// semantics for auto-selection.
func Discover(root string) (*Registry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &ConfigurationError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &ConfigurationError{Root: root, Err: fmt.Errorf("not a directory")}
	}

	cfg := loadRootConfig(root)
	reg := &Registry{}
	for _, dir := range cfg.Apps {
		if err := reg.scanDir(filepath.Join(root, dir), TypeApp); err != nil {
			return nil, err
		}
	}
	for _, dir := range cfg.Packages {
		if err := reg.scanDir(filepath.Join(root, dir), TypePackage); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (r *Registry) scanDir(dir string, t Type) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ConfigurationError{Root: dir, Err: err}
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		manifest := filepath.Join(path, manifestFile)
		if _, err := os.Stat(manifest); err != nil {
			continue
		}
		name := manifestName(manifest)
		if name == "" {
			name = entry.Name()
		}
		r.workspaces = append(r.workspaces, Workspace{Name: name, Path: path, Type: t})
	}
	return nil
}

// manifestName reads the composer.json name field and strips the vendor
// prefix, so "acme/api" becomes "api". Returns "" on any parse trouble.
func manifestName(manifest string) string {
	data, err := os.ReadFile(manifest)
	if err != nil {
		return ""
	}
	var doc struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return ""
	}
	if i := strings.LastIndexByte(doc.Name, '/'); i >= 0 {
		return doc.Name[i+1:]
	}
	return doc.Name
}

// All returns every discovered workspace in scan order.
func (r *Registry) All() []Workspace {
	return r.workspaces
}

// Len reports how many workspaces were discovered.
func (r *Registry) Len() int {
	return len(r.workspaces)
}

// Find looks a workspace up by exact name. The second return is false when
// no workspace matches; Find never errors.
func (r *Registry) Find(name string) (Workspace, bool) {
	for _, ws := range r.workspaces {
		if ws.Name == name {
			return ws, true
		}
	}
	return Workspace{}, false
}

// FilterByType returns the workspaces of one type, preserving scan order.
func (r *Registry) FilterByType(t Type) []Workspace {
	var out []Workspace
	for _, ws := range r.workspaces {
		if ws.Type == t {
			out = append(out, ws)
		}
	}
	return out
}

// Match returns the workspaces whose names match a doublestar pattern.
// A literal name matches itself.
func (r *Registry) Match(pattern string) []Workspace {
	var out []Workspace
	for _, ws := range r.workspaces {
		ok, err := doublestar.Match(pattern, ws.Name)
		if err == nil && ok {
			out = append(out, ws)
		}
	}
	return out
}
