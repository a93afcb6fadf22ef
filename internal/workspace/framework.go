package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Framework identifies which PHP framework a workspace is built on.
type Framework string

const (
	FrameworkLaravel  Framework = "laravel"
	FrameworkSymfony  Framework = "symfony"
	FrameworkMagento  Framework = "magento"
	FrameworkSkeleton Framework = "skeleton"
)

// frameworkMarkers maps composer require entries to frameworks, checked in
// order so the more specific platforms win.
var frameworkMarkers = []struct {
	pkg       string
	framework Framework
}{
	{"magento/product-community-edition", FrameworkMagento},
	{"laravel/framework", FrameworkLaravel},
	{"symfony/framework-bundle", FrameworkSymfony},
}

// DetectFramework inspects the workspace manifest's require block. Falls
// back to Skeleton when nothing recognizable is required.
func DetectFramework(ws Workspace) Framework {
	data, err := os.ReadFile(filepath.Join(ws.Path, manifestFile))
	if err != nil {
		return FrameworkSkeleton
	}
	var doc struct {
		Require map[string]string `json:"require"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return FrameworkSkeleton
	}
	for _, m := range frameworkMarkers {
		if _, ok := doc.Require[m.pkg]; ok {
			return m.framework
		}
	}
	return FrameworkSkeleton
}
