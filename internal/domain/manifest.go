package domain

import (
	"sort"
	"strings"
)

// ManifestFileName is the composer manifest at the project root.
const ManifestFileName = "composer.json"

// Drupal package names used when listing patch targets.
const (
	DrupalVendorPrefix    = "drupal/"
	DrupalCorePackage     = "drupal/core"
	DrupalCoreRecommended = "drupal/core-recommended"
)

// ComposerManifest is the part of composer.json this tool reads.
type ComposerManifest struct {
	Require    map[string]string `json:"require"`
	RequireDev map[string]string `json:"require-dev"`
	Extra      ComposerExtra     `json:"extra"`
}

// ComposerExtra holds the composer-patches settings from the "extra" section.
type ComposerExtra struct {
	PatchesFile string `json:"patches-file"`
}

// DrupalPackages returns the Drupal packages that can receive patches:
// every drupal/* runtime or development dependency, sorted. drupal/core is
// added when only drupal/core-recommended is required, since patches apply
// to the real core package.
func DrupalPackages(m *ComposerManifest) []string {
	if m == nil {
		return nil
	}
	seen := make(map[string]bool)
	var pkgs []string
	for _, deps := range []map[string]string{m.Require, m.RequireDev} {
		for name := range deps {
			if !strings.HasPrefix(name, DrupalVendorPrefix) || seen[name] {
				continue
			}
			seen[name] = true
			pkgs = append(pkgs, name)
		}
	}
	sort.Strings(pkgs)
	if seen[DrupalCoreRecommended] && !seen[DrupalCorePackage] {
		pkgs = append(pkgs, DrupalCorePackage)
	}
	return pkgs
}
