// Package deps enumerates the dependencies of a Cargo project.
//
// Three inputs are understood: a Cargo manifest (enumerated by running
// `cargo metadata`), a saved `cargo metadata --format-version 1` JSON
// document, and a plain YAML dependency list.
package deps

import (
	"cmp"
	"errors"
	"slices"

	"github.com/Masterminds/semver/v3"
)

// Sentinel errors for dependency enumeration.
var (
	ErrManifestNotFound = errors.New("manifest not found")
	ErrCargoMetadata    = errors.New("cargo metadata failed")
	ErrMetadataParse    = errors.New("failed to parse cargo metadata")
	ErrDependencyList   = errors.New("invalid dependency list")
)

// Dependency describes one package as seen by the license generator.
// Optional fields are nil when the package does not declare them.
type Dependency struct {
	Name        string  `yaml:"name"`
	Version     string  `yaml:"version"`
	License     *string `yaml:"license"`
	LicenseFile *string `yaml:"licenseFile"`
	Authors     *string `yaml:"authors"`
	Repository  *string `yaml:"repository"`
}

// sortDependencies orders dependencies by name, then by semantic version.
// Versions that do not parse are compared as strings.
func sortDependencies(deps []Dependency) {
	slices.SortStableFunc(deps, func(a, b Dependency) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return compareVersions(a.Version, b.Version)
	})
}

func compareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return cmp.Compare(a, b)
	}
	return va.Compare(vb)
}
