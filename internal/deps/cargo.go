package deps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/samber/lo"
)

// DefaultCargo is the binary used when LoadOptions.Cargo is empty.
const DefaultCargo = "cargo"

// CommandRunner runs a command and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// execRunner runs the command with os/exec. A failing command's stderr is
// attached to the returned error.
func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- binary comes from user config
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// runCargoMetadata enumerates the dependencies of a Cargo.toml.
func runCargoMetadata(ctx context.Context, manifestPath string, opts LoadOptions) ([]Dependency, error) {
	runner := opts.Runner
	if runner == nil {
		runner = execRunner
	}
	cargo := opts.Cargo
	if cargo == "" {
		cargo = DefaultCargo
	}

	out, err := runner(ctx, cargo, "metadata", "--format-version", "1", "--manifest-path", manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCargoMetadata, err)
	}
	return ParseMetadata(out, opts)
}

// metadata mirrors the parts of `cargo metadata --format-version 1` we read.
type metadata struct {
	Packages         []metadataPackage `json:"packages"`
	WorkspaceMembers []string          `json:"workspace_members"`
	Resolve          *metadataResolve  `json:"resolve"`
}

type metadataPackage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Authors     []string `json:"authors"`
	License     *string  `json:"license"`
	LicenseFile *string  `json:"license_file"`
	Repository  *string  `json:"repository"`
}

type metadataResolve struct {
	Root  *string        `json:"root"`
	Nodes []metadataNode `json:"nodes"`
}

type metadataNode struct {
	ID           string        `json:"id"`
	Dependencies []string      `json:"dependencies"`
	Deps         []metadataDep `json:"deps"`
}

type metadataDep struct {
	Pkg      string        `json:"pkg"`
	DepKinds []metadataKind `json:"dep_kinds"`
}

// metadataKind.Kind is null for normal dependencies, "dev" or "build" otherwise.
type metadataKind struct {
	Kind *string `json:"kind"`
}

// ParseMetadata extracts dependencies from `cargo metadata` JSON output.
//
// Packages reachable from the resolve root are returned, or from every
// workspace member for a virtual manifest. Without a resolve graph every
// package is returned. The result is sorted by name and version.
func ParseMetadata(data []byte, opts LoadOptions) ([]Dependency, error) {
	var meta metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataParse, err)
	}

	packages := meta.Packages
	if meta.Resolve != nil {
		included := reachable(meta, opts)
		packages = lo.Filter(meta.Packages, func(p metadataPackage, _ int) bool {
			return included[p.ID]
		})
	}

	deps := lo.Map(packages, func(p metadataPackage, _ int) Dependency {
		return p.dependency()
	})
	sortDependencies(deps)
	return deps, nil
}

// reachable walks the resolve graph from its roots and returns the set of
// package IDs visited, skipping edges filtered out by opts.
func reachable(meta metadata, opts LoadOptions) map[string]bool {
	nodes := lo.KeyBy(meta.Resolve.Nodes, func(n metadataNode) string { return n.ID })

	queue := meta.WorkspaceMembers
	if meta.Resolve.Root != nil {
		queue = []string{*meta.Resolve.Root}
	}

	seen := make(map[string]bool, len(nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		seen[id] = true

		node, ok := nodes[id]
		if !ok {
			continue
		}
		queue = append(queue, node.edges(opts)...)
	}
	return seen
}

// edges returns the package IDs this node depends on. Metadata written by
// older cargo versions has no "deps" array and no dependency kinds.
func (n metadataNode) edges(opts LoadOptions) []string {
	if n.Deps == nil {
		return n.Dependencies
	}
	kept := lo.Filter(n.Deps, func(d metadataDep, _ int) bool {
		return d.keep(opts)
	})
	return lo.Map(kept, func(d metadataDep, _ int) string { return d.Pkg })
}

// keep reports whether at least one kind of the edge survives the filters.
func (d metadataDep) keep(opts LoadOptions) bool {
	if len(d.DepKinds) == 0 {
		return true
	}
	return lo.SomeBy(d.DepKinds, func(k metadataKind) bool {
		switch {
		case k.Kind == nil:
			return true
		case *k.Kind == "dev":
			return !opts.AvoidDevDeps
		case *k.Kind == "build":
			return !opts.AvoidBuildDeps
		default:
			return true
		}
	})
}

func (p metadataPackage) dependency() Dependency {
	dep := Dependency{
		Name:        p.Name,
		Version:     p.Version,
		License:     p.License,
		LicenseFile: p.LicenseFile,
		Repository:  p.Repository,
	}
	if len(p.Authors) > 0 {
		authors := strings.Join(p.Authors, "|")
		dep.Authors = &authors
	}
	return dep
}
