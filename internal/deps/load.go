package deps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-licensedoc/internal/fileutil"
)

// LoadOptions configures Load.
type LoadOptions struct {
	Cargo          string        // cargo binary (empty = DefaultCargo)
	AvoidDevDeps   bool          // skip dev-only edges
	AvoidBuildDeps bool          // skip build-only edges
	Runner         CommandRunner // nil = os/exec
}

// Load enumerates the dependencies described by path.
//
// A .json file is read as saved `cargo metadata` output, a .yaml or .yml
// file as a dependency list. Any other file is passed to
// `cargo metadata --manifest-path`.
func Load(ctx context.Context, path string, opts LoadOptions) ([]Dependency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
		if err != nil {
			return nil, fmt.Errorf("reading metadata: %w", err)
		}
		return ParseMetadata(data, opts)
	case ".yaml", ".yml":
		data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
		if err != nil {
			return nil, fmt.Errorf("reading dependency list: %w", err)
		}
		return ParseList(data)
	default:
		return runCargoMetadata(ctx, path, opts)
	}
}
