// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-licensedoc/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForCargoMetadata returns hints for a failed `cargo metadata` run.
// getenv is consulted for the toolchain variables; nil means os.Getenv.
func ForCargoMetadata(getenv func(string) string) string {
	if getenv == nil {
		getenv = os.Getenv
	}

	var hints []string
	if getenv("CARGO_HOME") == "" && getenv("RUSTUP_HOME") == "" {
		hints = append(hints, "install the Rust toolchain or set cargo.command in the config file")
	}
	if IsInContainer() {
		hints = append(hints, "in Docker, save `cargo metadata --format-version 1` output and pass the .json file")
	}
	hints = append(hints, "check the manifest builds with `cargo metadata`")

	return formatHints(hints)
}

// ForManifestNotFound returns hints for a missing manifest argument.
func ForManifestNotFound() string {
	return format("pass a Cargo.toml, saved cargo metadata (.json) or a dependency list (.yaml)")
}

// ForConfigNotFound returns hints for config file not found errors.
// The first searched path under the user config dir is suggested for creation.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml or set LICENSEDOC_CONFIG"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "/go-licensedoc/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForStyleNotFound lists the built-in styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to a .css file")
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
