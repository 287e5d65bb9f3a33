package main

import (
	"errors"
	"os"

	licensedoc "github.com/alnah/go-licensedoc"
	"github.com/alnah/go-licensedoc/internal/assets"
	"github.com/alnah/go-licensedoc/internal/config"
	"github.com/alnah/go-licensedoc/internal/deps"
	"github.com/alnah/go-licensedoc/internal/logging"
)

// Exit codes for the licensedoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Document written, or failure without --strict
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments or config
	ExitIO      = 3 // Manifest unreadable, output not writable
)

// ErrUsage reports wrong positional arguments.
var ErrUsage = errors.New("usage error")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, licensedoc.ErrManifestRead) ||
		errors.Is(err, licensedoc.ErrWriteOutput) ||
		errors.Is(err, deps.ErrManifestNotFound) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrAssetTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}
