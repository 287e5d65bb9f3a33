package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/alnah/go-licensedoc/internal/fileutil"
)

//go:embed styles/*.css
var styles embed.FS

// MaxStyleSize caps style files read from disk.
const MaxStyleSize = 256 << 10

// DefaultStyle is the built-in style used when a document asks for one
// without naming it.
const DefaultStyle = "plain"

// LoadStyle returns the CSS for a built-in style name or a file path.
func LoadStyle(nameOrPath string) (string, error) {
	if fileutil.IsFilePath(nameOrPath) {
		return loadStyleFile(nameOrPath)
	}
	if err := validateName(nameOrPath); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + nameOrPath + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, nameOrPath)
	}
	return string(content), nil
}

// Styles lists the built-in style names in sorted order.
func Styles() []string {
	entries, err := fs.ReadDir(styles, "styles")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".css"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func loadStyleFile(p string) (string, error) {
	info, err := os.Stat(p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAssetRead, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %w: %s", ErrAssetRead, fileutil.ErrIsDir, p)
	}
	if info.Size() > MaxStyleSize {
		return "", fmt.Errorf("%w: %s (%d bytes, max %d)", ErrAssetTooLarge, p, info.Size(), MaxStyleSize)
	}

	content, err := os.ReadFile(p) // #nosec G304 -- style path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAssetRead, err)
	}
	return string(content), nil
}

// validateName rejects empty names and names that could change the
// extension or directory of the embedded lookup.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
