package licensedoc

import (
	"github.com/alnah/go-licensedoc/internal/deps"
	"github.com/alnah/go-licensedoc/internal/fetch"
)

// Dependency describes one package: name, version and the optional license
// expression, license file, authors and repository URL.
type Dependency = deps.Dependency

// LoadOptions configures dependency enumeration.
type LoadOptions = deps.LoadOptions

// FetchOptions configures how repository URLs map to raw license file URLs.
type FetchOptions = fetch.Options

// Fetcher retrieves a license file by URL.
type Fetcher = fetch.Fetcher

// blockSeparator sits between a block heading and its text.
const blockSeparator = "\n\n"

// Block is the Markdown section written for one dependency.
type Block struct {
	Heading   string
	Separator string
	Text      string
}

// Strings returns the heading, separator and text in output order.
func (b Block) Strings() []string {
	return []string{b.Heading, b.Separator, b.Text}
}
