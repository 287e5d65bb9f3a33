package licenses

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

//go:embed templates/*.md
var templates embed.FS

// identifiers maps every accepted license identifier to the template file
// (without the .md extension) holding its text. Keys are lowercase.
var identifiers = map[string]string{
	"0bsd": "0bsd",

	"apache-2.0":  "apache-2.0",
	"apache-v2.0": "apache-2.0",

	"apache-2.0 with llvm-exception": "apache-2.0-llvm",
	"apache-2.0-llvm":                "apache-2.0-llvm",
	"apache-v2.0-llvm":               "apache-2.0-llvm",

	"artistic-2.0":  "artistic-2.0",
	"artistic-v2.0": "artistic-2.0",

	"bsd-2-clause": "bsd-2-clause",
	"bsd-2":        "bsd-2-clause",
	"bsd-3-clause": "bsd-3-clause",
	"bsd-3":        "bsd-3-clause",

	"epl-1.0":  "epl-1.0",
	"epl-v1.0": "epl-1.0",

	"agpl-3.0":      "agpl-3.0",
	"gnu-agpl-v3.0": "agpl-3.0",
	"fdl-1.3":       "fdl-1.3",
	"gnu-fdl-v1.3":  "fdl-1.3",
	"gpl-1.0":       "gpl-1.0",
	"gnu-gpl-v1.0":  "gpl-1.0",
	"gpl-2.0":       "gpl-2.0",
	"gnu-gpl-v2.0":  "gpl-2.0",
	"gpl-3.0":       "gpl-3.0",
	"gnu-gpl-v3.0":  "gpl-3.0",
	"lgpl-2.1":      "lgpl-2.1",
	"gnu-lgpl-v2.1": "lgpl-2.1",
	"lgpl-3.0":      "lgpl-3.0",
	"gnu-lgpl-v3.0": "lgpl-3.0",

	"mit": "mit",

	"mpl-2.0":  "mpl-2.0",
	"mpl-v2.0": "mpl-2.0",

	"unlicense": "unlicense",
	"zlib":      "zlib",
	"isc":       "isc",
	"bsl-1.0":   "bsl-1.0",
}

// catalog holds the template text for every identifier. Built once at init
// from the embedded files and never written afterwards.
var catalog = mustLoadCatalog()

func mustLoadCatalog() map[string]string {
	texts := make(map[string]string, len(identifiers))
	for id, file := range identifiers {
		content, err := templates.ReadFile("templates/" + file + ".md")
		if err != nil {
			panic(fmt.Sprintf("licenses: template %q for %q: %v", file, id, err))
		}
		texts[id] = string(content)
	}
	return texts
}

// Lookup returns the template text for a license identifier.
// The identifier is matched case-insensitively. The boolean is false when the
// identifier is unknown; that is a valid outcome, not an error.
func Lookup(identifier string) (string, bool) {
	text, ok := catalog[strings.ToLower(identifier)]
	return text, ok
}

// Identifiers returns every accepted identifier, aliases included, sorted.
func Identifiers() []string {
	ids := lo.Keys(catalog)
	sort.Strings(ids)
	return ids
}

// TemplateNames returns the distinct template names backing the catalog, sorted.
func TemplateNames() []string {
	names := lo.Uniq(lo.Values(identifiers))
	sort.Strings(names)
	return names
}
