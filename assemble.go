package licensedoc

import (
	"fmt"
	"strings"
)

// FormatBlock builds the block for one dependency. The heading links the
// name to the repository when one is given and names the authors when
// present. licenseText is used as is.
func FormatBlock(name, version, licenseText string, authors, repository *string) Block {
	var heading string
	if repository != nil {
		heading = fmt.Sprintf("# [%s](%s) (%s)", name, *repository, version)
	} else {
		heading = fmt.Sprintf("# %s (%s)", name, version)
	}
	if authors != nil {
		heading += " by " + *authors
	}
	return Block{Heading: heading, Separator: blockSeparator, Text: licenseText}
}

// Assemble concatenates blocks in order. Text that does not end in a newline
// gets one so that the next heading starts its own line.
func Assemble(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		for _, s := range b.Strings() {
			sb.WriteString(s)
		}
		if b.Text != "" && !strings.HasSuffix(b.Text, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
