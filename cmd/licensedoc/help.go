package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: licensedoc [flags] <manifest> <output>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate an HTML license document for the dependencies of a Cargo project.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  manifest    Cargo.toml, saved `cargo metadata` JSON (.json),")
	fmt.Fprintln(w, "              or a YAML dependency list (.yaml, .yml)")
	fmt.Fprintln(w, "  output      HTML file to write (overwritten)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --strict              Exit non-zero when generation fails")
	fmt.Fprintln(w, "      --document            Wrap output in a full HTML5 document")
	fmt.Fprintln(w, "      --title <text>        Document title (default Licenses)")
	fmt.Fprintln(w, "      --date <value>        Generated stamp: text, auto, auto:FORMAT")
	fmt.Fprintln(w, "                            (presets: iso, european, us, long)")
	fmt.Fprintln(w, "      --style <name>        Built-in style (plain, compact) or CSS file")
	fmt.Fprintln(w, "      --avoid-dev-deps      Skip dev-only dependencies")
	fmt.Fprintln(w, "      --avoid-build-deps    Skip build-only dependencies")
	fmt.Fprintln(w, "      --list-licenses       List known license identifiers")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  LICENSEDOC_LOG       Log level: debug, info, warn, error (default info)")
	fmt.Fprintln(w, "  LICENSEDOC_CONFIG    Config file name or path")
	fmt.Fprintln(w, "  LICENSEDOC_STRICT    Same as --strict when 1 or true")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes (with --strict):")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  general error")
	fmt.Fprintln(w, "  2  usage or config error")
	fmt.Fprintln(w, "  3  manifest or output I/O error")
}
