// Package licensedoc generates a consolidated license document for the
// dependencies of a Rust/Cargo project.
//
// # Quick Start
//
// Create a generator and write the document:
//
//	gen := licensedoc.New(licensedoc.WithLogger(logger))
//	if err := gen.Write(ctx, "Cargo.toml", "licenses.html"); err != nil {
//	    log.Fatal(err)
//	}
//
// Use Generate to get the HTML bytes without touching the filesystem, or
// Markdown to assemble an already enumerated dependency list.
//
// # Pipeline
//
// Generation is strictly sequential:
//
//  1. Enumerate dependencies (cargo metadata, saved metadata JSON, or a
//     YAML dependency list)
//  2. For each dependency, resolve its license expression to embedded
//     license texts, or fetch its license file from the repository
//  3. Assemble one Markdown block per dependency, in enumeration order
//  4. Render the Markdown to HTML via goldmark
//  5. Write the HTML to the output path
//
// Dependencies with no license information are skipped with a warning.
// Only a failure to enumerate dependencies or to write the output is fatal.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen := licensedoc.New(
//	    licensedoc.WithFetchOptions(licensedoc.FetchOptions{Layout: "owner-repo"}),
//	    licensedoc.WithLoadOptions(licensedoc.LoadOptions{AvoidDevDeps: true}),
//	    licensedoc.WithRenderer(licensedoc.NewGoldmarkRenderer(licensedoc.WithDocument())),
//	)
//
// With WithDocument the renderer also accepts WithTitle, WithDate and
// WithStyle to set the page title, a "Generated" footer and an inline
// stylesheet.
package licensedoc
