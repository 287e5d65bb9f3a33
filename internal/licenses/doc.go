// Package licenses maps license identifiers to license texts.
//
// # Catalog
//
// Templates are Markdown files embedded at compile time:
//
//	templates/
//	├── mit.md
//	├── apache-2.0.md
//	└── ...
//
// Each accepted identifier (canonical SPDX-style names plus the older
// aliases such as "apache-v2.0" or "gnu-gpl-v3.0") points at exactly one
// template. Lookups are case-insensitive.
//
// # Placeholders
//
// Templates may contain two tokens, written as inline code so that Markdown
// renders them verbatim when left untouched:
//
//	`<year>`              replaced with the current UTC year
//	`<copyright holders>` replaced with the quoted authors string
//
// # Expressions
//
// A license expression such as "MIT OR Apache-2.0" is lowercased and split
// on " or " and " and ". Both separators are flattened into one list; the
// resolver does not model alternatives versus conjunctions.
package licenses
