// Package assets provides the CSS styles embedded in HTML documents.
//
// A style is named either by a built-in name (see Styles) or by a path to
// a CSS file on disk. Anything containing a path separator is treated as a
// path.
//
// # Security
//
// Built-in names are validated so they cannot address files outside the
// embedded styles directory. Files read from disk are size-limited.
package assets
