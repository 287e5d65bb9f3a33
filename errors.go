package licensedoc

import "errors"

// Sentinel errors for library operations.
var (
	ErrManifestRead   = errors.New("reading dependency manifest failed")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrWriteOutput    = errors.New("writing output failed")
)
