// Package fetch downloads license files from source repositories.
package fetch

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Defaults for Options.
const (
	DefaultBaseURL = "https://raw.githubusercontent.com"
	DefaultBranch  = "main"
)

// Repository path layouts.
const (
	// LayoutFirstSegment uses the first path segment as both owner and
	// project, so https://github.com/serde-rs/serde reads as serde-rs/serde-rs.
	LayoutFirstSegment = "first-segment"
	// LayoutOwnerRepo uses the first two segments as owner and project.
	LayoutOwnerRepo = "owner-repo"
)

// ErrInvalidRepository is returned when a repository URL cannot be turned
// into a raw-content URL.
var ErrInvalidRepository = errors.New("invalid repository URL")

// Options configures RawURL. Zero values select the defaults.
type Options struct {
	BaseURL string
	Branch  string
	Layout  string
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Branch == "" {
		o.Branch = DefaultBranch
	}
	if o.Layout == "" {
		o.Layout = LayoutFirstSegment
	}
	return o
}

// RawURL builds the URL of licenseFile inside repository:
//
//	{BaseURL}/{owner}/{project}/{Branch}/{licenseFile}
func RawURL(repository, licenseFile string, opts Options) (string, error) {
	opts = opts.withDefaults()

	u, err := url.Parse(repository)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidRepository, repository, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q: not an absolute URL", ErrInvalidRepository, repository)
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("%w: %q: empty path", ErrInvalidRepository, repository)
	}

	var owner, project string
	switch opts.Layout {
	case LayoutFirstSegment:
		owner, project = segments[0], segments[0]
	case LayoutOwnerRepo:
		if len(segments) < 2 {
			return "", fmt.Errorf("%w: %q: expected owner and project", ErrInvalidRepository, repository)
		}
		owner, project = segments[0], strings.TrimSuffix(segments[1], ".git")
	default:
		return "", fmt.Errorf("%w: unknown layout %q", ErrInvalidRepository, opts.Layout)
	}

	base := strings.TrimSuffix(opts.BaseURL, "/")
	file := strings.TrimPrefix(licenseFile, "/")
	return base + "/" + owner + "/" + project + "/" + opts.Branch + "/" + file, nil
}
