// Package dateutil resolves the "generated on" stamp of HTML documents.
//
// A stamp value is either literal text, "auto" for today's date in ISO form,
// or "auto:FORMAT" where FORMAT is a preset name or a token pattern.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid stamp or format pattern.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits pattern length.
const MaxFormatLength = 50

// DefaultFormat is used for a bare "auto".
const DefaultFormat = "YYYY-MM-DD"

const autoPrefix = "auto"

// tokens are matched longest first.
var tokens = []struct{ pattern, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named patterns accepted after "auto:".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Layout converts a token pattern (YYYY, YY, MMMM, MMM, MM, M, DD, D) to a
// time.Format layout. Text in square brackets is copied literally.
func Layout(pattern string) (string, error) {
	switch {
	case pattern == "":
		return "", fmt.Errorf("%w: empty pattern", ErrInvalidDateFormat)
	case len(pattern) > MaxFormatLength:
		return "", fmt.Errorf("%w: pattern longer than %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	rest := pattern
	for rest != "" {
		if literal, ok := strings.CutPrefix(rest, "["); ok {
			text, after, found := strings.Cut(literal, "]")
			if !found {
				return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, pattern)
			}
			b.WriteString(text)
			rest = after
			continue
		}
		rest = writeToken(&b, rest)
	}
	return b.String(), nil
}

// writeToken writes the layout for the token at the start of s, or its
// first byte, and returns the remainder.
func writeToken(b *strings.Builder, s string) string {
	for _, tok := range tokens {
		if after, ok := strings.CutPrefix(s, tok.pattern); ok {
			b.WriteString(tok.layout)
			return after
		}
	}
	b.WriteByte(s[0])
	return s[1:]
}

// Resolve returns the stamp text for value at time t. Values not starting
// with "auto" are returned unchanged.
func Resolve(value string, t time.Time) (string, error) {
	if !strings.HasPrefix(strings.ToLower(value), autoPrefix) {
		return value, nil
	}

	pattern := DefaultFormat
	if len(value) > len(autoPrefix) {
		format, ok := strings.CutPrefix(value[len(autoPrefix):], ":")
		if !ok {
			return "", fmt.Errorf("%w: %q (use \"auto\" or \"auto:FORMAT\")", ErrInvalidDateFormat, value)
		}
		pattern = format
		if preset, ok := Presets[strings.ToLower(format)]; ok {
			pattern = preset
		}
	}

	layout, err := Layout(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// Validate reports whether value would resolve.
func Validate(value string) error {
	_, err := Resolve(value, time.Time{})
	return err
}
