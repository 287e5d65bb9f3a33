package dateutil

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestLayout - Token patterns
// ---------------------------------------------------------------------------

func TestLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		want    string
		wantErr error
	}{
		{name: "full year", pattern: "YYYY", want: "2006"},
		{name: "short year", pattern: "YY", want: "06"},
		{name: "month name", pattern: "MMMM", want: "January"},
		{name: "short month name", pattern: "MMM", want: "Jan"},
		{name: "padded month", pattern: "MM", want: "01"},
		{name: "month", pattern: "M", want: "1"},
		{name: "padded day", pattern: "DD", want: "02"},
		{name: "day", pattern: "D", want: "2"},
		{name: "iso", pattern: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "long", pattern: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "bracketed literal", pattern: "[Day] D", want: "Day 2"},
		{name: "empty brackets", pattern: "[]YYYY", want: "2006"},
		{name: "plain characters kept", pattern: "YYYY.MM", want: "2006.01"},
		{name: "empty", pattern: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", pattern: "[Day D", wantErr: ErrInvalidDateFormat},
		{name: "too long", pattern: strings.Repeat("Y", MaxFormatLength+1), wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Layout(tt.pattern)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolve - Stamp values
// ---------------------------------------------------------------------------

func TestResolve(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "empty passthrough", value: "", want: ""},
		{name: "literal passthrough", value: "Release 2.0", want: "Release 2.0"},
		{name: "auto", value: "auto", want: "2024-03-05"},
		{name: "auto case insensitive", value: "AUTO", want: "2024-03-05"},
		{name: "custom pattern", value: "auto:DD/MM/YYYY", want: "05/03/2024"},
		{name: "unpadded pattern", value: "auto:D/M/YY", want: "5/3/24"},
		{name: "preset", value: "auto:long", want: "March 5, 2024"},
		{name: "preset case insensitive", value: "auto:US", want: "03/05/2024"},
		{name: "european preset", value: "auto:european", want: "05/03/2024"},
		{name: "missing colon", value: "automatic", wantErr: ErrInvalidDateFormat},
		{name: "empty pattern", value: "auto:", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", value: "auto:[on D", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.value, at)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate("auto:iso"))
	assert.NoError(t, Validate("any text"))
	assert.ErrorIs(t, Validate("auto-"), ErrInvalidDateFormat)
}
