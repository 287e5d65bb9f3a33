package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortDependencies(t *testing.T) {
	t.Parallel()

	deps := []Dependency{
		{Name: "serde", Version: "1.10.0"},
		{Name: "anyhow", Version: "1.0.0"},
		{Name: "serde", Version: "1.9.0"},
		{Name: "serde", Version: "1.0.0-beta.1"},
		{Name: "serde", Version: "1.0.0"},
	}

	sortDependencies(deps)

	assert.Equal(t, []string{
		"anyhow 1.0.0",
		"serde 1.0.0-beta.1",
		"serde 1.0.0",
		"serde 1.9.0",
		"serde 1.10.0",
	}, ids(deps))
}

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{a: "1.9.0", b: "1.10.0", want: -1},
		{a: "2.0.0", b: "2.0.0", want: 0},
		{a: "0.4.21", b: "0.4.3", want: 1},
		{a: "not-a-version", b: "also-not", want: 1},
		{a: "1.0.0", b: "zzz", want: -1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, compareVersions(tt.a, tt.b))
		})
	}
}
