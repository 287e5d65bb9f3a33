package licensedoc

// Notes:
// - Generate's panic recovery is exercised with a panicking enumerator
//   rather than a real internal fault.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alnah/go-licensedoc/internal/fetch"
	"github.com/alnah/go-licensedoc/internal/licenses"
)

// ---------------------------------------------------------------------------
// Test doubles
// ---------------------------------------------------------------------------

type fakeFetcher struct {
	bodies map[string]string
	err    error
	calls  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	if f.err != nil {
		return "", f.err
	}
	body, ok := f.bodies[url]
	if !ok {
		return "", errors.New("404 Not Found")
	}
	return body, nil
}

type failingRenderer struct{}

func (failingRenderer) ToHTML(context.Context, string) (string, error) {
	return "", ErrHTMLConversion
}

func staticEnumerator(deps ...Dependency) Enumerator {
	return EnumeratorFunc(func(context.Context, string) ([]Dependency, error) {
		return deps, nil
	})
}

func fixedClock() time.Time {
	return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func newObservedGenerator(opts ...Option) (*Generator, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := []Option{WithLogger(zap.New(core)), WithNow(fixedClock)}
	return New(append(base, opts...)...), logs
}

// ---------------------------------------------------------------------------
// TestMarkdown - Per-dependency branches
// ---------------------------------------------------------------------------

func TestMarkdown_LicensedAndUnlicensed(t *testing.T) {
	t.Parallel()

	g, logs := newObservedGenerator()

	md := g.Markdown(context.Background(), []Dependency{
		{Name: "depname", Version: "1.0.0", License: strPtr("MIT"), Authors: strPtr("Jane Doe")},
		{Name: "nolicense", Version: "0.1.0"},
	})

	assert.Equal(t, 1, strings.Count("\n"+md, "\n# "), "exactly one block expected")
	assert.True(t, strings.HasPrefix(md, "# depname (1.0.0) by Jane Doe\n\n"))
	assert.Contains(t, md, `Copyright (c) 2024 "Jane Doe"`)
	assert.NotContains(t, md, "nolicense")

	warnings := logs.FilterLevelExact(zapcore.WarnLevel)
	require.Equal(t, 1, warnings.Len())
	assert.Equal(t, "nolicense has no license", warnings.All()[0].Message)
}

func TestMarkdown_ExpressionJoinsTexts(t *testing.T) {
	t.Parallel()

	g, _ := newObservedGenerator()
	mit, _ := licenses.Lookup("mit")
	apache, _ := licenses.Lookup("apache-2.0")

	md := g.Markdown(context.Background(), []Dependency{
		{Name: "dual", Version: "2.0.0", License: strPtr("MIT OR Apache-2.0")},
	})

	mitText := strings.ReplaceAll(mit, licenses.YearPlaceholder, "2024")
	apacheText := strings.ReplaceAll(apache, licenses.YearPlaceholder, "2024")
	want := "# dual (2.0.0)\n\n" + mitText + "\n\n" + apacheText
	if !strings.HasSuffix(want, "\n") {
		want += "\n"
	}
	assert.Equal(t, want, md)
}

func TestMarkdown_UnknownLicenseStillWritesBlock(t *testing.T) {
	t.Parallel()

	g, logs := newObservedGenerator()

	md := g.Markdown(context.Background(), []Dependency{
		{Name: "custom", Version: "1.0.0", License: strPtr("LicenseRef-Custom")},
	})

	assert.Equal(t, "# custom (1.0.0)\n\n", md)
	warnings := logs.FilterMessage("couldn't find markdown license")
	require.Equal(t, 1, warnings.Len())
	assert.Equal(t, "licenseref-custom", warnings.All()[0].ContextMap()["license"])
}

func TestMarkdown_FetchesLicenseFile(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{bodies: map[string]string{
		"https://raw.githubusercontent.com/rust-lang/rust-lang/main/LICENSE": "Custom license text\n",
	}}
	g, logs := newObservedGenerator(WithFetcher(f))

	md := g.Markdown(context.Background(), []Dependency{
		{
			Name:        "cc",
			Version:     "1.0.90",
			LicenseFile: strPtr("LICENSE"),
			Repository:  strPtr("https://github.com/rust-lang/cc-rs"),
		},
	})

	assert.Equal(t, "# [cc](https://github.com/rust-lang/cc-rs) (1.0.90)\n\nCustom license text\n", md)
	assert.Equal(t, []string{"https://raw.githubusercontent.com/rust-lang/rust-lang/main/LICENSE"}, f.calls)
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestMarkdown_FetchOptions(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{bodies: map[string]string{
		"https://raw.example.com/rust-lang/cc-rs/master/LICENSE": "text\n",
	}}
	g, _ := newObservedGenerator(
		WithFetcher(f),
		WithFetchOptions(FetchOptions{BaseURL: "https://raw.example.com", Branch: "master", Layout: fetch.LayoutOwnerRepo}),
	)

	md := g.Markdown(context.Background(), []Dependency{
		{Name: "cc", Version: "1.0.90", LicenseFile: strPtr("LICENSE"), Repository: strPtr("https://github.com/rust-lang/cc-rs.git")},
	})

	assert.Contains(t, md, "text\n")
}

func TestMarkdown_SkippedDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dep       Dependency
		fetchErr  error
		wantLevel zapcore.Level
		wantMsg   string
	}{
		{
			name:      "no license",
			dep:       Dependency{Name: "a", Version: "1"},
			wantLevel: zapcore.WarnLevel,
			wantMsg:   "a has no license",
		},
		{
			name:      "license file without repository",
			dep:       Dependency{Name: "b", Version: "1", LicenseFile: strPtr("LICENSE")},
			wantLevel: zapcore.WarnLevel,
			wantMsg:   "b has license file, but no repository",
		},
		{
			name:      "invalid repository",
			dep:       Dependency{Name: "c", Version: "1", LicenseFile: strPtr("LICENSE"), Repository: strPtr("not a url")},
			wantLevel: zapcore.ErrorLevel,
			wantMsg:   "c has an invalid repository URL",
		},
		{
			name:      "fetch failure",
			dep:       Dependency{Name: "d", Version: "1", LicenseFile: strPtr("LICENSE"), Repository: strPtr("https://github.com/d/d")},
			fetchErr:  fetch.ErrUnexpectedStatus,
			wantLevel: zapcore.WarnLevel,
			wantMsg:   "failed to retrieve license file for d",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, logs := newObservedGenerator(WithFetcher(&fakeFetcher{err: tt.fetchErr}))

			md := g.Markdown(context.Background(), []Dependency{tt.dep})

			assert.Empty(t, md)
			entries := logs.FilterLevelExact(tt.wantLevel).All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantMsg, entries[0].Message)
			assert.Equal(t, tt.dep.Name, entries[0].ContextMap()["dependency"])
		})
	}
}

func TestMarkdown_PreservesEnumerationOrder(t *testing.T) {
	t.Parallel()

	g, _ := newObservedGenerator()

	md := g.Markdown(context.Background(), []Dependency{
		{Name: "zeta", Version: "1.0.0", License: strPtr("zlib")},
		{Name: "alpha", Version: "1.0.0", License: strPtr("isc")},
		{Name: "zeta", Version: "1.0.0", License: strPtr("zlib")},
	})

	first := strings.Index(md, "# zeta")
	second := strings.Index(md, "# alpha")
	assert.Less(t, first, second)
	assert.Equal(t, 2, strings.Count(md, "# zeta (1.0.0)"))
}

// ---------------------------------------------------------------------------
// TestGenerate / TestWrite
// ---------------------------------------------------------------------------

func TestGenerate_RendersHTML(t *testing.T) {
	t.Parallel()

	g, _ := newObservedGenerator(WithEnumerator(staticEnumerator(
		Dependency{Name: "depname", Version: "1.0.0", License: strPtr("mit"), Authors: strPtr("Jane Doe")},
	)))

	out, err := g.Generate(context.Background(), "Cargo.toml")
	require.NoError(t, err)

	html := string(out)
	assert.True(t, strings.HasPrefix(html, "<h1>depname (1.0.0) by Jane Doe</h1>"))
	assert.Contains(t, html, "<h2>MIT License</h2>")
	assert.Contains(t, html, "Copyright (c) 2024 &quot;Jane Doe&quot;")
}

func TestGenerate_EnumerationFailure(t *testing.T) {
	t.Parallel()

	g, _ := newObservedGenerator(WithEnumerator(EnumeratorFunc(func(context.Context, string) ([]Dependency, error) {
		return nil, errors.New("cargo not installed")
	})))

	out, err := g.Generate(context.Background(), "Cargo.toml")
	assert.Nil(t, out)
	require.ErrorIs(t, err, ErrManifestRead)
	assert.Contains(t, err.Error(), "cargo not installed")
}

func TestGenerate_DefaultEnumeratorReadsDependencyList(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deps.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dependencies:\n  - name: listed\n    version: 3.1.4\n    license: 0BSD\n"), 0o600))

	g, _ := newObservedGenerator()

	out, err := g.Generate(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1>listed (3.1.4)</h1>")
}

func TestGenerate_DefaultEnumeratorMissingManifest(t *testing.T) {
	t.Parallel()

	g, _ := newObservedGenerator()

	_, err := g.Generate(context.Background(), filepath.Join(t.TempDir(), "Cargo.toml"))
	assert.ErrorIs(t, err, ErrManifestRead)
}

func TestGenerate_RendererFailure(t *testing.T) {
	t.Parallel()

	g, _ := newObservedGenerator(WithEnumerator(staticEnumerator()), WithRenderer(failingRenderer{}))

	_, err := g.Generate(context.Background(), "Cargo.toml")
	assert.ErrorIs(t, err, ErrHTMLConversion)
}

func TestGenerate_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, _ := newObservedGenerator(WithEnumerator(staticEnumerator()))

	_, err := g.Generate(ctx, "Cargo.toml")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	g, _ := newObservedGenerator(WithEnumerator(EnumeratorFunc(func(context.Context, string) ([]Dependency, error) {
		panic("boom")
	})))

	_, err := g.Generate(context.Background(), "Cargo.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal error: boom")
}

func TestWrite(t *testing.T) {
	t.Parallel()

	g, logs := newObservedGenerator(WithEnumerator(staticEnumerator(
		Dependency{Name: "a", Version: "1.0.0", License: strPtr("unlicense")},
	)))
	path := filepath.Join(t.TempDir(), "licenses.html")

	require.NoError(t, g.Write(context.Background(), "Cargo.toml", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>a (1.0.0)</h1>")

	infos := logs.FilterLevelExact(zapcore.InfoLevel).All()
	require.Len(t, infos, 1)
	assert.Equal(t, "Wrote output to "+path, infos[0].Message)
}

func TestWrite_OutputFailure(t *testing.T) {
	t.Parallel()

	g, logs := newObservedGenerator(WithEnumerator(staticEnumerator()))
	path := filepath.Join(t.TempDir(), "missing", "licenses.html")

	err := g.Write(context.Background(), "Cargo.toml", path)
	assert.ErrorIs(t, err, ErrWriteOutput)
	assert.Zero(t, logs.FilterLevelExact(zapcore.InfoLevel).Len())
}

func TestWrite_ManifestFailureCreatesNoFile(t *testing.T) {
	t.Parallel()

	g, _ := newObservedGenerator(WithEnumerator(EnumeratorFunc(func(context.Context, string) ([]Dependency, error) {
		return nil, errors.New("bad manifest")
	})))
	path := filepath.Join(t.TempDir(), "licenses.html")

	err := g.Write(context.Background(), "Cargo.toml", path)
	assert.ErrorIs(t, err, ErrManifestRead)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	g := New(WithLogger(nil), WithNow(nil))

	assert.NotNil(t, g.logger)
	assert.NotNil(t, g.now)
	assert.IsType(t, &fetch.HTTPFetcher{}, g.fetcher)
	assert.IsType(t, &GoldmarkRenderer{}, g.renderer)
	assert.NotNil(t, g.enumerator)
}
