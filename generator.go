package licensedoc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-licensedoc/internal/deps"
	"github.com/alnah/go-licensedoc/internal/fetch"
	"github.com/alnah/go-licensedoc/internal/fileutil"
	"github.com/alnah/go-licensedoc/internal/licenses"
)

// Compile-time interface implementation checks.
var (
	_ Renderer   = (*GoldmarkRenderer)(nil)
	_ Fetcher    = (*fetch.HTTPFetcher)(nil)
	_ Enumerator = EnumeratorFunc(nil)
)

// licenseTextSeparator joins the texts of a multi-license expression.
const licenseTextSeparator = "\n\n"

// Enumerator lists the dependencies described by a manifest path.
type Enumerator interface {
	Enumerate(ctx context.Context, manifestPath string) ([]Dependency, error)
}

// EnumeratorFunc adapts a function to Enumerator.
type EnumeratorFunc func(ctx context.Context, manifestPath string) ([]Dependency, error)

// Enumerate calls f.
func (f EnumeratorFunc) Enumerate(ctx context.Context, manifestPath string) ([]Dependency, error) {
	return f(ctx, manifestPath)
}

// Generator turns a dependency manifest into a license document.
// Create with New; a Generator is safe to reuse but runs one dependency at
// a time.
type Generator struct {
	logger     *zap.Logger
	now        func() time.Time
	fetcher    Fetcher
	renderer   Renderer
	enumerator Enumerator
	fetchOpts  FetchOptions
	loadOpts   LoadOptions
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger for per-dependency warnings and the final
// "Wrote output to" message.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithNow sets the clock used for the year placeholder.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithFetcher replaces the HTTP fetcher used for license files.
func WithFetcher(f Fetcher) Option {
	return func(g *Generator) {
		g.fetcher = f
	}
}

// WithRenderer replaces the Markdown to HTML renderer.
func WithRenderer(r Renderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithEnumerator replaces dependency enumeration. LoadOptions are ignored
// when a custom enumerator is set.
func WithEnumerator(e Enumerator) Option {
	return func(g *Generator) {
		g.enumerator = e
	}
}

// WithFetchOptions sets the raw URL base, branch and repository layout.
func WithFetchOptions(opts FetchOptions) Option {
	return func(g *Generator) {
		g.fetchOpts = opts
	}
}

// WithLoadOptions configures the default enumerator.
func WithLoadOptions(opts LoadOptions) Option {
	return func(g *Generator) {
		g.loadOpts = opts
	}
}

// New creates a Generator with default configuration: no logging, wall
// clock, HTTP fetching, goldmark rendering and cargo enumeration.
func New(opts ...Option) *Generator {
	g := &Generator{
		logger: zap.NewNop(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.fetcher == nil {
		g.fetcher = fetch.NewHTTPFetcher(0)
	}
	if g.renderer == nil {
		g.renderer = NewGoldmarkRenderer()
	}
	if g.enumerator == nil {
		loadOpts := g.loadOpts
		g.enumerator = EnumeratorFunc(func(ctx context.Context, path string) ([]Dependency, error) {
			return deps.Load(ctx, path, loadOpts)
		})
	}
	return g
}

// Markdown assembles the license document for dependencies, in order.
// Dependencies whose license cannot be determined are logged and skipped.
func (g *Generator) Markdown(ctx context.Context, dependencies []Dependency) string {
	resolver := licenses.NewResolver(licenses.WithLogger(g.logger), licenses.WithNow(g.now))

	blocks := make([]Block, 0, len(dependencies))
	for _, dep := range dependencies {
		if block, ok := g.block(ctx, resolver, dep); ok {
			blocks = append(blocks, block)
		}
	}
	return Assemble(blocks)
}

// block produces the Block for one dependency. The boolean is false when
// the dependency is skipped.
func (g *Generator) block(ctx context.Context, resolver *licenses.Resolver, dep Dependency) (Block, bool) {
	log := g.logger.With(zap.String("dependency", dep.Name))

	if dep.License != nil {
		texts := resolver.Resolve(*dep.License, dep.Authors)
		return FormatBlock(dep.Name, dep.Version, strings.Join(texts, licenseTextSeparator), dep.Authors, dep.Repository), true
	}

	if dep.LicenseFile == nil {
		log.Warn(dep.Name + " has no license")
		return Block{}, false
	}
	if dep.Repository == nil {
		log.Warn(dep.Name + " has license file, but no repository")
		return Block{}, false
	}

	url, err := fetch.RawURL(*dep.Repository, *dep.LicenseFile, g.fetchOpts)
	if err != nil {
		log.Error(dep.Name+" has an invalid repository URL", zap.Error(err))
		return Block{}, false
	}

	text, err := g.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Warn("failed to retrieve license file for "+dep.Name, zap.String("url", url), zap.Error(err))
		return Block{}, false
	}

	log.Debug("fetched license file", zap.String("url", url))
	return FormatBlock(dep.Name, dep.Version, text, dep.Authors, dep.Repository), true
}

// Generate enumerates the dependencies of manifestPath and returns the
// rendered HTML document.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, manifestPath string) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	dependencies, err := g.enumerator.Enumerate(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestRead, err)
	}
	g.logger.Debug("enumerated dependencies", zap.Int("count", len(dependencies)))

	markdown := g.Markdown(ctx, dependencies)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	html, err := g.renderer.ToHTML(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	return []byte(html), nil
}

// Write generates the document for manifestPath and writes it to
// outputPath, replacing any existing file.
func (g *Generator) Write(ctx context.Context, manifestPath, outputPath string) error {
	out, err := g.Generate(ctx, manifestPath)
	if err != nil {
		return err
	}

	if err := fileutil.WriteOutput(outputPath, out); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	g.logger.Info("Wrote output to " + outputPath)
	return nil
}
