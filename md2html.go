package licensedoc

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
)

// htmlTemplate wraps goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s</head>
<body>
%s%s</body>
</html>
`

// stampTemplate is appended to the document body by WithDate.
const stampTemplate = "<footer><p>Generated %s</p></footer>\n"

// DefaultDocumentTitle is the title used by WithDocument.
const DefaultDocumentTitle = "Licenses"

// Renderer converts Markdown to HTML.
type Renderer interface {
	ToHTML(ctx context.Context, markdown string) (string, error)
}

// GoldmarkRenderer converts Markdown with goldmark's CommonMark defaults:
// no extensions, raw HTML omitted.
type GoldmarkRenderer struct {
	md       goldmark.Markdown
	document bool
	title    string
	date     string
	css      string
}

// RendererOption configures a GoldmarkRenderer.
type RendererOption func(*GoldmarkRenderer)

// WithDocument wraps the rendered fragment in a minimal HTML5 document.
func WithDocument() RendererOption {
	return func(r *GoldmarkRenderer) {
		r.document = true
	}
}

// WithTitle sets the document title used with WithDocument.
func WithTitle(title string) RendererOption {
	return func(r *GoldmarkRenderer) {
		r.title = title
	}
}

// WithDate adds a "Generated <date>" footer to the document used with
// WithDocument. The text is HTML-escaped.
func WithDate(date string) RendererOption {
	return func(r *GoldmarkRenderer) {
		r.date = date
	}
}

// WithStyle embeds css in a <style> block of the document used with
// WithDocument.
func WithStyle(css string) RendererOption {
	return func(r *GoldmarkRenderer) {
		r.css = css
	}
}

// NewGoldmarkRenderer creates a renderer. Without options it emits the bare
// HTML fragment.
func NewGoldmarkRenderer(opts ...RendererOption) *GoldmarkRenderer {
	r := &GoldmarkRenderer{
		md:    goldmark.New(),
		title: DefaultDocumentTitle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ToHTML converts markdown to HTML.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *GoldmarkRenderer) ToHTML(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		if !r.document {
			done <- result{html: buf.String()}
			return
		}
		done <- result{html: r.wrap(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// wrap embeds a rendered fragment in the HTML5 document.
func (r *GoldmarkRenderer) wrap(fragment string) string {
	style, stamp := "", ""
	if r.css != "" {
		style = "<style>\n" + sanitizeCSS(r.css) + "\n</style>\n"
	}
	if r.date != "" {
		stamp = fmt.Sprintf(stampTemplate, html.EscapeString(r.date))
	}
	return fmt.Sprintf(htmlTemplate, html.EscapeString(r.title), style, fragment, stamp)
}

// sanitizeCSS escapes "</" so the stylesheet cannot close its <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(strings.TrimRight(css, "\n"), "</", `<\/`)
}
