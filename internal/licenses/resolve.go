package licenses

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Placeholder tokens found in license templates.
const (
	YearPlaceholder    = "`<year>`"
	HoldersPlaceholder = "`<copyright holders>`"
)

// Expression separators. Both are treated the same way: the expression is
// flattened into a list of identifiers.
const (
	orSeparator  = " or "
	andSeparator = " and "
)

// Resolver turns license expressions into license texts.
type Resolver struct {
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for unknown-identifier warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithNow sets the clock used for the year placeholder.
func WithNow(now func() time.Time) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// NewResolver creates a Resolver. Without options it logs nowhere and uses
// the wall clock.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns one text per identifier in the expression, in order.
// Unknown identifiers yield an empty string and a warning.
// The authors string, when present, replaces the copyright holders token.
func (r *Resolver) Resolve(expression string, authors *string) []string {
	year := strconv.Itoa(r.now().UTC().Year())

	ids := SplitExpression(expression)
	texts := make([]string, 0, len(ids))
	for _, id := range ids {
		template, ok := Lookup(id)
		if !ok {
			r.logger.Warn("couldn't find markdown license", zap.String("license", id))
		}

		text := strings.ReplaceAll(template, YearPlaceholder, year)
		if authors != nil {
			text = strings.ReplaceAll(text, HoldersPlaceholder, QuoteAuthors(*authors))
		}
		texts = append(texts, text)
	}
	return texts
}

// SplitExpression lowercases an expression and splits it on " or ", then each
// piece on " and ". Duplicates are kept.
func SplitExpression(expression string) []string {
	var ids []string
	for _, alternative := range strings.Split(strings.ToLower(expression), orSeparator) {
		ids = append(ids, strings.Split(alternative, andSeparator)...)
	}
	return ids
}

// QuoteAuthors renders the authors string wrapped in double quotes, with
// embedded quotes, backslashes and non-printable runes escaped.
func QuoteAuthors(authors string) string {
	return strconv.Quote(authors)
}
