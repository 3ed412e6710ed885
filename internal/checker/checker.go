// Package checker turns records into diagnostics for unknown words.
package checker

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mpyw/spellck/internal/dictionary"
	"github.com/mpyw/spellck/internal/words"
)

// UnknownWords returns the normalized words of tokens that dict does not
// contain, each once, in the order they first appear.
func UnknownWords(tokens []words.Token, dict *dictionary.Dictionary) []string {
	var (
		unknown []string
		seen    map[string]struct{}
	)

	for _, tok := range tokens {
		if dict.Contains(tok.Word) {
			continue
		}

		if _, dup := seen[tok.Word]; dup {
			continue
		}

		if seen == nil {
			seen = make(map[string]struct{})
		}
		seen[tok.Word] = struct{}{}
		unknown = append(unknown, tok.Word)
	}

	return unknown
}

// Checker checks records against one dictionary.
//
// Identifier records are split and passed to [UnknownWords]. Doc comment
// records are not checked as plain Extract output: tokens equal to the
// record's own Name are dropped first, so "Package foo" and
// "NewHTTPServer returns" do not flag the name the identifier record
// already covers.
type Checker struct {
	dict     *dictionary.Dictionary
	cache    *words.Cache
	severity Severity
	logger   *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithCache memoizes identifier splitting in c.
func WithCache(c *words.Cache) Option {
	return func(ch *Checker) { ch.cache = c }
}

// WithSeverity sets the severity of produced diagnostics.
func WithSeverity(s Severity) Option {
	return func(ch *Checker) { ch.severity = s }
}

// WithLogger sets where skipped records are logged.
func WithLogger(l *slog.Logger) Option {
	return func(ch *Checker) { ch.logger = l }
}

// New creates a checker using dict.
func New(dict *dictionary.Dictionary, opts ...Option) *Checker {
	c := &Checker{
		dict:     dict,
		severity: SeverityWarning,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Check processes every record of src in order. A record that fails is
// logged and skipped; the rest are still checked.
func (c *Checker) Check(src RecordSource) []Diagnostic {
	var diags []Diagnostic

	for _, rec := range src.Records() {
		diag, ok, err := c.checkIsolated(rec)
		if err != nil {
			c.logger.Warn("skipping record",
				slog.String("kind", rec.Kind.String()),
				slog.String("name", rec.Name),
				slog.Any("error", err),
			)

			continue
		}

		if ok {
			diags = append(diags, diag)
		}
	}

	return diags
}

func (c *Checker) checkIsolated(rec Record) (diag Diagnostic, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return c.CheckRecord(rec)
}

// CheckRecord returns the diagnostic for rec, if it has unknown words.
func (c *Checker) CheckRecord(rec Record) (Diagnostic, bool, error) {
	if rec.Suppressed {
		return Diagnostic{}, false, nil
	}

	var tokens []words.Token

	switch rec.Kind {
	case Identifier:
		// The whole name may itself be a dictionary word ("OAuth").
		if c.dict.Contains(rec.Text) {
			return Diagnostic{}, false, nil
		}
		tokens = c.cache.Split(rec.Text)
	case DocComment:
		tokens = withoutName(words.Extract(rec.Text), rec.Name)
	default:
		return Diagnostic{}, false, fmt.Errorf("unsupported record kind %v", rec.Kind)
	}

	unknown := UnknownWords(tokens, c.dict)
	if len(unknown) == 0 {
		return Diagnostic{}, false, nil
	}

	return Diagnostic{Record: rec, Words: unknown, Severity: c.severity}, true, nil
}

// withoutName drops the tokens spelling the documented declaration's own
// name, as in "NewHTTPServer returns ...". The name is checked by its
// identifier record.
func withoutName(tokens []words.Token, name string) []words.Token {
	if name == "" {
		return tokens
	}

	name = strings.ToLower(name)

	kept := tokens[:0:0]
	for _, tok := range tokens {
		if tok.Word != name {
			kept = append(kept, tok)
		}
	}

	return kept
}
