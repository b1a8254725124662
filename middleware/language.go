package middleware

import (
	"context"

	"golang.org/x/text/language"

	"github.com/viewkit/viewkit"
)

// languageContextKey is used as a key for storing the negotiated language
// tag in the request context.
type languageContextKey struct{}

// defaultLanguageBagKey is the context bag key templates read the
// negotiated language from.
const defaultLanguageBagKey = "lang"

// LanguageConfig configures the language negotiation decorator.
type LanguageConfig struct {
	// Skip defines a function to skip the decorator for specific requests
	Skip func(ctx *viewkit.Context) bool
	// Supported lists the languages the application can serve. The first
	// entry is the fallback when negotiation fails. Required.
	Supported []language.Tag
	// BagKey is the context bag key the negotiated tag is stored under,
	// making it available to templates (default: "lang").
	BagKey string
}

// Language creates a language negotiation decorator for the given supported
// languages. It matches the Accept-Language header against them and stores
// the best match in both the request context and the view's context bag.
func Language(supported ...language.Tag) viewkit.Middleware {
	return LanguageWithConfig(LanguageConfig{Supported: supported})
}

// LanguageWithConfig creates a language negotiation decorator with custom
// configuration.
func LanguageWithConfig(cfg LanguageConfig) viewkit.Middleware {
	if len(cfg.Supported) == 0 {
		panic("language middleware: at least one supported language is required")
	}

	if cfg.BagKey == "" {
		cfg.BagKey = defaultLanguageBagKey
	}

	matcher := language.NewMatcher(cfg.Supported)

	return func(next viewkit.HandlerFunc) viewkit.HandlerFunc {
		return func(ctx *viewkit.Context) viewkit.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			// Unparseable headers fall through with no preferences, which
			// makes Match return the fallback language.
			prefs, _, _ := language.ParseAcceptLanguage(ctx.Request().Header.Get("Accept-Language"))
			// Use the index, not the returned tag: Match may synthesize
			// variants of the supported tags.
			_, i, _ := matcher.Match(prefs...)
			tag := cfg.Supported[i]

			ctx.SetValue(languageContextKey{}, tag)
			ctx.Set(cfg.BagKey, tag.String())

			return next(ctx)
		}
	}
}

// GetLanguage retrieves the negotiated language tag from the context.
// Returns the tag and a boolean indicating whether it was found.
func GetLanguage(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(languageContextKey{}).(language.Tag)
	return tag, ok
}
