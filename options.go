package messageformat

import (
	"github.com/lus/messageformat.go/formatters"
	"github.com/lus/messageformat.go/plurals"
	"log/slog"
	"slices"
)

// Option configures a MessageFormat
type Option func(*settings)

type settings struct {
	locales          []string
	pluralRules      map[string]plurals.Rule
	fallback         string
	formatters       map[string]formatters.Formatter
	biDiSupport      bool
	strictNumberSign bool
	maxDepth         int
	logger           *slog.Logger
}

func (settings *settings) addLocale(code string) {
	if !slices.Contains(settings.locales, code) {
		settings.locales = append(settings.locales, code)
	}
}

// WithLocales adds locales whose plural rules come from golang.org/x/text.
// The first locale ever added is the default locale.
func WithLocales(codes ...string) Option {
	return func(settings *settings) {
		for _, code := range codes {
			settings.addLocale(code)
		}
	}
}

// WithPluralRule adds a locale with a custom plural function.
// Rendered artifacts use an Intl.PluralRules based function for it.
func WithPluralRule(code string, fn plurals.Func) Option {
	return WithPluralRuleSource(code, fn, "")
}

// WithPluralRuleSource adds a locale with a custom plural function and its JavaScript source
func WithPluralRuleSource(code string, fn plurals.Func, source string) Option {
	return func(settings *settings) {
		settings.addLocale(code)
		settings.pluralRules[code] = plurals.Rule{Func: fn, Source: source}
	}
}

// WithFallbackLocale sets the locale used when an explicitly requested locale is not known
func WithFallbackLocale(code string) Option {
	return func(settings *settings) {
		settings.fallback = code
	}
}

// WithBiDiSupport enables wrapping argument values in directional marks matching the locale's direction
func WithBiDiSupport(enabled bool) Option {
	return func(settings *settings) {
		settings.biDiSupport = enabled
	}
}

// WithFormatter registers a formatter for {name, type, style} placeholders of the given type.
// Artifacts using it can be formatted but not rendered; use WithFormatterSource for that.
func WithFormatter(name string, fn formatters.Func) Option {
	return WithFormatterSource(name, fn, "")
}

// WithFormatterSource registers a formatter along with the JavaScript function source it renders to
func WithFormatterSource(name string, fn formatters.Func, source string) Option {
	return func(settings *settings) {
		settings.formatters[name] = formatters.Formatter{Func: fn, Source: source}
	}
}

// WithStrictNumberSign makes '#' special only directly inside plural cases and rejects
// non-numerical plural values it displays
func WithStrictNumberSign(enabled bool) Option {
	return func(settings *settings) {
		settings.strictNumberSign = enabled
	}
}

// WithMaxDepth limits the nesting depth of patterns and message trees
func WithMaxDepth(depth int) Option {
	return func(settings *settings) {
		settings.maxDepth = depth
	}
}

// WithLogger sets the logger compilations report to at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(settings *settings) {
		if logger != nil {
			settings.logger = logger
		}
	}
}

// WithConfig applies a Config loaded from the environment
func WithConfig(config Config) Option {
	return func(settings *settings) {
		WithLocales(config.Locales...)(settings)
		if config.FallbackLocale != "" {
			settings.fallback = config.FallbackLocale
		}
		settings.biDiSupport = config.BiDiSupport
		settings.strictNumberSign = config.StrictNumberSign
		if config.MaxDepth > 0 {
			settings.maxDepth = config.MaxDepth
		}
	}
}
