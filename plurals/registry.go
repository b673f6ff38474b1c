package plurals

import (
	"errors"
	"golang.org/x/text/language"
	"sort"
	"strings"
)

// Registry binds plural rules to locale codes.
// It is built once and never modified afterwards, so it can be shared between compilations.
type Registry struct {
	rules    map[string]Rule
	fallback string
}

// NewRegistry builds a registry for the given locale codes.
// Codes present in overrides use the supplied rule, all others the golang.org/x/text default.
// The fallback code (may be empty) is used whenever a lookup does not resolve otherwise.
func NewRegistry(codes []string, overrides map[string]Rule, fallback string) (*Registry, error) {
	registry := &Registry{
		rules:    make(map[string]Rule, len(codes)+len(overrides)),
		fallback: fallback,
	}
	for code, rule := range overrides {
		if rule.Func == nil {
			return nil, errors.New("plural rule for locale '" + code + "' has no function")
		}
		registry.rules[code] = rule
	}
	for _, code := range codes {
		if _, ok := registry.rules[code]; ok {
			continue
		}
		fn, err := Default(code)
		if err != nil {
			return nil, err
		}
		registry.rules[code] = Rule{Func: fn}
	}
	if fallback != "" {
		if _, ok := registry.rules[fallback]; !ok {
			fn, err := Default(fallback)
			if err != nil {
				return nil, err
			}
			registry.rules[fallback] = Rule{Func: fn}
		}
	}
	return registry, nil
}

// Has checks if a code is bound to a rule exactly as given
func (registry *Registry) Has(code string) bool {
	_, ok := registry.rules[code]
	return ok
}

// Match returns the bound code for a well-formed locale code, trying the full code and then its
// language-only prefix. Unlike Resolve, it never uses the fallback.
func (registry *Registry) Match(code string) (string, bool) {
	if _, ok := registry.rules[code]; ok {
		return code, true
	}
	base := Base(code)
	if base == code {
		return "", false
	}
	if _, err := language.Parse(strings.ReplaceAll(code, "_", "-")); err != nil {
		return "", false
	}
	if _, ok := registry.rules[base]; ok {
		return base, true
	}
	return "", false
}

// Codes returns the bound locale codes in sorted order
func (registry *Registry) Codes() []string {
	codes := make([]string, 0, len(registry.rules))
	for code := range registry.rules {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Resolve returns the bound code and rule for a locale code.
// The lookup falls back from the full code to its language-only prefix and then to the fallback code.
func (registry *Registry) Resolve(code string) (string, Rule, error) {
	if rule, ok := registry.rules[code]; ok {
		return code, rule, nil
	}
	if base := Base(code); base != code {
		if rule, ok := registry.rules[base]; ok {
			return base, rule, nil
		}
	}
	if registry.fallback != "" {
		return registry.fallback, registry.rules[registry.fallback], nil
	}
	return "", Rule{}, &UnknownLocaleError{Code: code}
}

// Base returns the language-only prefix of a locale code ("fr" for "fr-CA" or "fr_CA")
func Base(code string) string {
	if i := strings.IndexAny(code, "-_"); i > 0 {
		return code[:i]
	}
	return code
}
