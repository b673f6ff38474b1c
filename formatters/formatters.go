// Package formatters contains the formatters behind {name, type, style} placeholders.
package formatters

import (
	"fmt"
	"github.com/lus/messageformat.go/plurals"
	"golang.org/x/text/language"
)

// Func formats an argument value for a locale. Style is empty if the placeholder has none.
type Func func(value any, locale string, style string) (string, error)

// Formatter binds a format function to the JavaScript function source it renders to.
// The rendered function receives (value, locale, style).
type Formatter struct {
	Func   Func
	Source string
}

// Builtins returns the formatters that are available without registration
func Builtins() map[string]Formatter {
	return map[string]Formatter{
		"number": {Func: Number, Source: numberSource},
		"date":   {Func: Date, Source: dateSource},
		"time":   {Func: Time, Source: timeSource},
	}
}

// StyleError is raised if a formatter does not understand the style of a placeholder
type StyleError struct {
	Formatter string
	Style     string
}

// Error turns the error into a string
func (err *StyleError) Error() string {
	return fmt.Sprintf("%s formatter: unknown style '%s'", err.Formatter, err.Style)
}

// tag parses a locale code, falling back to the undetermined language
func tag(locale string) language.Tag {
	parsed, err := plurals.Parse(locale)
	if err != nil {
		return language.Und
	}
	return parsed
}
