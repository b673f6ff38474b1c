// Package plurals provides the per-locale plural category functions compiled messages dispatch on.
package plurals

import (
	"encoding/json"
	"fmt"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"math"
	"strconv"
	"strings"
)

// Func maps a numeric value to its plural category key ("zero", "one", "two", "few", "many" or "other").
// If ordinal is true, the ordinal rule set is used instead of the cardinal one.
type Func func(n float64, ordinal bool) string

// Rule binds a plural function to the JavaScript source it renders to.
// If Source is empty, an Intl.PluralRules based function is rendered for the locale.
type Rule struct {
	Func   Func
	Source string
}

const intlSource = `function (n, ord) {
  return new Intl.PluralRules(%s, { type: ord ? "ordinal" : "cardinal" }).select(n);
}`

// JS returns the JavaScript source of the rule, generating an Intl.PluralRules based function
// for the given locale code if the rule has no source of its own
func (rule Rule) JS(code string) string {
	if rule.Source != "" {
		return rule.Source
	}
	quoted, _ := json.Marshal(strings.ReplaceAll(code, "_", "-"))
	return fmt.Sprintf(intlSource, quoted)
}

var categories = map[plural.Form]string{
	plural.Other: "other",
	plural.Zero:  "zero",
	plural.One:   "one",
	plural.Two:   "two",
	plural.Few:   "few",
	plural.Many:  "many",
}

// Default returns the plural function of golang.org/x/text for a locale code
func Default(code string) (Func, error) {
	tag, err := Parse(code)
	if err != nil {
		return nil, err
	}
	return func(n float64, ordinal bool) string {
		rules := plural.Cardinal
		if ordinal {
			rules = plural.Ordinal
		}
		digits, exp, scale := decompose(n)
		return categories[rules.MatchDigits(tag, digits, exp, scale)]
	}, nil
}

// Parse parses a locale code into a language tag. Underscores are accepted as separators.
// If the full code contains unknown subtags, its language-only prefix is tried instead.
func Parse(code string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err == nil {
		return tag, nil
	}
	if base, err := language.ParseBase(Base(code)); err == nil {
		return language.Make(base.String()), nil
	}
	return language.Und, &UnknownLocaleError{Code: code}
}

// decompose splits the absolute value of n into the decimal digits expected by plural.Rules.MatchDigits
func decompose(n float64) (digits []byte, exp, scale int) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, 0, 0
	}
	formatted := strconv.FormatFloat(math.Abs(n), 'f', -1, 64)
	integer, fraction, _ := strings.Cut(formatted, ".")

	digits = make([]byte, 0, len(integer)+len(fraction))
	for _, digit := range integer + fraction {
		digits = append(digits, byte(digit-'0'))
	}
	return digits, len(integer), len(fraction)
}

// UnknownLocaleError is raised if no plural function can be resolved for a locale code
type UnknownLocaleError struct {
	Code string
}

// Error turns the error into a string
func (err *UnknownLocaleError) Error() string {
	return fmt.Sprintf("no plural function found for locale '%s'", err.Code)
}
