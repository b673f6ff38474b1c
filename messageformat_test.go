package messageformat

import (
	"errors"
	"github.com/lus/messageformat.go/compiler"
	"github.com/lus/messageformat.go/formatters"
	"github.com/lus/messageformat.go/plurals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestCompilePattern(t *testing.T) {
	mf, err := New()
	require.NoError(t, err)
	assert.Equal(t, "en", mf.DefaultLocale())
	assert.Equal(t, []string{"en"}, mf.Locales())

	message, err := mf.Compile("{count, plural, one{# item} other{# items}}")
	require.NoError(t, err)
	assert.False(t, message.IsGroup())
	assert.Equal(t, "en", message.Locale())

	result, err := message.Format(map[string]any{"count": 1})
	require.NoError(t, err)
	assert.Equal(t, "1 item", result)

	result, err = message.Format(map[string]any{"count": 5})
	require.NoError(t, err)
	assert.Equal(t, "5 items", result)
}

func TestCompileTree(t *testing.T) {
	mf, err := New(WithLocales("en", "fr"))
	require.NoError(t, err)

	messages, err := mf.Compile(map[string]any{
		"en": map[string]any{"items": "{n, plural, one {# item} other {# items}}"},
		"fr": map[string]any{"items": "{n, plural, one {# élément} other {# éléments}}"},
	})
	require.NoError(t, err)
	assert.True(t, messages.IsGroup())
	assert.Equal(t, []string{"en", "fr"}, messages.Keys())
	assert.Equal(t, []string{"en", "fr"}, messages.Dependencies().Locales())

	result, err := messages.FormatMessage("fr.items", map[string]any{"n": 0})
	require.NoError(t, err)
	assert.Equal(t, "0 élément", result)

	english, ok := messages.Lookup("en", "items")
	require.True(t, ok)
	assert.Nil(t, english.Keys())
	result, err = english.Format(map[string]any{"n": 0})
	require.NoError(t, err)
	assert.Equal(t, "0 items", result)

	_, ok = messages.Lookup("en", "items", "deeper")
	assert.False(t, ok)
	_, ok = messages.Lookup("de")
	assert.False(t, ok)

	_, err = messages.Format(nil)
	assert.True(t, errors.Is(err, ErrNotFunction))

	_, err = messages.FormatMessage("en.missing", nil)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "message 'en.missing' does not exist", err.Error())
}

func TestExplicitLocale(t *testing.T) {
	mf, err := New(WithLocales("en", "fr"), WithFallbackLocale("en"))
	require.NoError(t, err)

	message, err := mf.Compile("{n, plural, one {one} other {other}}", "fr_CA")
	require.NoError(t, err)
	assert.Equal(t, "fr", message.Locale())

	message, err = mf.Compile("{n, plural, one {one} other {other}}", "de")
	require.NoError(t, err)
	assert.Equal(t, "en", message.Locale())

	strict, err := New(WithLocales("en"))
	require.NoError(t, err)
	_, err = strict.Compile("x", "de")
	var localeErr *plurals.UnknownLocaleError
	assert.ErrorAs(t, err, &localeErr)
}

func TestCustomPluralRule(t *testing.T) {
	always := func(n float64, ordinal bool) string { return "few" }
	mf, err := New(WithPluralRuleSource("xx", always, `function () { return "few"; }`))
	require.NoError(t, err)
	assert.Equal(t, "xx", mf.DefaultLocale())

	message, err := mf.Compile("{n, plural, few {few} other {other}}")
	require.NoError(t, err)
	result, err := message.Format(map[string]any{"n": 1})
	require.NoError(t, err)
	assert.Equal(t, "few", result)

	rendered, err := message.String(Expression())
	require.NoError(t, err)
	assert.Contains(t, rendered, `"xx": function () { return "few"; }`)

	_, err = New(WithPluralRule("yy", nil))
	assert.Error(t, err)
}

func TestCustomFormatters(t *testing.T) {
	mf, err := New(
		WithFormatter("upper", func(value any, locale, style string) (string, error) {
			return strings.ToUpper(value.(string)), nil
		}),
		WithFormatterSource("duration", formatters.Duration.Func, formatters.Duration.Source),
	)
	require.NoError(t, err)

	message, err := mf.Compile("{name, upper} waited {time, duration}")
	require.NoError(t, err)
	result, err := message.Format(map[string]any{"name": "ann", "time": 3725})
	require.NoError(t, err)
	assert.Equal(t, "ANN waited 1:02:05", result)

	_, err = message.String(Expression())
	var renderErr *compiler.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "upper", renderErr.Formatter)

	durationOnly, err := mf.Compile("{time, duration}")
	require.NoError(t, err)
	rendered, err := durationOnly.String(Expression())
	require.NoError(t, err)
	assert.Contains(t, rendered, `var fmt = {`+"\n"+`  "duration": function (value)`)
}

func TestMissingOtherFailsEverything(t *testing.T) {
	mf, err := New()
	require.NoError(t, err)

	artifact, err := mf.Compile(map[string]any{
		"good": "fine",
		"bad":  "{n, plural, one {one}}",
	})
	assert.Nil(t, artifact)
	var otherErr *compiler.MissingOtherCaseError
	assert.ErrorAs(t, err, &otherErr)
}

func TestBiDiAndStrictOptions(t *testing.T) {
	mf, err := New(WithLocales("he"), WithBiDiSupport(true), WithStrictNumberSign(true))
	require.NoError(t, err)

	message, err := mf.Compile("{n, plural, other {{name} #}}")
	require.NoError(t, err)
	result, err := message.Format(map[string]any{"n": 2, "name": "x"})
	require.NoError(t, err)
	assert.Equal(t, "\u200fx\u200f 2", result)

	_, err = message.Format(map[string]any{"n": "two"})
	assert.Error(t, err)
}

func TestMaxDepthOption(t *testing.T) {
	mf, err := New(WithMaxDepth(1))
	require.NoError(t, err)

	_, err = mf.Compile("{a, select, other {{b, select, other {x}}}}")
	assert.Error(t, err)
}

func TestRenderPackaging(t *testing.T) {
	mf, err := New()
	require.NoError(t, err)
	messages, err := mf.Compile(map[string]any{"greeting": "Hello {name}"})
	require.NoError(t, err)

	expression, err := messages.String(Expression())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(expression, "(function () {\n"))

	module, err := messages.String(Module())
	require.NoError(t, err)
	assert.Equal(t, "export default "+expression+";\n", module)

	// Looked up artifacts render the whole compilation
	greeting, _ := messages.Lookup("greeting")
	rendered, err := greeting.String(Expression())
	require.NoError(t, err)
	assert.Equal(t, expression, rendered)

	_, err = messages.String(nil)
	assert.Error(t, err)
}
