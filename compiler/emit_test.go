package compiler

import (
	"github.com/lus/messageformat.go/formatters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func render(t *testing.T, result *Result) string {
	t.Helper()
	var out strings.Builder
	require.NoError(t, result.Render(&out))
	return out.String()
}

func TestRenderPattern(t *testing.T) {
	compiler := newCompiler(t)
	result, err := compiler.Compile("Hi {name}", "")
	require.NoError(t, err)

	assert.Equal(t, "(function () {\nreturn function (d) { return \"Hi \" + (d != null && \"name\" in d ? d[\"name\"] : \"{name}\"); };\n})()", render(t, result))
}

func TestRenderMissingArgument(t *testing.T) {
	compiler := newCompiler(t)
	result, err := compiler.Compile("Hi {name}", "")
	require.NoError(t, err)

	formatted, err := result.Root.Format(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Hi {name}", formatted)
	assert.Contains(t, render(t, result), `: "{name}")`)
}

func TestRenderGroup(t *testing.T) {
	compiler := newCompiler(t)
	result, err := compiler.Compile(map[string]any{
		"b": "{n}",
		"a": map[string]any{"c": "x"},
	}, "")
	require.NoError(t, err)

	expected := "(function () {\n" +
		"return {\n" +
		"  \"a\": {\n" +
		"    \"c\": function () { return \"x\"; }\n" +
		"  },\n" +
		"  \"b\": function (d) { return \"\" + (d != null && \"n\" in d ? d[\"n\"] : \"{n}\"); }\n" +
		"};\n" +
		"})()"
	assert.Equal(t, expected, render(t, result))
}

func TestRenderPlural(t *testing.T) {
	compiler := newCompiler(t)
	result, err := compiler.Compile("{count, plural, offset:1 =0 {none} other {# more}}", "fr")
	require.NoError(t, err)

	rendered := render(t, result)
	assert.Contains(t, rendered, `plural(d["count"], 1, plurals["fr"], { "0": function () { return "none"; }, "other": function () { return "" + number(d["count"], "count", 1) + " more"; } }, false)`)
	assert.Contains(t, rendered, "var number = function")
	assert.Contains(t, rendered, "var plural = function")
	assert.Contains(t, rendered, `"fr": function (n, ord) {`)
	assert.Contains(t, rendered, `new Intl.PluralRules("fr"`)

	// Nothing unreferenced is rendered
	assert.NotContains(t, rendered, "var select")
	assert.NotContains(t, rendered, "var strictNumber")
	assert.NotContains(t, rendered, `"en"`)
	assert.NotContains(t, rendered, "var fmt")
}

func TestRenderSelectAndFormatters(t *testing.T) {
	compiler := newCompiler(t, func(env *Environment) {
		env.BiDiSupport = true
	})
	result, err := compiler.Compile("{g, select, other {{n, number, percent} {name}}}", "")
	require.NoError(t, err)

	rendered := render(t, result)
	assert.Contains(t, rendered, `select(d["g"], { "other": function () { return "" + fmt["number"](d["n"], "en", "percent") + " " + (d != null && "name" in d ? "`+"\u200e"+`" + d["name"] + "`+"\u200e"+`" : "{name}"); } })`)
	assert.Contains(t, rendered, "var fmt = {\n  \"number\": function (value, lc, style)")
	assert.NotContains(t, rendered, "var plurals")
	assert.NotContains(t, rendered, `"date"`)
}

func TestRenderOrdinal(t *testing.T) {
	compiler := newCompiler(t)
	result, err := compiler.Compile("{n, selectordinal, other {#.}}", "")
	require.NoError(t, err)
	assert.Contains(t, render(t, result), `plurals["en"], { "other": function () { return "" + number(d["n"], "n", 0) + "."; } }, true)`)
}

func TestRenderWithoutFormatterSource(t *testing.T) {
	compiler := newCompiler(t, func(env *Environment) {
		env.Formatters = map[string]formatters.Formatter{
			"upper": {Func: func(value any, locale, style string) (string, error) { return "", nil }},
		}
	})
	result, err := compiler.Compile("{s, upper}", "")
	require.NoError(t, err)

	var out strings.Builder
	err = result.Render(&out)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "upper", renderErr.Formatter)
}
