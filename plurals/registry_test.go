package plurals

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRegistryResolve(t *testing.T) {
	custom := func(n float64, ordinal bool) string { return "many" }
	registry, err := NewRegistry([]string{"en", "fr"}, map[string]Rule{"xx": {Func: custom}}, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "fr", "xx"}, registry.Codes())
	assert.True(t, registry.Has("fr"))
	assert.False(t, registry.Has("fr-CA"))

	t.Run("exact code", func(t *testing.T) {
		code, rule, err := registry.Resolve("xx")
		require.NoError(t, err)
		assert.Equal(t, "xx", code)
		assert.Equal(t, "many", rule.Func(1, false))
	})

	t.Run("language prefix", func(t *testing.T) {
		code, _, err := registry.Resolve("fr_CA")
		require.NoError(t, err)
		assert.Equal(t, "fr", code)
	})

	t.Run("unknown locale", func(t *testing.T) {
		_, _, err := registry.Resolve("de")
		var unknownErr *UnknownLocaleError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "de", unknownErr.Code)
	})
}

func TestRegistryMatch(t *testing.T) {
	registry, err := NewRegistry([]string{"en", "fr", "pt-BR"}, nil, "en")
	require.NoError(t, err)

	tests := []struct {
		code     string
		expected string
		ok       bool
	}{
		{"en", "en", true},
		{"en-US", "en", true},
		{"fr_CA", "fr", true},
		{"pt-BR", "pt-BR", true},
		{"de", "", false},
		{"de-AT", "", false},
		{"fr-x", "", false},
		{"shared", "", false},
	}

	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			code, ok := registry.Match(test.code)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.expected, code)
		})
	}
}

func TestRegistryFallback(t *testing.T) {
	registry, err := NewRegistry([]string{"fr"}, nil, "en")
	require.NoError(t, err)

	code, rule, err := registry.Resolve("de-AT")
	require.NoError(t, err)
	assert.Equal(t, "en", code)
	assert.Equal(t, "one", rule.Func(1, false))
}

func TestRegistryRejectsInvalidRules(t *testing.T) {
	_, err := NewRegistry(nil, map[string]Rule{"xx": {}}, "")
	assert.Error(t, err)

	_, err = NewRegistry([]string{"not a locale"}, nil, "")
	assert.Error(t, err)
}

func TestTextDirection(t *testing.T) {
	tests := []struct {
		code      string
		direction Direction
	}{
		{"en", LeftToRight},
		{"ar", RightToLeft},
		{"he", RightToLeft},
		{"fa", RightToLeft},
		{"ar-EG", RightToLeft},
		{"az-Arab", RightToLeft},
		{"az", LeftToRight},
		{"???", LeftToRight},
	}

	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			assert.Equal(t, test.direction, TextDirection(test.code))
		})
	}

	assert.Equal(t, "\u200f", RightToLeft.Mark())
	assert.Equal(t, "\u200e", LeftToRight.Mark())
}
