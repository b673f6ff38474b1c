package messageformat

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestResource(t *testing.T) {
	resource := NewResource()
	assert.True(t, resource.IsEmpty())

	errs := resource.AddMessages(map[string]any{
		"en": map[string]string{"hello": "Hello", "bye": "Bye"},
	})
	assert.Empty(t, errs)

	errs = resource.AddMessages(map[string]any{
		"en": map[string]any{"hello": "Hi", "thanks": "Thanks"},
		"fr": map[string]any{"hello": "Bonjour"},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "message 'en.hello' is already defined", errs[0].Error())

	assert.Equal(t, map[string]any{
		"en": map[string]any{"hello": "Hello", "bye": "Bye", "thanks": "Thanks"},
		"fr": map[string]any{"hello": "Bonjour"},
	}, resource.Tree())

	resource.AddMessagesOverriding(map[string]any{"en": map[string]any{"hello": "Hey"}})
	assert.Equal(t, "Hey", resource.Tree()["en"].(map[string]any)["hello"])

	mf, err := New(WithLocales("en", "fr"))
	require.NoError(t, err)
	messages, err := mf.Compile(resource)
	require.NoError(t, err)

	result, err := messages.FormatMessage("fr.hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", result)
}

func TestResourceGroupConflicts(t *testing.T) {
	resource := NewResource()
	resource.AddMessages(map[string]any{"a": "text"})

	errs := resource.AddMessages(map[string]any{"a": map[string]any{"b": "nested"}})
	assert.Len(t, errs, 1)

	resource.AddMessagesOverriding(map[string]any{"a": map[string]any{"b": "nested"}})
	assert.Equal(t, map[string]any{"a": map[string]any{"b": "nested"}}, resource.Tree())
}
