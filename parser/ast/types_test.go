package ast

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsElement(t *testing.T) {
	for _, typ := range []nodeType{TypeLiteral, TypeArgument, TypeNumberSign, TypeFormatArg, TypeSelector} {
		assert.True(t, IsElement(typ), typ)
	}
	for _, typ := range []nodeType{TypeMessage, TypeCase} {
		assert.False(t, IsElement(typ), typ)
	}
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory("few"))
	assert.False(t, IsCategory("=1"))
	assert.False(t, IsCategory("Other"))
	assert.True(t, KindSelectOrdinal.IsPlural())
	assert.False(t, KindSelect.IsPlural())
}
