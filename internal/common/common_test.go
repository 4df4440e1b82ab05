package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "divTime", LowerFirst("DivTime"))
	assert.Empty(t, LowerFirst(""))
	assert.True(t, IsExported("Length"))
	assert.False(t, IsExported("length"))
	assert.False(t, IsExported(""))
	assert.Equal(t, "units", PkgAlias("quantity-generator/units"))
	assert.Empty(t, PkgAlias(""))
}
