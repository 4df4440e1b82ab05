package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quantity-generator/quantity"
)

func TestSignature(t *testing.T) {
	t.Parallel()

	length := NewSignature(map[string]int{"length": 1, "mass": 0})
	time := Signature{"time": 1}
	velocity := Signature{"length": 1, "time": -1}

	assert.Equal(t, Signature{"length": 1}, length)
	assert.Nil(t, NewSignature(nil))

	assert.True(t, length.Combine(quantity.OpDiv, time).Equal(velocity))
	assert.True(t, velocity.Combine(quantity.OpMul, time).Equal(length))
	assert.Equal(t, Signature{}, length.Combine(quantity.OpDiv, length))
	assert.False(t, length.Equal(time))
	assert.True(t, Signature{"mass": 0}.Equal(Signature{}))

	assert.Equal(t, "length time^-1", velocity.String())
	assert.Equal(t, "length^2 mass time^-2", Signature{"mass": 1, "length": 2, "time": -2}.String())
	assert.Equal(t, "1", Signature{}.String())
}
