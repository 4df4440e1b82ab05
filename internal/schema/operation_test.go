package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"quantity-generator/quantity"
)

func TestParseOperation(t *testing.T) {
	t.Parallel()

	op, err := ParseOperation("Self / Time => LinearVelocity in MetersPerSecond")
	require.NoError(t, err)
	assert.Equal(t, OperationDef{
		Left:   "Self",
		Op:     quantity.OpDiv,
		Right:  "Time",
		Output: "LinearVelocity",
		Unit:   "MetersPerSecond",
	}, op)
	assert.True(t, op.IsSelf())
	assert.Equal(t, "Self / Time => LinearVelocity in MetersPerSecond", op.String())

	op, err = ParseOperation("Force*Length=>Energy in Joules")
	require.NoError(t, err)
	assert.Equal(t, quantity.OpMul, op.Op)
	assert.Equal(t, "Force", op.Left)
	assert.Equal(t, "Length", op.Right)
	assert.False(t, op.IsSelf())
}

func TestParseOperation_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"Self / Time",
		"Self + Time => Length in Meters",
		"Self / Time => LinearVelocity",
		"Self / Time => LinearVelocity as MetersPerSecond",
		"Self / Time Time => LinearVelocity in MetersPerSecond",
		" / Time => LinearVelocity in MetersPerSecond",
		"Self / 2 => LinearVelocity in MetersPerSecond",
	} {
		_, err := ParseOperation(in)
		assert.Error(t, err, in)
	}
}

func TestOperationDef_YAML(t *testing.T) {
	t.Parallel()

	src := `
- Self * Time => Length in Meters
- {op: "/", right: Time, output: LinearVelocity, unit: MetersPerSecond}
- {left: Force, op: "*", right: Length, output: Energy, unit: Joules}
`

	var ops []OperationDef
	require.NoError(t, yaml.Unmarshal([]byte(src), &ops))
	require.Len(t, ops, 3)

	assert.Equal(t, quantity.OpMul, ops[0].Op)
	assert.Equal(t, "Self", ops[1].Left)
	assert.Equal(t, quantity.OpDiv, ops[1].Op)
	assert.Equal(t, "Force", ops[2].Left)

	out, err := yaml.Marshal(ops)
	require.NoError(t, err)
	assert.Contains(t, string(out), "- Self / Time => LinearVelocity in MetersPerSecond")

	var bad []OperationDef
	assert.Error(t, yaml.Unmarshal([]byte(`- {op: "%", right: Time}`), &bad))
	assert.Error(t, yaml.Unmarshal([]byte(`- [Self, Time]`), &bad))
}
