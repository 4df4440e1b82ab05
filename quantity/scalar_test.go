package quantity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"quantity-generator/quantity"
)

type distance struct{}

func (distance) Name() string      { return "Distance" }
func (distance) Canonical() string { return "Meter" }

type meter struct{}

func (meter) Dimension() distance             { return distance{} }
func (meter) Name() string                    { return "Meter" }
func (meter) Factor() float64                 { return 1 }
func (meter) ToCanonical(v float64) float64   { return v }
func (meter) FromCanonical(v float64) float64 { return v }

type foot struct{}

func (foot) Dimension() distance             { return distance{} }
func (foot) Name() string                    { return "Foot" }
func (foot) Factor() float64                 { return 0.3048 }
func (foot) ToCanonical(v float64) float64   { return v * 0.3048 }
func (foot) FromCanonical(v float64) float64 { return v / 0.3048 }

type warmth struct{}

func (warmth) Name() string      { return "Warmth" }
func (warmth) Canonical() string { return "Kelvin" }

type celsius struct{}

func (celsius) Dimension() warmth               { return warmth{} }
func (celsius) Name() string                    { return "Celsius" }
func (celsius) ToCanonical(v float64) float64   { return v + 273.15 }
func (celsius) FromCanonical(v float64) float64 { return v - 273.15 }

var (
	_ quantity.LinearUnit[distance] = meter{}
	_ quantity.LinearUnit[distance] = foot{}
	_ quantity.Unit[warmth]         = celsius{}
)

func TestToCanonical(t *testing.T) {
	t.Parallel()

	t.Run("canonical unit is identity", func(t *testing.T) {
		t.Parallel()

		// 2^62+1 is not representable as a float64.
		big := int64(1)<<62 + 1
		assert.Equal(t, big, quantity.ToCanonical(meter{}, big))
		assert.Equal(t, big, quantity.FromCanonical(meter{}, big))
	})

	t.Run("float scalar", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 3.048, quantity.ToCanonical(foot{}, 10.0), 1e-12)
		assert.InDelta(t, 10.0, quantity.FromCanonical(foot{}, 3.048), 1e-12)
	})

	t.Run("integer scalar truncates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 91, quantity.ToCanonical(foot{}, 300))
		assert.Equal(t, int32(298), quantity.FromCanonical(foot{}, int32(91)))
	})

	t.Run("affine unit", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 273.15, quantity.ToCanonical(celsius{}, 0.0), 1e-12)
		assert.InDelta(t, 0.0, quantity.FromCanonical(celsius{}, 273.15), 1e-12)
	})
}

func TestOne(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.3048, quantity.One[float64](foot{}), 0)
	assert.Equal(t, float32(1), quantity.One[float32](meter{}))
	assert.Equal(t, 0, quantity.One[int](foot{}))
}

func TestProductQuotient(t *testing.T) {
	t.Parallel()

	t.Run("canonical output unit", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 2.5, quantity.Quotient(5.0, 2.0, meter{}), 0)
		assert.InDelta(t, 10.0, quantity.Product(5.0, 2.0, meter{}), 0)
	})

	t.Run("output unit rescales", func(t *testing.T) {
		t.Parallel()

		// the raw product is read as feet
		assert.InDelta(t, 3.048, quantity.Product(5.0, 2.0, foot{}), 1e-12)
	})

	t.Run("integer division truncates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 30, quantity.Quotient(91, 3, meter{}))
	})

	t.Run("float division by zero", func(t *testing.T) {
		t.Parallel()

		assert.True(t, math.IsInf(quantity.Quotient(1.0, 0.0, meter{}), 1))
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Length(5 Meters)", quantity.Format("Length", "Meters", 5.0))
	assert.Equal(t, "Length(-3 Meters)", quantity.Format("Length", "Meters", int8(-3)))
}

func TestOperator(t *testing.T) {
	t.Parallel()

	op, err := quantity.ParseOperator("*")
	assert.NoError(t, err)
	assert.Equal(t, quantity.OpMul, op)
	assert.Equal(t, "*", op.String())
	assert.Equal(t, "Mul", op.Verb())

	op, err = quantity.ParseOperator("/")
	assert.NoError(t, err)
	assert.Equal(t, "/", op.String())
	assert.Equal(t, "Div", op.Verb())
	assert.InDelta(t, 2.5, op.Apply(5, 2), 0)

	_, err = quantity.ParseOperator("+")
	assert.Error(t, err)

	assert.Equal(t, "Operator(0)", quantity.Operator(0).String())
}
