package quantity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantity-generator/quantity"
)

type span struct{}

func (span) Name() string      { return "Span" }
func (span) Canonical() string { return "Second" }

type second struct{}

func (second) Dimension() span                 { return span{} }
func (second) Name() string                    { return "Second" }
func (second) Factor() float64                 { return 1 }
func (second) ToCanonical(v float64) float64   { return v }
func (second) FromCanonical(v float64) float64 { return v }

type pace struct{}

func (pace) Name() string      { return "Pace" }
func (pace) Canonical() string { return "MeterPerSecond" }

type meterPerSecond struct{}

func (meterPerSecond) Dimension() pace                 { return pace{} }
func (meterPerSecond) Name() string                    { return "MeterPerSecond" }
func (meterPerSecond) Factor() float64                 { return 1 }
func (meterPerSecond) ToCanonical(v float64) float64   { return v }
func (meterPerSecond) FromCanonical(v float64) float64 { return v }

func newTestRegistry(t *testing.T) *quantity.Registry {
	t.Helper()

	r := quantity.NewRegistry()
	r.MustAddDimension(distance{})
	r.MustAddDimension(span{})
	r.MustAddDimension(pace{})
	r.MustAddDimension(warmth{})

	quantity.MustRegister[distance](r, meter{})
	quantity.MustRegister[distance](r, foot{})
	quantity.MustRegister[span](r, second{})
	quantity.MustRegister[pace](r, meterPerSecond{})
	quantity.MustRegister[warmth](r, celsius{})

	r.MustAddEdge(quantity.Edge{
		Left: "Distance", Op: quantity.OpDiv, Right: "Span", Output: "Pace", Unit: "MeterPerSecond",
	})

	return r
}

func TestRegistry_Catalog(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	assert.Equal(t, []string{"Distance", "Span", "Pace", "Warmth"}, r.Dimensions())

	names, err := r.Units("Distance")
	require.NoError(t, err)
	assert.Equal(t, []string{"Meter", "Foot"}, names)

	_, err = r.Units("Mass")
	assert.ErrorIs(t, err, quantity.ErrUnknownDimension)

	dim, ok := r.Lookup("Foot")
	assert.True(t, ok)
	assert.Equal(t, "Distance", dim)
	assert.True(t, r.Linear("Foot"))
	assert.False(t, r.Linear("Celsius"))

	require.Len(t, r.Edges(), 1)
	assert.Equal(t, "Distance / Span => Pace in MeterPerSecond", r.Edges()[0].String())
}

func TestRegistry_RegistrationErrors(t *testing.T) {
	t.Parallel()

	t.Run("duplicate dimension", func(t *testing.T) {
		t.Parallel()

		r := newTestRegistry(t)
		assert.Error(t, r.AddDimension(distance{}))
	})

	t.Run("unit of unregistered dimension", func(t *testing.T) {
		t.Parallel()

		r := quantity.NewRegistry()
		err := quantity.Register[distance](r, meter{})
		assert.ErrorIs(t, err, quantity.ErrUnknownDimension)
	})

	t.Run("duplicate unit", func(t *testing.T) {
		t.Parallel()

		r := newTestRegistry(t)
		assert.Error(t, quantity.Register[distance](r, foot{}))
	})

	t.Run("edge errors", func(t *testing.T) {
		t.Parallel()

		r := newTestRegistry(t)

		err := r.AddEdge(quantity.Edge{Left: "Distance", Op: quantity.OpMul, Right: "Mass", Output: "Pace", Unit: "MeterPerSecond"})
		assert.ErrorIs(t, err, quantity.ErrUnknownDimension)

		err = r.AddEdge(quantity.Edge{Left: "Distance", Op: quantity.OpMul, Right: "Span", Output: "Pace", Unit: "Knots"})
		assert.ErrorIs(t, err, quantity.ErrUnknownUnit)

		err = r.AddEdge(quantity.Edge{Left: "Distance", Op: quantity.OpMul, Right: "Span", Output: "Pace", Unit: "Meter"})
		assert.ErrorContains(t, err, "belongs to Distance")

		err = r.AddEdge(quantity.Edge{Left: "Distance", Op: quantity.OpMul, Right: "Span", Output: "Warmth", Unit: "Celsius"})
		assert.ErrorContains(t, err, "affine")

		err = r.AddEdge(quantity.Edge{Left: "Distance", Op: quantity.OpDiv, Right: "Span", Output: "Pace", Unit: "MeterPerSecond"})
		assert.ErrorContains(t, err, "already registered")
	})

	t.Run("must variants panic", func(t *testing.T) {
		t.Parallel()

		r := newTestRegistry(t)
		assert.Panics(t, func() { r.MustAddDimension(span{}) })
		assert.Panics(t, func() { quantity.MustRegister[span](r, second{}) })
	})
}

func TestRegistry_Include(t *testing.T) {
	t.Parallel()

	r := quantity.NewRegistry()
	calls := 0

	register := func(r *quantity.Registry) {
		calls++
		r.MustAddDimension(span{})
	}

	r.Include("example.com/span", register)
	r.Include("example.com/span", register)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"Span"}, r.Dimensions())
}

func TestRegistry_Arithmetic(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	d, err := r.New(10, "Foot")
	require.NoError(t, err)
	assert.Equal(t, "Distance", d.Dimension)
	assert.InDelta(t, 3.048, d.Canonical, 1e-12)

	s, err := r.New(2, "Second")
	require.NoError(t, err)

	t.Run("same dimension", func(t *testing.T) {
		t.Parallel()

		sum, err := r.Add(d, d)
		require.NoError(t, err)
		assert.InDelta(t, 6.096, sum.Canonical, 1e-12)

		diff, err := r.Sub(d, d)
		require.NoError(t, err)
		assert.InDelta(t, 0, diff.Canonical, 0)
	})

	t.Run("mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := r.Add(d, s)

		var mismatch *quantity.MismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "Distance", mismatch.Left)
		assert.Equal(t, "Span", mismatch.Right)
		assert.Equal(t, "cannot add Distance and Span: dimension mismatch", err.Error())

		_, err = r.Sub(s, d)
		assert.ErrorAs(t, err, &mismatch)

		_, err = r.In(d, "Second")
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("operation graph", func(t *testing.T) {
		t.Parallel()

		v, err := r.Div(d, s)
		require.NoError(t, err)
		assert.Equal(t, "Pace", v.Dimension)
		assert.InDelta(t, 1.524, v.Canonical, 1e-12)

		_, err = r.Mul(d, s)

		var missing *quantity.NoOperationError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "no operation Distance * Span is declared", err.Error())
	})

	t.Run("conversion", func(t *testing.T) {
		t.Parallel()

		ft, err := r.Convert(1, "Meter", "Foot")
		require.NoError(t, err)
		assert.InDelta(t, 3.28084, ft, 1e-5)

		_, err = r.Convert(1, "Parsec", "Foot")
		assert.ErrorIs(t, err, quantity.ErrUnknownUnit)

		_, err = r.Convert(1, "Meter", "Parsec")
		assert.ErrorIs(t, err, quantity.ErrUnknownUnit)
	})

	t.Run("format", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Span(2 Second)", r.Format(s))
		assert.Equal(t, "Mass(1 ?)", r.Format(quantity.Value{Dimension: "Mass", Canonical: 1}))
	})
}
