package units_test

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"

	"quantity-generator/quantity"
	"quantity-generator/units"
)

// boundedFuzzer produces finite values in [-1e6, 1e6).
func boundedFuzzer() *fuzz.Fuzzer {
	return fuzz.New().NilChance(0).Funcs(func(v *float64, c fuzz.Continue) {
		*v = c.Float64()*2e6 - 1e6
	})
}

func assertRoundTrip[D quantity.Dimension](t *testing.T, u quantity.Unit[D], v float64) {
	t.Helper()

	back := u.FromCanonical(u.ToCanonical(v))
	assert.InDelta(t, v, back, 1e-9*math.Max(1, math.Abs(v)), "%s(%v)", u.Name(), v)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	f := boundedFuzzer()

	for range 200 {
		var v float64
		f.Fuzz(&v)

		for _, u := range []quantity.Unit[units.LengthDim]{
			units.Millimeters{}, units.Meters{}, units.Inches{}, units.Feet{}, units.Miles{}, units.NauticalMiles{},
		} {
			assertRoundTrip(t, u, v)
			assert.InDelta(t, v, units.NewLength(v, u).To(u), 1e-9*math.Max(1, math.Abs(v)))
		}

		for _, u := range []quantity.Unit[units.TemperatureDim]{units.Kelvin{}, units.Celsius{}, units.Fahrenheit{}} {
			assertRoundTrip(t, u, v)
		}

		for _, u := range []quantity.Unit[units.VolumeDim]{units.Gallons{}, units.Pints{}, units.FluidOunces{}, units.Liters{}} {
			assertRoundTrip(t, u, v)
		}

		for _, u := range []quantity.Unit[units.MassDim]{units.Ounces{}, units.LongTons{}, units.Micrograms{}} {
			assertRoundTrip(t, u, v)
		}
	}
}

func TestLinearUnitsAgreeWithFactor(t *testing.T) {
	t.Parallel()

	f := boundedFuzzer()

	for range 100 {
		var v float64
		f.Fuzz(&v)

		for _, u := range []quantity.LinearUnit[units.AngleDim]{
			units.Radians{}, units.Degrees{}, units.Rotations{}, units.Gradians{},
		} {
			assert.InDelta(t, v*u.Factor(), u.ToCanonical(v), 1e-9*math.Max(1, math.Abs(v)))
		}
	}
}

func TestFloat32Scalar(t *testing.T) {
	t.Parallel()

	f := boundedFuzzer()

	for range 100 {
		var v float64
		f.Fuzz(&v)

		x := float32(v)
		got := units.NewPressure(x, units.Bars{}).To(units.Bars{})
		assert.InDelta(t, x, got, 1e-3*math.Max(1, math.Abs(float64(x))))
	}
}

func TestReadBackIsIdempotent(t *testing.T) {
	t.Parallel()

	f := boundedFuzzer()

	for range 100 {
		var v float64
		f.Fuzz(&v)

		q := units.LengthFromCanonical(v)

		for _, u := range []quantity.Unit[units.LengthDim]{
			units.Millimeters{}, units.Centimeters{}, units.Meters{}, units.Kilometers{}, units.Inches{},
			units.Feet{}, units.Yards{}, units.Miles{}, units.NauticalMiles{},
		} {
			back := units.NewLength(q.To(u), u)
			assert.InDelta(t, q.Canonical(), back.Canonical(), 1e-9*math.Max(1, math.Abs(v)), u.Name())
		}

		temp := units.TemperatureFromCanonical(v)

		for _, u := range []quantity.Unit[units.TemperatureDim]{units.Kelvin{}, units.Celsius{}, units.Fahrenheit{}} {
			back := units.NewTemperature(temp.To(u), u)
			assert.InDelta(t, temp.Canonical(), back.Canonical(), 1e-9*math.Max(1, math.Abs(v)), u.Name())
		}
	}
}
