package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantity-generator/units"
)

func TestLength_Conversions(t *testing.T) {
	t.Parallel()

	m := units.NewLength(1.0, units.Meters{})

	assert.InDelta(t, 100, m.To(units.Centimeters{}), 1e-9)
	assert.InDelta(t, 1000, m.To(units.Millimeters{}), 1e-9)
	assert.InDelta(t, 39.37007874015748, m.To(units.Inches{}), 1e-9)
	assert.InDelta(t, 3.280839895013123, m.To(units.Feet{}), 1e-9)

	assert.InDelta(t, 1609.344, units.NewLength(1.0, units.Miles{}).Canonical(), 1e-9)
	assert.InDelta(t, 5280, units.NewLength(1.0, units.Miles{}).To(units.Feet{}), 1e-9)
	assert.InDelta(t, 12, units.NewLength(1.0, units.Feet{}).To(units.Inches{}), 1e-9)
}

func TestLength_CrossUnitConsistency(t *testing.T) {
	t.Parallel()

	for _, l := range []units.Length[float64]{
		units.NewLength(1.0, units.Meters{}),
		units.NewLength(100.0, units.Centimeters{}),
		units.NewLength(39.370079, units.Inches{}),
		units.NewLength(0.001, units.Kilometers{}),
	} {
		assert.InDelta(t, 3.28084, l.To(units.Feet{}), 1e-5, l.String())
	}
}

func TestDerivedUnits(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1, units.NewMass(16.0, units.Ounces{}).To(units.Pounds{}), 1e-12)
	assert.InDelta(t, 14, units.NewMass(1.0, units.Stones{}).To(units.Pounds{}), 1e-12)
	assert.InDelta(t, 604_800, units.NewTime(1.0, units.Weeks{}).To(units.Seconds{}), 1e-9)
	assert.InDelta(t, 128, units.NewVolume(1.0, units.Gallons{}).To(units.FluidOunces{}), 1e-9)
	assert.InDelta(t, 4184, units.NewEnergy(1.0, units.Kilocalories{}).To(units.Joules{}), 1e-9)
	assert.InDelta(t, 0.45359237, units.MassOne[float64](units.Pounds{}).Canonical(), 0)
}

func TestOperations(t *testing.T) {
	t.Parallel()

	t.Run("length over time", func(t *testing.T) {
		t.Parallel()

		v := units.NewLength(5.0, units.Meters{}).DivTime(units.NewTime(2.0, units.Seconds{}))
		assert.InDelta(t, 2.5, v.To(units.MetersPerSecond{}), 0)
		assert.Equal(t, "LinearVelocity(2.5 MetersPerSecond)", v.String())
	})

	t.Run("speed times time", func(t *testing.T) {
		t.Parallel()

		d := units.NewLinearVelocity(60.0, units.MilesPerHour{}).MulTime(units.NewTime(1.0, units.Hours{}))
		assert.InDelta(t, 60, d.To(units.Miles{}), 1e-9)

		d = units.NewTime(1.0, units.Hours{}).MulLinearVelocity(units.NewLinearVelocity(60.0, units.MilesPerHour{}))
		assert.InDelta(t, 60, d.To(units.Miles{}), 1e-9)
	})

	t.Run("newton second law", func(t *testing.T) {
		t.Parallel()

		f := units.NewMass(2.0, units.Kilograms{}).MulLinearAcceleration(units.NewLinearAcceleration(3.0, units.MetersPerSecondSquared{}))
		assert.InDelta(t, 6, f.To(units.Newtons{}), 1e-12)
		assert.InDelta(t, 2, f.DivLinearAcceleration(units.NewLinearAcceleration(3.0, units.MetersPerSecondSquared{})).To(units.Kilograms{}), 1e-12)
		assert.InDelta(t, 3, f.DivMass(units.NewMass(2.0, units.Kilograms{})).Canonical(), 1e-12)
	})

	t.Run("geometry", func(t *testing.T) {
		t.Parallel()

		side := units.NewLength(2.0, units.Meters{})
		area := side.MulLength(side)
		volume := area.MulLength(side)

		assert.InDelta(t, 4, area.To(units.SquareMeters{}), 0)
		assert.InDelta(t, 8, volume.To(units.CubicMeters{}), 0)
		assert.InDelta(t, 8000, volume.To(units.Liters{}), 1e-9)
		assert.InDelta(t, 2, volume.DivArea(area).Canonical(), 0)
		assert.InDelta(t, 4, volume.DivLength(side).Canonical(), 0)
		assert.InDelta(t, 2, area.DivLength(side).Canonical(), 0)
	})

	t.Run("electricity", func(t *testing.T) {
		t.Parallel()

		p := units.NewVoltage(230.0, units.Volts{}).MulCurrent(units.NewCurrent(2.0, units.Amperes{}))
		assert.InDelta(t, 460, p.To(units.Watts{}), 1e-12)
		assert.InDelta(t, 2000, p.DivVoltage(units.NewVoltage(230.0, units.Volts{})).To(units.Milliamperes{}), 1e-9)

		e := p.MulTime(units.NewTime(1.0, units.Hours{}))
		assert.InDelta(t, 460, e.To(units.WattHours{}), 1e-9)
	})

	t.Run("rotation", func(t *testing.T) {
		t.Parallel()

		w := units.NewAngle(1.0, units.Rotations{}).DivTime(units.NewTime(1.0, units.Minutes{}))
		assert.InDelta(t, 1, w.To(units.RotationsPerMinute{}), 1e-12)

		e := units.NewTorque(1.0, units.NewtonMetersPerRadian{}).MulAngle(units.NewAngle(180.0, units.Degrees{}))
		assert.InDelta(t, 3.141592653589793, e.To(units.Joules{}), 1e-12)
	})
}

func TestTemperature(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 273.15, units.NewTemperature(0.0, units.Celsius{}).To(units.Kelvin{}), 1e-9)
	assert.InDelta(t, 0, units.NewTemperature(32.0, units.Fahrenheit{}).To(units.Celsius{}), 1e-9)
	assert.InDelta(t, 100, units.NewTemperature(212.0, units.Fahrenheit{}).To(units.Celsius{}), 1e-9)
	assert.InDelta(t, -40, units.NewTemperature(-40.0, units.Celsius{}).To(units.Fahrenheit{}), 1e-9)
	assert.InDelta(t, 0, units.NewTemperature(-459.67, units.Fahrenheit{}).Canonical(), 1e-9)
}

func TestIntegerScalars(t *testing.T) {
	t.Parallel()

	d := units.NewLength(300, units.Feet{})
	require.Equal(t, 91, d.Canonical())

	v := d.DivTime(units.NewTime(3, units.Seconds{}))
	assert.Equal(t, 30, v.Canonical())

	big := units.NewLength(int64(1)<<62+1, units.Meters{})
	assert.Equal(t, int64(1)<<62+1, big.To(units.Meters{}))

	assert.Equal(t, uint8(200), units.NewMass(uint8(200), units.Kilograms{}).Canonical())
	assert.Equal(t, int32(1000), units.LengthOne[int32](units.Kilometers{}).Canonical())

	// Narrow scalars convert exactly while the result stays in range.
	assert.Equal(t, int8(1), units.NewLength(int8(100), units.Centimeters{}).Canonical())
	assert.Equal(t, int8(-100), units.NewLength(int8(-1), units.Meters{}).To(units.Centimeters{}))
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := units.NewLength(1.0, units.Meters{})
	b := units.NewLength(50.0, units.Centimeters{})

	assert.InDelta(t, 1.5, a.Add(b).Canonical(), 0)
	assert.InDelta(t, 0.5, a.Sub(b).Canonical(), 0)
	assert.InDelta(t, 3, a.Mul(3).Canonical(), 0)
	assert.InDelta(t, 0.25, a.Div(4).Canonical(), 0)

	c := a
	c.AddAssign(b)
	c.MulAssign(2)
	c.SubAssign(a)
	c.DivAssign(4)
	assert.InDelta(t, 0.5, c.Canonical(), 0)
	assert.InDelta(t, 1, a.Canonical(), 0, "value semantics")

	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(units.NewLength(100.0, units.Centimeters{})))

	assert.Equal(t, units.LengthFromCanonical(2.0), a.Mul(2))
	assert.Equal(t, "Length(1 Meters)", a.String())
}
