// Package units is the built-in catalog of dimensions and units.
//
// Every dimension is a generic value type storing its canonical unit:
//
//	d := units.NewLength(5.0, units.Meters{})
//	t := units.NewTime(2.0, units.Seconds{})
//	v := d.DivTime(t) // units.LinearVelocity[float64]
//	mph := v.To(units.MilesPerHour{})
//
// Adding a Length to a Time, mixing scalar types or calling an operation
// the catalog does not declare does not compile.
//
// The Go files are generated from dimensions.yaml.
package units

//go:generate go run ../cmd/quantity-generator gen --schema dimensions.yaml --out . --import-path quantity-generator/units
