// Package quantity is the runtime core every generated dimension package
// builds on.
//
// A dimension (Length, Time, Force, ...) is generated as its own generic type
// holding a value in the dimension's canonical unit. Units are zero-size types
// implementing Unit for exactly one Dimension, so handing a Time unit to a
// Length, adding a Length to a Time, or mixing Length[float64] with
// Length[int] is rejected by the Go compiler.
//
// # Layers
//
//  1. Scalar: the numeric representation a quantity is stored in.
//  2. Unit / Dimension: conversion to and from the canonical unit.
//  3. Operation graph: cross-dimension arithmetic. Every generated operator
//     delegates to Product or Quotient, which compute on canonical values and
//     reinterpret the raw result in the operation's declared output unit.
//
// # Integer scalars
//
// Conversions go through float64 and back, so an integer scalar truncates on
// every non-identity conversion and on division:
//
//	d := units.NewLength(300, units.Feet{})  // Length[int], 91 meters
//	v := d.DivTime(units.NewTime(3, units.Seconds{}))
//	v.To(units.MetersPerSecond{})           // 30
//
// This is accepted behavior, not an error. A converted value that does not
// fit the scalar follows Go's float-to-integer conversion rules and is
// implementation-defined: NewLength(int8(1), units.Kilometers{}) does not hold
// 1000, and a uint Temperature below 273.15 Kelvin has no meaningful Celsius
// reading.
//
// # Affine units
//
// Affine units (Celsius, Fahrenheit) implement Unit but not LinearUnit.
// "One of" an affine unit has no meaning because the transform is not
// homogeneous, so the generated One constructors only accept LinearUnit.
//
// # Registry
//
// Registry is a runtime view of the same catalog used by tooling. It checks
// dimensions on every operation and fails with MismatchError or
// NoOperationError instead of relying on the compiler.
package quantity
