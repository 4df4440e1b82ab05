// Package analyze discovers dimensions and units in compiled Go packages.
//
// It uses golang.org/x/tools/go/packages with go/types to find every named
// type shaped like a unit, generated or hand-written:
//
//	Dimension() XDim
//	Name() string
//	ToCanonical(float64) float64
//	FromCanonical(float64) float64
//
// where XDim has Name() string and Canonical() string. Linear units also
// have Factor() float64.
//
// Key types:
//   - TypeID: package import path + type name
//   - UnitInfo: a discovered unit and its dimension marker
//   - DimensionInfo: a discovered dimension marker and its storage type
package analyze
