// Package misuse is replaced by overlays in compile tests.
package misuse

import "quantity-generator/units"

var _ = units.NewLength(1.0, units.Meters{})
