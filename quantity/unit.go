package quantity

// Dimension identifies a physical quantity family. Generated packages
// declare one zero-size implementation per dimension (e.g. LengthDim).
type Dimension interface {
	// Name returns the dimension name, e.g. "Length".
	Name() string
	// Canonical returns the name of the unit values are stored in.
	Canonical() string
}

// Converter converts a value between one unit and its dimension's canonical
// unit. The two methods must be mutual inverses.
type Converter interface {
	ToCanonical(v float64) float64
	FromCanonical(v float64) float64
}

// Scaled is implemented by linear units.
type Scaled interface {
	// Factor returns how many canonical units one of this unit is.
	Factor() float64
}

// Unit is a unit of the dimension D.
//
// Custom units for an existing dimension only need these methods; they
// compose with every generated operator because operators never look at
// anything but canonical values.
type Unit[D Dimension] interface {
	Converter
	Dimension() D
	Name() string
}

// LinearUnit is a Unit without an additive offset.
type LinearUnit[D Dimension] interface {
	Unit[D]
	Scaled
}
