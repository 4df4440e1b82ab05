package quantity

import "fmt"

// Scalar is the set of numeric types a quantity may be stored in.
//
// Every member supports the four arithmetic operators, is copied by value,
// converts from a float64 (conversion ratios) and narrows to a float64
// (affine and ratio arithmetic).
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// identity reports whether u is the canonical unit of its dimension.
func identity(u Converter) bool {
	s, ok := u.(Scaled)
	return ok && s.Factor() == 1
}

// ToCanonical converts v, expressed in u, to the canonical unit of u's
// dimension. The canonical unit itself is the identity and never rounds
// through float64. An integer result outside the range of S is
// implementation-defined.
func ToCanonical[S Scalar](u Converter, v S) S {
	if identity(u) {
		return v
	}

	return S(u.ToCanonical(float64(v)))
}

// FromCanonical converts the canonical value v to u. As with ToCanonical, an
// integer result outside the range of S is implementation-defined.
func FromCanonical[S Scalar](u Converter, v S) S {
	if identity(u) {
		return v
	}

	return S(u.FromCanonical(float64(v)))
}

// One returns the canonical value of one u.
func One[S Scalar](u Scaled) S {
	return S(u.Factor())
}

// Product multiplies two canonical values and reads the raw product as a
// value expressed in out, returning it in out's canonical unit.
func Product[S Scalar](a, b S, out Converter) S {
	return ToCanonical(out, a*b)
}

// Quotient divides two canonical values and reads the raw quotient as a
// value expressed in out, returning it in out's canonical unit.
func Quotient[S Scalar](a, b S, out Converter) S {
	return ToCanonical(out, a/b)
}

// Format renders a canonical value for diagnostics, e.g. "Length(5 Meters)".
func Format[S Scalar](dimension, canonical string, v S) string {
	return fmt.Sprintf("%s(%v %s)", dimension, v, canonical)
}
