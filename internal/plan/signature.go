package plan

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"quantity-generator/quantity"
)

// Signature maps base dimensions to exponents, e.g. velocity is
// {length: 1, time: -1}. A nil Signature means "not declared".
type Signature map[string]int

// NewSignature copies m dropping zero exponents. It returns nil for nil m.
func NewSignature(m map[string]int) Signature {
	if m == nil {
		return nil
	}

	s := make(Signature, len(m))
	for base, exp := range m {
		if exp != 0 {
			s[base] = exp
		}
	}

	return s
}

// Combine returns the signature of s op other.
func (s Signature) Combine(op quantity.Operator, other Signature) Signature {
	sign := 1
	if op == quantity.OpDiv {
		sign = -1
	}

	res := make(Signature, len(s)+len(other))
	maps.Copy(res, s)

	for base, exp := range other {
		res[base] += sign * exp
		if res[base] == 0 {
			delete(res, base)
		}
	}

	return res
}

// Equal reports whether both signatures have the same non-zero exponents.
func (s Signature) Equal(other Signature) bool {
	return maps.Equal(NewSignature(s), NewSignature(other))
}

// String renders the signature as "length^2 time^-1", or "1" if dimensionless.
func (s Signature) String() string {
	if len(s) == 0 {
		return "1"
	}

	parts := make([]string, 0, len(s))
	for _, base := range slices.Sorted(maps.Keys(s)) {
		if s[base] == 1 {
			parts = append(parts, base)
			continue
		}

		parts = append(parts, base+"^"+strconv.Itoa(s[base]))
	}

	return strings.Join(parts, " ")
}
