package quantity

import "fmt"

//go:generate go tool stringer -type=Operator -linecomment -output=operator_string.go

// Operator is an arithmetic operator between two dimensions.
type Operator int

const (
	_ Operator = iota // skip zero value, it marks an unset operator

	OpMul // *
	OpDiv // /
)

// ParseOperator parses "*" or "/".
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "*":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", s)
	}
}

// Verb returns the identifier fragment used in generated names: "Mul" or "Div".
func (o Operator) Verb() string {
	switch o {
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	default:
		return "Op"
	}
}

// Apply applies the operator to two float64 values.
func (o Operator) Apply(a, b float64) float64 {
	if o == OpDiv {
		return a / b
	}

	return a * b
}
