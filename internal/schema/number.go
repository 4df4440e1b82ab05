package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var errEmptyNumber = errors.New("empty number")

// Number is a numeric literal kept both as a Go constant expression and as
// its float64 value.
type Number struct {
	// Text is the literal as written ("0.3048", "31_556_926", "5/9").
	Text string
	// Expr is a float-typed Go constant expression ("0.3048", "(5.0 / 9)").
	Expr  string
	Value float64
}

// ParseNumber parses a decimal literal or a fraction a/b of decimal literals.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, errEmptyNumber
	}

	num, den, isFraction := strings.Cut(s, "/")
	if !isFraction {
		v, err := parseLiteral(s)
		if err != nil {
			return Number{}, err
		}

		return Number{Text: s, Expr: s, Value: v}, nil
	}

	num, den = strings.TrimSpace(num), strings.TrimSpace(den)

	a, err := parseLiteral(num)
	if err != nil {
		return Number{}, fmt.Errorf("numerator of %q: %w", s, err)
	}

	b, err := parseLiteral(den)
	if err != nil {
		return Number{}, fmt.Errorf("denominator of %q: %w", s, err)
	}

	if b == 0 {
		return Number{}, fmt.Errorf("fraction %q divides by zero", s)
	}

	return Number{
		Text:  s,
		Expr:  "(" + floatLiteral(num) + " / " + den + ")",
		Value: a / b,
	}, nil
}

// MustNumber is ParseNumber that panics on error.
func MustNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}

	return n
}

// IsZero reports whether the number is unset.
func (n Number) IsZero() bool {
	return n.Text == ""
}

func (n Number) String() string {
	return n.Text
}

// UnmarshalYAML accepts a YAML int, float or string scalar.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number, got %v", node.Line, node.Kind)
	}

	v, err := ParseNumber(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*n = v

	return nil
}

// MarshalYAML writes the literal back as written.
func (n Number) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: n.Text}, nil
}

// parseLiteral accepts decimal Go literals with optional sign, fraction,
// exponent and digit separators.
func parseLiteral(s string) (float64, error) {
	if s == "" {
		return 0, errEmptyNumber
	}

	for i, c := range s {
		switch {
		case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E':
		case c == '+' || c == '-':
			if i != 0 && s[i-1] != 'e' && s[i-1] != 'E' {
				return 0, fmt.Errorf("malformed number %q", s)
			}
		case c == '_':
			if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
				return 0, fmt.Errorf("misplaced '_' in %q", s)
			}
		default:
			return 0, fmt.Errorf("malformed number %q", s)
		}
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed number %q", s)
	}

	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("number %q overflows float64", s)
	}

	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// floatLiteral makes an integer literal float so that constant division
// in generated code is not integer division.
func floatLiteral(s string) string {
	if strings.ContainsAny(s, ".eE") {
		return s
	}

	return s + ".0"
}

// RatioForm tells how a ratio relates a unit to its canonical unit.
type RatioForm int

const (
	RatioUnset RatioForm = iota
	// UnitsPerCanonical is "R per canonical": R units make one canonical unit.
	UnitsPerCanonical
	// CanonicalPerUnit is "per L canonical": one unit is L canonical units.
	CanonicalPerUnit
)

const (
	perWord       = "per"
	canonicalWord = "canonical"
)

// Ratio is a linear unit's relation to its dimension's canonical unit.
type Ratio struct {
	Form  RatioForm
	Value Number
}

// ParseRatio parses "R per canonical" or "per L canonical".
func ParseRatio(s string) (Ratio, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 || fields[2] != canonicalWord {
		return Ratio{}, fmt.Errorf("ratio %q: want \"R per canonical\" or \"per L canonical\"", s)
	}

	var (
		form RatioForm
		lit  string
	)

	switch {
	case fields[1] == perWord && fields[0] != perWord:
		form, lit = UnitsPerCanonical, fields[0]
	case fields[0] == perWord && fields[1] != perWord:
		form, lit = CanonicalPerUnit, fields[1]
	default:
		return Ratio{}, fmt.Errorf("ratio %q: want \"R per canonical\" or \"per L canonical\"", s)
	}

	n, err := ParseNumber(lit)
	if err != nil {
		return Ratio{}, fmt.Errorf("ratio %q: %w", s, err)
	}

	return Ratio{Form: form, Value: n}, nil
}

// IsZero reports whether the ratio is unset.
func (r Ratio) IsZero() bool {
	return r.Form == RatioUnset
}

// Factor returns how many canonical units one unit is.
func (r Ratio) Factor() float64 {
	switch r.Form {
	case UnitsPerCanonical:
		return 1 / r.Value.Value
	case CanonicalPerUnit:
		return r.Value.Value
	default:
		return 0
	}
}

func (r Ratio) String() string {
	switch r.Form {
	case UnitsPerCanonical:
		return r.Value.Text + " " + perWord + " " + canonicalWord
	case CanonicalPerUnit:
		return perWord + " " + r.Value.Text + " " + canonicalWord
	default:
		return ""
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for Ratio.
func (r *Ratio) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a ratio string, got %v", node.Line, node.Kind)
	}

	v, err := ParseRatio(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*r = v

	return nil
}

// MarshalYAML implements custom YAML marshaling for Ratio.
func (r Ratio) MarshalYAML() (any, error) {
	return r.String(), nil
}
