package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"quantity-generator/quantity"
)

const (
	arrowToken = "=>"
	inToken    = "in"
)

// ParseOperation parses "Left op Right => Output in Unit", e.g.
// "Self / Time => LinearVelocity in MetersPerSecond".
func ParseOperation(s string) (OperationDef, error) {
	lhs, rhs, ok := strings.Cut(s, arrowToken)
	if !ok {
		return OperationDef{}, fmt.Errorf("operation %q: missing %q", s, arrowToken)
	}

	opIdx := strings.IndexAny(lhs, "*/")
	if opIdx < 0 {
		return OperationDef{}, fmt.Errorf("operation %q: missing operator * or /", s)
	}

	op, err := quantity.ParseOperator(lhs[opIdx : opIdx+1])
	if err != nil {
		return OperationDef{}, fmt.Errorf("operation %q: %w", s, err)
	}

	left := strings.TrimSpace(lhs[:opIdx])
	right := strings.TrimSpace(lhs[opIdx+1:])

	if !isIdent(left) || !isIdent(right) {
		return OperationDef{}, fmt.Errorf("operation %q: operands must be single dimension names", s)
	}

	out := strings.Fields(rhs)
	if len(out) != 3 || out[1] != inToken || !isIdent(out[0]) || !isIdent(out[2]) {
		return OperationDef{}, fmt.Errorf("operation %q: want \"=> Output in Unit\"", s)
	}

	return OperationDef{
		Left:   left,
		Op:     op,
		Right:  right,
		Output: out[0],
		Unit:   out[2],
	}, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

func (o OperationDef) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %s", o.Left, o.Op, o.Right, arrowToken, o.Output, inToken, o.Unit)
}

// IsSelf reports whether the left side refers to the enclosing dimension.
func (o OperationDef) IsSelf() bool {
	return o.Left == SelfRef
}

// operationMapping is the mapping form of an operation.
type operationMapping struct {
	Left   string `yaml:"left"`
	Op     string `yaml:"op"`
	Right  string `yaml:"right"`
	Output string `yaml:"output"`
	Unit   string `yaml:"unit"`
}

// UnmarshalYAML implements custom YAML unmarshaling for OperationDef.
// Accepts either the string form or a mapping.
func (o *OperationDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		op, err := ParseOperation(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*o = op

		return nil

	case yaml.MappingNode:
		var m operationMapping

		if err := node.Decode(&m); err != nil {
			return err
		}

		op, err := quantity.ParseOperator(m.Op)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		if m.Left == "" {
			m.Left = SelfRef
		}

		*o = OperationDef{Left: m.Left, Op: op, Right: m.Right, Output: m.Output, Unit: m.Unit}

		return nil

	default:
		return fmt.Errorf("line %d: expected operation string or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML always writes the string form.
func (o OperationDef) MarshalYAML() (any, error) {
	return o.String(), nil
}
