package schema

import (
	"quantity-generator/quantity"
)

// File represents the root of a YAML schema file.
type File struct {
	// Version of the schema format.
	Version string `yaml:"version,omitempty"`

	// Package is the Go package name of the generated code.
	Package string `yaml:"package,omitempty"`

	// Imports lists generated packages whose dimensions may be referenced.
	Imports []Import `yaml:"imports,omitempty"`

	// Dimensions declared by this file.
	Dimensions []DimensionDef `yaml:"dimensions"`

	// Units declares standalone units, each naming its dimension.
	Units []UnitDef `yaml:"units,omitempty"`

	// Operations declares edges whose left dimension is named explicitly.
	Operations []OperationDef `yaml:"operations,omitempty"`

	// Path is the file this schema was loaded from, if any.
	Path string `yaml:"-"`
}

// Import references another generated package and the schema it was built from.
type Import struct {
	// Path is the Go import path of the generated package.
	Path string `yaml:"path"`

	// Schema is the schema file of that package, relative to this file.
	Schema string `yaml:"schema"`

	// File is the loaded schema, filled by LoadFile.
	File *File `yaml:"-"`
}

// DimensionDef declares one dimension.
type DimensionDef struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc,omitempty"`

	// Canonical names the unit every value is stored in.
	Canonical string `yaml:"canonical"`

	// Signature maps base dimensions (length, mass, time, angle, current,
	// temperature) to exponents. Optional; enables edge consistency checks.
	Signature map[string]int `yaml:"signature,omitempty"`

	Units      []UnitDef      `yaml:"units,omitempty"`
	Operations []OperationDef `yaml:"operations,omitempty"`
}

// UnitDef declares one unit. Exactly one of Ratio, Of or Affine is set.
type UnitDef struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc,omitempty"`

	// Dimension is required for standalone units and ignored inside a dimension.
	Dimension string `yaml:"dimension,omitempty"`

	Ratio Ratio `yaml:"ratio,omitempty"`

	// Of and Factor declare one unit as Factor of another unit.
	Of     string `yaml:"of,omitempty"`
	Factor Number `yaml:"factor,omitempty"`

	Affine *Affine `yaml:"affine,omitempty"`
}

// Kind returns how the unit maps to its canonical unit.
func (u *UnitDef) Kind() UnitKind {
	var kinds []UnitKind

	if !u.Ratio.IsZero() {
		kinds = append(kinds, KindRatio)
	}

	if u.Of != "" || !u.Factor.IsZero() {
		kinds = append(kinds, KindDerived)
	}

	if u.Affine != nil {
		kinds = append(kinds, KindAffine)
	}

	switch len(kinds) {
	case 0:
		return KindNone
	case 1:
		return kinds[0]
	default:
		return KindAmbiguous
	}
}

// UnitKind classifies a unit declaration.
type UnitKind int

const (
	KindNone UnitKind = iota
	KindRatio
	KindDerived
	KindAffine
	KindAmbiguous
)

func (k UnitKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRatio:
		return "ratio"
	case KindDerived:
		return "derived"
	case KindAffine:
		return "affine"
	case KindAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Affine declares canonical = (v + Offset) * Scale.
type Affine struct {
	Offset Number `yaml:"offset"`
	Scale  Number `yaml:"scale,omitempty"`
}

// SelfRef is the left-hand side placeholder for the enclosing dimension.
const SelfRef = "Self"

// OperationDef declares one edge of the operation graph:
// Left Op Right => Output, with the raw result read in Unit.
//
// YAML accepts the string form "Self / Time => LinearVelocity in MetersPerSecond"
// or a mapping with the same five keys.
type OperationDef struct {
	Left   string            `yaml:"left"`
	Op     quantity.Operator `yaml:"-"`
	Right  string            `yaml:"right"`
	Output string            `yaml:"output"`
	Unit   string            `yaml:"unit"`
}
