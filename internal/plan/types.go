package plan

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"quantity-generator/internal/diagnostic"
	"quantity-generator/internal/schema"
	"quantity-generator/quantity"
)

// Catalog is the validated, resolved form of a schema file. It is the
// input of code generation.
type Catalog struct {
	// Package is the Go package name of the generated code.
	Package string
	// Imports are the generated packages this catalog references.
	Imports []*Import
	// Dimensions declared locally, in declaration order.
	Dimensions []*Dimension
	// Units declared locally, in declaration order. Includes standalone
	// units attached to imported dimensions.
	Units []*Unit
	// Operations declared locally, in declaration order.
	Operations []*Operation
	// Diagnostics collected during resolution.
	Diagnostics diagnostic.Diagnostics

	dimensions map[string]*Dimension
	units      map[string]*Unit
}

// Import is a resolved schema import.
type Import struct {
	Path  string
	Alias string
	// Catalog is the resolved catalog of the imported package.
	Catalog *Catalog
}

// Dimension is a resolved dimension.
type Dimension struct {
	Name      string
	Doc       string
	Canonical *Unit
	Signature Signature
	// Units of this dimension visible in the catalog, in declaration order.
	Units []*Unit
	// Operations whose left operand is this dimension.
	Operations []*Operation
	// Import is nil for local dimensions.
	Import *Import
}

// Local reports whether the dimension is declared by the catalog itself.
func (d *Dimension) Local() bool {
	return d.Import == nil
}

// Marker returns the name of the zero-size identity type, e.g. "LengthDim".
func (d *Dimension) Marker() string {
	return d.Name + "Dim"
}

// Ref returns the Go expression naming the dimension type from the
// catalog's package, e.g. "Length" or "units.Length".
func (d *Dimension) Ref() string {
	return qualify(d.Import, d.Name)
}

// MarkerRef is Ref for the marker type.
func (d *Dimension) MarkerRef() string {
	return qualify(d.Import, d.Marker())
}

// FromCanonicalRef names the canonical constructor, e.g. "units.LengthFromCanonical".
func (d *Dimension) FromCanonicalRef() string {
	return qualify(d.Import, d.Name+"FromCanonical")
}

// Unit is a resolved unit.
type Unit struct {
	Name      string
	Doc       string
	Dimension *Dimension
	Kind      schema.UnitKind
	// Factor is the number of canonical units in one unit; zero for affine units.
	Factor float64
	// FactorExpr is the Go expression returned by the generated Factor method.
	FactorExpr string
	// ToExpr and FromExpr map the receiver-less argument v to and from
	// the canonical unit.
	ToExpr   string
	FromExpr string
	// Of is the base unit of a derived unit, OfFactor how many of it make
	// one of this unit.
	Of       *Unit
	OfFactor schema.Number
	// Import is nil for local units.
	Import *Import

	def *schema.UnitDef
}

// Linear reports whether the unit has a scale factor and no offset.
func (u *Unit) Linear() bool {
	return u.Kind != schema.KindAffine
}

// IsCanonical reports whether u is its dimension's canonical unit.
func (u *Unit) IsCanonical() bool {
	return u.Dimension != nil && u.Dimension.Canonical == u
}

// Derived reports whether u is declared as a multiple of another unit.
func (u *Unit) Derived() bool {
	return u.Kind == schema.KindDerived
}

// Local reports whether the unit is declared by the catalog itself.
func (u *Unit) Local() bool {
	return u.Import == nil
}

// Ref returns the Go expression naming the unit type.
func (u *Unit) Ref() string {
	return qualify(u.Import, u.Name)
}

// ToCanonical converts v from this unit to the canonical unit.
func (u *Unit) ToCanonical(v float64) float64 {
	if u.Linear() {
		return v * u.Factor
	}

	a := u.def.Affine

	return (v + a.Offset.Value) * a.Scale.Value
}

// FromCanonical converts v from the canonical unit to this unit.
func (u *Unit) FromCanonical(v float64) float64 {
	if u.Linear() {
		return v / u.Factor
	}

	a := u.def.Affine

	return v/a.Scale.Value - a.Offset.Value
}

// Operation is a resolved edge of the operation graph.
type Operation struct {
	Left   *Dimension
	Op     quantity.Operator
	Right  *Dimension
	Output *Dimension
	Unit   *Unit
}

// Method reports whether the edge is generated as a method on Left.
// Go forbids methods on types of other packages, so edges rooted on an
// imported dimension become package-level functions.
func (o *Operation) Method() bool {
	return o.Left.Local()
}

// Name is the generated method or function name,
// e.g. "DivTime" or "TimeMulDataRate".
func (o *Operation) Name() string {
	name := o.Op.Verb() + o.Right.Name
	if o.Method() {
		return name
	}

	return o.Left.Name + name
}

// Edge returns the runtime registry form of the operation.
func (o *Operation) Edge() quantity.Edge {
	return quantity.Edge{
		Left:   o.Left.Name,
		Op:     o.Op,
		Right:  o.Right.Name,
		Output: o.Output.Name,
		Unit:   o.Unit.Name,
	}
}

func (o *Operation) String() string {
	return o.Edge().String()
}

// Dimension looks up a dimension visible in the catalog, local or imported.
func (c *Catalog) Dimension(name string) (*Dimension, bool) {
	d, ok := c.dimensions[name]
	return d, ok
}

// Unit looks up a unit visible in the catalog, local or imported.
func (c *Catalog) Unit(name string) (*Unit, bool) {
	u, ok := c.units[name]
	return u, ok
}

// DimensionNames returns all visible dimension names, sorted.
func (c *Catalog) DimensionNames() []string {
	return slices.Sorted(maps.Keys(c.dimensions))
}

// UnitNames returns all visible unit names, sorted.
func (c *Catalog) UnitNames() []string {
	return slices.Sorted(maps.Keys(c.units))
}

// AllOperations returns the operations of every imported catalog,
// transitively, followed by the local ones.
func (c *Catalog) AllOperations() []*Operation {
	var res []*Operation

	seen := make(map[*Catalog]bool)

	var walk func(cat *Catalog)
	walk = func(cat *Catalog) {
		if seen[cat] {
			return
		}

		seen[cat] = true

		for _, imp := range cat.Imports {
			walk(imp.Catalog)
		}

		res = append(res, cat.Operations...)
	}

	walk(c)

	return res
}

// Summary returns a short human-readable description.
func (c *Catalog) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "package %s: %d dimensions, %d units, %d operations",
		c.Package, len(c.Dimensions), len(c.Units), len(c.Operations))

	if len(c.Imports) > 0 {
		paths := make([]string, 0, len(c.Imports))
		for _, imp := range c.Imports {
			paths = append(paths, imp.Path)
		}

		fmt.Fprintf(&sb, " (imports %s)", strings.Join(paths, ", "))
	}

	return sb.String()
}

func qualify(imp *Import, name string) string {
	if imp == nil {
		return name
	}

	return imp.Alias + "." + name
}
