package quantity

import (
	"fmt"
	"slices"
)

// Edge is one rule of the operation graph:
// Left Op Right => Output, with the raw result read in Unit.
type Edge struct {
	Left   string
	Op     Operator
	Right  string
	Output string
	Unit   string
}

func (e Edge) String() string {
	return fmt.Sprintf("%s %s %s => %s in %s", e.Left, e.Op, e.Right, e.Output, e.Unit)
}

type edgeKey struct {
	left  string
	op    Operator
	right string
}

type unitEntry struct {
	name      string
	dimension string
	conv      Converter
	// factor is zero for affine units.
	factor float64
}

// Value is a dynamically checked quantity: a canonical float64 tagged with
// its dimension name. It is the runtime counterpart of the generated types.
type Value struct {
	Dimension string
	Canonical float64
}

// Registry is a runtime catalog of dimensions, units and operation edges.
//
// A Registry is filled once by generated Register functions and only read
// afterwards; it is not safe for concurrent mutation.
type Registry struct {
	dimensions map[string]Dimension
	dimOrder   []string
	units      map[string]unitEntry
	byDim      map[string][]string
	edges      map[edgeKey]Edge
	edgeOrder  []edgeKey
	included   map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		dimensions: make(map[string]Dimension),
		units:      make(map[string]unitEntry),
		byDim:      make(map[string][]string),
		edges:      make(map[edgeKey]Edge),
		included:   make(map[string]bool),
	}
}

// Include runs register unless a package with the same import path was
// already included. Generated Register functions use it so that shared
// imports are registered once.
func (r *Registry) Include(pkgPath string, register func(r *Registry)) {
	if r.included[pkgPath] {
		return
	}

	r.included[pkgPath] = true
	register(r)
}

// AddDimension registers a dimension.
func (r *Registry) AddDimension(d Dimension) error {
	name := d.Name()
	if _, ok := r.dimensions[name]; ok {
		return fmt.Errorf("dimension %s already registered", name)
	}

	r.dimensions[name] = d
	r.dimOrder = append(r.dimOrder, name)

	return nil
}

// MustAddDimension is AddDimension that panics on error.
func (r *Registry) MustAddDimension(d Dimension) {
	if err := r.AddDimension(d); err != nil {
		panic(err)
	}
}

// Register adds u to r. The dimension D must already be registered.
func Register[D Dimension](r *Registry, u Unit[D]) error {
	var d D

	dim := d.Name()
	if _, ok := r.dimensions[dim]; !ok {
		return fmt.Errorf("registering unit %s: %w %s", u.Name(), ErrUnknownDimension, dim)
	}

	if prev, ok := r.units[u.Name()]; ok {
		return fmt.Errorf("unit %s already registered for %s", u.Name(), prev.dimension)
	}

	entry := unitEntry{name: u.Name(), dimension: dim, conv: u}
	if s, ok := u.(Scaled); ok {
		entry.factor = s.Factor()
	}

	r.units[entry.name] = entry
	r.byDim[dim] = append(r.byDim[dim], entry.name)

	return nil
}

// MustRegister is Register that panics on error.
func MustRegister[D Dimension](r *Registry, u Unit[D]) {
	if err := Register(r, u); err != nil {
		panic(err)
	}
}

// AddEdge registers an operation edge. All three dimensions and the output
// unit must be registered, and the output unit must be linear.
func (r *Registry) AddEdge(e Edge) error {
	for _, dim := range []string{e.Left, e.Right, e.Output} {
		if _, ok := r.dimensions[dim]; !ok {
			return fmt.Errorf("edge %s: %w %s", e, ErrUnknownDimension, dim)
		}
	}

	u, ok := r.units[e.Unit]
	if !ok {
		return fmt.Errorf("edge %s: %w %s", e, ErrUnknownUnit, e.Unit)
	}

	if u.dimension != e.Output {
		return fmt.Errorf("edge %s: unit %s belongs to %s", e, e.Unit, u.dimension)
	}

	if u.factor == 0 {
		return fmt.Errorf("edge %s: output unit %s is affine", e, e.Unit)
	}

	key := edgeKey{e.Left, e.Op, e.Right}
	if _, ok := r.edges[key]; ok {
		return fmt.Errorf("edge %s %s %s already registered", e.Left, e.Op, e.Right)
	}

	r.edges[key] = e
	r.edgeOrder = append(r.edgeOrder, key)

	return nil
}

// MustAddEdge is AddEdge that panics on error.
func (r *Registry) MustAddEdge(e Edge) {
	if err := r.AddEdge(e); err != nil {
		panic(err)
	}
}

// Dimensions returns the registered dimension names in registration order.
func (r *Registry) Dimensions() []string {
	return slices.Clone(r.dimOrder)
}

// Units returns the unit names of a dimension in registration order.
func (r *Registry) Units(dimension string) ([]string, error) {
	if _, ok := r.dimensions[dimension]; !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownDimension, dimension)
	}

	return slices.Clone(r.byDim[dimension]), nil
}

// Edges returns the registered edges in registration order.
func (r *Registry) Edges() []Edge {
	res := make([]Edge, 0, len(r.edgeOrder))
	for _, k := range r.edgeOrder {
		res = append(res, r.edges[k])
	}

	return res
}

// Lookup returns the dimension a unit belongs to.
func (r *Registry) Lookup(unit string) (string, bool) {
	u, ok := r.units[unit]
	return u.dimension, ok
}

// Linear reports whether a registered unit is linear.
func (r *Registry) Linear(unit string) bool {
	return r.units[unit].factor != 0
}

func (r *Registry) unit(name string) (unitEntry, error) {
	u, ok := r.units[name]
	if !ok {
		return unitEntry{}, fmt.Errorf("%w %s", ErrUnknownUnit, name)
	}

	return u, nil
}

// New builds a Value from v expressed in unit.
func (r *Registry) New(v float64, unit string) (Value, error) {
	u, err := r.unit(unit)
	if err != nil {
		return Value{}, err
	}

	return Value{Dimension: u.dimension, Canonical: u.conv.ToCanonical(v)}, nil
}

// In reads q in unit, which must belong to q's dimension.
func (r *Registry) In(q Value, unit string) (float64, error) {
	u, err := r.unit(unit)
	if err != nil {
		return 0, err
	}

	if u.dimension != q.Dimension {
		return 0, &MismatchError{Op: "convert", Left: q.Dimension, Right: u.dimension}
	}

	return u.conv.FromCanonical(q.Canonical), nil
}

// Convert converts v from one unit to another of the same dimension.
func (r *Registry) Convert(v float64, from, to string) (float64, error) {
	q, err := r.New(v, from)
	if err != nil {
		return 0, err
	}

	return r.In(q, to)
}

// Add adds two values of the same dimension.
func (r *Registry) Add(a, b Value) (Value, error) {
	if a.Dimension != b.Dimension {
		return Value{}, &MismatchError{Op: "add", Left: a.Dimension, Right: b.Dimension}
	}

	return Value{Dimension: a.Dimension, Canonical: a.Canonical + b.Canonical}, nil
}

// Sub subtracts b from a; both must share a dimension.
func (r *Registry) Sub(a, b Value) (Value, error) {
	if a.Dimension != b.Dimension {
		return Value{}, &MismatchError{Op: "subtract", Left: a.Dimension, Right: b.Dimension}
	}

	return Value{Dimension: a.Dimension, Canonical: a.Canonical - b.Canonical}, nil
}

// Mul multiplies two values through the operation graph.
func (r *Registry) Mul(a, b Value) (Value, error) {
	return r.apply(a, OpMul, b)
}

// Div divides two values through the operation graph.
func (r *Registry) Div(a, b Value) (Value, error) {
	return r.apply(a, OpDiv, b)
}

func (r *Registry) apply(a Value, op Operator, b Value) (Value, error) {
	e, ok := r.edges[edgeKey{a.Dimension, op, b.Dimension}]
	if !ok {
		return Value{}, &NoOperationError{Left: a.Dimension, Op: op, Right: b.Dimension}
	}

	out := r.units[e.Unit]

	return Value{
		Dimension: e.Output,
		Canonical: out.conv.ToCanonical(op.Apply(a.Canonical, b.Canonical)),
	}, nil
}

// Format renders q with its dimension's canonical unit, e.g. "Length(5 Meters)".
func (r *Registry) Format(q Value) string {
	canonical := "?"
	if d, ok := r.dimensions[q.Dimension]; ok {
		canonical = d.Canonical()
	}

	return Format(q.Dimension, canonical, q.Canonical)
}
