// Package gen provides deterministic Go code generation for dimension
// packages.
//
// Generation approach uses text/template + go/format for readable,
// allocation-free Go code. For every resolved catalog it emits:
//   - one file per local dimension: identity marker, generic storage type,
//     constructors, same-dimension operators, edge methods and unit types
//   - one file per imported dimension that gains local units
//   - operations.go with edges rooted on imported dimensions, as functions
//   - registry.go wiring everything into a quantity.Registry
package gen
