// Package plan provides the resolution pipeline that turns a schema.File into
// a validated Catalog consumed by code generation.
//
// Resolution pipeline:
//  1. Resolve imported schemas into catalogs and expose their dimensions
//  2. Declare local dimensions and units, compute linear factors and
//     affine expressions
//  3. Order derived units (of/factor) topologically and compute their factors
//  4. Check canonical units (exists, ratio 1, unique)
//  5. Resolve operation-graph edges and check base-dimension signatures
//  6. Check generated identifiers for collisions
//  7. Emit diagnostics (errors, warnings, missing inverses as infos)
//
// The operation graph is also exposed as a gonum multigraph for DOT export
// and reachability queries.
package plan
