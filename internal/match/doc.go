// Package match provides identifier normalization and edit-distance ranking
// used to suggest the intended dimension or unit when a schema references an
// unknown name.
//
// Key functions:
//   - NormalizeIdent: folds "meters_per_second" and "MetersPerSecond" together
//   - Levenshtein: edit distance between two strings
//   - Suggest: closest known names for an unknown one
//   - SnakeCase: file names for generated code
package match
