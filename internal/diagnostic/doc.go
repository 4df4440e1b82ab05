// Package diagnostic provides structured errors, warnings and infos produced
// while validating a dimension schema.
//
// Key capabilities:
//   - Stable codes per problem (unknown_unit, duplicate_canonical, ...)
//   - Location by dimension and subject (unit or operation)
//   - "did you mean" suggestions for misspelled references
//   - A combined error for callers that only need pass/fail
package diagnostic
