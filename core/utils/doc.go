// Package utils provides type coercion helpers for loosely typed
// document fields.
//
// Guest and seating documents were historically written by several
// front-ends without schema validation, so the same field may arrive as
// an int, a float, or a numeric string. The merge-style update paths
// funnel every dynamic value through these helpers instead of repeating
// ad hoc conversions at each call site.
package utils
