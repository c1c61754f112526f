// Package aggregate runs the full pipeline: per-model extraction,
// interval construction, name resolution and sorting, followed by the
// cross-model merge into one tidy table and the axis/facet layout
// decision.
//
// Validation that does not need model data (axis-mode precondition,
// names coverage) runs before any extraction so misconfigured runs fail
// fast. Per-model work is independent and merged in a single
// deterministic order at the end: alphabetical by label when explicit
// names were supplied, input order otherwise.
package aggregate
