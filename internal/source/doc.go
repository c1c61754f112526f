// Package source defines the model-input capability and the coefficient
// extractor.
//
// A fitted model is opaque to the pipeline except for one capability:
// reporting its coefficients as ordered (name, estimate, standard error)
// triples. The Source interface captures that capability; one
// implementation exists per supported model family, and the aggregator
// never sees the concrete family.
//
// Two implementations ship with the package: Fixed (in-memory slices,
// used by library callers and tests) and Summary (a JSONC model-summary
// file, the CLI's input format).
package source
