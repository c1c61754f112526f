// Package config defines the plot configuration surface: every knob the
// aggregation pipeline and the rendering layer accept, with defaults,
// YAML file loading, and validation.
//
// The configuration is deliberately one flat struct shared by all
// pipeline stages. Fields the pipeline interprets (intercept rules,
// filters, sort, axis mode, drop) sit next to fields that are passed
// through untouched to rendering (colors, line weights, angles); the
// pipeline never reads the pass-through fields.
package config
