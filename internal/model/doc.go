// Package model defines the domain types and value objects for the
// coefplot pipeline.
//
// This package contains pure data structures with no external dependencies.
// All entities (RawCoefficient, IntervalCoefficient, DisplayCoefficient,
// ModelEntry, TidyTable, Layout) are built once per invocation from
// immutable model inputs and configuration — nothing is mutated after the
// tidy table is produced; the rendering layer only reads it.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (PipelineError) that carries exit codes for proper OS process exit
// handling, plus the string enums (SortOrder, AxisMode, FacetScales) used
// throughout the configuration surface.
package model
