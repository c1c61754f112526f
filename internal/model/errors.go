// errors.go defines the pipeline error taxonomy and the exit codes the
// CLI maps them to.
//
// All three fatal conditions are validation failures that surface before
// or during aggregation: a model that cannot report coefficients, an
// explicit name mapping that misses a model, and a model-indexed axis
// request without exactly one selected variable. Empty per-model results
// are deliberately NOT errors — they are valid states handled by the drop
// option.
package model

import (
	"errors"
	"fmt"
)

// ExitCode defines the CLI process exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitSourceNotFound indicates a model summary file was missing
	// or unreadable.
	ExitSourceNotFound ExitCode = 2

	// ExitUnsupportedModel indicates a model argument cannot report
	// coefficients and standard errors.
	ExitUnsupportedModel ExitCode = 3

	// ExitNameCoverage indicates the explicit names mapping omits at
	// least one model identifier.
	ExitNameCoverage ExitCode = 4

	// ExitInvalidAxisConfig indicates the model-indexed axis mode was
	// requested without exactly one selected variable.
	ExitInvalidAxisConfig ExitCode = 5

	// ExitBadConfig indicates the plot configuration failed validation.
	ExitBadConfig ExitCode = 6
)

// ErrorKind classifies a PipelineError for errors.Is-style matching
// without string inspection.
type ErrorKind string

const (
	// KindUnsupportedModel marks models that cannot report estimates
	// and standard errors.
	KindUnsupportedModel ErrorKind = "unsupported-model"

	// KindNameCoverage marks an explicit names mapping that does not
	// cover every model identifier.
	KindNameCoverage ErrorKind = "name-coverage"

	// KindInvalidAxisConfig marks a model-indexed axis request with a
	// selected-variable count other than one.
	KindInvalidAxisConfig ErrorKind = "invalid-axis-config"

	// KindBadConfig marks configuration values that fail validation.
	KindBadConfig ErrorKind = "bad-config"

	// KindSourceNotFound marks missing or unreadable model input files.
	KindSourceNotFound ErrorKind = "source-not-found"
)

// exitCodes maps each error kind to its CLI exit code.
var exitCodes = map[ErrorKind]ExitCode{
	KindUnsupportedModel:  ExitUnsupportedModel,
	KindNameCoverage:      ExitNameCoverage,
	KindInvalidAxisConfig: ExitInvalidAxisConfig,
	KindBadConfig:         ExitBadConfig,
	KindSourceNotFound:    ExitSourceNotFound,
}

// PipelineError is the error type produced by pipeline validation and
// extraction. It carries a kind for programmatic matching and an exit
// code for the CLI layer.
type PipelineError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// message, optionally including the underlying error.
func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// ExitCode returns the CLI exit code for this error's kind.
func (e *PipelineError) ExitCode() ExitCode {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return ExitGeneralError
}

// NewPipelineError creates a PipelineError with the given kind and
// formatted message.
func NewPipelineError(kind ErrorKind, format string, args ...interface{}) *PipelineError {
	return &PipelineError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapPipelineError creates a PipelineError that wraps an existing error.
func WrapPipelineError(kind ErrorKind, message string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Message: message, Err: err}
}

// IsKind reports whether err is, or wraps, a *PipelineError of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *PipelineError
	return errors.As(err, &pe) && pe.Kind == kind
}
