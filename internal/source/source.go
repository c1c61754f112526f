package source

import (
	"math"

	"github.com/mmr-tortoise/coefplot/internal/model"
)

// Source is the capability a fitted model must expose to participate in
// aggregation: its coefficients in the model's native reporting order.
type Source interface {
	// Coefficients returns the model's estimated coefficients, one per
	// reported variable, in reporting order. Implementations return an
	// error when the underlying model cannot report estimates or
	// standard errors.
	Coefficients() ([]model.RawCoefficient, error)
}

// Extract pulls the coefficient table out of a source and validates the
// per-model contract: names unique within the model, standard errors
// non-negative.
//
// Returns a PipelineError with KindUnsupportedModel when the source
// fails to report or violates the contract. The id parameter is only
// used to attribute errors to a model.
func Extract(id string, src Source) ([]model.RawCoefficient, error) {
	if src == nil {
		return nil, model.NewPipelineError(model.KindUnsupportedModel,
			"model %s: no coefficient source provided", id)
	}

	coeffs, err := src.Coefficients()
	if err != nil {
		return nil, model.WrapPipelineError(model.KindUnsupportedModel,
			"model "+id+": cannot report coefficients", err)
	}

	seen := make(map[string]bool, len(coeffs))
	for i := range coeffs {
		c := &coeffs[i]
		if c.Name == "" {
			return nil, model.NewPipelineError(model.KindUnsupportedModel,
				"model %s: coefficient %d has an empty variable name", id, i)
		}
		if seen[c.Name] {
			return nil, model.NewPipelineError(model.KindUnsupportedModel,
				"model %s: duplicate coefficient %q", id, c.Name)
		}
		seen[c.Name] = true
		// Negative standard errors are a reporting bug in the source;
		// NaN estimates are allowed (the drop option handles them).
		if c.StdErr < 0 || math.IsNaN(c.StdErr) {
			return nil, model.NewPipelineError(model.KindUnsupportedModel,
				"model %s: coefficient %q has invalid standard error %v", id, c.Name, c.StdErr)
		}
	}

	return coeffs, nil
}

// Fixed is an in-memory Source backed by a pre-built coefficient slice.
// This is the implementation library callers and tests use when the
// coefficients are already at hand.
type Fixed struct {
	coeffs []model.RawCoefficient
}

// NewFixed builds a Fixed source from parallel name/estimate/stderr
// slices, the shape most fitting code produces. The slices must be
// aligned 1:1.
func NewFixed(names []string, estimates, stdErrs []float64) (*Fixed, error) {
	if len(names) != len(estimates) || len(names) != len(stdErrs) {
		return nil, model.NewPipelineError(model.KindUnsupportedModel,
			"misaligned coefficient report: %d names, %d estimates, %d standard errors",
			len(names), len(estimates), len(stdErrs))
	}
	coeffs := make([]model.RawCoefficient, len(names))
	for i := range names {
		coeffs[i] = model.RawCoefficient{Name: names[i], Estimate: estimates[i], StdErr: stdErrs[i]}
	}
	return &Fixed{coeffs: coeffs}, nil
}

// FromCoefficients wraps an existing coefficient slice as a Source
// without copying.
func FromCoefficients(coeffs []model.RawCoefficient) *Fixed {
	return &Fixed{coeffs: coeffs}
}

// Coefficients implements Source.
func (f *Fixed) Coefficients() ([]model.RawCoefficient, error) {
	return f.coeffs, nil
}
