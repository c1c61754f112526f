// summary.go implements the Source capability for model summary files.
//
// A summary file is the coefficient table of one fitted model, exported
// by whatever tool fit it. The format is JSONC (JSON with Comments) so
// analysts can annotate exported summaries; comments and trailing commas
// are stripped with github.com/tidwall/jsonc before parsing with the
// standard encoding/json library.
//
// Example:
//
//	{
//	  // price regressed on carat and cut, diamonds data
//	  "name": "ols1",
//	  "model": "lm(price ~ carat + cut)",
//	  "coefficients": [
//	    {"term": "(Intercept)", "estimate": -2756.2, "stdError": 19.1},
//	    {"term": "carat", "estimate": 7871.1, "stdError": 13.9},
//	  ]
//	}
package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/coefplot/internal/model"
)

// Summary is a parsed model summary file. It implements Source.
type Summary struct {
	// Name is an optional stable identifier for the model. When absent
	// the aggregator synthesizes one from input position.
	Name string `json:"name,omitempty"`

	// Model is an optional human-readable description of the fitted
	// model, typically the fitting expression. Used as the default
	// display label.
	Model string `json:"model,omitempty"`

	// Family is an optional model family tag ("lm", "glm", …). Purely
	// informational; extraction does not branch on it.
	Family string `json:"family,omitempty"`

	// CoefficientRows is the ordered coefficient table.
	CoefficientRows []SummaryCoefficient `json:"coefficients"`
}

// SummaryCoefficient is one row of a summary file's coefficient table.
// Estimate and StdError are pointers so a missing field is
// distinguishable from an explicit zero.
type SummaryCoefficient struct {
	// Term is the variable name as the fitting tool reports it.
	Term string `json:"term"`

	// Estimate is the point estimate. Required.
	Estimate *float64 `json:"estimate"`

	// StdError is the standard error of the estimate. Required.
	StdError *float64 `json:"stdError"`
}

// LoadSummary reads and parses a model summary file.
//
// Returns a PipelineError with KindSourceNotFound when the file does not
// exist, and KindUnsupportedModel when it exists but is not a usable
// coefficient report (malformed JSON, no coefficients, missing
// estimate/stdError fields).
func LoadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapPipelineError(model.KindSourceNotFound,
				fmt.Sprintf("model summary not found: %s", path), err)
		}
		return nil, model.WrapPipelineError(model.KindSourceNotFound,
			fmt.Sprintf("cannot read model summary %s", path), err)
	}

	// Strip JSONC comments and trailing commas before parsing.
	cleanJSON := jsonc.ToJSON(data)

	var summary Summary
	if err := json.Unmarshal(cleanJSON, &summary); err != nil {
		return nil, model.WrapPipelineError(model.KindUnsupportedModel,
			fmt.Sprintf("cannot parse model summary %s", path), err)
	}

	if len(summary.CoefficientRows) == 0 {
		return nil, model.NewPipelineError(model.KindUnsupportedModel,
			"model summary %s reports no coefficients", path)
	}
	for i, c := range summary.CoefficientRows {
		if c.Term == "" {
			return nil, model.NewPipelineError(model.KindUnsupportedModel,
				"model summary %s: coefficient %d has no term name", path, i)
		}
		if c.Estimate == nil {
			return nil, model.NewPipelineError(model.KindUnsupportedModel,
				"model summary %s: coefficient %q has no estimate", path, c.Term)
		}
		if c.StdError == nil {
			return nil, model.NewPipelineError(model.KindUnsupportedModel,
				"model summary %s: coefficient %q has no standard error", path, c.Term)
		}
	}

	return &summary, nil
}

// Coefficients implements Source. The order is the file's row order,
// which stands in for the model's native reporting order.
func (s *Summary) Coefficients() ([]model.RawCoefficient, error) {
	coeffs := make([]model.RawCoefficient, len(s.CoefficientRows))
	for i, c := range s.CoefficientRows {
		if c.Estimate == nil || c.StdError == nil {
			return nil, fmt.Errorf("coefficient %q is missing estimate or standard error", c.Term)
		}
		coeffs[i] = model.RawCoefficient{Name: c.Term, Estimate: *c.Estimate, StdErr: *c.StdError}
	}
	return coeffs, nil
}
