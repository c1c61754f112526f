package source

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/coefplot/internal/model"
)

// writeSummary writes a summary file into a temp dir and returns its path.
func writeSummary(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadSummary_JSONC verifies that summary files may carry comments
// and trailing commas, which are stripped before parsing.
func TestLoadSummary_JSONC(t *testing.T) {
	path := writeSummary(t, "model.jsonc", `{
		// diamonds regression, exported 2026-08-12
		"name": "ols1",
		"model": "lm(price ~ carat + cut)",
		"coefficients": [
			{"term": "(Intercept)", "estimate": -2756.2, "stdError": 19.1},
			{"term": "carat", "estimate": 7871.1, "stdError": 13.9}, /* main effect */
		],
	}`)

	summary, err := LoadSummary(path)
	require.NoError(t, err)

	assert.Equal(t, "ols1", summary.Name)
	assert.Equal(t, "lm(price ~ carat + cut)", summary.Model)

	coeffs, err := summary.Coefficients()
	require.NoError(t, err)
	require.Len(t, coeffs, 2)
	assert.Equal(t, "(Intercept)", coeffs[0].Name)
	assert.Equal(t, -2756.2, coeffs[0].Estimate)
	assert.Equal(t, "carat", coeffs[1].Name)
	assert.Equal(t, 13.9, coeffs[1].StdErr)
}

// TestLoadSummary_NotFound verifies the missing-file error carries the
// source-not-found kind for exit-code mapping.
func TestLoadSummary_NotFound(t *testing.T) {
	_, err := LoadSummary(filepath.Join(t.TempDir(), "missing.jsonc"))

	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindSourceNotFound))
}

// TestLoadSummary_MissingStdError verifies that a coefficient without a
// standard error makes the model unsupported: the capability contract
// requires estimates and standard errors aligned 1:1 with names.
func TestLoadSummary_MissingStdError(t *testing.T) {
	path := writeSummary(t, "bad.jsonc", `{
		"coefficients": [{"term": "carat", "estimate": 7871.1}]
	}`)

	_, err := LoadSummary(path)

	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindUnsupportedModel))
	assert.Contains(t, err.Error(), "carat")
}

// TestLoadSummary_NoCoefficients verifies that an empty coefficient
// table is rejected at load time.
func TestLoadSummary_NoCoefficients(t *testing.T) {
	path := writeSummary(t, "empty.jsonc", `{"model": "lm(y ~ 1)", "coefficients": []}`)

	_, err := LoadSummary(path)

	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindUnsupportedModel))
}

// TestExtract_DuplicateNames verifies that duplicate coefficients from
// one model are treated as a contract violation.
func TestExtract_DuplicateNames(t *testing.T) {
	src := FromCoefficients([]model.RawCoefficient{
		{Name: "carat", Estimate: 1, StdErr: 1},
		{Name: "carat", Estimate: 2, StdErr: 1},
	})

	_, err := Extract("Model1", src)

	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindUnsupportedModel))
	assert.Contains(t, err.Error(), "duplicate")
}

// TestExtract_NegativeStdErr verifies that a negative standard error is
// rejected as an unsupported model.
func TestExtract_NegativeStdErr(t *testing.T) {
	src := FromCoefficients([]model.RawCoefficient{{Name: "carat", Estimate: 1, StdErr: -0.5}})

	_, err := Extract("Model1", src)

	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindUnsupportedModel))
}

// TestExtract_NaNEstimateAllowed verifies that NaN estimates pass
// extraction; they are a matter for the drop option, not an error.
func TestExtract_NaNEstimateAllowed(t *testing.T) {
	src := FromCoefficients([]model.RawCoefficient{{Name: "aliased", Estimate: math.NaN(), StdErr: 0}})

	coeffs, err := Extract("Model1", src)

	require.NoError(t, err)
	require.Len(t, coeffs, 1)
	assert.True(t, math.IsNaN(coeffs[0].Estimate))
}

// TestExtract_NilSource verifies the nil-source guard.
func TestExtract_NilSource(t *testing.T) {
	_, err := Extract("Model1", nil)

	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindUnsupportedModel))
}

// TestNewFixed_Misaligned verifies that misaligned report slices are
// rejected.
func TestNewFixed_Misaligned(t *testing.T) {
	_, err := NewFixed([]string{"a", "b"}, []float64{1}, []float64{1, 2})

	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindUnsupportedModel))
}

// TestNewFixed_ReportingOrder verifies that the fixed source preserves
// the order the caller supplied, which stands in for the model's native
// reporting order.
func TestNewFixed_ReportingOrder(t *testing.T) {
	src, err := NewFixed([]string{"z", "a"}, []float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)

	coeffs, err := src.Coefficients()
	require.NoError(t, err)
	assert.Equal(t, "z", coeffs[0].Name)
	assert.Equal(t, "a", coeffs[1].Name)
}
