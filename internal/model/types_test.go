package model

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseSortOrder verifies parsing of all five orderings, case
// insensitivity, and rejection of unknown values.
func TestParseSortOrder(t *testing.T) {
	for _, valid := range []string{"natural", "normal", "alphabetical", "magnitude", "size"} {
		order, err := ParseSortOrder(valid)
		require.NoError(t, err)
		assert.True(t, order.IsValid())
	}

	order, err := ParseSortOrder("Magnitude")
	require.NoError(t, err)
	assert.Equal(t, SortMagnitude, order)

	_, err = ParseSortOrder("biggest")
	assert.Error(t, err)
}

// TestParseAxisMode verifies both axis modes parse, including the
// capitalized spellings, and unknown values are rejected.
func TestParseAxisMode(t *testing.T) {
	mode, err := ParseAxisMode("Coefficient")
	require.NoError(t, err)
	assert.Equal(t, ByCoefficient, mode)

	mode, err = ParseAxisMode("Model")
	require.NoError(t, err)
	assert.Equal(t, ByModel, mode)

	_, err = ParseAxisMode("facet")
	assert.Error(t, err)
}

// TestParseFacetScales verifies the four scale modes parse and unknown
// values are rejected.
func TestParseFacetScales(t *testing.T) {
	for _, valid := range []string{"fixed", "free", "free_x", "free_y"} {
		scales, err := ParseFacetScales(valid)
		require.NoError(t, err)
		assert.True(t, scales.IsValid())
	}

	_, err := ParseFacetScales("loose")
	assert.Error(t, err)
}

// TestPipelineError_ExitCodes verifies the kind-to-exit-code mapping and
// that unknown kinds fall back to the general error code.
func TestPipelineError_ExitCodes(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want ExitCode
	}{
		{KindUnsupportedModel, ExitUnsupportedModel},
		{KindNameCoverage, ExitNameCoverage},
		{KindInvalidAxisConfig, ExitInvalidAxisConfig},
		{KindBadConfig, ExitBadConfig},
		{KindSourceNotFound, ExitSourceNotFound},
		{ErrorKind("unknown"), ExitGeneralError},
	}

	for _, tt := range tests {
		err := NewPipelineError(tt.kind, "boom")
		assert.Equal(t, tt.want, err.ExitCode(), "kind %s", tt.kind)
	}
}

// TestPipelineError_Unwrap verifies error wrapping interoperates with
// the errors package and that IsKind sees through wrapping.
func TestPipelineError_Unwrap(t *testing.T) {
	underlying := errors.New("disk on fire")
	err := WrapPipelineError(KindSourceNotFound, "cannot read summary", underlying)

	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "cannot read summary")
	assert.Contains(t, err.Error(), "disk on fire")

	wrapped := fmt.Errorf("while loading: %w", err)
	assert.True(t, IsKind(wrapped, KindSourceNotFound))
	assert.False(t, IsKind(wrapped, KindBadConfig))
}

// TestModelEntry_Valid verifies the at-least-one-usable-coefficient rule
// the drop option relies on.
func TestModelEntry_Valid(t *testing.T) {
	coeff := func(estimate float64) DisplayCoefficient {
		return DisplayCoefficient{IntervalCoefficient: IntervalCoefficient{
			RawCoefficient: RawCoefficient{Name: "x", Estimate: estimate},
		}}
	}

	empty := ModelEntry{ID: "m"}
	assert.False(t, empty.Valid(), "no coefficients at all")

	allNaN := ModelEntry{ID: "m", Coefficients: []DisplayCoefficient{coeff(math.NaN())}}
	assert.False(t, allNaN.Valid(), "all estimates missing")

	mixed := ModelEntry{ID: "m", Coefficients: []DisplayCoefficient{coeff(math.NaN()), coeff(2)}}
	assert.True(t, mixed.Valid(), "one usable estimate suffices")
}

// TestTidyTable_DistinctHelpers verifies first-appearance ordering of
// the distinct-name helpers.
func TestTidyTable_DistinctHelpers(t *testing.T) {
	table := TidyTable{
		{DisplayCoefficient: DisplayCoefficient{DisplayName: "b"}, ModelLabel: "m2"},
		{DisplayCoefficient: DisplayCoefficient{DisplayName: "a"}, ModelLabel: "m1"},
		{DisplayCoefficient: DisplayCoefficient{DisplayName: "b"}, ModelLabel: "m1"},
	}

	assert.Equal(t, []string{"b", "a"}, table.DisplayNames())
	assert.Equal(t, []string{"m2", "m1"}, table.ModelLabels())
}
