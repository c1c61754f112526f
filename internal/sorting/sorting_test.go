package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmr-tortoise/coefplot/internal/model"
)

// coeff builds a DisplayCoefficient with the given name and estimate.
func coeff(name string, estimate float64) model.DisplayCoefficient {
	return model.DisplayCoefficient{
		IntervalCoefficient: model.IntervalCoefficient{
			RawCoefficient: model.RawCoefficient{Name: name, Estimate: estimate, StdErr: 1},
		},
		DisplayName: name,
	}
}

func order(coeffs []model.DisplayCoefficient) []string {
	out := make([]string, len(coeffs))
	for i := range coeffs {
		out[i] = coeffs[i].DisplayName
	}
	return out
}

// TestSort_MagnitudeDecreasing verifies the canonical magnitude case:
// estimates {A: -5, B: 2, C: -1} sorted by decreasing absolute value
// yield [A, B, C].
func TestSort_MagnitudeDecreasing(t *testing.T) {
	coeffs := []model.DisplayCoefficient{coeff("B", 2), coeff("C", -1), coeff("A", -5)}

	Sort(coeffs, model.SortMagnitude, true)

	assert.Equal(t, []string{"A", "B", "C"}, order(coeffs))
}

// TestSort_Alphabetical verifies lexicographic ordering on display name
// regardless of estimates.
func TestSort_Alphabetical(t *testing.T) {
	coeffs := []model.DisplayCoefficient{coeff("C", -1), coeff("A", -5), coeff("B", 2)}

	Sort(coeffs, model.SortAlphabetical, false)

	assert.Equal(t, []string{"A", "B", "C"}, order(coeffs))
}

// TestSort_NormalAliasesAlphabetical verifies that normal is the same
// lexicographic ordering as alphabetical.
func TestSort_NormalAliasesAlphabetical(t *testing.T) {
	coeffs := []model.DisplayCoefficient{coeff("b", 1), coeff("a", 2)}

	Sort(coeffs, model.SortNormal, false)

	assert.Equal(t, []string{"a", "b"}, order(coeffs))
}

// TestSort_NaturalPreservesOrder verifies that natural order leaves the
// extraction order untouched.
func TestSort_NaturalPreservesOrder(t *testing.T) {
	coeffs := []model.DisplayCoefficient{coeff("z", 1), coeff("a", 9), coeff("m", -3)}

	Sort(coeffs, model.SortNatural, false)

	assert.Equal(t, []string{"z", "a", "m"}, order(coeffs))
}

// TestSort_NaturalDecreasing verifies that decreasing natural order is a
// plain reversal of extraction order.
func TestSort_NaturalDecreasing(t *testing.T) {
	coeffs := []model.DisplayCoefficient{coeff("z", 1), coeff("a", 9), coeff("m", -3)}

	Sort(coeffs, model.SortNatural, true)

	assert.Equal(t, []string{"m", "a", "z"}, order(coeffs))
}

// TestSort_StableTieBreak verifies that equal keys keep extraction
// order, in both directions.
func TestSort_StableTieBreak(t *testing.T) {
	coeffs := []model.DisplayCoefficient{coeff("first", 2), coeff("second", -2), coeff("third", 2)}

	Sort(coeffs, model.SortMagnitude, false)
	assert.Equal(t, []string{"first", "second", "third"}, order(coeffs),
		"all magnitudes equal: extraction order is the tie-break")

	Sort(coeffs, model.SortMagnitude, true)
	assert.Equal(t, []string{"first", "second", "third"}, order(coeffs),
		"decreasing must not reorder ties")
}

// TestSort_SizeAliasesMagnitude verifies that size is the same ordering
// as magnitude.
func TestSort_SizeAliasesMagnitude(t *testing.T) {
	coeffs := []model.DisplayCoefficient{coeff("big", -10), coeff("small", 1)}

	Sort(coeffs, model.SortSize, false)

	assert.Equal(t, []string{"small", "big"}, order(coeffs))
}
