package sorting

import (
	"math"
	"sort"

	"github.com/mmr-tortoise/coefplot/internal/model"
)

// Sort reorders one model's coefficients in place according to the
// selected policy. Ties keep their extraction order; decreasing reverses
// the chosen order (including natural order, which becomes a plain
// reversal).
func Sort(coeffs []model.DisplayCoefficient, order model.SortOrder, decreasing bool) {
	less := lessFunc(coeffs, order)
	if less == nil {
		// Natural order: nothing to sort, but decreasing still reverses.
		if decreasing {
			reverse(coeffs)
		}
		return
	}

	if decreasing {
		// Swapping the arguments reverses the order while keeping the
		// comparison a strict weak ordering, so stable ties still fall
		// back to extraction order.
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(coeffs, less)
}

// lessFunc returns the comparison for the given policy, or nil for
// natural order.
func lessFunc(coeffs []model.DisplayCoefficient, order model.SortOrder) func(i, j int) bool {
	switch order {
	case model.SortNormal, model.SortAlphabetical:
		return func(i, j int) bool {
			return coeffs[i].DisplayName < coeffs[j].DisplayName
		}
	case model.SortMagnitude, model.SortSize:
		return func(i, j int) bool {
			return math.Abs(coeffs[i].Estimate) < math.Abs(coeffs[j].Estimate)
		}
	default:
		return nil
	}
}

func reverse(coeffs []model.DisplayCoefficient) {
	for i, j := 0, len(coeffs)-1; i < j; i, j = i+1, j-1 {
		coeffs[i], coeffs[j] = coeffs[j], coeffs[i]
	}
}
