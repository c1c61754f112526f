package interval

import "github.com/mmr-tortoise/coefplot/internal/model"

// Build attaches inner and outer confidence bounds to each raw
// coefficient. Bounds are estimate ± multiplier×stdErr; a multiplier of
// exactly 0 yields an absent (nil) tier.
//
// Build never fails: negative estimates and zero standard errors are
// legitimate inputs, and the output has the same order and cardinality
// as the input.
func Build(coeffs []model.RawCoefficient, innerCI, outerCI float64) []model.IntervalCoefficient {
	out := make([]model.IntervalCoefficient, len(coeffs))
	for i, c := range coeffs {
		out[i] = model.IntervalCoefficient{
			RawCoefficient: c,
			Inner:          bound(c, innerCI),
			Outer:          bound(c, outerCI),
		}
	}
	return out
}

// bound computes one tier, or nil when the multiplier is zero.
func bound(c model.RawCoefficient, multiplier float64) *model.Bound {
	if multiplier == 0 {
		return nil
	}
	delta := multiplier * c.StdErr
	return &model.Bound{Low: c.Estimate - delta, High: c.Estimate + delta}
}
