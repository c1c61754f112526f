// suggest.go offers closest-match suggestions for configured variable
// names that match nothing in any model. Selecting "caret" instead of
// "carat" silently yields an empty plot, so the CLI surfaces a
// "did you mean" hint instead of leaving the user to diff name lists.
package naming

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance still considered a
// plausible typo. Beyond this, no suggestion is offered.
const maxSuggestDistance = 3

// Suggest returns the known name closest to unknown, or "" when nothing
// is within a plausible typo distance. Comparison is case-insensitive;
// the returned name keeps its original casing.
func Suggest(unknown string, known []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, candidate := range known {
		dist := levenshtein.ComputeDistance(strings.ToLower(unknown), strings.ToLower(candidate))
		if dist < bestDist {
			bestDist = dist
			best = candidate
		}
	}
	return best
}

// Unmatched returns the configured names that match no raw variable name
// in any model, paired with their closest suggestions via Suggest.
//
// The result maps unknown name → suggestion ("" when none). Matching
// uses raw names because that is what the variables allow-list and the
// factor rules filter on.
func Unmatched(configured []string, rawNames []string) map[string]string {
	if len(configured) == 0 {
		return nil
	}
	present := make(map[string]bool, len(rawNames))
	for _, n := range rawNames {
		present[n] = true
	}

	var out map[string]string
	for _, name := range configured {
		if present[name] {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[name] = Suggest(name, rawNames)
	}
	return out
}
