package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/coefplot/internal/config"
	"github.com/mmr-tortoise/coefplot/internal/model"
)

// coeffs builds IntervalCoefficients with just names, which is all the
// resolver inspects besides configuration.
func coeffs(names ...string) []model.IntervalCoefficient {
	out := make([]model.IntervalCoefficient, len(names))
	for i, n := range names {
		out[i] = model.IntervalCoefficient{RawCoefficient: model.RawCoefficient{Name: n, Estimate: 1, StdErr: 1}}
	}
	return out
}

func names(resolved []model.DisplayCoefficient) []string {
	out := make([]string, len(resolved))
	for i := range resolved {
		out[i] = resolved[i].DisplayName
	}
	return out
}

// TestResolve_InterceptThenVariables verifies the documented processing
// order: the intercept drop runs first, then the exact-name allow-list.
// Given {"(Intercept)", "carat", "colorE"} with intercept off and
// variables=["carat"], exactly one row survives.
func TestResolve_InterceptThenVariables(t *testing.T) {
	cfg := config.Default()
	cfg.Intercept = false
	cfg.Variables = []string{"carat"}

	out := Resolve(coeffs("(Intercept)", "carat", "colorE"), cfg)

	require.Len(t, out, 1)
	assert.Equal(t, "carat", out[0].DisplayName)
}

// TestResolve_InterceptKeptByDefault verifies that the default
// configuration keeps the intercept row.
func TestResolve_InterceptKeptByDefault(t *testing.T) {
	out := Resolve(coeffs("(Intercept)", "carat"), config.Default())
	assert.Equal(t, []string{"(Intercept)", "carat"}, names(out))
}

// TestResolve_CustomInterceptName verifies that intercept exclusion
// matches the configured intercept name, not a hardcoded one.
func TestResolve_CustomInterceptName(t *testing.T) {
	cfg := config.Default()
	cfg.Intercept = false
	cfg.InterceptName = "const"

	out := Resolve(coeffs("const", "(Intercept)", "x"), cfg)
	assert.Equal(t, []string{"(Intercept)", "x"}, names(out))
}

// TestResolve_VariablesPrecedenceOverFactors verifies that an exact-name
// allow-list takes precedence over the factor rule: factors are ignored
// when variables is set.
func TestResolve_VariablesPrecedenceOverFactors(t *testing.T) {
	cfg := config.Default()
	cfg.Variables = []string{"carat"}
	cfg.Factors = []string{"cut"}

	out := Resolve(coeffs("carat", "cutGood", "cutIdeal"), cfg)
	assert.Equal(t, []string{"carat"}, names(out))
}

// TestResolve_FactorsIncludeInteractions verifies that with only=false
// the factor rule keeps both pure factor levels and interaction terms
// involving the factor.
func TestResolve_FactorsIncludeInteractions(t *testing.T) {
	cfg := config.Default()
	cfg.Factors = []string{"cut"}

	out := Resolve(coeffs("carat", "cutGood", "carat:cutGood", "depth"), cfg)
	assert.Equal(t, []string{"cutGood", "carat:cutGood"}, names(out))
}

// TestResolve_FactorsOnlyExcludesInteractions verifies that only=true
// keeps pure factor terms and drops interaction terms involving the
// factor.
func TestResolve_FactorsOnlyExcludesInteractions(t *testing.T) {
	cfg := config.Default()
	cfg.Factors = []string{"cut"}
	cfg.Only = true

	out := Resolve(coeffs("carat", "cutGood", "carat:cutGood", "cutIdeal"), cfg)
	assert.Equal(t, []string{"cutGood", "cutIdeal"}, names(out))
}

// TestResolve_ShortenAll verifies that shorten=true strips the factor
// prefix from every level of the known factors, while the bare factor
// stem and unrelated variables keep their names.
func TestResolve_ShortenAll(t *testing.T) {
	cfg := config.Default()
	cfg.Factors = []string{"cut"}
	cfg.Shorten = config.ShortenRule{All: true}

	out := Resolve(coeffs("cutGood", "cutIdeal", "carat:cutGood"), cfg)
	assert.Equal(t, []string{"Good", "Ideal", "carat:Good"}, names(out))
}

// TestResolve_ShortenListed verifies that a shorten list limits prefix
// stripping to the listed stems only.
func TestResolve_ShortenListed(t *testing.T) {
	cfg := config.Default()
	cfg.Factors = []string{"cut", "color"}
	cfg.Shorten = config.ShortenRule{Stems: []string{"color"}}

	out := Resolve(coeffs("cutGood", "colorE"), cfg)
	assert.Equal(t, []string{"cutGood", "E"}, names(out))
}

// TestResolve_NewNamesAfterFiltering verifies that newNames is a final
// display-only substitution: it rewrites surviving labels and cannot
// resurrect filtered coefficients.
func TestResolve_NewNamesAfterFiltering(t *testing.T) {
	cfg := config.Default()
	cfg.Variables = []string{"carat"}
	cfg.NewNames = map[string]string{
		"carat":  "Carat weight",
		"colorE": "Color E", // filtered out; rename must not bring it back
	}

	out := Resolve(coeffs("carat", "colorE"), cfg)
	require.Len(t, out, 1)
	assert.Equal(t, "Carat weight", out[0].DisplayName)
	assert.Equal(t, "carat", out[0].Name, "raw name is preserved")
}

// TestResolve_NewNamesAppliesToShortenedLabel verifies that a newNames
// key may target the shortened label as well as the raw name.
func TestResolve_NewNamesAppliesToShortenedLabel(t *testing.T) {
	cfg := config.Default()
	cfg.Factors = []string{"cut"}
	cfg.Shorten = config.ShortenRule{All: true}
	cfg.NewNames = map[string]string{"Good": "Good cut"}

	out := Resolve(coeffs("cutGood"), cfg)
	require.Len(t, out, 1)
	assert.Equal(t, "Good cut", out[0].DisplayName)
}

// TestResolve_EmptyResultIsValid verifies that filtering everything away
// returns an empty slice, not an error or nil panic.
func TestResolve_EmptyResultIsValid(t *testing.T) {
	cfg := config.Default()
	cfg.Variables = []string{"nonexistent"}

	out := Resolve(coeffs("carat", "depth"), cfg)
	assert.Empty(t, out)
}

// TestSuggest verifies closest-match selection and the plausibility
// cutoff: close typos get a suggestion, distant strings get none.
func TestSuggest(t *testing.T) {
	known := []string{"carat", "depth", "cutGood"}

	assert.Equal(t, "carat", Suggest("caret", known))
	assert.Equal(t, "cutGood", Suggest("cutgood", known))
	assert.Equal(t, "", Suggest("zzzzzzzzzz", known), "distant strings get no suggestion")
}

// TestUnmatched verifies that only configured names absent from every
// model are reported, each with its suggestion.
func TestUnmatched(t *testing.T) {
	raw := []string{"(Intercept)", "carat", "colorE"}

	out := Unmatched([]string{"carat", "caret", "price"}, raw)
	require.Len(t, out, 2)
	assert.Equal(t, "carat", out["caret"])
	assert.Contains(t, out, "price")

	assert.Nil(t, Unmatched(nil, raw), "no configured names, nothing to report")
}
