package naming

import (
	"strings"

	"github.com/mmr-tortoise/coefplot/internal/config"
	"github.com/mmr-tortoise/coefplot/internal/model"
)

// interactionSep separates the components of an interaction term, as in
// "carat:cutGood".
const interactionSep = ":"

// Resolve applies intercept exclusion, variable/factor filtering, and
// shortening/renaming to one model's coefficients. The returned slice
// preserves input order; cardinality may shrink. ModelID is left empty
// for the aggregator to fill in.
func Resolve(coeffs []model.IntervalCoefficient, cfg *config.PlotConfig) []model.DisplayCoefficient {
	out := make([]model.DisplayCoefficient, 0, len(coeffs))
	for _, c := range coeffs {
		if !cfg.Intercept && c.Name == cfg.InterceptName {
			continue
		}
		if !keep(c.Name, cfg) {
			continue
		}
		out = append(out, model.DisplayCoefficient{
			IntervalCoefficient: c,
			DisplayName:         displayName(c.Name, cfg),
		})
	}
	return out
}

// keep applies the variable and factor selection rules to a raw variable
// name. The exact-name allow-list wins over the factor rule.
func keep(name string, cfg *config.PlotConfig) bool {
	if len(cfg.Variables) > 0 {
		for _, v := range cfg.Variables {
			if name == v {
				return true
			}
		}
		return false
	}

	if len(cfg.Factors) > 0 {
		return matchesFactors(name, cfg.Factors, cfg.Only)
	}

	return true
}

// matchesFactors reports whether a coefficient belongs to one of the
// selected factors. A coefficient belongs to factor f when any component
// of its (possibly interaction) term has f as its stem. With only set,
// interaction terms are excluded: the coefficient must be a pure term of
// a selected factor.
func matchesFactors(name string, factors []string, only bool) bool {
	components := strings.Split(name, interactionSep)

	involved := false
	for _, component := range components {
		for _, f := range factors {
			if hasStem(component, f) {
				involved = true
				break
			}
		}
	}
	if !involved {
		return false
	}
	if only && len(components) > 1 {
		return false
	}
	return true
}

// hasStem reports whether a term component is the factor itself or one
// of its levels ("cut", "cutGood" for factor "cut").
func hasStem(component, factor string) bool {
	return component == factor || strings.HasPrefix(component, factor)
}

// displayName rewrites a raw variable name into its display label:
// factor-level prefixes stripped per the shorten rule, then the newNames
// substitution.
func displayName(name string, cfg *config.PlotConfig) string {
	label := name
	if cfg.Shorten.Active() {
		label = shorten(label, cfg)
	}
	if renamed, ok := cfg.NewNames[label]; ok {
		return renamed
	}
	// newNames keyed by the raw name also applies, so callers can rename
	// without knowing what shortening produced.
	if renamed, ok := cfg.NewNames[name]; ok {
		return renamed
	}
	return label
}

// shorten strips factor prefixes from each component of the term. The
// known stems are the configured factors plus any stems listed directly
// on the shorten rule; with no stems known, shortening is a no-op.
func shorten(name string, cfg *config.PlotConfig) string {
	stems := shortenStems(cfg)
	if len(stems) == 0 {
		return name
	}

	components := strings.Split(name, interactionSep)
	for i, component := range components {
		for _, stem := range stems {
			// Strict prefix only: the bare factor term keeps its name,
			// a level like "cutGood" becomes "Good".
			if len(component) > len(stem) && strings.HasPrefix(component, stem) {
				components[i] = component[len(stem):]
				break
			}
		}
	}
	return strings.Join(components, interactionSep)
}

// shortenStems returns the factor stems the shorten rule applies to:
// every known factor when shortening everything, otherwise only the
// stems listed on the rule itself.
func shortenStems(cfg *config.PlotConfig) []string {
	if cfg.Shorten.All {
		return cfg.Factors
	}
	return cfg.Shorten.Stems
}
