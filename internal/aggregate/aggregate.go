package aggregate

import (
	"fmt"
	"sort"

	"github.com/mmr-tortoise/coefplot/internal/config"
	"github.com/mmr-tortoise/coefplot/internal/interval"
	"github.com/mmr-tortoise/coefplot/internal/model"
	"github.com/mmr-tortoise/coefplot/internal/naming"
	"github.com/mmr-tortoise/coefplot/internal/sorting"
	"github.com/mmr-tortoise/coefplot/internal/source"
)

// Input is one model handed to the aggregator.
type Input struct {
	// ID is an optional stable identifier. When empty, the aggregator
	// synthesizes "Model1", "Model2", … from input position.
	ID string

	// Label is an optional display label derived from the model itself
	// (for summary files, the fitting expression). An explicit names
	// mapping overrides it.
	Label string

	// Source reports the model's coefficients.
	Source source.Source
}

// Run executes the whole pipeline over the given models and returns the
// tidy table plus the layout descriptor for the rendering collaborator.
//
// Errors, all fatal and deterministic: KindBadConfig for invalid
// configuration, KindInvalidAxisConfig when the model-indexed axis mode
// is requested without exactly one selected variable (checked before any
// extraction), KindNameCoverage when an explicit names mapping omits a
// model, and KindUnsupportedModel from extraction.
func Run(inputs []Input, cfg *config.PlotConfig) (model.TidyTable, model.Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, model.Layout{}, err
	}

	// Fail-fast validation before any per-model work.
	if err := validateAxisMode(cfg); err != nil {
		return nil, model.Layout{}, err
	}
	ids := resolveIDs(inputs)
	if err := validateNameCoverage(ids, cfg.Names); err != nil {
		return nil, model.Layout{}, err
	}

	entries := make([]model.ModelEntry, 0, len(inputs))
	for i, in := range inputs {
		entry, err := runModel(ids[i], in, cfg)
		if err != nil {
			return nil, model.Layout{}, err
		}
		entries = append(entries, entry)
	}

	orderEntries(entries, cfg.Names != nil)

	return filterAndLayout(entries, cfg)
}

// runModel runs the per-model pipeline: extract → intervals → naming →
// sort, and tags every surviving coefficient with the model id.
func runModel(id string, in Input, cfg *config.PlotConfig) (model.ModelEntry, error) {
	raw, err := source.Extract(id, in.Source)
	if err != nil {
		return model.ModelEntry{}, err
	}

	coeffs := naming.Resolve(interval.Build(raw, cfg.InnerCI, cfg.OuterCI), cfg)
	sorting.Sort(coeffs, cfg.Sort, cfg.Decreasing)

	for i := range coeffs {
		coeffs[i].ModelID = id
	}

	return model.ModelEntry{
		ID:           id,
		Label:        resolveLabel(id, in, cfg.Names),
		Coefficients: coeffs,
	}, nil
}

// resolveIDs returns the stable identifier for every input, synthesizing
// positional ones ("Model1", …) where the caller supplied none.
func resolveIDs(inputs []Input) []string {
	ids := make([]string, len(inputs))
	for i, in := range inputs {
		if in.ID != "" {
			ids[i] = in.ID
		} else {
			ids[i] = fmt.Sprintf("Model%d", i+1)
		}
	}
	return ids
}

// resolveLabel picks the display label for a model: the explicit names
// mapping first, then the model's own label, then the identifier.
func resolveLabel(id string, in Input, names map[string]string) string {
	if label, ok := names[id]; ok {
		return label
	}
	if in.Label != "" {
		return in.Label
	}
	return id
}

// validateAxisMode enforces the model-indexed precondition: exactly one
// selected variable across the whole run. This runs before extraction so
// a misconfigured run does no model work at all.
func validateAxisMode(cfg *config.PlotConfig) error {
	if cfg.By != model.ByModel {
		return nil
	}
	if len(cfg.Variables) != 1 {
		return model.NewPipelineError(model.KindInvalidAxisConfig,
			"axis mode %q requires exactly one selected variable, got %d", cfg.By, len(cfg.Variables))
	}
	return nil
}

// validateNameCoverage checks that an explicit names mapping covers
// every model identifier. A nil mapping means derived labels are used
// and nothing needs checking.
func validateNameCoverage(ids []string, names map[string]string) error {
	if names == nil {
		return nil
	}
	for _, id := range ids {
		if _, ok := names[id]; !ok {
			return model.NewPipelineError(model.KindNameCoverage,
				"names mapping does not cover model %q", id)
		}
	}
	return nil
}

// orderEntries applies the inter-model ordering rule. The two branches
// are intentionally separate: explicit names sort models alphabetically
// by label, derived labels keep the caller's input order. Unifying them
// would change visible plot layout.
func orderEntries(entries []model.ModelEntry, explicitNames bool) {
	if !explicitNames {
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})
}
