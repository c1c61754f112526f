// layout.go is the cross-model tail of the pipeline: the drop filter,
// the model-indexed invariant check, flattening into the tidy table, and
// the layout descriptor handed to rendering.
package aggregate

import (
	"github.com/mmr-tortoise/coefplot/internal/config"
	"github.com/mmr-tortoise/coefplot/internal/model"
)

// filterAndLayout removes dropped models, flattens the surviving entries
// into the tidy table, and decides the axis/facet layout.
func filterAndLayout(entries []model.ModelEntry, cfg *config.PlotConfig) (model.TidyTable, model.Layout, error) {
	if cfg.Drop {
		kept := entries[:0]
		for i := range entries {
			if entries[i].Valid() {
				kept = append(kept, entries[i])
			}
		}
		entries = kept
	}

	table := flatten(entries)

	if cfg.By == model.ByModel {
		// The variables precondition was validated up front, but filters
		// can still legitimately leave several display names (or none)
		// on the table; that is a construction-time error, not a
		// silently degraded plot.
		if names := table.DisplayNames(); len(names) != 1 {
			return nil, model.Layout{}, model.NewPipelineError(model.KindInvalidAxisConfig,
				"axis mode %q requires exactly one coefficient across all models, got %d", cfg.By, len(names))
		}
	}

	return table, buildLayout(len(entries), cfg), nil
}

// flatten concatenates per-model coefficients into tidy rows, in entry
// order, denormalizing each model's label onto its rows.
func flatten(entries []model.ModelEntry) model.TidyTable {
	var table model.TidyTable
	for i := range entries {
		for _, c := range entries[i].Coefficients {
			table = append(table, model.Row{DisplayCoefficient: c, ModelLabel: entries[i].Label})
		}
	}
	return table
}

// buildLayout decides the layout descriptor for the rendering
// collaborator.
//
// Coefficient mode colors by model and, unless the single option is set,
// requests one facet panel per model. Model mode plots model identity
// along the category axis in a single panel with one caller-chosen
// color.
func buildLayout(modelCount int, cfg *config.PlotConfig) model.Layout {
	if cfg.By == model.ByModel {
		return model.Layout{
			Axis:    model.ByModel,
			Scales:  cfg.Scales,
			Columns: 1,
		}
	}

	facet := !cfg.Single && modelCount > 1
	return model.Layout{
		Axis:         model.ByCoefficient,
		Facet:        facet,
		Scales:       cfg.Scales,
		Columns:      facetColumns(modelCount, cfg.NCol),
		ColorByModel: true,
	}
}

// facetColumns resolves the facet grid column count. The default is
// computed here, from the models actually aggregated, never as an
// ambient default bound at interface-declaration time.
func facetColumns(modelCount, configured int) int {
	if configured >= 1 {
		return configured
	}
	if modelCount < 1 {
		return 1
	}
	return modelCount
}
