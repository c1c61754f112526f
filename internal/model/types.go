// types.go defines the coefficient entities that flow through the
// aggregation pipeline, in the order they are produced:
//
//	RawCoefficient → IntervalCoefficient → DisplayCoefficient → ModelEntry → TidyTable
//
// Each stage adds information and never mutates the previous stage's
// fields, so a DisplayCoefficient still carries the raw estimate and
// standard error it was derived from.
package model

import (
	"fmt"
	"math"
	"strings"
)

// RawCoefficient is one estimated parameter as reported by a fitted model:
// a variable name, a point estimate, and a standard error. Produced once
// per (model, variable) pair; immutable.
type RawCoefficient struct {
	// Name is the variable name exactly as the model reports it,
	// e.g. "(Intercept)", "carat", "cutGood", "carat:cutGood".
	Name string `json:"name"`

	// Estimate is the point estimate for the coefficient.
	Estimate float64 `json:"estimate"`

	// StdErr is the standard error of the estimate. Must be >= 0.
	StdErr float64 `json:"stdErr"`
}

// Bound is one confidence-interval tier: the lower and upper bound around
// an estimate at some standard-error multiple.
type Bound struct {
	// Low is the lower bound (estimate - multiplier*stdErr).
	Low float64 `json:"low"`

	// High is the upper bound (estimate + multiplier*stdErr).
	High float64 `json:"high"`
}

// IntervalCoefficient is a RawCoefficient with its inner and outer
// confidence bounds attached.
//
// A nil tier means the corresponding multiplier was zero and the tier is
// absent entirely — not a zero-width interval. Rendering must skip absent
// tiers rather than draw degenerate whiskers.
type IntervalCoefficient struct {
	RawCoefficient

	// Inner is the inner confidence tier, or nil when innerCI == 0.
	Inner *Bound `json:"inner,omitempty"`

	// Outer is the outer confidence tier, or nil when outerCI == 0.
	Outer *Bound `json:"outer,omitempty"`
}

// DisplayCoefficient is an IntervalCoefficient after name resolution:
// filtering decided it survives, and DisplayName holds the label the
// rendering layer should show.
//
// Two DisplayCoefficients with the same raw variable in different models
// resolve to the same DisplayName string, so cross-model alignment works.
type DisplayCoefficient struct {
	IntervalCoefficient

	// DisplayName is the variable name after intercept/factor filtering
	// and optional shortening/renaming.
	DisplayName string `json:"displayName"`

	// ModelID references the owning ModelEntry. Filled in by the
	// aggregator; empty while a coefficient is still model-local.
	ModelID string `json:"modelId"`
}

// ModelEntry is one model's resolved contribution to the combined table.
type ModelEntry struct {
	// ID is the unique, stable model identifier for this run. Either
	// caller-supplied or synthesized from input position ("Model1", …).
	ID string `json:"id"`

	// Label is the display label: the user-provided name, or text derived
	// from the model's own description, falling back to ID.
	Label string `json:"label"`

	// Coefficients holds the model's surviving coefficients in final
	// sort order. May be empty when filtering removed everything; an
	// empty entry is a valid state, not an error.
	Coefficients []DisplayCoefficient `json:"coefficients"`
}

// Valid reports whether the entry retains at least one coefficient with a
// usable estimate. Entries that fail this are the ones removed by the
// drop option.
func (m *ModelEntry) Valid() bool {
	for i := range m.Coefficients {
		if !math.IsNaN(m.Coefficients[i].Estimate) {
			return true
		}
	}
	return false
}

// Row is one line of the tidy table: a DisplayCoefficient joined with its
// owning model's display label.
type Row struct {
	DisplayCoefficient

	// ModelLabel is the owning ModelEntry's Label, denormalized onto the
	// row so the rendering layer needs no lookup table.
	ModelLabel string `json:"modelLabel"`
}

// TidyTable is the final flattened representation consumed by rendering:
// one row per surviving (model, coefficient) pair. Total order is the
// per-model sort order with models concatenated in resolved label order.
type TidyTable []Row

// DisplayNames returns the distinct display names in the table, in first
// appearance order. Used for axis construction and for the model-indexed
// mode invariant (exactly one distinct name).
func (t TidyTable) DisplayNames() []string {
	seen := make(map[string]bool)
	var names []string
	for i := range t {
		if !seen[t[i].DisplayName] {
			seen[t[i].DisplayName] = true
			names = append(names, t[i].DisplayName)
		}
	}
	return names
}

// ModelLabels returns the distinct model labels in the table, in first
// appearance order.
func (t TidyTable) ModelLabels() []string {
	seen := make(map[string]bool)
	var labels []string
	for i := range t {
		if !seen[t[i].ModelLabel] {
			seen[t[i].ModelLabel] = true
			labels = append(labels, t[i].ModelLabel)
		}
	}
	return labels
}

// SortOrder selects how coefficients are ordered within each model.
type SortOrder string

const (
	// SortNatural preserves the model's native reporting order.
	SortNatural SortOrder = "natural"

	// SortNormal orders lexicographically by display name.
	SortNormal SortOrder = "normal"

	// SortAlphabetical is the explicit spelling of lexicographic order.
	SortAlphabetical SortOrder = "alphabetical"

	// SortMagnitude orders by absolute value of the estimate.
	SortMagnitude SortOrder = "magnitude"

	// SortSize is an alias for magnitude ordering.
	SortSize SortOrder = "size"
)

// String returns the string representation of the SortOrder.
func (s SortOrder) String() string {
	return string(s)
}

// IsValid checks whether the SortOrder value is one of the predefined
// orderings.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortNatural, SortNormal, SortAlphabetical, SortMagnitude, SortSize:
		return true
	default:
		return false
	}
}

// ParseSortOrder converts a string to a SortOrder.
// Returns an error if the string does not match any valid ordering.
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(s))
	if !order.IsValid() {
		return "", fmt.Errorf("invalid sort order: %q (valid: natural, normal, alphabetical, magnitude, size)", s)
	}
	return order, nil
}

// AxisMode selects what the category axis indexes.
type AxisMode string

const (
	// ByCoefficient plots one row per coefficient, with models
	// distinguished by color and, optionally, facet panels.
	ByCoefficient AxisMode = "coefficient"

	// ByModel tracks a single coefficient across many models, plotting
	// model identity along the category axis. Requires exactly one
	// selected variable across the whole run.
	ByModel AxisMode = "model"
)

// String returns the string representation of the AxisMode.
func (a AxisMode) String() string {
	return string(a)
}

// IsValid checks whether the AxisMode value is one of the two modes.
func (a AxisMode) IsValid() bool {
	return a == ByCoefficient || a == ByModel
}

// ParseAxisMode converts a string to an AxisMode. It accepts the
// capitalized spellings "Coefficient" and "Model" as well.
func ParseAxisMode(s string) (AxisMode, error) {
	mode := AxisMode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid axis mode: %q (valid: coefficient, model)", s)
	}
	return mode, nil
}

// FacetScales controls whether facet panels share value-axis ranges.
type FacetScales string

const (
	// ScalesFixed gives every panel the same range on both axes.
	ScalesFixed FacetScales = "fixed"

	// ScalesFree lets each panel pick its own range on both axes.
	ScalesFree FacetScales = "free"

	// ScalesFreeX frees only the value axis.
	ScalesFreeX FacetScales = "free_x"

	// ScalesFreeY frees only the category axis.
	ScalesFreeY FacetScales = "free_y"
)

// String returns the string representation of the FacetScales.
func (f FacetScales) String() string {
	return string(f)
}

// IsValid checks whether the FacetScales value is one of the predefined
// scale modes.
func (f FacetScales) IsValid() bool {
	switch f {
	case ScalesFixed, ScalesFree, ScalesFreeX, ScalesFreeY:
		return true
	default:
		return false
	}
}

// ParseFacetScales converts a string to a FacetScales.
func ParseFacetScales(s string) (FacetScales, error) {
	scales := FacetScales(strings.ToLower(s))
	if !scales.IsValid() {
		return "", fmt.Errorf("invalid facet scales: %q (valid: fixed, free, free_x, free_y)", s)
	}
	return scales, nil
}

// Layout is the descriptor handed to the rendering collaborator alongside
// the tidy table. It captures every cross-model display decision the
// pipeline makes; rendering applies it without re-deriving anything.
type Layout struct {
	// Axis is the category-axis mode (coefficient- or model-indexed).
	Axis AxisMode `json:"axis"`

	// Facet requests one panel per model. Only set in coefficient mode
	// when the single-panel option is off.
	Facet bool `json:"facet"`

	// Scales is the facet scale mode. Meaningful only when Facet is set.
	Scales FacetScales `json:"scales"`

	// Columns is the facet grid column count. When the caller did not
	// configure one, the pipeline computes it from the number of
	// distinct models.
	Columns int `json:"columns"`

	// ColorByModel distinguishes models by color. Disabled in
	// model-indexed mode, where all points share one caller-chosen color.
	ColorByModel bool `json:"colorByModel"`
}
