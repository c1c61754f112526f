package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/coefplot/internal/model"
)

// ShortenRule controls factor-level prefix stripping. The YAML surface
// accepts either a boolean (shorten everything or nothing) or a list of
// factor stems (shorten only those). Both forms normalize into this
// struct.
type ShortenRule struct {
	// All strips the factor prefix from every factor coefficient.
	All bool

	// Stems limits stripping to the listed factor stems. Ignored when
	// All is set.
	Stems []string
}

// UnmarshalYAML accepts both spellings of the shorten option:
//
//	shorten: true
//	shorten: [cut, color]
func (s *ShortenRule) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var all bool
		if err := value.Decode(&all); err != nil {
			return fmt.Errorf("shorten: expected bool or list of factor stems: %w", err)
		}
		*s = ShortenRule{All: all}
		return nil
	case yaml.SequenceNode:
		var stems []string
		if err := value.Decode(&stems); err != nil {
			return fmt.Errorf("shorten: expected bool or list of factor stems: %w", err)
		}
		*s = ShortenRule{Stems: stems}
		return nil
	default:
		return fmt.Errorf("shorten: expected bool or list of factor stems, got %s node", value.Tag)
	}
}

// Active reports whether any shortening is requested at all.
func (s ShortenRule) Active() bool {
	return s.All || len(s.Stems) > 0
}

// AppliesTo reports whether the rule shortens coefficients of the given
// factor stem.
func (s ShortenRule) AppliesTo(stem string) bool {
	if s.All {
		return true
	}
	for _, candidate := range s.Stems {
		if candidate == stem {
			return true
		}
	}
	return false
}

// PlotConfig is the full configuration surface for one pipeline run.
//
// Fields are grouped by who consumes them: pipeline-interpreted fields
// first, then pure rendering pass-through. Zero values are NOT all
// meaningful defaults — construct with Default() and override.
type PlotConfig struct {
	// Title, XLab and YLab are display strings passed through to
	// rendering untouched.
	Title string `yaml:"title"`
	XLab  string `yaml:"xlab"`
	YLab  string `yaml:"ylab"`

	// InnerCI and OuterCI are the confidence tier widths in
	// standard-error multiples. A value of exactly 0 removes the tier
	// entirely (no degenerate zero-width whiskers). Must be >= 0.
	InnerCI float64 `yaml:"innerCI"`
	OuterCI float64 `yaml:"outerCI"`

	// Intercept keeps the intercept row; when false, the row named
	// InterceptName is removed before any other filtering.
	Intercept     bool   `yaml:"intercept"`
	InterceptName string `yaml:"interceptName"`

	// Variables is an exact-name allow-list. When set it takes
	// precedence over the Factors rule.
	Variables []string `yaml:"variables"`

	// Factors keeps only coefficients whose variable stem matches a
	// listed factor. Only excludes interaction terms involving the
	// factor when true.
	Factors []string `yaml:"factors"`
	Only    bool     `yaml:"only"`

	// Shorten strips factor-level prefixes from display names.
	Shorten ShortenRule `yaml:"shorten"`

	// NewNames renames display labels as a final, display-only
	// substitution after all filtering.
	NewNames map[string]string `yaml:"newNames"`

	// Sort selects the within-model coefficient ordering; Decreasing
	// reverses it.
	Sort       model.SortOrder `yaml:"sort"`
	Decreasing bool            `yaml:"decreasing"`

	// Names maps model identifiers to human-readable labels. When
	// supplied it must cover every model, and models are re-ordered
	// alphabetically by label.
	Names map[string]string `yaml:"names"`

	// Drop removes models whose coefficient set filters down to nothing
	// usable.
	Drop bool `yaml:"drop"`

	// By selects the category axis: coefficient-indexed, or
	// model-indexed (requires exactly one selected variable).
	By model.AxisMode `yaml:"by"`

	// Single forces one panel instead of per-model facets.
	Single bool `yaml:"single"`

	// Scales is the facet scale mode; NCol the facet column count.
	// NCol 0 means "compute from the number of models".
	Scales model.FacetScales `yaml:"scales"`
	NCol   int               `yaml:"ncol"`

	// Plot gates the rendering collaborator. When false the pipeline
	// returns the tidy table directly and rendering is skipped.
	Plot bool `yaml:"plot"`

	// Rendering pass-through. The pipeline does not interpret any of
	// these; they ride along to the rendering collaborator.
	PointSize   float64 `yaml:"pointSize"`
	DodgeHeight float64 `yaml:"dodgeHeight"`
	LWDInner    float64 `yaml:"lwdInner"`
	LWDOuter    float64 `yaml:"lwdOuter"`
	Color       string  `yaml:"color"`
	FillColor   string  `yaml:"fillColor"`
	Alpha       float64 `yaml:"alpha"`
	ZeroColor   string  `yaml:"zeroColor"`
	ZeroLWD     float64 `yaml:"zeroLWD"`
	ZeroType    string  `yaml:"zeroType"`
	TextAngle   float64 `yaml:"textAngle"`
	NumberAngle float64 `yaml:"numberAngle"`
	Numeric     bool    `yaml:"numeric"`
	Horizontal  bool    `yaml:"horizontal"`
}

// Default returns the configuration used when the caller specifies
// nothing: intercept kept, one- and two-standard-error tiers, natural
// order, coefficient-indexed axis, faceting enabled with fixed scales.
func Default() *PlotConfig {
	return &PlotConfig{
		InnerCI:       1,
		OuterCI:       2,
		Intercept:     true,
		InterceptName: "(Intercept)",
		Sort:          model.SortNatural,
		By:            model.ByCoefficient,
		Scales:        model.ScalesFixed,
		Plot:          true,
		PointSize:     2,
		DodgeHeight:   1,
		LWDInner:      1,
		LWDOuter:      0.5,
		Color:         "blue",
		Alpha:         1,
		ZeroColor:     "grey",
		ZeroLWD:       1,
		ZeroType:      "dashed",
	}
}

// Load reads a YAML configuration file and merges it over Default().
// Fields absent from the file keep their default values.
func Load(path string) (*PlotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapPipelineError(model.KindBadConfig,
			fmt.Sprintf("cannot read config file %s", path), err)
	}

	cfg := Default()
	// KnownFields makes typos in option names loud instead of silently
	// ignored.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		// io.EOF means an empty config file, which is just the defaults.
		return nil, model.WrapPipelineError(model.KindBadConfig,
			fmt.Sprintf("cannot parse config file %s", path), err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot act
// on. It returns a PipelineError with KindBadConfig on the first
// violation.
//
// The model-indexed axis precondition (exactly one selected variable) is
// deliberately NOT checked here: it is an aggregation-time check owned by
// the aggregate package, where it can fail fast before extraction.
func (c *PlotConfig) Validate() error {
	if c.InnerCI < 0 {
		return model.NewPipelineError(model.KindBadConfig, "innerCI must be >= 0, got %v", c.InnerCI)
	}
	if c.OuterCI < 0 {
		return model.NewPipelineError(model.KindBadConfig, "outerCI must be >= 0, got %v", c.OuterCI)
	}
	// When both tiers are present the inner whisker must nest inside the
	// outer one. A zero multiplier removes its tier, so the ordering only
	// applies when both are nonzero.
	if c.OuterCI > 0 && c.InnerCI > c.OuterCI {
		return model.NewPipelineError(model.KindBadConfig,
			"innerCI (%v) must not exceed outerCI (%v)", c.InnerCI, c.OuterCI)
	}
	if !c.Sort.IsValid() {
		return model.NewPipelineError(model.KindBadConfig,
			"invalid sort order %q (valid: natural, normal, alphabetical, magnitude, size)", c.Sort)
	}
	if !c.By.IsValid() {
		return model.NewPipelineError(model.KindBadConfig,
			"invalid axis mode %q (valid: coefficient, model)", c.By)
	}
	if !c.Scales.IsValid() {
		return model.NewPipelineError(model.KindBadConfig,
			"invalid facet scales %q (valid: fixed, free, free_x, free_y)", c.Scales)
	}
	if c.NCol < 0 {
		return model.NewPipelineError(model.KindBadConfig, "ncol must be >= 1 (or omitted), got %d", c.NCol)
	}
	if c.InterceptName == "" {
		return model.NewPipelineError(model.KindBadConfig, "interceptName must not be empty")
	}
	return nil
}
