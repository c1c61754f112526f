// inputs.go holds the loading helpers shared by the plot and table
// commands: turning summary file paths into aggregator inputs, merging
// flag overrides over a config file, and warning about configured
// variable names that match nothing.
package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/coefplot/internal/aggregate"
	"github.com/mmr-tortoise/coefplot/internal/config"
	"github.com/mmr-tortoise/coefplot/internal/model"
	"github.com/mmr-tortoise/coefplot/internal/naming"
	"github.com/mmr-tortoise/coefplot/internal/source"
)

// pipelineFlags holds the flag values shared by the plot and table
// commands. Every field mirrors one option of the plot configuration
// surface; only flags the user actually set override the config file.
type pipelineFlags struct {
	configPath string

	title string
	xlab  string
	ylab  string

	innerCI float64
	outerCI float64

	noIntercept   bool
	interceptName string

	variables      []string
	factors        []string
	only           bool
	shorten        bool
	shortenFactors []string
	newNames       map[string]string
	names          map[string]string

	sortOrder  string
	decreasing bool
	drop       bool
	by         string

	single bool
	scales string
	ncol   int
}

// registerPipelineFlags binds the shared pipeline flags onto a command.
func registerPipelineFlags(cmd *cobra.Command, flags *pipelineFlags) {
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML plot configuration file")

	cmd.Flags().StringVar(&flags.title, "title", "", "Plot title")
	cmd.Flags().StringVar(&flags.xlab, "xlab", "", "Value axis label")
	cmd.Flags().StringVar(&flags.ylab, "ylab", "", "Category axis label")

	cmd.Flags().Float64Var(&flags.innerCI, "inner-ci", 1, "Inner interval width in standard errors (0 removes the tier)")
	cmd.Flags().Float64Var(&flags.outerCI, "outer-ci", 2, "Outer interval width in standard errors (0 removes the tier)")

	cmd.Flags().BoolVar(&flags.noIntercept, "no-intercept", false, "Drop the intercept row")
	cmd.Flags().StringVar(&flags.interceptName, "intercept-name", "(Intercept)", "Variable name of the intercept row")

	cmd.Flags().StringSliceVar(&flags.variables, "variables", nil, "Keep only these exact variable names")
	cmd.Flags().StringSliceVar(&flags.factors, "factors", nil, "Keep only coefficients of these factors")
	cmd.Flags().BoolVar(&flags.only, "only", false, "With --factors, exclude interaction terms")
	cmd.Flags().BoolVar(&flags.shorten, "shorten", false, "Strip factor prefixes from level labels")
	cmd.Flags().StringSliceVar(&flags.shortenFactors, "shorten-factors", nil, "Strip prefixes only for these factors")
	cmd.Flags().StringToStringVar(&flags.newNames, "new-name", nil, "Rename a coefficient: old=new (repeatable)")
	cmd.Flags().StringToStringVar(&flags.names, "names", nil, "Label a model: id=label (repeatable, must cover every model)")

	cmd.Flags().StringVar(&flags.sortOrder, "sort", "natural", "Coefficient order: natural, normal, alphabetical, magnitude, size")
	cmd.Flags().BoolVar(&flags.decreasing, "decreasing", false, "Reverse the sort order")
	cmd.Flags().BoolVar(&flags.drop, "drop", false, "Remove models with no usable coefficients")
	cmd.Flags().StringVar(&flags.by, "by", "coefficient", "Category axis: coefficient, or model (requires exactly one variable)")

	cmd.Flags().BoolVar(&flags.single, "single", false, "One panel instead of per-model facets")
	cmd.Flags().StringVar(&flags.scales, "scales", "fixed", "Facet scales: fixed, free, free_x, free_y")
	cmd.Flags().IntVar(&flags.ncol, "ncol", 0, "Facet columns (default: number of models)")
}

// buildConfig produces the effective plot configuration: the config file
// (or defaults) with explicitly-set flags layered on top.
func buildConfig(cmd *cobra.Command, flags *pipelineFlags) (*config.PlotConfig, error) {
	var cfg *config.PlotConfig
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		VerboseLog("Loaded configuration from %s", flags.configPath)
	} else {
		cfg = config.Default()
	}

	set := cmd.Flags().Changed
	if set("title") {
		cfg.Title = flags.title
	}
	if set("xlab") {
		cfg.XLab = flags.xlab
	}
	if set("ylab") {
		cfg.YLab = flags.ylab
	}
	if set("inner-ci") {
		cfg.InnerCI = flags.innerCI
	}
	if set("outer-ci") {
		cfg.OuterCI = flags.outerCI
	}
	if set("no-intercept") {
		cfg.Intercept = !flags.noIntercept
	}
	if set("intercept-name") {
		cfg.InterceptName = flags.interceptName
	}
	if set("variables") {
		cfg.Variables = flags.variables
	}
	if set("factors") {
		cfg.Factors = flags.factors
	}
	if set("only") {
		cfg.Only = flags.only
	}
	if set("shorten") && set("shorten-factors") {
		return nil, model.NewPipelineError(model.KindBadConfig,
			"--shorten and --shorten-factors are mutually exclusive")
	}
	if set("shorten") {
		cfg.Shorten = config.ShortenRule{All: flags.shorten}
	}
	if set("shorten-factors") {
		cfg.Shorten = config.ShortenRule{Stems: flags.shortenFactors}
	}
	if set("new-name") {
		cfg.NewNames = flags.newNames
	}
	if set("names") {
		cfg.Names = flags.names
	}
	if set("sort") {
		order, err := model.ParseSortOrder(flags.sortOrder)
		if err != nil {
			return nil, model.WrapPipelineError(model.KindBadConfig, "invalid --sort", err)
		}
		cfg.Sort = order
	}
	if set("decreasing") {
		cfg.Decreasing = flags.decreasing
	}
	if set("drop") {
		cfg.Drop = flags.drop
	}
	if set("by") {
		mode, err := model.ParseAxisMode(flags.by)
		if err != nil {
			return nil, model.WrapPipelineError(model.KindBadConfig, "invalid --by", err)
		}
		cfg.By = mode
	}
	if set("single") {
		cfg.Single = flags.single
	}
	if set("scales") {
		scales, err := model.ParseFacetScales(flags.scales)
		if err != nil {
			return nil, model.WrapPipelineError(model.KindBadConfig, "invalid --scales", err)
		}
		cfg.Scales = scales
	}
	if set("ncol") {
		cfg.NCol = flags.ncol
	}

	return cfg, nil
}

// loadInputs turns the positional summary-file arguments into aggregator
// inputs. Each file carries its own optional identifier and label;
// models without one get positional identifiers from the aggregator.
func loadInputs(paths []string) ([]aggregate.Input, error) {
	inputs := make([]aggregate.Input, 0, len(paths))
	for _, path := range paths {
		summary, err := source.LoadSummary(path)
		if err != nil {
			return nil, err
		}
		VerboseLog("Loaded %s: %d coefficients", path, len(summary.CoefficientRows))
		inputs = append(inputs, aggregate.Input{
			ID:     summary.Name,
			Label:  summary.Model,
			Source: summary,
		})
	}
	return inputs, nil
}

// warnUnmatchedNames prints a hint for every configured variable name
// that matches nothing in any model, with a closest-match suggestion
// when one is plausible. Unmatched names are not errors, they just
// filter to an empty result, so this is a stderr warning rather than a
// failure.
func warnUnmatchedNames(inputs []aggregate.Input, cfg *config.PlotConfig) {
	for _, line := range unmatchedWarnings(inputs, cfg) {
		fmt.Fprintln(os.Stderr, line)
	}
}

// unmatchedWarnings builds the warning lines, sorted by the unknown name
// so output is stable across runs.
func unmatchedWarnings(inputs []aggregate.Input, cfg *config.PlotConfig) []string {
	var rawNames []string
	for _, in := range inputs {
		coeffs, err := in.Source.Coefficients()
		if err != nil {
			continue
		}
		for i := range coeffs {
			rawNames = append(rawNames, coeffs[i].Name)
		}
	}

	// Only the exact-name allow-list is checked: newNames keys may
	// legitimately target shortened labels rather than raw names.
	unmatched := naming.Unmatched(cfg.Variables, rawNames)
	unknowns := make([]string, 0, len(unmatched))
	for unknown := range unmatched {
		unknowns = append(unknowns, unknown)
	}
	sort.Strings(unknowns)

	lines := make([]string, 0, len(unknowns))
	for _, unknown := range unknowns {
		if suggestion := unmatched[unknown]; suggestion != "" {
			lines = append(lines, fmt.Sprintf("warning: %q matches no model coefficient (did you mean %q?)", unknown, suggestion))
		} else {
			lines = append(lines, fmt.Sprintf("warning: %q matches no model coefficient", unknown))
		}
	}
	return lines
}
