// plot.go implements the "coefplot plot" command.
//
// The plot command runs the full aggregation pipeline over the given
// model summary files and draws the resulting coefficient plot to
// stdout. With --json, the rendered plot is replaced by the tidy table
// and layout descriptor as JSON (the machine-readable equivalent).
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/coefplot/internal/aggregate"
	"github.com/mmr-tortoise/coefplot/internal/model"
	"github.com/mmr-tortoise/coefplot/internal/render"
)

// plotFlags holds the flag values for the plot command.
type plotFlags struct {
	pipelineFlags

	// width is the value-axis width of one panel, in terminal cells.
	width int
}

// NewPlotCommand creates the "plot" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewPlotCommand() *cobra.Command {
	flags := &plotFlags{}

	cmd := &cobra.Command{
		Use:   "plot [summary files...]",
		Short: "Draw a coefficient comparison plot",
		Long: `Aggregate the coefficients of one or more model summary files and draw
a dot-and-whisker plot in the terminal.

Examples:
  coefplot plot model1.jsonc model2.jsonc
  coefplot plot *.jsonc --no-intercept --sort magnitude --decreasing
  coefplot plot *.jsonc --variables carat --by model
  coefplot plot model.jsonc --config plot.yml`,

		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args, flags)
		},
	}

	registerPipelineFlags(cmd, &flags.pipelineFlags)
	cmd.Flags().IntVar(&flags.width, "width", render.DefaultWidth, "Panel width in terminal cells")

	return cmd
}

// runPlot is the main logic function for the plot command.
func runPlot(cmd *cobra.Command, args []string, flags *plotFlags) error {
	cfg, err := buildConfig(cmd, &flags.pipelineFlags)
	if err != nil {
		return err
	}

	inputs, err := loadInputs(args)
	if err != nil {
		return err
	}
	warnUnmatchedNames(inputs, cfg)

	table, layout, err := aggregate.Run(inputs, cfg)
	if err != nil {
		return err
	}
	VerboseLog("Aggregated %d rows across %d models", len(table), len(table.ModelLabels()))

	if IsJSONOutput() {
		return printTableJSON(table, layout)
	}

	if !cfg.Plot {
		// plot: false in the config file means the caller wants the
		// table, not pixels, even from the plot command.
		printTableText(table)
		return nil
	}

	fmt.Println(render.Plot(table, layout, cfg, render.Options{Width: flags.width}))
	return nil
}

// printTableJSON emits the tidy table and layout descriptor as a single
// JSON document on stdout.
func printTableJSON(table model.TidyTable, layout model.Layout) error {
	if table == nil {
		// An empty result serializes as [] rather than null.
		table = model.TidyTable{}
	}
	doc := struct {
		Rows   model.TidyTable `json:"rows"`
		Layout model.Layout    `json:"layout"`
	}{Rows: table, Layout: layout}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tidy table: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
