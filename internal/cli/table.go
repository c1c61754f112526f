// table.go implements the "coefplot table" command.
//
// The table command runs the same aggregation pipeline as plot but skips
// the rendering collaborator entirely, emitting the tidy table as an
// aligned text table or, with --json, as JSON together with the layout
// descriptor.
package cli

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/coefplot/internal/aggregate"
	"github.com/mmr-tortoise/coefplot/internal/model"
)

// NewTableCommand creates the "table" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewTableCommand() *cobra.Command {
	flags := &pipelineFlags{}

	cmd := &cobra.Command{
		Use:   "table [summary files...]",
		Short: "Print the aggregated coefficient table without plotting",
		Long: `Aggregate the coefficients of one or more model summary files and print
the resulting tidy table. No plot is drawn.

Examples:
  coefplot table model1.jsonc model2.jsonc
  coefplot table *.jsonc --variables carat --json`,

		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, args, flags)
		},
	}

	registerPipelineFlags(cmd, flags)

	return cmd
}

// runTable is the main logic function for the table command.
func runTable(cmd *cobra.Command, args []string, flags *pipelineFlags) error {
	cfg, err := buildConfig(cmd, flags)
	if err != nil {
		return err
	}
	// The table command is the plot=false path regardless of what a
	// config file says.
	cfg.Plot = false

	inputs, err := loadInputs(args)
	if err != nil {
		return err
	}
	warnUnmatchedNames(inputs, cfg)

	table, layout, err := aggregate.Run(inputs, cfg)
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return printTableJSON(table, layout)
	}
	printTableText(table)
	return nil
}

// printTableText prints the tidy table as aligned columns on stdout.
// Absent interval tiers print as "-" so they are distinguishable from
// zero-width intervals, which do not exist.
func printTableText(table model.TidyTable) {
	if len(table) == 0 {
		fmt.Println("No coefficients matched.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tCOEFFICIENT\tESTIMATE\tSTDERR\tOUTER LOW\tINNER LOW\tINNER HIGH\tOUTER HIGH")
	for i := range table {
		row := &table[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.ModelLabel,
			row.DisplayName,
			formatValue(row.Estimate),
			formatValue(row.StdErr),
			formatBound(row.Outer, false),
			formatBound(row.Inner, false),
			formatBound(row.Inner, true),
			formatBound(row.Outer, true),
		)
	}
	_ = w.Flush()
}

// formatBound prints one side of a tier, or "-" when the tier is absent.
func formatBound(b *model.Bound, high bool) string {
	if b == nil {
		return "-"
	}
	if high {
		return formatValue(b.High)
	}
	return formatValue(b.Low)
}

// formatValue prints a coefficient value compactly, with NaN spelled out.
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6g", v)
}
