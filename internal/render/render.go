package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmr-tortoise/coefplot/internal/config"
	"github.com/mmr-tortoise/coefplot/internal/model"
)

// Options carries terminal-specific knobs that are not part of the plot
// configuration surface.
type Options struct {
	// Width is the target total width of one panel's value axis, in
	// cells. Zero means DefaultWidth.
	Width int
}

// DefaultWidth is the value-axis width used when the caller does not
// specify one.
const DefaultWidth = 48

// Plot glyphs. The inner tier is drawn heavy, the outer tier light, so
// nested whiskers read at a glance.
const (
	glyphPoint = '●'
	glyphInner = '━'
	glyphOuter = '┄'
	glyphZero  = '┊'
	glyphBlank = ' '
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	// modelPalette distinguishes models in coefficient mode. Cycled when
	// there are more models than colors.
	modelPalette = []lipgloss.Color{"4", "2", "1", "5", "6", "3"}

	// namedColors maps the pass-through color names a plot configuration
	// may carry onto ANSI colors. Unknown names fall back to the first
	// palette entry.
	namedColors = map[string]lipgloss.Color{
		"black":   "0",
		"red":     "1",
		"green":   "2",
		"yellow":  "3",
		"blue":    "4",
		"magenta": "5",
		"cyan":    "6",
		"white":   "7",
		"grey":    "8",
		"gray":    "8",
	}
)

// Plot renders the tidy table according to the layout descriptor and
// returns the drawn plot as a styled multi-line string.
//
// An empty table renders a placeholder message rather than an empty
// panel, since an empty result is a valid pipeline outcome.
func Plot(table model.TidyTable, layout model.Layout, cfg *config.PlotConfig, opts Options) string {
	if len(table) == 0 {
		return axisStyle.Render("(no coefficients to plot)")
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	var body string
	if layout.Axis == model.ByModel {
		body = plotByModel(table, cfg, width)
	} else if layout.Facet {
		body = plotFaceted(table, layout, width)
	} else {
		body = plotSingle(table, width)
	}

	if cfg.Title != "" {
		body = titleStyle.Render(cfg.Title) + "\n" + body
	}
	if cfg.XLab != "" {
		body += "\n" + axisStyle.Render(cfg.XLab)
	}
	return body
}

// plotFaceted draws one bordered panel per model and arranges panels in
// a grid of layout.Columns columns.
func plotFaceted(table model.TidyTable, layout model.Layout, width int) string {
	labels := table.ModelLabels()

	// Fixed scales share one range across all panels; free scales let
	// each panel fit its own rows.
	var shared *valueRange
	if layout.Scales == model.ScalesFixed || layout.Scales == model.ScalesFreeY {
		r := rangeOf(table)
		shared = &r
	}

	panels := make([]string, 0, len(labels))
	for i, label := range labels {
		rows := rowsForModel(table, label)
		r := shared
		if r == nil {
			pr := rangeOf(rows)
			r = &pr
		}
		color := modelPalette[i%len(modelPalette)]
		panel := drawPanel(rows, *r, width, func(model.Row) lipgloss.Color { return color })
		panels = append(panels, panelStyle.Render(labelStyle.Render(label)+"\n"+panel))
	}

	return arrangeGrid(panels, layout.Columns)
}

// plotSingle draws every model into one panel, rows grouped by
// coefficient and colored per model, with a legend underneath.
func plotSingle(table model.TidyTable, width int) string {
	labels := table.ModelLabels()
	colorFor := make(map[string]lipgloss.Color, len(labels))
	for i, label := range labels {
		colorFor[label] = modelPalette[i%len(modelPalette)]
	}

	// Group rows by display name so the same coefficient from different
	// models sits on adjacent lines (the terminal analogue of dodging).
	var grouped model.TidyTable
	for _, name := range table.DisplayNames() {
		for i := range table {
			if table[i].DisplayName == name {
				grouped = append(grouped, table[i])
			}
		}
	}

	r := rangeOf(grouped)
	panel := drawPanel(grouped, r, width, func(row model.Row) lipgloss.Color {
		return colorFor[row.ModelLabel]
	})

	var legend []string
	for _, label := range labels {
		swatch := lipgloss.NewStyle().Foreground(colorFor[label]).Render(string(glyphPoint))
		legend = append(legend, swatch+" "+labelStyle.Render(label))
	}
	return panelStyle.Render(panel) + "\n" + strings.Join(legend, "   ")
}

// plotByModel draws the model-indexed (secret weapon) layout: one
// coefficient tracked across models, model labels on the category axis,
// every point in the single caller-chosen color.
func plotByModel(table model.TidyTable, cfg *config.PlotConfig, width int) string {
	color := namedColor(cfg.Color)
	r := rangeOf(table)

	// Re-label rows with their model so drawPanel's label column shows
	// model identity instead of the (single) coefficient name.
	relabeled := make(model.TidyTable, len(table))
	for i, row := range table {
		row.DisplayName = row.ModelLabel
		relabeled[i] = row
	}

	panel := drawPanel(relabeled, r, width, func(model.Row) lipgloss.Color { return color })
	header := labelStyle.Render(table[0].DisplayName)
	return panelStyle.Render(header + "\n" + panel)
}

// valueRange is the numeric extent of one panel's value axis.
type valueRange struct {
	min, max float64
}

// rangeOf computes the value extent of a set of rows, spanning the
// widest present bound tier of every row and always including zero so
// the zero line stays visible.
func rangeOf(rows model.TidyTable) valueRange {
	r := valueRange{min: 0, max: 0}
	first := true
	for i := range rows {
		lo, hi := rowExtent(&rows[i])
		if math.IsNaN(lo) || math.IsNaN(hi) {
			continue
		}
		if first {
			r.min, r.max = math.Min(lo, 0), math.Max(hi, 0)
			first = false
			continue
		}
		r.min = math.Min(r.min, lo)
		r.max = math.Max(r.max, hi)
	}
	if r.max == r.min {
		// Degenerate extent: pad so position math stays defined.
		r.min--
		r.max++
	}
	return r
}

// rowExtent returns the widest span a row occupies on the value axis.
func rowExtent(row *model.Row) (float64, float64) {
	lo, hi := row.Estimate, row.Estimate
	if row.Inner != nil {
		lo, hi = math.Min(lo, row.Inner.Low), math.Max(hi, row.Inner.High)
	}
	if row.Outer != nil {
		lo, hi = math.Min(lo, row.Outer.Low), math.Max(hi, row.Outer.High)
	}
	return lo, hi
}

// drawPanel renders the rows of one panel: a right-aligned label column,
// the whisker lines, and a numeric axis footer.
func drawPanel(rows model.TidyTable, r valueRange, width int, colorFor func(model.Row) lipgloss.Color) string {
	labelWidth := 0
	for i := range rows {
		if w := lipgloss.Width(rows[i].DisplayName); w > labelWidth {
			labelWidth = w
		}
	}

	var lines []string
	for i := range rows {
		style := lipgloss.NewStyle().Foreground(colorFor(rows[i]))
		label := fmt.Sprintf("%*s", labelWidth, rows[i].DisplayName)
		lines = append(lines, labelStyle.Render(label)+" "+drawWhisker(&rows[i], r, width, style))
	}
	lines = append(lines, strings.Repeat(" ", labelWidth+1)+axisFooter(r, width))
	return strings.Join(lines, "\n")
}

// drawWhisker renders one coefficient's line: outer tier light, inner
// tier heavy, estimate point on top, zero line behind everything.
func drawWhisker(row *model.Row, r valueRange, width int, style lipgloss.Style) string {
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = glyphBlank
	}

	zero := -1
	if r.min <= 0 && 0 <= r.max {
		zero = position(0, r, width)
		cells[zero] = glyphZero
	}

	if row.Outer != nil && !math.IsNaN(row.Outer.Low) && !math.IsNaN(row.Outer.High) {
		fill(cells, position(row.Outer.Low, r, width), position(row.Outer.High, r, width), glyphOuter)
	}
	if row.Inner != nil && !math.IsNaN(row.Inner.Low) && !math.IsNaN(row.Inner.High) {
		fill(cells, position(row.Inner.Low, r, width), position(row.Inner.High, r, width), glyphInner)
	}
	if !math.IsNaN(row.Estimate) {
		cells[position(row.Estimate, r, width)] = glyphPoint
	}

	// Style the whisker glyphs in the row color, the zero line in the
	// axis color, and leave blanks unstyled.
	var b strings.Builder
	for i, ch := range cells {
		switch {
		case ch == glyphBlank:
			b.WriteRune(ch)
		case i == zero && ch == glyphZero:
			b.WriteString(axisStyle.Render(string(ch)))
		default:
			b.WriteString(style.Render(string(ch)))
		}
	}
	return b.String()
}

// axisFooter renders the numeric scale under a panel: min, zero (when in
// range) and max.
func axisFooter(r valueRange, width int) string {
	line := make([]rune, width)
	for i := range line {
		line[i] = '╌'
	}
	footer := axisStyle.Render(string(line))

	left := fmt.Sprintf("%.4g", r.min)
	right := fmt.Sprintf("%.4g", r.max)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	numbers := axisStyle.Render(left + strings.Repeat(" ", gap) + right)
	return footer + "\n" + numbers
}

// position maps a value onto a cell index in [0, width).
func position(v float64, r valueRange, width int) int {
	frac := (v - r.min) / (r.max - r.min)
	idx := int(math.Round(frac * float64(width-1)))
	if idx < 0 {
		idx = 0
	}
	if idx > width-1 {
		idx = width - 1
	}
	return idx
}

// fill draws a whisker span, clamped to the panel.
func fill(cells []rune, from, to int, glyph rune) {
	if from > to {
		from, to = to, from
	}
	for i := from; i <= to && i < len(cells); i++ {
		if i >= 0 {
			cells[i] = glyph
		}
	}
}

// rowsForModel selects the rows belonging to one model label, keeping
// table order.
func rowsForModel(table model.TidyTable, label string) model.TidyTable {
	var rows model.TidyTable
	for i := range table {
		if table[i].ModelLabel == label {
			rows = append(rows, table[i])
		}
	}
	return rows
}

// arrangeGrid lays panels out in rows of the given column count.
func arrangeGrid(panels []string, columns int) string {
	if columns < 1 {
		columns = 1
	}
	var rows []string
	for start := 0; start < len(panels); start += columns {
		end := start + columns
		if end > len(panels) {
			end = len(panels)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panels[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// namedColor resolves a pass-through color name onto an ANSI color.
func namedColor(name string) lipgloss.Color {
	if c, ok := namedColors[strings.ToLower(name)]; ok {
		return c
	}
	return modelPalette[0]
}
