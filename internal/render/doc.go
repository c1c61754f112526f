// Package render is the rendering collaborator: it consumes the tidy
// table and layout descriptor produced by the aggregate package and
// draws a dot-and-whisker coefficient plot for the terminal using
// lipgloss.
//
// The renderer makes no aggregation decisions of its own. Facets, axis
// mode, column count and coloring all come from the layout descriptor;
// styling knobs (point size, line weights, zero-line style, colors)
// arrive as pass-through configuration. Knobs with no terminal analogue
// (text angles, the numeric and horizontal flags) are accepted and
// ignored — the terminal value axis is always horizontal.
package render
