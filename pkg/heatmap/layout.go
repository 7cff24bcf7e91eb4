package heatmap

import "html"

// composeLayout assembles the axis-title blocks, the grid and the legend
// into the final fragment. Horizontal legends sit below the grid inside a
// column flexbox; vertical legends sit to its right. Pure concatenation,
// no data computation.
func composeLayout(gridHTML, legendHTML string, opts Options, rows int) (string, error) {
	_, cellH := opts.cellSize()
	data := layoutData{
		Grid:         gridHTML,
		Legend:       legendHTML,
		XLabel:       html.EscapeString(opts.XLabel),
		YLabel:       html.EscapeString(opts.YLabel),
		YLabelHeight: cellH * float64(rows),
		Horizontal:   opts.Legend.Orientation != Vertical,
	}
	return renderTemplate("layout", layoutTemplateStr, data)
}
