package heatmap

import (
	"html"
	"math"

	"github.com/john-critchley/htmlplotlib/pkg/gradient"
)

// colorIndex maps a normalized value onto a ramp index. The index is
// clamped rather than the value, so explicit vmin/vmax that exclude part
// of the data saturate at the ramp ends instead of reading out of bounds.
func colorIndex(norm float64, n int) int {
	idx := int(math.Round(norm * float64(n-1)))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// renderGrid builds the table markup: an optional column-header row, then
// one row per grid row with an optional row-header cell and one colored td
// per value. raw supplies the cell text, norm the color positions.
func renderGrid(raw, norm [][]float64, ramp []string, opts Options) (string, error) {
	rows, cols := len(raw), len(raw[0])

	if opts.XTickLabels != nil && len(opts.XTickLabels) != cols {
		return "", &LabelCountMismatchError{Axis: "x", Got: len(opts.XTickLabels), Want: cols}
	}
	if opts.YTickLabels != nil && len(opts.YTickLabels) != rows {
		return "", &LabelCountMismatchError{Axis: "y", Got: len(opts.YTickLabels), Want: rows}
	}

	cellW, cellH := opts.cellSize()
	data := gridData{
		FontSize:  opts.FontSize,
		LineWidth: opts.LineWidths,
		LineColor: opts.LineColor,
		HasHeader: opts.XTickLabels != nil,
		Corner:    opts.XTickLabels != nil && opts.YTickLabels != nil,
	}
	for _, label := range opts.XTickLabels {
		data.Headers = append(data.Headers, html.EscapeString(label))
	}

	for i := 0; i < rows; i++ {
		row := gridRow{HasLabel: opts.YTickLabels != nil}
		if row.HasLabel {
			row.Label = html.EscapeString(opts.YTickLabels[i])
		}
		for j := 0; j < cols; j++ {
			fill := ramp[colorIndex(norm[i][j], len(ramp))]
			textColor, err := gradient.TextColorFor(fill)
			if err != nil {
				return "", err
			}
			cell := gridCell{
				Fill:      fill,
				TextColor: textColor,
				Width:     cellW,
				Height:    cellH,
			}
			if opts.Annot {
				cell.Text = html.EscapeString(formatValue(opts.Fmt, raw[i][j]))
			}
			row.Cells = append(row.Cells, cell)
		}
		data.Rows = append(data.Rows, row)
	}

	return renderTemplate("grid", gridTemplateStr, data)
}
