package heatmap

import (
	"fmt"
	"strings"

	"github.com/john-critchley/htmlplotlib/pkg/gradient"
)

// RenderLegend builds the color-scale legend: a gradient bar spanning the
// full ramp plus evenly spaced tick labels. Tick values interpolate the
// un-normalized range, so the legend reads in data units regardless of how
// the grid was normalized. length is the bar's primary-axis size in px.
func RenderLegend(ramp []string, rng Range, opts LegendOptions, length float64) (string, error) {
	if len(ramp) == 0 {
		return "", fmt.Errorf("legend needs a non-empty color ramp")
	}
	if opts.TickCount < 2 {
		return "", fmt.Errorf("legend needs at least 2 ticks, got %d", opts.TickCount)
	}

	horizontal := opts.Orientation != Vertical
	data := legendData{
		Horizontal: horizontal,
		Stops:      strings.Join(ramp, ", "),
	}
	if horizontal {
		data.Direction = "to right"
		data.Width = fmt.Sprintf("%gpx", length)
		data.Height = fmt.Sprintf("%gpx", legendThickness)
	} else {
		data.Direction = "to bottom"
		data.Width = fmt.Sprintf("%gpx", legendThickness)
		data.Height = fmt.Sprintf("%gpx", length)
	}

	for i := 0; i < opts.TickCount; i++ {
		f := float64(i) / float64(opts.TickCount-1)
		// Contrast against the bar color under the label, not the page.
		bg := ramp[colorIndex(f, len(ramp))]
		color, err := gradient.TextColorFor(bg)
		if err != nil {
			return "", err
		}
		data.Ticks = append(data.Ticks, legendTick{
			Pos:   fmt.Sprintf("%.2f", f*100),
			Color: color,
			Text:  formatValue(opts.Fmt, rng.At(f)),
		})
	}

	return renderTemplate("legend", legendTemplateStr, data)
}
