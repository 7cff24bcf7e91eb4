package heatmap

// Orientation selects the legend's primary axis and its placement
// relative to the grid.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// DebugHTMLComments is the debug tag that wraps each markup block in
// paired HTML comments naming the sub-renderer that produced it.
const DebugHTMLComments = "html comments"

const (
	// Cell geometry bases in px, before the scale factor. Non-square
	// cells intentionally use a smaller height base than width base.
	baseCellWidth  = 50.0
	baseCellHeight = 30.0

	// legendThickness is the secondary-axis size of the legend bar in px.
	legendThickness = 20.0
)

// LegendOptions configures the color-scale legend.
type LegendOptions struct {
	Orientation Orientation // horizontal (below the grid) or vertical (right of it)
	TickCount   int         // number of tick labels along the bar
	Fmt         string      // format spec for tick values, e.g. ".1f"
}

// Options is the configuration bag for a render. DefaultOptions supplies
// the documented defaults; a zero Options renders with defaults too,
// except that Annot stays false (no cell text).
type Options struct {
	Annot       bool     // write the formatted raw value into each cell
	Fmt         string   // cell value format spec, e.g. ".2f"
	Cmap        string   // registered colormap name
	VMin        *float64 // explicit lower bound; nil = data minimum
	VMax        *float64 // explicit upper bound; nil = data maximum
	Nice        bool     // round the value range outward to power-of-ten bounds
	Square      bool     // equal cell width and height
	LineWidths  float64  // cell border width in px; 0 hides borders
	LineColor   string   // cell border color
	XTickLabels []string // column header labels; length must equal cols
	YTickLabels []string // row header labels; length must equal rows
	XLabel      string   // x-axis title
	YLabel      string   // y-axis title
	FontSize    int      // table font size in px
	ScaleFactor float64  // multiplier on the cell geometry bases
	RampSize    int      // number of colors interpolated from the palette
	Legend      LegendOptions
	Debug       []string // debug tags, see DebugHTMLComments
}

// DefaultOptions returns the documented defaults: annotated cells,
// ".2f" values, the rocket colormap, a 256-color ramp and a horizontal
// 6-tick legend.
func DefaultOptions() Options {
	o := Options{Annot: true}
	return o.withDefaults()
}

// withDefaults fills unset fields with their defaults.
func (o Options) withDefaults() Options {
	if o.Fmt == "" {
		o.Fmt = ".2f"
	}
	if o.Cmap == "" {
		o.Cmap = "rocket"
	}
	if o.LineColor == "" {
		o.LineColor = "black"
	}
	if o.FontSize == 0 {
		o.FontSize = 12
	}
	if o.ScaleFactor == 0 {
		o.ScaleFactor = 1.0
	}
	if o.RampSize == 0 {
		o.RampSize = 256
	}
	if o.Legend.Orientation == "" {
		o.Legend.Orientation = Horizontal
	}
	if o.Legend.TickCount == 0 {
		o.Legend.TickCount = 6
	}
	if o.Legend.Fmt == "" {
		o.Legend.Fmt = ".1f"
	}
	return o
}

// cellSize returns the cell width and height in px after scaling.
func (o Options) cellSize() (w, h float64) {
	w = baseCellWidth * o.ScaleFactor
	if o.Square {
		return w, w
	}
	return w, baseCellHeight * o.ScaleFactor
}

func (o Options) debugComments() bool {
	for _, tag := range o.Debug {
		if tag == DebugHTMLComments {
			return true
		}
	}
	return false
}
