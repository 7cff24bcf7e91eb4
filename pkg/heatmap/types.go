package heatmap

// Template data for the three markup templates. Label text is
// HTML-escaped while these are built; colors and geometry are generated
// values and pass through as-is.

type gridCell struct {
	Fill      string
	TextColor string
	Text      string
	Width     float64
	Height    float64
}

type gridRow struct {
	HasLabel bool
	Label    string
	Cells    []gridCell
}

type gridData struct {
	FontSize  int
	LineWidth float64
	LineColor string
	HasHeader bool
	Corner    bool
	Headers   []string
	Rows      []gridRow
}

type legendTick struct {
	Pos   string // percent along the primary axis, e.g. "25.00"
	Color string
	Text  string
}

type legendData struct {
	Width      string // CSS size, thickness for vertical orientation
	Height     string // CSS size, thickness for horizontal orientation
	Direction  string // linear-gradient direction
	Stops      string // comma-joined color stops
	Horizontal bool
	Ticks      []legendTick
}

type layoutData struct {
	Grid         string
	Legend       string
	XLabel       string
	YLabel       string
	YLabelHeight float64 // px, matches the grid height
	Horizontal   bool
}
