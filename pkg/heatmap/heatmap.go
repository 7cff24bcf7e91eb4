// Package heatmap renders a 2D numeric grid as a styled HTML table with
// optional axis labels and a color-scale legend. Rendering is pure and
// synchronous: a call either returns the complete fragment or fails with
// a typed error before producing any output. Nothing is shared between
// calls, so concurrent renders are safe.
package heatmap

import (
	"io"

	"github.com/john-critchley/htmlplotlib/pkg/gradient"
	"github.com/john-critchley/htmlplotlib/pkg/palette"
)

// Heatmap pairs a grid with its render options. The grid is borrowed from
// the caller and never mutated.
type Heatmap struct {
	data [][]float64
	opts Options
}

// New prepares a heatmap for the given grid. Validation happens in
// Render so construction cannot fail.
func New(data [][]float64, opts Options) *Heatmap {
	return &Heatmap{data: data, opts: opts.withDefaults()}
}

// HTML renders the grid in one call. Shorthand for New(data, opts).Render().
func HTML(data [][]float64, opts Options) (string, error) {
	return New(data, opts).Render()
}

// Render produces the full HTML fragment: grid table, axis titles and
// legend. The returned string owns its memory; it holds no references to
// the input grid.
func (h *Heatmap) Render() (string, error) {
	rng, norm, err := Normalize(h.data, h.opts.VMin, h.opts.VMax, h.opts.Nice)
	if err != nil {
		return "", err
	}

	anchors, err := palette.Resolve(h.opts.Cmap)
	if err != nil {
		return "", err
	}
	ramp, err := gradient.Linear(anchors, h.opts.RampSize)
	if err != nil {
		return "", err
	}

	gridHTML, err := renderGrid(h.data, norm, ramp, h.opts)
	if err != nil {
		return "", err
	}

	rows, cols := len(h.data), len(h.data[0])
	cellW, cellH := h.opts.cellSize()
	legendLength := cellW * float64(cols)
	if h.opts.Legend.Orientation == Vertical {
		legendLength = cellH * float64(rows)
	}
	legendHTML, err := RenderLegend(ramp, rng, h.opts.Legend, legendLength)
	if err != nil {
		return "", err
	}

	debug := h.opts.debugComments()
	if debug {
		gridHTML = debugWrap("grid", gridHTML)
		legendHTML = debugWrap("legend", legendHTML)
	}

	full, err := composeLayout(gridHTML, legendHTML, h.opts, rows)
	if err != nil {
		return "", err
	}
	if debug {
		full = debugWrap("layout", full)
	}
	return full, nil
}

// Sink receives a rendered fragment, e.g. a notebook cell, a browser
// widget or a file writer. The renderer itself performs no IO.
type Sink interface {
	Display(html string) error
}

// Show renders the heatmap and hands the fragment to the sink.
func (h *Heatmap) Show(sink Sink) error {
	out, err := h.Render()
	if err != nil {
		return err
	}
	return sink.Display(out)
}

// WriterSink adapts an io.Writer into a Sink.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Display(html string) error {
	_, err := io.WriteString(s.W, html)
	return err
}
