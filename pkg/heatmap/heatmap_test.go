package heatmap

import (
	"errors"
	"strings"
	"testing"

	"github.com/john-critchley/htmlplotlib/pkg/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSingleCellRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	opts.Cmap = "greys"
	opts.Fmt = ".1f"
	opts.VMin = fptr(0)
	opts.VMax = fptr(1)

	out, err := HTML([][]float64{{0.5}}, opts)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "<td"), "exactly one data cell")
	assert.Contains(t, out, ">0.5</td>")

	// The cell background must be the ramp's midpoint color.
	ramp := greysRamp(t, 256)
	assert.Contains(t, out, "background-color: "+ramp[colorIndex(0.5, 256)])
}

func TestRenderFullFragment(t *testing.T) {
	opts := DefaultOptions()
	opts.Cmap = "coolwarm"
	opts.XTickLabels = []string{"A", "B"}
	opts.YTickLabels = []string{"0", "1"}
	opts.XLabel = "X Axis"
	opts.YLabel = "Y Axis"

	out, err := HTML([][]float64{{0, 1}, {2, 3}}, opts)
	require.NoError(t, err)

	assert.Contains(t, out, "<table")
	assert.Contains(t, out, "linear-gradient(to right, ")
	assert.Contains(t, out, ">X Axis</div>")
	assert.Contains(t, out, ">Y Axis</div>")
	assert.Contains(t, out, "writing-mode: vertical-rl")
	assert.Contains(t, out, "flex-direction: column")
}

func TestRenderVerticalLegendLayout(t *testing.T) {
	opts := DefaultOptions()
	opts.Legend.Orientation = Vertical

	out, err := HTML([][]float64{{0, 1}, {2, 3}}, opts)
	require.NoError(t, err)

	assert.Contains(t, out, "linear-gradient(to bottom, ")
	assert.NotContains(t, out, "flex-direction: column")
	// Legend sits inside the flex row, after the grid.
	gridIdx := strings.Index(out, "<table")
	legendIdx := strings.Index(out, "linear-gradient")
	rowEnd := strings.LastIndex(out, "</div>")
	assert.Less(t, gridIdx, legendIdx)
	assert.Less(t, legendIdx, rowEnd)
}

func TestRenderLegendLengthTracksGrid(t *testing.T) {
	// Horizontal legend spans the grid width: 3 cols x 50px.
	out, err := HTML([][]float64{{0, 1, 2}}, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "width: 150px; height: 20px;")

	// Vertical legend spans the grid height: 2 rows x 30px.
	opts := DefaultOptions()
	opts.Legend.Orientation = Vertical
	out, err = HTML([][]float64{{0, 1}, {2, 3}}, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "width: 20px; height: 60px;")
}

func TestRenderDebugComments(t *testing.T) {
	opts := DefaultOptions()
	opts.Debug = []string{DebugHTMLComments}

	out, err := HTML([][]float64{{0, 1}}, opts)
	require.NoError(t, err)

	for _, marker := range []string{
		"<!-- grid -->", "<!-- end grid -->",
		"<!-- legend -->", "<!-- end legend -->",
		"<!-- layout -->", "<!-- end layout -->",
	} {
		assert.Contains(t, out, marker)
	}

	// Markers are purely diagnostic: stripping them yields the plain render.
	plain, err := HTML([][]float64{{0, 1}}, DefaultOptions())
	require.NoError(t, err)
	stripped := out
	for _, section := range []string{"grid", "legend", "layout"} {
		stripped = strings.ReplaceAll(stripped, "<!-- "+section+" -->", "")
		stripped = strings.ReplaceAll(stripped, "<!-- end "+section+" -->", "")
	}
	assert.Equal(t, plain, stripped)
}

func TestRenderNoDebugCommentsByDefault(t *testing.T) {
	out, err := HTML([][]float64{{0, 1}}, DefaultOptions())
	require.NoError(t, err)
	assert.NotContains(t, out, "<!--")
}

func TestRenderUnknownPalette(t *testing.T) {
	opts := DefaultOptions()
	opts.Cmap = "nope"

	_, err := HTML([][]float64{{0, 1}}, opts)
	var unknownErr *palette.UnknownPaletteError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "nope", unknownErr.Name)
}

func TestRenderDegenerateRange(t *testing.T) {
	_, err := HTML([][]float64{{7, 7}, {7, 7}}, DefaultOptions())
	var rangeErr *DegenerateRangeError
	assert.True(t, errors.As(err, &rangeErr))
}

func TestRenderLabelMismatch(t *testing.T) {
	opts := DefaultOptions()
	opts.XTickLabels = []string{"only one"}

	_, err := HTML([][]float64{{0, 1}, {2, 3}}, opts)
	var mismatchErr *LabelCountMismatchError
	assert.True(t, errors.As(err, &mismatchErr))
}

func TestRenderEscapesAxisTitles(t *testing.T) {
	opts := DefaultOptions()
	opts.XLabel = "a<b"

	out, err := HTML([][]float64{{0, 1}}, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "a&lt;b")
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	grid := [][]float64{{0, 1}, {2, 3}}
	_, err := HTML(grid, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {2, 3}}, grid)
}

func TestShow(t *testing.T) {
	var sb strings.Builder
	h := New([][]float64{{0, 1}}, DefaultOptions())

	err := h.Show(WriterSink{W: &sb})
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "<table")
}

func TestShowPropagatesRenderError(t *testing.T) {
	var sb strings.Builder
	h := New([][]float64{{1, 1}}, DefaultOptions())

	err := h.Show(WriterSink{W: &sb})
	require.Error(t, err)
	assert.Empty(t, sb.String(), "no partial output on failure")
}

func TestZeroOptionsUsable(t *testing.T) {
	out, err := HTML([][]float64{{0, 1}}, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "<table")
	assert.Contains(t, out, `;"></td>`, "zero Options leaves annotation off")
}
