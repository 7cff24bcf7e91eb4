package heatmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLegendTickValues(t *testing.T) {
	ramp := greysRamp(t, 256)
	opts := LegendOptions{Orientation: Horizontal, TickCount: 5, Fmt: ".1f"}

	out, err := RenderLegend(ramp, Range{Lo: 0, Hi: 10}, opts, 400)
	require.NoError(t, err)

	for _, label := range []string{">0.0<", ">2.5<", ">5.0<", ">7.5<", ">10.0<"} {
		assert.Contains(t, out, label)
	}
	assert.Equal(t, 5, strings.Count(out, "<span"))
}

func TestRenderLegendTickPositions(t *testing.T) {
	ramp := greysRamp(t, 256)
	opts := LegendOptions{Orientation: Horizontal, TickCount: 5, Fmt: ".1f"}

	out, err := RenderLegend(ramp, Range{Lo: 0, Hi: 10}, opts, 400)
	require.NoError(t, err)

	for _, pos := range []string{"left: 0.00%", "left: 25.00%", "left: 50.00%", "left: 75.00%", "left: 100.00%"} {
		assert.Contains(t, out, pos)
	}
	// The sliding translate keeps edge ticks anchored inside the bar.
	assert.Contains(t, out, "translate(-0.00%, -50%)")
	assert.Contains(t, out, "translate(-100.00%, -50%)")
}

func TestRenderLegendHorizontal(t *testing.T) {
	ramp := greysRamp(t, 256)
	opts := LegendOptions{Orientation: Horizontal, TickCount: 6, Fmt: ".1f"}

	out, err := RenderLegend(ramp, Range{Lo: 0, Hi: 1}, opts, 600)
	require.NoError(t, err)

	assert.Contains(t, out, "linear-gradient(to right, ")
	assert.Contains(t, out, "width: 600px; height: 20px;")
	assert.NotContains(t, out, "top: 0.00%")
}

func TestRenderLegendVertical(t *testing.T) {
	ramp := greysRamp(t, 256)
	opts := LegendOptions{Orientation: Vertical, TickCount: 6, Fmt: ".1f"}

	out, err := RenderLegend(ramp, Range{Lo: 0, Hi: 1}, opts, 300)
	require.NoError(t, err)

	assert.Contains(t, out, "linear-gradient(to bottom, ")
	assert.Contains(t, out, "width: 20px; height: 300px;")
	assert.Contains(t, out, "top: 0.00%")
	assert.Contains(t, out, "translate(-50%, -100.00%)")
}

func TestRenderLegendGradientStops(t *testing.T) {
	ramp := []string{"#000000", "#808080", "#ffffff"}
	opts := LegendOptions{Orientation: Horizontal, TickCount: 2, Fmt: ".1f"}

	out, err := RenderLegend(ramp, Range{Lo: 0, Hi: 1}, opts, 100)
	require.NoError(t, err)
	assert.Contains(t, out, "linear-gradient(to right, #000000, #808080, #ffffff)")
}

func TestRenderLegendTickContrast(t *testing.T) {
	// greys runs light to dark, so the 0% tick gets black text and the
	// 100% tick white text.
	ramp := greysRamp(t, 256)
	opts := LegendOptions{Orientation: Horizontal, TickCount: 2, Fmt: ".1f"}

	out, err := RenderLegend(ramp, Range{Lo: 0, Hi: 1}, opts, 100)
	require.NoError(t, err)

	first := strings.Index(out, "color: #000000;")
	second := strings.Index(out, "color: #ffffff;")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestRenderLegendErrors(t *testing.T) {
	ramp := greysRamp(t, 16)

	_, err := RenderLegend(nil, Range{Lo: 0, Hi: 1}, LegendOptions{TickCount: 5, Fmt: ".1f"}, 100)
	assert.Error(t, err)

	_, err = RenderLegend(ramp, Range{Lo: 0, Hi: 1}, LegendOptions{TickCount: 1, Fmt: ".1f"}, 100)
	assert.Error(t, err)
}
