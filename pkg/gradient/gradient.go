// Package gradient expands anchor-color sequences into full color ramps
// and picks readable text colors against arbitrary backgrounds.
package gradient

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Linear samples n evenly spaced colors from the gradient defined by the
// anchor colors. The k anchors act as control points at positions
// 0, 1/(k-1), ..., 1; each output color is a per-channel linear RGB blend
// of the bounding anchor pair, rounded to the nearest channel value and
// formatted as lowercase #rrggbb. Pure and deterministic, so callers may
// cache the result or simply recompute it per render.
func Linear(anchors []string, n int) ([]string, error) {
	if len(anchors) < 2 {
		return nil, &InvalidPaletteError{Anchors: len(anchors)}
	}
	if n < 1 {
		return nil, fmt.Errorf("ramp size must be at least 1, got %d", n)
	}

	stops := make([]colorful.Color, len(anchors))
	for i, a := range anchors {
		c, err := parseHex(a)
		if err != nil {
			return nil, err
		}
		stops[i] = c
	}

	ramp := make([]string, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		pos := t * float64(len(stops)-1)
		lower := int(math.Floor(pos))
		upper := int(math.Ceil(pos))
		mix := pos - float64(lower)
		ramp[i] = stops[lower].BlendRgb(stops[upper], mix).Clamped().Hex()
	}
	return ramp, nil
}

// TextColorFor returns pure white or pure black, whichever reads better
// on the given background. The brightness rule is the plain channel mean
// (r+g+b)/3 scaled to [0,1], with white text below 0.5. This is the only
// contrast formula in the package; HSV value is deliberately not used.
func TextColorFor(bg string) (string, error) {
	c, err := parseHex(bg)
	if err != nil {
		return "", err
	}
	brightness := (c.R + c.G + c.B) / 3
	if brightness < 0.5 {
		return "#ffffff", nil
	}
	return "#000000", nil
}

// parseHex accepts only the 7-character #rrggbb form. go-colorful would
// also take #rgb shorthand, which the markup contract does not allow.
func parseHex(s string) (colorful.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return colorful.Color{}, &InvalidColorError{Color: s}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, &InvalidColorError{Color: s}
	}
	return c, nil
}
