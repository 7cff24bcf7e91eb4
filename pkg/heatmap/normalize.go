package heatmap

import "math"

// Range is a resolved value range. Lo < Hi holds for every Range produced
// by Normalize.
type Range struct {
	Lo, Hi float64
}

// Span returns Hi - Lo.
func (r Range) Span() float64 { return r.Hi - r.Lo }

// At linearly interpolates the range at fraction f in [0,1].
func (r Range) At(f float64) float64 { return r.Lo + f*r.Span() }

// Normalize resolves the value range for the grid and rescales every cell
// into a position relative to it. Explicit bounds take precedence over the
// data extrema; a missing bound falls back to the corresponding extremum.
// With nice set, the resolved pair is rounded outward to power-of-ten
// aligned bounds. Normalized values are NOT clamped: explicit bounds that
// exclude part of the data legitimately produce values outside [0,1], and
// color lookup clamps the ramp index instead.
func Normalize(data [][]float64, vmin, vmax *float64, nice bool) (Range, [][]float64, error) {
	if err := validateGrid(data); err != nil {
		return Range{}, nil, err
	}

	lo, hi := extrema(data)
	if vmin != nil {
		lo = *vmin
	}
	if vmax != nil {
		hi = *vmax
	}

	r := Range{Lo: lo, Hi: hi}
	if r.Span() <= 0 {
		return Range{}, nil, &DegenerateRangeError{Lo: lo, Hi: hi}
	}
	if nice {
		r = niceRange(r)
	}

	norm := make([][]float64, len(data))
	for i, row := range data {
		norm[i] = make([]float64, len(row))
		for j, v := range row {
			norm[i][j] = (v - r.Lo) / r.Span()
		}
	}
	return r, norm, nil
}

// niceRange rounds the range outward to multiples of the largest power of
// ten not exceeding the span. The caller guarantees a positive span, so
// log10 is well-defined.
func niceRange(r Range) Range {
	magnitude := math.Pow(10, math.Floor(math.Log10(r.Span())))
	return Range{
		Lo: math.Floor(r.Lo/magnitude) * magnitude,
		Hi: math.Ceil(r.Hi/magnitude) * magnitude,
	}
}

func validateGrid(data [][]float64) error {
	if len(data) == 0 || len(data[0]) == 0 {
		return ErrEmptyGrid
	}
	cols := len(data[0])
	for _, row := range data[1:] {
		if len(row) != cols {
			return ErrRaggedGrid
		}
	}
	return nil
}

func extrema(data [][]float64) (lo, hi float64) {
	lo, hi = data[0][0], data[0][0]
	for _, row := range data {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}
