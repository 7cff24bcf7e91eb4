package heatmap

import (
	"fmt"
	"math"
)

// formatValue renders v according to a Python-style format spec such as
// ".2f", ".0e" or "d". The spec is the part after the colon in a Python
// format string; an empty spec falls back to ".2f". Unrecognized verbs
// render with %v so a bad spec never panics mid-render.
func formatValue(spec string, v float64) string {
	if spec == "" {
		spec = ".2f"
	}
	verb := spec[len(spec)-1]
	switch verb {
	case 'f', 'F', 'e', 'E', 'g', 'G':
		return fmt.Sprintf("%"+spec, v)
	case 'd':
		return fmt.Sprintf("%"+spec[:len(spec)-1]+"d", int64(math.Round(v)))
	default:
		return fmt.Sprintf("%v", v)
	}
}
