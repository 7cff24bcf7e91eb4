package gradient

import "fmt"

// InvalidPaletteError is returned when an anchor sequence has fewer than
// two colors. A registered palette triggering this indicates a registry
// bug rather than a user error.
type InvalidPaletteError struct {
	Anchors int
}

func (e *InvalidPaletteError) Error() string {
	return fmt.Sprintf("palette needs at least 2 anchor colors, got %d", e.Anchors)
}

// InvalidColorError is returned when a color string is not a well-formed
// 7-character #rrggbb value.
type InvalidColorError struct {
	Color string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("malformed color %q: want #rrggbb", e.Color)
}
