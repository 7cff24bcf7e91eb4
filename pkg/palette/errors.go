package palette

import "fmt"

// UnknownPaletteError is returned by Resolve when the requested colormap
// name is not registered. There is no fallback map.
type UnknownPaletteError struct {
	Name string
}

func (e *UnknownPaletteError) Error() string {
	return fmt.Sprintf("color map %q is not registered", e.Name)
}
