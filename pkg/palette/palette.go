// Package palette holds the registry of named colormaps. Each colormap is
// an ordered list of anchor colors that pkg/gradient expands into a full
// ramp. The registry is populated at init and read-only afterwards, so
// concurrent lookups need no locking.
package palette

import "sort"

// colorRanges maps colormap names to their anchor colors. The anchors are
// hand-curated approximations of the matplotlib/seaborn maps of the same
// name, ordered from the low end of the scale to the high end.
var colorRanges = map[string][]string{
	"rocket": {"#0d0890", "#6a00b0", "#cb4680", "#ed6d50", "#fca640", "#fbf919"},
	"blues":  {"#f7fbff", "#dfeeff", "#c8d8ff", "#a8c0ff", "#6aa1ff", "#2180ff"},
	"greens": {"#f7fcf5", "#e6f5e0", "#c8e9c0", "#a2d99b", "#74c476", "#239045"},
	"reds":   {"#fff5f5", "#fee0e0", "#fcb8b8", "#fb7d7d", "#f44336", "#d32f2f"},
	"greys":  {"#f5f5f5", "#e0e0e0", "#bdbdbd", "#9e9e9e", "#757575", "#424242"},

	"lava": {"#0d0887", "#350498", "#5402a3", "#7000a9", "#8b0ea7", "#a82296",
		"#c43d83", "#db5d70", "#f07d5f", "#fb9f47", "#fdca26"},

	// Rainbow with adjusted brightness in the yellow-green range
	"rainbow": {"#ff0000", "#ff4400", "#ff8800", "#ddaa00", "#88cc00",
		"#44dd44", "#00ddaa", "#00aaff", "#0088ff", "#0044ff",
		"#0000ff"},

	"pastel_rainbow": {"#f08080", "#f09080", "#f0b080", "#e0c080", "#d0d080",
		"#c0e0c0", "#b0e0d0", "#a0d0f0", "#a0b0f0", "#90a0f0",
		"#8080f0"},

	"viridis": {"#440154", "#482576", "#414487", "#35608d", "#2a788e",
		"#21918c", "#22a884", "#43bf71", "#7ad151", "#dce319"},
	"magma": {"#000004", "#180f3d", "#4b0c6b", "#781c6d", "#a52c60", "#cf4446",
		"#ed6925", "#fb9a06", "#f7d03c", "#fcfda4"},

	"coolwarm": {"#3b4cc0", "#6690e1", "#9cb9e3", "#c8d8d6", "#e7c0a2",
		"#f58e6e", "#d63c5a"},

	"inferno": {"#000004", "#1c1044", "#4f0a71", "#7b0d59", "#a11737",
		"#cb2c1a", "#ed6925", "#fdab5b", "#f8e565"},

	"plasma": {"#0d0887", "#5b02a3", "#9a179b", "#cc4778", "#ed6d47", "#fca336",
		"#eff821"},
}

// Resolve returns the anchor colors registered under name. The returned
// slice is a copy; callers may modify it freely.
func Resolve(name string) ([]string, error) {
	anchors, ok := colorRanges[name]
	if !ok {
		return nil, &UnknownPaletteError{Name: name}
	}
	out := make([]string, len(anchors))
	copy(out, anchors)
	return out, nil
}

// Names returns all registered colormap names, sorted.
func Names() []string {
	names := make([]string, 0, len(colorRanges))
	for name := range colorRanges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
