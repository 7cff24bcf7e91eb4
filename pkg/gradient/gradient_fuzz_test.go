package gradient

import (
	"regexp"
	"testing"
)

var fuzzHexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func FuzzTextColorFor(f *testing.F) {
	// Seed with valid colors and near-misses
	f.Add("#000000")
	f.Add("#ffffff")
	f.Add("#7f7f7f")
	f.Add("#fff")
	f.Add("not-a-color")
	f.Add("")

	f.Fuzz(func(t *testing.T, bg string) {
		got, err := TextColorFor(bg)
		if err != nil {
			return
		}
		if got != "#ffffff" && got != "#000000" {
			t.Errorf("TextColorFor(%q) = %q, want pure white or pure black", bg, got)
		}
	})
}

func FuzzLinear(f *testing.F) {
	f.Add("#000000", "#ffffff", 256)
	f.Add("#ff0000", "#0000ff", 1)
	f.Add("bogus", "#0000ff", 16)
	f.Add("#ff0000", "#0000ff", -3)

	f.Fuzz(func(t *testing.T, a, b string, n int) {
		if n > 1<<16 {
			t.Skip("ramp size too large to be interesting")
		}
		ramp, err := Linear([]string{a, b}, n)
		if err != nil {
			return
		}
		if len(ramp) != n {
			t.Fatalf("Linear returned %d colors, want %d", len(ramp), n)
		}
		for _, c := range ramp {
			if !fuzzHexColor.MatchString(c) {
				t.Errorf("malformed ramp color %q", c)
			}
		}
	})
}
