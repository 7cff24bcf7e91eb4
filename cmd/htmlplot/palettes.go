package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/john-critchley/htmlplotlib/pkg/gradient"
	"github.com/john-critchley/htmlplotlib/pkg/heatmap"
	"github.com/john-critchley/htmlplotlib/pkg/palette"
	"github.com/spf13/cobra"
)

func newPalettesCmd() *cobra.Command {
	var swatch string

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List registered color maps",
		RunE: func(cmd *cobra.Command, args []string) error {
			if swatch != "" {
				page, err := buildSwatchPage()
				if err != nil {
					return err
				}
				return os.WriteFile(swatch, []byte(page), 0644)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, name := range palette.Names() {
				anchors, err := palette.Resolve(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d anchors\t%s .. %s\n", name, len(anchors), anchors[0], anchors[len(anchors)-1])
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&swatch, "swatch", "", "Write an HTML page with one gradient bar per color map")
	return cmd
}

// buildSwatchPage renders every registered colormap as a labeled gradient
// bar on one HTML page.
func buildSwatchPage() (string, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><body style=\"font-family: sans-serif;\">\n<h1>htmlplotlib color maps</h1>\n")
	for _, name := range palette.Names() {
		anchors, err := palette.Resolve(name)
		if err != nil {
			return "", err
		}
		ramp, err := gradient.Linear(anchors, 256)
		if err != nil {
			return "", err
		}
		bar, err := heatmap.RenderLegend(ramp, heatmap.Range{Lo: 0, Hi: 1}, heatmap.LegendOptions{
			Orientation: heatmap.Horizontal,
			TickCount:   6,
			Fmt:         ".1f",
		}, 400)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "<h3>%s</h3>\n%s\n", name, bar)
	}
	b.WriteString("</body></html>\n")
	return b.String(), nil
}
