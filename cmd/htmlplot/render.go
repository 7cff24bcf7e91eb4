package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/john-critchley/htmlplotlib/pkg/config"
	"github.com/john-critchley/htmlplotlib/pkg/heatmap"
	"github.com/john-critchley/htmlplotlib/pkg/logger"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	// Load config to get flag defaults
	defaultCfg := config.Load(config.ConstantConfigFilename)

	var (
		cmap        string
		fmtSpec     string
		legendFmt   string
		vmin        float64
		vmax        float64
		nice        bool
		annot       bool
		square      bool
		lineWidth   float64
		lineColor   string
		xlabel      string
		ylabel      string
		xticks      string
		yticks      string
		xHeader     bool
		yHeader     bool
		fontSize    int
		scale       float64
		rampSize    int
		orientation string
		tickCount   int
		outFile     string
		debugHTML   bool
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "render <input.csv>",
		Short: "Render a CSV grid as an HTML heatmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := defaultCfg.Validate(); err != nil {
				return err
			}
			log := logger.New(os.Stderr, defaultCfg.LogLevel)

			grid, headerX, headerY, err := readCSVGrid(args[0], xHeader, yHeader)
			if err != nil {
				return err
			}

			opts := heatmap.Options{
				Annot:       annot,
				Fmt:         fmtSpec,
				Cmap:        cmap,
				Nice:        nice,
				Square:      square,
				LineWidths:  lineWidth,
				LineColor:   lineColor,
				XLabel:      xlabel,
				YLabel:      ylabel,
				FontSize:    fontSize,
				ScaleFactor: scale,
				RampSize:    rampSize,
				Legend: heatmap.LegendOptions{
					Orientation: heatmap.Orientation(orientation),
					TickCount:   tickCount,
					Fmt:         legendFmt,
				},
			}
			if cmd.Flags().Changed("vmin") {
				opts.VMin = &vmin
			}
			if cmd.Flags().Changed("vmax") {
				opts.VMax = &vmax
			}
			if xticks != "" {
				opts.XTickLabels = splitLabels(xticks)
			} else if xHeader {
				opts.XTickLabels = headerX
			}
			if yticks != "" {
				opts.YTickLabels = splitLabels(yticks)
			} else if yHeader {
				opts.YTickLabels = headerY
			}
			if debugHTML {
				opts.Debug = []string{heatmap.DebugHTMLComments}
			}

			rows := len(grid)
			cols := 0
			if rows > 0 {
				cols = len(grid[0])
			}

			var s *spinner.Spinner
			if !quiet && outFile != "" {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
				s.Suffix = fmt.Sprintf(" Rendering %dx%d heatmap...", rows, cols)
				s.Start()
			}

			out, err := heatmap.HTML(grid, opts)

			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}
			log.Debug("rendered heatmap", "rows", rows, "cols", cols, "bytes", len(out))

			return writeOutput(outFile, out)
		},
	}

	cmd.Flags().StringVar(&cmap, "cmap", defaultCfg.Palette, "Color map name (see 'htmlplot palettes')")
	cmd.Flags().StringVar(&fmtSpec, "fmt", defaultCfg.Fmt, "Cell value format spec, e.g. .2f")
	cmd.Flags().StringVar(&legendFmt, "legend-fmt", defaultCfg.LegendFmt, "Legend tick format spec")
	cmd.Flags().Float64Var(&vmin, "vmin", 0, "Lower bound of the value range (default: data minimum)")
	cmd.Flags().Float64Var(&vmax, "vmax", 0, "Upper bound of the value range (default: data maximum)")
	cmd.Flags().BoolVar(&nice, "nice", false, "Round the value range outward to power-of-ten bounds")
	cmd.Flags().BoolVar(&annot, "annot", true, "Write values into the cells")
	cmd.Flags().BoolVar(&square, "square", false, "Use square cells")
	cmd.Flags().Float64Var(&lineWidth, "linewidth", 0, "Cell border width in px")
	cmd.Flags().StringVar(&lineColor, "linecolor", "black", "Cell border color")
	cmd.Flags().StringVar(&xlabel, "xlabel", "", "X axis title")
	cmd.Flags().StringVar(&ylabel, "ylabel", "", "Y axis title")
	cmd.Flags().StringVar(&xticks, "xticks", "", "Comma-separated column labels")
	cmd.Flags().StringVar(&yticks, "yticks", "", "Comma-separated row labels")
	cmd.Flags().BoolVar(&xHeader, "x-header", false, "Treat the first CSV row as column labels")
	cmd.Flags().BoolVar(&yHeader, "y-header", false, "Treat the first CSV column as row labels")
	cmd.Flags().IntVar(&fontSize, "font-size", defaultCfg.FontSize, "Table font size in px")
	cmd.Flags().Float64Var(&scale, "scale", 1.0, "Cell size scale factor")
	cmd.Flags().IntVar(&rampSize, "ramp-size", defaultCfg.RampSize, "Number of interpolated colors")
	cmd.Flags().StringVar(&orientation, "orientation", "horizontal", "Legend orientation: horizontal or vertical")
	cmd.Flags().IntVar(&tickCount, "ticks", defaultCfg.LegendTicks, "Number of legend tick labels")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&debugHTML, "debug-comments", false, "Wrap markup blocks in HTML comments")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}
