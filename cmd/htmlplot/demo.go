package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/john-critchley/htmlplotlib/pkg/heatmap"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var (
		outFile string
		size    int
		seed    int64
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write an example heatmap with random data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return fmt.Errorf("size must be at least 1, got %d", size)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			grid := make([][]float64, size)
			xticks := make([]string, size)
			yticks := make([]string, size)
			for i := 0; i < size; i++ {
				grid[i] = make([]float64, size)
				for j := 0; j < size; j++ {
					grid[i][j] = rng.Float64()
				}
				xticks[i] = columnLabel(i)
				yticks[i] = strconv.Itoa(i)
			}

			opts := heatmap.Options{
				Annot:       true,
				Fmt:         ".2f",
				Cmap:        "coolwarm",
				Square:      true,
				LineWidths:  1,
				LineColor:   "white",
				XTickLabels: xticks,
				YTickLabels: yticks,
				XLabel:      "X",
				YLabel:      "y",
				ScaleFactor: 0.75,
			}

			var s *spinner.Spinner
			if !quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
				s.Suffix = fmt.Sprintf(" Rendering %dx%d demo heatmap...", size, size)
				s.Start()
			}

			out, err := heatmap.HTML(grid, opts)

			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}
			return writeOutput(outFile, out)
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "heatmap.html", "Output file")
	cmd.Flags().IntVar(&size, "size", 16, "Grid size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}
