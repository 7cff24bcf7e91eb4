package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "htmlplot",
		Short: "Generate HTML heatmaps from numeric grids",
	}

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newPalettesCmd())
	rootCmd.AddCommand(newDemoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
