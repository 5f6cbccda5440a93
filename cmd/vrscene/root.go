// cmd/vrscene/root.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vrscene",
	Short: "vrscene renders a small interactive 3D scene",
	Long: `vrscene shows an octahedron on procedural terrain with a gaze cursor.
Clicking the shape, pressing C or clicking the color swatch picks a new color.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed for color changes (0 = time based)")
}
