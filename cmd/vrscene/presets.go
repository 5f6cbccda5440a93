// cmd/vrscene/presets.go
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go-vr-scene/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the environment presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		lib, err := loadPresets(cfg.PresetsFile)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tGROUND\tSKY\tHORIZON\tFOG")
		for _, id := range lib.IDs() {
			p := lib[id]
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g\n", p.ID, p.Ground, p.SkyColor, p.HorizonColor, p.Fog)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
