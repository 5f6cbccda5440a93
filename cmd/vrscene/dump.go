// cmd/vrscene/dump.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go-vr-scene/internal/scene"
	"go-vr-scene/internal/utils"
	"go-vr-scene/internal/view"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the scene description without opening a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		changes, _ := cmd.Flags().GetInt("changes")
		seed, _ := cmd.Flags().GetInt64("seed")
		out, _ := cmd.Flags().GetString("out")

		m := view.New(utils.NewPRNGService(seed))
		for i := 0; i < changes; i++ {
			m.ChangeColor()
		}

		w := cmd.OutOrStdout()
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("dump: %w", err)
			}
			defer f.Close()
			w = f
		}
		return writeScene(w, m, format)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringP("format", "f", "yaml", "output format: yaml, json or html")
	dumpCmd.Flags().Int("changes", 0, "apply this many color changes before dumping")
	dumpCmd.Flags().StringP("out", "o", "", "write to a file instead of stdout")
}

// dumpDocument pairs the view state with the tree it renders to. The tree
// alone does not carry the current color.
type dumpDocument struct {
	State view.ViewState `yaml:"state" json:"state"`
	Scene scene.Document `yaml:"scene" json:"scene"`
}

func writeScene(w io.Writer, m *view.Main, format string) error {
	root := m.Render()
	doc := dumpDocument{State: m.State(), Scene: scene.Export(root)}
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case "html":
		if err := scene.WriteAFrame(w, root); err != nil {
			return err
		}
		st := doc.State
		_, err = fmt.Fprintf(w, "<!-- vrscene state: color=%s spherePosition=%s -->\n",
			st.Color, scene.FormatValue(st.SpherePosition))
		return err
	default:
		return fmt.Errorf("dump: unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("dump: marshal %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}
