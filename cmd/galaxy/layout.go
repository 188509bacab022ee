package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/phanxgames/galaxy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	layoutCompact bool
	layoutFormat  string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the computed galaxy layout",
	Long: `Layout computes planet positions, section titles and navigation
anchors for the configured catalog and prints them. The output is the same
on every run for the same catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		exitOnError(err)
		items, err := loadItems(cfg)
		exitOnError(err)

		l := galaxy.ComputeLayout(items, layoutCompact || cfg.Compact, galaxy.DefaultLayoutConfig())
		switch layoutFormat {
		case "yaml":
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(layoutDoc(l))
		case "text":
			return printLayout(cmd.OutOrStdout(), l)
		default:
			return fmt.Errorf("unknown format %q: must be text or yaml", layoutFormat)
		}
	},
}

func init() {
	layoutCmd.Flags().BoolVar(&layoutCompact, "compact", false, "use the compact (touch) layout")
	layoutCmd.Flags().StringVar(&layoutFormat, "format", "text", "output format: text or yaml")
	rootCmd.AddCommand(layoutCmd)
}

type placedDoc struct {
	ID       string     `yaml:"id"`
	Bucket   string     `yaml:"bucket"`
	Position [3]float64 `yaml:"position,flow"`
	Radius   float64    `yaml:"radius"`
}

type anchorDoc struct {
	Name string  `yaml:"name"`
	Y    float64 `yaml:"y"`
}

type layoutOut struct {
	Items   []placedDoc `yaml:"items"`
	Anchors []anchorDoc `yaml:"anchors"`
	MinY    float64     `yaml:"min_y"`
	Bounds  [2]float64  `yaml:"bounds,flow"`
}

func layoutDoc(l galaxy.Layout) layoutOut {
	b := l.Bounds(6, 13)
	out := layoutOut{MinY: l.MinY(), Bounds: [2]float64{b.Min, b.Max}}
	for _, p := range l.Items {
		out.Items = append(out.Items, placedDoc{
			ID:       p.ID,
			Bucket:   p.Bucket.Slug(),
			Position: [3]float64{p.Position.X, p.Position.Y, p.Position.Z},
			Radius:   galaxy.PlanetRadius(p.Item),
		})
	}
	for _, a := range l.Anchors() {
		out.Anchors = append(out.Anchors, anchorDoc{Name: a.Name, Y: a.Y})
	}
	return out
}

func printLayout(out io.Writer, l galaxy.Layout) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBUCKET\tX\tY\tZ\tRADIUS")
	for _, p := range l.Items {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
			p.ID, p.Bucket.Slug(), p.Position.X, p.Position.Y, p.Position.Z, galaxy.PlanetRadius(p.Item))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "SECTION\tY")
	for _, a := range l.Anchors() {
		fmt.Fprintf(w, "%s\t%.2f\n", a.Name, a.Y)
	}
	return w.Flush()
}
