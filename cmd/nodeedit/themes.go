package main

import (
	"fmt"
	imgcolor "image/color"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ha1tch/nodekit/pkg/theme"
)

var colorNames = [16]string{
	"node_background",
	"node_background_hovered",
	"node_background_selected",
	"node_outline",
	"title_bar",
	"title_bar_hovered",
	"title_bar_selected",
	"link",
	"link_hovered",
	"link_selected",
	"pin",
	"pin_hovered",
	"box_selector",
	"box_selector_outline",
	"grid_background",
	"grid_line",
}

func newThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes [theme.toml]",
		Short: "List built-in palettes, or show a resolved theme file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range []string{"dark", "classic", "light"} {
					color.Cyan(name)
				}
				return nil
			}
			t, err := theme.Load(args[0])
			if err != nil {
				return err
			}
			if t.Name != "" {
				color.Cyan(t.Name)
			}
			printPalette(t.Colors)
			return nil
		},
	}
	return cmd
}

func printPalette(colors [16]imgcolor.RGBA) {
	for i, c := range colors {
		swatch := color.BgRGB(int(c.R), int(c.G), int(c.B))
		fmt.Printf("%-26s #%02x%02x%02x%02x ", colorNames[i], c.R, c.G, c.B, c.A)
		swatch.Print("    ")
		fmt.Println()
	}
}
