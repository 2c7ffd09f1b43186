// Package theme loads editor color themes from TOML files. A theme
// names any subset of the engine's color table; missing hovered and
// selected entries are derived from their base color so a theme file
// only has to pick the handful of colors that matter.
package theme

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ha1tch/nodekit/pkg/nodegraph"
)

// File is the on-disk theme format. All values are "#rrggbb" or
// "#rrggbbaa" strings; empty values fall back to the base palette or
// to a derived variant.
type File struct {
	Name string `toml:"name"`
	Base string `toml:"base"` // "dark", "classic" or "light"

	NodeBackground         string `toml:"node_background"`
	NodeBackgroundHovered  string `toml:"node_background_hovered"`
	NodeBackgroundSelected string `toml:"node_background_selected"`
	NodeOutline            string `toml:"node_outline"`
	TitleBar               string `toml:"title_bar"`
	TitleBarHovered        string `toml:"title_bar_hovered"`
	TitleBarSelected       string `toml:"title_bar_selected"`
	Link                   string `toml:"link"`
	LinkHovered            string `toml:"link_hovered"`
	LinkSelected           string `toml:"link_selected"`
	Pin                    string `toml:"pin"`
	PinHovered             string `toml:"pin_hovered"`
	BoxSelector            string `toml:"box_selector"`
	BoxSelectorOutline     string `toml:"box_selector_outline"`
	GridBackground         string `toml:"grid_background"`
	GridLine               string `toml:"grid_line"`
}

// Load reads a theme file and resolves it to a color table.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// Parse resolves TOML theme content to a color table.
func Parse(data []byte) (*Theme, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return f.Resolve()
}

// Theme is a resolved color table ready to apply to a context style.
type Theme struct {
	Name   string
	Colors [16]color.RGBA
}

// Apply copies the theme's colors into a context style.
func (t *Theme) Apply(s *nodegraph.Style) {
	for i, c := range t.Colors {
		s.Colors[nodegraph.ColorStyle(i)] = c
	}
}

// Resolve turns the file form into a full color table. Unset hovered
// and selected entries are derived by lightening their base color in
// Luv space; every other unset entry keeps the base palette value.
func (f *File) Resolve() (*Theme, error) {
	var base [16]color.RGBA
	switch f.Base {
	case "", "dark":
		base = paletteArray(nodegraph.ColorsDark())
	case "classic":
		base = paletteArray(nodegraph.ColorsClassic())
	case "light":
		base = paletteArray(nodegraph.ColorsLight())
	default:
		return nil, fmt.Errorf("unknown base palette %q", f.Base)
	}

	t := &Theme{Name: f.Name, Colors: base}

	type entry struct {
		value string
		index nodegraph.ColorStyle
	}
	entries := []entry{
		{f.NodeBackground, nodegraph.ColorNodeBackground},
		{f.NodeBackgroundHovered, nodegraph.ColorNodeBackgroundHovered},
		{f.NodeBackgroundSelected, nodegraph.ColorNodeBackgroundSelected},
		{f.NodeOutline, nodegraph.ColorNodeOutline},
		{f.TitleBar, nodegraph.ColorTitleBar},
		{f.TitleBarHovered, nodegraph.ColorTitleBarHovered},
		{f.TitleBarSelected, nodegraph.ColorTitleBarSelected},
		{f.Link, nodegraph.ColorLink},
		{f.LinkHovered, nodegraph.ColorLinkHovered},
		{f.LinkSelected, nodegraph.ColorLinkSelected},
		{f.Pin, nodegraph.ColorPin},
		{f.PinHovered, nodegraph.ColorPinHovered},
		{f.BoxSelector, nodegraph.ColorBoxSelector},
		{f.BoxSelectorOutline, nodegraph.ColorBoxSelectorOutline},
		{f.GridBackground, nodegraph.ColorGridBackground},
		{f.GridLine, nodegraph.ColorGridLine},
	}
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		c, err := parseColor(e.value)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", e.index, err)
		}
		t.Colors[e.index] = c
	}

	// Derive hover/select variants for entries the file set a base
	// color for but left the variant empty.
	derive := func(baseSet, variantSet string, baseIdx, variantIdx nodegraph.ColorStyle) {
		if baseSet != "" && variantSet == "" {
			t.Colors[variantIdx] = lighten(t.Colors[baseIdx], 0.15)
		}
	}
	derive(f.NodeBackground, f.NodeBackgroundHovered, nodegraph.ColorNodeBackground, nodegraph.ColorNodeBackgroundHovered)
	derive(f.NodeBackground, f.NodeBackgroundSelected, nodegraph.ColorNodeBackground, nodegraph.ColorNodeBackgroundSelected)
	derive(f.TitleBar, f.TitleBarHovered, nodegraph.ColorTitleBar, nodegraph.ColorTitleBarHovered)
	derive(f.TitleBar, f.TitleBarSelected, nodegraph.ColorTitleBar, nodegraph.ColorTitleBarSelected)
	derive(f.Link, f.LinkHovered, nodegraph.ColorLink, nodegraph.ColorLinkHovered)
	derive(f.Link, f.LinkSelected, nodegraph.ColorLink, nodegraph.ColorLinkSelected)
	derive(f.Pin, f.PinHovered, nodegraph.ColorPin, nodegraph.ColorPinHovered)

	return t, nil
}

func paletteArray(p [16]color.RGBA) [16]color.RGBA { return p }

// parseColor accepts #rgb, #rrggbb and #rrggbbaa.
func parseColor(s string) (color.RGBA, error) {
	if len(s) == 9 && s[0] == '#' {
		var r, g, b, a uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.RGBA{}, fmt.Errorf("bad color %q", s)
		}
		return color.RGBA{R: r, G: g, B: b, A: a}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// lighten raises luminance in Luv space, keeping alpha.
func lighten(c color.RGBA, amount float64) color.RGBA {
	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	l, u, v := cf.Luv()
	l += amount
	if l > 1 {
		l = 1
	}
	out := colorful.Luv(l, u, v).Clamped()
	r, g, b := out.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}
