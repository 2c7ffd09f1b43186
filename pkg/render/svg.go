package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ha1tch/nodekit/pkg/nodegraph"
)

// SVGOptions controls native SVG rendering.
type SVGOptions struct {
	Width  int // canvas width in pixels
	Height int // canvas height in pixels
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:  800,
		Height: 600,
	}
}

// GenerateSVG renders a draw list to SVG without external dependencies.
// Commands are emitted in paint order, so later elements cover earlier
// ones exactly as on screen.
func GenerateSVG(d *nodegraph.DrawList, opts SVGOptions) string {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height))

	for _, cmd := range d.Commands() {
		writeCommand(&sb, cmd)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeCommand(sb *strings.Builder, cmd nodegraph.DrawCommand) {
	switch c := cmd.(type) {
	case nodegraph.RectFilled:
		fmt.Fprintf(sb, `  <rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"%s/>`+"\n",
			num(c.Rect.Min.X), num(c.Rect.Min.Y),
			num(c.Rect.Width()), num(c.Rect.Height()),
			num(c.Rounding), hexColor(c.Color), opacityAttr("fill", c.Color))
	case nodegraph.RectStroke:
		fmt.Fprintf(sb, `  <rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
			num(c.Rect.Min.X), num(c.Rect.Min.Y),
			num(c.Rect.Width()), num(c.Rect.Height()),
			num(c.Rounding), hexColor(c.Color), num(c.Thickness), opacityAttr("stroke", c.Color))
	case nodegraph.Circle:
		if c.Filled {
			fmt.Fprintf(sb, `  <circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`+"\n",
				num(c.Center.X), num(c.Center.Y), num(c.Radius),
				hexColor(c.Color), opacityAttr("fill", c.Color))
		} else {
			fmt.Fprintf(sb, `  <circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
				num(c.Center.X), num(c.Center.Y), num(c.Radius),
				hexColor(c.Color), num(c.Thickness), opacityAttr("stroke", c.Color))
		}
	case nodegraph.Line:
		fmt.Fprintf(sb, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
			num(c.From.X), num(c.From.Y), num(c.To.X), num(c.To.Y),
			hexColor(c.Color), num(c.Thickness), opacityAttr("stroke", c.Color))
	case nodegraph.Polyline:
		if len(c.Points) < 2 {
			return
		}
		tag := "polyline"
		if c.Closed {
			tag = "polygon"
		}
		fmt.Fprintf(sb, `  <%s points="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
			tag, pointList(c.Points), hexColor(c.Color), num(c.Thickness), opacityAttr("stroke", c.Color))
	case nodegraph.Polygon:
		if len(c.Points) < 3 {
			return
		}
		fmt.Fprintf(sb, `  <polygon points="%s" fill="%s"%s/>`+"\n",
			pointList(c.Points), hexColor(c.Color), opacityAttr("fill", c.Color))
	}
}

func pointList(points []nodegraph.Vec2) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// opacityAttr emits a fill-opacity or stroke-opacity attribute when the
// color carries alpha.
func opacityAttr(kind string, c color.RGBA) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(` %s-opacity="%s"`, kind, num(float64(c.A)/255))
}

// num formats a coordinate compactly, trimming trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" || s == "-0" {
		return "0"
	}
	return s
}
