// Native PNG rasterization of editor draw lists.
// Uses supersampling and Go's image packages, mirroring the SVG output.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"

	"github.com/ha1tch/nodekit/pkg/nodegraph"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width  int
	Height int
	Scale  int // supersampling factor
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:  800,
		Height: 600,
		Scale:  2,
	}
}

// RenderPNG rasterizes a draw list to PNG. The commands are drawn at
// Scale times the target size and downsampled for smoother output.
func RenderPNG(d *nodegraph.DrawList, w io.Writer, opts PNGOptions) error {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	largeImg := image.NewRGBA(image.Rect(0, 0, opts.Width*scale, opts.Height*scale))
	rc := &rasterContext{img: largeImg, scale: float64(scale)}

	for _, cmd := range d.Commands() {
		rc.draw(cmd)
	}

	finalImg := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(finalImg, finalImg.Bounds(), largeImg, largeImg.Bounds(), draw.Over, nil)

	return png.Encode(w, finalImg)
}

type rasterContext struct {
	img   *image.RGBA
	scale float64
}

func (rc *rasterContext) draw(cmd nodegraph.DrawCommand) {
	switch c := cmd.(type) {
	case nodegraph.RectFilled:
		rc.fillRoundedRect(c.Rect, c.Rounding, c.Color)
	case nodegraph.RectStroke:
		rc.strokeRoundedRect(c.Rect, c.Rounding, c.Thickness, c.Color)
	case nodegraph.Circle:
		if c.Filled {
			rc.fillCircle(c.Center, c.Radius, c.Color)
		} else {
			rc.strokeCircle(c.Center, c.Radius, c.Thickness, c.Color)
		}
	case nodegraph.Line:
		rc.line(c.From, c.To, c.Thickness, c.Color)
	case nodegraph.Polyline:
		pts := c.Points
		for i := 1; i < len(pts); i++ {
			rc.line(pts[i-1], pts[i], c.Thickness, c.Color)
		}
		if c.Closed && len(pts) > 2 {
			rc.line(pts[len(pts)-1], pts[0], c.Thickness, c.Color)
		}
	case nodegraph.Polygon:
		rc.fillPolygon(c.Points, c.Color)
	}
}

func (rc *rasterContext) set(x, y float64, col color.RGBA) {
	if col.A == 0 {
		return
	}
	if col.A == 255 {
		rc.img.SetRGBA(int(x), int(y), col)
		return
	}
	blendPixel(rc.img, int(x), int(y), col)
}

// blendPixel source-over composites one pixel.
func blendPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	dst := img.RGBAAt(x, y)
	a := uint32(col.A)
	inv := 255 - a
	out := color.RGBA{
		R: uint8((uint32(col.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(col.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(col.B)*a + uint32(dst.B)*inv) / 255),
		A: uint8(a + uint32(dst.A)*inv/255),
	}
	img.SetRGBA(x, y, out)
}

// insideRoundedRect reports whether a point lies within a rect whose
// corners are rounded by the given radius.
func insideRoundedRect(r nodegraph.Rect, rounding, x, y float64) bool {
	if x < r.Min.X || x > r.Max.X || y < r.Min.Y || y > r.Max.Y {
		return false
	}
	if rounding <= 0 {
		return true
	}
	cx := clamp(x, r.Min.X+rounding, r.Max.X-rounding)
	cy := clamp(y, r.Min.Y+rounding, r.Max.Y-rounding)
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= rounding*rounding
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (rc *rasterContext) fillRoundedRect(r nodegraph.Rect, rounding float64, col color.RGBA) {
	r = scaleRect(r, rc.scale)
	rounding *= rc.scale
	for y := math.Floor(r.Min.Y); y <= r.Max.Y; y++ {
		for x := math.Floor(r.Min.X); x <= r.Max.X; x++ {
			if insideRoundedRect(r, rounding, x, y) {
				rc.set(x, y, col)
			}
		}
	}
}

func (rc *rasterContext) strokeRoundedRect(r nodegraph.Rect, rounding, thickness float64, col color.RGBA) {
	r = scaleRect(r, rc.scale)
	rounding *= rc.scale
	thickness *= rc.scale
	if thickness < 1 {
		thickness = 1
	}
	inner := r.Expand(-thickness)
	innerRounding := rounding - thickness
	for y := math.Floor(r.Min.Y); y <= r.Max.Y; y++ {
		for x := math.Floor(r.Min.X); x <= r.Max.X; x++ {
			if insideRoundedRect(r, rounding, x, y) && !insideRoundedRect(inner, innerRounding, x, y) {
				rc.set(x, y, col)
			}
		}
	}
}

func (rc *rasterContext) fillCircle(center nodegraph.Vec2, radius float64, col color.RGBA) {
	cx := center.X * rc.scale
	cy := center.Y * rc.scale
	radius *= rc.scale
	for dy := -radius; dy <= radius; dy++ {
		yNorm := dy / radius
		if yNorm*yNorm > 1 {
			continue
		}
		xExtent := radius * math.Sqrt(1-yNorm*yNorm)
		for dx := -xExtent; dx <= xExtent; dx++ {
			rc.set(cx+dx, cy+dy, col)
		}
	}
}

func (rc *rasterContext) strokeCircle(center nodegraph.Vec2, radius, thickness float64, col color.RGBA) {
	cx := center.X * rc.scale
	cy := center.Y * rc.scale
	radius *= rc.scale
	thickness *= rc.scale
	if thickness < 1 {
		thickness = 1
	}
	for angle := 0.0; angle < 2*math.Pi; angle += 0.005 {
		nx := math.Cos(angle)
		ny := math.Sin(angle)
		for t := -thickness / 2; t <= thickness/2; t += 0.5 {
			rc.set(cx+nx*(radius+t), cy+ny*(radius+t), col)
		}
	}
}

func (rc *rasterContext) line(from, to nodegraph.Vec2, thickness float64, col color.RGBA) {
	x1 := from.X * rc.scale
	y1 := from.Y * rc.scale
	x2 := to.X * rc.scale
	y2 := to.Y * rc.scale
	thickness *= rc.scale
	if thickness < 1 {
		thickness = 1
	}
	halfThick := thickness / 2

	dx := x2 - x1
	dy := y2 - y1
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				rc.set(x1+tx, y1+ty, col)
			}
		}
		return
	}

	steps := math.Max(math.Abs(dx), math.Abs(dy))
	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px := x1 + dx*t
		py := y1 + dy*t
		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			rc.set(px+perpX*offset, py+perpY*offset, col)
		}
	}
}

// fillPolygon scanline-fills an arbitrary polygon using even-odd
// crossing counts.
func (rc *rasterContext) fillPolygon(points []nodegraph.Vec2, col color.RGBA) {
	if len(points) < 3 {
		return
	}
	pts := make([]nodegraph.Vec2, len(points))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		pts[i] = p.Scale(rc.scale)
		minY = math.Min(minY, pts[i].Y)
		maxY = math.Max(maxY, pts[i].Y)
	}

	for y := math.Floor(minY); y <= maxY; y++ {
		var crossings []float64
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
				t := (y - a.Y) / (b.Y - a.Y)
				crossings = append(crossings, a.X+t*(b.X-a.X))
			}
		}
		sortFloats(crossings)
		for i := 0; i+1 < len(crossings); i += 2 {
			for x := math.Floor(crossings[i]); x <= crossings[i+1]; x++ {
				rc.set(x, y, col)
			}
		}
	}
}

func sortFloats(v []float64) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] < v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

func scaleRect(r nodegraph.Rect, s float64) nodegraph.Rect {
	return nodegraph.RectFromMinMax(r.Min.Scale(s), r.Max.Scale(s))
}
