// Draw commands emitted by Update. The engine owns no pixels; a frame
// produces an ordered command list and the caller rasterizes it with
// whatever backend it has (terminal cells, PNG, SVG, ...).

package nodegraph

import "image/color"

// DrawCommand is one paint primitive. Commands in a DrawList are
// already in back-to-front paint order.
type DrawCommand interface {
	isDrawCommand()
}

// RectFilled paints a filled rectangle with rounded corners.
type RectFilled struct {
	Rect     Rect
	Rounding float64
	Color    color.RGBA
}

// RectStroke outlines a rectangle with rounded corners.
type RectStroke struct {
	Rect      Rect
	Rounding  float64
	Thickness float64
	Color     color.RGBA
}

// Circle paints a circle, filled or stroked.
type Circle struct {
	Center    Vec2
	Radius    float64
	Filled    bool
	Thickness float64 // stroke only
	Color     color.RGBA
}

// Line paints a single line segment.
type Line struct {
	From, To  Vec2
	Thickness float64
	Color     color.RGBA
}

// Polyline strokes a connected point sequence, optionally closed.
type Polyline struct {
	Points    []Vec2
	Closed    bool
	Thickness float64
	Color     color.RGBA
}

// Polygon paints a filled convex polygon.
type Polygon struct {
	Points []Vec2
	Color  color.RGBA
}

func (RectFilled) isDrawCommand() {}
func (RectStroke) isDrawCommand() {}
func (Circle) isDrawCommand()     {}
func (Line) isDrawCommand()       {}
func (Polyline) isDrawCommand()   {}
func (Polygon) isDrawCommand()    {}

// DrawList collects one frame's commands. Interaction logic visits
// nodes before links, but links must paint beneath nodes, so commands
// are routed into layers and flattened by Commands.
type DrawList struct {
	background []DrawCommand
	links      []DrawCommand
	nodes      []DrawCommand
	overlay    []DrawCommand
}

// Commands returns the full frame in paint order: canvas background
// and grid, links, nodes with their pins, then overlays (provisional
// link, box selector, canvas frame).
func (d *DrawList) Commands() []DrawCommand {
	out := make([]DrawCommand, 0,
		len(d.background)+len(d.links)+len(d.nodes)+len(d.overlay))
	out = append(out, d.background...)
	out = append(out, d.links...)
	out = append(out, d.nodes...)
	return append(out, d.overlay...)
}
