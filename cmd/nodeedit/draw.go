package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/nodekit/pkg/nodegraph"
)

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

func cellStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func cellBgStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// paintDrawList renders the engine's draw commands to terminal cells.
// One style unit is one cell, so coordinates round directly.
func (ed *Editor) paintDrawList(d *nodegraph.DrawList) {
	for _, cmd := range d.Commands() {
		switch c := cmd.(type) {
		case nodegraph.RectFilled:
			ed.fillRect(c.Rect, c.Color)
		case nodegraph.RectStroke:
			ed.strokeRect(c.Rect, c.Color)
		case nodegraph.Circle:
			ch := 'o'
			if c.Filled {
				ch = '●'
			}
			ed.plot(c.Center.X, c.Center.Y, ch, cellStyle(c.Color))
		case nodegraph.Line:
			ed.line(c.From, c.To, c.Color)
		case nodegraph.Polyline:
			pts := c.Points
			for i := 1; i < len(pts); i++ {
				ed.line(pts[i-1], pts[i], c.Color)
			}
			if c.Closed && len(pts) > 2 {
				ed.line(pts[len(pts)-1], pts[0], c.Color)
			}
		case nodegraph.Polygon:
			for i := 1; i < len(c.Points); i++ {
				ed.line(c.Points[i-1], c.Points[i], c.Color)
			}
			if len(c.Points) > 2 {
				ed.line(c.Points[len(c.Points)-1], c.Points[0], c.Color)
			}
		}
	}
}

func (ed *Editor) plot(x, y float64, ch rune, style tcell.Style) {
	ed.screen.SetContent(int(math.Round(x)), int(math.Round(y)), ch, nil, style)
}

func (ed *Editor) fillRect(r nodegraph.Rect, c color.RGBA) {
	// Grid background and box-selector fills are heavily transparent;
	// painting them as solid cells would hide everything underneath.
	if c.A < 128 {
		return
	}
	style := cellBgStyle(c)
	for y := int(math.Round(r.Min.Y)); y < int(math.Round(r.Max.Y)); y++ {
		for x := int(math.Round(r.Min.X)); x < int(math.Round(r.Max.X)); x++ {
			ed.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (ed *Editor) strokeRect(r nodegraph.Rect, c color.RGBA) {
	style := cellStyle(c)
	x0 := int(math.Round(r.Min.X))
	y0 := int(math.Round(r.Min.Y))
	x1 := int(math.Round(r.Max.X)) - 1
	y1 := int(math.Round(r.Max.Y)) - 1
	if x1 <= x0 || y1 <= y0 {
		return
	}
	ed.screen.SetContent(x0, y0, '┌', nil, style)
	ed.screen.SetContent(x1, y0, '┐', nil, style)
	ed.screen.SetContent(x0, y1, '└', nil, style)
	ed.screen.SetContent(x1, y1, '┘', nil, style)
	for x := x0 + 1; x < x1; x++ {
		ed.screen.SetContent(x, y0, '─', nil, style)
		ed.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		ed.screen.SetContent(x0, y, '│', nil, style)
		ed.screen.SetContent(x1, y, '│', nil, style)
	}
}

// line plots a cell run between two points, picking a rune from the
// segment slope.
func (ed *Editor) line(from, to nodegraph.Vec2, c color.RGBA) {
	style := cellStyle(c)
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}

	ch := lineRune(dx, dy)
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		ed.plot(from.X+dx*t, from.Y+dy*t, ch, style)
	}
}

func lineRune(dx, dy float64) rune {
	if math.Abs(dy) < 0.5*math.Abs(dx) {
		return '─'
	}
	if math.Abs(dx) < 0.5*math.Abs(dy) {
		return '│'
	}
	if dx*dy > 0 {
		return '╲'
	}
	return '╱'
}

// drawLabels overlays node titles; the draw list itself carries only
// geometry.
func (ed *Editor) drawLabels() {
	for _, n := range ed.graph.Nodes {
		if n.Title == "" {
			continue
		}
		pos, ok := ed.ctx.NodePosScreenSpace(n.ID)
		if !ok {
			continue
		}
		x := int(math.Round(pos.X)) + 2
		y := int(math.Round(pos.Y))
		for i, ch := range n.Title {
			ed.screen.SetContent(x+i, y, ch, nil, tcell.StyleDefault)
		}
	}
}

func (ed *Editor) drawStatusBar(w, h int) {
	y := h - 1
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	mod := ""
	if ed.modified {
		mod = " [+]"
	}
	left := fmt.Sprintf(" %s%s  nodes:%d links:%d", ed.path, mod,
		len(ed.graph.Nodes), len(ed.graph.Links))
	if ed.message != "" {
		left += "  " + ed.message
	}
	right := "n:add  x:delete  s:save  q:quit "

	for i, ch := range left {
		if i >= w {
			break
		}
		ed.screen.SetContent(i, y, ch, nil, styleStatus)
	}
	start := w - len(right)
	if start > len(left)+2 {
		for i, ch := range right {
			ed.screen.SetContent(start+i, y, ch, nil, styleStatus)
		}
	}
}
