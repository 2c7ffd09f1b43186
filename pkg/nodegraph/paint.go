// Per-entity drawing. These functions emit draw commands and also
// carry the click dispatch that depends on hover state, mirroring the
// frame order of the interaction protocol: nodes (with their pins)
// first, then links.

package nodegraph

import (
	"image/color"
	"math"
)

func (c *Context) drawNode(nodeIdx int, d *DrawList) {
	node := &c.nodes.slots[nodeIdx]

	nodeHovered := c.hoveredNodeIdx == nodeIdx &&
		c.clickInteraction != interactionBoxSelection

	background := node.colorStyle.background
	titlebar := node.colorStyle.titlebar
	if containsInt(c.selectedNodeIndices, nodeIdx) {
		background = node.colorStyle.backgroundSelected
		titlebar = node.colorStyle.titlebarSelected
	} else if nodeHovered {
		background = node.colorStyle.backgroundHovered
		titlebar = node.colorStyle.titlebarHovered
	}

	d.nodes = append(d.nodes, RectFilled{
		Rect:     node.rect,
		Rounding: node.layoutStyle.cornerRounding,
		Color:    background,
	})
	if node.titleBarContentRect.Height() > 0 {
		d.nodes = append(d.nodes, RectFilled{
			Rect:     node.titleRect(),
			Rounding: node.layoutStyle.cornerRounding,
			Color:    titlebar,
		})
	}
	if c.style.Flags&StyleFlagNodeOutline != 0 {
		d.nodes = append(d.nodes, RectStroke{
			Rect:      node.rect,
			Rounding:  node.layoutStyle.cornerRounding,
			Thickness: node.layoutStyle.borderThickness,
			Color:     node.colorStyle.outline,
		})
	}

	for _, pinIdx := range node.pinIndices {
		c.drawPin(pinIdx, d)
	}

	if nodeHovered && c.leftMouseClicked && c.interactiveNodeIdx != nodeIdx {
		c.beginNodeSelection(nodeIdx)
	}
}

func (c *Context) drawPin(pinIdx int, d *DrawList) {
	pin := &c.pins.slots[pinIdx]
	pin.pos = c.pinScreenPosition(pin)

	pinColor := pin.colorStyle.background
	pinHovered := c.hoveredPinIdx == pinIdx &&
		c.clickInteraction != interactionBoxSelection

	if pinHovered {
		c.hoveredPinFlags = pin.flags
		pinColor = pin.colorStyle.hovered
		if c.leftMouseClicked {
			c.beginLinkCreation(pinIdx)
		}
	}

	c.style.drawPinShape(pin.pos, pin.shape, pinColor, d)
}

// drawPinShape emits the command for one pin glyph.
func (s *Style) drawPinShape(pos Vec2, shape PinShape, col color.RGBA, d *DrawList) {
	switch shape {
	case PinShapeCircle:
		d.nodes = append(d.nodes, Circle{
			Center: pos, Radius: s.PinCircleRadius,
			Thickness: s.PinLineThickness, Color: col,
		})
	case PinShapeCircleFilled:
		d.nodes = append(d.nodes, Circle{
			Center: pos, Radius: s.PinCircleRadius, Filled: true, Color: col,
		})
	case PinShapeQuad:
		d.nodes = append(d.nodes, RectStroke{
			Rect:      RectFromCenterSize(pos, Vec2{s.PinQuadSideLength, s.PinQuadSideLength}),
			Thickness: s.PinLineThickness,
			Color:     col,
		})
	case PinShapeQuadFilled:
		d.nodes = append(d.nodes, RectFilled{
			Rect:  RectFromCenterSize(pos, Vec2{s.PinQuadSideLength, s.PinQuadSideLength}),
			Color: col,
		})
	case PinShapeTriangle:
		d.nodes = append(d.nodes, Polyline{
			Points:    trianglePoints(pos, s.PinTriangleSideLength),
			Closed:    true,
			Thickness: s.PinLineThickness,
			Color:     col,
		})
	case PinShapeTriangleFilled:
		d.nodes = append(d.nodes, Polygon{
			Points: trianglePoints(pos, s.PinTriangleSideLength),
			Color:  col,
		})
	}
}

// trianglePoints builds a rightward-pointing triangle centered on pos.
func trianglePoints(pos Vec2, side float64) []Vec2 {
	sqrt3 := math.Sqrt(3)
	left := -sqrt3 / 6 * side
	right := sqrt3 / 3 * side
	vertical := 0.5 * side
	return []Vec2{
		pos.Add(Vec2{left, vertical}),
		pos.Add(Vec2{right, 0}),
		pos.Add(Vec2{left, -vertical}),
	}
}

func (c *Context) drawLink(linkIdx int, d *DrawList) {
	link := &c.links.slots[linkIdx]
	startPin := &c.pins.slots[link.startPinIdx]
	endPin := &c.pins.slots[link.endPinIdx]
	curve := newLinkBezier(startPin.pos, endPin.pos, startPin.kind,
		c.style.LinkLineSegmentsPerLength)

	linkHovered := c.hoveredLinkIdx == linkIdx &&
		c.clickInteraction != interactionBoxSelection

	if linkHovered && c.leftMouseClicked {
		c.beginLinkInteraction(linkIdx)
	}

	// A link detached this frame stops drawing immediately; the caller
	// sees it through LinkDestroyed and drops it next frame.
	if c.deletedLinkIdx == linkIdx {
		return
	}

	linkColor := link.colorStyle.base
	if containsInt(c.selectedLinkIndices, linkIdx) {
		linkColor = link.colorStyle.selected
	} else if linkHovered {
		linkColor = link.colorStyle.hovered
	}

	d.links = append(d.links, Polyline{
		Points:    curve.points(),
		Thickness: c.style.LinkThickness,
		Color:     linkColor,
	})
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
