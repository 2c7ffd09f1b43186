// Hover resolution. Runs once per frame after layout, only when the
// pointer is inside the canvas. Pins win over nodes, nodes over links.

package nodegraph

import "math"

// resolveOccludedPins marks every pin whose position lies under the
// rect of a node higher in the depth order. O(nodes^2 * pins), which
// is fine at UI scale.
func (c *Context) resolveOccludedPins() {
	c.occludedPinIndices = c.occludedPinIndices[:0]
	depth := c.nodeDepthOrder
	if len(depth) < 2 {
		return
	}

	for depthIdx := 0; depthIdx < len(depth)-1; depthIdx++ {
		nodeBelow := &c.nodes.slots[depth[depthIdx]]
		for _, aboveIdx := range depth[depthIdx+1:] {
			rectAbove := c.nodes.slots[aboveIdx].rect
			for _, pinIdx := range nodeBelow.pinIndices {
				if rectAbove.Contains(c.pins.slots[pinIdx].pos) {
					c.occludedPinIndices = append(c.occludedPinIndices, pinIdx)
				}
			}
		}
	}
}

func (c *Context) pinOccluded(pinIdx int) bool {
	for _, idx := range c.occludedPinIndices {
		if idx == pinIdx {
			return true
		}
	}
	return false
}

// resolveHoveredPin picks the non-occluded pin closest to the pointer
// within the hover radius. Comparison is strict, so on an exact
// distance tie the lowest slot index wins (scan is in slot order).
func (c *Context) resolveHoveredPin() {
	smallest := math.MaxFloat64
	c.hoveredPinIdx = -1

	hoverRadiusSq := c.style.PinHoverRadius * c.style.PinHoverRadius
	for idx := range c.pins.slots {
		if !c.pins.inUse[idx] || c.pinOccluded(idx) {
			continue
		}
		distSq := c.pins.slots[idx].pos.DistanceSq(c.mousePos)
		if distSq < hoverRadiusSq && distSq < smallest {
			smallest = distSq
			c.hoveredPinIdx = idx
		}
	}
}

// resolveHoveredNode picks among the nodes whose rect contained the
// pointer during layout; the one deepest in the depth order (front-
// most) wins.
func (c *Context) resolveHoveredNode() {
	switch len(c.nodesOverlappingMouse) {
	case 0:
		c.hoveredNodeIdx = -1
	case 1:
		c.hoveredNodeIdx = c.nodesOverlappingMouse[0]
	default:
		largestDepth := -1
		for _, nodeIdx := range c.nodesOverlappingMouse {
			for depthIdx, depthNodeIdx := range c.nodeDepthOrder {
				if depthNodeIdx == nodeIdx && depthIdx > largestDepth {
					largestDepth = depthIdx
					c.hoveredNodeIdx = nodeIdx
				}
			}
		}
	}
}

// resolveHoveredLink finds the link nearest the pointer. A link whose
// endpoint pin is hovered wins immediately, in pool order; otherwise
// candidates are filtered by the curve's expanded bounding rect before
// the exact distance test.
func (c *Context) resolveHoveredLink() {
	smallest := math.MaxFloat64
	c.hoveredLinkIdx = -1

	for idx := range c.links.slots {
		if !c.links.inUse[idx] {
			continue
		}

		link := &c.links.slots[idx]
		if c.hoveredPinIdx != -1 &&
			(c.hoveredPinIdx == link.startPinIdx || c.hoveredPinIdx == link.endPinIdx) {
			c.hoveredLinkIdx = idx
			return
		}

		startPin := &c.pins.slots[link.startPinIdx]
		endPin := &c.pins.slots[link.endPinIdx]
		curve := newLinkBezier(startPin.pos, endPin.pos, startPin.kind,
			c.style.LinkLineSegmentsPerLength)
		linkRect := curve.bezier.containingRect(c.style.LinkHoverDistance)

		if linkRect.Contains(c.mousePos) {
			dist := curve.distanceTo(c.mousePos)
			if dist < c.style.LinkHoverDistance && dist < smallest {
				smallest = dist
				c.hoveredLinkIdx = idx
			}
		}
	}
}
