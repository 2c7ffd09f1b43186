// The click-interaction state machine. Exactly one interaction is
// active at a time; everything here advances it by one frame.

package nodegraph

// interactionKind is the active interaction mode.
type interactionKind int

const (
	interactionNone interactionKind = iota
	interactionNode
	interactionLink
	interactionLinkCreation
	interactionPanning
	interactionBoxSelection
)

// linkCreationKind records how the in-flight provisional link started.
type linkCreationKind int

const (
	linkCreationStandard linkCreationKind = iota
	linkCreationFromDetach
)

// linkCreationState is the payload of the LinkCreation interaction.
// endPinIdx is -1 until the provisional link snaps to a pin.
type linkCreationState struct {
	startPinIdx int
	endPinIdx   int
	kind        linkCreationKind
}

// beginCanvasInteraction starts a box selection (primary button) or a
// pan (alternate button) when a click lands on empty canvas.
func (c *Context) beginCanvasInteraction() {
	anyElementHovered := c.hoveredNodeIdx != -1 ||
		c.hoveredLinkIdx != -1 ||
		c.hoveredPinIdx != -1

	if c.clickInteraction != interactionNone || anyElementHovered || !c.mouseInCanvas {
		return
	}

	if c.altMouseClicked {
		c.clickInteraction = interactionPanning
	} else {
		c.clickInteraction = interactionBoxSelection
		c.boxSelection.Min = c.mousePos
	}
}

// beginNodeSelection starts dragging a clicked node. Clicking a node
// outside the current selection makes it the sole selection and
// raises it to the front of the depth order.
func (c *Context) beginNodeSelection(nodeIdx int) {
	if c.clickInteraction != interactionNone {
		return
	}
	c.clickInteraction = interactionNode
	if !containsInt(c.selectedNodeIndices, nodeIdx) {
		c.selectedNodeIndices = c.selectedNodeIndices[:0]
		c.selectedLinkIndices = c.selectedLinkIndices[:0]
		c.selectedNodeIndices = append(c.selectedNodeIndices, nodeIdx)

		c.nodeDepthOrder = removeIndex(c.nodeDepthOrder, nodeIdx)
		c.nodeDepthOrder = append(c.nodeDepthOrder, nodeIdx)
	}
}

// beginLinkInteraction dispatches a click on a hovered link: detach if
// the in-flight creation drag allows it or the detach modifier is
// held, plain link selection otherwise.
func (c *Context) beginLinkInteraction(linkIdx int) {
	switch {
	case c.clickInteraction == interactionLinkCreation:
		if c.hoveredPinFlags&LinkDetachWithDragClick != 0 {
			c.beginLinkDetach(linkIdx, c.hoveredPinIdx)
			c.linkCreation.kind = linkCreationFromDetach
		}
	case c.linkDetachWithModifierClick:
		link := &c.links.slots[linkIdx]
		startPin := &c.pins.slots[link.startPinIdx]
		endPin := &c.pins.slots[link.endPinIdx]
		closestPinIdx := link.startPinIdx
		if endPin.pos.Distance(c.mousePos) < startPin.pos.Distance(c.mousePos) {
			closestPinIdx = link.endPinIdx
		}
		c.clickInteraction = interactionLinkCreation
		c.beginLinkDetach(linkIdx, closestPinIdx)
	default:
		c.beginLinkSelection(linkIdx)
	}
}

// beginLinkDetach deletes a link and keeps its far endpoint as the
// anchor of a new provisional link. Rewiring is expressed as detach
// plus create, never as an atomic move.
func (c *Context) beginLinkDetach(linkIdx, detachPinIdx int) {
	c.linkCreation.endPinIdx = -1
	link := &c.links.slots[linkIdx]
	if detachPinIdx == link.startPinIdx {
		c.linkCreation.startPinIdx = link.endPinIdx
	} else {
		c.linkCreation.startPinIdx = link.startPinIdx
	}
	c.deletedLinkIdx = linkIdx
}

func (c *Context) beginLinkCreation(hoveredPinIdx int) {
	c.clickInteraction = interactionLinkCreation
	c.linkCreation.startPinIdx = hoveredPinIdx
	c.linkCreation.endPinIdx = -1
	c.linkCreation.kind = linkCreationStandard
	c.stateChange |= changeLinkStarted
}

func (c *Context) beginLinkSelection(linkIdx int) {
	c.clickInteraction = interactionLink
	c.selectedNodeIndices = c.selectedNodeIndices[:0]
	c.selectedLinkIndices = c.selectedLinkIndices[:0]
	c.selectedLinkIndices = append(c.selectedLinkIndices, linkIdx)
}

// translateSelectedNodes moves every selected draggable node by the
// pointer delta while the primary button drags.
func (c *Context) translateSelectedNodes() {
	if !c.leftMouseDragging {
		return
	}
	for _, idx := range c.selectedNodeIndices {
		node := &c.nodes.slots[idx]
		if node.draggable {
			node.origin = node.origin.Add(c.mouseDelta)
		}
	}
}

// shouldLinkSnapToPin decides whether the provisional link snaps to a
// hovered pin: the pin must live on a different node, have the
// opposite role, and not form a duplicate of an existing link — unless
// that duplicate is the link currently being re-snapped.
func (c *Context) shouldLinkSnapToPin(startPin *pinData, hoveredPinIdx, duplicateLinkIdx int) bool {
	endPin := &c.pins.slots[hoveredPinIdx]
	if startPin.parentNodeIdx == endPin.parentNodeIdx {
		return false
	}
	if startPin.kind == endPin.kind {
		return false
	}
	if duplicateLinkIdx != -1 && duplicateLinkIdx != c.snapLinkIdx {
		return false
	}
	return true
}

// findDuplicateLink returns the live link slot matching the unordered
// pin pair, or -1.
func (c *Context) findDuplicateLink(startPinIdx, endPinIdx int) int {
	test := linkData{startPinIdx: startPinIdx, endPinIdx: endPinIdx}
	for idx := range c.links.slots {
		if c.links.inUse[idx] && c.links.slots[idx].samePins(test) {
			return idx
		}
	}
	return -1
}

// boxSelectorUpdateSelection recomputes both selection sets from the
// current box rect. Corners may arrive in any order.
func (c *Context) boxSelectorUpdateSelection() Rect {
	boxRect := c.boxSelection.Normalized()

	c.selectedNodeIndices = c.selectedNodeIndices[:0]
	for idx := range c.nodes.slots {
		if c.nodes.inUse[idx] && boxRect.Intersects(c.nodes.slots[idx].rect) {
			c.selectedNodeIndices = append(c.selectedNodeIndices, idx)
		}
	}

	c.selectedLinkIndices = c.selectedLinkIndices[:0]
	for idx := range c.links.slots {
		if !c.links.inUse[idx] {
			continue
		}
		link := &c.links.slots[idx]
		startPin := &c.pins.slots[link.startPinIdx]
		endPin := &c.pins.slots[link.endPinIdx]
		start := c.pinScreenPosition(startPin)
		end := c.pinScreenPosition(endPin)
		if c.rectangleOverlapsLink(boxRect, start, end, startPin.kind) {
			c.selectedLinkIndices = append(c.selectedLinkIndices, idx)
		}
	}
	return boxRect
}

// rectangleOverlapsLink tests box selection against one link: endpoint
// containment first, then the sampled curve.
func (c *Context) rectangleOverlapsLink(rect Rect, start, end Vec2, startKind AttributeKind) bool {
	linkRect := RectFromMinMax(start, end).Normalized()
	if !rect.Intersects(linkRect) {
		return false
	}
	if rect.Contains(start) || rect.Contains(end) {
		return true
	}
	curve := newLinkBezier(start, end, startKind, c.style.LinkLineSegmentsPerLength)
	return curve.overlapsRect(rect)
}

// clickInteractionUpdate advances the active interaction by one frame.
func (c *Context) clickInteractionUpdate(d *DrawList) {
	switch c.clickInteraction {
	case interactionBoxSelection:
		c.boxSelection.Max = c.mousePos
		rect := c.boxSelectorUpdateSelection()

		d.overlay = append(d.overlay,
			RectFilled{Rect: rect, Color: c.style.Colors[ColorBoxSelector]},
			RectStroke{Rect: rect, Thickness: 1, Color: c.style.Colors[ColorBoxSelectorOutline]},
		)

		if c.leftMouseReleased {
			// Raise the selection to the front, preserving the nodes'
			// relative depth order.
			selected := c.selectedNodeIndices
			raised := make([]int, 0, len(selected))
			kept := c.nodeDepthOrder[:0]
			for _, idx := range c.nodeDepthOrder {
				if containsInt(selected, idx) {
					raised = append(raised, idx)
				} else {
					kept = append(kept, idx)
				}
			}
			c.nodeDepthOrder = append(kept, raised...)
			c.clickInteraction = interactionNone
		}

	case interactionNode:
		c.translateSelectedNodes()
		if c.leftMouseReleased {
			c.clickInteraction = interactionNone
		}

	case interactionLink:
		if c.leftMouseReleased {
			c.clickInteraction = interactionNone
		}

	case interactionLinkCreation:
		c.linkCreationUpdate(d)

	case interactionPanning:
		if c.altMouseDragging || c.altMouseClicked {
			c.panning = c.panning.Add(c.mouseDelta)
		} else {
			c.clickInteraction = interactionNone
		}

	case interactionNone:
	}
}

// linkCreationUpdate runs one frame of the provisional-link drag:
// snap detection, re-snap detach, drawing, and completion.
func (c *Context) linkCreationUpdate(d *DrawList) {
	duplicateLinkIdx := -1
	if c.hoveredPinIdx != -1 {
		duplicateLinkIdx = c.findDuplicateLink(c.linkCreation.startPinIdx, c.hoveredPinIdx)
	}

	shouldSnap := false
	if c.hoveredPinIdx != -1 {
		startPin := &c.pins.slots[c.linkCreation.startPinIdx]
		shouldSnap = c.shouldLinkSnapToPin(startPin, c.hoveredPinIdx, duplicateLinkIdx)
	}

	// Leaving a snapped pin while its declared link exists detaches
	// that link and restarts the creation from its surviving end.
	snappingPinChanged := c.linkCreation.endPinIdx != -1 &&
		c.hoveredPinIdx != c.linkCreation.endPinIdx
	if snappingPinChanged && c.snapLinkIdx != -1 {
		c.beginLinkDetach(c.snapLinkIdx, c.linkCreation.endPinIdx)
	}

	startPin := &c.pins.slots[c.linkCreation.startPinIdx]
	startPos := c.pinScreenPosition(startPin)
	endPos := c.mousePos
	if shouldSnap {
		endPos = c.pinScreenPosition(&c.pins.slots[c.hoveredPinIdx])
	}

	curve := newLinkBezier(startPos, endPos, startPin.kind, c.style.LinkLineSegmentsPerLength)
	d.overlay = append(d.overlay, Polyline{
		Points:    curve.points(),
		Thickness: c.style.LinkThickness,
		Color:     c.style.Colors[ColorLink],
	})

	creationOnSnap := c.hoveredPinIdx != -1 &&
		c.pins.slots[c.hoveredPinIdx].flags&LinkCreationOnSnap != 0

	if !shouldSnap {
		c.linkCreation.endPinIdx = -1
	}

	createLink := shouldSnap && (c.leftMouseReleased || creationOnSnap)

	if createLink && duplicateLinkIdx == -1 {
		// An on-snap link already reported on an earlier frame must
		// not fire again while the pointer rests on the same pin.
		if !c.leftMouseReleased && c.linkCreation.endPinIdx == c.hoveredPinIdx {
			return
		}
		c.stateChange |= changeLinkCreated
		c.linkCreation.endPinIdx = c.hoveredPinIdx
	}

	if c.leftMouseReleased {
		c.clickInteraction = interactionNone
		if !createLink {
			c.stateChange |= changeLinkDropped
		}
	}
}
