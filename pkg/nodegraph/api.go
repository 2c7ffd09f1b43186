// Public queries and configuration: hover accessors, selection sets,
// node position get/set in the three coordinate spaces, panning, and
// the style/attribute override stacks. Slot indices never cross this
// boundary; everything is translated to caller ids.

package nodegraph

import "image/color"

// NodeHovered returns the id of the node under the pointer.
func (c *Context) NodeHovered() (int, bool) {
	if c.hoveredNodeIdx == -1 {
		return 0, false
	}
	return c.nodes.slots[c.hoveredNodeIdx].id, true
}

// LinkHovered returns the id of the link under the pointer.
func (c *Context) LinkHovered() (int, bool) {
	if c.hoveredLinkIdx == -1 {
		return 0, false
	}
	return c.links.slots[c.hoveredLinkIdx].id, true
}

// PinHovered returns the id of the pin under the pointer.
func (c *Context) PinHovered() (int, bool) {
	if c.hoveredPinIdx == -1 {
		return 0, false
	}
	return c.pins.slots[c.hoveredPinIdx].id, true
}

// ActiveAttribute returns the id of the attribute whose content is
// being interacted with.
func (c *Context) ActiveAttribute() (int, bool) {
	if !c.activeAttribute {
		return 0, false
	}
	return c.activeAttributeID, true
}

// SelectedNodes returns the ids of all selected nodes.
func (c *Context) SelectedNodes() []int {
	out := make([]int, len(c.selectedNodeIndices))
	for i, idx := range c.selectedNodeIndices {
		out[i] = c.nodes.slots[idx].id
	}
	return out
}

// SelectedLinks returns the ids of all selected links.
func (c *Context) SelectedLinks() []int {
	out := make([]int, len(c.selectedLinkIndices))
	for i, idx := range c.selectedLinkIndices {
		out[i] = c.links.slots[idx].id
	}
	return out
}

// NumSelectedNodes returns the size of the node selection.
func (c *Context) NumSelectedNodes() int { return len(c.selectedNodeIndices) }

// NumSelectedLinks returns the size of the link selection.
func (c *Context) NumSelectedLinks() int { return len(c.selectedLinkIndices) }

// ClearNodeSelection empties the node selection.
func (c *Context) ClearNodeSelection() {
	c.selectedNodeIndices = c.selectedNodeIndices[:0]
}

// ClearLinkSelection empties the link selection.
func (c *Context) ClearLinkSelection() {
	c.selectedLinkIndices = c.selectedLinkIndices[:0]
}

// SetNodePosScreenSpace moves a node so its origin lands on the given
// screen position. Creates the node slot if the id is unknown.
func (c *Context) SetNodePosScreenSpace(nodeID int, pos Vec2) {
	idx := c.nodeFindOrCreate(nodeID, nil)
	c.nodes.slots[idx].origin = c.screenToGrid(pos)
}

// SetNodePosEditorSpace moves a node in pan-relative coordinates.
func (c *Context) SetNodePosEditorSpace(nodeID int, pos Vec2) {
	idx := c.nodeFindOrCreate(nodeID, nil)
	c.nodes.slots[idx].origin = c.editorToGrid(pos)
}

// SetNodePosGridSpace moves a node in pan-independent coordinates.
func (c *Context) SetNodePosGridSpace(nodeID int, pos Vec2) {
	idx := c.nodeFindOrCreate(nodeID, nil)
	c.nodes.slots[idx].origin = pos
}

// SetNodeDraggable controls whether drag interactions move the node.
func (c *Context) SetNodeDraggable(nodeID int, draggable bool) {
	idx := c.nodeFindOrCreate(nodeID, nil)
	c.nodes.slots[idx].draggable = draggable
}

// NodePosScreenSpace returns a node's origin in screen coordinates.
func (c *Context) NodePosScreenSpace(nodeID int) (Vec2, bool) {
	idx, ok := c.nodes.find(nodeID)
	if !ok {
		return Vec2{}, false
	}
	return c.gridToScreen(c.nodes.slots[idx].origin), true
}

// NodePosEditorSpace returns a node's origin in pan-relative
// coordinates.
func (c *Context) NodePosEditorSpace(nodeID int) (Vec2, bool) {
	idx, ok := c.nodes.find(nodeID)
	if !ok {
		return Vec2{}, false
	}
	return c.gridToEditor(c.nodes.slots[idx].origin), true
}

// NodePosGridSpace returns a node's origin in pan-independent
// coordinates.
func (c *Context) NodePosGridSpace(nodeID int) (Vec2, bool) {
	idx, ok := c.nodes.find(nodeID)
	if !ok {
		return Vec2{}, false
	}
	return c.nodes.slots[idx].origin, true
}

// NodeDimensions returns a node's laid-out size.
func (c *Context) NodeDimensions(nodeID int) (Vec2, bool) {
	idx, ok := c.nodes.find(nodeID)
	if !ok {
		return Vec2{}, false
	}
	return c.nodes.slots[idx].rect.Size(), true
}

// Panning returns the canvas panning offset.
func (c *Context) Panning() Vec2 { return c.panning }

// ResetPanning sets the canvas panning offset.
func (c *Context) ResetPanning(panning Vec2) { c.panning = panning }

// PushColorStyle overrides one color table entry until the matching
// PopColorStyle.
func (c *Context) PushColorStyle(item ColorStyle, col color.RGBA) {
	c.colorModifierStack = append(c.colorModifierStack, colorStyleElement{
		item:  item,
		color: c.style.Colors[item],
	})
	c.style.Colors[item] = col
}

// PopColorStyle reverts the most recent color override.
func (c *Context) PopColorStyle() {
	if n := len(c.colorModifierStack); n > 0 {
		elem := c.colorModifierStack[n-1]
		c.colorModifierStack = c.colorModifierStack[:n-1]
		c.style.Colors[elem.item] = elem.color
	}
}

// PushStyleVar overrides one numeric style value until the matching
// PopStyleVar.
func (c *Context) PushStyleVar(item StyleVar, value float64) {
	v := c.style.styleVar(item)
	c.styleModifierStack = append(c.styleModifierStack, styleVarElement{
		item:  item,
		value: *v,
	})
	*v = value
}

// PopStyleVar reverts the most recent style var override.
func (c *Context) PopStyleVar() {
	if n := len(c.styleModifierStack); n > 0 {
		elem := c.styleModifierStack[n-1]
		c.styleModifierStack = c.styleModifierStack[:n-1]
		*c.style.styleVar(elem.item) = elem.value
	}
}

// PushAttributeFlag ors a flag into the set applied to subsequently
// declared pins, until the matching PopAttributeFlag.
func (c *Context) PushAttributeFlag(flag AttributeFlags) {
	c.attributeFlagStack = append(c.attributeFlagStack, c.currentAttributeFlags)
	c.currentAttributeFlags |= flag
}

// PopAttributeFlag restores the attribute flag set to its value before
// the most recent push.
func (c *Context) PopAttributeFlag() {
	if n := len(c.attributeFlagStack); n > 0 {
		c.currentAttributeFlags = c.attributeFlagStack[n-1]
		c.attributeFlagStack = c.attributeFlagStack[:n-1]
	}
}
