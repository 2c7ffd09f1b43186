// Package nodegraph implements an immediate-mode node-graph editor
// engine. Callers declare their nodes and links every frame; the
// engine tracks identity across frames in slot pools, resolves pointer
// input against the layout, drives selection, dragging, panning and
// link creation, and returns a list of draw commands.
//
// The engine owns no rendering backend and no persistence. One Context
// per canvas; a Context must only be used from a single goroutine,
// with exactly one Update call per rendered frame.
package nodegraph

import (
	"image/color"

	"go.uber.org/zap"
)

// Context tracks the full state of one node editor canvas.
type Context struct {
	io     IO
	style  Style
	logger *zap.Logger

	canvasOriginScreenSpace Vec2
	canvasRectScreenSpace   Rect

	colorModifierStack    []colorStyleElement
	styleModifierStack    []styleVarElement
	attributeFlagStack    []AttributeFlags
	currentAttributeFlags AttributeFlags

	nodes objectPool[nodeData]
	pins  objectPool[pinData]
	links objectPool[linkData]

	nodeDepthOrder []int

	panning Vec2

	selectedNodeIndices []int
	selectedLinkIndices []int

	// Per-frame scratch, reset at the top of Update.
	nodesOverlappingMouse []int
	occludedPinIndices    []int
	pinClaimed            map[int]bool
	hoveredNodeIdx        int
	interactiveNodeIdx    int
	hoveredLinkIdx        int
	hoveredPinIdx         int
	hoveredPinFlags       AttributeFlags
	deletedLinkIdx        int
	snapLinkIdx           int
	stateChange           stateChange
	activeAttribute       bool
	activeAttributeID     int

	mousePos      Vec2
	mouseDelta    Vec2
	mouseInCanvas bool

	leftMouseClicked  bool
	leftMouseReleased bool
	leftMouseDragging bool
	altMouseClicked   bool
	altMouseDragging  bool

	linkDetachWithModifierClick bool

	clickInteraction interactionKind
	boxSelection     Rect
	linkCreation     linkCreationState
}

type colorStyleElement struct {
	item  ColorStyle
	color color.RGBA
}

type styleVarElement struct {
	item  StyleVar
	value float64
}

// NewContext returns a Context with the default style and IO bindings.
func NewContext() *Context {
	return &Context{
		io:                 DefaultIO(),
		style:              DefaultStyle(),
		logger:             zap.NewNop(),
		nodes:              newObjectPool(newNodeData),
		pins:               newObjectPool(newPinData),
		links:              newObjectPool(newLinkData),
		pinClaimed:         make(map[int]bool),
		hoveredNodeIdx:     -1,
		interactiveNodeIdx: -1,
		hoveredLinkIdx:     -1,
		hoveredPinIdx:      -1,
		deletedLinkIdx:     -1,
		snapLinkIdx:        -1,
	}
}

// SetLogger installs a diagnostics logger. The engine only logs
// degenerate input: duplicate ids and links to undeclared pins.
func (c *Context) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l
}

// Style gives mutable access to the context style. Prefer the
// push/pop overrides for changes scoped to a few declarations.
func (c *Context) Style() *Style { return &c.style }

// IO gives mutable access to the input bindings.
func (c *Context) IO() *IO { return &c.io }

// Update runs one full frame: ingest the declarations, lay out nodes,
// resolve hover, advance the click interaction and reclaim entities
// whose ids were not declared. canvas is the screen-space rect the
// editor occupies. The returned draw list is valid until the next
// Update.
func (c *Context) Update(canvas Rect, nodes []*NodeDecl, links []LinkDecl, in Input) *DrawList {
	c.canvasRectScreenSpace = canvas
	c.canvasOriginScreenSpace = canvas.Min

	c.resetFrame()
	c.processInput(in)

	d := &DrawList{}
	d.background = append(d.background, RectFilled{
		Rect:  canvas,
		Color: c.style.Colors[ColorGridBackground],
	})
	if c.style.Flags&StyleFlagGridLines != 0 {
		c.drawGrid(canvas.Size(), d)
	}

	for _, l := range links {
		c.addLink(l)
	}

	declByIdx := make(map[int]*NodeDecl, len(nodes))
	for _, n := range nodes {
		idx := c.nodeFindOrCreate(n.ID, n.pos)
		declByIdx[idx] = n
	}
	depth := append([]int(nil), c.nodeDepthOrder...)
	for _, idx := range depth {
		if decl, ok := declByIdx[idx]; ok {
			c.addNode(idx, decl)
		}
	}

	for idx := range c.pins.slots {
		if c.pins.inUse[idx] && !c.pinClaimed[idx] {
			c.logger.Debug("link references a pin no node declared",
				zap.Int("pin_id", c.pins.slots[idx].id))
		}
	}

	if c.mouseInCanvas {
		c.resolveOccludedPins()
		c.resolveHoveredPin()
		if c.hoveredPinIdx == -1 {
			c.resolveHoveredNode()
		}
		if c.hoveredNodeIdx == -1 {
			c.resolveHoveredLink()
		}
	}

	for _, idx := range append([]int(nil), c.nodeDepthOrder...) {
		if c.nodes.inUse[idx] {
			c.drawNode(idx, d)
		}
	}
	for idx, inUse := range c.links.inUse {
		if inUse {
			c.drawLink(idx, d)
		}
	}

	if c.leftMouseClicked || c.altMouseClicked {
		c.beginCanvasInteraction()
	}

	c.clickInteractionUpdate(d)

	c.nodePoolUpdate()
	c.pins.reclaim(nil)
	c.links.reclaim(nil)

	d.overlay = append(d.overlay, RectStroke{
		Rect:      canvas,
		Thickness: 1,
		Color:     c.style.Colors[ColorGridLine],
	})
	return d
}

// resetFrame clears liveness flags and all per-frame scratch.
func (c *Context) resetFrame() {
	c.nodes.reset()
	c.pins.reset()
	c.links.reset()

	c.hoveredNodeIdx = -1
	c.interactiveNodeIdx = -1
	c.hoveredLinkIdx = -1
	c.hoveredPinIdx = -1
	c.hoveredPinFlags = AttributeFlagsNone
	c.deletedLinkIdx = -1
	c.snapLinkIdx = -1

	c.nodesOverlappingMouse = c.nodesOverlappingMouse[:0]
	c.stateChange = 0
	c.activeAttribute = false
	for k := range c.pinClaimed {
		delete(c.pinClaimed, k)
	}
}

// processInput derives press/release edges from the previous frame's
// button state. When the pointer is outside the canvas the cached
// position is kept and the delta is zero.
func (c *Context) processInput(in Input) {
	c.mouseInCanvas = c.canvasRectScreenSpace.Contains(in.MousePos)
	if c.mouseInCanvas {
		c.mouseDelta = in.MousePos.Sub(c.mousePos)
		c.mousePos = in.MousePos
	} else {
		c.mouseDelta = Vec2{}
	}

	leftDown := in.buttonDown(ButtonPrimary)
	wasDown := c.leftMouseClicked || c.leftMouseDragging
	c.leftMouseReleased = wasDown && !leftDown
	c.leftMouseDragging = wasDown && leftDown
	c.leftMouseClicked = leftDown && !wasDown

	altDown := c.io.EmulateThreeButtonMouse.activeIn(in.Modifiers) ||
		c.io.AltMouseButton != ButtonNone && in.buttonDown(c.io.AltMouseButton)
	altWasDown := c.altMouseClicked || c.altMouseDragging
	c.altMouseDragging = altWasDown && altDown
	c.altMouseClicked = altDown && !altWasDown

	c.linkDetachWithModifierClick = c.io.LinkDetachWithModifierClick.activeIn(in.Modifiers)
}

// nodeFindOrCreate resolves a node id to its slot, creating the slot
// on first declaration. New nodes take their origin from the declared
// screen position, if any, and go to the front of the depth order.
func (c *Context) nodeFindOrCreate(id int, screenPos *Vec2) int {
	idx, created := c.nodes.findOrCreate(id)
	if created {
		if screenPos != nil {
			c.nodes.slots[idx].origin = c.screenToGrid(*screenPos)
		}
		c.nodeDepthOrder = append(c.nodeDepthOrder, idx)
	}
	return idx
}

// addNode lays out one declared node: stacks the title and attribute
// content rects below the node origin, pads the union into the node
// rect and places the pins on the left/right edges.
func (c *Context) addNode(idx int, decl *NodeDecl) {
	node := &c.nodes.slots[idx]
	c.style.formatNode(node, decl.Args)
	padding := node.layoutStyle.padding

	origin := c.gridToScreen(node.origin)
	cursor := origin
	content := RectFromMinSize(origin, Vec2{})
	hasContent := false

	if decl.hasTitle {
		tr := RectFromMinSize(cursor, *decl.title)
		node.titleBarContentRect = tr
		content = tr
		hasContent = true
		cursor.Y = tr.Max.Y + padding.Y
	} else {
		node.titleBarContentRect = Rect{}
	}

	for _, attr := range decl.Attributes {
		ar := RectFromMinSize(cursor, attr.Size)
		if hasContent {
			content = content.Union(ar)
		} else {
			content = ar
			hasContent = true
		}
		cursor.Y = ar.Max.Y + padding.Y
		c.addAttribute(attr, ar, idx)
	}

	node = &c.nodes.slots[idx] // addAttribute may grow the pool slices
	node.rect = content.Expand2(padding)
	node.size = node.rect.Size()

	for _, pinIdx := range node.pinIndices {
		pin := &c.pins.slots[pinIdx]
		pin.pos = c.style.pinPosition(node.rect, pin.attributeRect, pin.kind)
	}

	if node.rect.Contains(c.mousePos) {
		c.nodesOverlappingMouse = append(c.nodesOverlappingMouse, idx)
	}
}

// addAttribute classifies one attribute row. Connectable attributes
// get a pin slot; a pin id declared twice in one frame keeps its first
// owner and is logged rather than drawn twice.
func (c *Context) addAttribute(attr AttributeDecl, rect Rect, nodeIdx int) {
	if attr.Kind != AttributeNone {
		pinIdx, _ := c.pins.findOrCreate(attr.ID)
		pin := &c.pins.slots[pinIdx]
		pin.parentNodeIdx = nodeIdx
		pin.kind = attr.Kind
		pin.attributeRect = rect
		c.style.formatPin(pin, attr.Args, c.currentAttributeFlags)

		if c.pinClaimed[pinIdx] {
			c.logger.Warn("duplicate pin id declared this frame",
				zap.Int("pin_id", attr.ID),
				zap.Int("node_id", c.nodes.slots[nodeIdx].id))
		} else {
			c.pinClaimed[pinIdx] = true
			c.nodes.slots[nodeIdx].pinIndices = append(c.nodes.slots[nodeIdx].pinIndices, pinIdx)
		}
	}

	if attr.Active {
		c.activeAttribute = true
		c.activeAttributeID = attr.ID
		c.interactiveNodeIdx = nodeIdx
	}
}

// addLink ingests one link declaration. Pins referenced before their
// node is declared get placeholder slots; if the node never declares
// them they keep default geometry at the origin. The snap slot is set
// when the declared link matches the in-flight provisional link, so
// re-snapping an existing link is not treated as a duplicate.
func (c *Context) addLink(decl LinkDecl) {
	linkIdx, _ := c.links.findOrCreate(decl.ID)
	link := &c.links.slots[linkIdx]
	startIdx, _ := c.pins.findOrCreate(decl.Start)
	endIdx, _ := c.pins.findOrCreate(decl.End)
	link.startPinIdx = startIdx
	link.endPinIdx = endIdx
	c.style.formatLink(link, decl.Args)

	creation := &c.linkCreation
	snapOnCreate := c.clickInteraction == interactionLinkCreation &&
		c.pins.slots[link.endPinIdx].flags&LinkCreationOnSnap != 0 &&
		creation.startPinIdx == link.startPinIdx &&
		creation.endPinIdx == link.endPinIdx
	resnapped := creation.startPinIdx == link.endPinIdx &&
		creation.endPinIdx == link.startPinIdx
	if snapOnCreate || resnapped {
		c.snapLinkIdx = linkIdx
	}
}

// drawGrid emits pan-aligned grid lines across the canvas.
func (c *Context) drawGrid(canvasSize Vec2, d *DrawList) {
	spacing := c.style.GridSpacing
	if spacing <= 0 {
		return
	}
	lineColor := c.style.Colors[ColorGridLine]

	for x := remEuclid(c.panning.X, spacing); x < canvasSize.X; x += spacing {
		d.background = append(d.background, Line{
			From:      c.editorToScreen(Vec2{X: x}),
			To:        c.editorToScreen(Vec2{X: x, Y: canvasSize.Y}),
			Thickness: 1,
			Color:     lineColor,
		})
	}
	for y := remEuclid(c.panning.Y, spacing); y < canvasSize.Y; y += spacing {
		d.background = append(d.background, Line{
			From:      c.editorToScreen(Vec2{Y: y}),
			To:        c.editorToScreen(Vec2{X: canvasSize.X, Y: y}),
			Thickness: 1,
			Color:     lineColor,
		})
	}
}

func remEuclid(v, m float64) float64 {
	r := v - m*float64(int(v/m))
	if r < 0 {
		r += m
	}
	return r
}

// nodePoolUpdate reclaims nodes that were not declared this frame and
// keeps the depth order consistent: every live slot exactly once.
func (c *Context) nodePoolUpdate() {
	for i, inUse := range c.nodes.inUse {
		if inUse {
			c.nodes.slots[i].pinIndices = c.nodes.slots[i].pinIndices[:0]
		}
	}
	c.nodes.reclaim(func(slot int) {
		c.nodeDepthOrder = removeIndex(c.nodeDepthOrder, slot)
	})
}

func removeIndex(order []int, idx int) []int {
	out := order[:0]
	for _, v := range order {
		if v != idx {
			out = append(out, v)
		}
	}
	return out
}

// Coordinate spaces: grid space is pan-independent and what node
// origins are stored in; editor space is grid space plus panning;
// screen space is editor space plus the canvas origin.

func (c *Context) screenToGrid(v Vec2) Vec2 {
	return v.Sub(c.canvasOriginScreenSpace).Sub(c.panning)
}

func (c *Context) gridToScreen(v Vec2) Vec2 {
	return v.Add(c.canvasOriginScreenSpace).Add(c.panning)
}

func (c *Context) gridToEditor(v Vec2) Vec2 {
	return v.Add(c.panning)
}

func (c *Context) editorToGrid(v Vec2) Vec2 {
	return v.Sub(c.panning)
}

func (c *Context) editorToScreen(v Vec2) Vec2 {
	return v.Add(c.canvasOriginScreenSpace)
}

func (c *Context) pinScreenPosition(pin *pinData) Vec2 {
	// A pin named only by a link declaration has no parent slot; its
	// attribute rect stands in for the missing node rect.
	if pin.parentNodeIdx >= len(c.nodes.slots) {
		return c.style.pinPosition(pin.attributeRect, pin.attributeRect, pin.kind)
	}
	parentRect := c.nodes.slots[pin.parentNodeIdx].rect
	return c.style.pinPosition(parentRect, pin.attributeRect, pin.kind)
}
