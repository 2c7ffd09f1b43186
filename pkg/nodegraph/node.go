package nodegraph

import "image/color"

// NodeArgs overrides per-node style. Nil fields fall back to the
// context style.
type NodeArgs struct {
	Background         *color.RGBA
	BackgroundHovered  *color.RGBA
	BackgroundSelected *color.RGBA
	Outline            *color.RGBA
	Titlebar           *color.RGBA
	TitlebarHovered    *color.RGBA
	TitlebarSelected   *color.RGBA
	CornerRounding     *float64
	Padding            *Vec2
	BorderThickness    *float64
}

type nodeColorStyle struct {
	background         color.RGBA
	backgroundHovered  color.RGBA
	backgroundSelected color.RGBA
	outline            color.RGBA
	titlebar           color.RGBA
	titlebarHovered    color.RGBA
	titlebarSelected   color.RGBA
}

type nodeLayoutStyle struct {
	cornerRounding  float64
	padding         Vec2
	borderThickness float64
}

// nodeData is the pooled record for one node. Origin is grid space and
// persists across frames; everything else is rebuilt per frame.
type nodeData struct {
	id                  int
	origin              Vec2 // grid space
	size                Vec2
	titleBarContentRect Rect
	rect                Rect // screen space, set during layout
	colorStyle          nodeColorStyle
	layoutStyle         nodeLayoutStyle
	pinIndices          []int
	draggable           bool
}

func newNodeData(id int) nodeData {
	return nodeData{
		id:        id,
		origin:    Vec2{100, 100},
		size:      Vec2{100, 100},
		draggable: true,
	}
}

// titleRect is the full-width title bar band at the top of the node.
func (n *nodeData) titleRect() Rect {
	expanded := n.titleBarContentRect.Expand2(n.layoutStyle.padding)
	return RectFromMinMax(
		expanded.Min,
		expanded.Min.Add(Vec2{n.rect.Width(), expanded.Height()}),
	)
}
