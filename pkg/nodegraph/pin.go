package nodegraph

import "image/color"

// AttributeKind tells whether an attribute accepts connections and in
// which direction.
type AttributeKind int

const (
	AttributeNone AttributeKind = iota
	AttributeInput
	AttributeOutput
)

// PinShape controls how an attribute pin is drawn.
type PinShape int

const (
	PinShapeCircle PinShape = iota
	PinShapeCircleFilled
	PinShapeTriangle
	PinShapeTriangleFilled
	PinShapeQuad
	PinShapeQuadFilled
)

// AttributeFlags change how pins behave during link interactions.
// Flags combine with bitwise or.
type AttributeFlags int

const (
	AttributeFlagsNone AttributeFlags = 0

	// LinkDetachWithDragClick makes dragging from a pin that already
	// has a link detach that link instead of starting a new one.
	// Callers handling this must consume LinkDestroyed.
	LinkDetachWithDragClick AttributeFlags = 1 << 0

	// LinkCreationOnSnap commits a provisional link the moment it
	// snaps to the pin, without waiting for the button release.
	LinkCreationOnSnap AttributeFlags = 1 << 1
)

// PinArgs overrides per-pin style. Nil fields fall back to the context
// style; Flags falls back to the current attribute-flag stack value.
type PinArgs struct {
	Shape      PinShape
	Flags      *AttributeFlags
	Background *color.RGBA
	Hovered    *color.RGBA
}

type pinColorStyle struct {
	background color.RGBA
	hovered    color.RGBA
}

// pinData is the pooled record for one attribute pin.
type pinData struct {
	id            int
	parentNodeIdx int
	attributeRect Rect
	kind          AttributeKind
	shape         PinShape
	pos           Vec2 // screen space, recomputed every frame
	flags         AttributeFlags
	colorStyle    pinColorStyle
}

func newPinData(id int) pinData {
	return pinData{
		id:    id,
		kind:  AttributeNone,
		shape: PinShapeCircleFilled,
	}
}
