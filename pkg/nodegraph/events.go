// One-shot interaction events. Each accessor reports on the frame of
// the most recent Update only; flags are cleared when the next frame
// begins.

package nodegraph

type stateChange uint8

const (
	changeLinkStarted stateChange = 1 << iota
	changeLinkDropped
	changeLinkCreated
)

// LinkStarted reports the pin id a provisional link was dragged from
// this frame.
func (c *Context) LinkStarted() (pinID int, ok bool) {
	if c.stateChange&changeLinkStarted == 0 {
		return 0, false
	}
	return c.pins.slots[c.linkCreation.startPinIdx].id, true
}

// LinkDropped reports the anchor pin id of a provisional link that
// ended this frame without connecting. Drops of links that began as a
// detach are only reported when includingDetached is set.
func (c *Context) LinkDropped(includingDetached bool) (pinID int, ok bool) {
	if c.stateChange&changeLinkDropped == 0 {
		return 0, false
	}
	if !includingDetached && c.linkCreation.kind == linkCreationFromDetach {
		return 0, false
	}
	return c.pins.slots[c.linkCreation.startPinIdx].id, true
}

// CreatedLink describes a link completed this frame. Output/Input are
// resolved by pin role, regardless of which end the drag started from.
// FromSnap is set when the link was committed by snapping (a
// LinkCreationOnSnap pin) rather than by releasing the button.
type CreatedLink struct {
	OutputPin  int
	OutputNode int
	InputPin   int
	InputNode  int
	FromSnap   bool
}

// LinkCreated reports a link completed this frame.
func (c *Context) LinkCreated() (CreatedLink, bool) {
	if c.stateChange&changeLinkCreated == 0 || c.linkCreation.endPinIdx == -1 {
		return CreatedLink{}, false
	}
	startPin := &c.pins.slots[c.linkCreation.startPinIdx]
	endPin := &c.pins.slots[c.linkCreation.endPinIdx]

	ev := CreatedLink{
		OutputPin:  startPin.id,
		OutputNode: c.nodes.slots[startPin.parentNodeIdx].id,
		InputPin:   endPin.id,
		InputNode:  c.nodes.slots[endPin.parentNodeIdx].id,
		// Still mid-creation after the commit means the link was made
		// by snapping, not by the release that ends the interaction.
		FromSnap: c.clickInteraction == interactionLinkCreation,
	}
	if startPin.kind != AttributeOutput {
		ev.OutputPin, ev.InputPin = ev.InputPin, ev.OutputPin
		ev.OutputNode, ev.InputNode = ev.InputNode, ev.OutputNode
	}
	return ev, true
}

// LinkDestroyed reports the id of a link detached this frame. The
// caller consumes this to drop the link from its own declarations.
func (c *Context) LinkDestroyed() (linkID int, ok bool) {
	if c.deletedLinkIdx == -1 {
		return 0, false
	}
	return c.links.slots[c.deletedLinkIdx].id, true
}
