package nodegraph

import "testing"

func threeNodes() []*NodeDecl {
	return []*NodeDecl{
		NewNode(1, NodeArgs{}).
			WithOrigin(Vec2{100, 100}).
			WithOutput(11, PinArgs{}, Vec2{80, 20}),
		NewNode(2, NodeArgs{}).
			WithOrigin(Vec2{300, 100}).
			WithInput(21, PinArgs{}, Vec2{80, 20}),
		NewNode(3, NodeArgs{}).
			WithOrigin(Vec2{500, 100}).
			WithInput(31, PinArgs{}, Vec2{80, 20}),
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNodeClickSelectsAndRaises(t *testing.T) {
	h := newHarness(t)
	h.frame(threeNodes(), nil)

	h.mouse(140, 124)
	h.frame(threeNodes(), nil)
	h.button(ButtonPrimary, true)
	h.frame(threeNodes(), nil)

	if got := h.ctx.SelectedNodes(); !equalInts(got, []int{1}) {
		t.Errorf("SelectedNodes = %v, want [1]", got)
	}
	if got := h.depthIDs(); !equalInts(got, []int{2, 3, 1}) {
		t.Errorf("depth order = %v, want [2 3 1]", got)
	}

	// Clicking empty canvas later does not clear the selection until a
	// new element interaction begins
	h.button(ButtonPrimary, false)
	h.frame(threeNodes(), nil)
	if got := h.ctx.SelectedNodes(); !equalInts(got, []int{1}) {
		t.Errorf("selection lost on release: %v", got)
	}
}

func TestNodeDragMovesSelection(t *testing.T) {
	h := newHarness(t)
	h.frame(threeNodes(), nil)

	h.mouse(140, 124)
	h.frame(threeNodes(), nil)
	h.button(ButtonPrimary, true)
	h.frame(threeNodes(), nil)

	h.mouse(160, 134)
	h.frame(threeNodes(), nil)

	pos, _ := h.ctx.NodePosGridSpace(1)
	if pos.X != 120 || pos.Y != 110 {
		t.Errorf("dragged node at %v, want (120,110)", pos)
	}

	h.button(ButtonPrimary, false)
	h.frame(threeNodes(), nil)
	if h.ctx.clickInteraction != interactionNone {
		t.Error("release should end the drag interaction")
	}
}

func TestDragRespectsDraggableFlag(t *testing.T) {
	h := newHarness(t)
	h.frame(threeNodes(), nil)
	h.ctx.SetNodeDraggable(1, false)

	h.mouse(140, 124)
	h.frame(threeNodes(), nil)
	h.button(ButtonPrimary, true)
	h.frame(threeNodes(), nil)
	h.mouse(180, 150)
	h.frame(threeNodes(), nil)

	pos, _ := h.ctx.NodePosGridSpace(1)
	if pos.X != 100 || pos.Y != 100 {
		t.Errorf("non-draggable node moved to %v", pos)
	}
	// Selection still happens; only translation is suppressed
	if got := h.ctx.SelectedNodes(); !equalInts(got, []int{1}) {
		t.Errorf("SelectedNodes = %v, want [1]", got)
	}
}

func TestActiveAttributeSuppressesNodeDrag(t *testing.T) {
	h := newHarness(t)
	nodes := func() []*NodeDecl {
		return []*NodeDecl{
			NewNode(1, NodeArgs{}).
				WithOrigin(Vec2{100, 100}).
				WithAttribute(AttributeDecl{ID: 11, Kind: AttributeOutput, Size: Vec2{80, 20}, Active: true}),
		}
	}
	h.frame(nodes(), nil)

	h.mouse(140, 124)
	h.frame(nodes(), nil)
	h.button(ButtonPrimary, true)
	h.frame(nodes(), nil)

	if len(h.ctx.SelectedNodes()) != 0 {
		t.Error("click on a node with an active attribute should not select")
	}
	if h.ctx.clickInteraction != interactionNone {
		t.Error("no interaction should begin over an active attribute")
	}
}

func TestBoxSelectionSelectsAndRaises(t *testing.T) {
	h := newHarness(t)
	h.frame(threeNodes(), oneLink())

	// Press on empty canvas, drag so the corners arrive reversed on
	// the Y axis.
	h.mouse(50, 200)
	h.frame(threeNodes(), oneLink())
	h.button(ButtonPrimary, true)
	h.frame(threeNodes(), oneLink())
	h.mouse(400, 60)
	h.frame(threeNodes(), oneLink())

	if h.ctx.clickInteraction != interactionBoxSelection {
		t.Fatal("box selection should be active")
	}
	if got := h.ctx.SelectedNodes(); !equalInts(got, []int{1, 2}) {
		t.Errorf("SelectedNodes = %v, want [1 2]", got)
	}
	if got := h.ctx.SelectedLinks(); !equalInts(got, []int{5}) {
		t.Errorf("SelectedLinks = %v, want [5]", got)
	}

	h.button(ButtonPrimary, false)
	h.frame(threeNodes(), oneLink())

	// Selected nodes raised to the front, relative order preserved
	if got := h.depthIDs(); !equalInts(got, []int{3, 1, 2}) {
		t.Errorf("depth order = %v, want [3 1 2]", got)
	}
	if h.ctx.clickInteraction != interactionNone {
		t.Error("release should end box selection")
	}
}

func TestBoxSelectionWithDanglingLink(t *testing.T) {
	h := newHarness(t)
	// The link names pins no node declares; box selection must still
	// sweep it without touching a node slot.
	links := []LinkDecl{{ID: 5, Start: 11, End: 21}}

	h.mouse(50, 50)
	h.frame(nil, links)
	h.button(ButtonPrimary, true)
	h.frame(nil, links)
	h.mouse(200, 200)
	h.frame(nil, links)
	h.button(ButtonPrimary, false)
	h.frame(nil, links)

	if ids := h.ctx.SelectedLinks(); len(ids) != 0 {
		t.Errorf("selected links = %v, want none", ids)
	}
}

func TestPanningWithMiddleButton(t *testing.T) {
	h := newHarness(t)
	h.frame(threeNodes(), nil)

	h.mouse(240, 300)
	h.frame(threeNodes(), nil)
	h.button(ButtonMiddle, true)
	h.frame(threeNodes(), nil)
	h.mouse(260, 320)
	h.frame(threeNodes(), nil)

	if p := h.ctx.Panning(); p.X != 20 || p.Y != 20 {
		t.Errorf("Panning = %v, want (20,20)", p)
	}
	screen, _ := h.ctx.NodePosScreenSpace(1)
	if screen.X != 120 || screen.Y != 120 {
		t.Errorf("node screen pos = %v, want (120,120)", screen)
	}
	grid, _ := h.ctx.NodePosGridSpace(1)
	if grid.X != 100 || grid.Y != 100 {
		t.Errorf("node grid pos = %v, want unchanged (100,100)", grid)
	}

	h.button(ButtonMiddle, false)
	h.frame(threeNodes(), nil)
	if h.ctx.clickInteraction != interactionNone {
		t.Error("release should end panning")
	}
}

func TestLinkCreationDragAndRelease(t *testing.T) {
	h := newHarness(t)
	h.mouse(188, 110)
	h.frame(twoNodes(), nil)

	h.button(ButtonPrimary, true)
	h.frame(twoNodes(), nil)
	if id, ok := h.ctx.LinkStarted(); !ok || id != 11 {
		t.Fatalf("LinkStarted = %v %v, want 11", id, ok)
	}

	h.mouse(240, 110)
	h.frame(twoNodes(), nil)
	if _, ok := h.ctx.LinkCreated(); ok {
		t.Fatal("no link should be created mid-drag over empty canvas")
	}

	h.mouse(292, 110)
	h.frame(twoNodes(), nil)
	h.button(ButtonPrimary, false)
	h.frame(twoNodes(), nil)

	created, ok := h.ctx.LinkCreated()
	if !ok {
		t.Fatal("release over an input pin should create a link")
	}
	if created.OutputPin != 11 || created.InputPin != 21 {
		t.Errorf("created pins = %d -> %d, want 11 -> 21", created.OutputPin, created.InputPin)
	}
	if created.OutputNode != 1 || created.InputNode != 2 {
		t.Errorf("created nodes = %d -> %d, want 1 -> 2", created.OutputNode, created.InputNode)
	}
	if created.FromSnap {
		t.Error("release-created link should not report FromSnap")
	}
	if _, ok := h.ctx.LinkDropped(true); ok {
		t.Error("a created link must not also report dropped")
	}
}

func TestLinkCreationFromInputPinResolvesRoles(t *testing.T) {
	h := newHarness(t)
	h.mouse(292, 110)
	h.frame(twoNodes(), nil)
	h.button(ButtonPrimary, true)
	h.frame(twoNodes(), nil)

	h.mouse(188, 110)
	h.frame(twoNodes(), nil)
	h.button(ButtonPrimary, false)
	h.frame(twoNodes(), nil)

	created, ok := h.ctx.LinkCreated()
	if !ok {
		t.Fatal("dragging input to output should create a link")
	}
	// Roles are resolved by pin kind, not drag direction
	if created.OutputPin != 11 || created.InputPin != 21 {
		t.Errorf("created pins = %d -> %d, want 11 -> 21", created.OutputPin, created.InputPin)
	}
}

func TestLinkDroppedOnEmptyCanvas(t *testing.T) {
	h := newHarness(t)
	h.mouse(188, 110)
	h.frame(twoNodes(), nil)
	h.button(ButtonPrimary, true)
	h.frame(twoNodes(), nil)

	h.mouse(240, 200)
	h.frame(twoNodes(), nil)
	h.button(ButtonPrimary, false)
	h.frame(twoNodes(), nil)

	if id, ok := h.ctx.LinkDropped(false); !ok || id != 11 {
		t.Errorf("LinkDropped = %v %v, want 11", id, ok)
	}
	if _, ok := h.ctx.LinkCreated(); ok {
		t.Error("dropped link must not report created")
	}
}

func TestSnapRequiresOppositeKindOnOtherNode(t *testing.T) {
	h := newHarness(t)
	nodes := func() []*NodeDecl {
		return []*NodeDecl{
			NewNode(1, NodeArgs{}).
				WithOrigin(Vec2{100, 100}).
				WithOutput(11, PinArgs{}, Vec2{80, 20}),
			NewNode(2, NodeArgs{}).
				WithOrigin(Vec2{300, 100}).
				WithOutput(21, PinArgs{}, Vec2{80, 20}),
		}
	}
	h.mouse(188, 110)
	h.frame(nodes(), nil)
	h.button(ButtonPrimary, true)
	h.frame(nodes(), nil)

	// Node 2's pin is an output too; hovering it must not snap.
	h.mouse(388, 110)
	h.frame(nodes(), nil)
	h.button(ButtonPrimary, false)
	h.frame(nodes(), nil)

	if _, ok := h.ctx.LinkCreated(); ok {
		t.Error("same-kind pins must not link")
	}
	if _, ok := h.ctx.LinkDropped(false); !ok {
		t.Error("refused snap should drop on release")
	}
}

func TestSnapRejectsDuplicateLink(t *testing.T) {
	h := newHarness(t)
	h.mouse(188, 110)
	h.frame(twoNodes(), oneLink())
	h.button(ButtonPrimary, true)
	h.frame(twoNodes(), oneLink())

	h.mouse(292, 110)
	h.frame(twoNodes(), oneLink())
	h.button(ButtonPrimary, false)
	h.frame(twoNodes(), oneLink())

	if _, ok := h.ctx.LinkCreated(); ok {
		t.Error("a second link across the same pin pair must not be created")
	}
	if id, ok := h.ctx.LinkDropped(false); !ok || id != 11 {
		t.Errorf("LinkDropped = %v %v, want 11", id, ok)
	}
	if _, ok := h.ctx.LinkDestroyed(); ok {
		t.Error("the existing link must survive a refused duplicate")
	}
}

func TestSnapRejectsDuplicateLinkReversed(t *testing.T) {
	h := newHarness(t)
	h.mouse(292, 110)
	h.frame(twoNodes(), oneLink())
	h.button(ButtonPrimary, true)
	h.frame(twoNodes(), oneLink())

	// Dragging from the input end back onto the output pin proposes the
	// declared pair with the endpoints swapped.
	h.mouse(188, 110)
	h.frame(twoNodes(), oneLink())
	h.button(ButtonPrimary, false)
	h.frame(twoNodes(), oneLink())

	if _, ok := h.ctx.LinkCreated(); ok {
		t.Error("swapped endpoints still name the same pin pair")
	}
	if id, ok := h.ctx.LinkDropped(false); !ok || id != 21 {
		t.Errorf("LinkDropped = %v %v, want 21", id, ok)
	}
	if _, ok := h.ctx.LinkDestroyed(); ok {
		t.Error("the existing link must survive a refused duplicate")
	}
}

func TestResnapExistingLinkAllowed(t *testing.T) {
	h := newHarness(t)
	onSnap := LinkCreationOnSnap
	nodes := func() []*NodeDecl {
		return []*NodeDecl{
			NewNode(1, NodeArgs{}).
				WithOrigin(Vec2{100, 100}).
				WithOutput(11, PinArgs{}, Vec2{80, 20}),
			NewNode(2, NodeArgs{}).
				WithOrigin(Vec2{300, 100}).
				WithInput(21, PinArgs{Flags: &onSnap}, Vec2{80, 20}),
		}
	}

	var links []LinkDecl

	h.mouse(188, 110)
	h.frame(nodes(), links)
	h.button(ButtonPrimary, true)
	h.frame(nodes(), links)

	// Snapping onto the on-snap pin creates the link mid-drag.
	h.mouse(292, 110)
	h.frame(nodes(), links)
	created, ok := h.ctx.LinkCreated()
	if !ok {
		t.Fatal("on-snap pin should create the link before release")
	}
	if !created.FromSnap {
		t.Error("mid-drag creation should report FromSnap")
	}
	links = []LinkDecl{{ID: 7, Start: created.OutputPin, End: created.InputPin}}

	// Still hovering the same pin: the declared link is the snap link,
	// not a duplicate, and the creation must not fire again.
	h.frame(nodes(), links)
	if _, ok := h.ctx.LinkCreated(); ok {
		t.Error("resting on the snapped pin must not re-create the link")
	}
	if _, ok := h.ctx.LinkDestroyed(); ok {
		t.Error("resting on the snapped pin must not detach the link")
	}

	// Dragging away detaches the snapped link and keeps the drag alive
	// from its output end.
	h.mouse(240, 180)
	h.frame(nodes(), links)
	if id, ok := h.ctx.LinkDestroyed(); !ok || id != 7 {
		t.Errorf("LinkDestroyed = %v %v, want 7", id, ok)
	}
	if h.ctx.clickInteraction != interactionLinkCreation {
		t.Error("drag should continue after the detach")
	}
	links = nil

	h.button(ButtonPrimary, false)
	h.frame(nodes(), links)
	if _, ok := h.ctx.LinkDropped(false); !ok {
		t.Error("final release over empty canvas should drop")
	}
}

func TestDetachWithDragClick(t *testing.T) {
	h := newHarness(t)
	detach := LinkDetachWithDragClick
	nodes := func() []*NodeDecl {
		return []*NodeDecl{
			NewNode(1, NodeArgs{}).
				WithOrigin(Vec2{100, 100}).
				WithOutput(11, PinArgs{}, Vec2{80, 20}),
			NewNode(2, NodeArgs{}).
				WithOrigin(Vec2{300, 100}).
				WithInput(21, PinArgs{Flags: &detach}, Vec2{80, 20}),
		}
	}
	links := []LinkDecl{{ID: 3, Start: 11, End: 21}}

	h.mouse(292, 110)
	h.frame(nodes(), links)
	h.button(ButtonPrimary, true)
	h.frame(nodes(), links)

	if id, ok := h.ctx.LinkDestroyed(); !ok || id != 3 {
		t.Fatalf("LinkDestroyed = %v %v, want 3", id, ok)
	}
	// The surviving output end anchors the new provisional link.
	if id, ok := h.ctx.LinkStarted(); !ok || id != 11 {
		t.Errorf("LinkStarted = %v %v, want surviving pin 11", id, ok)
	}
	links = nil

	h.mouse(240, 180)
	h.frame(nodes(), links)
	h.button(ButtonPrimary, false)
	h.frame(nodes(), links)

	if _, ok := h.ctx.LinkDropped(false); ok {
		t.Error("detach drops are excluded unless includingDetached is set")
	}
	if id, ok := h.ctx.LinkDropped(true); !ok || id != 11 {
		t.Errorf("LinkDropped(true) = %v %v, want 11", id, ok)
	}
}

func TestDetachWithModifierClick(t *testing.T) {
	h := newHarness(t)
	h.ctx.IO().LinkDetachWithModifierClick = ModifierCtrl

	h.mouse(220, 110)
	h.frame(twoNodes(), oneLink())

	h.in.Modifiers.Ctrl = true
	h.button(ButtonPrimary, true)
	h.frame(twoNodes(), oneLink())

	if id, ok := h.ctx.LinkDestroyed(); !ok || id != 5 {
		t.Fatalf("LinkDestroyed = %v %v, want 5", id, ok)
	}
	if h.ctx.clickInteraction != interactionLinkCreation {
		t.Error("modifier detach should hand the link to the drag")
	}

	// The far endpoint survives: the click was nearer the output pin.
	h.button(ButtonPrimary, false)
	h.frame(twoNodes(), nil)
	if id, ok := h.ctx.LinkDropped(true); !ok || id != 21 {
		t.Errorf("LinkDropped = %v %v, want surviving pin 21", id, ok)
	}
}

func TestLinkClickSelects(t *testing.T) {
	h := newHarness(t)
	h.mouse(240, 110)
	h.frame(twoNodes(), oneLink())
	h.button(ButtonPrimary, true)
	h.frame(twoNodes(), oneLink())

	if got := h.ctx.SelectedLinks(); !equalInts(got, []int{5}) {
		t.Errorf("SelectedLinks = %v, want [5]", got)
	}
	if len(h.ctx.SelectedNodes()) != 0 {
		t.Error("link selection should clear node selection")
	}

	h.button(ButtonPrimary, false)
	h.frame(twoNodes(), oneLink())
	if h.ctx.clickInteraction != interactionNone {
		t.Error("release should end the link interaction")
	}
}

func TestDeletedLinkNotDrawn(t *testing.T) {
	h := newHarness(t)
	detach := LinkDetachWithDragClick
	nodes := func() []*NodeDecl {
		return []*NodeDecl{
			NewNode(1, NodeArgs{}).
				WithOrigin(Vec2{100, 100}).
				WithOutput(11, PinArgs{}, Vec2{80, 20}),
			NewNode(2, NodeArgs{}).
				WithOrigin(Vec2{300, 100}).
				WithInput(21, PinArgs{Flags: &detach}, Vec2{80, 20}),
		}
	}
	links := []LinkDecl{{ID: 3, Start: 11, End: 21}}

	h.mouse(292, 110)
	h.frame(nodes(), links)
	h.button(ButtonPrimary, true)
	d := h.frame(nodes(), links)

	// Only the provisional overlay curve should remain; the detached
	// link's polyline is suppressed the frame it dies.
	if len(d.links) != 0 {
		t.Errorf("detached link still drawn: %d link commands", len(d.links))
	}
}
