// Per-frame declarations. Callers rebuild these every frame; identity
// lives in the ids, not in the structs. Attribute and title content is
// external to the engine, which only needs the space the content
// occupies and whether it is currently pressed.

package nodegraph

// AttributeDecl declares one attribute row of a node. Size is the
// extent the attribute's content occupies; Active reports whether the
// content is being interacted with (for example a slider mid-drag),
// which suppresses node dragging for that node.
type AttributeDecl struct {
	ID     int
	Kind   AttributeKind
	Args   PinArgs
	Size   Vec2
	Active bool
}

// NodeDecl declares one node for the current frame. Ids must be stable
// across frames and unique within a frame.
type NodeDecl struct {
	ID         int
	Args       NodeArgs
	Attributes []AttributeDecl

	pos      *Vec2
	title    *Vec2
	hasTitle bool
}

// NewNode starts a node declaration.
func NewNode(id int, args NodeArgs) *NodeDecl {
	return &NodeDecl{ID: id, Args: args}
}

// WithOrigin sets the node's screen position. Honored only on the
// frame the node is first created; afterwards position changes go
// through the Context position setters or dragging.
func (n *NodeDecl) WithOrigin(pos Vec2) *NodeDecl {
	p := pos
	n.pos = &p
	return n
}

// WithTitle adds a title bar whose content occupies size.
func (n *NodeDecl) WithTitle(size Vec2) *NodeDecl {
	s := size
	n.title = &s
	n.hasTitle = true
	return n
}

// WithInput adds an input attribute, connectable to output attributes
// of other nodes.
func (n *NodeDecl) WithInput(id int, args PinArgs, size Vec2) *NodeDecl {
	n.Attributes = append(n.Attributes, AttributeDecl{ID: id, Kind: AttributeInput, Args: args, Size: size})
	return n
}

// WithOutput adds an output attribute, connectable to input attributes
// of other nodes.
func (n *NodeDecl) WithOutput(id int, args PinArgs, size Vec2) *NodeDecl {
	n.Attributes = append(n.Attributes, AttributeDecl{ID: id, Kind: AttributeOutput, Args: args, Size: size})
	return n
}

// WithStatic adds a non-connectable attribute.
func (n *NodeDecl) WithStatic(id int, size Vec2) *NodeDecl {
	n.Attributes = append(n.Attributes, AttributeDecl{ID: id, Kind: AttributeNone, Size: size})
	return n
}

// WithAttribute adds a fully specified attribute.
func (n *NodeDecl) WithAttribute(attr AttributeDecl) *NodeDecl {
	n.Attributes = append(n.Attributes, attr)
	return n
}

// LinkDecl declares one link for the current frame. Start is the
// output-side attribute id, End the input-side one.
type LinkDecl struct {
	ID    int
	Start int
	End   int
	Args  LinkArgs
}
