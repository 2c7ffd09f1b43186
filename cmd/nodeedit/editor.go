package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ha1tch/nodekit/pkg/document"
	"github.com/ha1tch/nodekit/pkg/nodegraph"
	"github.com/ha1tch/nodekit/pkg/theme"
)

func newEditCmd() *cobra.Command {
	var themePath string
	cfg := LoadConfig()

	cmd := &cobra.Command{
		Use:   "edit <graph.yaml>",
		Short: "Open a graph file in the TUI editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := NewEditor(args[0], themePath, cfg)
			if err != nil {
				return err
			}
			return ed.Run()
		},
	}
	cmd.Flags().StringVar(&themePath, "theme", cfg.Theme, "theme file to apply")
	return cmd
}

// Editor holds all editor state.
type Editor struct {
	screen   tcell.Screen
	ctx      *nodegraph.Context
	graph    *document.Graph
	path     string
	logger   *zap.Logger
	config   Config
	modified bool
	message  string
	quit     bool

	input      nodegraph.Input
	nextNodeID int
	nextAttrID int
}

// NewEditor loads the graph file, or starts an empty graph when the
// file does not exist yet.
func NewEditor(path, themePath string, cfg Config) (*Editor, error) {
	graph, err := document.Load(path)
	if err != nil {
		graph = &document.Graph{}
	}

	logger := newLogger()
	ctx := nodegraph.NewContext()
	ctx.SetLogger(logger)

	// The terminal is the canvas, so one style unit is one cell.
	applyCellScale(ctx.Style())

	if themePath != "" {
		t, err := theme.Load(themePath)
		if err != nil {
			return nil, err
		}
		t.Apply(ctx.Style())
	}

	graph.ApplyTo(ctx)

	ed := &Editor{
		ctx:    ctx,
		graph:  graph,
		path:   path,
		logger: logger,
		config: cfg,
	}
	ed.nextNodeID, ed.nextAttrID = nextIDs(graph)
	return ed, nil
}

// applyCellScale shrinks the pixel-tuned defaults to character cells.
func applyCellScale(s *nodegraph.Style) {
	s.GridSpacing = 8
	s.NodeCornerRounding = 0
	s.NodePaddingHorizontal = 2
	s.NodePaddingVertical = 0
	s.LinkThickness = 1
	s.LinkHoverDistance = 1.5
	s.PinCircleRadius = 0.5
	s.PinQuadSideLength = 1
	s.PinTriangleSideLength = 1
	s.PinHoverRadius = 2
}

func nextIDs(g *document.Graph) (nodeID, attrID int) {
	nodeID, attrID = 1, 1
	for _, n := range g.Nodes {
		if n.ID >= nodeID {
			nodeID = n.ID + 1
		}
		for _, a := range n.Attributes {
			if a.ID >= attrID {
				attrID = a.ID + 1
			}
		}
	}
	return nodeID, attrID
}

// Run owns the terminal until the user quits.
func (ed *Editor) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	ed.screen = screen
	defer func() {
		screen.Fini()
		_ = ed.logger.Sync()
	}()

	ed.logger.Info("editor session started", zap.String("file", ed.path))

	ed.frame()
	for !ed.quit {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventMouse:
			ed.handleMouse(ev)
		case *tcell.EventKey:
			ed.handleKey(ev)
		case *tcell.EventResize:
			screen.Sync()
		}
		ed.frame()
	}
	return nil
}

// frame runs one engine update and repaints the terminal.
func (ed *Editor) frame() {
	w, h := ed.screen.Size()
	canvas := nodegraph.RectFromMinSize(nodegraph.Vec2{}, nodegraph.Vec2{X: float64(w), Y: float64(h - 1)})

	nodes, links := ed.graph.Decls(ed.attributeSize)
	d := ed.ctx.Update(canvas, nodes, links, ed.input)
	ed.consumeEvents()

	ed.screen.Clear()
	ed.paintDrawList(d)
	ed.drawLabels()
	ed.drawStatusBar(w, h)
	ed.screen.Show()
}

// attributeSize sizes attribute rows in cells: wide enough for the
// label, one row tall.
func (ed *Editor) attributeSize(a document.Attribute) nodegraph.Vec2 {
	width := float64(len(a.Label))
	if width < 6 {
		width = 6
	}
	return nodegraph.Vec2{X: width, Y: 1}
}

// consumeEvents folds the engine's one-shot events back into the
// document model.
func (ed *Editor) consumeEvents() {
	if created, ok := ed.ctx.LinkCreated(); ok {
		l := ed.graph.AddLink(created.OutputPin, created.InputPin)
		ed.modified = true
		ed.message = fmt.Sprintf("link %d: %d -> %d", l.ID, l.Start, l.End)
		ed.logger.Info("link created",
			zap.Int("link_id", l.ID),
			zap.Int("output_pin", created.OutputPin),
			zap.Int("input_pin", created.InputPin),
			zap.Bool("from_snap", created.FromSnap))
	}
	if linkID, ok := ed.ctx.LinkDestroyed(); ok {
		if ed.graph.RemoveLink(linkID) {
			ed.modified = true
			ed.message = fmt.Sprintf("link %d detached", linkID)
			ed.logger.Info("link destroyed", zap.Int("link_id", linkID))
		}
	}
	if pinID, ok := ed.ctx.LinkDropped(false); ok {
		ed.logger.Debug("link dropped", zap.Int("pin_id", pinID))
	}
}

func (ed *Editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	ed.input.MousePos = nodegraph.Vec2{X: float64(x), Y: float64(y)}

	mask := ev.Buttons()
	ed.input.ButtonsDown[nodegraph.ButtonPrimary] = mask&tcell.Button1 != 0
	ed.input.ButtonsDown[nodegraph.ButtonSecondary] = mask&tcell.Button2 != 0
	ed.input.ButtonsDown[nodegraph.ButtonMiddle] = mask&tcell.Button3 != 0

	mods := ev.Modifiers()
	ed.input.Modifiers = nodegraph.Modifiers{
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}
}

func (ed *Editor) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ed.quit = true
	case tcell.KeyLeft:
		ed.pan(4, 0)
	case tcell.KeyRight:
		ed.pan(-4, 0)
	case tcell.KeyUp:
		ed.pan(0, 2)
	case tcell.KeyDown:
		ed.pan(0, -2)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			ed.quit = true
		case 's':
			ed.save()
		case 'n':
			ed.addNode()
		case 'x':
			ed.deleteSelection()
		}
	}
}

func (ed *Editor) pan(dx, dy float64) {
	p := ed.ctx.Panning()
	ed.ctx.ResetPanning(nodegraph.Vec2{X: p.X + dx, Y: p.Y + dy})
}

func (ed *Editor) save() {
	ed.graph.CaptureFrom(ed.ctx)
	if err := ed.graph.Save(ed.path); err != nil {
		ed.message = err.Error()
		ed.logger.Error("save failed", zap.Error(err))
		return
	}
	ed.modified = false
	ed.message = "saved " + ed.path
}

// addNode places a node with one input and one output under the
// pointer.
func (ed *Editor) addNode() {
	nodeID := ed.nextNodeID
	ed.nextNodeID++
	in := ed.nextAttrID
	out := ed.nextAttrID + 1
	ed.nextAttrID += 2

	pos := ed.input.MousePos
	grid := ed.ctx.Panning()
	ed.graph.Nodes = append(ed.graph.Nodes, document.Node{
		ID:    nodeID,
		Title: fmt.Sprintf("node %d", nodeID),
		X:     pos.X - grid.X,
		Y:     pos.Y - grid.Y,
		Attributes: []document.Attribute{
			{ID: in, Kind: document.KindInput, Label: "in"},
			{ID: out, Kind: document.KindOutput, Label: "out"},
		},
	})
	ed.modified = true
	ed.message = fmt.Sprintf("added node %d", nodeID)
}

// deleteSelection removes selected links, then selected nodes together
// with their attributes and any links touching them.
func (ed *Editor) deleteSelection() {
	removed := 0
	for _, linkID := range ed.ctx.SelectedLinks() {
		if ed.graph.RemoveLink(linkID) {
			removed++
		}
	}
	ed.ctx.ClearLinkSelection()

	for _, nodeID := range ed.ctx.SelectedNodes() {
		for i, n := range ed.graph.Nodes {
			if n.ID != nodeID {
				continue
			}
			for _, a := range n.Attributes {
				for _, l := range linksTouching(ed.graph, a.ID) {
					ed.graph.RemoveLink(l)
				}
			}
			ed.graph.Nodes = append(ed.graph.Nodes[:i], ed.graph.Nodes[i+1:]...)
			removed++
			break
		}
	}
	ed.ctx.ClearNodeSelection()

	if removed > 0 {
		ed.modified = true
		ed.message = fmt.Sprintf("deleted %d element(s)", removed)
	}
}

func linksTouching(g *document.Graph, attrID int) []int {
	var out []int
	for _, l := range g.Links {
		if l.Start == attrID || l.End == attrID {
			out = append(out, l.ID)
		}
	}
	return out
}
