// Package document persists node graphs as YAML files and turns them
// back into per-frame declarations for the editor context.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ha1tch/nodekit/pkg/nodegraph"
)

// Attribute kinds accepted in graph files.
const (
	KindInput  = "input"
	KindOutput = "output"
	KindStatic = "static"
)

// Attribute is one pin declaration on a node.
type Attribute struct {
	ID    int    `yaml:"id"`
	Kind  string `yaml:"kind"`
	Shape string `yaml:"shape,omitempty"`
	Label string `yaml:"label,omitempty"`
}

// Node is one node declaration with its grid-space position.
type Node struct {
	ID         int         `yaml:"id"`
	Title      string      `yaml:"title,omitempty"`
	X          float64     `yaml:"x"`
	Y          float64     `yaml:"y"`
	Attributes []Attribute `yaml:"attributes,omitempty"`
}

// Link connects an output attribute to an input attribute.
type Link struct {
	ID    int `yaml:"id"`
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Graph is the root of a graph document.
type Graph struct {
	Name    string     `yaml:"name,omitempty"`
	Panning [2]float64 `yaml:"panning,omitempty"`
	Nodes   []Node     `yaml:"nodes"`
	Links   []Link     `yaml:"links,omitempty"`
}

// Load reads and validates a graph file.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML graph content.
func Parse(data []byte) (*Graph, error) {
	var g Graph
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse graph: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Save writes the graph to a file.
func (g *Graph) Save(path string) error {
	data, err := yaml.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal graph: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}

// Validate checks id uniqueness, attribute kinds, and that every link
// references a declared output/input attribute pair.
func (g *Graph) Validate() error {
	nodeIDs := make(map[int]bool)
	attrKinds := make(map[int]string)

	for _, n := range g.Nodes {
		if nodeIDs[n.ID] {
			return fmt.Errorf("duplicate node id %d", n.ID)
		}
		nodeIDs[n.ID] = true
		for _, a := range n.Attributes {
			switch a.Kind {
			case KindInput, KindOutput, KindStatic:
			default:
				return fmt.Errorf("node %d attribute %d: unknown kind %q", n.ID, a.ID, a.Kind)
			}
			if _, ok := attrKinds[a.ID]; ok {
				return fmt.Errorf("duplicate attribute id %d", a.ID)
			}
			attrKinds[a.ID] = a.Kind
			if a.Shape != "" {
				if _, err := parseShape(a.Shape); err != nil {
					return fmt.Errorf("node %d attribute %d: %w", n.ID, a.ID, err)
				}
			}
		}
	}

	linkIDs := make(map[int]bool)
	for _, l := range g.Links {
		if linkIDs[l.ID] {
			return fmt.Errorf("duplicate link id %d", l.ID)
		}
		linkIDs[l.ID] = true
		startKind, ok := attrKinds[l.Start]
		if !ok {
			return fmt.Errorf("link %d: unknown start attribute %d", l.ID, l.Start)
		}
		endKind, ok := attrKinds[l.End]
		if !ok {
			return fmt.Errorf("link %d: unknown end attribute %d", l.ID, l.End)
		}
		if startKind != KindOutput {
			return fmt.Errorf("link %d: start attribute %d is not an output", l.ID, l.Start)
		}
		if endKind != KindInput {
			return fmt.Errorf("link %d: end attribute %d is not an input", l.ID, l.End)
		}
	}
	return nil
}

// Decls converts the graph into the declarations Update consumes. The
// attrSize callback supplies the content size for each attribute and
// the title of its node's title bar; nil means pixel-tuned defaults.
func (g *Graph) Decls(attrSize func(Attribute) nodegraph.Vec2) ([]*nodegraph.NodeDecl, []nodegraph.LinkDecl) {
	titleScale := 7.0
	titleHeight := 16.0
	if attrSize == nil {
		attrSize = func(Attribute) nodegraph.Vec2 {
			return nodegraph.Vec2{X: 80, Y: 14}
		}
	} else {
		// A caller-supplied sizer means caller units; scale the title
		// band from the sizer's row height.
		probe := attrSize(Attribute{Kind: KindStatic})
		titleScale = 1
		titleHeight = probe.Y
	}

	nodes := make([]*nodegraph.NodeDecl, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		decl := nodegraph.NewNode(n.ID, nodegraph.NodeArgs{})
		if n.Title != "" {
			decl.WithTitle(nodegraph.Vec2{X: float64(len(n.Title)) * titleScale, Y: titleHeight})
		}
		for _, a := range n.Attributes {
			args := nodegraph.PinArgs{}
			if a.Shape != "" {
				shape, _ := parseShape(a.Shape)
				args.Shape = shape
			}
			size := attrSize(a)
			switch a.Kind {
			case KindInput:
				decl.WithInput(a.ID, args, size)
			case KindOutput:
				decl.WithOutput(a.ID, args, size)
			case KindStatic:
				decl.WithStatic(a.ID, size)
			}
		}
		nodes = append(nodes, decl)
	}

	links := make([]nodegraph.LinkDecl, 0, len(g.Links))
	for _, l := range g.Links {
		links = append(links, nodegraph.LinkDecl{ID: l.ID, Start: l.Start, End: l.End})
	}
	return nodes, links
}

// ApplyTo pushes the stored node positions and panning into a context.
// Call once before the first frame of an editing session.
func (g *Graph) ApplyTo(c *nodegraph.Context) {
	c.ResetPanning(nodegraph.Vec2{X: g.Panning[0], Y: g.Panning[1]})
	for _, n := range g.Nodes {
		c.SetNodePosGridSpace(n.ID, nodegraph.Vec2{X: n.X, Y: n.Y})
	}
}

// CaptureFrom pulls node positions and panning back out of a context,
// so an edited session can be saved.
func (g *Graph) CaptureFrom(c *nodegraph.Context) {
	pan := c.Panning()
	g.Panning = [2]float64{pan.X, pan.Y}
	for i := range g.Nodes {
		if pos, ok := c.NodePosGridSpace(g.Nodes[i].ID); ok {
			g.Nodes[i].X = pos.X
			g.Nodes[i].Y = pos.Y
		}
	}
}

// RemoveLink deletes a link by id, returning whether it was present.
func (g *Graph) RemoveLink(linkID int) bool {
	for i, l := range g.Links {
		if l.ID == linkID {
			g.Links = append(g.Links[:i], g.Links[i+1:]...)
			return true
		}
	}
	return false
}

// AddLink appends a link with the next free link id and returns it.
func (g *Graph) AddLink(startAttr, endAttr int) Link {
	maxID := 0
	for _, l := range g.Links {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	l := Link{ID: maxID + 1, Start: startAttr, End: endAttr}
	g.Links = append(g.Links, l)
	return l
}

func parseShape(s string) (nodegraph.PinShape, error) {
	switch s {
	case "circle":
		return nodegraph.PinShapeCircle, nil
	case "circle_filled":
		return nodegraph.PinShapeCircleFilled, nil
	case "triangle":
		return nodegraph.PinShapeTriangle, nil
	case "triangle_filled":
		return nodegraph.PinShapeTriangleFilled, nil
	case "quad":
		return nodegraph.PinShapeQuad, nil
	case "quad_filled":
		return nodegraph.PinShapeQuadFilled, nil
	default:
		return 0, fmt.Errorf("unknown pin shape %q", s)
	}
}
