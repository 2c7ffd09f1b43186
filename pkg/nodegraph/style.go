// Style tables for the editor: a color table indexed by ColorStyle, a
// set of numeric style vars, and the pin placement rule. Overrides are
// applied through the push/pop stacks on Context.

package nodegraph

import "image/color"

// ColorStyle indexes the entries of the editor color table.
type ColorStyle int

const (
	ColorNodeBackground ColorStyle = iota
	ColorNodeBackgroundHovered
	ColorNodeBackgroundSelected
	ColorNodeOutline
	ColorTitleBar
	ColorTitleBarHovered
	ColorTitleBarSelected
	ColorLink
	ColorLinkHovered
	ColorLinkSelected
	ColorPin
	ColorPinHovered
	ColorBoxSelector
	ColorBoxSelectorOutline
	ColorGridBackground
	ColorGridLine

	colorStyleCount
)

// StyleVar indexes the numeric style values of a Context.
type StyleVar int

const (
	StyleGridSpacing StyleVar = iota
	StyleNodeCornerRounding
	StyleNodePaddingHorizontal
	StyleNodePaddingVertical
	StyleNodeBorderThickness
	StyleLinkThickness
	StyleLinkLineSegmentsPerLength
	StyleLinkHoverDistance
	StylePinCircleRadius
	StylePinQuadSideLength
	StylePinTriangleSideLength
	StylePinLineThickness
	StylePinHoverRadius
	StylePinOffset
)

// StyleFlags toggle optional drawing passes.
type StyleFlags int

const (
	StyleFlagsNone       StyleFlags = 0
	StyleFlagNodeOutline StyleFlags = 1 << 0
	StyleFlagGridLines   StyleFlags = 1 << 2
)

// Style holds every tunable visual parameter of a Context.
type Style struct {
	GridSpacing           float64
	NodeCornerRounding    float64
	NodePaddingHorizontal float64
	NodePaddingVertical   float64
	NodeBorderThickness   float64

	LinkThickness             float64
	LinkLineSegmentsPerLength float64
	LinkHoverDistance         float64

	PinCircleRadius       float64
	PinQuadSideLength     float64
	PinTriangleSideLength float64
	PinLineThickness      float64
	PinHoverRadius        float64
	PinOffset             float64

	Flags  StyleFlags
	Colors [colorStyleCount]color.RGBA
}

// DefaultStyle returns the default style with the dark palette.
func DefaultStyle() Style {
	return Style{
		GridSpacing:           32,
		NodeCornerRounding:    4,
		NodePaddingHorizontal: 8,
		NodePaddingVertical:   8,
		NodeBorderThickness:   1,

		LinkThickness:             3,
		LinkLineSegmentsPerLength: 0.1,
		LinkHoverDistance:         10,

		PinCircleRadius:       4,
		PinQuadSideLength:     7,
		PinTriangleSideLength: 9.5,
		PinLineThickness:      1,
		PinHoverRadius:        10,
		PinOffset:             0,

		Flags:  StyleFlagNodeOutline | StyleFlagGridLines,
		Colors: ColorsDark(),
	}
}

func rgba(r, g, b, a uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: a} }

// ColorsDark returns the default dark color table.
func ColorsDark() [colorStyleCount]color.RGBA {
	var c [colorStyleCount]color.RGBA
	c[ColorNodeBackground] = rgba(50, 50, 50, 255)
	c[ColorNodeBackgroundHovered] = rgba(75, 75, 75, 255)
	c[ColorNodeBackgroundSelected] = rgba(75, 75, 75, 255)
	c[ColorNodeOutline] = rgba(100, 100, 100, 255)
	c[ColorTitleBar] = rgba(41, 74, 122, 255)
	c[ColorTitleBarHovered] = rgba(66, 150, 250, 255)
	c[ColorTitleBarSelected] = rgba(66, 150, 250, 255)
	c[ColorLink] = rgba(61, 133, 224, 200)
	c[ColorLinkHovered] = rgba(66, 150, 250, 255)
	c[ColorLinkSelected] = rgba(66, 150, 250, 255)
	c[ColorPin] = rgba(53, 150, 250, 180)
	c[ColorPinHovered] = rgba(53, 150, 250, 255)
	c[ColorBoxSelector] = rgba(61, 133, 224, 30)
	c[ColorBoxSelectorOutline] = rgba(61, 133, 224, 150)
	c[ColorGridBackground] = rgba(40, 40, 50, 200)
	c[ColorGridLine] = rgba(200, 200, 200, 40)
	return c
}

// ColorsClassic returns the classic color table.
func ColorsClassic() [colorStyleCount]color.RGBA {
	var c [colorStyleCount]color.RGBA
	c[ColorNodeBackground] = rgba(50, 50, 50, 255)
	c[ColorNodeBackgroundHovered] = rgba(75, 75, 75, 255)
	c[ColorNodeBackgroundSelected] = rgba(75, 75, 75, 255)
	c[ColorNodeOutline] = rgba(100, 100, 100, 255)
	c[ColorTitleBar] = rgba(69, 69, 138, 255)
	c[ColorTitleBarHovered] = rgba(82, 82, 161, 255)
	c[ColorTitleBarSelected] = rgba(82, 82, 161, 255)
	c[ColorLink] = rgba(255, 255, 255, 100)
	c[ColorLinkHovered] = rgba(105, 99, 204, 153)
	c[ColorLinkSelected] = rgba(105, 99, 204, 153)
	c[ColorPin] = rgba(89, 102, 156, 170)
	c[ColorPinHovered] = rgba(102, 122, 179, 200)
	c[ColorBoxSelector] = rgba(82, 82, 161, 100)
	c[ColorBoxSelectorOutline] = rgba(82, 82, 161, 255)
	c[ColorGridBackground] = rgba(40, 40, 50, 200)
	c[ColorGridLine] = rgba(200, 200, 200, 40)
	return c
}

// ColorsLight returns the light color table.
func ColorsLight() [colorStyleCount]color.RGBA {
	var c [colorStyleCount]color.RGBA
	c[ColorNodeBackground] = rgba(240, 240, 240, 255)
	c[ColorNodeBackgroundHovered] = rgba(240, 240, 240, 255)
	c[ColorNodeBackgroundSelected] = rgba(240, 240, 240, 255)
	c[ColorNodeOutline] = rgba(100, 100, 100, 255)
	c[ColorTitleBar] = rgba(248, 248, 248, 255)
	c[ColorTitleBarHovered] = rgba(209, 209, 209, 255)
	c[ColorTitleBarSelected] = rgba(209, 209, 209, 255)
	c[ColorLink] = rgba(66, 150, 250, 100)
	c[ColorLinkHovered] = rgba(66, 150, 250, 242)
	c[ColorLinkSelected] = rgba(66, 150, 250, 242)
	c[ColorPin] = rgba(66, 150, 250, 160)
	c[ColorPinHovered] = rgba(66, 150, 250, 255)
	c[ColorBoxSelector] = rgba(90, 170, 250, 30)
	c[ColorBoxSelectorOutline] = rgba(90, 170, 250, 150)
	c[ColorGridBackground] = rgba(225, 225, 225, 255)
	c[ColorGridLine] = rgba(180, 180, 180, 100)
	return c
}

// pinPosition computes a pin's screen position from its parent node
// rect and its attribute content rect. Input pins sit on the node's
// left edge, everything else on the right, vertically centered on the
// attribute content.
func (s *Style) pinPosition(nodeRect, attributeRect Rect, kind AttributeKind) Vec2 {
	x := nodeRect.Max.X + s.PinOffset
	if kind == AttributeInput {
		x = nodeRect.Min.X - s.PinOffset
	}
	return Vec2{X: x, Y: 0.5 * (attributeRect.Min.Y + attributeRect.Max.Y)}
}

func (s *Style) formatNode(n *nodeData, args NodeArgs) {
	pick := func(override *color.RGBA, item ColorStyle) color.RGBA {
		if override != nil {
			return *override
		}
		return s.Colors[item]
	}
	n.colorStyle.background = pick(args.Background, ColorNodeBackground)
	n.colorStyle.backgroundHovered = pick(args.BackgroundHovered, ColorNodeBackgroundHovered)
	n.colorStyle.backgroundSelected = pick(args.BackgroundSelected, ColorNodeBackgroundSelected)
	n.colorStyle.outline = pick(args.Outline, ColorNodeOutline)
	n.colorStyle.titlebar = pick(args.Titlebar, ColorTitleBar)
	n.colorStyle.titlebarHovered = pick(args.TitlebarHovered, ColorTitleBarHovered)
	n.colorStyle.titlebarSelected = pick(args.TitlebarSelected, ColorTitleBarSelected)

	n.layoutStyle.cornerRounding = s.NodeCornerRounding
	if args.CornerRounding != nil {
		n.layoutStyle.cornerRounding = *args.CornerRounding
	}
	n.layoutStyle.padding = Vec2{s.NodePaddingHorizontal, s.NodePaddingVertical}
	if args.Padding != nil {
		n.layoutStyle.padding = *args.Padding
	}
	n.layoutStyle.borderThickness = s.NodeBorderThickness
	if args.BorderThickness != nil {
		n.layoutStyle.borderThickness = *args.BorderThickness
	}
}

func (s *Style) formatPin(p *pinData, args PinArgs, flags AttributeFlags) {
	p.shape = args.Shape
	p.flags = flags
	if args.Flags != nil {
		p.flags = *args.Flags
	}
	p.colorStyle.background = s.Colors[ColorPin]
	if args.Background != nil {
		p.colorStyle.background = *args.Background
	}
	p.colorStyle.hovered = s.Colors[ColorPinHovered]
	if args.Hovered != nil {
		p.colorStyle.hovered = *args.Hovered
	}
}

func (s *Style) formatLink(l *linkData, args LinkArgs) {
	l.colorStyle.base = s.Colors[ColorLink]
	if args.Base != nil {
		l.colorStyle.base = *args.Base
	}
	l.colorStyle.hovered = s.Colors[ColorLinkHovered]
	if args.Hovered != nil {
		l.colorStyle.hovered = *args.Hovered
	}
	l.colorStyle.selected = s.Colors[ColorLinkSelected]
	if args.Selected != nil {
		l.colorStyle.selected = *args.Selected
	}
}

// styleVar returns a pointer to the style value selected by item, for
// the push/pop override stacks.
func (s *Style) styleVar(item StyleVar) *float64 {
	switch item {
	case StyleGridSpacing:
		return &s.GridSpacing
	case StyleNodeCornerRounding:
		return &s.NodeCornerRounding
	case StyleNodePaddingHorizontal:
		return &s.NodePaddingHorizontal
	case StyleNodePaddingVertical:
		return &s.NodePaddingVertical
	case StyleNodeBorderThickness:
		return &s.NodeBorderThickness
	case StyleLinkThickness:
		return &s.LinkThickness
	case StyleLinkLineSegmentsPerLength:
		return &s.LinkLineSegmentsPerLength
	case StyleLinkHoverDistance:
		return &s.LinkHoverDistance
	case StylePinCircleRadius:
		return &s.PinCircleRadius
	case StylePinQuadSideLength:
		return &s.PinQuadSideLength
	case StylePinTriangleSideLength:
		return &s.PinTriangleSideLength
	case StylePinLineThickness:
		return &s.PinLineThickness
	case StylePinHoverRadius:
		return &s.PinHoverRadius
	case StylePinOffset:
		return &s.PinOffset
	}
	return nil
}
