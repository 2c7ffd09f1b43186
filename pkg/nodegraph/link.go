package nodegraph

import "image/color"

// LinkArgs overrides per-link colors. Nil fields fall back to the
// context style.
type LinkArgs struct {
	Base     *color.RGBA
	Hovered  *color.RGBA
	Selected *color.RGBA
}

type linkColorStyle struct {
	base     color.RGBA
	hovered  color.RGBA
	selected color.RGBA
}

// linkData is the pooled record for one link between two pin slots.
type linkData struct {
	id          int
	startPinIdx int
	endPinIdx   int
	colorStyle  linkColorStyle
}

func newLinkData(id int) linkData {
	return linkData{id: id}
}

// samePins reports whether two links connect the same unordered pin
// pair. Declared start/end order does not matter for duplicate
// detection.
func (l linkData) samePins(o linkData) bool {
	ls, le := l.startPinIdx, l.endPinIdx
	if ls > le {
		ls, le = le, ls
	}
	os, oe := o.startPinIdx, o.endPinIdx
	if os > oe {
		os, oe = oe, os
	}
	return ls == os && le == oe
}
