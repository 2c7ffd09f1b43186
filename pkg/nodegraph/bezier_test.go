package nodegraph

import (
	"math"
	"testing"
)

func TestLinkBezierSwapsInputStart(t *testing.T) {
	start := Vec2{100, 100}
	end := Vec2{300, 200}

	out := newLinkBezier(start, end, AttributeOutput, 0.1)
	if out.bezier.p0 != start || out.bezier.p3 != end {
		t.Errorf("output start should keep endpoint order, got p0=%v p3=%v", out.bezier.p0, out.bezier.p3)
	}

	// A drag starting at an input pin builds the same curve as one
	// starting at the matching output pin.
	in := newLinkBezier(start, end, AttributeInput, 0.1)
	if in.bezier.p0 != end || in.bezier.p3 != start {
		t.Errorf("input start should swap endpoints, got p0=%v p3=%v", in.bezier.p0, in.bezier.p3)
	}
}

func TestLinkBezierControlPointOffset(t *testing.T) {
	start := Vec2{0, 0}
	end := Vec2{100, 0}
	l := newLinkBezier(start, end, AttributeOutput, 0.1)

	// Control points sit a quarter of the endpoint distance along X.
	if l.bezier.p1.X != 25 || l.bezier.p1.Y != 0 {
		t.Errorf("p1 = %v, want (25,0)", l.bezier.p1)
	}
	if l.bezier.p2.X != 75 || l.bezier.p2.Y != 0 {
		t.Errorf("p2 = %v, want (75,0)", l.bezier.p2)
	}
	if l.numSegments != 10 {
		t.Errorf("numSegments = %d, want 10", l.numSegments)
	}
}

func TestLinkBezierMinimumSegments(t *testing.T) {
	l := newLinkBezier(Vec2{0, 0}, Vec2{2, 0}, AttributeOutput, 0.1)
	if l.numSegments < 1 {
		t.Errorf("numSegments = %d, want at least 1", l.numSegments)
	}
	pts := l.points()
	if len(pts) != l.numSegments+1 {
		t.Errorf("points returned %d entries, want %d", len(pts), l.numSegments+1)
	}
}

func TestLinkBezierDistance(t *testing.T) {
	// Collinear control points make the cubic an exact straight line.
	l := newLinkBezier(Vec2{0, 0}, Vec2{100, 0}, AttributeOutput, 0.1)

	if d := l.distanceTo(Vec2{50, 7}); math.Abs(d-7) > 0.1 {
		t.Errorf("distance above midpoint = %v, want ~7", d)
	}
	if d := l.distanceTo(Vec2{50, 0}); d > 0.1 {
		t.Errorf("distance on the curve = %v, want ~0", d)
	}
	// Past the end the closest point clamps to the endpoint
	if d := l.distanceTo(Vec2{110, 0}); math.Abs(d-10) > 0.1 {
		t.Errorf("distance past end = %v, want ~10", d)
	}
}

func TestLinkBezierOverlapsRect(t *testing.T) {
	l := newLinkBezier(Vec2{0, 0}, Vec2{100, 0}, AttributeOutput, 0.1)

	crossing := RectFromMinMax(Vec2{40, -10}, Vec2{60, 10})
	if !l.overlapsRect(crossing) {
		t.Error("rect straddling the curve should overlap")
	}

	above := RectFromMinMax(Vec2{40, 5}, Vec2{60, 20})
	if l.overlapsRect(above) {
		t.Error("rect fully above the curve should not overlap")
	}
}

func TestRectOverlapsSegment(t *testing.T) {
	rect := RectFromMinMax(Vec2{10, 10}, Vec2{20, 20})

	// Endpoint inside
	if !rectOverlapsSegment(rect, Vec2{15, 15}, Vec2{40, 40}) {
		t.Error("segment with endpoint inside should overlap")
	}
	// Pass-through: both endpoints outside, crossing the rect
	if !rectOverlapsSegment(rect, Vec2{0, 15}, Vec2{30, 15}) {
		t.Error("segment crossing the rect should overlap")
	}
	// Diagonal passing outside a corner
	if rectOverlapsSegment(rect, Vec2{0, 25}, Vec2{5, 40}) {
		t.Error("segment clear of the rect should not overlap")
	}
	// Span rejection on one axis
	if rectOverlapsSegment(rect, Vec2{25, 0}, Vec2{30, 30}) {
		t.Error("segment fully right of the rect should not overlap")
	}
}

func TestContainingRect(t *testing.T) {
	l := newLinkBezier(Vec2{10, 10}, Vec2{110, 60}, AttributeOutput, 0.1)
	r := l.bezier.containingRect(5)

	for i := 0; i <= 20; i++ {
		p := l.bezier.eval(float64(i) / 20)
		if !r.Contains(p) {
			t.Errorf("curve point %v escapes containing rect %v", p, r)
		}
	}
}
