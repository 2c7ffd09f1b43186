package nodegraph

import (
	"math"
	"testing"
)

func TestRectNormalized(t *testing.T) {
	r := RectFromMinMax(Vec2{400, 60}, Vec2{50, 200})
	n := r.Normalized()

	if n.Min.X != 50 || n.Min.Y != 60 || n.Max.X != 400 || n.Max.Y != 200 {
		t.Errorf("Normalized gave [%v %v], want [{50 60} {400 200}]", n.Min, n.Max)
	}

	// Already normalized rects pass through unchanged
	if got := n.Normalized(); got != n {
		t.Errorf("Normalized not idempotent: %v", got)
	}
}

func TestRectContainsInclusive(t *testing.T) {
	r := RectFromMinMax(Vec2{10, 10}, Vec2{20, 20})

	if !r.Contains(Vec2{10, 10}) || !r.Contains(Vec2{20, 20}) {
		t.Error("corners should be contained")
	}
	if !r.Contains(Vec2{15, 15}) {
		t.Error("interior point should be contained")
	}
	if r.Contains(Vec2{9.99, 15}) || r.Contains(Vec2{15, 20.01}) {
		t.Error("exterior points should not be contained")
	}
}

func TestRectIntersects(t *testing.T) {
	a := RectFromMinMax(Vec2{0, 0}, Vec2{10, 10})
	b := RectFromMinMax(Vec2{5, 5}, Vec2{15, 15})
	c := RectFromMinMax(Vec2{11, 11}, Vec2{20, 20})

	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(c) {
		t.Error("disjoint rects should not intersect")
	}
	// Edge contact counts as intersection
	d := RectFromMinMax(Vec2{10, 0}, Vec2{20, 10})
	if !a.Intersects(d) {
		t.Error("edge-touching rects should intersect")
	}
}

func TestRectUnionAndExpand(t *testing.T) {
	a := RectFromMinMax(Vec2{0, 0}, Vec2{10, 10})
	b := RectFromMinMax(Vec2{5, -5}, Vec2{20, 8})

	u := a.Union(b)
	if u.Min.X != 0 || u.Min.Y != -5 || u.Max.X != 20 || u.Max.Y != 10 {
		t.Errorf("Union gave %v", u)
	}

	e := a.Expand2(Vec2{3, 2})
	if e.Min.X != -3 || e.Min.Y != -2 || e.Max.X != 13 || e.Max.Y != 12 {
		t.Errorf("Expand2 gave %v", e)
	}
}

func TestRectFromCenterSize(t *testing.T) {
	r := RectFromCenterSize(Vec2{100, 50}, Vec2{20, 10})
	if r.Min.X != 90 || r.Min.Y != 45 || r.Max.X != 110 || r.Max.Y != 55 {
		t.Errorf("RectFromCenterSize gave %v", r)
	}
	if c := r.Center(); c.X != 100 || c.Y != 50 {
		t.Errorf("Center gave %v", c)
	}
}

func TestLineClosestPoint(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, 0}

	// Perpendicular projection lands on the segment
	got := lineClosestPoint(a, b, Vec2{5, 7})
	if got.X != 5 || got.Y != 0 {
		t.Errorf("expected (5,0), got %v", got)
	}

	// Beyond either end clamps to the endpoint
	if got := lineClosestPoint(a, b, Vec2{-3, 2}); got != a {
		t.Errorf("expected clamp to a, got %v", got)
	}
	if got := lineClosestPoint(a, b, Vec2{14, -2}); got != b {
		t.Errorf("expected clamp to b, got %v", got)
	}
}

func TestVec2Distance(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{4, 6}
	if d := a.Distance(b); math.Abs(d-5) > 1e-12 {
		t.Errorf("Distance gave %v, want 5", d)
	}
	if d := a.DistanceSq(b); d != 25 {
		t.Errorf("DistanceSq gave %v, want 25", d)
	}
}
