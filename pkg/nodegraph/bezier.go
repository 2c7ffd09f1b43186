// Cubic bezier construction and queries for link rendering and
// hit-testing. Distance and overlap queries work on a polyline
// approximation whose density follows the LinkLineSegmentsPerLength
// style var; they are exact only up to that sampling density.

package nodegraph

import "math"

type bezierCurve struct {
	p0, p1, p2, p3 Vec2
}

func (b bezierCurve) eval(t float64) Vec2 {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	a := mt2 * mt
	c := 3 * mt2 * t
	d := 3 * mt * t2
	e := t2 * t
	return Vec2{
		X: a*b.p0.X + c*b.p1.X + d*b.p2.X + e*b.p3.X,
		Y: a*b.p0.Y + c*b.p1.Y + d*b.p2.Y + e*b.p3.Y,
	}
}

// containingRect returns a rect guaranteed to contain the curve,
// expanded by margin on every side. Control points bound the curve so
// extending the endpoint rect with them is sufficient.
func (b bezierCurve) containingRect(margin float64) Rect {
	r := Rect{Min: b.p0.Min(b.p3), Max: b.p0.Max(b.p3)}
	r = r.ExtendWith(b.p1)
	r = r.ExtendWith(b.p2)
	return r.Expand(margin)
}

// linkBezier is the renderable form of a link: a cubic bezier plus the
// segment count used for its polyline approximation.
type linkBezier struct {
	bezier      bezierCurve
	numSegments int
}

// newLinkBezier builds the curve between two pin positions. The curve
// always leaves an output pin rightward and enters an input pin
// leftward, so when the start endpoint is an input pin the endpoints
// are swapped before the control points are placed.
func newLinkBezier(start, end Vec2, startKind AttributeKind, segmentsPerLength float64) linkBezier {
	if startKind == AttributeInput {
		start, end = end, start
	}
	length := end.Distance(start)
	offset := Vec2{X: 0.25 * length}
	n := int(length * segmentsPerLength)
	if n < 1 {
		n = 1
	}
	return linkBezier{
		bezier:      bezierCurve{start, start.Add(offset), end.Sub(offset), end},
		numSegments: n,
	}
}

// closestPoint returns the point on the sampled polyline closest to p.
func (l linkBezier) closestPoint(p Vec2) Vec2 {
	last := l.bezier.p0
	closest := l.bezier.p0
	closestDistSq := math.MaxFloat64
	step := 1.0 / float64(l.numSegments)
	for i := 1; i <= l.numSegments; i++ {
		cur := l.bezier.eval(step * float64(i))
		onLine := lineClosestPoint(last, cur, p)
		if d := p.DistanceSq(onLine); d < closestDistSq {
			closest = onLine
			closestDistSq = d
		}
		last = cur
	}
	return closest
}

// distanceTo returns the distance from p to the sampled curve.
func (l linkBezier) distanceTo(p Vec2) float64 {
	return p.Distance(l.closestPoint(p))
}

// overlapsRect reports whether any sampled segment crosses rect.
func (l linkBezier) overlapsRect(rect Rect) bool {
	cur := l.bezier.p0
	dt := 1.0 / float64(l.numSegments)
	for i := 0; i < l.numSegments; i++ {
		next := l.bezier.eval(float64(i+1) * dt)
		if rectOverlapsSegment(rect, cur, next) {
			return true
		}
		cur = next
	}
	return false
}

// points returns the polyline approximation including both endpoints.
func (l linkBezier) points() []Vec2 {
	pts := make([]Vec2, 0, l.numSegments+1)
	pts = append(pts, l.bezier.p0)
	for i := 1; i < l.numSegments; i++ {
		pts = append(pts, l.bezier.eval(float64(i)/float64(l.numSegments)))
	}
	return append(pts, l.bezier.p3)
}

// implicitLineEq evaluates the implicit line through p1,p2 at p. The
// sign tells which side of the line p falls on.
func implicitLineEq(p1, p2, p Vec2) float64 {
	return (p2.Y-p1.Y)*p.X - (p2.X-p1.X)*p.Y + p2.X*p1.Y - p1.X*p2.Y
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// rectOverlapsSegment reports whether segment p1p2 intersects rect.
// Either endpoint inside counts; otherwise the segment must straddle
// the rect's span on both axes and the four corners must not all lie
// on one side of the segment's carrier line.
func rectOverlapsSegment(rect Rect, p1, p2 Vec2) bool {
	if rect.Contains(p1) || rect.Contains(p2) {
		return true
	}

	r := rect.Normalized()
	if (p1.X < r.Min.X && p2.X < r.Min.X) ||
		(p1.X > r.Max.X && p2.X > r.Max.X) ||
		(p1.Y < r.Min.Y && p2.Y < r.Min.Y) ||
		(p1.Y > r.Max.Y && p2.Y > r.Max.Y) {
		return false
	}

	corners := [4]Vec2{
		{r.Min.X, r.Max.Y},
		{r.Min.X, r.Min.Y},
		{r.Max.X, r.Max.Y},
		{r.Max.X, r.Min.Y},
	}
	var sum, sumAbs float64
	for _, c := range corners {
		s := sign(implicitLineEq(p1, p2, c))
		sum += s
		sumAbs += math.Abs(s)
	}
	return math.Abs(math.Abs(sum)-sumAbs) > 1e-9
}
