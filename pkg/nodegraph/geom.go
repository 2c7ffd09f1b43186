// Geometric primitives shared by layout, hit-testing and drawing.

package nodegraph

import "math"

// Vec2 is a 2D point or offset. The same type serves grid, editor and
// screen coordinates; conversions live on Context.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Length returns the euclidean length of v.
func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LengthSq returns the squared length of v.
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// Distance returns the distance between v and w.
func (v Vec2) Distance(w Vec2) float64 { return v.Sub(w).Length() }

// DistanceSq returns the squared distance between v and w.
func (v Vec2) DistanceSq(w Vec2) float64 { return v.Sub(w).LengthSq() }

// Min returns the component-wise minimum of v and w.
func (v Vec2) Min(w Vec2) Vec2 {
	return Vec2{math.Min(v.X, w.X), math.Min(v.Y, w.Y)}
}

// Max returns the component-wise maximum of v and w.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{math.Max(v.X, w.X), math.Max(v.Y, w.Y)}
}

// Rect is an axis-aligned rectangle in min/max form. A Rect is not
// required to be normalized; operations that need ascending corners
// call Normalized first.
type Rect struct {
	Min, Max Vec2
}

// RectFromMinMax builds a rect from two opposite corners.
func RectFromMinMax(min, max Vec2) Rect { return Rect{Min: min, Max: max} }

// RectFromMinSize builds a rect from its top-left corner and size.
func RectFromMinSize(min, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// RectFromCenterSize builds a rect centered on c.
func RectFromCenterSize(c, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the extent of the rect.
func (r Rect) Size() Vec2 { return r.Max.Sub(r.Min) }

// Center returns the midpoint of the rect.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside the rect (inclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Expand grows the rect by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{
		Min: Vec2{r.Min.X - d, r.Min.Y - d},
		Max: Vec2{r.Max.X + d, r.Max.Y + d},
	}
}

// Expand2 grows the rect by v.X horizontally and v.Y vertically.
func (r Rect) Expand2(v Vec2) Rect {
	return Rect{
		Min: Vec2{r.Min.X - v.X, r.Min.Y - v.Y},
		Max: Vec2{r.Max.X + v.X, r.Max.Y + v.Y},
	}
}

// ExtendWith grows the rect just enough to contain p.
func (r Rect) ExtendWith(p Vec2) Rect {
	return Rect{Min: r.Min.Min(p), Max: r.Max.Max(p)}
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{Min: r.Min.Min(o.Min), Max: r.Max.Max(o.Max)}
}

// Normalized returns the rect with ascending min/max on both axes.
// Box selection rects are built from two drag corners in any order.
func (r Rect) Normalized() Rect {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// lineClosestPoint returns the point on segment ab closest to p.
func lineClosestPoint(a, b, p Vec2) Vec2 {
	ap := p.Sub(a)
	ab := b.Sub(a)
	dot := ap.Dot(ab)
	if dot < 0 {
		return a
	}
	lenSq := ab.LengthSq()
	if dot > lenSq {
		return b
	}
	return a.Add(ab.Scale(dot / lenSq))
}
