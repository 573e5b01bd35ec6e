package geometry

import "math"

// ParallelEpsilon is the threshold below which two segments' slopes are
// considered "nearly identical" by EdgeIntersection, causing it to report
// the degenerate (zero) case instead of an interior intersection. Per
// spec.md §9's open question, the exact threshold is not formally specified
// by the original algorithm; it is tunable here rather than baked in.
var ParallelEpsilon = 1e-12

// Less reports whether a precedes b in sweep order: y ascending, then x
// ascending. This is the single ordering relation every other predicate in
// this package is built from.
func Less(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// LessEq reports whether a precedes or equals b in sweep order.
func LessEq(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X <= b.X
}

// InTop reports whether a lies strictly above b (smaller y only; x is not
// considered). "Top" here means "earlier in the sweep".
func InTop(a, b Point) bool { return a.Y < b.Y }

// InTopOrHorizontal reports whether a lies at or above b.
func InTopOrHorizontal(a, b Point) bool { return a.Y <= b.Y }

// InTopOrHLeft reports whether a is strictly before b in sweep order
// (above, or level and to the left). Equivalent to Less.
func InTopOrHLeft(a, b Point) bool { return Less(a, b) }

// InTopOrHLeftOrEq reports whether a is at or before b in sweep order.
// Equivalent to LessEq.
func InTopOrHLeftOrEq(a, b Point) bool { return LessEq(a, b) }

// Cross returns twice the signed area of triangle (a, b, c): the z
// component of (b-a) x (c-a). Positive means a->b->c turns
// counter-clockwise.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// IsCCW reports whether a, b, c form a strictly counter-clockwise turn.
func IsCCW(a, b, c Point) bool { return Cross(a, b, c) > 0 }

// EdgeXAtY returns the x coordinate of segment upper->lower at height y,
// by linear interpolation. upper and lower need not be ordered by y; the
// segment is treated as a line, not a bounded interval.
func EdgeXAtY(upper, lower Point, y float64) float64 {
	dy := lower.Y - upper.Y
	if dy == 0 {
		return upper.X
	}
	t := (y - upper.Y) / dy
	return upper.X + t*(lower.X-upper.X)
}

// EdgeYAtX returns the y coordinate of segment upper->lower at the given x,
// by linear interpolation. Used for near-horizontal edges where
// EdgeXAtY's inverse would be ill-conditioned.
func EdgeYAtX(upper, lower Point, x float64) float64 {
	dx := lower.X - upper.X
	if dx == 0 {
		return upper.Y
	}
	t := (x - upper.X) / dx
	return upper.Y + t*(lower.Y-upper.Y)
}

// ToEdgeDistanceH returns the signed horizontal distance from v to segment
// upper->lower, measured at height v.Y: positive means v is to the right
// of the segment.
func ToEdgeDistanceH(v, upper, lower Point) float64 {
	return v.X - EdgeXAtY(upper, lower, v.Y)
}

// ToEdgeDistanceV returns the signed vertical distance from v to segment
// upper->lower, measured at v.X: positive means v is below the segment.
// This is the transposed counterpart to ToEdgeDistanceH, used for
// near-horizontal edges.
func ToEdgeDistanceV(v, upper, lower Point) float64 {
	return v.Y - EdgeYAtX(upper, lower, v.X)
}

// OnEdge reports whether v lies exactly on segment upper->lower in the
// sweep-perpendicular sense (horizontal distance zero).
func OnEdge(v, upper, lower Point) bool { return ToEdgeDistanceH(v, upper, lower) == 0 }

// InEdgeLeft reports whether v lies strictly to the left of the oriented
// segment upper->lower.
func InEdgeLeft(v, upper, lower Point) bool { return ToEdgeDistanceH(v, upper, lower) < 0 }

// InEdgeRight reports whether v lies strictly to the right of the oriented
// segment upper->lower.
func InEdgeRight(v, upper, lower Point) bool { return ToEdgeDistanceH(v, upper, lower) > 0 }

// OnEdgeOrLeft reports whether v lies on or to the left of upper->lower.
func OnEdgeOrLeft(v, upper, lower Point) bool { return ToEdgeDistanceH(v, upper, lower) <= 0 }

// OnEdgeOrRight reports whether v lies on or to the right of upper->lower.
func OnEdgeOrRight(v, upper, lower Point) bool { return ToEdgeDistanceH(v, upper, lower) >= 0 }

// InEdgeTop reports whether v lies strictly above segment upper->lower,
// measured at v.X. Used instead of InEdgeLeft/InEdgeRight when the
// segment is closer to horizontal than vertical.
func InEdgeTop(v, upper, lower Point) bool { return ToEdgeDistanceV(v, upper, lower) < 0 }

// InEdgeBottom reports whether v lies strictly below segment upper->lower,
// measured at v.X.
func InEdgeBottom(v, upper, lower Point) bool { return ToEdgeDistanceV(v, upper, lower) > 0 }

// OnEdgeOrTop reports whether v lies on or above upper->lower.
func OnEdgeOrTop(v, upper, lower Point) bool { return ToEdgeDistanceV(v, upper, lower) <= 0 }

// OnEdgeOrBottom reports whether v lies on or below upper->lower.
func OnEdgeOrBottom(v, upper, lower Point) bool { return ToEdgeDistanceV(v, upper, lower) >= 0 }

// IntersectResult is the outcome of EdgeIntersection.
type IntersectResult int

const (
	// IntersectReject means the segments do not cross (or the computed
	// point falls outside both segments' combined bounding box).
	IntersectReject IntersectResult = -1
	// IntersectParallel means the segments' slopes are nearly identical;
	// the caller should fall back to the bottom-order fix instead of
	// trusting a computed point.
	IntersectParallel IntersectResult = 0
	// IntersectOK means out holds a well-defined interior intersection.
	IntersectOK IntersectResult = 1
)

// EdgeIntersection computes the intersection of segments (org1,dst1) and
// (org2,dst2), writing the result into *out on IntersectOK. The computed
// point is clamped to lie inside the combined bounding box of the two
// segments and, where the two segments share an endpoint's sweep-order
// extreme, to not violate sweep ordering relative to either endpoint.
func EdgeIntersection(org1, dst1, org2, dst2 Point, out *Point) IntersectResult {
	d1 := Point{dst1.X - org1.X, dst1.Y - org1.Y}
	d2 := Point{dst2.X - org2.X, dst2.Y - org2.Y}
	denom := d1.X*d2.Y - d1.Y*d2.X

	if math.Abs(denom) < ParallelEpsilon {
		return IntersectParallel
	}

	// Solve org1 + t*d1 = org2 + s*d2 for t, s.
	ox := org2.X - org1.X
	oy := org2.Y - org1.Y
	t := (ox*d2.Y - oy*d2.X) / denom
	s := (ox*d1.Y - oy*d1.X) / denom

	const eps = 1e-9
	if t < -eps || t > 1+eps || s < -eps || s > 1+eps {
		return IntersectReject
	}

	p := Point{org1.X + t*d1.X, org1.Y + t*d1.Y}

	// Clamp into the combined bounding box to suppress drift from the
	// linear solve above.
	lo1, hi1 := boxOf(org1, dst1)
	lo2, hi2 := boxOf(org2, dst2)
	lo := Point{math.Max(lo1.X, lo2.X), math.Max(lo1.Y, lo2.Y)}
	hi := Point{math.Min(hi1.X, hi2.X), math.Min(hi1.Y, hi2.Y)}
	p.X = clamp(p.X, lo.X, hi.X)
	p.Y = clamp(p.Y, lo.Y, hi.Y)

	*out = p
	return IntersectOK
}

func boxOf(a, b Point) (lo, hi Point) {
	lo = Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
	hi = Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
	return
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
