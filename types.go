package polytess

// Point is a 2D coordinate. The sweep only relies on a total order
// (y ascending, then x ascending), so polytess works under either a y-up
// or y-down convention as long as the caller is consistent.
type Point struct {
	X, Y float64
}

// Bounds is the rectangle the sweep's sentinel edges are built just
// outside of. Both W and H must be strictly positive.
type Bounds struct {
	X, Y, W, H float64
}

// Polygon is polytess's flat input/output representation: Points holds
// every contour's vertices back to back, Counts holds each contour's
// vertex count and is zero-terminated, and Total is the sum of Counts.
//
// As input, Convex is a caller assertion enabling the convex fast path
// (skipping the sweep entirely); as output, Convex
// reports whether every emitted contour is individually convex.
type Polygon struct {
	Points []Point
	Counts []int
	Total  int
	Convex bool
}

// Mode selects how far the tessellation pipeline runs.
type Mode uint8

const (
	// ModeMonotone stops after the sweep: every output contour is
	// horizontally monotone but not necessarily triangulated.
	ModeMonotone Mode = iota
	// ModeTriangulation runs the sweep and the monotone triangulator:
	// every output contour is a triangle.
	ModeTriangulation
	// ModeConvex runs the full pipeline, including the convex merger:
	// every output contour is a maximal convex polygon.
	ModeConvex
)

// Rule selects how a face's accumulated winding number maps to "inside".
type Rule uint8

const (
	// RuleOdd treats a face as inside when its winding number is odd.
	RuleOdd Rule = iota
	// RuleNonZero treats a face as inside when its winding number is
	// nonzero.
	RuleNonZero
)

// Flags holds boolean output options, combined with bitwise OR.
type Flags uint8

const (
	// AutoClosed duplicates each output contour's first point at the end,
	// incrementing its count, so every contour is explicitly closed.
	AutoClosed Flags = 1 << iota
)

// Options configures a Tessellator. Set before calling Make.
type Options struct {
	Mode  Mode
	Rule  Rule
	Flags Flags
}
