// Package geometry implements the sweep-order predicates and segment
// intersection arithmetic the tessellator sweep relies on. The sweep is
// horizontal: every ordering relation compares y first, then x.
package geometry

// Point is a floating-point coordinate pair. It is the single coordinate
// system used by mesh vertices, sweep ordering, and all predicates below.
type Point struct {
	X, Y float64
}

// Sub returns a - b as a vector.
func (a Point) Sub(b Point) Point { return Point{a.X - b.X, a.Y - b.Y} }

// Eq reports whether two points have identical coordinates.
func (a Point) Eq(b Point) bool { return a.X == b.X && a.Y == b.Y }
