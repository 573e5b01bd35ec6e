// Package polytess implements the polygon tessellation core of a 2D
// vector-graphics engine: given an arbitrary closed polygon (possibly
// self-intersecting, with multiple contours and any fill rule) it produces
// an equivalent set of simple regions suitable for a GPU or scanline
// rasterizer.
//
// # Overview
//
// polytess is a Go port of the Bentley-Ottmann sweep-line tessellator found
// in GLU-style tessellators: a doubly-connected edge list (DCEL) mesh, a
// horizontal sweep that turns an arbitrary polygon into monotone faces, a
// monotone triangulator, and a convex merger that fuses adjacent triangles
// back into larger convex polygons.
//
// It is designed to sit underneath the GoGPU ecosystem the way
// github.com/gogpu/gg's internal/raster package sits underneath its
// Context: callers hand it a flat polygon and a bounding rectangle, and it
// hands back a flat polygon of simple pieces.
//
// # Quick Start
//
//	import "github.com/gogpu/polytess"
//
//	t := polytess.New()
//	t.SetOptions(polytess.Options{Mode: polytess.ModeTriangulation, Rule: polytess.RuleNonZero})
//	out := t.Make(polytess.Polygon{
//	    Points: []polytess.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
//	    Counts: []int{5, 0},
//	    Total:  5,
//	}, polytess.Bounds{X: 0, Y: 0, W: 1, H: 1})
//
// # Architecture
//
// The library is organized as one public package plus internal
// subpackages, one per algorithmic component:
//   - Public API: Polygon, Bounds, Options, Tessellator, Listener
//   - internal/geometry: sweep-order predicates and segment intersection
//   - internal/mesh: the DCEL (half-edge mesh) and its primitives
//   - internal/equeue: the sweep event queue
//   - internal/region: the active-region list
//   - internal/sweep: the sweep-line state machine
//   - internal/triangulate: per-monotone-face triangulation
//   - internal/convexmerge: the convex-merging pass
//   - internal/assemble: walks the finished mesh into an output Polygon
//
// # Coordinate System
//
// polytess is orientation-agnostic: it only relies on a total sweep order
// (y ascending, then x ascending) over points, so it works with either a
// y-up or y-down convention as long as the caller is consistent.
//
// # Concurrency
//
// A Tessellator is not safe for concurrent use; create one per goroutine,
// or serialize calls to Make. Mesh pools are reused across calls via
// clear-and-rebuild rather than being freed per call.
package polytess
