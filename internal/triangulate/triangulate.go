// Package triangulate implements spec.md §4.T: cutting every inside,
// horizontally-monotone face produced by the sweep into triangles. Each
// cut is expressed as a single mesh.Connect, so face.Inside propagates to
// the newly carved-off triangle automatically: mesh.Splice copies the
// split face's Inside onto the new face.
package triangulate

import (
	"github.com/gogpu/polytess/internal/geometry"
	"github.com/gogpu/polytess/internal/mesh"
)

// Run triangulates every inside face of m in place.
func Run(m *mesh.Mesh) {
	var faces []mesh.FaceID
	for f := range m.Faces {
		if m.FaceInside(f) {
			faces = append(faces, f)
		}
	}
	for _, f := range faces {
		triangulateFace(m, f)
	}
}

// findUpGoingEdge walks f's ring from start looking for an edge whose
// destination sorts above its origin, per spec.md §4.T's "uppermost left
// edge". Falls back to start if the ring is degenerate.
func findUpGoingEdge(m *mesh.Mesh, start mesh.EdgeID) mesh.EdgeID {
	e := start
	for {
		if geometry.InTopOrHLeft(m.VertexPoint(m.Dst(e)), m.VertexPoint(m.Org(e))) {
			return e
		}
		e = m.LNext(e)
		if e == start {
			return start
		}
	}
}

func ringEdges(m *mesh.Mesh, start mesh.EdgeID) []mesh.EdgeID {
	ring := []mesh.EdgeID{start}
	for e := m.LNext(start); e != start; e = m.LNext(e) {
		ring = append(ring, e)
	}
	return ring
}

// triangleContains reports whether p lies inside (or on) triangle abc,
// which is assumed CCW.
func triangleContains(a, b, c, p geometry.Point) bool {
	return !geometry.IsCCW(b, a, p) && !geometry.IsCCW(c, b, p) && !geometry.IsCCW(a, c, p)
}

// triangulateFace repeatedly clips a CCW ear from f's boundary, via
// mesh.Connect, until only a triangle remains.
func triangulateFace(m *mesh.Mesh, f mesh.FaceID) {
	for {
		start := findUpGoingEdge(m, m.FaceEdge(f))
		ring := ringEdges(m, start)
		n := len(ring)
		if n <= 3 {
			return
		}

		cutAt := -1
		for i := 0; i < n; i++ {
			prevEdge := ring[i]
			nextEdge := ring[(i+1)%n]
			a := m.VertexPoint(m.Org(prevEdge))
			b := m.VertexPoint(m.Dst(prevEdge))
			c := m.VertexPoint(m.Dst(nextEdge))
			if !geometry.IsCCW(a, b, c) {
				continue
			}
			blocked := false
			for j := 0; j < n; j++ {
				if j == i || j == (i+1)%n {
					continue
				}
				p := m.VertexPoint(m.Org(ring[j]))
				if triangleContains(a, b, c, p) {
					blocked = true
					break
				}
			}
			if !blocked {
				cutAt = i
				break
			}
		}
		if cutAt < 0 {
			// No strictly valid ear survived (near-degenerate collinear
			// geometry); take the first candidate to make progress rather
			// than stalling.
			cutAt = 0
		}

		prevEdge := ring[cutAt]
		nextEdge := ring[(cutAt+1)%n]
		a := m.LPrev(prevEdge)
		b := m.LNext(nextEdge)
		enew := m.Connect(a, b)
		m.SetFaceEdge(f, enew)
	}
}
