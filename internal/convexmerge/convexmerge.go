// Package convexmerge implements spec.md §4.C: a second pass over the
// triangulated mesh that fuses adjacent inside triangles back into larger
// convex pieces wherever the shared diagonal can be removed without
// breaking convexity.
package convexmerge

import (
	"github.com/gogpu/polytess/internal/geometry"
	"github.com/gogpu/polytess/internal/mesh"
)

// Run merges adjacent inside faces of m in place wherever doing so keeps
// the result convex.
func Run(m *mesh.Mesh) {
	var faces []mesh.FaceID
	for f := range m.Faces {
		if m.FaceInside(f) {
			faces = append(faces, f)
		}
	}
	for _, f := range faces {
		if m.FaceAlive(f) {
			mergeFace(m, f)
		}
	}
}

// mergeFace walks f's boundary looking for a mergeable neighbor,
// restarting after every merge since the ring and its length changed.
// Iterates until a full pass finds nothing left to merge.
//
// Deleting the shared edge merges f and its neighbor into a single
// surviving face id, but mesh.Delete does not promise which of the two
// input ids that is; f is reassigned to whichever one is still alive
// immediately after each Delete so the walk always continues on the
// correct, live face.
func mergeFace(m *mesh.Mesh, f mesh.FaceID) {
	for {
		merged := false
		start := m.FaceEdge(f)
		e := start
		for first := true; first || e != start; {
			first = false
			next := m.LNext(e)
			rf := m.RFace(e)
			if rf != f && m.FaceInside(rf) && canMerge(m, e) {
				m.SetFaceEdge(f, next)
				m.Delete(e)
				if !m.FaceAlive(f) {
					f = rf
				}
				merged = true
				break
			}
			e = next
		}
		if !merged {
			return
		}
	}
}

// canMerge reports whether removing shared edge e keeps both of its
// endpoints' merged vertex angle convex, per spec.md §4.C: CCW at each
// shared vertex against the next-next vertex on each side.
func canMerge(m *mesh.Mesh, e mesh.EdgeID) bool {
	se := mesh.Sym(e)
	prevEdge := m.LPrev(e)
	nextEdge := m.LNext(e)

	p0 := m.VertexPoint(m.Org(prevEdge))
	p1 := m.VertexPoint(m.Org(e))
	p2 := m.VertexPoint(m.Dst(e))
	p3 := m.VertexPoint(m.Dst(nextEdge))
	q3 := m.VertexPoint(m.Dst(m.LNext(se)))
	q0 := m.VertexPoint(m.Org(m.LPrev(se)))

	return geometry.IsCCW(p0, p1, q3) && geometry.IsCCW(q0, p2, p3)
}
