// Package assemble implements spec.md §4.O: flattening the mesh's inside
// faces into the caller-facing {points, counts, total} contour buffers.
package assemble

import (
	"github.com/gogpu/polytess/internal/geometry"
	"github.com/gogpu/polytess/internal/mesh"
)

// Result holds the flattened output of a single assemble pass. Counts is
// zero-terminated; Points is indexed by the prefix sum of Counts.
type Result struct {
	Points []geometry.Point
	Counts []int32
	Total  int
}

// Run walks every inside face of m once around its lnext ring, appending
// each half-edge's origin to the point buffer. When autoClosed is set,
// each contour repeats its first point at the end.
func Run(m *mesh.Mesh, autoClosed bool) Result {
	var res Result

	for f := range m.Faces {
		if !m.FaceInside(f) {
			continue
		}
		start := m.FaceEdge(f)
		if start == mesh.NullEdge {
			continue
		}

		var first geometry.Point
		count := int32(0)
		for e, i := start, 0; ; e, i = m.LNext(e), i+1 {
			p := m.VertexPoint(m.Org(e))
			if i == 0 {
				first = p
			}
			res.Points = append(res.Points, p)
			count++
			if m.LNext(e) == start {
				break
			}
		}

		if autoClosed {
			res.Points = append(res.Points, first)
			count++
		}

		res.Counts = append(res.Counts, count)
		res.Total += int(count)
	}

	res.Counts = append(res.Counts, 0)
	return res
}
