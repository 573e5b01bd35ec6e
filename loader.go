package polytess

import (
	"github.com/gogpu/polytess/internal/geometry"
	"github.com/gogpu/polytess/internal/mesh"
)

// load builds one closed edge loop per contour of p into m, dropping any
// contour with fewer than three points after stripping an explicit
// closing duplicate, per spec.md §6; repeated points inside a contour are
// not detected here. Returns false if no contour survived.
func load(m *mesh.Mesh, p Polygon) bool {
	any := false
	idx := 0
	for _, c := range p.Counts {
		if c == 0 {
			break
		}
		pts := p.Points[idx : idx+c]
		idx += c

		if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 3 {
			Logger().Warn("dropped degenerate contour", "vertices", len(pts))
			continue
		}

		buildContour(m, pts, contourWinding(pts))
		any = true
	}
	return any
}

// contourWinding reports +1 for a counter-clockwise contour and -1 for a
// clockwise one, via the shoelace sum's sign.
func contourWinding(pts []Point) int32 {
	var area float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	if area < 0 {
		return -1
	}
	return 1
}

// buildContour chains pts into a closed edge loop via MakeEdge/Append,
// then splices the final edge's destination back onto the first edge's
// origin to close it, per mesh.Splice's keeper convention (the first
// edge's origin vertex survives).
func buildContour(m *mesh.Mesh, pts []Point, winding int32) {
	first := m.MakeEdge()
	m.SetVertexPoint(m.Org(first), toGeom(pts[0]))
	m.SetVertexPoint(m.Dst(first), toGeom(pts[1]))
	setEdgeWinding(m, first, winding)

	prev := first
	for i := 2; i < len(pts); i++ {
		e := m.Append(prev)
		m.SetVertexPoint(m.Dst(e), toGeom(pts[i]))
		setEdgeWinding(m, e, winding)
		prev = e
	}

	last := m.Append(prev)
	setEdgeWinding(m, last, winding)
	m.Splice(first, mesh.Sym(last))
}

func setEdgeWinding(m *mesh.Mesh, e mesh.EdgeID, winding int32) {
	m.SetWinding(e, winding)
	m.SetWinding(mesh.Sym(e), -winding)
}

func toGeom(p Point) geometry.Point { return geometry.Point{X: p.X, Y: p.Y} }
