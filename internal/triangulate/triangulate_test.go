package triangulate

import (
	"math"
	"testing"

	"github.com/gogpu/polytess/internal/geometry"
	"github.com/gogpu/polytess/internal/mesh"
)

// buildFace chains pts (already in the order they should appear around the
// face) into a closed boundary via MakeEdge/Append/Connect and returns the
// id of the bounded face enclosed by them, marked Inside. The other face
// produced by closing the loop is left Inside == false (its zero value).
func buildFace(m *mesh.Mesh, pts []geometry.Point) mesh.FaceID {
	first := m.MakeEdge()
	m.SetVertexPoint(m.Org(first), pts[0])
	m.SetVertexPoint(m.Dst(first), pts[1])

	prev := first
	for i := 2; i < len(pts); i++ {
		e := m.Append(prev)
		m.SetVertexPoint(m.Dst(e), pts[i])
		prev = e
	}

	enew := m.Connect(prev, first)

	a := m.LFace(enew)
	b := m.LFace(mesh.Sym(enew))
	inside := ringIsCCW(m, enew)
	if inside {
		m.SetFaceInside(a, true)
		m.SetFaceEdge(a, enew)
		return a
	}
	m.SetFaceInside(b, true)
	m.SetFaceEdge(b, mesh.Sym(enew))
	return b
}

func ringIsCCW(m *mesh.Mesh, start mesh.EdgeID) bool {
	var area float64
	for e := start; ; {
		a := m.VertexPoint(m.Org(e))
		b := m.VertexPoint(m.Dst(e))
		area += a.X*b.Y - b.X*a.Y
		e = m.LNext(e)
		if e == start {
			break
		}
	}
	return area > 0
}

func ringArea(m *mesh.Mesh, start mesh.EdgeID) float64 {
	var area float64
	for e := start; ; {
		a := m.VertexPoint(m.Org(e))
		b := m.VertexPoint(m.Dst(e))
		area += a.X*b.Y - b.X*a.Y
		e = m.LNext(e)
		if e == start {
			break
		}
	}
	return math.Abs(area) / 2
}

func ringLen(m *mesh.Mesh, start mesh.EdgeID) int {
	n := 0
	for e := start; ; {
		n++
		e = m.LNext(e)
		if e == start {
			break
		}
	}
	return n
}

func TestRunSquareProducesTwoTriangles(t *testing.T) {
	m := mesh.New()
	f := buildFace(m, []geometry.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	wantArea := ringArea(m, m.FaceEdge(f))

	Run(m)

	var faces []mesh.FaceID
	for fi := range m.Faces {
		if m.FaceInside(fi) {
			faces = append(faces, fi)
		}
	}
	if len(faces) != 2 {
		t.Fatalf("got %d inside faces, want 2 triangles", len(faces))
	}

	var area float64
	for _, fi := range faces {
		start := m.FaceEdge(fi)
		if n := ringLen(m, start); n != 3 {
			t.Fatalf("face %v has %d sides, want a triangle", fi, n)
		}
		area += ringArea(m, start)
	}
	if math.Abs(area-wantArea) > 1e-9 {
		t.Fatalf("triangulated area = %v, want %v", area, wantArea)
	}
}

func TestRunPentagonPreservesArea(t *testing.T) {
	m := mesh.New()
	f := buildFace(m, []geometry.Point{{0, 0}, {2, 0}, {3, 1.5}, {1, 3}, {-1, 1.5}})
	wantArea := ringArea(m, m.FaceEdge(f))

	Run(m)

	var area float64
	count := 0
	for fi := range m.Faces {
		if !m.FaceInside(fi) {
			continue
		}
		count++
		start := m.FaceEdge(fi)
		if n := ringLen(m, start); n != 3 {
			t.Fatalf("face %v has %d sides, want a triangle", fi, n)
		}
		area += ringArea(m, start)
	}
	if count != 3 {
		t.Fatalf("got %d triangles, want 3 for a pentagon", count)
	}
	if math.Abs(area-wantArea) > 1e-9 {
		t.Fatalf("triangulated area = %v, want %v", area, wantArea)
	}
}

func TestRunLeavesOutsideFaceAlone(t *testing.T) {
	m := mesh.New()
	buildFace(m, []geometry.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	var before int
	for range m.Faces {
		before++
	}

	Run(m)

	var after int
	for range m.Faces {
		after++
	}
	// Two new triangle faces replace the one square inside face; the
	// outside face is untouched.
	if after != before+1 {
		t.Fatalf("face count = %d, want %d (one square split into two triangles)", after, before+1)
	}
}
