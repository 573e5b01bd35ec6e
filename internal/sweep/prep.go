package sweep

import (
	"github.com/gogpu/polytess/internal/geometry"
	"github.com/gogpu/polytess/internal/mesh"
)

// removeDegenerateEdges drops zero-length edges and any contour that
// collapses to fewer than three edges, per spec.md §4.S.1.
func (s *Sweeper) removeDegenerateEdges() {
	var zero []mesh.EdgeID
	for e := range s.m.Edges {
		if s.m.VertexPoint(s.m.Org(e)).Eq(s.m.VertexPoint(s.m.Dst(e))) {
			zero = append(zero, e)
		}
	}
	for _, e := range zero {
		s.m.Remove(e)
	}

	visited := make(map[mesh.EdgeID]bool)
	var short [][]mesh.EdgeID
	for e := range s.m.Edges {
		if visited[e] {
			continue
		}
		ring := []mesh.EdgeID{e}
		visited[e] = true
		visited[mesh.Sym(e)] = true
		for cur := s.m.LNext(e); cur != e; cur = s.m.LNext(cur) {
			ring = append(ring, cur)
			visited[cur] = true
			visited[mesh.Sym(cur)] = true
		}
		if len(ring) < 3 {
			short = append(short, ring)
		}
	}
	for _, ring := range short {
		for _, e := range ring {
			s.m.Remove(e)
		}
	}
}

// buildEventQueue pushes every surviving vertex into the event queue.
func (s *Sweeper) buildEventQueue() {
	for v := range s.m.Vertices {
		s.enqueue(v)
	}
}

// buildSentinels installs the two sentinel regions whose edges lie just
// outside bounds on the left and right, per spec.md §4.R.
func (s *Sweeper) buildSentinels(b Bounds) {
	margin := b.W + b.H + 1
	top := b.Y - margin
	bottom := b.Y + b.H + margin
	leftX := b.X - margin
	rightX := b.X + b.W + margin

	le := s.m.MakeEdge()
	s.m.SetVertexPoint(s.m.Org(le), geometry.Point{X: leftX, Y: bottom})
	s.m.SetVertexPoint(s.m.Dst(le), geometry.Point{X: leftX, Y: top})

	re := s.m.MakeEdge()
	s.m.SetVertexPoint(s.m.Org(re), geometry.Point{X: rightX, Y: bottom})
	s.m.SetVertexPoint(s.m.Dst(re), geometry.Point{X: rightX, Y: top})

	s.sentLeftEdge, s.sentRightEdge = le, re
	left, right := s.regions.Init(int32(le), int32(re))
	s.bindRegion(le, left)
	s.bindRegion(re, right)
	s.sentLeft, s.sentRight = left, right
}

// postprocess implements spec.md §4.S.10: drop edges the sweep's own
// fix-ups left zero-length, and reset any inside face with exactly two
// half-edges (a degenerate sliver) back to outside.
func (s *Sweeper) postprocess() {
	var zero []mesh.EdgeID
	for e := range s.m.Edges {
		if s.m.VertexPoint(s.m.Org(e)).Eq(s.m.VertexPoint(s.m.Dst(e))) {
			zero = append(zero, e)
		}
	}
	for _, e := range zero {
		s.m.Remove(e)
	}

	for f := range s.m.Faces {
		if !s.m.FaceInside(f) {
			continue
		}
		e := s.m.FaceEdge(f)
		if e == mesh.NullEdge {
			continue
		}
		if n := s.m.LNext(e); n != e && s.m.LNext(n) == e {
			s.m.SetFaceInside(f, false)
		}
	}
}
