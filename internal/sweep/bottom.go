package sweep

import (
	"github.com/gogpu/polytess/internal/geometry"
	"github.com/gogpu/polytess/internal/mesh"
	"github.com/gogpu/polytess/internal/region"
)

// mergeAndDrop folds the winding of prev's edge onto next's edge (the two
// having just been found to coincide) and removes prev, per spec.md
// §4.S.7's coalescing step.
func (s *Sweeper) mergeAndDrop(prev, next *region.Region) {
	prevEdge := mesh.EdgeID(prev.Edge)
	nextEdge := mesh.EdgeID(next.Edge)

	w := s.m.Winding(nextEdge) + s.m.Winding(prevEdge)
	s.m.SetWinding(nextEdge, w)
	s.m.SetWinding(mesh.Sym(nextEdge), -w)
	next.Inside = insideFor(s.rule, w)

	s.removeRegion(prev)
	s.m.Delete(prevEdge)
}

// bottomOrderFix implements spec.md §4.S.7: left and right are adjacent
// active regions whose edges both run up from distinct, still-unreached
// origins. If one origin actually lies on the wrong side of the other
// region's edge (sweep order and geometric order disagree, a symptom of
// numerical drift), split the offending edge at a vertex coincident with
// the out-of-order origin and splice the two origins together. Reports
// whether it made such a fix.
func (s *Sweeper) bottomOrderFix(left, right *region.Region) bool {
	le := mesh.EdgeID(left.Edge)
	re := mesh.EdgeID(right.Edge)
	lo, ro := s.m.Org(le), s.m.Org(re)
	if lo == ro {
		return false
	}
	lp, rp := s.m.VertexPoint(lo), s.m.VertexPoint(ro)
	ld, rd := s.m.VertexPoint(s.m.Dst(le)), s.m.VertexPoint(s.m.Dst(re))

	if geometry.LessEq(lp, rp) {
		// lo should sweep before ro; if lp actually falls to the right of
		// the right edge, they disagree.
		if !geometry.InEdgeRight(lp, rd, rp) {
			return false
		}
		left.Dirty, right.Dirty = true, true
		enew := s.m.Split(re)
		nv := s.m.Org(enew)
		s.m.SetVertexPoint(nv, lp)
		s.m.Splice(le, enew)
		s.unbindRegion(re)
		s.bindRegion(enew, right)
		slogger().Debug("bottom order fix", "side", "right", "at", lp)
		return true
	}

	if !geometry.InEdgeLeft(rp, ld, lp) {
		return false
	}
	left.Dirty, right.Dirty = true, true
	enew := s.m.Split(le)
	nv := s.m.Org(enew)
	s.m.SetVertexPoint(nv, rp)
	s.m.Splice(re, enew)
	s.unbindRegion(le)
	s.bindRegion(enew, left)
	slogger().Debug("bottom order fix", "side", "left", "at", rp)
	return true
}

// checkForIntersect implements spec.md §4.S.8: test whether left's and
// right's edges cross above the current event. Cheap rejections first
// (shared endpoint means no interior crossing to find); on a genuine
// crossing, clamp the computed point against numerical drift relative to
// the event and to the two origins, then split both edges at the shared
// point, splice them together, requeue the new vertex, and rebind each
// original region to the upper half (the lower halves become ordinary
// down-going edges, discovered fresh when the sweep reaches the new
// vertex). Falls back to the parallel/degenerate handling of
// bottomOrderFix when no interior crossing exists. Reports whether it
// changed the mesh.
func (s *Sweeper) checkForIntersect(left, right *region.Region) bool {
	le := mesh.EdgeID(left.Edge)
	re := mesh.EdgeID(right.Edge)
	lo, ld := s.m.Org(le), s.m.Dst(le)
	ro, rd := s.m.Org(re), s.m.Dst(re)
	if lo == ro || ld == rd {
		return false
	}

	lop, ldp := s.m.VertexPoint(lo), s.m.VertexPoint(ld)
	rop, rdp := s.m.VertexPoint(ro), s.m.VertexPoint(rd)

	var out geometry.Point
	switch geometry.EdgeIntersection(ldp, lop, rdp, rop, &out) {
	case geometry.IntersectParallel:
		return s.bottomOrderFix(left, right)
	case geometry.IntersectReject:
		return false
	}

	// Clamp the intersection so it never sorts ahead of the current event
	// or behind either edge's own origin.
	if geometry.InTop(out, s.eventPoint) {
		out = s.eventPoint
	}
	topOrigin := lop
	if geometry.InTop(rop, lop) {
		topOrigin = rop
	}
	if geometry.InTop(out, topOrigin) {
		out = topOrigin
	}
	if out.Eq(lop) || out.Eq(rop) {
		return s.bottomOrderFix(left, right)
	}

	enewL := s.m.Split(le)
	s.m.SetVertexPoint(s.m.Org(enewL), out)
	enewR := s.m.Split(re)
	s.m.Splice(enewL, enewR)

	s.unbindRegion(le)
	s.bindRegion(enewL, left)
	s.unbindRegion(re)
	s.bindRegion(enewR, right)

	s.enqueue(s.m.Org(enewL))
	slogger().Debug("intersection found", "at", out)

	left.Dirty, right.Dirty = true, true
	if ll := s.regions.Left(left); ll != nil {
		ll.Dirty = true
	}
	return true
}

// fixAllDirtyRegions implements spec.md §4.S.9: repeatedly walks left
// from start looking for dirty regions, resolving each against its left
// neighbor with, in order: dropping a now-superfluous fixedge,
// intersection fixing when the event touches one of the two edges'
// destinations, or the bottom-order fix otherwise. A fix that reports a
// collapse folds the two regions together before continuing.
func (s *Sweeper) fixAllDirtyRegions(start *region.Region) {
	reg := start
	for reg != nil {
		left := s.regions.Left(reg)
		if left == nil {
			return
		}
		if !reg.Dirty {
			reg = left
			continue
		}
		reg.Dirty = false

		if left.Fixedge {
			edge := mesh.EdgeID(left.Edge)
			s.unbindRegion(edge)
			s.removeRegion(left)
			s.m.Delete(edge)
			reg = s.regions.Left(reg)
			continue
		}

		le := mesh.EdgeID(left.Edge)
		re := mesh.EdgeID(reg.Edge)
		touchesEvent := s.eventPoint.Eq(s.m.VertexPoint(s.m.Dst(le))) ||
			s.eventPoint.Eq(s.m.VertexPoint(s.m.Dst(re)))

		var collapsed bool
		if s.m.Org(le) != s.m.Org(re) && s.m.Dst(le) != s.m.Dst(re) && touchesEvent {
			collapsed = s.checkForIntersect(left, reg)
		} else {
			collapsed = s.bottomOrderFix(left, reg)
		}

		if collapsed {
			s.mergeAndDrop(left, reg)
		}
		reg = s.regions.Left(reg)
	}
}

// connectBottomEvent implements spec.md §4.S.6: v has no down-going edges
// of its own, and left/right are the two live regions merging into one.
// Try intersection fixing first. Otherwise patch a synthetic upward edge
// from v to whichever of left's and right's origins sorts topmost, insert
// it as a single new down-going region without eagerly fixing dirty
// regions, mark that region as a placeholder fixedge, and let
// fixAllDirtyRegions reconcile it against its neighbors.
func (s *Sweeper) connectBottomEvent(v mesh.VertexID, left, right *region.Region, edgeLast mesh.EdgeID) {
	if s.checkForIntersect(left, right) {
		return
	}

	le := mesh.EdgeID(left.Edge)
	re := mesh.EdgeID(right.Edge)
	lo, ro := s.m.Org(le), s.m.Org(re)
	topOrigin := lo
	if geometry.InTop(s.m.VertexPoint(ro), s.m.VertexPoint(lo)) {
		topOrigin = ro
	}

	enew := s.m.Connect(mesh.Sym(edgeLast), s.m.VertexEdge(topOrigin))
	s.insertDownGoingEdges(v, left, enew, s.m.ONext(enew), mesh.NullEdge, false)

	if r := s.regionOf(mesh.Sym(enew)); r != nil {
		r.Fixedge = true
		s.fixAllDirtyRegions(r)
	}
}
