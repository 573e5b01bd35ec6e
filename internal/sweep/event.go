package sweep

import (
	"github.com/gogpu/polytess/internal/mesh"
	"github.com/gogpu/polytess/internal/region"
)

// findUpGoingRegion scans v's own outgoing edge ring for a half-edge that
// names an active region: such an edge was inserted earlier as the sym of
// a down-going edge, so its Org is the (until now) unreached vertex v and
// its Dst is the vertex that was already current when the region was
// born. Per spec.md §4.S.3.
func (s *Sweeper) findUpGoingRegion(v mesh.VertexID) (mesh.EdgeID, *region.Region) {
	start := s.m.VertexEdge(v)
	if start == mesh.NullEdge {
		return mesh.NullEdge, nil
	}
	e := start
	for {
		if r := s.regionOf(e); r != nil {
			return e, r
		}
		e = s.m.ONext(e)
		if e == start {
			break
		}
	}
	return mesh.NullEdge, nil
}

// sweepEvent processes the event at v, per spec.md §4.S.3.
func (s *Sweeper) sweepEvent(v mesh.VertexID) {
	edgeFirst, regFirst := s.findUpGoingRegion(v)
	if regFirst == nil {
		// Case B: v is a top event introducing new edges.
		s.connectTopEvent(v)
		return
	}

	// Case A: walk left while the neighboring region's edge also ends
	// at v (shares the same Org).
	for {
		left := s.regions.Left(regFirst)
		if left == nil || left == s.sentLeft {
			break
		}
		if s.m.Org(mesh.EdgeID(left.Edge)) != v {
			break
		}
		regFirst = left
	}
	edgeFirst = mesh.EdgeID(regFirst.Edge)

	if leftOfFirst := s.regions.Left(regFirst); leftOfFirst != nil && leftOfFirst.Fixedge {
		s.fixRegionEdge(leftOfFirst, v)
	}

	edgeLast, regLast := s.finishTopRegions(regFirst, v)

	if s.m.ONext(edgeFirst) == edgeLast {
		s.connectBottomEvent(v, regFirst, regLast, edgeLast)
		return
	}
	s.insertDownGoingEdges(v, regFirst, s.m.ONext(edgeFirst), edgeLast, mesh.NullEdge, true)
}

// finishTopRegions walks region_first rightward through every region
// whose edge ends at v, committing each face's inside mark and removing
// the region. Returns the last lnext edge and the region immediately to
// its right (the boundary of the range just closed).
func (s *Sweeper) finishTopRegions(regFirst *region.Region, v mesh.VertexID) (mesh.EdgeID, *region.Region) {
	reg := regFirst
	var edgeLast mesh.EdgeID = mesh.NullEdge
	var prevEdge mesh.EdgeID = mesh.NullEdge

	for reg != nil && s.m.Org(mesh.EdgeID(reg.Edge)) == v {
		e := mesh.EdgeID(reg.Edge)
		face := s.m.RFace(e)
		s.m.SetFaceInside(face, reg.Inside)
		s.m.SetFaceEdge(face, mesh.Sym(e))

		if prevEdge != mesh.NullEdge {
			if s.m.Org(prevEdge) == s.m.Org(e) && s.m.ONext(prevEdge) != e {
				s.m.Splice(prevEdge, e)
			}
		}

		next := s.regions.Right(reg)
		edgeLast = s.m.LNext(e)
		s.removeRegion(reg)
		prevEdge = edgeLast
		reg = next
	}
	return edgeLast, reg
}

// fixRegionEdge synthesizes a real edge connecting r's dangling fixedge
// to the event v and replaces the fixedge via r, clearing the flag.
func (s *Sweeper) fixRegionEdge(r *region.Region, v mesh.VertexID) {
	old := mesh.EdgeID(r.Edge)
	enew := s.m.Connect(mesh.Sym(old), s.m.VertexEdge(v))
	s.unbindRegion(old)
	s.bindRegion(mesh.Sym(enew), r)
	r.Fixedge = false
}

// connectTopEvent handles a new top vertex introducing down-going edges,
// per spec.md §4.S.5. The degenerate sub-cases (event lying exactly on
// the left boundary edge) are handled by connectTopEventDegenerate.
func (s *Sweeper) connectTopEvent(v mesh.VertexID) {
	ve := s.m.VertexEdge(v)
	if ve == mesh.NullEdge {
		return
	}
	reg := s.regions.Find(int32(mesh.Sym(ve)))
	if reg == nil {
		reg = s.sentLeft
	}
	regRight := s.regions.Right(reg)

	edgeLeft := mesh.EdgeID(reg.Edge)
	if s.m.VertexPoint(v).Eq(s.m.VertexPoint(s.m.Org(edgeLeft))) ||
		s.m.VertexPoint(v).Eq(s.m.VertexPoint(s.m.Dst(edgeLeft))) {
		s.connectTopEventDegenerate(v, reg)
		return
	}

	lowerIsLeft := true
	if regRight != nil && regRight != s.sentRight {
		edgeRight := mesh.EdgeID(regRight.Edge)
		if s.m.Org(edgeRight) == s.m.Org(edgeLeft) {
			lowerIsLeft = false
		}
	}

	if reg.Inside || (regRight != nil && regRight.Fixedge) {
		var dst mesh.VertexID
		if lowerIsLeft {
			dst = s.m.Org(edgeLeft)
		} else if regRight != nil {
			dst = s.m.Org(mesh.EdgeID(regRight.Edge))
		} else {
			dst = s.m.Org(edgeLeft)
		}
		enew := s.m.Connect(mesh.Sym(ve), s.m.VertexEdge(dst))
		if regRight != nil && regRight.Fixedge {
			s.unbindRegion(mesh.EdgeID(regRight.Edge))
			s.bindRegion(mesh.Sym(enew), regRight)
			regRight.Fixedge = false
		}
		s.sweepEvent(v)
		return
	}

	s.insertDownGoingEdges(v, reg, ve, ve, mesh.NullEdge, true)
}

// connectTopEventDegenerate handles the case where v lies exactly on the
// region's left-bounding edge, per spec.md §4.S.5.
func (s *Sweeper) connectTopEventDegenerate(v mesh.VertexID, reg *region.Region) {
	edgeLeft := mesh.EdgeID(reg.Edge)
	ve := s.m.VertexEdge(v)

	if s.m.VertexPoint(v).Eq(s.m.VertexPoint(s.m.Org(edgeLeft))) {
		// edgeLeft's origin is itself unprocessed; nothing to splice yet.
		return
	}

	// v coincides with edgeLeft.Dst: splice the new down-going edges in
	// next to edgeLeft so they are processed in onext order after it.
	leftBottom := s.regions.Left(reg)
	if leftBottom != nil && leftBottom != s.sentLeft && leftBottom.Fixedge {
		s.unbindRegion(mesh.EdgeID(leftBottom.Edge))
		s.regions.Remove(leftBottom)
	}
	if s.m.ONext(edgeLeft) != ve {
		s.m.Splice(edgeLeft, ve)
	}
	s.insertDownGoingEdges(v, reg, ve, ve, edgeLeft, true)
}
