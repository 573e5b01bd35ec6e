package sweep

import (
	"github.com/gogpu/polytess/internal/mesh"
	"github.com/gogpu/polytess/internal/region"
)

// insertDownGoingEdges implements spec.md §4.S.4: given a left region and
// a range of down-going edges emanating from v (all with Org == v),
// insert a new active region to the right of regLeft for each, bound to
// the edge's sym so the region's edge goes up. leftTopEdge, if not
// NullEdge, is the edge closing the region immediately to regLeft's
// left, used only to keep v's onext ring adjacent.
func (s *Sweeper) insertDownGoingEdges(v mesh.VertexID, regLeft *region.Region, edgeFirst, edgeLast, leftTopEdge mesh.EdgeID, fixDirty bool) {
	prevReg := regLeft
	prevEdge := leftTopEdge
	var lastReg *region.Region
	first := true

	// edgeFirst == edgeLast means "the whole ring" (there is no finished
	// boundary on either side yet), so the loop always runs at least once.
	e := edgeFirst
	started := false
	for e != edgeLast || !started {
		started = true
		next := s.m.ONext(e)

		if prevEdge != mesh.NullEdge && s.m.Org(prevEdge) == s.m.Org(e) && s.m.ONext(prevEdge) != e {
			s.m.Splice(prevEdge, e)
		}

		r := &region.Region{}
		up := mesh.Sym(e)
		s.bindRegion(up, r)
		s.regions.InsertAfter(prevReg, r)

		r.Winding = prevReg.Winding - s.m.Winding(e)
		r.Inside = insideFor(s.rule, r.Winding)
		prevReg.Dirty = true

		if !first {
			if s.bottomOrderFix(prevReg, r) {
				s.mergeAndDrop(prevReg, r)
			}
		}
		first = false

		prevReg = r
		prevEdge = e
		lastReg = r
		e = next
	}

	if lastReg != nil {
		lastReg.Dirty = true
		if fixDirty {
			s.fixAllDirtyRegions(lastReg)
		}
	}
}
