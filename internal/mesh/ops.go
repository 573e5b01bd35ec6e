package mesh

import "github.com/gogpu/polytess/internal/geometry"

// MakeEdge creates an isolated non-loop edge O -> D: both O and D are
// freshly allocated vertices whose sole edge is this one, and a single
// face is shared on both sides.
func (m *Mesh) MakeEdge() EdgeID {
	e := m.allocPair()
	se := Sym(e)
	v1 := m.allocVertex(geometry.Point{})
	v2 := m.allocVertex(geometry.Point{})
	f := m.allocFace()

	m.setOrg(e, v1)
	m.setOrg(se, v2)
	m.setLFace(e, f)
	m.setLFace(se, f)
	m.setONext(e, e)
	m.setONext(se, se)
	m.setLNext(e, se)
	m.setLNext(se, e)

	m.SetVertexEdge(v1, e)
	m.SetVertexEdge(v2, se)
	m.SetFaceEdge(f, e)
	return e
}

// MakeLoopEdge creates a self-loop edge at a single new vertex with two
// distinct new faces on either side. ccw selects which of the two faces
// lies to e's left.
func (m *Mesh) MakeLoopEdge(ccw bool) EdgeID {
	e := m.allocPair()
	se := Sym(e)
	v := m.allocVertex(geometry.Point{})
	fa := m.allocFace()
	fb := m.allocFace()

	m.setOrg(e, v)
	m.setOrg(se, v)
	m.setONext(e, se)
	m.setONext(se, e)
	m.setLNext(e, e)
	m.setLNext(se, se)

	if ccw {
		m.setLFace(e, fa)
		m.setLFace(se, fb)
	} else {
		m.setLFace(e, fb)
		m.setLFace(se, fa)
	}

	m.SetVertexEdge(v, e)
	return e
}

// spliceRings performs the Guibas-Stolfi ring swap: exchange a.onext with
// b.onext, fixing the lnext of each old onext's sym so that the invariant
// sym(onext(lnext(e))) == e keeps holding.
func (m *Mesh) spliceRings(a, b EdgeID) {
	aOnext := m.ONext(a)
	bOnext := m.ONext(b)
	m.setLNext(Sym(aOnext), b)
	m.setLNext(Sym(bOnext), a)
	m.setONext(a, bOnext)
	m.setONext(b, aOnext)
}

func (m *Mesh) walkOrgOrbit(start EdgeID, v VertexID) {
	e := start
	for {
		m.setOrg(e, v)
		e = m.ONext(e)
		if e == start {
			break
		}
	}
}

func (m *Mesh) walkFaceOrbit(start EdgeID, f FaceID) {
	e := start
	for {
		m.setLFace(e, f)
		e = m.LNext(e)
		if e == start {
			break
		}
	}
}

// Splice is the Guibas-Stolfi primitive: if a.Org == b.Org it splits their
// org ring in two (minting a fresh vertex for b's resulting ring; a keeps
// the original), else it merges the two org rings into a's (killing b's
// old vertex). Independently, it does the same for a.LFace and b.LFace.
// a's identity always survives; b's side is what gets replaced or culled.
// Splice is its own inverse when called with the same two arguments.
func (m *Mesh) Splice(a, b EdgeID) {
	if a == b {
		return
	}
	sameOrg := m.Org(a) == m.Org(b)
	sameFace := m.LFace(a) == m.LFace(b)
	oldBOrg := m.Org(b)
	oldBFace := m.LFace(b)
	aOrg := m.Org(a)
	aFace := m.LFace(a)

	m.spliceRings(a, b)

	if sameOrg {
		nv := m.allocVertex(m.VertexPoint(aOrg))
		m.walkOrgOrbit(b, nv)
		m.SetVertexEdge(nv, b)
		m.SetVertexEdge(aOrg, a)
	} else {
		m.walkOrgOrbit(b, aOrg)
		m.SetVertexEdge(aOrg, a)
		m.freeVertex(oldBOrg)
	}

	if sameFace {
		nf := m.allocFace()
		m.SetFaceInside(nf, m.FaceInside(aFace))
		m.walkFaceOrbit(b, nf)
		m.SetFaceEdge(nf, b)
		m.SetFaceEdge(aFace, a)
		m.emit(EventFaceSplit, int32(aFace), int32(nf))
	} else {
		m.walkFaceOrbit(b, aFace)
		m.SetFaceEdge(aFace, a)
		m.emit(EventFaceMerge, int32(aFace), int32(oldBFace))
		m.freeFace(oldBFace)
	}
}

// Split inserts a fresh vertex in the middle of e, returning the new edge
// whose origin is that vertex and whose destination is e's old
// destination. Both new half-edges inherit e's faces. The new vertex is
// initialized to e's old destination point; callers that split at a
// computed point (e.g. an intersection) must reposition it with
// SetVertexPoint.
func (m *Mesh) Split(e EdgeID) EdgeID {
	se := Sym(e)
	dOld := m.Dst(e)
	lf := m.LFace(e)
	rf := m.RFace(e)

	ringN := m.ONext(se)
	ringP := m.OPrev(se)
	singleton := ringN == se
	faceM := m.LNext(e)
	rfaceX := m.LPrev(se)
	dRepIsSE := m.VertexEdge(dOld) == se

	nv := m.allocVertex(m.VertexPoint(dOld))
	enew := m.allocPair()
	enewSym := Sym(enew)

	m.setOrg(enew, nv)
	m.setOrg(enewSym, dOld)
	m.setLFace(enew, lf)
	m.setLFace(enewSym, rf)
	m.edges[enew].payload.Winding = m.edges[e].payload.Winding
	m.edges[enewSym].payload.Winding = m.edges[se].payload.Winding

	if singleton {
		m.setONext(enewSym, enewSym)
	} else {
		m.setONext(enewSym, ringN)
		m.setONext(ringP, enewSym)
	}
	m.setONext(se, enew)
	m.setONext(enew, se)
	m.setOrg(se, nv)

	if faceM == se {
		seNext := m.LNext(se)
		m.setLNext(e, enew)
		m.setLNext(enew, se)
		m.setLNext(se, enewSym)
		m.setLNext(enewSym, seNext)
	} else {
		m.setLNext(e, enew)
		m.setLNext(enew, faceM)
		m.setLNext(rfaceX, enewSym)
		m.setLNext(enewSym, se)
	}

	m.SetVertexEdge(nv, enew)
	if dRepIsSE {
		m.SetVertexEdge(dOld, enewSym)
	}

	m.emit(EventEdgeSplit, int32(e), int32(enew))
	return enew
}

// Append creates a new edge starting at e.Dst and sharing e.LFace: a
// shortcut for the common "extend the boundary" case.
func (m *Mesh) Append(e EdgeID) EdgeID {
	enew := m.MakeEdge()
	m.Splice(m.LNext(e), enew)
	return enew
}

// Connect adds a new edge from a.Dst to b.Org such that, after
// completion, the new edge's left face equals a.LFace. If a.LFace ==
// b.LFace the new edge splits that face into two; otherwise it merges
// a.LFace and b.LFace into one.
func (m *Mesh) Connect(a, b EdgeID) EdgeID {
	enew := m.MakeEdge()
	m.Splice(m.LNext(a), enew)
	m.Splice(b, Sym(enew))
	return enew
}

// Insert creates a new edge from a.Dst toward b: it splits b in two to
// mint a fresh vertex genuinely threaded into b's path, then connects
// a.Dst to it. The returned edge's origin is a.Dst; its destination is
// the freshly produced vertex.
func (m *Mesh) Insert(a, b EdgeID) EdgeID {
	mid := m.Split(b)
	return m.Connect(a, mid)
}

// Remove is a pure vertex-orbit collapse: it deletes e and merges its two
// endpoint vertices into one, without touching LFace/RFace at all. This is
// deliberately NOT built on Delete, whose Splice calls always carry their
// face-ring bookkeeping along with the vertex-ring one: for an ordinary
// boundary edge (the case removeDegenerateEdges and postprocess actually
// hit, a zero-length chord between a contour's inside and outside faces),
// that would silently fuse the two faces on its sides. spec.md §4.M and
// the ground truth (lanox2d's lx_mesh_edge_remove, which calls the
// face-blind lx_mesh_splice_edge rather than the combined splice used by
// lx_mesh_edge_delete) agree: remove only ever collapses a vertex pair;
// face merging is left to Delete.
//
// It handles the three degenerate cases directly: an isolated edge (both
// endpoints degree-1, sharing one face on both sides), an isolated loop
// (Org == Dst, degree-1, two distinct faces), and the ordinary case of a
// one-vertex collapse where at least one endpoint keeps other edges. A
// vertex left with no other edges is freed; its surviving counterpart
// absorbs its orbit.
func (m *Mesh) Remove(e EdgeID) {
	se := Sym(e)
	oOnlyEdge := m.ONext(e) == e
	dOnlyEdge := m.ONext(se) == se

	if oOnlyEdge && dOnlyEdge {
		o, d, lf := m.Org(e), m.Dst(e), m.LFace(e)
		m.freeVertex(o)
		m.freeVertex(d)
		m.freeFace(lf)
		m.freePair(e)
		return
	}
	if m.Org(e) == m.Dst(e) {
		v, lf, rf := m.Org(e), m.LFace(e), m.RFace(e)
		m.freeVertex(v)
		m.freeFace(lf)
		m.freeFace(rf)
		m.freePair(e)
		return
	}

	// del/sym stand in for e/se, swapped when Org(e) (rather than Dst(e))
	// is the degree-1 endpoint: the rest of the routine always treats
	// Dst(del) as the vertex being absorbed and edgeSymOrg as its OPrev,
	// so the swap lets one code path cover both orientations.
	del, sym := e, se
	edgeDst := m.LNext(del)
	edgeSymOrg := m.OPrev(del)
	if edgeDst == sym {
		edgeDst = edgeSymOrg
	} else if edgeSymOrg == del {
		del, sym = sym, del
		edgeSymOrg = edgeDst
	}

	dying := m.Dst(del)
	survivor := m.Org(edgeSymOrg)
	m.walkOrgOrbit(sym, survivor)

	m.spliceRings(edgeSymOrg, sym)
	m.spliceRings(edgeDst, del)

	m.SetVertexEdge(survivor, edgeSymOrg)
	m.SetFaceEdge(m.LFace(edgeSymOrg), edgeSymOrg)
	m.SetFaceEdge(m.LFace(edgeDst), edgeDst)

	m.freeVertex(dying)
	m.freePair(e)
}

// Delete is the inverse of Connect: if e.LFace != e.RFace it merges those
// faces into one; otherwise it splits the single face e bounds into two.
// Neither endpoint vertex is freed even if left with no other edges;
// Remove is responsible for vertex cleanup.
func (m *Mesh) Delete(e EdgeID) {
	se := Sym(e)
	pe := m.OPrev(e)
	pse := m.OPrev(se)
	// Splicing se's end first keeps e.LFace's id on a merge. Each splice
	// detaches one end of the pair onto a freshly minted vertex, and the
	// last one mints a face for the pair's own ring; those are freed here.
	if pse != se {
		m.Splice(pse, se)
		m.freeVertex(m.Org(se))
	}
	if pe != e {
		m.Splice(pe, e)
		m.freeVertex(m.Org(e))
	}
	if pe != e || pse != se {
		m.freeFace(m.LFace(e))
	}
	m.freePair(e)
}
