package mesh

import "github.com/gogpu/polytess/internal/geometry"

// Sym returns the other half of e's pair. Half-edge pairs are allocated
// as consecutive indices (2k, 2k+1), so flipping the low bit is the sym.
func Sym(e EdgeID) EdgeID { return e ^ 1 }

// Org returns e's origin vertex.
func (m *Mesh) Org(e EdgeID) VertexID { return m.edges[e].org }

// LFace returns the face on e's left.
func (m *Mesh) LFace(e EdgeID) FaceID { return m.edges[e].lface }

// ONext returns the next half-edge counter-clockwise around e.Org.
func (m *Mesh) ONext(e EdgeID) EdgeID { return m.edges[e].onext }

// LNext returns the next half-edge counter-clockwise around e.LFace.
func (m *Mesh) LNext(e EdgeID) EdgeID { return m.edges[e].lnext }

// Dst returns e's destination vertex: sym.org.
func (m *Mesh) Dst(e EdgeID) VertexID { return m.Org(Sym(e)) }

// RFace returns the face on e's right: sym.lface.
func (m *Mesh) RFace(e EdgeID) FaceID { return m.LFace(Sym(e)) }

// OPrev returns the previous half-edge clockwise around e.Org: sym.lnext.
func (m *Mesh) OPrev(e EdgeID) EdgeID { return m.LNext(Sym(e)) }

// LPrev returns the previous half-edge clockwise around e.LFace: onext.sym.
func (m *Mesh) LPrev(e EdgeID) EdgeID { return Sym(m.ONext(e)) }

// RNext returns oprev.sym.
func (m *Mesh) RNext(e EdgeID) EdgeID { return Sym(m.OPrev(e)) }

// RPrev returns sym.onext.
func (m *Mesh) RPrev(e EdgeID) EdgeID { return m.ONext(Sym(e)) }

// DNext returns rprev.sym.
func (m *Mesh) DNext(e EdgeID) EdgeID { return Sym(m.RPrev(e)) }

// DPrev returns lnext.sym.
func (m *Mesh) DPrev(e EdgeID) EdgeID { return Sym(m.LNext(e)) }

func (m *Mesh) setONext(e, v EdgeID) { m.edges[e].onext = v }
func (m *Mesh) setLNext(e, v EdgeID) { m.edges[e].lnext = v }
func (m *Mesh) setOrg(e EdgeID, v VertexID) {
	m.edges[e].org = v
	if v != NullVertex && m.verts[v].edge == NullEdge {
		m.verts[v].edge = e
	}
}
func (m *Mesh) setLFace(e EdgeID, f FaceID) {
	m.edges[e].lface = f
	if f != NullFace && m.faces[f].edge == NullEdge {
		m.faces[f].edge = e
	}
}

// VertexPoint returns v's point payload.
func (m *Mesh) VertexPoint(v VertexID) geometry.Point { return m.verts[v].point }

// SetVertexPoint sets v's point payload.
func (m *Mesh) SetVertexPoint(v VertexID, p geometry.Point) { m.verts[v].point = p }

// VertexEdge returns an arbitrary outgoing half-edge of v.
func (m *Mesh) VertexEdge(v VertexID) EdgeID { return m.verts[v].edge }

// SetVertexEdge overrides v's representative edge. Used after a
// destructive operation invalidates v's stored edge.
func (m *Mesh) SetVertexEdge(v VertexID, e EdgeID) { m.verts[v].edge = e }

// FaceInside returns f's inside payload.
func (m *Mesh) FaceInside(f FaceID) bool { return m.faces[f].inside }

// FaceAlive reports whether f is still a live face, i.e. has not been
// freed by a Delete that merged it into a neighbor. Callers that cache a
// FaceID across a Delete call (Connect's and Delete's own face-merge
// picks one of the two input faces' ids to survive, not necessarily the
// one the caller expects) must recheck this before trusting the id again.
func (m *Mesh) FaceAlive(f FaceID) bool { return m.faces[f].alive }

// SetFaceInside sets f's inside payload.
func (m *Mesh) SetFaceInside(f FaceID, inside bool) { m.faces[f].inside = inside }

// FaceEdge returns an arbitrary boundary half-edge of f.
func (m *Mesh) FaceEdge(f FaceID) EdgeID { return m.faces[f].edge }

// SetFaceEdge overrides f's representative edge.
func (m *Mesh) SetFaceEdge(f FaceID, e EdgeID) { m.faces[f].edge = e }

// EdgePayload returns e's winding/region payload.
func (m *Mesh) EdgePayload(e EdgeID) EdgePayload { return m.edges[e].payload }

// SetEdgePayload sets e's winding/region payload.
func (m *Mesh) SetEdgePayload(e EdgeID, p EdgePayload) { m.edges[e].payload = p }

// Winding returns e's winding number.
func (m *Mesh) Winding(e EdgeID) int32 { return m.edges[e].payload.Winding }

// SetWinding sets e's winding number.
func (m *Mesh) SetWinding(e EdgeID, w int32) { m.edges[e].payload.Winding = w }

// Region returns e's weak back-reference to its active region, or -1.
func (m *Mesh) Region(e EdgeID) int32 { return m.edges[e].payload.Region }

// SetRegion sets e's weak back-reference to its active region.
func (m *Mesh) SetRegion(e EdgeID, r int32) { m.edges[e].payload.Region = r }

// VertexView returns a snapshot of v's state, for diagnostics.
func (m *Mesh) VertexView(v VertexID) Vertex {
	s := m.verts[v]
	return Vertex{ID: s.id, Edge: s.edge, Point: s.point}
}

// FaceView returns a snapshot of f's state, for diagnostics.
func (m *Mesh) FaceView(f FaceID) Face {
	s := m.faces[f]
	return Face{ID: s.id, Edge: s.edge, Inside: s.inside}
}

// EdgeView returns a snapshot of e's state, for diagnostics.
func (m *Mesh) EdgeView(e EdgeID) Edge {
	s := m.edges[e]
	return Edge{
		ID:      m.pairs[pairIndex(e)].id,
		Sym:     Sym(e),
		Org:     s.org,
		LFace:   s.lface,
		ONext:   s.onext,
		LNext:   s.lnext,
		Payload: s.payload,
	}
}
