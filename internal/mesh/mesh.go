package mesh

import "github.com/gogpu/polytess/internal/geometry"

type vertexSlot struct {
	alive bool
	id    int32
	edge  EdgeID
	point geometry.Point
	prev  VertexID
	next  VertexID
}

type faceSlot struct {
	alive  bool
	id     int32
	edge   EdgeID
	inside bool
	prev   FaceID
	next   FaceID
}

// edgeSlot is one half-edge. Half-edges are allocated in pairs; the pair
// sharing edgeSlot's diagnostic id and free-list slot lives in Mesh.pairs,
// indexed by pairIndex(id) = id >> 1.
type edgeSlot struct {
	org     VertexID
	lface   FaceID
	onext   EdgeID
	lnext   EdgeID
	payload EdgePayload
}

// pairSlot tracks liveness and global iteration order for one half-edge
// pair. Freeing a pair is a single pool operation, per spec.md §3: "the
// two half-edges of a pair always share the same id and are allocated
// contiguously so that a pair can be freed atomically."
type pairSlot struct {
	alive bool
	id    int32
	prev  int32
	next  int32
}

// Mesh is the DCEL: three intrusive, pool-allocated collections (vertices,
// faces, half-edge pairs) plus a single installed event listener.
type Mesh struct {
	verts []vertexSlot
	faces []faceSlot
	edges []edgeSlot
	pairs []pairSlot

	freeVerts []VertexID
	freeFaces []FaceID
	freePairs []int32

	vertHead, vertTail VertexID
	faceHead, faceTail FaceID
	pairHead, pairTail int32

	nextVertStable int32
	nextFaceStable int32
	nextEdgeStable int32

	order InsertOrder

	listener   Listener
	listenMask EventType
	cookie     any
}

// New creates an empty mesh.
func New() *Mesh {
	m := &Mesh{}
	m.resetLists()
	return m
}

func (m *Mesh) resetLists() {
	m.vertHead, m.vertTail = NullVertex, NullVertex
	m.faceHead, m.faceTail = NullFace, NullFace
	m.pairHead, m.pairTail = -1, -1
}

// Clear resets the mesh to empty, returning every pool slot for reuse by
// the next tessellation. It does not shrink the underlying arrays.
func (m *Mesh) Clear() {
	m.verts = m.verts[:0]
	m.faces = m.faces[:0]
	m.edges = m.edges[:0]
	m.pairs = m.pairs[:0]
	m.freeVerts = m.freeVerts[:0]
	m.freeFaces = m.freeFaces[:0]
	m.freePairs = m.freePairs[:0]
	m.nextVertStable, m.nextFaceStable, m.nextEdgeStable = 0, 0, 0
	m.resetLists()
}

// SetOrder controls whether subsequently created vertices, faces and
// edge pairs are appended to the head or tail of their collection's
// iteration order.
func (m *Mesh) SetOrder(o InsertOrder) { m.order = o }

func pairIndex(e EdgeID) int32 { return int32(e) >> 1 }

// --- vertex pool ---

func (m *Mesh) allocVertex(p geometry.Point) VertexID {
	var id VertexID
	if n := len(m.freeVerts); n > 0 {
		id = m.freeVerts[n-1]
		m.freeVerts = m.freeVerts[:n-1]
		m.verts[id] = vertexSlot{alive: true, id: m.nextVertStable, edge: NullEdge, point: p}
	} else {
		id = VertexID(len(m.verts))
		m.verts = append(m.verts, vertexSlot{alive: true, id: m.nextVertStable, edge: NullEdge, point: p})
	}
	m.nextVertStable++
	m.linkVertex(id)
	m.emit(EventVertexInit, int32(id), -1)
	return id
}

func (m *Mesh) linkVertex(id VertexID) {
	s := &m.verts[id]
	if m.order == InsertHead {
		s.next = m.vertHead
		s.prev = NullVertex
		if m.vertHead != NullVertex {
			m.verts[m.vertHead].prev = id
		}
		m.vertHead = id
		if m.vertTail == NullVertex {
			m.vertTail = id
		}
	} else {
		s.prev = m.vertTail
		s.next = NullVertex
		if m.vertTail != NullVertex {
			m.verts[m.vertTail].next = id
		}
		m.vertTail = id
		if m.vertHead == NullVertex {
			m.vertHead = id
		}
	}
}

func (m *Mesh) unlinkVertex(id VertexID) {
	s := &m.verts[id]
	if s.prev != NullVertex {
		m.verts[s.prev].next = s.next
	} else {
		m.vertHead = s.next
	}
	if s.next != NullVertex {
		m.verts[s.next].prev = s.prev
	} else {
		m.vertTail = s.prev
	}
}

func (m *Mesh) freeVertex(id VertexID) {
	m.emit(EventVertexExit, int32(id), -1)
	m.unlinkVertex(id)
	m.verts[id].alive = false
	m.freeVerts = append(m.freeVerts, id)
}

// --- face pool ---

func (m *Mesh) allocFace() FaceID {
	var id FaceID
	if n := len(m.freeFaces); n > 0 {
		id = m.freeFaces[n-1]
		m.freeFaces = m.freeFaces[:n-1]
		m.faces[id] = faceSlot{alive: true, id: m.nextFaceStable, edge: NullEdge}
	} else {
		id = FaceID(len(m.faces))
		m.faces = append(m.faces, faceSlot{alive: true, id: m.nextFaceStable, edge: NullEdge})
	}
	m.nextFaceStable++
	m.linkFace(id)
	m.emit(EventFaceInit, int32(id), -1)
	return id
}

func (m *Mesh) linkFace(id FaceID) {
	s := &m.faces[id]
	if m.order == InsertHead {
		s.next = m.faceHead
		s.prev = NullFace
		if m.faceHead != NullFace {
			m.faces[m.faceHead].prev = id
		}
		m.faceHead = id
		if m.faceTail == NullFace {
			m.faceTail = id
		}
	} else {
		s.prev = m.faceTail
		s.next = NullFace
		if m.faceTail != NullFace {
			m.faces[m.faceTail].next = id
		}
		m.faceTail = id
		if m.faceHead == NullFace {
			m.faceHead = id
		}
	}
}

func (m *Mesh) unlinkFace(id FaceID) {
	s := &m.faces[id]
	if s.prev != NullFace {
		m.faces[s.prev].next = s.next
	} else {
		m.faceHead = s.next
	}
	if s.next != NullFace {
		m.faces[s.next].prev = s.prev
	} else {
		m.faceTail = s.prev
	}
}

func (m *Mesh) freeFace(id FaceID) {
	m.emit(EventFaceExit, int32(id), -1)
	m.unlinkFace(id)
	m.faces[id].alive = false
	m.freeFaces = append(m.freeFaces, id)
}

// --- edge-pair pool ---

// allocPair allocates a fresh half-edge pair (2k, 2k+1) and returns the
// first half's EdgeID; its sym is the second half.
func (m *Mesh) allocPair() EdgeID {
	var k int32
	if n := len(m.freePairs); n > 0 {
		k = m.freePairs[n-1]
		m.freePairs = m.freePairs[:n-1]
		m.pairs[k] = pairSlot{alive: true, id: m.nextEdgeStable}
		m.edges[2*k] = edgeSlot{org: NullVertex, lface: NullFace, onext: NullEdge, lnext: NullEdge, payload: EdgePayload{Region: -1}}
		m.edges[2*k+1] = edgeSlot{org: NullVertex, lface: NullFace, onext: NullEdge, lnext: NullEdge, payload: EdgePayload{Region: -1}}
	} else {
		k = int32(len(m.pairs))
		m.pairs = append(m.pairs, pairSlot{alive: true, id: m.nextEdgeStable})
		m.edges = append(m.edges,
			edgeSlot{org: NullVertex, lface: NullFace, onext: NullEdge, lnext: NullEdge, payload: EdgePayload{Region: -1}},
			edgeSlot{org: NullVertex, lface: NullFace, onext: NullEdge, lnext: NullEdge, payload: EdgePayload{Region: -1}},
		)
	}
	m.nextEdgeStable++
	m.linkPair(k)
	e := EdgeID(2 * k)
	m.emit(EventEdgeInit, int32(e), int32(Sym(e)))
	return e
}

func (m *Mesh) linkPair(k int32) {
	s := &m.pairs[k]
	if m.order == InsertHead {
		s.next = m.pairHead
		s.prev = -1
		if m.pairHead != -1 {
			m.pairs[m.pairHead].prev = k
		}
		m.pairHead = k
		if m.pairTail == -1 {
			m.pairTail = k
		}
	} else {
		s.prev = m.pairTail
		s.next = -1
		if m.pairTail != -1 {
			m.pairs[m.pairTail].next = k
		}
		m.pairTail = k
		if m.pairHead == -1 {
			m.pairHead = k
		}
	}
}

func (m *Mesh) unlinkPair(k int32) {
	s := &m.pairs[k]
	if s.prev != -1 {
		m.pairs[s.prev].next = s.next
	} else {
		m.pairHead = s.next
	}
	if s.next != -1 {
		m.pairs[s.next].prev = s.prev
	} else {
		m.pairTail = s.prev
	}
}

func (m *Mesh) freePair(e EdgeID) {
	k := pairIndex(e)
	m.emit(EventEdgeExit, int32(e), int32(Sym(e)))
	m.unlinkPair(k)
	m.pairs[k].alive = false
	m.freePairs = append(m.freePairs, k)
}

// --- diagnostic ids ---

// VertexStableID, FaceStableID, EdgeStableID return the monotonic
// diagnostic id assigned to an entity at allocation time, for logging and
// debugging only; they carry no structural meaning.
func (m *Mesh) VertexStableID(v VertexID) int32 { return m.verts[v].id }
func (m *Mesh) FaceStableID(f FaceID) int32     { return m.faces[f].id }
func (m *Mesh) EdgeStableID(e EdgeID) int32     { return m.pairs[pairIndex(e)].id }
