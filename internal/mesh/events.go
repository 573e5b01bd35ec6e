package mesh

// EventType identifies a mesh mutation a Listener may be notified of.
type EventType uint32

const (
	EventEdgeInit EventType = 1 << iota
	EventEdgeExit
	EventEdgeSplit
	EventFaceInit
	EventFaceExit
	EventFaceMerge
	EventFaceSplit
	EventVertexInit
	EventVertexExit

	// EventAll matches every event type; pass it as a mask to observe
	// everything the mesh publishes.
	EventAll = EventEdgeInit | EventEdgeExit | EventEdgeSplit |
		EventFaceInit | EventFaceExit | EventFaceMerge | EventFaceSplit |
		EventVertexInit | EventVertexExit
)

// Listener observes mesh mutations. primary and secondary carry up to two
// subject references (an EdgeID, FaceID or VertexID depending on evt,
// packed as int32; the caller knows which from evt); secondary is -1 when
// not applicable. cookie is whatever opaque value was passed to
// SetListener.
//
// A Listener must not call back into the mesh to structurally mutate it
// (Splice, Split, Connect, Insert, Remove, Delete, MakeEdge, ...); it may
// only read or write entity payloads (Vertex.Point, Face.Inside,
// EdgePayload). The mesh itself copies winding onto the pair Split creates
// and Inside onto the face a Splice splits off, inline with the operation;
// the no-mutation rule above keeps notifications free of reentrancy
// concerns.
type Listener func(evt EventType, primary, secondary int32, cookie any)

// SetListener installs l as the mesh's single listener, notified only for
// event types present in mask. Pass a nil Listener to stop listening.
func (m *Mesh) SetListener(l Listener, mask EventType) {
	m.listener = l
	m.listenMask = mask
}

func (m *Mesh) emit(evt EventType, primary, secondary int32) {
	if m.listener == nil || m.listenMask&evt == 0 {
		return
	}
	m.listener(evt, primary, secondary, m.cookie)
}

// SetCookie sets the opaque value delivered to the listener on every
// notification.
func (m *Mesh) SetCookie(cookie any) { m.cookie = cookie }
