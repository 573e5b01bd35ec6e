package polytess

import "github.com/gogpu/polytess/internal/mesh"

// EventType identifies a mesh mutation a Listener may be notified of.
// These are the internal mesh's own event bits, re-exported because a
// Listener's primary/secondary references are internal entity ids whose
// meaning only makes sense relative to them.
type EventType = mesh.EventType

const (
	EventEdgeInit   = mesh.EventEdgeInit
	EventEdgeExit   = mesh.EventEdgeExit
	EventEdgeSplit  = mesh.EventEdgeSplit
	EventFaceInit   = mesh.EventFaceInit
	EventFaceExit   = mesh.EventFaceExit
	EventFaceMerge  = mesh.EventFaceMerge
	EventFaceSplit  = mesh.EventFaceSplit
	EventVertexInit = mesh.EventVertexInit
	EventVertexExit = mesh.EventVertexExit
	EventAll        = mesh.EventAll
)

// Listener observes mesh mutations during Make. See mesh.Listener for the
// exact meaning of primary/secondary/cookie; a Listener must not call back
// into the tessellator or otherwise structurally mutate the mesh.
type Listener = mesh.Listener
