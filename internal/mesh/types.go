// Package mesh implements the Guibas-Stolfi-style doubly-connected edge
// list (DCEL) the sweep and triangulation stages operate on. Entities
// live in fixed-size, index-addressed pools rather than behind pointers:
// an edge's reference to its sym, its origin, and its left face are all
// plain int32 indices into the mesh's own slices. This sidesteps the
// cyclic-ownership problem a pointer-based DCEL has in a single-owner
// language, the same way github.com/gogpu/gg's internal/raster package
// links its active-edge table with Prev/Next int32 indices instead of
// pointers.
package mesh

import "github.com/gogpu/polytess/internal/geometry"

// VertexID, FaceID and EdgeID are indices into the mesh's pools. Null is
// represented by -1.
type (
	VertexID int32
	FaceID   int32
	EdgeID   int32
)

// NullVertex, NullFace and NullEdge are the null references for each kind.
const (
	NullVertex VertexID = -1
	NullFace   FaceID   = -1
	NullEdge   EdgeID   = -1
)

// InsertOrder controls which end of a collection's iteration order newly
// created entities are added to. The sweep sets this to InsertHead before
// operations that must not be revisited by the current pass, and InsertTail
// otherwise (the default).
type InsertOrder uint8

const (
	InsertTail InsertOrder = iota
	InsertHead
)

// EdgePayload is the per-half-edge user data the sweep and triangulator
// attach to mesh edges: a signed winding number and a weak, opaque back
// reference to the active region watching this edge (owned and
// interpreted by internal/region; the mesh only stores and clears it).
type EdgePayload struct {
	Winding int32
	Region  int32 // -1 when no active region references this edge
}

// Vertex is a read-only snapshot of a vertex's externally visible state.
type Vertex struct {
	ID    int32
	Edge  EdgeID
	Point geometry.Point
}

// Face is a read-only snapshot of a face's externally visible state.
type Face struct {
	ID     int32
	Edge   EdgeID
	Inside bool
}

// Edge is a read-only snapshot of a half-edge's externally visible state.
type Edge struct {
	ID      int32
	Sym     EdgeID
	Org     VertexID
	LFace   FaceID
	ONext   EdgeID
	LNext   EdgeID
	Payload EdgePayload
}
