// Package equeue implements the sweep's event queue: a min-priority queue
// of vertex references ordered by sweep order (y ascending, then x
// ascending), ties broken by insertion order so that events created
// during the sweep (edge splits, new intersection vertices) are
// deterministic relative to each other. It is backed by
// github.com/google/btree's generic BTreeG, the same ordered-tree
// approach the retrieved geom2d sweep-line fragment uses for its own
// event queue.
package equeue

import (
	"github.com/google/btree"

	"github.com/gogpu/polytess/internal/geometry"
)

// degree is the btree branching factor. 32 is the value google/btree's
// own examples default to; there is nothing sweep-specific about it.
const degree = 32

// Handle identifies a previously inserted item so it can be removed
// again before it would naturally be popped (used when a vertex is
// merged away by an intersection fix-up before its event fires).
type Handle struct {
	it item
}

type item struct {
	point geometry.Point
	seq   uint64
	value int32
}

func less(a, b item) bool {
	if !a.point.Eq(b.point) {
		return geometry.Less(a.point, b.point)
	}
	return a.seq < b.seq
}

// Queue is a min-priority queue of (Point, value) pairs. value is an
// opaque caller-defined reference (the sweep stores a mesh.VertexID in
// it); Queue never interprets it.
type Queue struct {
	tree *btree.BTreeG[item]
	seq  uint64
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{tree: btree.NewG(degree, less)}
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return q.tree.Len() }

// Insert adds a (point, value) pair, returning a Handle that can later be
// passed to Remove. Ties at the same point are broken by insertion order.
func (q *Queue) Insert(p geometry.Point, value int32) Handle {
	it := item{point: p, seq: q.seq, value: value}
	q.seq++
	q.tree.ReplaceOrInsert(it)
	return Handle{it: it}
}

// PeekMin returns the earliest pending event without removing it.
func (q *Queue) PeekMin() (p geometry.Point, value int32, ok bool) {
	it, ok := q.tree.Min()
	if !ok {
		return geometry.Point{}, 0, false
	}
	return it.point, it.value, true
}

// PopMin removes and returns the earliest pending event in sweep order.
func (q *Queue) PopMin() (p geometry.Point, value int32, ok bool) {
	it, ok := q.tree.DeleteMin()
	if !ok {
		return geometry.Point{}, 0, false
	}
	return it.point, it.value, true
}

// Remove deletes the event identified by h, if still present. It reports
// whether anything was removed.
func (q *Queue) Remove(h Handle) bool {
	_, ok := q.tree.Delete(h.it)
	return ok
}
