// Package region implements the sweep's active-region list: the ordered
// sequence of intervals of the sweep line, each strictly between two
// currently-live, upward-oriented polygon edges. Ordering and neighbor
// queries are backed by github.com/google/btree's generic BTreeG for
// O(log n) Find, paired with a container/list doubly-linked chain for
// O(1) Left/Right/InsertAfter once a region's position is known — the
// same split the sweep's own comment anticipates ("near-O(1) in practice
// because neighbors of the current event are always examined first").
package region

import (
	"container/list"
	"fmt"

	"github.com/google/btree"

	"github.com/gogpu/polytess/internal/geometry"
)

const degree = 32

// Bounds marks a region as one of the two permanent sentinels bracketing
// the sweep, or BoundsNone for an ordinary region.
type Bounds uint8

const (
	BoundsNone Bounds = iota
	BoundsLeft
	BoundsRight
)

// Source resolves a half-edge reference to its endpoints. The sweep
// passes its mesh (via a thin adapter) so region can order edges without
// importing the mesh package.
type Source interface {
	Org(edge int32) geometry.Point
	Dst(edge int32) geometry.Point
}

// Region is one interval of the sweep line. Edge is always oriented
// upward (Dst above Org). Fixedge marks a synthetic edge awaiting
// replacement; Dirty marks a region queued for re-examination this pass.
type Region struct {
	Edge    int32
	Winding int32
	Inside  bool
	Dirty   bool
	Bounds  Bounds
	Fixedge bool

	elem *list.Element
}

// List is the ordered active-region sequence for one tessellation pass.
type List struct {
	src  Source
	ll   *list.List
	tree *btree.BTreeG[*Region]
}

// New creates an empty active-region list reading edge geometry from src.
func New(src Source) *List {
	l := &List{src: src, ll: list.New()}
	l.tree = btree.NewG(degree, l.less)
	return l
}

func (l *List) less(a, b *Region) bool { return compareRegions(l.src, a, b) < 0 }

// Init seeds the list with the two sentinel regions whose edges lie just
// outside the polygon's bounding box, left and right. Callers must have
// already positioned the sweep event at the top of the bounds before
// building these, per spec: insertion order is only well-defined then.
func (l *List) Init(leftEdge, rightEdge int32) (left, right *Region) {
	left = &Region{Edge: leftEdge, Bounds: BoundsLeft}
	right = &Region{Edge: rightEdge, Bounds: BoundsRight}
	l.tree.ReplaceOrInsert(left)
	left.elem = l.ll.PushBack(left)
	l.tree.ReplaceOrInsert(right)
	right.elem = l.ll.InsertAfter(right, left.elem)
	return left, right
}

// predecessorInTree returns r's immediate predecessor in sweep order,
// using the tree rather than the (possibly not-yet-linked) list.
func (l *List) predecessorInTree(r *Region) *Region {
	var prev *Region
	l.tree.DescendLessOrEqual(r, func(item *Region) bool {
		if item == r {
			return true
		}
		prev = item
		return false
	})
	return prev
}

// Insert adds r in its correct sweep-order position.
func (l *List) Insert(r *Region) {
	l.tree.ReplaceOrInsert(r)
	if prev := l.predecessorInTree(r); prev != nil {
		r.elem = l.ll.InsertAfter(r, prev.elem)
	} else {
		r.elem = l.ll.PushFront(r)
	}
}

// InsertAfter adds r immediately after prev, which the caller asserts is
// already correctly positioned. Used on the sweep's hot path, where prev
// is already in hand and a full comparator-driven insert is unnecessary.
func (l *List) InsertAfter(prev, r *Region) {
	l.tree.ReplaceOrInsert(r)
	r.elem = l.ll.InsertAfter(r, prev.elem)
}

// Find returns the region whose interval is immediately to the left of
// the given upward-going edge.
func (l *List) Find(edge int32) *Region {
	q := &Region{Edge: edge}
	var found *Region
	l.tree.DescendLessOrEqual(q, func(item *Region) bool {
		found = item
		return false
	})
	return found
}

// Left and Right return r's neighbors, or nil at the list's ends. The
// two sentinel regions installed by Init guarantee a real region always
// has both neighbors present.
func (l *List) Left(r *Region) *Region {
	if p := r.elem.Prev(); p != nil {
		return p.Value.(*Region)
	}
	return nil
}

func (l *List) Right(r *Region) *Region {
	if n := r.elem.Next(); n != nil {
		return n.Value.(*Region)
	}
	return nil
}

// Remove deletes r from the list. Callers must nil the back-link on r's
// edge (the mesh's EdgePayload.Region field) before calling Remove, per
// spec.md's ownership rule that the edge's weak region reference is
// cleared before the region it names stops existing.
func (l *List) Remove(r *Region) {
	l.tree.Delete(r)
	l.ll.Remove(r.elem)
	r.elem = nil
}

// DebugCheck verifies the two invariants spec.md calls out: neighbors
// are strictly ordered, and every region's edge goes up (Dst above Org).
func (l *List) DebugCheck() error {
	for e := l.ll.Front(); e != nil; e = e.Next() {
		r := e.Value.(*Region)
		if r.Bounds == BoundsNone && !geometry.InTopOrHLeft(l.src.Dst(r.Edge), l.src.Org(r.Edge)) {
			return fmt.Errorf("region: edge %d does not go up (dst not above org)", r.Edge)
		}
		if nx := e.Next(); nx != nil {
			rn := nx.Value.(*Region)
			if compareRegions(l.src, r, rn) >= 0 {
				return fmt.Errorf("region: list out of order between edges %d and %d", r.Edge, rn.Edge)
			}
		}
	}
	return nil
}
