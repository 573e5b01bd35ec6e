// Package sweep implements the Bentley-Ottmann horizontal sweep that
// turns an arbitrary (possibly self-intersecting) polygon already loaded
// into a mesh into one whose inside faces are all horizontally monotone,
// with correct inside marks and winding numbers. This is the state
// machine spec.md calls the heart of the system: event handling,
// intersection fixing and numerical-error recovery all live here.
package sweep

import (
	"github.com/gogpu/polytess/internal/equeue"
	"github.com/gogpu/polytess/internal/geometry"
	"github.com/gogpu/polytess/internal/mesh"
	"github.com/gogpu/polytess/internal/region"
)

// Rule selects how a face's accumulated winding number maps to "inside".
type Rule uint8

const (
	RuleOdd Rule = iota
	RuleNonZero
)

// Bounds is the caller-supplied bounding rectangle the sentinel edges are
// built just outside of.
type Bounds struct {
	X, Y, W, H float64
}

// Sweeper runs one sweep pass over a mesh already populated with the
// input polygon's edges (each contour a closed loop of half-edges,
// winding +1 or -1 per spec's convention that CCW contours add and CW
// contours subtract).
type Sweeper struct {
	m    *mesh.Mesh
	src  meshSrc
	rule Rule

	regions *region.List
	queue   *equeue.Queue

	event      mesh.VertexID
	eventPoint geometry.Point

	queuedAt map[mesh.VertexID]equeue.Handle
	slots    []*region.Region

	sentLeftEdge, sentRightEdge mesh.EdgeID
	sentLeft, sentRight         *region.Region

	dirty []*region.Region
}

// meshSrc adapts *mesh.Mesh to region.Source so the region package can
// order regions without importing mesh.
type meshSrc struct{ m *mesh.Mesh }

func (s meshSrc) Org(e int32) geometry.Point { return s.m.VertexPoint(s.m.Org(mesh.EdgeID(e))) }
func (s meshSrc) Dst(e int32) geometry.Point { return s.m.VertexPoint(s.m.Dst(mesh.EdgeID(e))) }

// New creates a sweep driver over m, which must already contain the
// input polygon's contours as closed edge loops.
func New(m *mesh.Mesh, rule Rule) *Sweeper {
	s := &Sweeper{
		m:        m,
		src:      meshSrc{m},
		rule:     rule,
		queue:    equeue.New(),
		queuedAt: make(map[mesh.VertexID]equeue.Handle),
	}
	s.regions = region.New(s.src)
	return s
}

// regionOf returns the active region e's weak back-pointer names, or nil.
func (s *Sweeper) regionOf(e mesh.EdgeID) *region.Region {
	idx := s.m.Region(e)
	if idx < 0 {
		return nil
	}
	return s.slots[idx]
}

// bindRegion records that r's left-bounding edge is e, and points e's weak
// back-reference at r.
func (s *Sweeper) bindRegion(e mesh.EdgeID, r *region.Region) {
	r.Edge = int32(e)
	idx := int32(len(s.slots))
	s.slots = append(s.slots, r)
	s.m.SetRegion(e, idx)
}

// unbindRegion clears e's weak back-reference. Must be called before the
// region naming e is removed from the active list, per spec.md §3's
// ownership rule.
func (s *Sweeper) unbindRegion(e mesh.EdgeID) {
	if idx := s.m.Region(e); idx >= 0 {
		s.slots[idx] = nil
	}
	s.m.SetRegion(e, -1)
}

func (s *Sweeper) removeRegion(r *region.Region) {
	s.unbindRegion(mesh.EdgeID(r.Edge))
	s.regions.Remove(r)
}

// enqueue pushes v into the event queue, recording its handle for later
// removal (coincident-point merging, degenerate collapse).
func (s *Sweeper) enqueue(v mesh.VertexID) {
	h := s.queue.Insert(s.m.VertexPoint(v), int32(v))
	s.queuedAt[v] = h
}

func (s *Sweeper) dequeue(v mesh.VertexID) {
	if h, ok := s.queuedAt[v]; ok {
		s.queue.Remove(h)
		delete(s.queuedAt, v)
	}
}

// Run drives the sweep to completion: removes degenerate edges, builds
// the event queue and active-region list, then processes events until
// the queue empties, finishing with degenerate cleanup.
func (s *Sweeper) Run(bounds Bounds) {
	s.removeDegenerateEdges()
	s.buildEventQueue()
	s.buildSentinels(bounds)

	events := 0
	for s.queue.Len() > 0 {
		_, vi, _ := s.queue.PopMin()
		v := mesh.VertexID(vi)
		delete(s.queuedAt, v)
		p := s.m.VertexPoint(v)

		// Merge coincident events: while the next event sits at exactly
		// the same point, splice its edge ring into v's and drop it.
		for s.queue.Len() > 0 {
			np, nvi, _ := s.queue.PeekMin()
			if !np.Eq(p) {
				break
			}
			s.queue.PopMin()
			nv := mesh.VertexID(nvi)
			delete(s.queuedAt, nv)
			if nv != v {
				s.m.Splice(s.m.VertexEdge(v), s.m.VertexEdge(nv))
			}
		}

		s.event = v
		s.eventPoint = p
		s.sweepEvent(v)
		events++
	}

	s.postprocess()
	slogger().Debug("sweep complete", "events", events, "rule", s.rule)
}

func insideFor(rule Rule, winding int32) bool {
	if rule == RuleOdd {
		return winding&1 != 0
	}
	return winding != 0
}
