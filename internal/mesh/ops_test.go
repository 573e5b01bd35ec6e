package mesh

import (
	"math"
	"testing"

	"github.com/gogpu/polytess/internal/geometry"
)

func checkOrbit(t *testing.T, m *Mesh, name string, e EdgeID, next func(EdgeID) EdgeID) {
	t.Helper()
	cur := e
	for i := 0; i < 64; i++ {
		cur = next(cur)
		if cur == e {
			return
		}
	}
	t.Fatalf("%s orbit starting at %d did not close within 64 steps", name, e)
}

func TestMakeEdgeInvariants(t *testing.T) {
	m := New()
	e := m.MakeEdge()
	se := Sym(e)

	if Sym(se) != e {
		t.Fatalf("sym.sym != self")
	}
	if m.Org(e) == m.Org(se) {
		t.Fatalf("isolated edge must have two distinct endpoints")
	}
	if m.LFace(e) != m.LFace(se) {
		t.Fatalf("isolated edge must share one face on both sides")
	}
	if m.Dst(e) != m.Org(se) {
		t.Fatalf("Dst(e) must equal Org(Sym(e))")
	}
	checkOrbit(t, m, "onext", e, m.ONext)
	checkOrbit(t, m, "lnext", e, m.LNext)
}

func TestMakeLoopEdgeInvariants(t *testing.T) {
	m := New()
	e := m.MakeLoopEdge(true)
	se := Sym(e)

	if m.Org(e) != m.Org(se) {
		t.Fatalf("loop edge must share one vertex")
	}
	if m.LFace(e) == m.LFace(se) {
		t.Fatalf("loop edge must bound two distinct faces")
	}
	if m.LNext(e) != e || m.LNext(se) != se {
		t.Fatalf("loop edge's half-edges must each solely bound their face")
	}
}

func TestSplitPreservesTopology(t *testing.T) {
	m := New()
	e := m.MakeEdge()
	origDst := m.Dst(e)
	lf := m.LFace(e)
	rf := m.RFace(e)

	enew := m.Split(e)

	if m.Dst(e) != m.Org(enew) {
		t.Fatalf("e's new destination must be enew's origin")
	}
	if m.Dst(enew) != origDst {
		t.Fatalf("enew's destination must be e's old destination")
	}
	if m.LFace(enew) != lf {
		t.Fatalf("enew must inherit e's left face")
	}
	if m.RFace(enew) != rf {
		t.Fatalf("enew must inherit e's right face")
	}
	if Sym(Sym(enew)) != enew {
		t.Fatalf("sym.sym != self after split")
	}
	checkOrbit(t, m, "onext after split", e, m.ONext)
	checkOrbit(t, m, "lnext after split", e, m.LNext)
}

func TestSpliceIsSelfInverse(t *testing.T) {
	m := New()
	a := m.MakeEdge()
	b := m.MakeEdge()

	aOrgBefore := m.Org(a)
	bOrgBefore := m.Org(b)

	m.Splice(a, b)
	if m.Org(a) != m.Org(b) {
		t.Fatalf("splice of two distinct rings must unify their origins")
	}

	m.Splice(a, b)
	if m.Org(a) != aOrgBefore {
		t.Fatalf("second splice must restore a's original vertex")
	}
	_ = bOrgBefore
}

// buildPath creates a 3-edge open path O->A->B->C via MakeEdge+Append,
// which (before any Connect closes the loop) bounds a single unbounded
// face on both sides, per Euler's formula for a tree (V-E+F=2).
func buildPath(m *Mesh) (e1, e2, e3 EdgeID) {
	e1 = m.MakeEdge()
	e2 = m.Append(e1)
	e3 = m.Append(e2)
	return
}

func TestConnectSplitsSharedFace(t *testing.T) {
	m := New()
	e1, _, e3 := buildPath(m)
	before := m.LFace(e1)
	if m.LFace(e3) != before {
		t.Fatalf("precondition: the open path must bound one face throughout")
	}

	// Close the path into a quad: connect C back to O.
	enew := m.Connect(e3, e1)

	if m.LFace(enew) != before {
		t.Fatalf("connect's new edge must keep a's left face")
	}
	if m.RFace(enew) == before {
		t.Fatalf("closing the loop must split it into two distinct faces")
	}
	checkOrbit(t, m, "onext after connect", e1, m.ONext)
	checkOrbit(t, m, "lnext after connect", e1, m.LNext)
}

func TestDeleteUndoesConnect(t *testing.T) {
	m := New()
	e1, _, e3 := buildPath(m)
	before := m.LFace(e1)

	enew := m.Connect(e3, e1)
	if m.LFace(enew) == m.RFace(enew) {
		t.Fatalf("precondition: connect should have split the face")
	}

	m.Delete(enew)
	if m.LFace(e1) != before || m.LFace(e3) != before {
		t.Fatalf("deleting the connecting edge should restore a single shared face")
	}
	checkOrbit(t, m, "onext after delete", e1, m.ONext)
	checkOrbit(t, m, "lnext after delete", e1, m.LNext)
}

func TestInsertAndRemoveRoundTrip(t *testing.T) {
	m := New()
	a := m.MakeEdge()
	b := m.MakeEdge()

	enew := m.Insert(a, b)
	if m.Org(enew) != m.Dst(a) {
		t.Fatalf("insert's new edge must originate at a.Dst")
	}

	m.Remove(enew)
	checkOrbit(t, m, "onext after remove", a, m.ONext)
	checkOrbit(t, m, "lnext after remove", a, m.LNext)
}

// TestRemoveCollapsesDuplicatePointWithoutMergingFaces builds a contour
// with one interior duplicate point (a zero-length edge between two real,
// already-distinct inside/outside faces — the case spec.md's "at least
// three distinct vertices after degenerate-edge removal" rule exists for)
// and checks that removing it shrinks the ring without fusing the two
// faces on either side of it.
func TestRemoveCollapsesDuplicatePointWithoutMergingFaces(t *testing.T) {
	m := New()
	pts := []geometry.Point{{0, 0}, {1, 0}, {1, 0}, {2, 0}, {0, 1}}

	first := m.MakeEdge()
	m.SetVertexPoint(m.Org(first), pts[0])
	m.SetVertexPoint(m.Dst(first), pts[1])

	prev := first
	for i := 2; i < len(pts); i++ {
		e := m.Append(prev)
		m.SetVertexPoint(m.Dst(e), pts[i])
		prev = e
	}
	last := m.Connect(prev, first)

	a := m.LFace(last)
	b := m.LFace(Sym(last))
	var signedArea float64
	for e, start := last, last; ; {
		p0 := m.VertexPoint(m.Org(e))
		p1 := m.VertexPoint(m.Dst(e))
		signedArea += p0.X*p1.Y - p1.X*p0.Y
		e = m.LNext(e)
		if e == start {
			break
		}
	}
	inside, outside := a, b
	if signedArea < 0 {
		inside, outside = b, a
	}
	m.SetFaceInside(inside, true)
	m.SetFaceEdge(inside, last)

	var dup EdgeID
	found := false
	for e, start := m.FaceEdge(inside), m.FaceEdge(inside); ; {
		if m.VertexPoint(m.Org(e)).Eq(m.VertexPoint(m.Dst(e))) {
			dup, found = e, true
			break
		}
		e = m.LNext(e)
		if e == start {
			break
		}
	}
	if !found {
		t.Fatalf("did not find the duplicate-point edge")
	}

	m.Remove(dup)

	if !m.FaceAlive(inside) || !m.FaceAlive(outside) {
		t.Fatalf("Remove must not free either face: inside alive=%v outside alive=%v",
			m.FaceAlive(inside), m.FaceAlive(outside))
	}
	if inside == outside {
		t.Fatalf("inside and outside face ids must remain distinct")
	}

	ring := []EdgeID{m.FaceEdge(inside)}
	for e := m.LNext(ring[0]); e != ring[0]; e = m.LNext(e) {
		ring = append(ring, e)
	}
	if len(ring) != 4 {
		t.Fatalf("ring length after collapsing the duplicate point = %d, want 4", len(ring))
	}

	var area float64
	for _, e := range ring {
		p0 := m.VertexPoint(m.Org(e))
		p1 := m.VertexPoint(m.Dst(e))
		area += p0.X*p1.Y - p1.X*p0.Y
	}
	area = math.Abs(area) / 2
	if math.Abs(area-1) > 1e-9 {
		t.Fatalf("area = %v, want 1", area)
	}
}

func TestEdgeStableIDPersistsAcrossSplit(t *testing.T) {
	m := New()
	e := m.MakeEdge()
	id := m.EdgeStableID(e)
	m.Split(e)
	if m.EdgeStableID(e) != id {
		t.Fatalf("splitting e must not change e's own stable id")
	}
}

func TestListenerObservesSplitEvents(t *testing.T) {
	m := New()
	var sawSplit bool
	m.SetListener(func(evt EventType, primary, secondary int32, cookie any) {
		if evt == EventEdgeSplit {
			sawSplit = true
		}
	}, EventAll)

	e := m.MakeEdge()
	m.Split(e)

	if !sawSplit {
		t.Fatalf("expected an EventEdgeSplit notification")
	}
}
