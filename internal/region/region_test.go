package region

import (
	"testing"

	"github.com/gogpu/polytess/internal/geometry"
)

// fakeSrc is a minimal Source backed by a slice of (org, dst) pairs
// indexed by edge id, for exercising the region list without a mesh.
type fakeSrc struct {
	org, dst []geometry.Point
}

func (f *fakeSrc) add(org, dst geometry.Point) int32 {
	f.org = append(f.org, org)
	f.dst = append(f.dst, dst)
	return int32(len(f.org) - 1)
}

func (f *fakeSrc) Org(e int32) geometry.Point { return f.org[e] }
func (f *fakeSrc) Dst(e int32) geometry.Point { return f.dst[e] }

func newFixture() (*fakeSrc, *List, *Region, *Region) {
	src := &fakeSrc{}
	l := New(src)
	leftEdge := src.add(geometry.Point{X: -1000, Y: 1000}, geometry.Point{X: -1000, Y: -1000})
	rightEdge := src.add(geometry.Point{X: 1000, Y: 1000}, geometry.Point{X: 1000, Y: -1000})
	left, right := l.Init(leftEdge, rightEdge)
	return src, l, left, right
}

func TestInitOrdersSentinelsLeftAndRight(t *testing.T) {
	_, l, left, right := newFixture()
	if l.Left(left) != nil {
		t.Fatalf("left sentinel must have no left neighbor")
	}
	if l.Right(left) != right {
		t.Fatalf("left sentinel's right neighbor must be the right sentinel")
	}
	if l.Right(right) != nil {
		t.Fatalf("right sentinel must have no right neighbor")
	}
}

func TestInsertOrdersByEdgePosition(t *testing.T) {
	src, l, left, right := newFixture()

	// Three vertical-ish edges at x=-5, x=0, x=5, all spanning the same
	// y range as the sentinels.
	eLeft := src.add(geometry.Point{X: -5, Y: 10}, geometry.Point{X: -5, Y: -10})
	eMid := src.add(geometry.Point{X: 0, Y: 10}, geometry.Point{X: 0, Y: -10})
	eRight := src.add(geometry.Point{X: 5, Y: 10}, geometry.Point{X: 5, Y: -10})

	rMid := &Region{Edge: eMid}
	rLeft := &Region{Edge: eLeft}
	rRight := &Region{Edge: eRight}

	// Insert out of order to exercise the comparator-driven placement.
	l.Insert(rMid)
	l.Insert(rLeft)
	l.Insert(rRight)

	got := []*Region{}
	for r := l.Right(left); r != right; r = l.Right(r) {
		got = append(got, r)
	}
	want := []*Region{rLeft, rMid, rRight}
	if len(got) != len(want) {
		t.Fatalf("expected %d regions between sentinels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got edge %d, want edge %d", i, got[i].Edge, want[i].Edge)
		}
	}

	if err := l.DebugCheck(); err != nil {
		t.Fatalf("DebugCheck failed: %v", err)
	}
}

func TestInsertAfterPlacesImmediateNeighbor(t *testing.T) {
	src, l, left, _ := newFixture()
	eA := src.add(geometry.Point{X: -5, Y: 10}, geometry.Point{X: -5, Y: -10})
	eB := src.add(geometry.Point{X: 0, Y: 10}, geometry.Point{X: 0, Y: -10})

	rA := &Region{Edge: eA}
	rB := &Region{Edge: eB}

	l.InsertAfter(left, rA)
	l.InsertAfter(rA, rB)

	if l.Right(left) != rA {
		t.Fatalf("rA must follow the left sentinel")
	}
	if l.Right(rA) != rB {
		t.Fatalf("rB must follow rA")
	}
	if l.Left(rB) != rA {
		t.Fatalf("rA must precede rB")
	}
}

func TestFindReturnsRegionImmediatelyLeftOfEdge(t *testing.T) {
	src, l, left, right := newFixture()
	eA := src.add(geometry.Point{X: -5, Y: 10}, geometry.Point{X: -5, Y: -10})
	eB := src.add(geometry.Point{X: 5, Y: 10}, geometry.Point{X: 5, Y: -10})
	rA := &Region{Edge: eA}
	rB := &Region{Edge: eB}
	l.Insert(rA)
	l.Insert(rB)

	// A query edge at x=0 should find rA as its left-bounding region.
	eQuery := src.add(geometry.Point{X: 0, Y: 10}, geometry.Point{X: 0, Y: -10})
	if got := l.Find(eQuery); got != rA {
		t.Fatalf("Find(x=0): got edge %v, want rA (edge %d)", got, eA)
	}

	// A query edge left of every real region, but still inside the
	// sentinel bounds, should find the left sentinel.
	eFarLeft := src.add(geometry.Point{X: -500, Y: 10}, geometry.Point{X: -500, Y: -10})
	if got := l.Find(eFarLeft); got != left {
		t.Fatalf("Find(far left): got %v, want left sentinel", got)
	}
	_ = right
}

func TestRemoveUnlinksRegion(t *testing.T) {
	src, l, left, right := newFixture()
	eA := src.add(geometry.Point{X: -5, Y: 10}, geometry.Point{X: -5, Y: -10})
	eB := src.add(geometry.Point{X: 5, Y: 10}, geometry.Point{X: 5, Y: -10})
	rA := &Region{Edge: eA}
	rB := &Region{Edge: eB}
	l.Insert(rA)
	l.Insert(rB)

	l.Remove(rA)

	if l.Right(left) != rB {
		t.Fatalf("removing rA must leave rB as left sentinel's right neighbor")
	}
	if l.Find(eA) == rA {
		t.Fatalf("removed region must no longer be reachable via Find")
	}
}

func TestDebugCheckCatchesDownwardEdge(t *testing.T) {
	src, l, _, _ := newFixture()
	// org above dst: this edge goes down, violating the invariant.
	bad := src.add(geometry.Point{X: 0, Y: -10}, geometry.Point{X: 0, Y: 10})
	l.Insert(&Region{Edge: bad})

	if err := l.DebugCheck(); err == nil {
		t.Fatalf("expected DebugCheck to reject a downward-going edge")
	}
}
