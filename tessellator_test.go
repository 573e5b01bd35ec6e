package polytess

import (
	"math"
	"testing"
)

// contourAreas returns the absolute shoelace area of each contour in p, in
// the order Counts lists them, stopping at the zero terminator.
func contourAreas(t *testing.T, p Polygon) []float64 {
	t.Helper()
	var areas []float64
	idx := 0
	for _, c := range p.Counts {
		if c == 0 {
			break
		}
		pts := p.Points[idx : idx+c]
		idx += c

		var area float64
		n := len(pts)
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%n]
			area += a.X*b.Y - b.X*a.Y
		}
		areas = append(areas, math.Abs(area)/2)
	}
	if idx != p.Total {
		t.Fatalf("counts sum %d does not match Total %d", idx, p.Total)
	}
	return areas
}

func totalArea(t *testing.T, p Polygon) float64 {
	t.Helper()
	var sum float64
	for _, a := range contourAreas(t, p) {
		sum += a
	}
	return sum
}

func square(x, y, w float64) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + w}, {x, y + w}}
}

func squareCW(x, y, w float64) []Point {
	return []Point{{x, y}, {x, y + w}, {x + w, y + w}, {x + w, y}}
}

const eps = 1e-6

func TestUnitSquareMonotone(t *testing.T) {
	tess := New()
	out := tess.Make(Polygon{
		Points: square(0, 0, 1),
		Counts: []int{4, 0},
		Total:  4,
	}, Bounds{X: 0, Y: 0, W: 1, H: 1})

	if out.Total == 0 {
		t.Fatalf("expected non-empty output")
	}
	area := totalArea(t, out)
	if math.Abs(area-1) > eps {
		t.Fatalf("area = %v, want 1", area)
	}
}

func TestUnitSquareTriangulation(t *testing.T) {
	tess := New()
	tess.SetOptions(Options{Mode: ModeTriangulation})
	out := tess.Make(Polygon{
		Points: square(0, 0, 1),
		Counts: []int{4, 0},
		Total:  4,
	}, Bounds{X: 0, Y: 0, W: 1, H: 1})

	if out.Total == 0 {
		t.Fatalf("expected non-empty output")
	}
	idx := 0
	for _, c := range out.Counts {
		if c == 0 {
			break
		}
		if c != 3 {
			t.Fatalf("triangulation mode produced a contour with %d vertices, want 3", c)
		}
		idx += c
	}
	area := totalArea(t, out)
	if math.Abs(area-1) > eps {
		t.Fatalf("area = %v, want 1", area)
	}
}

func TestUnitSquareConvexMerge(t *testing.T) {
	tess := New()
	tess.SetOptions(Options{Mode: ModeConvex})
	out := tess.Make(Polygon{
		Points: square(0, 0, 1),
		Counts: []int{4, 0},
		Total:  4,
	}, Bounds{X: 0, Y: 0, W: 1, H: 1})

	if !out.Convex {
		t.Fatalf("expected output to report Convex")
	}
	area := totalArea(t, out)
	if math.Abs(area-1) > eps {
		t.Fatalf("area = %v, want 1", area)
	}
}

func TestConvexFastPath(t *testing.T) {
	tess := New()
	tess.SetOptions(Options{Mode: ModeTriangulation})
	out := tess.Make(Polygon{
		Points: square(0, 0, 2),
		Counts: []int{4, 0},
		Total:  4,
		Convex: true,
	}, Bounds{X: 0, Y: 0, W: 2, H: 2})

	area := totalArea(t, out)
	if math.Abs(area-4) > eps {
		t.Fatalf("area = %v, want 4", area)
	}
}

func TestAnnulusFillRule(t *testing.T) {
	outer := square(0, 0, 4)
	inner := squareCW(1, 1, 2)

	pts := append(append([]Point{}, outer...), inner...)

	for _, rule := range []Rule{RuleOdd, RuleNonZero} {
		tess := New()
		tess.SetOptions(Options{Mode: ModeMonotone, Rule: rule})
		out := tess.Make(Polygon{
			Points: pts,
			Counts: []int{4, 4, 0},
			Total:  8,
		}, Bounds{X: 0, Y: 0, W: 4, H: 4})

		area := totalArea(t, out)
		if math.Abs(area-12) > eps {
			t.Fatalf("rule %v: area = %v, want 12 (outer 16 minus hole 4)", rule, area)
		}
	}
}

func TestDegenerateContourDropped(t *testing.T) {
	tess := New()
	out := tess.Make(Polygon{
		Points: []Point{{0, 0}, {1, 0}},
		Counts: []int{2, 0},
		Total:  2,
	}, Bounds{X: 0, Y: 0, W: 1, H: 1})

	if out.Total != 0 {
		t.Fatalf("expected degenerate input to produce an empty Polygon, got Total=%d", out.Total)
	}
}

func TestZeroBoundsRejected(t *testing.T) {
	tess := New()
	out := tess.Make(Polygon{
		Points: square(0, 0, 1),
		Counts: []int{4, 0},
		Total:  4,
	}, Bounds{X: 0, Y: 0, W: 0, H: 1})

	if out.Total != 0 {
		t.Fatalf("expected zero-width bounds to produce an empty Polygon, got Total=%d", out.Total)
	}
}

// TestCoincidentTrianglesFillRule exercises two identical, identically
// wound triangles stacked exactly on top of each other: every point in the
// triangle accumulates winding 2. Under the even-odd rule that is "outside"
// (2 is even), so the whole shape vanishes; under nonzero it is "inside",
// so the output area equals one triangle's area.
func TestCoincidentTrianglesFillRule(t *testing.T) {
	tri := []Point{{0, 0}, {2, 0}, {0, 2}}
	pts := append(append([]Point{}, tri...), tri...)
	bounds := Bounds{X: 0, Y: 0, W: 2, H: 2}

	oddTess := New()
	oddTess.SetOptions(Options{Mode: ModeMonotone, Rule: RuleOdd})
	oddOut := oddTess.Make(Polygon{Points: pts, Counts: []int{3, 3, 0}, Total: 6}, bounds)
	if oddOut.Total != 0 {
		t.Fatalf("even-odd rule: expected coincident same-winding triangles to cancel out, got area %v",
			totalArea(t, oddOut))
	}

	nzTess := New()
	nzTess.SetOptions(Options{Mode: ModeMonotone, Rule: RuleNonZero})
	nzOut := nzTess.Make(Polygon{Points: pts, Counts: []int{3, 3, 0}, Total: 6}, bounds)
	area := totalArea(t, nzOut)
	if math.Abs(area-2) > eps {
		t.Fatalf("nonzero rule: area = %v, want 2", area)
	}
}

// TestStaircaseMonotone runs an already y-monotone staircase contour
// through every mode and just checks the pipeline completes and preserves
// total area, since a staircase's boundary is exactly the shape the sweep
// is supposed to pass through with no numerical-recovery surgery needed.
func TestStaircaseMonotone(t *testing.T) {
	pts := []Point{
		{0, 0}, {3, 0}, {3, 1}, {2, 1}, {2, 2}, {1, 2}, {1, 3}, {0, 3},
	}
	bounds := Bounds{X: 0, Y: 0, W: 3, H: 3}
	want := 6.0 // shoelace area of the staircase outline above

	for _, mode := range []Mode{ModeMonotone, ModeTriangulation, ModeConvex} {
		tess := New()
		tess.SetOptions(Options{Mode: mode})
		out := tess.Make(Polygon{Points: pts, Counts: []int{len(pts), 0}, Total: len(pts)}, bounds)
		area := totalArea(t, out)
		if math.Abs(area-want) > eps {
			t.Fatalf("mode %v: area = %v, want %v", mode, area, want)
		}
	}
}

// TestSelfIntersectingBowtie exercises a classic figure-eight self
// intersection: two triangular lobes sharing only their center point,
// wound so the sweep must discover the crossing itself rather than being
// told about it. Both lobes are "inside" under both fill rules since each
// is separately wound once; this only checks the pipeline survives the
// crossing and doesn't fuse or drop a lobe.
func TestSelfIntersectingBowtie(t *testing.T) {
	pts := []Point{{0, 0}, {2, 2}, {2, 0}, {0, 2}}
	bounds := Bounds{X: 0, Y: 0, W: 2, H: 2}

	for _, mode := range []Mode{ModeMonotone, ModeTriangulation, ModeConvex} {
		tess := New()
		tess.SetOptions(Options{Mode: mode})
		out := tess.Make(Polygon{Points: pts, Counts: []int{4, 0}, Total: 4}, bounds)
		if out.Total == 0 {
			t.Fatalf("mode %v: expected non-empty output for bowtie", mode)
		}
		area := totalArea(t, out)
		if area <= 0 || area > 2 {
			t.Fatalf("mode %v: area = %v, want in (0, 2]", mode, area)
		}
	}
}

func TestAutoClosedDuplicatesFirstPoint(t *testing.T) {
	tess := New()
	tess.SetOptions(Options{Flags: AutoClosed})
	out := tess.Make(Polygon{
		Points: square(0, 0, 1),
		Counts: []int{4, 0},
		Total:  4,
	}, Bounds{X: 0, Y: 0, W: 1, H: 1})

	if len(out.Counts) < 1 || out.Counts[0] != 5 {
		t.Fatalf("AutoClosed: contour count = %v, want 5", out.Counts)
	}
	if out.Points[0] != out.Points[4] {
		t.Fatalf("AutoClosed: first and last point differ: %v vs %v", out.Points[0], out.Points[4])
	}
}
