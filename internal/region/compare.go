package region

import "github.com/gogpu/polytess/internal/geometry"

// sideOf returns the signed horizontal distance from p to the region edge
// edge, whose Dst is the upper endpoint and Org the lower one (region
// edges always go up).
func sideOf(src Source, edge int32, p geometry.Point) float64 {
	return geometry.ToEdgeDistanceH(p, src.Dst(edge), src.Org(edge))
}

// compareRegions implements spec.md §4.R's region comparator: two
// regions whose edges both go up are ordered left-to-right along the
// sweep line. Returns <0 if ra sorts left of rb, >0 if right, 0 if equal.
func compareRegions(src Source, ra, rb *Region) int {
	if ra == rb {
		return 0
	}
	da, db := src.Dst(ra.Edge), src.Dst(rb.Edge)
	oa, ob := src.Org(ra.Edge), src.Org(rb.Edge)

	if da.Eq(db) {
		if oa.Eq(ob) {
			return 0
		}
		if geometry.InTopOrHLeft(oa, ob) {
			// ra's origin (the "other endpoint") is topmost: test it
			// against rb's edge.
			return signOf(sideOf(src, rb.Edge, oa))
		}
		// rb's origin is topmost: test it against ra's edge, then
		// invert (we're asked for ra's ordering relative to rb).
		return -signOf(sideOf(src, ra.Edge, ob))
	}

	if geometry.InTopOrHLeft(da, db) {
		return signOf(sideOf(src, rb.Edge, da))
	}
	return -signOf(sideOf(src, ra.Edge, db))
}

func signOf(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
