package polytess

import (
	"github.com/gogpu/polytess/internal/assemble"
	"github.com/gogpu/polytess/internal/convexmerge"
	"github.com/gogpu/polytess/internal/mesh"
	"github.com/gogpu/polytess/internal/sweep"
	"github.com/gogpu/polytess/internal/triangulate"
)

// Tessellator drives one polygon through the pipeline described in
// SPEC_FULL.md: load, sweep (unless the convex fast path applies), then,
// depending on Mode, triangulate and convex-merge, then assemble. It is not safe for
// concurrent use; create one per goroutine, or serialize calls to Make.
//
// The mesh is reused across calls via clear-and-rebuild rather than being
// freed per call, per spec.md §5's resource model.
type Tessellator struct {
	m    *mesh.Mesh
	opts Options
}

// New creates a Tessellator with default options (ModeMonotone, RuleOdd,
// no flags); call SetOptions before Make to change them.
func New() *Tessellator {
	return &Tessellator{m: mesh.New()}
}

// SetOptions configures mode, fill rule and output flags. Must be called
// before Make to take effect on that call.
func (t *Tessellator) SetOptions(o Options) { t.opts = o }

// SetListener installs l as the mesh's single listener for event types in
// mask, and cookie as the opaque value delivered with every notification.
// See Listener's doc comment for what a listener may and may not do.
func (t *Tessellator) SetListener(l Listener, mask EventType, cookie any) {
	t.m.SetListener(l, mask)
	t.m.SetCookie(cookie)
}

// Make tessellates polygon according to the Tessellator's current
// Options, with bounds used to place the sweep's sentinel edges. No
// errors cross this boundary: a failed or degenerate input yields a
// Polygon with Total == 0, per spec.md §7.
func (t *Tessellator) Make(polygon Polygon, bounds Bounds) Polygon {
	if bounds.W <= 0 || bounds.H <= 0 {
		return Polygon{}
	}

	t.m.Clear()
	if !load(t.m, polygon) {
		return Polygon{}
	}

	if polygon.Convex {
		markConvexInside(t.m, t.opts.Rule)
	} else {
		sw := sweep.New(t.m, sweepRule(t.opts.Rule))
		sw.Run(sweep.Bounds{X: bounds.X, Y: bounds.Y, W: bounds.W, H: bounds.H})
	}

	autoClosed := t.opts.Flags&AutoClosed != 0

	if t.opts.Mode == ModeMonotone {
		return toPolygon(assemble.Run(t.m, autoClosed), false)
	}

	triangulate.Run(t.m)
	if t.opts.Mode == ModeTriangulation {
		return toPolygon(assemble.Run(t.m, autoClosed), true)
	}

	convexmerge.Run(t.m)
	return toPolygon(assemble.Run(t.m, autoClosed), true)
}

func sweepRule(r Rule) sweep.Rule {
	if r == RuleNonZero {
		return sweep.RuleNonZero
	}
	return sweep.RuleOdd
}

// markConvexInside skips the sweep for an already-convex input: each
// contour produced exactly two faces (inside and outside) whose winding
// is already final, so insideness is a direct per-face rule lookup. The
// inside face is bounded by half-edges of winding +1 and the outside face
// by their syms at -1, which counts as winding 0.
func markConvexInside(m *mesh.Mesh, rule Rule) {
	for f := range m.Faces {
		e := m.FaceEdge(f)
		w := m.Winding(e)
		if w < 0 {
			w = 0
		}
		inside := sweepInsideFor(rule, w)
		m.SetFaceInside(f, inside)
	}
}

func sweepInsideFor(rule Rule, winding int32) bool {
	if rule == RuleOdd {
		return winding&1 != 0
	}
	return winding != 0
}

func toPolygon(r assemble.Result, convex bool) Polygon {
	pts := make([]Point, len(r.Points))
	for i, p := range r.Points {
		pts[i] = Point{X: p.X, Y: p.Y}
	}
	counts := make([]int, len(r.Counts))
	for i, c := range r.Counts {
		counts[i] = int(c)
	}
	return Polygon{Points: pts, Counts: counts, Total: r.Total, Convex: convex}
}
