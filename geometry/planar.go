package geometry

import (
	"math"
	"sort"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// PlanarEngine is the default, pure-Go geometry engine. It nodes the
// input segments at every crossing, prunes dangling edges, and walks
// the planar arrangement with an angle-sorted traversal that visits
// each bounded face exactly once.
type PlanarEngine struct {
	// Snap is the coordinate quantum used to merge nearly-identical
	// vertices. CAD exports round coordinates aggressively enough that
	// exact comparison would split vertices that are meant to meet.
	Snap float64
}

// NewEngine returns a PlanarEngine with the default snap tolerance.
func NewEngine() *PlanarEngine {
	return &PlanarEngine{Snap: 1e-6}
}

// Repair returns the closest valid simple rings for the given ring.
// Simple rings pass through unchanged (closed). Self-intersecting rings
// are rebuilt by polygonizing their own edges; the resulting faces are
// returned largest first.
func (e *PlanarEngine) Repair(ring Ring) []Ring {
	r := ring.CollapseDuplicates()
	if r.VertexCount() < 3 {
		return nil
	}
	closed := r.Close()
	if closed.IsSimple() {
		return []Ring{closed}
	}

	faces := e.Polygonize(closed.Segments())
	sort.Slice(faces, func(i, j int) bool {
		return faces[i].Area() > faces[j].Area()
	})
	return faces
}

// Polygonize merges the segments into a planar arrangement and returns
// all bounded faces as closed rings. Dangling edges and isolated
// segments contribute nothing.
func (e *PlanarEngine) Polygonize(segments []model.LineSegment) []Ring {
	g := newPlanarGraph(e.Snap)
	for _, s := range nodeSegments(segments) {
		g.addSegment(s)
	}
	g.pruneDangles()
	return g.faces()
}

// nodeSegments splits every segment at its intersections with the
// others, so the resulting set only meets at shared endpoints. The
// pairwise pass is quadratic, which is acceptable at the segment counts
// a single plan sheet produces.
func nodeSegments(segments []model.LineSegment) []model.LineSegment {
	segs := make([]model.LineSegment, 0, len(segments))
	for _, s := range segments {
		if s.P1 != s.P2 {
			segs = append(segs, s)
		}
	}

	cuts := make([][]model.Point, len(segs))
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if p, ok := segmentIntersection(segs[i], segs[j]); ok {
				cuts[i] = append(cuts[i], p)
				cuts[j] = append(cuts[j], p)
				continue
			}
			if segmentsOverlap(segs[i], segs[j]) {
				// Collinear overlap: cut each segment at the other's
				// endpoints that fall inside it.
				for _, p := range []model.Point{segs[j].P1, segs[j].P2} {
					if pointOnSegment(p, segs[i]) {
						cuts[i] = append(cuts[i], p)
					}
				}
				for _, p := range []model.Point{segs[i].P1, segs[i].P2} {
					if pointOnSegment(p, segs[j]) {
						cuts[j] = append(cuts[j], p)
					}
				}
			}
		}
	}

	var out []model.LineSegment
	for i, s := range segs {
		out = append(out, splitSegment(s, cuts[i])...)
	}
	return out
}

// splitSegment cuts s at every listed point, ordered along the segment.
func splitSegment(s model.LineSegment, points []model.Point) []model.LineSegment {
	if len(points) == 0 {
		return []model.LineSegment{s}
	}

	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	param := func(p model.Point) float64 {
		if math.Abs(dx) >= math.Abs(dy) {
			if dx == 0 {
				return 0
			}
			return (p.X - s.P1.X) / dx
		}
		return (p.Y - s.P1.Y) / dy
	}

	type cut struct {
		t float64
		p model.Point
	}
	cutsAt := []cut{{0, s.P1}, {1, s.P2}}
	for _, p := range points {
		t := param(p)
		if t > intersectEps && t < 1-intersectEps {
			cutsAt = append(cutsAt, cut{t, p})
		}
	}
	sort.Slice(cutsAt, func(i, j int) bool { return cutsAt[i].t < cutsAt[j].t })

	var out []model.LineSegment
	for i := 0; i+1 < len(cutsAt); i++ {
		a, b := cutsAt[i].p, cutsAt[i+1].p
		if a != b {
			out = append(out, model.LineSegment{P1: a, P2: b})
		}
	}
	return out
}

// planarGraph is the noded arrangement: quantized vertices with
// angle-sorted adjacency.
type planarGraph struct {
	snap     float64
	verts    []model.Point
	index    map[[2]int64]int
	adj      map[int][]int
	edgeSeen map[[2]int]bool
}

func newPlanarGraph(snap float64) *planarGraph {
	return &planarGraph{
		snap:     snap,
		index:    make(map[[2]int64]int),
		adj:      make(map[int][]int),
		edgeSeen: make(map[[2]int]bool),
	}
}

func (g *planarGraph) vertex(p model.Point) int {
	key := [2]int64{
		int64(math.Round(p.X / g.snap)),
		int64(math.Round(p.Y / g.snap)),
	}
	if i, ok := g.index[key]; ok {
		return i
	}
	i := len(g.verts)
	g.verts = append(g.verts, p)
	g.index[key] = i
	return i
}

func (g *planarGraph) addSegment(s model.LineSegment) {
	u := g.vertex(s.P1)
	v := g.vertex(s.P2)
	if u == v {
		return
	}
	lo, hi := u, v
	if lo > hi {
		lo, hi = hi, lo
	}
	if g.edgeSeen[[2]int{lo, hi}] {
		return
	}
	g.edgeSeen[[2]int{lo, hi}] = true
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
}

// pruneDangles repeatedly removes degree-1 vertices so spur edges never
// take part in a face walk.
func (g *planarGraph) pruneDangles() {
	for {
		var removed bool
		for v, ns := range g.adj {
			if len(ns) != 1 {
				continue
			}
			u := ns[0]
			delete(g.adj, v)
			g.adj[u] = removeNeighbor(g.adj[u], v)
			if len(g.adj[u]) == 0 {
				delete(g.adj, u)
			}
			removed = true
		}
		if !removed {
			return
		}
	}
}

func removeNeighbor(ns []int, v int) []int {
	out := ns[:0]
	for _, n := range ns {
		if n != v {
			out = append(out, n)
		}
	}
	return out
}

// faces walks every directed edge once. At each vertex the traversal
// leaves along the edge that is the clockwise predecessor of the arrival
// direction in counterclockwise angular order, which traces bounded
// faces counterclockwise and the unbounded face clockwise. Faces with
// positive signed area are the bounded ones.
func (g *planarGraph) faces() []Ring {
	for v := range g.adj {
		g.sortNeighbors(v)
	}

	visited := make(map[[2]int]bool)
	var rings []Ring

	// Deterministic order keeps face output stable run to run.
	var starts []int
	for v := range g.adj {
		starts = append(starts, v)
	}
	sort.Ints(starts)

	for _, u := range starts {
		for _, v := range g.adj[u] {
			if visited[[2]int{u, v}] {
				continue
			}
			ring, ok := g.walkFace(u, v, visited)
			if !ok {
				continue
			}
			if ring.SignedArea() > intersectEps {
				rings = append(rings, ring.Close())
			}
		}
	}
	return rings
}

func (g *planarGraph) sortNeighbors(v int) {
	p := g.verts[v]
	ns := g.adj[v]
	sort.Slice(ns, func(i, j int) bool {
		a := g.verts[ns[i]]
		b := g.verts[ns[j]]
		return math.Atan2(a.Y-p.Y, a.X-p.X) < math.Atan2(b.Y-p.Y, b.X-p.X)
	})
}

func (g *planarGraph) walkFace(startU, startV int, visited map[[2]int]bool) (Ring, bool) {
	var ring Ring
	u, v := startU, startV

	// len(edgeSeen)*2+1 bounds any legal walk; hitting it means the
	// arrangement was degenerate.
	limit := len(g.edgeSeen)*2 + 1

	for step := 0; step < limit; step++ {
		visited[[2]int{u, v}] = true
		ring = append(ring, g.verts[u])

		next, ok := g.turn(u, v)
		if !ok {
			return nil, false
		}
		u, v = v, next

		if u == startU && v == startV {
			return ring, len(ring) >= 3
		}
	}
	return nil, false
}

// turn picks the outgoing edge at v for a walk arriving from u.
func (g *planarGraph) turn(u, v int) (int, bool) {
	ns := g.adj[v]
	for i, n := range ns {
		if n == u {
			return ns[(i-1+len(ns))%len(ns)], true
		}
	}
	return 0, false
}
