// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package polygon

import (
	"math"
	"sort"
)

// Point2 is a point in the view plane.
type Point2 struct {
	X, Y float64
}

func (p Point2) sub(q Point2) Point2 { return Point2{p.X - q.X, p.Y - q.Y} }
func (p Point2) add(q Point2) Point2 { return Point2{p.X + q.X, p.Y + q.Y} }
func (p Point2) mul(s float64) Point2 {
	return Point2{p.X * s, p.Y * s}
}

func cross2(a, b Point2) float64 { return a.X*b.Y - a.Y*b.X }
func dot2(a, b Point2) float64   { return a.X*b.X + a.Y*b.Y }

// Ring is a closed view-plane contour used as clipper input and output.
type Ring struct {
	Points []Point2
	Hole   bool
}

// SignedArea returns the shoelace area, positive for counter-clockwise rings.
func (r Ring) SignedArea() float64 {
	n := len(r.Points)
	if n < 3 {
		return 0
	}
	var a float64
	for i := 0; i < n; i++ {
		p, q := r.Points[i], r.Points[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Clipper computes boolean operations between two polygons given as view
// plane rings. Region membership follows the even-odd rule over all rings
// of a polygon.
type Clipper interface {
	Clip(op ClipOp, subject, clip []Ring) []Ring
}

// FloatClipper is a self-contained Clipper. It works directly on float64
// coordinates: every edge is split at its intersections with every other
// edge, each fragment is kept when the result region lies on exactly one of
// its sides, and the kept fragments are linked into closed rings with the
// result on their left. Outer rings come out counter-clockwise and holes
// clockwise.
type FloatClipper struct {
	// Tolerance is the vertex merge distance relative to the diagonal of
	// the combined bounding box. Zero means 1e-9.
	Tolerance float64
}

type segment struct {
	a, b Point2
}

type fragment struct {
	u, v int
}

// Clip implements Clipper.
func (c FloatClipper) Clip(op ClipOp, subject, clip []Ring) []Ring {
	var segs []segment
	segs = appendSegments(segs, subject)
	segs = appendSegments(segs, clip)
	if len(segs) == 0 {
		return nil
	}

	minP, maxP := segs[0].a, segs[0].a
	for _, s := range segs {
		for _, p := range [2]Point2{s.a, s.b} {
			minP.X, minP.Y = math.Min(minP.X, p.X), math.Min(minP.Y, p.Y)
			maxP.X, maxP.Y = math.Max(maxP.X, p.X), math.Max(maxP.Y, p.Y)
		}
	}
	diag := math.Hypot(maxP.X-minP.X, maxP.Y-minP.Y)
	if diag == 0 {
		return nil
	}
	tol := c.Tolerance
	if tol <= 0 {
		tol = 1e-9
	}
	eps := tol * diag

	cuts := make([][]float64, len(segs))
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			splitPair(segs, cuts, i, j, eps)
		}
	}

	pool := newVertexPool(eps)
	seen := make(map[[2]int]bool)
	var kept []fragment
	for i, s := range segs {
		ts := append(cuts[i], 0, 1)
		sort.Float64s(ts)
		prev := -1
		for k, t := range ts {
			id := pool.id(s.a.add(s.b.sub(s.a).mul(t)))
			if k > 0 && id != prev {
				key := [2]int{min(prev, id), max(prev, id)}
				if !seen[key] {
					seen[key] = true
					if f, ok := classify(op, pool.pts[prev], pool.pts[id], subject, clip, eps); ok {
						if f {
							kept = append(kept, fragment{u: prev, v: id})
						} else {
							kept = append(kept, fragment{u: id, v: prev})
						}
					}
				}
			}
			prev = id
		}
	}

	return linkRings(kept, pool.pts, eps*diag)
}

func appendSegments(segs []segment, rings []Ring) []segment {
	for _, r := range rings {
		n := len(r.Points)
		for i := 0; i < n; i++ {
			a, b := r.Points[i], r.Points[(i+1)%n]
			if a != b {
				segs = append(segs, segment{a: a, b: b})
			}
		}
	}
	return segs
}

// splitPair records the interior split parameters of segments i and j.
func splitPair(segs []segment, cuts [][]float64, i, j int, eps float64) {
	p, q := segs[i], segs[j]
	if math.Max(p.a.X, p.b.X)+eps < math.Min(q.a.X, q.b.X) ||
		math.Max(q.a.X, q.b.X)+eps < math.Min(p.a.X, p.b.X) ||
		math.Max(p.a.Y, p.b.Y)+eps < math.Min(q.a.Y, q.b.Y) ||
		math.Max(q.a.Y, q.b.Y)+eps < math.Min(p.a.Y, p.b.Y) {
		return
	}

	r, s := p.b.sub(p.a), q.b.sub(q.a)
	lr, ls := math.Hypot(r.X, r.Y), math.Hypot(s.X, s.Y)
	er, es := eps/lr, eps/ls
	qp := q.a.sub(p.a)
	denom := cross2(r, s)

	addCut := func(k int, t, e float64) {
		if t > e && t < 1-e {
			cuts[k] = append(cuts[k], t)
		}
	}

	if math.Abs(denom) > 1e-12*lr*ls {
		t := cross2(qp, s) / denom
		u := cross2(qp, r) / denom
		if t < -er || t > 1+er || u < -es || u > 1+es {
			return
		}
		addCut(i, t, er)
		addCut(j, u, es)
		return
	}

	// Parallel: only collinear overlaps produce cuts.
	if math.Abs(cross2(qp, r))/lr > eps {
		return
	}
	rr, ss := dot2(r, r), dot2(s, s)
	addCut(i, dot2(q.a.sub(p.a), r)/rr, er)
	addCut(i, dot2(q.b.sub(p.a), r)/rr, er)
	addCut(j, dot2(p.a.sub(q.a), s)/ss, es)
	addCut(j, dot2(p.b.sub(q.a), s)/ss, es)
}

// classify reports whether the fragment a→b lies on the result boundary and,
// if so, whether the result region is on its left.
func classify(op ClipOp, a, b Point2, subject, clip []Ring, eps float64) (left, ok bool) {
	d := b.sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return false, false
	}
	off := math.Max(l*1e-4, 4*eps)
	n := Point2{-d.Y / l, d.X / l}.mul(off)
	mid := a.add(d.mul(0.5))
	pl, pr := mid.add(n), mid.sub(n)

	inL := apply(op, contains(subject, pl), contains(clip, pl))
	inR := apply(op, contains(subject, pr), contains(clip, pr))
	if inL == inR {
		return false, false
	}
	return inL, true
}

func apply(op ClipOp, a, b bool) bool {
	switch op {
	case Union:
		return a || b
	case Difference:
		return a && !b
	case Intersection:
		return a && b
	default:
		return a != b
	}
}

// contains tests p against rings with the even-odd rule.
func contains(rings []Ring, p Point2) bool {
	inside := false
	for _, r := range rings {
		n := len(r.Points)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			pi, pj := r.Points[i], r.Points[j]
			if (pi.Y > p.Y) != (pj.Y > p.Y) {
				x := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
				if p.X < x {
					inside = !inside
				}
			}
		}
	}
	return inside
}

// linkRings walks the directed fragments into closed rings. At a vertex with
// several unused outgoing fragments it takes the first one clockwise from
// the reversed incoming direction, which keeps touching regions apart.
func linkRings(frags []fragment, pts []Point2, minArea float64) []Ring {
	out := make(map[int][]int, len(frags))
	for i, f := range frags {
		out[f.u] = append(out[f.u], i)
	}
	used := make([]bool, len(frags))

	next := func(cur fragment) int {
		back := pts[cur.u].sub(pts[cur.v])
		best, bestAngle := -1, math.Inf(1)
		for _, k := range out[cur.v] {
			if used[k] {
				continue
			}
			d := pts[frags[k].v].sub(pts[cur.v])
			cw := -math.Atan2(cross2(back, d), dot2(back, d))
			if cw <= 0 {
				cw += 2 * math.Pi
			}
			if cw < bestAngle {
				best, bestAngle = k, cw
			}
		}
		return best
	}

	var rings []Ring
	for start := range frags {
		if used[start] {
			continue
		}
		used[start] = true
		origin := frags[start].u
		loop := []Point2{pts[origin]}
		cur := frags[start]
		closed := false
		for {
			if cur.v == origin {
				closed = true
				break
			}
			k := next(cur)
			if k < 0 {
				break
			}
			used[k] = true
			loop = append(loop, pts[cur.v])
			cur = frags[k]
		}
		if !closed {
			continue
		}
		r := Ring{Points: dropCollinear(loop)}
		a := r.SignedArea()
		if len(r.Points) < 3 || math.Abs(a) <= minArea {
			continue
		}
		r.Hole = a < 0
		rings = append(rings, r)
	}
	return rings
}

// dropCollinear removes vertices that continue straight through.
func dropCollinear(pts []Point2) []Point2 {
	for changed := true; changed && len(pts) >= 3; {
		changed = false
		n := len(pts)
		for i := 0; i < n; i++ {
			prev, cur, nxt := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
			a, b := cur.sub(prev), nxt.sub(cur)
			if math.Abs(cross2(a, b)) <= 1e-12*math.Sqrt(dot2(a, a)*dot2(b, b)) && dot2(a, b) > 0 {
				pts = append(pts[:i:i], pts[i+1:]...)
				changed = true
				break
			}
		}
	}
	return pts
}

// vertexPool merges points closer than eps into one vertex id.
type vertexPool struct {
	eps   float64
	cells map[[2]int64][]int
	pts   []Point2
}

func newVertexPool(eps float64) *vertexPool {
	return &vertexPool{eps: eps, cells: make(map[[2]int64][]int)}
}

func (vp *vertexPool) cell(p Point2) [2]int64 {
	size := vp.eps * 2
	return [2]int64{int64(math.Floor(p.X / size)), int64(math.Floor(p.Y / size))}
}

func (vp *vertexPool) id(p Point2) int {
	c := vp.cell(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, k := range vp.cells[[2]int64{c[0] + dx, c[1] + dy}] {
				q := vp.pts[k]
				if math.Abs(q.X-p.X) <= vp.eps && math.Abs(q.Y-p.Y) <= vp.eps {
					return k
				}
			}
		}
	}
	k := len(vp.pts)
	vp.pts = append(vp.pts, p)
	vp.cells[c] = append(vp.cells[c], k)
	return k
}
