package polygon

import (
	"slices"

	polyclip "github.com/ctessum/polyclip-go"
)

// PolyClipper is the default Clipper, backed by polyclip-go's
// Martinez-Rueda sweep. Result rings are classified by nesting depth:
// a ring inside an odd number of other rings is a hole. Outer rings are
// returned counter-clockwise and holes clockwise, as FloatClipper does.
type PolyClipper struct{}

var polyclipOps = [...]polyclip.Op{
	Union:        polyclip.UNION,
	Difference:   polyclip.DIFFERENCE,
	Intersection: polyclip.INTERSECTION,
	Xor:          polyclip.XOR,
}

// Clip implements Clipper.
func (PolyClipper) Clip(op ClipOp, subject, clip []Ring) []Ring {
	if !op.Valid() {
		return nil
	}
	res := toPolyclip(subject).Construct(polyclipOps[op], toPolyclip(clip))

	rings := make([]Ring, 0, len(res))
	for _, c := range res {
		if len(c) < 3 {
			continue
		}
		pts := make([]Point2, len(c))
		for i, p := range c {
			pts[i] = Point2{X: p.X, Y: p.Y}
		}
		r := Ring{Points: dropCollinear(pts)}
		if len(r.Points) < 3 || r.SignedArea() == 0 {
			continue
		}
		rings = append(rings, r)
	}

	for i := range rings {
		depth := 0
		for j := range rings {
			if i != j && insideRing(rings[j], rings[i]) {
				depth++
			}
		}
		rings[i].Hole = depth%2 == 1
		if (rings[i].SignedArea() < 0) != rings[i].Hole {
			slices.Reverse(rings[i].Points)
		}
	}
	return rings
}

func toPolyclip(rings []Ring) polyclip.Polygon {
	out := make(polyclip.Polygon, 0, len(rings))
	for _, r := range rings {
		c := make(polyclip.Contour, len(r.Points))
		for i, p := range r.Points {
			c[i] = polyclip.Point{X: p.X, Y: p.Y}
		}
		out = append(out, c)
	}
	return out
}

// insideRing reports whether inner lies inside outer. Result rings do not
// cross, so the midpoint of inner's first edge decides.
func insideRing(outer, inner Ring) bool {
	a, b := inner.Points[0], inner.Points[1]
	return contains([]Ring{outer}, a.add(b).mul(0.5))
}
