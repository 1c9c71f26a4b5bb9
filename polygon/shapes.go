package polygon

import (
	"math"

	"github.com/gogpu/viewedit/vmath"
)

// minSegments is the smallest number of segments used to approximate a
// circle or ellipse.
const minSegments = 32

func segmentCount(r, scale float64) int {
	n := int(math.Pi / 2 * r * scale)
	return max(n, minSegments)
}

// CircleContour approximates the circle centred at view point c passing
// through view point p. The returned points are in model space.
func (s *Set) CircleContour(c, p vmath.Vec3) Contour {
	d := p.Sub(c)
	r := math.Hypot(d.X, d.Y)
	n := segmentCount(r, s.View.Scale)
	pts := make([]vmath.Vec3, n)
	for k := 0; k < n; k++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(n))
		pts[k] = s.View.ToModel(vmath.V3(c.X+r*cos, c.Y+r*sin, c.Z))
	}
	return Contour{Points: pts}
}

// EllipseContour approximates the axis-aligned ellipse centred at view point
// c whose semi-axes are the X and Y distances to view point p.
func (s *Set) EllipseContour(c, p vmath.Vec3) Contour {
	a := math.Abs(p.X - c.X)
	b := math.Abs(p.Y - c.Y)
	n := segmentCount(math.Max(a, b), s.View.Scale)
	pts := make([]vmath.Vec3, n)
	for k := 0; k < n; k++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(n))
		pts[k] = s.View.ToModel(vmath.V3(c.X+a*cos, c.Y+b*sin, c.Z))
	}
	return Contour{Points: pts}
}

// RectContour builds the axis-aligned rectangle spanned by view points c and
// p. With square set, the shorter side is stretched to the longer one.
func (s *Set) RectContour(c, p vmath.Vec3, square bool) Contour {
	fx, fy := p.X, p.Y
	if square {
		dx, dy := fx-c.X, fy-c.Y
		if math.Abs(dx) > math.Abs(dy) {
			fy = c.Y + math.Copysign(math.Abs(dx), dy)
		} else {
			fx = c.X + math.Copysign(math.Abs(dy), dx)
		}
	}
	corners := [4]vmath.Vec3{
		vmath.V3(c.X, c.Y, c.Z),
		vmath.V3(c.X, fy, c.Z),
		vmath.V3(fx, fy, c.Z),
		vmath.V3(fx, c.Y, c.Z),
	}
	pts := make([]vmath.Vec3, 4)
	for k, v := range corners {
		pts[k] = s.View.ToModel(v)
	}
	return Contour{Points: pts}
}

// BeginShape starts a circle, ellipse or rectangle at view point vp: it
// appends a polygon of four copies of vp, makes it the current build
// polygon and stores vp as the shape origin.
func (s *Set) BeginShape(vp vmath.Vec3) (int, error) {
	mp := s.View.ToModel(vp)
	i, err := s.Append([]Contour{{Points: []vmath.Vec3{mp, mp, mp, mp}}}, false)
	if err != nil {
		return 0, err
	}
	s.Build.Polygon = i
	s.Build.Prev = vp
	return i, nil
}

// UpdateShape replaces the current build polygon's contour with c.
func (s *Set) UpdateShape(c Contour) error {
	return s.ReplaceContours(s.Build.Polygon, []Contour{c}, false)
}

// ContourClick handles one click of click-by-click contour building. The
// first click appends a polygon holding two copies of vp, the second being
// the rubber-band point. Later clicks pin the rubber-band point at vp and
// append a new one.
func (s *Set) ContourClick(vp vmath.Vec3) error {
	mp := s.View.ToModel(vp)
	if !s.Build.Active {
		i, err := s.Append([]Contour{{Points: []vmath.Vec3{mp, mp}}}, true)
		if err != nil {
			return err
		}
		s.Build = BuildState{Active: true, Polygon: i, Point: 1, Prev: vp}
		return nil
	}
	if err := s.ReplacePoint(s.Build.Polygon, 0, s.Build.Point, mp); err != nil {
		return err
	}
	if err := s.AppendPoint(s.Build.Polygon, 0, mp); err != nil {
		return err
	}
	s.Build.Point++
	return nil
}

// ContourMove moves the rubber-band point of the contour being built.
func (s *Set) ContourMove(vp vmath.Vec3) error {
	if !s.Build.Active {
		return nil
	}
	return s.ReplacePoint(s.Build.Polygon, 0, s.Build.Point, s.View.ToModel(vp))
}

// EndContour stops click-by-click building.
func (s *Set) EndContour() {
	s.Build.Active = false
}
