// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package polygon

import (
	"image/color"
	"math"

	"github.com/gogpu/viewedit/vmath"
)

// View is the camera snapshot used for view-plane operations.
type View struct {
	Model2View vmath.Mat4
	View2Model vmath.Mat4

	// Scale is half the view size in model units.
	Scale float64

	// DataVZ is the view depth new points are placed at.
	DataVZ float64
}

// IdentityView returns a snapshot where model and view space coincide.
func IdentityView() View {
	return View{
		Model2View: vmath.Identity(),
		View2Model: vmath.Identity(),
		Scale:      1,
	}
}

// ToView maps a model point into view space.
func (v View) ToView(p vmath.Vec3) vmath.Vec3 { return v.Model2View.TransformPoint(p) }

// ToModel maps a view point into model space.
func (v View) ToModel(p vmath.Vec3) vmath.Vec3 { return v.View2Model.TransformPoint(p) }

// BuildState tracks an interactive polygon build.
type BuildState struct {
	// Active is set while a contour is being built click by click.
	Active bool

	// Polygon is the index of the polygon being built.
	Polygon int

	// Point is the index of the rubber-band point in contour 0.
	Point int

	// Prev is the starting view point of the current shape.
	Prev vmath.Vec3
}

// Set is an ordered collection of polygons owned by one viewport.
//
// A Set is not safe for concurrent use.
type Set struct {
	polys  []Polygon
	target int

	// Default is the style given to appended polygons.
	Default Style

	// ClipType is the operation used by ClipDefault.
	ClipType ClipOp

	// Draw enables drawing of the set by the refresh coordinator.
	Draw bool

	// MoveAll makes MoveContour translate every polygon.
	MoveAll bool

	// View is the camera snapshot for view-plane operations.
	View View

	// Build is the interactive build state.
	Build BuildState

	// Clipper computes boolean operations. Nil means PolyClipper{}.
	Clipper Clipper
}

// NewSet creates an empty set with default style and an identity view.
func NewSet() *Set {
	return &Set{
		Default:  DefaultStyle(),
		ClipType: Intersection,
		View:     IdentityView(),
	}
}

// Len returns the number of polygons.
func (s *Set) Len() int { return len(s.polys) }

// Polygon returns a copy of polygon i.
func (s *Set) Polygon(i int) (Polygon, error) {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return Polygon{}, err
	}
	return s.polys[i].Clone(), nil
}

// Polygons returns a copy of every polygon.
func (s *Set) Polygons() []Polygon {
	out := make([]Polygon, len(s.polys))
	for i, p := range s.polys {
		out[i] = p.Clone()
	}
	return out
}

// Each calls fn for every polygon without copying. fn must not retain p.
func (s *Set) Each(fn func(i int, p *Polygon)) {
	for i := range s.polys {
		fn(i, &s.polys[i])
	}
}

// Append adds a polygon made of contours, styled with the default style,
// and returns its index. Unless build is set, every contour needs at least
// three points.
func (s *Set) Append(contours []Contour, build bool) (int, error) {
	if err := validateContours(contours, build); err != nil {
		return 0, err
	}
	s.polys = append(s.polys, Polygon{Contours: cloneContours(contours), Style: s.Default})
	return len(s.polys) - 1, nil
}

// SetPolygons replaces the whole set and resets the target to 0.
func (s *Set) SetPolygons(polys []Polygon) error {
	for _, p := range polys {
		if err := validateContours(p.Contours, false); err != nil {
			return err
		}
	}
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Clone()
		if out[i].Style.LineWidth < 0 {
			out[i].Style.LineWidth = 0
		}
	}
	s.polys = out
	s.target = 0
	return nil
}

// Clear removes every polygon and resets the target and build state.
func (s *Set) Clear() {
	s.polys = nil
	s.target = 0
	s.Build = BuildState{}
}

// Delete removes polygon i. The target and the polygon being built keep
// pointing at the same polygons; a target past the end is pulled back.
func (s *Set) Delete(i int) error {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return err
	}
	s.polys = append(s.polys[:i], s.polys[i+1:]...)
	if i < s.target {
		s.target--
	}
	if s.target > len(s.polys) {
		s.target = len(s.polys)
	}
	if s.Build.Active {
		switch {
		case s.Build.Polygon == i:
			s.Build = BuildState{}
		case s.Build.Polygon > i:
			s.Build.Polygon--
		}
	}
	return nil
}

// Target returns the target polygon index.
func (s *Set) Target() int { return s.target }

// SetTarget selects the target polygon. Len() itself is accepted so the next
// appended polygon can be targeted in advance.
func (s *Set) SetTarget(i int) error {
	if i < 0 || i > len(s.polys) {
		return &IndexError{What: "polygon", Index: i, Len: len(s.polys) + 1}
	}
	s.target = i
	return nil
}

// SetClipType sets the default clip operation.
func (s *Set) SetClipType(op ClipOp) error {
	if !op.Valid() {
		return malformed("clip type %d", op)
	}
	s.ClipType = op
	return nil
}

// Point returns point k of contour j of polygon i.
func (s *Set) Point(i, j, k int) (vmath.Vec3, error) {
	c, err := s.contour(i, j)
	if err != nil {
		return vmath.Vec3{}, err
	}
	if err := checkIndex("point", k, len(c.Points)); err != nil {
		return vmath.Vec3{}, err
	}
	return c.Points[k], nil
}

// ReplacePoint overwrites point k of contour j of polygon i.
func (s *Set) ReplacePoint(i, j, k int, p vmath.Vec3) error {
	c, err := s.contour(i, j)
	if err != nil {
		return err
	}
	if err := checkIndex("point", k, len(c.Points)); err != nil {
		return err
	}
	if !p.IsFinite() {
		return malformed("point is not finite")
	}
	c.Points[k] = p
	return nil
}

// AppendPoint adds p to the end of contour j of polygon i.
func (s *Set) AppendPoint(i, j int, p vmath.Vec3) error {
	c, err := s.contour(i, j)
	if err != nil {
		return err
	}
	if !p.IsFinite() {
		return malformed("point is not finite")
	}
	c.Points = append(c.Points, p)
	return nil
}

// ReplaceContours swaps the contours of polygon i, keeping its style.
func (s *Set) ReplaceContours(i int, contours []Contour, build bool) error {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return err
	}
	if err := validateContours(contours, build); err != nil {
		return err
	}
	s.polys[i].Contours = cloneContours(contours)
	return nil
}

func (s *Set) contour(i, j int) (*Contour, error) {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return nil, err
	}
	p := &s.polys[i]
	if err := checkIndex("contour", j, len(p.Contours)); err != nil {
		return nil, err
	}
	return &p.Contours[j], nil
}

// Color returns the color of polygon i.
func (s *Set) Color(i int) (color.RGBA, error) {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return color.RGBA{}, err
	}
	return s.polys[i].Style.Color, nil
}

// SetColor sets the color of polygon i. Components must be in 0..255.
func (s *Set) SetColor(i int, r, g, b int) error {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return err
	}
	c, err := rgb(r, g, b)
	if err != nil {
		return err
	}
	s.polys[i].Style.Color = c
	return nil
}

// SetAllColor sets the default color and the color of every polygon.
func (s *Set) SetAllColor(r, g, b int) error {
	c, err := rgb(r, g, b)
	if err != nil {
		return err
	}
	s.Default.Color = c
	for i := range s.polys {
		s.polys[i].Style.Color = c
	}
	return nil
}

func rgb(r, g, b int) (color.RGBA, error) {
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return color.RGBA{}, malformed("color component %d outside 0..255", v)
		}
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
}

// SetLineWidth sets the line width of polygon i. Negative widths become 0.
func (s *Set) SetLineWidth(i, w int) error {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return err
	}
	s.polys[i].Style.LineWidth = max(w, 0)
	return nil
}

// SetAllLineWidth sets the default line width and that of every polygon.
func (s *Set) SetAllLineWidth(w int) {
	w = max(w, 0)
	s.Default.LineWidth = w
	for i := range s.polys {
		s.polys[i].Style.LineWidth = w
	}
}

// SetLineStyle sets the line style of polygon i: values ≤ 0 select solid,
// anything else dashed.
func (s *Set) SetLineStyle(i, style int) error {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return err
	}
	s.polys[i].Style.LineStyle = lineStyle(style)
	return nil
}

// SetAllLineStyle sets the default line style and that of every polygon.
func (s *Set) SetAllLineStyle(style int) {
	ls := lineStyle(style)
	s.Default.LineStyle = ls
	for i := range s.polys {
		s.polys[i].Style.LineStyle = ls
	}
}

func lineStyle(v int) LineStyle {
	if v <= 0 {
		return LineSolid
	}
	return LineDashed
}

// Rings returns polygon i projected onto the view plane.
func (s *Set) Rings(i int) ([]Ring, error) {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return nil, err
	}
	return s.rings(i), nil
}

func (s *Set) rings(i int) []Ring {
	p := s.polys[i]
	out := make([]Ring, len(p.Contours))
	for ci, c := range p.Contours {
		pts := make([]Point2, len(c.Points))
		for k, mp := range c.Points {
			vp := s.View.ToView(mp)
			pts[k] = Point2{X: vp.X, Y: vp.Y}
		}
		out[ci] = Ring{Points: pts, Hole: c.Hole}
	}
	return out
}

// meanViewZ returns the average view depth of polygon i, or DataVZ when it
// has no points.
func (s *Set) meanViewZ(i int) float64 {
	var sum float64
	var n int
	for _, c := range s.polys[i].Contours {
		for _, p := range c.Points {
			sum += s.View.ToView(p).Z
			n++
		}
	}
	if n == 0 {
		return s.View.DataVZ
	}
	return sum / float64(n)
}

func (s *Set) clipper() Clipper {
	if s.Clipper != nil {
		return s.Clipper
	}
	return PolyClipper{}
}

// Clip replaces polygon i with the boolean combination of i and j. The
// operation runs in the view plane and the result is placed back at the mean
// view depth of polygon i. Polygon i keeps its style. Clip(i, i, op) does
// nothing.
func (s *Set) Clip(i, j int, op ClipOp) error {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return err
	}
	if err := checkIndex("polygon", j, len(s.polys)); err != nil {
		return err
	}
	if !op.Valid() {
		return malformed("clip type %d", op)
	}
	if i == j {
		return nil
	}

	vz := s.meanViewZ(i)
	rings := s.clipper().Clip(op, s.rings(i), s.rings(j))
	contours := make([]Contour, 0, len(rings))
	for _, r := range rings {
		pts := make([]vmath.Vec3, len(r.Points))
		for k, p := range r.Points {
			pts[k] = s.View.ToModel(vmath.V3(p.X, p.Y, vz))
		}
		contours = append(contours, Contour{Points: pts, Hole: r.Hole})
	}
	s.polys[i].Contours = contours
	return nil
}

// ClipScratch clips the target polygon by the last polygon with op and then
// removes the last polygon.
func (s *Set) ClipScratch(op ClipOp) error {
	n := len(s.polys)
	if n == 0 {
		return &IndexError{What: "polygon", Index: s.target, Len: 0}
	}
	last := n - 1
	if s.target == last {
		return nil
	}
	if err := s.Clip(s.target, last, op); err != nil {
		return err
	}
	s.polys = s.polys[:last]
	return nil
}

// ClipDefault runs ClipScratch with the set's ClipType.
func (s *Set) ClipDefault() error {
	return s.ClipScratch(s.ClipType)
}

// Area returns the area of polygon i in square model units, measured in the
// view plane. Hole contours subtract.
func (s *Set) Area(i int) (float64, error) {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return 0, err
	}
	var a float64
	for _, r := range s.rings(i) {
		ra := math.Abs(r.SignedArea())
		if r.Hole {
			a -= ra
		} else {
			a += ra
		}
	}
	return a * s.View.Scale * s.View.Scale, nil
}

// Overlap reports whether polygons i and j share interior area in the view
// plane. Polygons that only touch do not overlap.
func (s *Set) Overlap(i, j int) (bool, error) {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return false, err
	}
	if err := checkIndex("polygon", j, len(s.polys)); err != nil {
		return false, err
	}
	a, b := s.rings(i), s.rings(j)
	var area float64
	for _, r := range s.clipper().Clip(Intersection, a, b) {
		area += r.SignedArea()
	}
	return area > 1e-12, nil
}

// MovePoint places point k of contour j of polygon i at view position
// (vx, vy), keeping its view depth.
func (s *Set) MovePoint(i, j, k int, vx, vy float64) error {
	p, err := s.Point(i, j, k)
	if err != nil {
		return err
	}
	vp := s.View.ToView(p)
	vp.X, vp.Y = vx, vy
	return s.ReplacePoint(i, j, k, s.View.ToModel(vp))
}

// MoveContour translates contour j of polygon i so that point k lands at
// view position (vx, vy). With MoveAll set every polygon moves instead.
func (s *Set) MoveContour(i, j, k int, vx, vy float64) error {
	p, err := s.Point(i, j, k)
	if err != nil {
		return err
	}
	vp := s.View.ToView(p)
	if !vmath.V3(vx, vy, 0).IsFinite() {
		return malformed("point is not finite")
	}
	diff := vmath.V3(vx-vp.X, vy-vp.Y, 0)
	move := func(c *Contour) {
		for n, mp := range c.Points {
			c.Points[n] = s.View.ToModel(s.View.ToView(mp).Add(diff))
		}
	}
	if s.MoveAll {
		for pi := range s.polys {
			for ci := range s.polys[pi].Contours {
				move(&s.polys[pi].Contours[ci])
			}
		}
		return nil
	}
	move(&s.polys[i].Contours[j])
	return nil
}

// ScaleAboutCenter scales every point's view-plane position about the view
// center by sf.
func (s *Set) ScaleAboutCenter(sf float64) error {
	if !(sf >= 0) || math.IsInf(sf, 0) {
		return malformed("scale factor %v", sf)
	}
	for pi := range s.polys {
		for ci := range s.polys[pi].Contours {
			c := &s.polys[pi].Contours[ci]
			for n, mp := range c.Points {
				vp := s.View.ToView(mp)
				vp.X *= sf
				vp.Y *= sf
				c.Points[n] = s.View.ToModel(vp)
			}
		}
	}
	return nil
}
