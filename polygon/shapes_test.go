package polygon

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/viewedit/vmath"
)

func TestCircleContour(t *testing.T) {
	s := NewSet()
	c := s.CircleContour(vmath.V3(1, 1, 0), vmath.V3(1.5, 1, 0))
	if len(c.Points) != minSegments {
		t.Fatalf("points = %d, want %d", len(c.Points), minSegments)
	}
	for _, p := range c.Points {
		if r := math.Hypot(p.X-1, p.Y-1); math.Abs(r-0.5) > 1e-12 {
			t.Errorf("radius = %v, want 0.5", r)
		}
	}

	s.View.Scale = 1000
	c = s.CircleContour(vmath.V3(0, 0, 0), vmath.V3(0.5, 0, 0))
	// pi/2 * r * scale = 785.4
	if want := 785; len(c.Points) != want {
		t.Errorf("points at scale 1000 = %d, want %d", len(c.Points), want)
	}
}

func TestEllipseContour(t *testing.T) {
	s := NewSet()
	c := s.EllipseContour(vmath.V3(0, 0, 0), vmath.V3(2, -1, 0))
	for _, p := range c.Points {
		if v := p.X*p.X/4 + p.Y*p.Y; math.Abs(v-1) > 1e-12 {
			t.Errorf("point %v not on ellipse", p)
		}
	}
}

func TestRectContour(t *testing.T) {
	s := NewSet()
	tests := []struct {
		name   string
		p      vmath.Vec3
		square bool
		far    vmath.Vec3
	}{
		{"plain", vmath.V3(2, 1, 0), false, vmath.V3(2, 1, 0)},
		{"square wide", vmath.V3(2, 1, 0), true, vmath.V3(2, 2, 0)},
		{"square tall down", vmath.V3(-1, -3, 0), true, vmath.V3(-3, -3, 0)},
		{"square wide down", vmath.V3(4, -1, 0), true, vmath.V3(4, -4, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := s.RectContour(vmath.Vec3{}, tt.p, tt.square)
			if len(c.Points) != 4 {
				t.Fatalf("points = %d, want 4", len(c.Points))
			}
			if c.Points[2] != tt.far {
				t.Errorf("far corner = %v, want %v", c.Points[2], tt.far)
			}
		})
	}
}

func TestBeginShape(t *testing.T) {
	s := NewSet()
	i, err := s.BeginShape(vmath.V3(0.25, 0.5, 0))
	if err != nil {
		t.Fatal(err)
	}
	p, _ := s.Polygon(i)
	if len(p.Contours) != 1 || len(p.Contours[0].Points) != 4 {
		t.Fatalf("seed polygon = %+v", p)
	}
	if s.Build.Polygon != i || s.Build.Prev != vmath.V3(0.25, 0.5, 0) {
		t.Errorf("Build = %+v", s.Build)
	}
	if err := s.UpdateShape(s.CircleContour(s.Build.Prev, vmath.V3(0.5, 0.5, 0))); err != nil {
		t.Fatal(err)
	}
	if a, _ := s.Area(i); math.Abs(a-math.Pi/16) > 0.01 {
		t.Errorf("circle area = %v, want about %v", a, math.Pi/16)
	}
}

func TestContourBuild(t *testing.T) {
	s := NewSet()
	steps := []vmath.Vec3{vmath.V3(0, 0, 0), vmath.V3(1, 0, 0), vmath.V3(1, 1, 0)}
	for _, v := range steps {
		if err := s.ContourClick(v); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.ContourMove(vmath.V3(0, 1, 0)); err != nil {
		t.Fatal(err)
	}
	p, _ := s.Polygon(0)
	want := []vmath.Vec3{steps[0], steps[1], steps[2], vmath.V3(0, 1, 0)}
	if len(p.Contours[0].Points) != len(want) {
		t.Fatalf("points = %v, want %v", p.Contours[0].Points, want)
	}
	for k, w := range want {
		if p.Contours[0].Points[k] != w {
			t.Errorf("point %d = %v, want %v", k, p.Contours[0].Points[k], w)
		}
	}
	if !s.Build.Active || s.Build.Point != 3 {
		t.Errorf("Build = %+v", s.Build)
	}

	s.EndContour()
	if s.Build.Active {
		t.Error("EndContour did not clear the build flag")
	}
	if err := s.ContourMove(vmath.V3(9, 9, 0)); err != nil {
		t.Fatal(err)
	}
	if pt, _ := s.Point(0, 0, 3); pt != vmath.V3(0, 1, 0) {
		t.Errorf("rubber point moved after EndContour: %v", pt)
	}
}

type memSketcher map[string]Polygon

func (m memSketcher) ExportSketch(name string, p Polygon, _ View) error {
	m[name] = p
	return nil
}

var errNoSketch = errors.New("no such sketch")

func (m memSketcher) ImportSketch(name string, _ View) (Polygon, error) {
	p, ok := m[name]
	if !ok {
		return Polygon{}, errNoSketch
	}
	return p, nil
}

func TestExportImport(t *testing.T) {
	s := NewSet()
	mustAppend(t, s, square(0, 0, 2, 1))
	sk := memSketcher{}

	if err := s.Export(0, "sk1", sk); err != nil {
		t.Fatal(err)
	}
	if err := s.Export(3, "sk1", sk); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Export(3) error = %v", err)
	}
	i, err := s.Import("sk1", sk)
	if err != nil {
		t.Fatal(err)
	}
	if a, _ := s.Area(i); math.Abs(a-2) > 1e-12 {
		t.Errorf("imported area = %v, want 2", a)
	}
	if _, err := s.Import("missing", sk); !errors.Is(err, errNoSketch) {
		t.Errorf("Import(missing) error = %v", err)
	}
}
