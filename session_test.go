package viewedit

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/viewedit/display"
	"github.com/gogpu/viewedit/display/recording"
	"github.com/gogpu/viewedit/internal/memdb"
	"github.com/gogpu/viewedit/polygon"
	"github.com/gogpu/viewedit/view"
	"github.com/gogpu/viewedit/vmath"
)

const eps = 1e-9

type hostCall struct {
	bind bool
	view string
	mode view.Mode
}

type recordingHost struct {
	calls []hostCall
}

func (h *recordingHost) BindMotion(v *view.Viewport, m view.Mode) {
	h.calls = append(h.calls, hostCall{bind: true, view: v.Name, mode: m})
}

func (h *recordingHost) UnbindMotion(v *view.Viewport) {
	h.calls = append(h.calls, hostCall{view: v.Name})
}

type fixture struct {
	s    *Session
	db   *memdb.DB
	host *recordingHost
	v    *view.Viewport
	rec  *recording.Recorder
}

func newFixture(t *testing.T, opts ...view.Option) *fixture {
	t.Helper()
	db := memdb.New()
	db.AddBox("box.s", vmath.V3(0, 0, 0), vmath.V3(1, 1, 1), view.DrawShaded)
	host := &recordingHost{}
	s := NewSession(db, db, WithEventHost(host))
	v, err := s.OpenView("top", "recording", 100, 100, opts...)
	if err != nil {
		t.Fatalf("OpenView() error = %v", err)
	}
	return &fixture{s: s, db: db, host: host, v: v, rec: v.Surface.(*recording.Recorder)}
}

func (f *fixture) enter(t *testing.T, m view.Mode, args EnterArgs) {
	t.Helper()
	if err := f.s.EnterMode("top", m, args); err != nil {
		t.Fatalf("EnterMode(%v) error = %v", m, err)
	}
}

func (f *fixture) move(t *testing.T, x, y float64) {
	t.Helper()
	if err := f.s.OnMotion("top", x, y); err != nil {
		t.Fatalf("OnMotion(%v, %v) error = %v", x, y, err)
	}
}

func (f *fixture) idle(t *testing.T) {
	t.Helper()
	if err := f.s.OnIdle("top"); err != nil {
		t.Fatalf("OnIdle() error = %v", err)
	}
}

func TestRotateGesture(t *testing.T) {
	changes := 0
	f := newFixture(t, view.WithObserver(view.ObserverFunc(func(*view.Viewport) { changes++ })))

	f.enter(t, view.Rotate, EnterArgs{X: 50, Y: 50})
	if f.v.Mode != view.Rotate {
		t.Fatalf("Mode = %v, want rotate", f.v.Mode)
	}
	f.move(t, 60, 50)

	want := vmath.RotateDegrees(0, -4, 0)
	if !f.v.Rotation().ApproxEqual(want, eps) {
		t.Errorf("Rotation() = %v, want %v", f.v.Rotation(), want)
	}
	if changes != 1 {
		t.Errorf("view changes = %d, want 1", changes)
	}
	if f.v.PrevX != 60 || f.v.PrevY != 50 {
		t.Errorf("prev = (%v, %v), want (60, 50)", f.v.PrevX, f.v.PrevY)
	}

	f.idle(t)
	if f.v.Mode != view.Idle {
		t.Errorf("Mode = %v, want idle", f.v.Mode)
	}
	if f.s.Pending() != 0 || len(f.db.Redraws) != 0 {
		t.Errorf("pending = %d, redraws = %d, want none", f.s.Pending(), len(f.db.Redraws))
	}
	want2 := []hostCall{{bind: true, view: "top", mode: view.Rotate}, {view: "top"}}
	if len(f.host.calls) != 2 || f.host.calls[0] != want2[0] || f.host.calls[1] != want2[1] {
		t.Errorf("host calls = %+v, want %+v", f.host.calls, want2)
	}
}

func TestTranslateClampsDelta(t *testing.T) {
	f := newFixture(t)
	f.enter(t, view.Translate, EnterArgs{X: 0, Y: 50})
	f.move(t, 100, 50)

	// 100 pixels clamps to 20; 20 * size(2) / width(100) = 0.4.
	if c := f.v.Center(); math.Abs(c.X+0.4) > eps || math.Abs(c.Y) > eps {
		t.Errorf("Center() = %v, want (-0.4, 0, 0)", c)
	}
}

func TestObjectTranslateCommitsOnce(t *testing.T) {
	var deltas []vmath.Vec3
	f := newFixture(t, view.WithEditObserver(view.EditObserverFunc(
		func(_ *view.Viewport, path string, m view.Mode, d vmath.Vec3) {
			if path != "box.s" || m != view.ObjectTranslate {
				t.Errorf("EditCommitted(%q, %v)", path, m)
			}
			deltas = append(deltas, d)
		})))
	f.db.LocalUnit = 2

	f.enter(t, view.ObjectTranslate, EnterArgs{X: 50, Y: 50, Path: "box.s"})
	f.move(t, 60, 50)
	f.move(t, 60, 40)
	if f.s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", f.s.Pending())
	}
	if len(f.db.Redraws) != 0 {
		t.Fatalf("redrawn during motion")
	}

	f.idle(t)
	if len(f.db.Redraws) != 1 {
		t.Fatalf("Redraws = %d, want 1", len(f.db.Redraws))
	}
	r := f.db.Redraws[0]
	if r.Path != "box.s" || r.Mode != view.DrawShaded {
		t.Errorf("Redraw = %+v", r)
	}
	if got := r.Matrix.Translation(); !got.ApproxEqual(vmath.V3(0.2, 0.2, 0), eps) {
		t.Errorf("redraw translation = %v, want (0.2, 0.2, 0)", got)
	}
	if len(deltas) != 1 || !deltas[0].ApproxEqual(vmath.V3(0.1, 0.1, 0), eps) {
		t.Errorf("committed deltas = %v, want [(0.1, 0.1, 0)]", deltas)
	}
	if f.s.Pending() != 0 {
		t.Errorf("Pending() = %d after idle", f.s.Pending())
	}
}

func TestObjectRotateAndScaleAccumulate(t *testing.T) {
	f := newFixture(t)
	f.enter(t, view.ObjectScale, EnterArgs{X: 50, Y: 50, Path: "box.s"})
	f.move(t, 60, 50)
	f.idle(t)

	o, _ := f.db.Object("box.s")
	if got := o.Matrix[0]; math.Abs(got-1.2) > eps {
		t.Errorf("scale = %v, want 1.2", got)
	}
	center := vmath.V3(0.5, 0.5, 0.5)
	if k, _ := f.db.Keypoint("box.s"); !k.ApproxEqual(center, eps) {
		t.Errorf("center after scale = %v, want %v", k, center)
	}

	f.enter(t, view.ObjectRotate, EnterArgs{X: 50, Y: 50, Path: "box.s"})
	f.move(t, 50, 60)
	f.idle(t)
	if len(f.db.Redraws) != 2 {
		t.Fatalf("Redraws = %d, want 2", len(f.db.Redraws))
	}
	want := vmath.About(center, vmath.RotateDegrees(4, 0, 0))
	if !f.db.Redraws[1].Matrix.ApproxEqual(want, eps) {
		t.Errorf("rotation = %v, want %v", f.db.Redraws[1].Matrix, want)
	}
}

func TestObjectEditsKeepKeypointOffOrigin(t *testing.T) {
	f := newFixture(t)
	f.db.AddBox("far.s", vmath.V3(10, 0, 0), vmath.V3(12, 2, 2), view.DrawWireframe)
	want := vmath.V3(11, 1, 1)

	f.enter(t, view.ObjectScale, EnterArgs{X: 50, Y: 50, Path: "far.s"})
	f.move(t, 60, 50)
	f.move(t, 70, 50)
	f.idle(t)
	if k, _ := f.db.Keypoint("far.s"); !k.ApproxEqual(want, eps) {
		t.Errorf("center after scale = %v, want %v", k, want)
	}
	o, _ := f.db.Object("far.s")
	if got := o.Matrix[0]; math.Abs(got-1.44) > eps {
		t.Errorf("scale = %v, want 1.44", got)
	}

	f.enter(t, view.ObjectRotate, EnterArgs{X: 50, Y: 50, Path: "far.s"})
	f.move(t, 60, 65)
	f.idle(t)
	if k, _ := f.db.Keypoint("far.s"); !k.ApproxEqual(want, eps) {
		t.Errorf("center after rotate = %v, want %v", k, want)
	}
}

func TestPrimitiveScaleEditsParameter(t *testing.T) {
	f := newFixture(t)
	err := f.s.EnterMode("top", view.PrimitiveScale, EnterArgs{X: 50, Y: 50, Path: "box.s"})
	var ie *InputError
	if !errors.As(err, &ie) || ie.Arg != "param" {
		t.Fatalf("EnterMode without param error = %v", err)
	}

	f.enter(t, view.PrimitiveScale, EnterArgs{X: 50, Y: 50, Path: "box.s", Param: "H"})
	f.move(t, 60, 50)
	f.idle(t)

	if len(f.db.PrimitiveEdits) != 1 {
		t.Fatalf("PrimitiveEdits = %d, want 1", len(f.db.PrimitiveEdits))
	}
	pe := f.db.PrimitiveEdits[0]
	if pe.Path != "box.s" || pe.Param != "H" || pe.Mode != view.PrimitiveScale {
		t.Errorf("primitive edit = %+v", pe)
	}
	o, _ := f.db.Object("box.s")
	if !o.Matrix.IsIdentity() {
		t.Errorf("placement = %v, want identity", o.Matrix)
	}
	// H scales by 1.2 about the center; V stays.
	if !o.Hi.ApproxEqual(vmath.V3(1.1, 1.1, 1.1), eps) || o.Lo != vmath.V3(0, 0, 0) {
		t.Errorf("box = %v %v, want (0,0,0) (1.1,1.1,1.1)", o.Lo, o.Hi)
	}
	if len(f.db.Redraws) != 1 || !f.db.Redraws[0].Matrix.IsIdentity() {
		t.Errorf("Redraws = %+v, want one identity redraw", f.db.Redraws)
	}
}

func TestPendingEditPreviewedDuringMotion(t *testing.T) {
	f := newFixture(t)
	f.enter(t, view.ObjectTranslate, EnterArgs{X: 50, Y: 50, Path: "box.s"})
	f.rec.Reset()
	f.move(t, 60, 40)

	e, ok := f.s.PendingEdit("box.s")
	if !ok || e.Translation == (vmath.Vec3{}) {
		t.Fatalf("PendingEdit() = %+v, %v", e, ok)
	}
	i := f.rec.Index(recording.CmdDrawVList)
	if i < 0 {
		t.Fatal("scene not drawn during motion")
	}
	// The first vertex is the box's minimum corner at the origin.
	if got := f.rec.Commands()[i].Points[0]; !got.ApproxEqual(e.Translation, eps) {
		t.Errorf("previewed corner = %v, want %v", got, e.Translation)
	}
	if len(f.db.Redraws) != 0 {
		t.Error("edit committed during motion")
	}

	f.idle(t)
	if _, ok := f.s.PendingEdit("box.s"); ok {
		t.Error("edit still pending after idle")
	}
	f.rec.Reset()
	_ = f.s.Refresh("top")
	i = f.rec.Index(recording.CmdDrawVList)
	if got := f.rec.Commands()[i].Points[0]; !got.ApproxEqual(e.Translation, eps) {
		t.Errorf("committed corner = %v, want %v", got, e.Translation)
	}
}

func TestScaleRegeneratesWithAdaptivePlot(t *testing.T) {
	f := newFixture(t, view.WithAdaptivePlot(true))
	f.enter(t, view.Scale, EnterArgs{X: 50, Y: 50})
	f.move(t, 60, 50)
	if got := f.v.Scale(); math.Abs(got-1/1.2) > eps {
		t.Errorf("Scale() = %v, want %v", got, 1/1.2)
	}
	f.idle(t)
	if f.db.Regens != 1 {
		t.Errorf("Regens = %d, want 1", f.db.Regens)
	}
}

func TestTranslateSnapsCenterOnIdle(t *testing.T) {
	changes := 0
	f := newFixture(t,
		view.WithGrid(view.Grid{Enabled: true, ResX: 1, ResY: 1}),
		view.WithObserver(view.ObserverFunc(func(*view.Viewport) { changes++ })),
	)
	f.enter(t, view.Translate, EnterArgs{X: 50, Y: 50})
	f.move(t, 60, 50)
	if c := f.v.Center(); math.Abs(c.X+0.2) > eps {
		t.Fatalf("Center() = %v before idle", c)
	}
	f.idle(t)
	if c := f.v.Center(); !c.ApproxEqual(vmath.Vec3{}, eps) {
		t.Errorf("Center() = %v, want origin", c)
	}
	if changes != 2 {
		t.Errorf("view changes = %d, want 2", changes)
	}
}

func TestConstrainedModes(t *testing.T) {
	f := newFixture(t)
	f.enter(t, view.ConstrainedTranslate, EnterArgs{X: 50, Y: 50, Axis: "z"})
	f.move(t, 60, 50)
	if c := f.v.Center(); !c.ApproxEqual(vmath.V3(0, 0, -0.2), eps) {
		t.Errorf("Center() = %v, want (0, 0, -0.2)", c)
	}
	f.idle(t)

	f.enter(t, view.ConstrainedRotate, EnterArgs{X: 50, Y: 50, Axis: "x"})
	f.move(t, 50, 40)
	want := vmath.RotateAxis(vmath.V3(1, 0, 0), vmath.Radians(-4))
	if !f.v.Rotation().ApproxEqual(want, eps) {
		t.Errorf("Rotation() = %v, want %v", f.v.Rotation(), want)
	}
}

func TestEnterModeValidation(t *testing.T) {
	f := newFixture(t)
	nan := math.NaN()
	tests := []struct {
		name string
		view string
		mode view.Mode
		args EnterArgs
		want error
	}{
		{"unknown view", "side", view.Rotate, EnterArgs{}, ErrViewNotFound},
		{"bad axis", "top", view.ConstrainedRotate, EnterArgs{Axis: "xy"}, ErrMalformedInput},
		{"upper axis", "top", view.ConstrainedTranslate, EnterArgs{Axis: "X"}, ErrMalformedInput},
		{"nan position", "top", view.Rotate, EnterArgs{X: nan}, ErrMalformedInput},
		{"missing path", "top", view.ObjectTranslate, EnterArgs{}, ErrMalformedInput},
		{"bad mode", "top", view.Mode(200), EnterArgs{}, ErrMalformedInput},
		{"bad point", "top", view.DataMovePoint, EnterArgs{Indices: [3]int{0, 0, 5}}, ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.s.EnterMode(tt.view, tt.mode, tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("EnterMode() error = %v, want %v", err, tt.want)
			}
			if f.v.Mode != view.Idle {
				t.Errorf("Mode = %v after failed EnterMode", f.v.Mode)
			}
		})
	}

	var vnf *ViewNotFoundError
	if err := f.s.OnMotion("side", 1, 1); !errors.As(err, &vnf) || vnf.Name != "side" {
		t.Errorf("OnMotion(side) error = %v", err)
	}
}

func TestMotionInIdleIsNoop(t *testing.T) {
	f := newFixture(t)
	before := len(f.rec.Commands())
	f.move(t, 10, 10)
	if f.v.Center() != (vmath.Vec3{}) || len(f.rec.Commands()) != before {
		t.Error("idle motion changed the view")
	}
}

func TestPolyCircleGesture(t *testing.T) {
	f := newFixture(t)
	f.enter(t, view.PolyCircle, EnterArgs{X: 50, Y: 50})
	ps := f.v.Polygons
	if ps.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ps.Len())
	}
	if p, _ := ps.Polygon(0); len(p.Contours[0].Points) != 4 {
		t.Fatalf("seed points = %d, want 4", len(p.Contours[0].Points))
	}

	f.move(t, 75, 50)
	p, _ := ps.Polygon(0)
	pts := p.Contours[0].Points
	if len(pts) < 32 {
		t.Fatalf("circle points = %d, want >= 32", len(pts))
	}
	for _, q := range pts {
		if r := math.Hypot(q.X, q.Y); math.Abs(r-0.5) > 1e-6 {
			t.Fatalf("point %v off radius 0.5", q)
		}
	}
	if f.rec.Count(recording.CmdDrawPolyline) == 0 {
		t.Error("polygons not drawn")
	}
	f.idle(t)
	if f.v.Mode != view.Idle || ps.Len() != 1 {
		t.Errorf("after idle: mode %v, len %d", f.v.Mode, ps.Len())
	}
}

func TestPolyContourGesture(t *testing.T) {
	f := newFixture(t)
	ps := f.v.Polygons

	f.enter(t, view.PolyContour, EnterArgs{X: 50, Y: 50})
	f.move(t, 75, 50)
	f.enter(t, view.PolyContour, EnterArgs{X: 75, Y: 25})

	p, _ := ps.Polygon(0)
	if n := len(p.Contours[0].Points); n != 3 {
		t.Fatalf("points = %d, want 3", n)
	}
	if got := p.Contours[0].Points[1]; !got.ApproxEqual(vmath.V3(0.5, 0.5, 0), eps) {
		t.Errorf("pinned point = %v, want (0.5, 0.5, 0)", got)
	}

	if err := f.s.EndContour("top"); err != nil {
		t.Fatal(err)
	}
	if ps.Build.Active || f.v.Mode != view.PolyContour {
		t.Errorf("EndContour: active %v, mode %v", ps.Build.Active, f.v.Mode)
	}
	f.idle(t)
	if f.v.Mode != view.Idle {
		t.Errorf("Mode after EndContour and idle = %v, want idle", f.v.Mode)
	}
}

func TestIdleKeepsContourBuild(t *testing.T) {
	f := newFixture(t)
	ps := f.v.Polygons

	f.enter(t, view.PolyContour, EnterArgs{X: 50, Y: 50})
	f.idle(t)
	for _, c := range f.host.calls {
		if !c.bind {
			t.Fatal("motion unbound while the contour is being built")
		}
	}
	if !ps.Build.Active || f.v.Mode != view.PolyContour {
		t.Fatalf("after idle: active %v, mode %v", ps.Build.Active, f.v.Mode)
	}

	f.move(t, 75, 50)
	p, _ := ps.Polygon(0)
	if got := p.Contours[0].Points[1]; !got.ApproxEqual(vmath.V3(0.5, 0, 0), eps) {
		t.Errorf("rubber-band point = %v, want (0.5, 0, 0)", got)
	}

	_ = f.s.EndContour("top")
	f.idle(t)
	if last := f.host.calls[len(f.host.calls)-1]; last.bind {
		t.Error("motion still bound after the contour ended")
	}
}

func TestRectRubberBand(t *testing.T) {
	f := newFixture(t)
	f.enter(t, view.Rect, EnterArgs{X: 10, Y: 20})
	if r := f.v.Rubber; !r.Active || r.X != 10 || r.Y != 80 {
		t.Fatalf("Rubber = %+v, want origin (10, 80)", r)
	}
	f.move(t, 30, 50)
	if r := f.v.Rubber; r.Width != 20 || r.Height != -30 {
		t.Errorf("Rubber = %+v, want 20 x -30", r)
	}
	f.idle(t)
	if f.v.Rubber.Active {
		t.Error("rubber band still active after idle")
	}
}

func TestDataMovePoint(t *testing.T) {
	f := newFixture(t)
	err := f.s.EditPolygons("top", func(ps *polygon.Set) error {
		_, err := ps.Append([]polygon.Contour{{Points: []vmath.Vec3{{}, {X: 0.2}, {Y: 0.2}}}}, false)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	f.enter(t, view.DataMovePoint, EnterArgs{X: 50, Y: 50, Indices: [3]int{0, 0, 1}})
	f.move(t, 75, 25)
	got, _ := f.v.Polygons.Point(0, 0, 1)
	if !got.ApproxEqual(vmath.V3(0.5, 0.5, 0), eps) {
		t.Errorf("Point() = %v, want (0.5, 0.5, 0)", got)
	}

	if _, err := f.v.Polygons.Point(0, 0, 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Point(0, 0, 5) error = %v", err)
	}
}

func TestDataScale(t *testing.T) {
	f := newFixture(t)
	_ = f.s.EditPolygons("top", func(ps *polygon.Set) error {
		_, err := ps.Append([]polygon.Contour{{Points: []vmath.Vec3{{X: 0.5}, {Y: 0.5}, {X: -0.5}}}}, false)
		return err
	})
	f.enter(t, view.DataScale, EnterArgs{X: 50, Y: 50})
	f.move(t, 60, 50)
	got, _ := f.v.Polygons.Point(0, 0, 0)
	if !got.ApproxEqual(vmath.V3(0.6, 0, 0), eps) {
		t.Errorf("Point() = %v, want (0.6, 0, 0)", got)
	}
}

func TestEditPolygonsClipScratch(t *testing.T) {
	f := newFixture(t)
	sq := func(x0, y0, x1, y1 float64) []polygon.Contour {
		return []polygon.Contour{{Points: []vmath.Vec3{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}}}
	}
	err := f.s.EditPolygons("top", func(ps *polygon.Set) error {
		if _, err := ps.Append(sq(0, 0, 0.5, 0.5), false); err != nil {
			return err
		}
		if _, err := ps.Append(sq(0.25, 0.25, 0.75, 0.75), false); err != nil {
			return err
		}
		return ps.ClipScratch(polygon.Union)
	})
	if err != nil {
		t.Fatal(err)
	}
	ps := f.v.Polygons
	if ps.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ps.Len())
	}
	if a, _ := ps.Area(0); math.Abs(a-0.4375) > 1e-9 {
		t.Errorf("Area() = %v, want 0.4375", a)
	}

	err = f.s.EditPolygons("top", func(ps *polygon.Set) error {
		_, err := ps.Append(nil, false)
		return err
	})
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Append(nil) error = %v, want ErrMalformedInput", err)
	}
}

func TestRefreshSequence(t *testing.T) {
	f := newFixture(t)
	f.rec.Reset()
	if err := f.s.Refresh("top"); err != nil {
		t.Fatal(err)
	}
	types := f.rec.Types()
	if len(types) < 3 || types[0] != recording.CmdMakeCurrent || types[1] != recording.CmdDrawBegin ||
		types[len(types)-1] != recording.CmdDrawEnd {
		t.Errorf("commands = %v", types)
	}
	if f.rec.Count(recording.CmdDrawVList) != 1 {
		t.Errorf("scene draws = %d, want 1", f.rec.Count(recording.CmdDrawVList))
	}

	f.rec.SetVisible(false)
	f.rec.Reset()
	_ = f.s.RefreshAll()
	if len(f.rec.Commands()) != 0 {
		t.Error("hidden surface was drawn")
	}
}

func TestDisabledRefresh(t *testing.T) {
	db := memdb.New()
	s := NewSession(db, db, WithRefresh(false))
	v, err := s.OpenView("a", "recording", 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	_ = s.Refresh("a")
	if n := len(v.Surface.(*recording.Recorder).Commands()); n != 0 {
		t.Errorf("commands = %d, want 0", n)
	}
}

func TestAutoview(t *testing.T) {
	f := newFixture(t)
	if err := f.s.Autoview("top", 0); err != nil {
		t.Fatal(err)
	}
	if c := f.v.Center(); !c.ApproxEqual(vmath.V3(0.5, 0.5, 0.5), eps) {
		t.Errorf("Center() = %v", c)
	}
	if got, want := f.v.Scale(), math.Sqrt(3)/2; math.Abs(got-want) > eps {
		t.Errorf("Scale() = %v, want %v", got, want)
	}
}

func TestViewLifecycle(t *testing.T) {
	f := newFixture(t)
	if _, err := f.s.OpenView("top", "recording", 10, 10); !errors.Is(err, ErrPrecondition) {
		t.Errorf("duplicate OpenView() error = %v", err)
	}
	if _, err := f.s.OpenView("", "recording", 10, 10); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("unnamed OpenView() error = %v", err)
	}
	var nf *display.BackendNotFoundError
	if _, err := f.s.OpenView("x", "vulkan", 10, 10); !errors.As(err, &nf) {
		t.Errorf("OpenView(vulkan) error = %v", err)
	}
	if _, err := f.s.OpenView("side", "", 20, 10); err != nil {
		t.Fatal(err)
	}
	if n := len(f.s.Views()); n != 2 {
		t.Errorf("Views() = %d, want 2", n)
	}

	if err := f.s.CloseView("top"); err != nil {
		t.Fatal(err)
	}
	if f.rec.Count(recording.CmdClose) != 1 {
		t.Error("surface not closed")
	}
	if _, err := f.s.View("top"); !errors.Is(err, ErrViewNotFound) {
		t.Errorf("View(top) error = %v", err)
	}
}
