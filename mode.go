// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewedit

import (
	"errors"
	"math"

	"github.com/gogpu/viewedit/edit"
	"github.com/gogpu/viewedit/internal/vlog"
	"github.com/gogpu/viewedit/view"
	"github.com/gogpu/viewedit/vmath"
)

// EnterArgs carries the arguments of EnterMode. Which fields are read
// depends on the mode.
type EnterArgs struct {
	// X, Y is the pointer position in pixels, origin top-left.
	X, Y float64

	// Axis is "x", "y" or "z" for the constrained modes.
	Axis string

	// Path names the object edited by the object and primitive modes.
	Path string

	// Param names the primitive parameter edited by the primitive modes.
	Param string

	// Square forces PolyRect to build squares.
	Square bool

	// Indices selects the polygon, contour and point moved by the
	// data-move modes.
	Indices [3]int
}

// EnterMode starts a gesture in mode on the viewport called name.
// Entering PolyContour again while it is active adds a point.
func (s *Session) EnterMode(name string, mode view.Mode, args EnterArgs) error {
	v, err := s.View(name)
	if err != nil {
		return err
	}
	if mode == view.Idle {
		return s.OnIdle(name)
	}
	if err := s.validateEnter(v, mode, &args); err != nil {
		return err
	}

	v.PrevX, v.PrevY = args.X, args.Y
	v.EditPath = args.Path
	v.Param = args.Param
	v.Square = args.Square
	v.DataIndex = args.Indices

	switch mode {
	case view.PolyCircle, view.PolyEllipse, view.PolyRect:
		v.Polygons.Draw = true
		if _, err := v.Polygons.BeginShape(v.SnapView(v.ScreenToView(args.X, args.Y))); err != nil {
			return wrapPolygonErr(err)
		}
	case view.PolyContour:
		v.Polygons.Draw = true
		if err := v.Polygons.ContourClick(v.SnapView(v.ScreenToView(args.X, args.Y))); err != nil {
			return wrapPolygonErr(err)
		}
	case view.Rect:
		v.Rubber = view.RubberBand{Active: true, X: args.X, Y: v.Height() - args.Y}
	}

	v.SetMode(mode)
	s.host.BindMotion(v, mode)
	return s.refresh.Refresh(v)
}

func (s *Session) validateEnter(v *view.Viewport, mode view.Mode, args *EnterArgs) error {
	op := mode.String()
	if !mode.Valid() {
		return &InputError{Op: "mode", Arg: "mode", Reason: op}
	}
	if !finite(args.X) || !finite(args.Y) {
		return &InputError{Op: op, Arg: "position", Reason: "not finite"}
	}
	if mode.Constrained() {
		a, err := view.ParseAxis(args.Axis)
		if err != nil {
			return &InputError{Op: op, Arg: "axis", Reason: err.Error()}
		}
		v.Axis = a
	}
	if mode.EditsObject() && args.Path == "" {
		return &InputError{Op: op, Arg: "path", Reason: "empty"}
	}
	if mode.EditsPrimitive() && args.Param == "" {
		return &InputError{Op: op, Arg: "param", Reason: "empty"}
	}
	switch mode {
	case view.DataMovePoint, view.DataMoveObject:
		i := args.Indices
		if _, err := v.Polygons.Point(i[0], i[1], i[2]); err != nil {
			return err
		}
	}
	return nil
}

// OnMotion handles pointer motion to (x, y) on the viewport called name.
func (s *Session) OnMotion(name string, x, y float64) error {
	v, err := s.View(name)
	if err != nil {
		return err
	}
	if !finite(x) || !finite(y) {
		return &InputError{Op: "motion", Arg: "position", Reason: "not finite"}
	}
	if v.Mode == view.Idle {
		return nil
	}
	h, ok := motionHandlers[v.Mode]
	if !ok {
		return &InputError{Op: "motion", Arg: "mode", Reason: v.Mode.String()}
	}
	camera, herr := h(s, v, x, y)
	v.PrevX, v.PrevY = x, y
	if herr != nil {
		return wrapPolygonErr(herr)
	}
	if camera {
		v.NotifyViewChanged()
	}
	return s.refresh.Refresh(v)
}

// OnIdle ends the gesture on the viewport called name: pending object edits
// are committed and redrawn, and the viewport returns to Idle. While a
// contour is still being built the viewport stays in PolyContour; EndContour
// followed by OnIdle finishes it.
func (s *Session) OnIdle(name string) error {
	v, err := s.View(name)
	if err != nil {
		return err
	}
	mode := v.Mode
	changed := false
	var errs []error

	switch mode {
	case view.Scale:
		if v.AdaptivePlot && v.RedrawOnZoom {
			if err := s.db.Regenerate(v); err != nil {
				errs = append(errs, err)
			}
			changed = true
		}
	case view.Translate, view.ConstrainedTranslate:
		if v.Grid.Enabled {
			v.SnapCenter()
			v.NotifyViewChanged()
			changed = true
		}
	}

	if s.edits.Len() > 0 {
		changed = true
		errs = append(errs, s.edits.Flush(func(path string, e edit.Entry) error {
			return s.commit(v, path, e)
		}))
	}

	// A contour being built click by click keeps its motion binding and
	// mode between clicks so the rubber-band point keeps following.
	if mode == view.PolyContour && v.Polygons.Build.Active {
		vlog.L().Debug("viewedit: contour build continues", "view", v.Name)
	} else {
		if mode != view.Idle {
			s.host.UnbindMotion(v)
		}
		v.Rubber.Active = false
		v.Polygons.EndContour()
		v.SetMode(view.Idle)
	}

	if changed {
		errs = append(errs, s.refresh.RefreshAll())
	} else {
		errs = append(errs, s.refresh.Refresh(v))
	}
	return errors.Join(errs...)
}

func (s *Session) commit(v *view.Viewport, path string, e edit.Entry) error {
	if e.Mode == view.ObjectTranslate {
		v.NotifyEditCommitted(path, e.Mode, e.Translation.Mul(s.db.Base2Local()))
	}
	how, ok := s.db.HowDrawn(path)
	if !ok {
		how = view.DrawWireframe
	}
	m := e.Matrix
	if e.Mode.EditsPrimitive() {
		vlog.L().Debug("viewedit: edit primitive", "path", path, "param", e.Param, "mode", e.Mode)
		if err := s.db.EditPrimitive(path, e.Param, e.Mode, e.Matrix); err != nil {
			return err
		}
		m = vmath.Identity()
	}
	vlog.L().Debug("viewedit: redraw edited path", "path", path, "mode", e.Mode, "flag", how.Flag())
	return s.db.RedrawPath(path, how, m)
}

// keypoint returns the point object rotations and scales of path act about.
func (s *Session) keypoint(path string) vmath.Vec3 {
	k, _ := s.db.Keypoint(path)
	return k
}

// EndContour stops adding points to the contour being built on the
// viewport called name. The viewport stays in its mode.
func (s *Session) EndContour(name string) error {
	v, err := s.View(name)
	if err != nil {
		return err
	}
	v.Polygons.EndContour()
	return s.refresh.Refresh(v)
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// dominant returns whichever of a, b has the larger magnitude.
func dominant(a, b float64) float64 {
	if math.Abs(a) > math.Abs(b) {
		return a
	}
	return b
}

// motionFunc applies one motion step. It reports whether the camera moved.
type motionFunc func(s *Session, v *view.Viewport, x, y float64) (bool, error)

var motionHandlers = map[view.Mode]motionFunc{
	view.Rotate:               motionRotate,
	view.Translate:            motionTranslate,
	view.Scale:                motionScale,
	view.ConstrainedRotate:    motionConstrainedRotate,
	view.ConstrainedTranslate: motionConstrainedTranslate,
	view.ObjectRotate:         motionObjectRotate,
	view.ObjectScale:          motionObjectScale,
	view.ObjectTranslate:      motionObjectTranslate,
	view.PrimitiveRotate:      motionObjectRotate,
	view.PrimitiveScale:       motionObjectScale,
	view.PrimitiveTranslate:   motionObjectTranslate,
	view.PolyCircle:           motionShape,
	view.PolyEllipse:          motionShape,
	view.PolyRect:             motionShape,
	view.PolyContour:          motionContour,
	view.DataMoveObject:       motionDataMove,
	view.DataMovePoint:        motionDataMove,
	view.DataScale:            motionDataScale,
	view.Rect:                 motionRect,
}

// deltas returns the clamped pointer deltas (x-prevX, prevY-y).
func deltas(v *view.Viewport, x, y float64) (float64, float64) {
	return v.ClampDelta(x - v.PrevX), v.ClampDelta(v.PrevY - y)
}

func motionRotate(_ *Session, v *view.Viewport, x, y float64) (bool, error) {
	dx := v.ClampDelta(v.PrevY-y) * v.RScale
	dy := v.ClampDelta(v.PrevX-x) * v.RScale
	v.Rotate(dx, dy, 0)
	return true, nil
}

func motionTranslate(_ *Session, v *view.Viewport, x, y float64) (bool, error) {
	k := v.Size() / v.Width()
	dx := v.ClampDelta(v.PrevX-x) * k
	dy := v.ClampDelta(y-v.PrevY) * k
	v.Translate(vmath.V3(dx, dy, 0))
	return true, nil
}

func scaleFactor(v *view.Viewport, x, y float64) float64 {
	dx, dy := deltas(v, x, y)
	k := v.SScale / v.Width()
	return 1 + dominant(dx*k, dy*k)
}

func motionScale(_ *Session, v *view.Viewport, x, y float64) (bool, error) {
	if err := v.Zoom(scaleFactor(v, x, y)); err != nil {
		return false, err
	}
	return true, nil
}

func motionConstrainedRotate(_ *Session, v *view.Viewport, x, y float64) (bool, error) {
	dx, dy := deltas(v, x, y)
	v.RotateModel(v.Axis.Vector(), -dominant(dx*v.RScale, dy*v.RScale))
	return true, nil
}

func motionConstrainedTranslate(_ *Session, v *view.Viewport, x, y float64) (bool, error) {
	dx, dy := deltas(v, x, y)
	k := v.Size() / v.Width()
	v.TranslateModel(v.Axis.Vector().Mul(-dominant(dx*k, dy*k)))
	return true, nil
}

func motionObjectTranslate(s *Session, v *view.Viewport, x, y float64) (bool, error) {
	dx, dy := deltas(v, x, y)
	k := v.Size() / v.Width() * s.db.Base2Local()
	local := v.ViewToModelVector(vmath.V3(dx*k, dy*k, 0))
	s.edits.AccumulateTranslation(v.EditPath, v.Mode, v.Param, local, s.db.Local2Base())
	return false, nil
}

func motionObjectRotate(s *Session, v *view.Viewport, x, y float64) (bool, error) {
	dx := v.ClampDelta(y-v.PrevY) * v.RScale
	dy := v.ClampDelta(x-v.PrevX) * v.RScale
	r := v.ViewToModelVector(vmath.V3(dx, dy, 0))
	rot := vmath.About(s.keypoint(v.EditPath), vmath.RotateDegrees(r.X, r.Y, r.Z))
	s.edits.Accumulate(v.EditPath, v.Mode, v.Param, rot)
	return false, nil
}

func motionObjectScale(s *Session, v *view.Viewport, x, y float64) (bool, error) {
	sf := scaleFactor(v, x, y)
	if !(sf > 0) {
		return false, view.ErrBadScale
	}
	s.edits.Accumulate(v.EditPath, v.Mode, v.Param, vmath.About(s.keypoint(v.EditPath), vmath.Scale(sf)))
	return false, nil
}

func motionShape(_ *Session, v *view.Viewport, x, y float64) (bool, error) {
	ps := v.Polygons
	vp := v.SnapView(v.ScreenToView(x, y))
	c := ps.Build.Prev
	switch v.Mode {
	case view.PolyCircle:
		return false, ps.UpdateShape(ps.CircleContour(c, vp))
	case view.PolyEllipse:
		return false, ps.UpdateShape(ps.EllipseContour(c, vp))
	default:
		return false, ps.UpdateShape(ps.RectContour(c, vp, v.Square))
	}
}

func motionContour(_ *Session, v *view.Viewport, x, y float64) (bool, error) {
	return false, v.Polygons.ContourMove(v.SnapView(v.ScreenToView(x, y)))
}

func motionDataMove(_ *Session, v *view.Viewport, x, y float64) (bool, error) {
	vp := v.ScreenToView(x, y)
	i := v.DataIndex
	if v.Mode == view.DataMovePoint {
		return false, v.Polygons.MovePoint(i[0], i[1], i[2], vp.X, vp.Y)
	}
	return false, v.Polygons.MoveContour(i[0], i[1], i[2], vp.X, vp.Y)
}

func motionDataScale(_ *Session, v *view.Viewport, x, y float64) (bool, error) {
	return false, v.Polygons.ScaleAboutCenter(scaleFactor(v, x, y))
}

func motionRect(_ *Session, v *view.Viewport, x, y float64) (bool, error) {
	v.Rubber.Width = x - v.Rubber.X
	v.Rubber.Height = v.Height() - y - v.Rubber.Y
	return false, nil
}
