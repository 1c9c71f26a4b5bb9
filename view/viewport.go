// Package view holds the per-viewport camera and interaction state.
//
// A Viewport owns a rotation, a view center and a view scale, from which it
// derives its model-to-view and view-to-model matrices. Camera operations
// keep both matrices and the polygon set's view snapshot in sync.
// Viewports are not safe for concurrent use.
package view

import (
	"errors"
	"math"

	"github.com/gogpu/viewedit/coord"
	"github.com/gogpu/viewedit/display"
	"github.com/gogpu/viewedit/internal/vlog"
	"github.com/gogpu/viewedit/polygon"
	"github.com/gogpu/viewedit/vmath"
)

// Default drag sensitivities.
const (
	DefaultRotateScale = 0.4
	DefaultScaleSens   = 2.0
	DefaultMinDelta    = -20.0
	DefaultMaxDelta    = 20.0
)

// ErrBadScale is returned by Zoom for non-positive or non-finite factors.
var ErrBadScale = errors.New("view: scale factor must be positive")

// Grid configures snapping.
type Grid struct {
	Enabled bool

	// Anchor is a model point the grid passes through.
	Anchor vmath.Vec3

	// ResX and ResY are the spacing in model units along view X and Y.
	ResX, ResY float64
}

// RubberBand is the rectangle shown in Rect mode, in pixels with the origin
// at the bottom-left corner.
type RubberBand struct {
	Active        bool
	X, Y          float64
	Width, Height float64
}

// Viewport is one interactive 3D view.
type Viewport struct {
	Name string

	rotation    vmath.Mat4
	center      vmath.Vec3
	scale       float64
	perspective float64
	model2view  vmath.Mat4
	view2model  vmath.Mat4

	Mode Mode
	Axis Axis

	// EditPath is the object edited by object and primitive modes.
	EditPath string

	// Param is the primitive parameter edited by primitive modes.
	Param string

	// DataIndex addresses the polygon, contour and point moved by the
	// data-move modes.
	DataIndex [3]int

	// Square makes PolyRect build squares.
	Square bool

	// PrevX and PrevY are the last pointer position in pixels.
	PrevX, PrevY float64

	MinDelta, MaxDelta float64
	RScale, SScale     float64

	// DataVZ is the view depth of interactively placed points.
	DataVZ float64

	Grid         Grid
	AdaptivePlot bool
	RedrawOnZoom bool

	Surface   display.Surface
	Pixels    *display.PixelSurface
	Composite display.CompositeMode

	Polygons *polygon.Set
	Rubber   RubberBand

	observers     []Observer
	editObservers []EditObserver
	notifying     [2]bool
}

// New creates a viewport drawing into s.
func New(name string, s display.Surface, opts ...Option) *Viewport {
	v := &Viewport{
		Name:     name,
		rotation: vmath.Identity(),
		scale:    1,
		MinDelta: DefaultMinDelta,
		MaxDelta: DefaultMaxDelta,
		RScale:   DefaultRotateScale,
		SScale:   DefaultScaleSens,
		Surface:  s,
		Polygons: polygon.NewSet(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.update()
	return v
}

// update recomputes the derived matrices and the polygon snapshot.
func (v *Viewport) update() {
	v.model2view = vmath.Scale(1 / v.scale).Multiply(v.rotation).Multiply(vmath.Translate(v.center.Neg()))
	v.view2model = v.model2view.Invert()
	if v.Polygons != nil {
		v.Polygons.View = polygon.View{
			Model2View: v.model2view,
			View2Model: v.view2model,
			Scale:      v.scale,
			DataVZ:     v.DataVZ,
		}
	}
}

func (v *Viewport) Rotation() vmath.Mat4   { return v.rotation }
func (v *Viewport) Center() vmath.Vec3     { return v.center }
func (v *Viewport) Scale() float64         { return v.scale }
func (v *Viewport) Model2View() vmath.Mat4 { return v.model2view }
func (v *Viewport) View2Model() vmath.Mat4 { return v.view2model }

// Size returns the viewport size in model units.
func (v *Viewport) Size() float64 { return 2 * v.scale }

// Perspective returns the perspective angle in degrees, 0 for orthographic.
func (v *Viewport) Perspective() float64 { return v.perspective }

// SetPerspective sets the perspective angle in degrees.
// Values outside (0, 180) select orthographic projection.
func (v *Viewport) SetPerspective(deg float64) {
	if !(deg > 0 && deg < 180) {
		deg = 0
	}
	v.perspective = deg
}

// ProjectionMatrix returns the perspective matrix applied after
// Model2View: identity when orthographic.
func (v *Viewport) ProjectionMatrix() vmath.Mat4 {
	if v.perspective == 0 {
		return vmath.Identity()
	}
	f := 1 / math.Tan(vmath.Radians(v.perspective)/2)
	m := vmath.Identity()
	m[14] = -1 / f
	return m
}

// SetView replaces rotation, center and scale at once.
func (v *Viewport) SetView(rotation vmath.Mat4, center vmath.Vec3, scale float64) error {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return ErrBadScale
	}
	v.rotation, v.center, v.scale = rotation, center, scale
	v.update()
	return nil
}

// SetCenter moves the view center.
func (v *Viewport) SetCenter(c vmath.Vec3) {
	v.center = c
	v.update()
}

// SetScale sets the view scale (half the view size).
func (v *Viewport) SetScale(s float64) error {
	if !(s > 0) || math.IsInf(s, 0) {
		return ErrBadScale
	}
	v.scale = s
	v.update()
	return nil
}

// SetDataVZ sets the view depth of placed points.
func (v *Viewport) SetDataVZ(z float64) {
	v.DataVZ = z
	v.update()
}

// Rotate turns the view about its own axes by the given degrees.
func (v *Viewport) Rotate(x, y, z float64) {
	v.rotation = vmath.RotateDegrees(x, y, z).Multiply(v.rotation)
	v.update()
}

// RotateModel turns the view about a model axis by deg degrees.
func (v *Viewport) RotateModel(axis vmath.Vec3, deg float64) {
	v.rotation = v.rotation.Multiply(vmath.RotateAxis(axis, vmath.Radians(deg)))
	v.update()
}

// Translate moves the view center by d, given in model units along the view
// axes.
func (v *Viewport) Translate(d vmath.Vec3) {
	v.center = v.center.Add(v.rotation.Invert().TransformVector(d))
	v.update()
}

// TranslateModel moves the view center by d in model space.
func (v *Viewport) TranslateModel(d vmath.Vec3) {
	v.center = v.center.Add(d)
	v.update()
}

// Zoom divides the view scale by sf; sf > 1 zooms in.
func (v *Viewport) Zoom(sf float64) error {
	if !(sf > 0) || math.IsInf(sf, 0) {
		return ErrBadScale
	}
	v.scale /= sf
	v.update()
	return nil
}

// ViewToModelVector rotates a view-axis vector into model axes.
func (v *Viewport) ViewToModelVector(d vmath.Vec3) vmath.Vec3 {
	return v.rotation.Invert().TransformVector(d)
}

// ClampDelta limits a pointer delta to [MinDelta, MaxDelta].
func (v *Viewport) ClampDelta(d float64) float64 {
	return math.Min(math.Max(d, v.MinDelta), v.MaxDelta)
}

// SurfaceSize returns the bound surface size.
func (v *Viewport) SurfaceSize() coord.Size {
	if v.Surface == nil {
		return coord.Size{Width: 1, Height: 1, Aspect: 1}
	}
	return coord.Size{Width: v.Surface.Width(), Height: v.Surface.Height(), Aspect: v.Surface.Aspect()}
}

// Width returns the surface width in pixels.
func (v *Viewport) Width() float64 { return float64(v.SurfaceSize().Width) }

// Height returns the surface height in pixels.
func (v *Viewport) Height() float64 { return float64(v.SurfaceSize().Height) }

// ScreenToView maps a pointer position to view space at DataVZ.
func (v *Viewport) ScreenToView(x, y float64) vmath.Vec3 {
	return coord.ScreenToView(x, y, v.SurfaceSize(), v.DataVZ)
}

// SnapView snaps a view point to the grid. Without an enabled grid the
// point is returned unchanged.
func (v *Viewport) SnapView(p vmath.Vec3) vmath.Vec3 {
	g := v.Grid
	if !g.Enabled || !(g.ResX > 0) || !(g.ResY > 0) {
		return p
	}
	a := v.model2view.TransformPoint(g.Anchor)
	rx, ry := g.ResX/v.scale, g.ResY/v.scale
	p.X = a.X + math.Round((p.X-a.X)/rx)*rx
	p.Y = a.Y + math.Round((p.Y-a.Y)/ry)*ry
	return p
}

// SnapCenter moves the view center onto the grid.
func (v *Viewport) SnapCenter() {
	if !v.Grid.Enabled {
		return
	}
	c := v.SnapView(vmath.Vec3{})
	v.center = v.view2model.TransformPoint(c)
	v.update()
}

// SetMode switches the interaction mode.
func (v *Viewport) SetMode(m Mode) {
	if m != v.Mode {
		vlog.L().Debug("view: mode change", "view", v.Name, "from", v.Mode, "to", m)
	}
	v.Mode = m
}
