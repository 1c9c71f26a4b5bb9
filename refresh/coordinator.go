// Package refresh redraws viewports: it keeps the set of live viewports and,
// for each one, composites its pixel surface, the 3D scene, its polygon set
// and its rubber band in the order its composite mode asks for.
package refresh

import (
	"errors"
	"fmt"

	"github.com/gogpu/viewedit/coord"
	"github.com/gogpu/viewedit/display"
	"github.com/gogpu/viewedit/internal/vlog"
	"github.com/gogpu/viewedit/polygon"
	"github.com/gogpu/viewedit/view"
	"github.com/gogpu/viewedit/vmath"
)

// Scene draws the 3D geometry of a viewport.
type Scene interface {
	// DrawScene draws into s. The model-to-view matrix is already loaded.
	// Objects with an uncommitted edit are drawn through the matrix
	// pending returns for them.
	DrawScene(v *view.Viewport, s display.Surface, pending EditLookup) error

	// Bounds returns the bounding box of the scene; ok is false when the
	// scene is empty.
	Bounds() (lo, hi vmath.Vec3, ok bool)
}

// EditLookup returns the uncommitted edit matrix of path, if any.
type EditLookup func(path string) (vmath.Mat4, bool)

func noEdits(string) (vmath.Mat4, bool) { return vmath.Identity(), false }

// ErrDuplicateView is returned by Add for a name already in use.
var ErrDuplicateView = errors.New("refresh: duplicate view name")

// Coordinator redraws the live viewports. It is not safe for concurrent use.
type Coordinator struct {
	scene   Scene
	pending EditLookup
	views   []*view.Viewport
	enabled bool
}

// New creates an enabled coordinator drawing scene.
func New(scene Scene) *Coordinator {
	return &Coordinator{scene: scene, pending: noEdits, enabled: true}
}

// SetPending sets the lookup the scene previews uncommitted edits with.
// A nil lookup previews nothing.
func (c *Coordinator) SetPending(fn EditLookup) {
	if fn == nil {
		fn = noEdits
	}
	c.pending = fn
}

// Add registers a viewport. Viewports are refreshed in the order they
// were added.
func (c *Coordinator) Add(v *view.Viewport) error {
	if _, ok := c.Lookup(v.Name); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateView, v.Name)
	}
	c.views = append(c.views, v)
	return nil
}

// Remove unregisters the viewport called name.
func (c *Coordinator) Remove(name string) bool {
	for i, v := range c.views {
		if v.Name == name {
			c.views = append(c.views[:i], c.views[i+1:]...)
			return true
		}
	}
	return false
}

// Lookup finds a viewport by name.
func (c *Coordinator) Lookup(name string) (*view.Viewport, bool) {
	for _, v := range c.views {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Views returns the live viewports in order.
func (c *Coordinator) Views() []*view.Viewport {
	out := make([]*view.Viewport, len(c.views))
	copy(out, c.views)
	return out
}

// SetEnabled turns refreshing on or off.
func (c *Coordinator) SetEnabled(on bool) { c.enabled = on }

// Enabled reports whether refreshing is on.
func (c *Coordinator) Enabled() bool { return c.enabled }

// Refresh redraws v. It does nothing while refreshing is disabled or the
// surface is hidden.
func (c *Coordinator) Refresh(v *view.Viewport) error {
	s := v.Surface
	if !c.enabled || s == nil || !s.IsVisible() {
		return nil
	}
	if err := c.draw(v, s); err != nil {
		return fmt.Errorf("refresh: view %s: %w", v.Name, err)
	}
	return nil
}

func (c *Coordinator) draw(v *view.Viewport, s display.Surface) error {
	if err := s.MakeCurrent(); err != nil {
		return err
	}
	if err := s.DrawBegin(); err != nil {
		return err
	}
	return errors.Join(c.drawFrame(v, s), s.DrawEnd())
}

// drawFrame draws everything between DrawBegin and DrawEnd.
func (c *Coordinator) drawFrame(v *view.Viewport, s display.Surface) error {
	var err error
	mode := v.Composite
	if v.Pixels == nil {
		mode = display.CompositeOff
	}
	switch mode {
	case display.CompositeUnderlay:
		err = errors.Join(s.DrawPixels(v.Pixels), c.drawScene(v, s))
	case display.CompositeInterlay:
		s.SetDepthMask(false)
		err = s.DrawPixels(v.Pixels)
		s.SetDepthMask(true)
		err = errors.Join(err, c.drawScene(v, s))
	case display.CompositeOverlay:
		err = errors.Join(c.drawScene(v, s), s.DrawPixels(v.Pixels))
	default:
		err = c.drawScene(v, s)
	}
	if err != nil {
		return err
	}

	if v.Polygons != nil && v.Polygons.Draw {
		if err := drawPolygons(v, s); err != nil {
			return err
		}
	}
	if v.Rubber.Active {
		return drawRubber(v, s)
	}
	return nil
}

func (c *Coordinator) drawScene(v *view.Viewport, s display.Surface) error {
	s.LoadMatrix(v.ProjectionMatrix().Multiply(v.Model2View()))
	if c.scene == nil {
		return nil
	}
	return c.scene.DrawScene(v, s, c.pending)
}

func drawPolygons(v *view.Viewport, s display.Surface) error {
	s.LoadMatrix(v.ProjectionMatrix().Multiply(v.Model2View()))
	set := v.Polygons
	var errs []error
	set.Each(func(i int, p *polygon.Polygon) {
		st := display.Stroke{
			Color:  p.Style.Color,
			Width:  p.Style.LineWidth,
			Dashed: p.Style.LineStyle == polygon.LineDashed,
		}
		open := set.Build.Active && set.Build.Polygon == i
		for _, ct := range p.Contours {
			if err := s.DrawPolyline(ct.Points, !open, st); err != nil {
				errs = append(errs, err)
			}
		}
	})
	return errors.Join(errs...)
}

func drawRubber(v *view.Viewport, s display.Surface) error {
	s.LoadMatrix(vmath.Identity())
	size := v.SurfaceSize()
	r := v.Rubber
	h := float64(size.Height)
	corner := func(x, y float64) vmath.Vec3 {
		return coord.ScreenToView(x, h-y, size, 0)
	}
	pts := []vmath.Vec3{
		corner(r.X, r.Y),
		corner(r.X+r.Width, r.Y),
		corner(r.X+r.Width, r.Y+r.Height),
		corner(r.X, r.Y+r.Height),
	}
	return s.DrawPolyline(pts, true, display.DefaultStroke())
}

// RefreshAll redraws every live viewport and joins their errors.
func (c *Coordinator) RefreshAll() error {
	var errs []error
	for _, v := range c.views {
		if err := c.Refresh(v); err != nil {
			vlog.L().Warn("refresh: view failed", "view", v.Name, "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Autoview fits v to the scene bounds: the center moves to the middle of the
// bounding box and the view scale becomes its half diagonal times factor. A
// non-positive factor means 1. Empty scenes leave the view unchanged.
func (c *Coordinator) Autoview(v *view.Viewport, factor float64) error {
	if c.scene == nil {
		return nil
	}
	lo, hi, ok := c.scene.Bounds()
	if !ok {
		return nil
	}
	if factor <= 0 {
		factor = 1
	}
	radius := hi.Sub(lo).Length() / 2
	if radius == 0 {
		radius = 1
	}
	if err := v.SetView(v.Rotation(), lo.Add(hi).Mul(0.5), radius*factor); err != nil {
		return err
	}
	v.NotifyViewChanged()
	return c.Refresh(v)
}
