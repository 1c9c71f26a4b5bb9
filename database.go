package viewedit

import (
	"github.com/gogpu/viewedit/polygon"
	"github.com/gogpu/viewedit/view"
	"github.com/gogpu/viewedit/vmath"
)

// Database is the geometry database edits are committed to.
type Database interface {
	// Local2Base returns the size of one local unit in base units.
	Local2Base() float64

	// Base2Local returns the size of one base unit in local units.
	Base2Local() float64

	// HowDrawn returns the display mode path is drawn with.
	HowDrawn(path string) (view.DrawMode, bool)

	// RedrawPath redraws path with mode, applying matrix as the view
	// multiplier.
	RedrawPath(path string, mode view.DrawMode, matrix vmath.Mat4) error

	// Keypoint returns the point of path that rotations and scales are
	// applied about, in base units.
	Keypoint(path string) (vmath.Vec3, bool)

	// EditPrimitive applies matrix to the parameter param of the primitive
	// at path. mode is the primitive edit mode that produced it.
	EditPrimitive(path, param string, mode view.Mode, matrix vmath.Mat4) error

	// Regenerate rebuilds the displayed geometry of v, used after zooming
	// with adaptive plotting.
	Regenerate(v *view.Viewport) error

	polygon.Sketcher
}

// EventHost binds and unbinds pointer motion events for a view.
type EventHost interface {
	BindMotion(v *view.Viewport, m view.Mode)
	UnbindMotion(v *view.Viewport)
}

type noopHost struct{}

func (noopHost) BindMotion(*view.Viewport, view.Mode) {}
func (noopHost) UnbindMotion(*view.Viewport)          {}
