package view

import (
	"github.com/gogpu/viewedit/display"
	"github.com/gogpu/viewedit/vmath"
)

// Option configures a Viewport during creation.
//
// Example:
//
//	v := view.New("front", surf,
//	    view.WithViewScale(500),
//	    view.WithDeltaBounds(-10, 10),
//	)
type Option func(*Viewport)

// WithDeltaBounds sets the pointer delta clamp. Swapped bounds are reordered.
func WithDeltaBounds(lo, hi float64) Option {
	return func(v *Viewport) {
		if lo > hi {
			lo, hi = hi, lo
		}
		v.MinDelta, v.MaxDelta = lo, hi
	}
}

// WithRotateScale sets the rotation sensitivity in degrees per pixel.
func WithRotateScale(s float64) Option {
	return func(v *Viewport) { v.RScale = s }
}

// WithScaleSensitivity sets the zoom sensitivity.
func WithScaleSensitivity(s float64) Option {
	return func(v *Viewport) { v.SScale = s }
}

// WithViewScale sets the initial view scale. Non-positive values are ignored.
func WithViewScale(s float64) Option {
	return func(v *Viewport) {
		if s > 0 {
			v.scale = s
		}
	}
}

// WithCenter sets the initial view center.
func WithCenter(c vmath.Vec3) Option {
	return func(v *Viewport) { v.center = c }
}

// WithRotation sets the initial view rotation.
func WithRotation(r vmath.Mat4) Option {
	return func(v *Viewport) { v.rotation = r }
}

// WithGrid configures grid snapping.
func WithGrid(g Grid) Option {
	return func(v *Viewport) { v.Grid = g }
}

// WithAdaptivePlot enables adaptive plotting; redrawOnZoom regenerates the
// scene after zoom gestures.
func WithAdaptivePlot(redrawOnZoom bool) Option {
	return func(v *Viewport) {
		v.AdaptivePlot = true
		v.RedrawOnZoom = redrawOnZoom
	}
}

// WithPixelSurface binds a pixel surface composited with mode.
func WithPixelSurface(p *display.PixelSurface, mode display.CompositeMode) Option {
	return func(v *Viewport) {
		v.Pixels = p
		v.Composite = mode
	}
}

// WithObserver registers a view observer.
func WithObserver(o Observer) Option {
	return func(v *Viewport) { v.AddObserver(o) }
}

// WithEditObserver registers an edit observer.
func WithEditObserver(o EditObserver) Option {
	return func(v *Viewport) { v.AddEditObserver(o) }
}
