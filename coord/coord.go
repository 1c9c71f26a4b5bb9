// Package coord converts between the three coordinate spaces of a viewport.
//
// Screen space is pixels with the origin at the top-left corner and Y
// growing downward. View space is normalized: X spans [-1, 1] across the
// surface width and Y is scaled by the inverse of the aspect ratio, so one
// view unit covers the same number of pixels on both axes. Model space is
// the world coordinate system of the geometry, related to view space by the
// viewport's model-to-view matrix.
//
// All functions are pure. Passing a non-positive width, height or aspect is a
// programmer error and panics.
package coord

import "github.com/gogpu/viewedit/vmath"

// Size describes a surface in pixels.
// A zero Aspect means Width/Height.
type Size struct {
	Width  int
	Height int
	Aspect float64
}

// AspectRatio returns the effective aspect ratio.
func (s Size) AspectRatio() float64 {
	if s.Aspect != 0 {
		return s.Aspect
	}
	mustPositive(float64(s.Height), "height")
	return float64(s.Width) / float64(s.Height)
}

// ScreenToViewX maps a pixel column to view X.
func ScreenToViewX(x, width float64) float64 {
	mustPositive(width, "width")
	return x/width*2 - 1
}

// ScreenToViewY maps a pixel row to view Y.
func ScreenToViewY(y, height, aspect float64) float64 {
	mustPositive(height, "height")
	mustPositive(aspect, "aspect")
	return (y/height*-2 + 1) / aspect
}

// ViewToScreenX is the inverse of ScreenToViewX.
func ViewToScreenX(vx, width float64) float64 {
	mustPositive(width, "width")
	return (vx + 1) * width / 2
}

// ViewToScreenY is the inverse of ScreenToViewY.
func ViewToScreenY(vy, height, aspect float64) float64 {
	mustPositive(height, "height")
	mustPositive(aspect, "aspect")
	return (1 - vy*aspect) * height / 2
}

// ScreenToView maps a pixel position to view space at depth vz.
func ScreenToView(x, y float64, s Size, vz float64) vmath.Vec3 {
	return vmath.Vec3{
		X: ScreenToViewX(x, float64(s.Width)),
		Y: ScreenToViewY(y, float64(s.Height), s.AspectRatio()),
		Z: vz,
	}
}

// ViewToScreen maps a view-space point to a pixel position, ignoring Z.
func ViewToScreen(p vmath.Vec3, s Size) (x, y float64) {
	return ViewToScreenX(p.X, float64(s.Width)), ViewToScreenY(p.Y, float64(s.Height), s.AspectRatio())
}

// ViewToModel transforms a view-space point into model space.
func ViewToModel(p vmath.Vec3, view2model vmath.Mat4) vmath.Vec3 {
	return view2model.TransformPoint(p)
}

// ModelToView transforms a model-space point into view space.
func ModelToView(p vmath.Vec3, model2view vmath.Mat4) vmath.Vec3 {
	return model2view.TransformPoint(p)
}

func mustPositive(v float64, what string) {
	if !(v > 0) {
		panic("coord: non-positive " + what)
	}
}
