// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display defines the render target a viewport draws into.
//
// A [Surface] receives model-space geometry together with a model-to-view
// matrix and maps it onto its pixels. Backends register themselves in a
// [Registry] by name; the built-in "software" backend renders into an
// in-memory RGBA image.
//
// Example:
//
//	s, err := display.NewSurfaceByName("software", display.Options{Width: 800, Height: 600})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
package display

import (
	"image"
	"image/color"

	"github.com/gogpu/viewedit/vmath"
)

// Surface is a viewport's render target.
//
// Surfaces are NOT thread-safe.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Aspect returns Width/Height.
	Aspect() float64

	// MakeCurrent binds the surface for drawing.
	MakeCurrent() error

	// DrawBegin starts a frame and clears the surface.
	DrawBegin() error

	// DrawEnd finishes the frame.
	DrawEnd() error

	SetLight(on bool)
	SetZBuffer(on bool)
	SetTransparency(on bool)
	SetDepthMask(on bool)

	// LoadMatrix sets the model-to-view matrix applied to drawn points.
	LoadMatrix(m vmath.Mat4)

	// DrawVList draws a display list.
	DrawVList(vl *VList, st Stroke) error

	// DrawPolyline draws an open or closed polyline of model points.
	DrawPolyline(pts []vmath.Vec3, closed bool, st Stroke) error

	// DrawText draws s with its baseline origin at pixel (x, y).
	DrawText(x, y int, s string, c color.RGBA) error

	// DrawPixels composites a pixel surface into its destination rectangle.
	DrawPixels(p *PixelSurface) error

	// IsVisible reports whether the surface is currently shown.
	IsVisible() bool

	// Close releases the surface. Close is idempotent.
	Close() error
}

// Stroke describes how lines are drawn.
type Stroke struct {
	Color  color.RGBA
	Width  int
	Dashed bool
}

// DefaultStroke returns a one pixel solid white stroke.
func DefaultStroke() Stroke {
	return Stroke{Color: color.RGBA{255, 255, 255, 255}, Width: 1}
}

// PixelSurface is a block of pixels composited with the 3D scene.
type PixelSurface struct {
	// Image holds the pixels.
	Image *image.RGBA

	// Rect is the destination in surface pixels. An empty Rect covers the
	// whole surface.
	Rect image.Rectangle
}

// NewPixelSurface allocates a transparent w×h pixel surface.
func NewPixelSurface(w, h int) *PixelSurface {
	return &PixelSurface{Image: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// CompositeMode selects how a viewport's pixel surface is combined with the
// scene.
type CompositeMode uint8

const (
	// CompositeOff ignores the pixel surface.
	CompositeOff CompositeMode = iota

	// CompositeUnderlay draws the pixels first and the scene on top.
	CompositeUnderlay

	// CompositeInterlay draws the pixels with depth writes disabled, then
	// the scene.
	CompositeInterlay

	// CompositeOverlay draws the scene first and the pixels on top.
	CompositeOverlay
)

var compositeNames = [...]string{
	CompositeOff:      "off",
	CompositeUnderlay: "underlay",
	CompositeInterlay: "interlay",
	CompositeOverlay:  "overlay",
}

func (m CompositeMode) String() string {
	if int(m) < len(compositeNames) {
		return compositeNames[m]
	}
	return "unknown"
}

// Options configures surface creation.
type Options struct {
	Width  int
	Height int

	// Background is the clear color used by DrawBegin.
	Background color.RGBA
}
