// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/viewedit/coord"
	"github.com/gogpu/viewedit/vmath"
)

// dashLength is the on and off run of dashed strokes, in pixels.
const dashLength = 4

// ImageSurface is the software backend. Strokes are rendered by a gg
// context. Text and pixel blocks are composited with x/image into the same
// pixel buffer.
//
// Example:
//
//	s := display.NewImageSurface(display.Options{Width: 640, Height: 480})
//	_ = s.DrawBegin()
//	_ = s.DrawPolyline(pts, true, display.DefaultStroke())
//	_ = s.DrawEnd()
//	img := s.Snapshot()
type ImageSurface struct {
	dc  *gg.Context
	pm  *gg.Pixmap
	img *image.RGBA // aliases pm's pixel data

	background color.RGBA
	matrix     vmath.Mat4

	light, zbuffer, transparency bool
	depthMask                    bool

	visible bool
	closed  bool
}

// NewImageSurface creates a software surface. Non-positive sizes become 1.
func NewImageSurface(opts Options) *ImageSurface {
	w, h := max(opts.Width, 1), max(opts.Height, 1)
	pm := gg.NewPixmap(w, h)
	dc := gg.NewContext(w, h, gg.WithPixmap(pm))
	return &ImageSurface{
		dc: dc,
		pm: pm,
		img: &image.RGBA{
			Pix:    pm.Data(),
			Stride: 4 * w,
			Rect:   image.Rect(0, 0, w, h),
		},
		background: opts.Background,
		matrix:     vmath.Identity(),
		depthMask:  true,
		visible:    true,
	}
}

func (s *ImageSurface) Width() int  { return s.pm.Width() }
func (s *ImageSurface) Height() int { return s.pm.Height() }

func (s *ImageSurface) Aspect() float64 {
	return float64(s.Width()) / float64(s.Height())
}

func (s *ImageSurface) MakeCurrent() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

// DrawBegin clears the surface to the background color.
func (s *ImageSurface) DrawBegin() error {
	if s.closed {
		return ErrClosed
	}
	s.dc.ClearWithColor(gg.FromColor(s.background))
	return nil
}

func (s *ImageSurface) DrawEnd() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

func (s *ImageSurface) SetLight(on bool)        { s.light = on }
func (s *ImageSurface) SetZBuffer(on bool)      { s.zbuffer = on }
func (s *ImageSurface) SetTransparency(on bool) { s.transparency = on }
func (s *ImageSurface) SetDepthMask(on bool)    { s.depthMask = on }

// DepthMask reports whether depth writes are enabled.
func (s *ImageSurface) DepthMask() bool { return s.depthMask }

func (s *ImageSurface) LoadMatrix(m vmath.Mat4) { s.matrix = m }

// SetVisible shows or hides the surface.
func (s *ImageSurface) SetVisible(v bool) { s.visible = v }

func (s *ImageSurface) IsVisible() bool { return s.visible && !s.closed }

func (s *ImageSurface) toScreen(p vmath.Vec3) (float64, float64) {
	return coord.ViewToScreen(s.matrix.TransformPoint(p), coord.Size{Width: s.Width(), Height: s.Height()})
}

// pen prepares the gg context for st.
func (s *ImageSurface) pen(st Stroke) {
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(float64(max(st.Width, 1)))
}

// segment strokes a→b clipped to the surface. Dashed strokes are split
// into on runs of dashLength pixels, each stroked as its own subpath.
func (s *ImageSurface) segment(a, b vmath.Vec3, st Stroke) error {
	x0, y0 := s.toScreen(a)
	x1, y1 := s.toScreen(b)
	margin := float64(max(st.Width, 1))
	w, h := float64(s.Width()), float64(s.Height())
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, -margin, -margin, w+margin, h+margin)
	if !ok {
		return nil
	}
	if !st.Dashed {
		return s.run(x0, y0, x1, y1)
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length
	var errs []error
	for t := 0.0; t < length; t += 2 * dashLength {
		e := math.Min(t+dashLength, length)
		if err := s.run(x0+ux*t, y0+uy*t, x0+ux*e, y0+uy*e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *ImageSurface) run(x0, y0, x1, y1 float64) error {
	s.dc.MoveTo(x0, y0)
	s.dc.LineTo(x1, y1)
	return s.dc.Stroke()
}

func (s *ImageSurface) DrawVList(vl *VList, st Stroke) error {
	if s.closed {
		return ErrClosed
	}
	s.pen(st)
	var errs []error
	vl.Segments(func(a, b vmath.Vec3) {
		if err := s.segment(a, b, st); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

func (s *ImageSurface) DrawPolyline(pts []vmath.Vec3, closed bool, st Stroke) error {
	if s.closed {
		return ErrClosed
	}
	s.pen(st)
	var errs []error
	for i := 1; i < len(pts); i++ {
		if err := s.segment(pts[i-1], pts[i], st); err != nil {
			errs = append(errs, err)
		}
	}
	if closed && len(pts) > 2 {
		if err := s.segment(pts[len(pts)-1], pts[0], st); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// clipSegment clips a segment to the rectangle [xmin,xmax]x[ymin,ymax]
// (Liang-Barsky). ok is false when nothing is inside.
func clipSegment(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// DrawText draws s with the 7x13 basic font.
func (s *ImageSurface) DrawText(x, y int, text string, c color.RGBA) error {
	if s.closed {
		return ErrClosed
	}
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

// DrawPixels composites p over the surface. Pixel blocks whose size differs
// from the destination are scaled bilinearly.
func (s *ImageSurface) DrawPixels(p *PixelSurface) error {
	if s.closed {
		return ErrClosed
	}
	if p == nil || p.Image == nil {
		return nil
	}
	dst := p.Rect
	if dst.Empty() {
		dst = s.img.Bounds()
	}
	src := p.Image.Bounds()
	if dst.Size() == src.Size() {
		draw.Draw(s.img, dst, p.Image, src.Min, draw.Over)
		return nil
	}
	draw.BiLinear.Scale(s.img, dst, p.Image, src, draw.Over, nil)
	return nil
}

// Snapshot returns a copy of the surface pixels.
func (s *ImageSurface) Snapshot() *image.RGBA {
	return s.pm.ToImage()
}

// At returns the pixel at (x, y).
func (s *ImageSurface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}
