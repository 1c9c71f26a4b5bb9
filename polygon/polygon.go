// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package polygon implements the editable polygon data model of a viewport:
// ordered sets of multi-contour polygons with per-polygon style, indexed
// point editing, boolean clipping, area and overlap queries computed in the
// viewport's view plane, and interactive shape builders.
//
// Points are stored in model space. Every view-space operation goes through
// the [View] snapshot held by the [Set], which the owning viewport refreshes
// whenever its camera changes.
package polygon

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/viewedit/vmath"
)

// LineStyle selects how polygon outlines are stroked.
type LineStyle uint8

const (
	// LineSolid draws continuous outlines.
	LineSolid LineStyle = iota

	// LineDashed draws dashed outlines.
	LineDashed
)

// String returns the style name.
func (s LineStyle) String() string {
	if s == LineDashed {
		return "dashed"
	}
	return "solid"
}

// Style is the drawing style of a polygon.
type Style struct {
	Color     color.RGBA
	LineWidth int
	LineStyle LineStyle
}

// DefaultStyle returns white, one pixel, solid.
func DefaultStyle() Style {
	return Style{
		Color:     color.RGBA{255, 255, 255, 255},
		LineWidth: 1,
		LineStyle: LineSolid,
	}
}

// Contour is a closed ring of model-space points.
// The closing edge from the last point back to the first is implicit.
type Contour struct {
	Points []vmath.Vec3
	Hole   bool
}

// Clone returns a deep copy of the contour.
func (c Contour) Clone() Contour {
	pts := make([]vmath.Vec3, len(c.Points))
	copy(pts, c.Points)
	return Contour{Points: pts, Hole: c.Hole}
}

// Polygon is a list of contours and the style they are drawn with.
type Polygon struct {
	Contours []Contour
	Style    Style
}

// Clone returns a deep copy of the polygon.
func (p Polygon) Clone() Polygon {
	cs := make([]Contour, len(p.Contours))
	for i, c := range p.Contours {
		cs[i] = c.Clone()
	}
	return Polygon{Contours: cs, Style: p.Style}
}

// ClipOp is a boolean operation between two polygons.
type ClipOp uint8

const (
	Union ClipOp = iota
	Difference
	Intersection
	Xor
)

var clipOpNames = [...]string{
	Union:        "union",
	Difference:   "difference",
	Intersection: "intersection",
	Xor:          "xor",
}

// String returns the operation name.
func (op ClipOp) String() string {
	if int(op) < len(clipOpNames) {
		return clipOpNames[op]
	}
	return fmt.Sprintf("ClipOp(%d)", op)
}

// Valid reports whether op is one of the four defined operations.
func (op ClipOp) Valid() bool {
	return op <= Xor
}

// Errors.
var (
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("polygon: index out of range")

	// ErrMalformed is returned for contours with too few points, non-finite
	// coordinates or invalid argument values.
	ErrMalformed = errors.New("polygon: malformed input")
)

// IndexError reports a polygon, contour or point index outside its range.
type IndexError struct {
	What  string // "polygon", "contour" or "point"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("polygon: %s index %d out of range [0,%d)", e.What, e.Index, e.Len)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) hold.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// MalformedError describes invalid input data.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return "polygon: malformed input: " + e.Reason
}

// Is makes errors.Is(err, ErrMalformed) hold.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

func malformed(format string, args ...any) error {
	return &MalformedError{Reason: fmt.Sprintf(format, args...)}
}

func checkIndex(what string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{What: what, Index: i, Len: n}
	}
	return nil
}

// validateContours checks finite coordinates and, unless building, that
// every contour has at least three points.
func validateContours(contours []Contour, build bool) error {
	if len(contours) == 0 {
		return malformed("no contours")
	}
	for ci, c := range contours {
		if !build && len(c.Points) < 3 {
			return malformed("contour %d has %d points, need at least 3", ci, len(c.Points))
		}
		if len(c.Points) == 0 {
			return malformed("contour %d is empty", ci)
		}
		for pi, p := range c.Points {
			if !p.IsFinite() {
				return malformed("contour %d point %d is not finite", ci, pi)
			}
		}
	}
	return nil
}

func cloneContours(contours []Contour) []Contour {
	out := make([]Contour, len(contours))
	for i, c := range contours {
		out[i] = c.Clone()
	}
	return out
}
