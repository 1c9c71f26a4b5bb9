package view

import (
	"errors"
	"fmt"

	"github.com/gogpu/viewedit/vmath"
)

// Mode is the interaction mode of a viewport.
type Mode uint8

const (
	Idle Mode = iota
	Rotate
	Translate
	Scale
	ConstrainedRotate
	ConstrainedTranslate
	ObjectRotate
	ObjectScale
	ObjectTranslate
	PrimitiveRotate
	PrimitiveScale
	PrimitiveTranslate
	PolyCircle
	PolyEllipse
	PolyRect
	PolyContour
	DataMoveObject
	DataMovePoint
	DataScale
	Rect
)

var modeNames = [...]string{
	Idle:                 "idle",
	Rotate:               "rotate",
	Translate:            "translate",
	Scale:                "scale",
	ConstrainedRotate:    "constrained_rotate",
	ConstrainedTranslate: "constrained_translate",
	ObjectRotate:         "orotate",
	ObjectScale:          "oscale",
	ObjectTranslate:      "otranslate",
	PrimitiveRotate:      "protate",
	PrimitiveScale:       "pscale",
	PrimitiveTranslate:   "ptranslate",
	PolyCircle:           "poly_circ",
	PolyEllipse:          "poly_ell",
	PolyRect:             "poly_rect",
	PolyContour:          "poly_cont",
	DataMoveObject:       "data_move_object",
	DataMovePoint:        "data_move_point",
	DataScale:            "data_scale",
	Rect:                 "rect",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Valid reports whether m is a defined mode.
func (m Mode) Valid() bool { return int(m) < len(modeNames) }

// EditsObject reports whether m accumulates edits for an object path.
func (m Mode) EditsObject() bool {
	return m >= ObjectRotate && m <= PrimitiveTranslate
}

// EditsPrimitive reports whether m edits a named parameter of a primitive
// rather than the placement of the whole object.
func (m Mode) EditsPrimitive() bool {
	return m >= PrimitiveRotate && m <= PrimitiveTranslate
}

// BuildsPolygon reports whether m creates polygon geometry.
func (m Mode) BuildsPolygon() bool {
	return m >= PolyCircle && m <= PolyContour
}

// Constrained reports whether m acts along a single model axis.
func (m Mode) Constrained() bool {
	return m == ConstrainedRotate || m == ConstrainedTranslate
}

// MovesData reports whether m edits polygon data in place.
func (m Mode) MovesData() bool {
	return m >= DataMoveObject && m <= DataScale
}

// Axis is a model coordinate axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ErrBadAxis is returned by ParseAxis.
var ErrBadAxis = errors.New("view: axis must be x, y or z")

// ParseAxis accepts exactly "x", "y" or "z".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadAxis, s)
}

func (a Axis) String() string {
	return [...]string{"x", "y", "z"}[a%3]
}

// Vector returns the unit vector of the axis.
func (a Axis) Vector() vmath.Vec3 {
	switch a {
	case AxisY:
		return vmath.V3(0, 1, 0)
	case AxisZ:
		return vmath.V3(0, 0, 1)
	}
	return vmath.V3(1, 0, 0)
}
