// Package memdb is an in-memory geometry database made of named boxes. It
// serves the demo and the tests as both the edit database and the scene.
package memdb

import (
	"errors"
	"fmt"

	"github.com/gogpu/viewedit/display"
	"github.com/gogpu/viewedit/polygon"
	"github.com/gogpu/viewedit/refresh"
	"github.com/gogpu/viewedit/view"
	"github.com/gogpu/viewedit/vmath"
)

// ErrNotFound is returned for unknown objects and sketches.
var ErrNotFound = errors.New("memdb: not found")

// Object is an axis-aligned box with a placement matrix.
type Object struct {
	Path   string
	Lo, Hi vmath.Vec3
	Mode   view.DrawMode
	Matrix vmath.Mat4
}

// PrimitiveEdit records one EditPrimitive call.
type PrimitiveEdit struct {
	Path   string
	Param  string
	Mode   view.Mode
	Matrix vmath.Mat4
}

// Redraw records one RedrawPath call.
type Redraw struct {
	Path   string
	Mode   view.DrawMode
	Matrix vmath.Mat4
}

// DB is the in-memory database.
type DB struct {
	objects  map[string]*Object
	order    []string
	sketches map[string]polygon.Polygon

	// LocalUnit is the size of one local unit in base units.
	LocalUnit float64

	Redraws        []Redraw
	PrimitiveEdits []PrimitiveEdit
	Regens         int
}

// New creates an empty database working in base units.
func New() *DB {
	return &DB{
		objects:   make(map[string]*Object),
		sketches:  make(map[string]polygon.Polygon),
		LocalUnit: 1,
	}
}

// AddBox adds or replaces a box object.
func (db *DB) AddBox(path string, lo, hi vmath.Vec3, mode view.DrawMode) {
	if _, ok := db.objects[path]; !ok {
		db.order = append(db.order, path)
	}
	db.objects[path] = &Object{Path: path, Lo: lo, Hi: hi, Mode: mode, Matrix: vmath.Identity()}
}

// Object returns a copy of the object at path.
func (db *DB) Object(path string) (Object, bool) {
	o, ok := db.objects[path]
	if !ok {
		return Object{}, false
	}
	return *o, true
}

func (db *DB) Local2Base() float64 { return db.LocalUnit }
func (db *DB) Base2Local() float64 { return 1 / db.LocalUnit }

func (db *DB) HowDrawn(path string) (view.DrawMode, bool) {
	o, ok := db.objects[path]
	if !ok {
		return 0, false
	}
	return o.Mode, true
}

// RedrawPath applies m to the object's placement and records the call.
func (db *DB) RedrawPath(path string, mode view.DrawMode, m vmath.Mat4) error {
	o, ok := db.objects[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	o.Mode = mode
	o.Matrix = m.Multiply(o.Matrix)
	db.Redraws = append(db.Redraws, Redraw{Path: path, Mode: mode, Matrix: m})
	return nil
}

// Keypoint returns the placed center of the box at path.
func (db *DB) Keypoint(path string) (vmath.Vec3, bool) {
	o, ok := db.objects[path]
	if !ok {
		return vmath.Vec3{}, false
	}
	return o.Matrix.TransformPoint(o.Lo.Add(o.Hi).Mul(0.5)), true
}

// EditPrimitive moves one corner of the box at path: param "V" is the
// minimum corner, "H" the maximum. m acts in base units on the placed
// corner; the box stays axis aligned in its own frame.
func (db *DB) EditPrimitive(path, param string, mode view.Mode, m vmath.Mat4) error {
	o, ok := db.objects[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	var corner *vmath.Vec3
	switch param {
	case "V":
		corner = &o.Lo
	case "H":
		corner = &o.Hi
	default:
		return fmt.Errorf("memdb: %s: unknown parameter %q", path, param)
	}
	placed := m.TransformPoint(o.Matrix.TransformPoint(*corner))
	*corner = o.Matrix.Invert().TransformPoint(placed)
	lo, hi := o.Lo, o.Hi
	o.Lo = vmath.V3(min(lo.X, hi.X), min(lo.Y, hi.Y), min(lo.Z, hi.Z))
	o.Hi = vmath.V3(max(lo.X, hi.X), max(lo.Y, hi.Y), max(lo.Z, hi.Z))
	db.PrimitiveEdits = append(db.PrimitiveEdits, PrimitiveEdit{Path: path, Param: param, Mode: mode, Matrix: m})
	return nil
}

func (db *DB) Regenerate(*view.Viewport) error {
	db.Regens++
	return nil
}

func (db *DB) ExportSketch(name string, p polygon.Polygon, _ polygon.View) error {
	db.sketches[name] = p.Clone()
	return nil
}

func (db *DB) ImportSketch(name string, _ polygon.View) (polygon.Polygon, error) {
	p, ok := db.sketches[name]
	if !ok {
		return polygon.Polygon{}, fmt.Errorf("%w: sketch %s", ErrNotFound, name)
	}
	return p.Clone(), nil
}

// corners returns the eight placed corners of o.
func (o *Object) corners() [8]vmath.Vec3 {
	return o.cornersWith(vmath.Identity())
}

// cornersWith returns the corners of o placed by pending * o.Matrix.
func (o *Object) cornersWith(pending vmath.Mat4) [8]vmath.Vec3 {
	m := pending.Multiply(o.Matrix)
	var c [8]vmath.Vec3
	for i := range c {
		p := o.Lo
		if i&1 != 0 {
			p.X = o.Hi.X
		}
		if i&2 != 0 {
			p.Y = o.Hi.Y
		}
		if i&4 != 0 {
			p.Z = o.Hi.Z
		}
		c[i] = m.TransformPoint(p)
	}
	return c
}

// boxEdges lists corner index pairs of a box's twelve edges.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// DrawScene draws every box as a wireframe, previewing pending edits.
func (db *DB) DrawScene(_ *view.Viewport, s display.Surface, pending refresh.EditLookup) error {
	var vl display.VList
	for _, path := range db.order {
		m := vmath.Identity()
		if pending != nil {
			if pm, ok := pending(path); ok {
				m = pm
			}
		}
		c := db.objects[path].cornersWith(m)
		for _, e := range boxEdges {
			vl.MoveTo(c[e[0]])
			vl.DrawTo(c[e[1]])
		}
	}
	if vl.Len() == 0 {
		return nil
	}
	return s.DrawVList(&vl, display.DefaultStroke())
}

// Bounds returns the box enclosing every placed object.
func (db *DB) Bounds() (lo, hi vmath.Vec3, ok bool) {
	for _, path := range db.order {
		for _, p := range db.objects[path].corners() {
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			lo = vmath.V3(min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z))
			hi = vmath.V3(max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z))
		}
	}
	return lo, hi, ok
}
