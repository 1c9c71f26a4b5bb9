// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewedit

import (
	"fmt"

	"github.com/gogpu/viewedit/display"
	"github.com/gogpu/viewedit/edit"
	"github.com/gogpu/viewedit/internal/vlog"
	"github.com/gogpu/viewedit/polygon"
	"github.com/gogpu/viewedit/refresh"
	"github.com/gogpu/viewedit/view"
	"github.com/gogpu/viewedit/vmath"
)

// Session owns the open viewports of one editing session, routes pointer
// gestures to them and commits the resulting edits to the database.
//
// A Session is not safe for concurrent use; drive it from the event loop
// that delivers pointer events.
type Session struct {
	db       Database
	refresh  *refresh.Coordinator
	edits    *edit.Accumulator
	host     EventHost
	registry *display.Registry
	clipper  polygon.Clipper
}

// NewSession creates a session editing db and drawing scene into its views.
func NewSession(db Database, scene refresh.Scene, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := refresh.New(scene)
	c.SetEnabled(o.refresh)
	s := &Session{
		db:       db,
		refresh:  c,
		edits:    edit.New(),
		host:     o.host,
		registry: o.registry,
		clipper:  o.clipper,
	}
	c.SetPending(s.previewMatrix)
	return s
}

// previewMatrix is the matrix the scene draws path through until its
// pending edit is committed. Primitive edits change geometry rather than
// placement and are not previewed.
func (s *Session) previewMatrix(path string) (vmath.Mat4, bool) {
	e, ok := s.edits.Lookup(path)
	if !ok || e.Mode.EditsPrimitive() {
		return vmath.Identity(), false
	}
	return e.Matrix, true
}

// OpenView creates a viewport on a new surface of the named display
// backend. An empty backend picks the best available one.
func (s *Session) OpenView(name, backend string, width, height int, opts ...view.Option) (*view.Viewport, error) {
	if name == "" {
		return nil, &InputError{Op: "open", Arg: "name", Reason: "empty"}
	}
	if _, ok := s.refresh.Lookup(name); ok {
		return nil, fmt.Errorf("%w: view %s already open", ErrPrecondition, name)
	}
	dopts := display.Options{Width: width, Height: height}
	var (
		surf display.Surface
		err  error
	)
	if backend == "" {
		surf, err = s.registry.NewSurface(dopts)
	} else {
		surf, err = s.registry.NewSurfaceByName(backend, dopts)
	}
	if err != nil {
		return nil, fmt.Errorf("viewedit: open %s: %w", name, err)
	}
	v := view.New(name, surf, opts...)
	if err := s.AttachView(v); err != nil {
		_ = surf.Close()
		return nil, err
	}
	return v, nil
}

// AttachView adds an existing viewport to the session.
func (s *Session) AttachView(v *view.Viewport) error {
	if v == nil || v.Name == "" {
		return &InputError{Op: "attach", Arg: "view", Reason: "missing name"}
	}
	if s.clipper != nil {
		v.Polygons.Clipper = s.clipper
	}
	if err := s.refresh.Add(v); err != nil {
		return fmt.Errorf("%w: %w", ErrPrecondition, err)
	}
	vlog.L().Info("viewedit: view opened", "view", v.Name, "width", v.Width(), "height", v.Height())
	return nil
}

// CloseView releases the viewport called name and its surface.
func (s *Session) CloseView(name string) error {
	v, err := s.View(name)
	if err != nil {
		return err
	}
	if v.Mode != view.Idle {
		s.host.UnbindMotion(v)
	}
	s.refresh.Remove(name)
	vlog.L().Info("viewedit: view closed", "view", name)
	if v.Surface == nil {
		return nil
	}
	return v.Surface.Close()
}

// View returns the viewport called name.
func (s *Session) View(name string) (*view.Viewport, error) {
	v, ok := s.refresh.Lookup(name)
	if !ok {
		return nil, &ViewNotFoundError{Name: name}
	}
	return v, nil
}

// Views returns the open viewports in the order they were opened.
func (s *Session) Views() []*view.Viewport { return s.refresh.Views() }

// Pending reports the number of objects with uncommitted edits.
func (s *Session) Pending() int { return s.edits.Len() }

// PendingEdit returns the uncommitted edit of path.
func (s *Session) PendingEdit(path string) (edit.Entry, bool) { return s.edits.Lookup(path) }

// Refresh redraws the viewport called name.
func (s *Session) Refresh(name string) error {
	v, err := s.View(name)
	if err != nil {
		return err
	}
	return s.refresh.Refresh(v)
}

// RefreshAll redraws every open viewport.
func (s *Session) RefreshAll() error { return s.refresh.RefreshAll() }

// Autoview fits the viewport called name to the scene.
func (s *Session) Autoview(name string, factor float64) error {
	v, err := s.View(name)
	if err != nil {
		return err
	}
	return s.refresh.Autoview(v, factor)
}

// EditPolygons runs fn on the polygon set of the viewport called name and
// redraws it afterwards. Validation errors from fn match ErrMalformedInput.
func (s *Session) EditPolygons(name string, fn func(*polygon.Set) error) error {
	v, err := s.View(name)
	if err != nil {
		return err
	}
	if err := wrapPolygonErr(fn(v.Polygons)); err != nil {
		return err
	}
	return s.refresh.Refresh(v)
}
