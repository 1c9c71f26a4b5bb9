package view

import (
	"github.com/gogpu/viewedit/internal/vlog"
	"github.com/gogpu/viewedit/vmath"
)

// Observer is notified after the camera of a viewport changes.
type Observer interface {
	ViewChanged(v *Viewport)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(v *Viewport)

func (f ObserverFunc) ViewChanged(v *Viewport) { f(v) }

// EditObserver is notified when an object translation is committed at the
// end of a gesture. delta is in local units.
type EditObserver interface {
	EditCommitted(v *Viewport, path string, mode Mode, delta vmath.Vec3)
}

// EditObserverFunc adapts a function to EditObserver.
type EditObserverFunc func(v *Viewport, path string, mode Mode, delta vmath.Vec3)

func (f EditObserverFunc) EditCommitted(v *Viewport, path string, mode Mode, delta vmath.Vec3) {
	f(v, path, mode, delta)
}

// AddObserver registers o for view changes.
func (v *Viewport) AddObserver(o Observer) {
	v.observers = append(v.observers, o)
}

// AddEditObserver registers o for committed edits.
func (v *Viewport) AddEditObserver(o EditObserver) {
	v.editObservers = append(v.editObservers, o)
}

// HasEditObservers reports whether any edit observer is registered.
func (v *Viewport) HasEditObservers() bool { return len(v.editObservers) > 0 }

// NotifyViewChanged calls every Observer. A notification raised from inside
// an observer is dropped.
func (v *Viewport) NotifyViewChanged() {
	if !v.enter(notifyView) {
		return
	}
	defer v.leave(notifyView)
	for _, o := range v.observers {
		o.ViewChanged(v)
	}
}

// NotifyEditCommitted calls every EditObserver. A notification raised from
// inside an observer is dropped.
func (v *Viewport) NotifyEditCommitted(path string, mode Mode, delta vmath.Vec3) {
	if !v.enter(notifyEdit) {
		return
	}
	defer v.leave(notifyEdit)
	for _, o := range v.editObservers {
		o.EditCommitted(v, path, mode, delta)
	}
}

const (
	notifyView = iota
	notifyEdit
)

func (v *Viewport) enter(kind int) bool {
	if v.notifying[kind] {
		vlog.L().Warn("view: re-entrant notification dropped", "view", v.Name, "kind", [...]string{"view", "edit"}[kind])
		return false
	}
	v.notifying[kind] = true
	return true
}

func (v *Viewport) leave(kind int) { v.notifying[kind] = false }
