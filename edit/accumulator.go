// Package edit accumulates the per-object transforms produced by an
// object-level drag gesture until the gesture ends.
//
// Object paths are interned: equal paths, after Unicode NFC normalisation,
// share one entry no matter how often they are touched during a gesture.
// Paths reach the session from typed commands, saved scripts and file
// names, and the same name can arrive precomposed (NFC) from one source and
// decomposed (NFD, as macOS file names are stored) from another.
package edit

import (
	"errors"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/viewedit/view"
	"github.com/gogpu/viewedit/vmath"
)

// PathID identifies an interned object path.
type PathID uint32

// Interner maps object paths to stable identifiers.
type Interner struct {
	ids   map[string]PathID
	names []string
}

// Intern returns the identifier for path, allocating one on first use.
func (in *Interner) Intern(path string) PathID {
	key := norm.NFC.String(path)
	if id, ok := in.ids[key]; ok {
		return id
	}
	if in.ids == nil {
		in.ids = make(map[string]PathID)
	}
	id := PathID(len(in.names))
	in.ids[key] = id
	in.names = append(in.names, key)
	return id
}

// Lookup returns the identifier of path without allocating.
func (in *Interner) Lookup(path string) (PathID, bool) {
	id, ok := in.ids[norm.NFC.String(path)]
	return id, ok
}

// Name returns the normalised path for id.
func (in *Interner) Name(id PathID) string {
	if int(id) >= len(in.names) {
		return ""
	}
	return in.names[id]
}

// Entry is the pending edit of one object.
type Entry struct {
	// Mode is the edit mode that created the entry.
	Mode view.Mode

	// Param names the primitive parameter edited by a primitive mode.
	// It is empty for object edits.
	Param string

	// Matrix is the composition of every delta, starting from identity.
	Matrix vmath.Mat4

	// Translation is the summed translation in base units.
	Translation vmath.Vec3
}

// Accumulator collects pending edits keyed by object path.
//
// An Accumulator is not safe for concurrent use.
type Accumulator struct {
	paths   Interner
	entries map[PathID]*Entry
	order   []PathID
}

// New creates an empty Accumulator.
func New() *Accumulator {
	return &Accumulator{entries: make(map[PathID]*Entry)}
}

func (a *Accumulator) entry(path string, mode view.Mode, param string) *Entry {
	id := a.paths.Intern(path)
	e, ok := a.entries[id]
	if !ok {
		e = &Entry{Mode: mode, Param: param, Matrix: vmath.Identity()}
		a.entries[id] = e
		a.order = append(a.order, id)
	}
	return e
}

// Accumulate composes delta onto the entry for path: M = M * delta.
// The entry keeps the mode and param it was created with.
func (a *Accumulator) Accumulate(path string, mode view.Mode, param string, delta vmath.Mat4) {
	e := a.entry(path, mode, param)
	e.Matrix = e.Matrix.Multiply(delta)
}

// AccumulateTranslation adds a translation given in local units. local2base
// converts it to base units before it is stored and composed.
func (a *Accumulator) AccumulateTranslation(path string, mode view.Mode, param string, local vmath.Vec3, local2base float64) {
	base := local.Mul(local2base)
	e := a.entry(path, mode, param)
	e.Translation = e.Translation.Add(base)
	e.Matrix = e.Matrix.Multiply(vmath.Translate(base))
}

// Lookup returns the entry for path.
func (a *Accumulator) Lookup(path string) (Entry, bool) {
	id, ok := a.paths.Lookup(path)
	if !ok {
		return Entry{}, false
	}
	e, ok := a.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Len returns the number of pending entries.
func (a *Accumulator) Len() int { return len(a.order) }

// Paths returns the pending paths in the order they were first touched.
func (a *Accumulator) Paths() []string {
	out := make([]string, len(a.order))
	for i, id := range a.order {
		out[i] = a.paths.Name(id)
	}
	return out
}

// Flush calls fn for every entry in first-touch order and then clears the
// accumulator. Errors from fn do not stop the flush; they are joined.
func (a *Accumulator) Flush(fn func(path string, e Entry) error) error {
	var errs []error
	for _, id := range a.order {
		if err := fn(a.paths.Name(id), *a.entries[id]); err != nil {
			errs = append(errs, err)
		}
	}
	a.Reset()
	return errors.Join(errs...)
}

// Reset discards every entry. Interned identifiers are kept.
func (a *Accumulator) Reset() {
	clear(a.entries)
	a.order = a.order[:0]
}
