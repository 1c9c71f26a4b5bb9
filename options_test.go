package viewedit

import (
	"errors"
	"testing"

	"github.com/gogpu/viewedit/display"
	"github.com/gogpu/viewedit/display/recording"
	"github.com/gogpu/viewedit/internal/memdb"
	"github.com/gogpu/viewedit/polygon"
	"github.com/gogpu/viewedit/vmath"
)

// stubClipper returns the subject unchanged.
type stubClipper struct {
	calls int
}

func (c *stubClipper) Clip(_ polygon.ClipOp, subject, _ []polygon.Ring) []polygon.Ring {
	c.calls++
	return subject
}

func TestNewSessionDefaults(t *testing.T) {
	db := memdb.New()
	s := NewSession(db, db)
	if s.host == nil {
		t.Error("host is nil, expected the no-op host")
	}
	if s.registry != display.DefaultRegistry() {
		t.Error("registry is not the default registry")
	}
	if !s.refresh.Enabled() {
		t.Error("refresh disabled by default")
	}
}

func TestWithRegistry(t *testing.T) {
	r := display.NewRegistry()
	r.Register("mem", 1, func(o display.Options) (display.Surface, error) {
		return recording.New(o.Width, o.Height), nil
	}, nil)

	db := memdb.New()
	s := NewSession(db, db, WithRegistry(r))
	v, err := s.OpenView("a", "", 30, 20)
	if err != nil {
		t.Fatalf("OpenView() error = %v", err)
	}
	if _, ok := v.Surface.(*recording.Recorder); !ok {
		t.Errorf("surface = %T, want *recording.Recorder", v.Surface)
	}
	var nf *display.BackendNotFoundError
	if _, err := s.OpenView("b", "software", 30, 20); !errors.As(err, &nf) {
		t.Errorf("OpenView(software) error = %v, want BackendNotFoundError", err)
	}
}

func TestWithClipper(t *testing.T) {
	c := &stubClipper{}
	db := memdb.New()
	s := NewSession(db, db, WithClipper(c))
	v, err := s.OpenView("a", "recording", 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	tri := []polygon.Contour{{Points: []vmath.Vec3{{}, {X: 1}, {Y: 1}}}}
	err = s.EditPolygons("a", func(ps *polygon.Set) error {
		for range 2 {
			if _, err := ps.Append(tri, false); err != nil {
				return err
			}
		}
		return ps.ClipScratch(polygon.Union)
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.calls != 1 || v.Polygons.Len() != 1 {
		t.Errorf("calls = %d, len = %d, want 1, 1", c.calls, v.Polygons.Len())
	}
}

func TestNilOptionsKeepDefaults(t *testing.T) {
	db := memdb.New()
	s := NewSession(db, db, WithEventHost(nil), WithRegistry(nil))
	if s.host == nil || s.registry == nil {
		t.Error("nil option replaced a default")
	}
}
