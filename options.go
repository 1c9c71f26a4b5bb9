package viewedit

import (
	"github.com/gogpu/viewedit/display"
	"github.com/gogpu/viewedit/polygon"
)

// Option configures a Session during creation.
//
// Example:
//
//	s := viewedit.NewSession(db, scene,
//	    viewedit.WithEventHost(host),
//	    viewedit.WithClipper(myClipper),
//	)
type Option func(*sessionOptions)

type sessionOptions struct {
	host     EventHost
	registry *display.Registry
	clipper  polygon.Clipper
	refresh  bool
}

func defaultOptions() sessionOptions {
	return sessionOptions{
		host:     noopHost{},
		registry: display.DefaultRegistry(),
		refresh:  true,
	}
}

// WithEventHost sets the host that binds pointer motion events.
func WithEventHost(h EventHost) Option {
	return func(o *sessionOptions) {
		if h != nil {
			o.host = h
		}
	}
}

// WithRegistry sets the display backend registry used by OpenView.
func WithRegistry(r *display.Registry) Option {
	return func(o *sessionOptions) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithClipper sets the boolean clip engine of every view's polygon set.
func WithClipper(c polygon.Clipper) Option {
	return func(o *sessionOptions) { o.clipper = c }
}

// WithRefresh turns automatic redraws on or off.
func WithRefresh(on bool) Option {
	return func(o *sessionOptions) { o.refresh = on }
}
