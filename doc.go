// Package viewedit is the interactive viewport editing engine of a solid
// modeling system.
//
// # Overview
//
// A Session owns a set of named viewports. Each viewport has a camera
// (rotation, center and scale), an interaction mode and a set of 2-D
// polygons placed in its view plane. Pointer gestures are delivered as one
// EnterMode call, a stream of OnMotion calls and a final OnIdle call:
//
//	db := memdb.New()
//	s := viewedit.NewSession(db, db)
//	v, _ := s.OpenView("top", "", 800, 600)
//
//	_ = s.EnterMode("top", view.Rotate, viewedit.EnterArgs{X: 400, Y: 300})
//	_ = s.OnMotion("top", 410, 300)
//	_ = s.OnIdle("top")
//
// Camera modes change the viewport directly. Object modes accumulate a
// matrix per edited path that is committed to the Database when the
// gesture ends. Polygon modes build circles, ellipses, rectangles and
// click-by-click contours in the view plane.
//
// # Packages
//
//   - vmath: vectors and 4x4 matrices
//   - coord: screen, view and model coordinate mapping
//   - polygon: view-plane polygon sets and boolean clipping
//   - view: viewports, modes and observers
//   - edit: per-path edit accumulation
//   - refresh: redraw and compositing of live viewports
//   - display: drawing surfaces and the backend registry
//
// # Logging
//
// viewedit is silent by default. Use SetLogger to enable logging.
package viewedit
