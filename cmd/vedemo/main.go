// Command vedemo plays a scripted editing session and saves the result.
package main

import (
	"flag"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/viewedit"
	"github.com/gogpu/viewedit/display"
	"github.com/gogpu/viewedit/internal/memdb"
	"github.com/gogpu/viewedit/view"
	"github.com/gogpu/viewedit/vmath"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "vedemo.png", "output file")
		verbose = flag.Bool("v", false, "log session events")
	)
	flag.Parse()

	if *verbose {
		viewedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	db := memdb.New()
	db.AddBox("base.s", vmath.V3(-2, -2, -0.5), vmath.V3(2, 2, 0), view.DrawWireframe)
	db.AddBox("box.s", vmath.V3(-0.5, -0.5, 0), vmath.V3(0.5, 0.5, 1), view.DrawShaded)

	s := viewedit.NewSession(db, db)
	v, err := s.OpenView("top", "software", *width, *height,
		view.WithGrid(view.Grid{Enabled: true, ResX: 0.25, ResY: 0.25}),
		view.WithEditObserver(view.EditObserverFunc(func(_ *view.Viewport, path string, _ view.Mode, d vmath.Vec3) {
			log.Printf("moved %s by %.3f %.3f %.3f", path, d.X, d.Y, d.Z)
		})),
	)
	if err != nil {
		log.Fatalf("Failed to open view: %v", err)
	}
	if err := s.Autoview("top", 1.5); err != nil {
		log.Fatalf("Autoview failed: %v", err)
	}

	w, h := float64(*width), float64(*height)
	cx, cy := w/2, h/2

	// Tilt the camera.
	gesture(s, view.Rotate, viewedit.EnterArgs{X: cx, Y: cy}, [][2]float64{
		{cx, cy - 20}, {cx, cy - 40}, {cx + 20, cy - 40}, {cx + 40, cy - 40},
	})

	// Drag the box along the view plane.
	gesture(s, view.ObjectTranslate, viewedit.EnterArgs{X: cx, Y: cy, Path: "box.s"}, [][2]float64{
		{cx + 15, cy}, {cx + 30, cy - 10},
	})

	// Sketch a circle and a triangle.
	gesture(s, view.PolyCircle, viewedit.EnterArgs{X: w * 0.25, Y: h * 0.25}, [][2]float64{
		{w*0.25 + 40, h * 0.25},
	})
	for _, p := range [][2]float64{{w * 0.7, h * 0.7}, {w * 0.85, h * 0.7}, {w * 0.78, h * 0.55}} {
		must(s.EnterMode("top", view.PolyContour, viewedit.EnterArgs{X: p[0], Y: p[1]}))
	}
	must(s.EndContour("top"))
	must(s.OnIdle("top"))

	must(s.RefreshAll())

	surf, ok := v.Surface.(*display.ImageSurface)
	if !ok {
		log.Fatalf("Unexpected surface %T", v.Surface)
	}
	_ = surf.DrawText(8, 16, "viewedit demo", color.RGBA{R: 255, G: 255, B: 255, A: 255})

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, surf.Snapshot()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// gesture enters mode, moves through path and goes idle.
func gesture(s *viewedit.Session, m view.Mode, args viewedit.EnterArgs, path [][2]float64) {
	must(s.EnterMode("top", m, args))
	for _, p := range path {
		must(s.OnMotion("top", p[0], p[1]))
	}
	must(s.OnIdle("top"))
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
