package polygon

// Sketcher converts between polygons and named sketch objects in a
// geometry database.
type Sketcher interface {
	// ExportSketch stores p under name. v is the view the polygon was
	// drawn in, giving the sketch plane.
	ExportSketch(name string, p Polygon, v View) error

	// ImportSketch reads the sketch called name as a polygon.
	ImportSketch(name string, v View) (Polygon, error)
}

// Export writes polygon i to sk under name.
func (s *Set) Export(i int, name string, sk Sketcher) error {
	if err := checkIndex("polygon", i, len(s.polys)); err != nil {
		return err
	}
	if name == "" {
		return malformed("empty sketch name")
	}
	return sk.ExportSketch(name, s.polys[i].Clone(), s.View)
}

// Import reads sketch name from sk, appends it with the default style and
// returns its index.
func (s *Set) Import(name string, sk Sketcher) (int, error) {
	if name == "" {
		return 0, malformed("empty sketch name")
	}
	p, err := sk.ImportSketch(name, s.View)
	if err != nil {
		return 0, err
	}
	return s.Append(p.Contours, false)
}
