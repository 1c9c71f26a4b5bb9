package view

import "strconv"

// DrawMode is how an object is displayed.
type DrawMode int

const (
	DrawWireframe  DrawMode = 0
	DrawShadedBots DrawMode = 1
	DrawShaded     DrawMode = 2
	DrawEvaluated  DrawMode = 3
	DrawHiddenLine DrawMode = 5
)

// Flag returns the draw command flag selecting m: "-h" for hidden line,
// "-m<n>" otherwise.
func (m DrawMode) Flag() string {
	if m == DrawHiddenLine {
		return "-h"
	}
	return "-m" + strconv.Itoa(int(m))
}
