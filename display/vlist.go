package display

import "github.com/gogpu/viewedit/vmath"

// VListOp is a display list opcode.
type VListOp uint8

const (
	// VListMove starts a new polyline at the point.
	VListMove VListOp = iota

	// VListDraw draws a line from the previous point.
	VListDraw
)

// VList is a display list of move and draw commands in model space.
type VList struct {
	Ops    []VListOp
	Points []vmath.Vec3
}

// MoveTo appends a move.
func (v *VList) MoveTo(p vmath.Vec3) {
	v.Ops = append(v.Ops, VListMove)
	v.Points = append(v.Points, p)
}

// DrawTo appends a draw.
func (v *VList) DrawTo(p vmath.Vec3) {
	v.Ops = append(v.Ops, VListDraw)
	v.Points = append(v.Points, p)
}

// Len returns the number of commands.
func (v *VList) Len() int { return len(v.Ops) }

// Reset empties the list, keeping its storage.
func (v *VList) Reset() {
	v.Ops = v.Ops[:0]
	v.Points = v.Points[:0]
}

// Segments calls fn for every drawn segment.
func (v *VList) Segments(fn func(a, b vmath.Vec3)) {
	for i := 1; i < len(v.Ops); i++ {
		if v.Ops[i] == VListDraw {
			fn(v.Points[i-1], v.Points[i])
		}
	}
}
