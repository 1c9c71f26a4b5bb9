// Package recording provides a display backend that records every call as a
// typed command instead of drawing it.
//
// Recorders make redraw behavior inspectable: after a refresh the command
// sequence shows exactly which layers were drawn, in which order and with
// which matrix.
//
// # Example
//
//	rec := recording.New(800, 600)
//	coordinator.Refresh(v) // v bound to rec
//	if rec.Count(recording.CmdDrawPixels) != 1 { ... }
package recording

import (
	"fmt"
	"image/color"

	"github.com/gogpu/viewedit/display"
	"github.com/gogpu/viewedit/vmath"
)

// CommandType identifies a recorded call.
type CommandType uint8

const (
	CmdMakeCurrent CommandType = iota
	CmdDrawBegin
	CmdDrawEnd
	CmdSetLight
	CmdSetZBuffer
	CmdSetTransparency
	CmdSetDepthMask
	CmdLoadMatrix
	CmdDrawVList
	CmdDrawPolyline
	CmdDrawText
	CmdDrawPixels
	CmdClose
)

var commandTypeNames = [...]string{
	CmdMakeCurrent:     "MakeCurrent",
	CmdDrawBegin:       "DrawBegin",
	CmdDrawEnd:         "DrawEnd",
	CmdSetLight:        "SetLight",
	CmdSetZBuffer:      "SetZBuffer",
	CmdSetTransparency: "SetTransparency",
	CmdSetDepthMask:    "SetDepthMask",
	CmdLoadMatrix:      "LoadMatrix",
	CmdDrawVList:       "DrawVList",
	CmdDrawPolyline:    "DrawPolyline",
	CmdDrawText:        "DrawText",
	CmdDrawPixels:      "DrawPixels",
	CmdClose:           "Close",
}

// String returns the command name.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", t)
}

// Command is one recorded call. Only the fields relevant to Type are set.
type Command struct {
	Type   CommandType
	On     bool
	Matrix vmath.Mat4
	Points []vmath.Vec3
	Closed bool
	Stroke display.Stroke
	Text   string
	X, Y   int
	Color  color.RGBA
	Pixels *display.PixelSurface
}

// Recorder is a display.Surface that records calls.
type Recorder struct {
	width, height int
	visible       bool
	commands      []Command
}

var _ display.Surface = (*Recorder)(nil)

// New creates a visible recorder of the given size.
func New(width, height int) *Recorder {
	return &Recorder{width: max(width, 1), height: max(height, 1), visible: true}
}

func (r *Recorder) add(c Command) error {
	r.commands = append(r.commands, c)
	return nil
}

func (r *Recorder) Width() int      { return r.width }
func (r *Recorder) Height() int     { return r.height }
func (r *Recorder) Aspect() float64 { return float64(r.width) / float64(r.height) }

func (r *Recorder) MakeCurrent() error { return r.add(Command{Type: CmdMakeCurrent}) }
func (r *Recorder) DrawBegin() error   { return r.add(Command{Type: CmdDrawBegin}) }
func (r *Recorder) DrawEnd() error     { return r.add(Command{Type: CmdDrawEnd}) }

func (r *Recorder) SetLight(on bool)        { _ = r.add(Command{Type: CmdSetLight, On: on}) }
func (r *Recorder) SetZBuffer(on bool)      { _ = r.add(Command{Type: CmdSetZBuffer, On: on}) }
func (r *Recorder) SetTransparency(on bool) { _ = r.add(Command{Type: CmdSetTransparency, On: on}) }
func (r *Recorder) SetDepthMask(on bool)    { _ = r.add(Command{Type: CmdSetDepthMask, On: on}) }

func (r *Recorder) LoadMatrix(m vmath.Mat4) { _ = r.add(Command{Type: CmdLoadMatrix, Matrix: m}) }

func (r *Recorder) DrawVList(vl *display.VList, st display.Stroke) error {
	pts := make([]vmath.Vec3, len(vl.Points))
	copy(pts, vl.Points)
	return r.add(Command{Type: CmdDrawVList, Points: pts, Stroke: st})
}

func (r *Recorder) DrawPolyline(pts []vmath.Vec3, closed bool, st display.Stroke) error {
	cp := make([]vmath.Vec3, len(pts))
	copy(cp, pts)
	return r.add(Command{Type: CmdDrawPolyline, Points: cp, Closed: closed, Stroke: st})
}

func (r *Recorder) DrawText(x, y int, s string, c color.RGBA) error {
	return r.add(Command{Type: CmdDrawText, X: x, Y: y, Text: s, Color: c})
}

func (r *Recorder) DrawPixels(p *display.PixelSurface) error {
	return r.add(Command{Type: CmdDrawPixels, Pixels: p})
}

// SetVisible shows or hides the recorder.
func (r *Recorder) SetVisible(v bool) { r.visible = v }

func (r *Recorder) IsVisible() bool { return r.visible }

func (r *Recorder) Close() error { return r.add(Command{Type: CmdClose}) }

// Commands returns the recorded commands.
func (r *Recorder) Commands() []Command { return r.commands }

// Types returns the recorded command types in order.
func (r *Recorder) Types() []CommandType {
	out := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		out[i] = c.Type
	}
	return out
}

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Index returns the position of the first command of type t, or -1.
func (r *Recorder) Index(t CommandType) int {
	for i, c := range r.commands {
		if c.Type == t {
			return i
		}
	}
	return -1
}

// Reset discards the recorded commands.
func (r *Recorder) Reset() { r.commands = r.commands[:0] }

func init() {
	display.Register("recording", 0, func(opts display.Options) (display.Surface, error) {
		return New(opts.Width, opts.Height), nil
	}, nil)
}
