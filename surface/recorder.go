// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "fmt"

// CommandType identifies the surface call captured by a Recorder.
type CommandType uint8

const (
	CmdSetClipWindow CommandType = iota // SetClipWindow
	CmdWriteSolidRun                    // WriteSolidRun
	CmdWriteRaw                         // WriteRaw
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetClipWindow: "SetClipWindow",
	CmdWriteSolidRun: "WriteSolidRun",
	CmdWriteRaw:      "WriteRaw",
}

// String returns the name of the command type.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// Command is one recorded surface call. Only the fields relevant to Type
// are set: W and H for SetClipWindow, R, G, B and Count for WriteSolidRun,
// Count for WriteRaw.
type Command struct {
	Type    CommandType
	X, Y    int
	W, H    int
	R, G, B uint8
	Count   int
}

func (c Command) String() string {
	switch c.Type {
	case CmdSetClipWindow:
		return fmt.Sprintf("%v(%d,%d %dx%d)", c.Type, c.X, c.Y, c.W, c.H)
	case CmdWriteSolidRun:
		return fmt.Sprintf("%v(%d,%d #%02x%02x%02x x%d)", c.Type, c.X, c.Y, c.R, c.G, c.B, c.Count)
	default:
		return fmt.Sprintf("%v(%d,%d x%d)", c.Type, c.X, c.Y, c.Count)
	}
}

// Recorder is a Surface that logs every call before forwarding it to an
// underlying surface. It is used to inspect how drawing operations are
// batched into runs.
//
// Example:
//
//	rec := surface.NewRecorder(surface.NewImageSurface(64, 64))
//	_ = rec.WriteSolidRun(0, 0, 255, 255, 255, 8)
//	fmt.Println(rec.Commands())
type Recorder struct {
	target   Surface
	commands []Command
}

// NewRecorder wraps target. Calls are still forwarded to target and its
// errors are returned unchanged.
func NewRecorder(target Surface) *Recorder {
	return &Recorder{target: target}
}

// Target returns the wrapped surface.
func (r *Recorder) Target() Surface {
	return r.target
}

// Commands returns the recorded calls. The slice is owned by the Recorder
// and is invalidated by Reset.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns how many recorded calls have the given type.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Reset discards the recorded calls.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// SetClipWindow records and forwards the call.
func (r *Recorder) SetClipWindow(x, y, w, h int) error {
	r.commands = append(r.commands, Command{Type: CmdSetClipWindow, X: x, Y: y, W: w, H: h})
	return r.target.SetClipWindow(x, y, w, h)
}

// WriteSolidRun records and forwards the call.
func (r *Recorder) WriteSolidRun(x, y int, red, green, blue uint8, count int) error {
	r.commands = append(r.commands, Command{
		Type: CmdWriteSolidRun, X: x, Y: y,
		R: red, G: green, B: blue, Count: count,
	})
	return r.target.WriteSolidRun(x, y, red, green, blue, count)
}

// WriteRaw records and forwards the call.
func (r *Recorder) WriteRaw(x, y int, pix []byte, count int) error {
	r.commands = append(r.commands, Command{Type: CmdWriteRaw, X: x, Y: y, Count: count})
	return r.target.WriteRaw(x, y, pix, count)
}

// Geometry forwards to the wrapped surface.
func (r *Recorder) Geometry() Geometry {
	return r.target.Geometry()
}
