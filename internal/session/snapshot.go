package session

import "github.com/muurk/tvremote/internal/device"

// Snapshot is an immutable copy of State handed to a Renderer.
type Snapshot struct {
	Devices  []*device.Record
	Selected int
	View     View

	// Active is the action just pressed (0 when the render was not caused
	// by an action)
	Active device.Action

	// Seq increases with every render so a sink can tell repeated presses
	// of the same action apart
	Seq uint64
}

// Found reports whether at least one device has been discovered.
func (s Snapshot) Found() bool {
	return len(s.Devices) > 0
}

// Current returns the selected device, or nil.
func (s Snapshot) Current() *device.Record {
	if len(s.Devices) == 0 || s.Selected < 0 || s.Selected >= len(s.Devices) {
		return nil
	}
	return s.Devices[s.Selected]
}

func (s *State) snapshot(active device.Action, seq uint64) Snapshot {
	devices := make([]*device.Record, len(s.Devices))
	copy(devices, s.Devices)
	return Snapshot{
		Devices:  devices,
		Selected: s.Selected,
		View:     s.View,
		Active:   active,
		Seq:      seq,
	}
}

// Renderer draws snapshots. Render must not block for long; the loop calls
// it inline.
type Renderer interface {
	Render(Snapshot)
}

// RenderFunc adapts a function to Renderer
type RenderFunc func(Snapshot)

// Render implements Renderer
func (f RenderFunc) Render(s Snapshot) { f(s) }
