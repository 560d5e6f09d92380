package session

import "github.com/muurk/tvremote/internal/device"

// View selects how the current device is described
type View int

const (
	// ViewSummary shows "name (ip)"
	ViewSummary View = iota
	// ViewDetail shows the network, product and system tree
	ViewDetail
)

// String returns the view name
func (v View) String() string {
	if v == ViewDetail {
		return "detail"
	}
	return "summary"
}

// State is the session's device list, selection and view mode. It is owned
// by one Loop.
type State struct {
	// Devices in discovery order; never shrinks
	Devices []*device.Record

	// Selected indexes Devices whenever it is non-empty
	Selected int

	View View
}

// Current returns the selected device, or nil before the first discovery.
func (s *State) Current() *device.Record {
	if len(s.Devices) == 0 {
		return nil
	}
	return s.Devices[s.Selected]
}

// Add appends rec unless a device with the same address is already present.
func (s *State) Add(rec *device.Record) bool {
	if rec == nil {
		return false
	}
	for _, d := range s.Devices {
		if d.Address == rec.Address {
			return false
		}
	}
	s.Devices = append(s.Devices, rec)
	if len(s.Devices) == 1 {
		s.Selected = 0
	}
	return true
}

// Select moves the selection to index. It reports whether anything changed.
func (s *State) Select(index int) bool {
	if index < 0 || index >= len(s.Devices) || index == s.Selected {
		return false
	}
	s.Selected = index
	return true
}

// Next selects the following device, wrapping to the first.
func (s *State) Next() bool {
	if len(s.Devices) == 0 {
		return false
	}
	return s.Select((s.Selected + 1) % len(s.Devices))
}

// Prev selects the preceding device, wrapping to the last.
func (s *State) Prev() bool {
	n := len(s.Devices)
	if n == 0 {
		return false
	}
	return s.Select((s.Selected - 1 + n) % n)
}

// ToggleView flips between summary and detail.
func (s *State) ToggleView() {
	if s.View == ViewSummary {
		s.View = ViewDetail
	} else {
		s.View = ViewSummary
	}
}
