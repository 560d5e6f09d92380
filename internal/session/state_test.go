package session

import (
	"net/netip"
	"testing"

	"github.com/muurk/tvremote/internal/device"
)

func rec(addr, name string) *device.Record {
	return &device.Record{Address: netip.MustParseAddrPort(addr), Name: name}
}

func TestState_Add(t *testing.T) {
	var s State

	if s.Current() != nil {
		t.Fatal("Current() should be nil with no devices")
	}

	if !s.Add(rec("10.0.0.5:8060", "Living Room")) {
		t.Fatal("first Add() should succeed")
	}
	if s.Selected != 0 || s.Current().Name != "Living Room" {
		t.Errorf("selection = %d (%v), want 0", s.Selected, s.Current())
	}

	if s.Add(rec("10.0.0.5:8060", "Living Room again")) {
		t.Error("Add() with a known address should be rejected")
	}
	if s.Add(nil) {
		t.Error("Add(nil) should be rejected")
	}
	if len(s.Devices) != 1 {
		t.Errorf("len(Devices) = %d, want 1", len(s.Devices))
	}
}

func TestState_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		devices  int
		start    int
		op       func(*State) bool
		changed  bool
		expected int
	}{
		{"next", 3, 0, (*State).Next, true, 1},
		{"next wraps", 3, 2, (*State).Next, true, 0},
		{"prev", 3, 2, (*State).Prev, true, 1},
		{"prev wraps", 3, 0, (*State).Prev, true, 2},
		{"next with one device", 1, 0, (*State).Next, false, 0},
		{"prev with one device", 1, 0, (*State).Prev, false, 0},
		{"next with none", 0, 0, (*State).Next, false, 0},
		{"prev with none", 0, 0, (*State).Prev, false, 0},
		{"reselect same", 3, 1, func(s *State) bool { return s.Select(1) }, false, 1},
		{"select out of range", 3, 1, func(s *State) bool { return s.Select(3) }, false, 1},
		{"select negative", 3, 1, func(s *State) bool { return s.Select(-1) }, false, 1},
	}

	addrs := []string{"10.0.0.1:8060", "10.0.0.2:8060", "10.0.0.3:8060"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			for i := 0; i < tt.devices; i++ {
				s.Add(rec(addrs[i], addrs[i]))
			}
			s.Selected = tt.start

			if got := tt.op(&s); got != tt.changed {
				t.Errorf("changed = %v, want %v", got, tt.changed)
			}
			if s.Selected != tt.expected {
				t.Errorf("Selected = %d, want %d", s.Selected, tt.expected)
			}
		})
	}
}

func TestState_ToggleView(t *testing.T) {
	var s State
	s.ToggleView()
	if s.View != ViewDetail {
		t.Errorf("View = %v, want detail", s.View)
	}
	s.ToggleView()
	if s.View != ViewSummary {
		t.Errorf("View = %v, want summary", s.View)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	var s State
	s.Add(rec("10.0.0.1:8060", "one"))
	snap := s.snapshot(device.ActionHome, 7)

	s.Add(rec("10.0.0.2:8060", "two"))

	if len(snap.Devices) != 1 {
		t.Errorf("snapshot changed with state: %d devices", len(snap.Devices))
	}
	if !snap.Found() || snap.Current().Name != "one" {
		t.Errorf("Current() = %v, want one", snap.Current())
	}
	if snap.Active != device.ActionHome || snap.Seq != 7 {
		t.Errorf("Active/Seq = %v/%d", snap.Active, snap.Seq)
	}

	if (Snapshot{}).Current() != nil || (Snapshot{}).Found() {
		t.Error("empty snapshot should have no current device")
	}
}
