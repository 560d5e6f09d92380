package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muurk/tvremote/internal/device"
	"github.com/muurk/tvremote/internal/roku"
	"github.com/muurk/tvremote/internal/version"
)

func TestParseDeviceAddress(t *testing.T) {
	family := roku.NewFamily(nil, nil)

	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "bare IPv4", input: "192.168.1.20", expected: "192.168.1.20:8060"},
		{name: "IPv4 with port", input: "192.168.1.20:1900", expected: "192.168.1.20:8060"},
		{name: "mapped IPv4", input: "::ffff:192.168.1.20", expected: "192.168.1.20:8060"},
		{name: "IPv6 with port", input: "[fe80::1]:80", expected: "[fe80::1]:8060"},
		{name: "hostname", input: "roku.local", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := parseDeviceAddress(tt.input, family)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDeviceAddress(%q) expected error, got %v", tt.input, addr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDeviceAddress(%q) unexpected error: %v", tt.input, err)
			}
			if addr.String() != tt.expected {
				t.Errorf("parseDeviceAddress(%q) = %v, want %v", tt.input, addr, tt.expected)
			}
		})
	}
}

func TestParseVerb(t *testing.T) {
	tests := []struct {
		input    string
		expected roku.Verb
		wantErr  bool
	}{
		{input: "press", expected: roku.VerbPress},
		{input: "DOWN", expected: roku.VerbDown},
		{input: "up", expected: roku.VerbUp},
		{input: "hold", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			verb, err := parseVerb(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseVerb(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if verb != tt.expected {
				t.Errorf("parseVerb(%q) = %q, want %q", tt.input, verb, tt.expected)
			}
		})
	}
}

func TestParseActions(t *testing.T) {
	actions, err := parseActions([]string{"home", "ok", "volumeup"})
	if err != nil {
		t.Fatalf("parseActions() unexpected error: %v", err)
	}
	expected := []device.Action{device.ActionHome, device.ActionSelect, device.ActionVolumeUp}
	if len(actions) != len(expected) {
		t.Fatalf("parseActions() returned %d actions, want %d", len(actions), len(expected))
	}
	for i := range expected {
		if actions[i] != expected[i] {
			t.Errorf("actions[%d] = %v, want %v", i, actions[i], expected[i])
		}
	}

	// One bad key rejects the whole list
	if _, err := parseActions([]string{"home", "rewind"}); err == nil {
		t.Error("parseActions() expected error for unknown key")
	}
}

func TestActionNames_ListsEveryAction(t *testing.T) {
	names := actionNames()
	if len(names) != len(device.Actions) {
		t.Fatalf("actionNames() has %d entries, want %d", len(names), len(device.Actions))
	}
	for _, name := range names {
		if _, err := device.ParseAction(name); err != nil {
			t.Errorf("actionNames() entry %q does not parse: %v", name, err)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	got := out.String()
	if !strings.HasPrefix(got, "tvremote "+version.Version) {
		t.Errorf("version output = %q, want prefix %q", got, "tvremote "+version.Version)
	}
	if !strings.Contains(got, "commit: "+version.Commit) {
		t.Errorf("version output = %q, missing commit", got)
	}
}
