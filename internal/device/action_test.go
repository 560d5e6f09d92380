package device

import "testing"

func TestAction_String(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionUp, "up"},
		{ActionSelect, "select"},
		{ActionVolumeUp, "volumeup"},
		{ActionInstantReplay, "instantreplay"},
		{Action(0), "Action(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.action.String(); got != tt.expected {
				t.Errorf("Action.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestActions_Complete(t *testing.T) {
	if len(Actions) != 13 {
		t.Fatalf("len(Actions) = %d, want 13", len(Actions))
	}

	seen := make(map[string]bool)
	for _, a := range Actions {
		if !a.Valid() {
			t.Errorf("%v is not valid", a)
		}
		if seen[a.String()] {
			t.Errorf("duplicate action name %q", a.String())
		}
		seen[a.String()] = true
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(a.String())
		if err != nil {
			t.Errorf("ParseAction(%q) error = %v", a.String(), err)
			continue
		}
		if got != a {
			t.Errorf("ParseAction(%q) = %v, want %v", a.String(), got, a)
		}
	}

	if got, err := ParseAction("ok"); err != nil || got != ActionSelect {
		t.Errorf("ParseAction(ok) = %v, %v; want select", got, err)
	}
	if got, err := ParseAction("replay"); err != nil || got != ActionInstantReplay {
		t.Errorf("ParseAction(replay) = %v, %v; want instantreplay", got, err)
	}
	if _, err := ParseAction("rewind"); err == nil {
		t.Error("ParseAction(rewind) should fail")
	}
}
