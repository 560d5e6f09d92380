package device

import (
	"net/netip"
	"testing"
)

type testVariant struct{}

func (testVariant) Family() FamilyID { return "test" }

func TestRecord_String(t *testing.T) {
	rec := &Record{
		Address: netip.MustParseAddrPort("10.0.0.5:8060"),
		Name:    "Living Room",
		Product: Product{Model: Model{Name: "Roku Ultra"}},
	}

	expected := "Living Room (Roku Ultra) at 10.0.0.5:8060"
	if rec.String() != expected {
		t.Errorf("Record.String() = %v, want %v", rec.String(), expected)
	}

	if rec.IP() != "10.0.0.5" {
		t.Errorf("Record.IP() = %v, want 10.0.0.5", rec.IP())
	}
}

func TestRecord_Family(t *testing.T) {
	rec := &Record{}
	if rec.Family() != "" {
		t.Errorf("Record.Family() without variant = %q, want empty", rec.Family())
	}

	rec.Variant = testVariant{}
	if rec.Family() != "test" {
		t.Errorf("Record.Family() = %q, want test", rec.Family())
	}
}

func TestLinkType_String(t *testing.T) {
	tests := []struct {
		link     LinkType
		expected string
	}{
		{LinkWired, "Ethernet"},
		{LinkWireless, "WiFi"},
		{LinkUnknown, "Unknown"},
		{LinkType(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.link.String(); got != tt.expected {
				t.Errorf("LinkType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}
