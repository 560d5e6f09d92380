package discovery

import "testing"

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		expected string
		wantErr  bool
	}{
		{"roku location", "http://192.168.1.20:8060/", "192.168.1.20:8060", false},
		{"no trailing slash", "http://10.0.0.5:8060", "10.0.0.5:8060", false},
		{"default http port", "http://10.0.0.5/desc.xml", "10.0.0.5:80", false},
		{"ipv6", "http://[fe80::1]:8060/", "[fe80::1]:8060", false},
		{"host name", "http://roku.local:8060/", "", true},
		{"empty", "", "", true},
		{"bad port", "http://10.0.0.5:99999/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocation(tt.location)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLocation(%q) = %v, want error", tt.location, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLocation(%q) error = %v", tt.location, err)
			}
			if got.String() != tt.expected {
				t.Errorf("ParseLocation(%q) = %v, want %v", tt.location, got, tt.expected)
			}
		})
	}
}

func TestSSDPSearcher_waitSeconds(t *testing.T) {
	tests := []struct {
		name     string
		searcher SSDPSearcher
		expected int
	}{
		{"default", SSDPSearcher{}, 1},
		{"one second", SSDPSearcher{Window: 1e9}, 1},
		{"rounds up", SSDPSearcher{Window: 1500e6}, 2},
		{"sub-second", SSDPSearcher{Window: 200e6}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.searcher.waitSeconds(); got != tt.expected {
				t.Errorf("waitSeconds() = %d, want %d", got, tt.expected)
			}
		})
	}
}
