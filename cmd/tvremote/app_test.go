package main

import (
	"testing"

	"github.com/muurk/tvremote/internal/config"
	"github.com/muurk/tvremote/internal/discovery"
)

func TestApp_MetricsOnlyWhenEnabled(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Listen = "127.0.0.1:9090"

	a := newApp(cfg)
	if a.metrics != nil {
		t.Fatal("newApp() should not build metrics until a command serves them")
	}
	if !a.enableMetrics() {
		t.Fatal("enableMetrics() = false with a listen address")
	}
	if a.metrics == nil {
		t.Error("enableMetrics() did not build metrics")
	}

	plain := newApp(config.Default())
	if plain.enableMetrics() || plain.metrics != nil {
		t.Error("enableMetrics() should do nothing without a listen address")
	}
}

func TestApp_Searcher(t *testing.T) {
	tests := []struct {
		name      string
		backend   string
		localAddr string
		wantMDNS  bool
	}{
		{name: "ssdp", backend: "ssdp", localAddr: "192.168.1.5"},
		{name: "mdns", backend: "mdns", wantMDNS: true},
		{name: "upper-case mdns", backend: "MDNS", wantMDNS: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Discovery.Backend = tt.backend
			cfg.Discovery.LocalAddr = tt.localAddr
			cfg.Normalize()
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}

			switch s := newApp(cfg).searcher().(type) {
			case *discovery.MDNSSearcher:
				if !tt.wantMDNS {
					t.Fatal("searcher() = mDNS, want SSDP")
				}
				if s.Manufacturer != "roku" {
					t.Errorf("Manufacturer = %q, want roku", s.Manufacturer)
				}
			case *discovery.SSDPSearcher:
				if tt.wantMDNS {
					t.Fatal("searcher() = SSDP, want mDNS")
				}
				if s.Target != "roku:ecp" {
					t.Errorf("Target = %q, want roku:ecp", s.Target)
				}
				if s.LocalAddr != "192.168.1.5:0" {
					t.Errorf("LocalAddr = %q, want 192.168.1.5:0", s.LocalAddr)
				}
			default:
				t.Fatalf("searcher() returned %T", s)
			}
		})
	}
}
