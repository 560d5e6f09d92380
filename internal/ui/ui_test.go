package ui

import (
	"bytes"
	"errors"
	"net/netip"
	"strings"
	"testing"

	"github.com/muurk/tvremote/internal/device"
	"github.com/muurk/tvremote/internal/roku"
)

func bedroom() *device.Record {
	return &device.Record{
		Address: netip.MustParseAddrPort("192.168.1.21:8060"),
		Name:    "Bedroom",
		Product: device.Product{
			SerialNumber: "YH00AA000001",
			Model:        device.Model{Name: "Roku Express", Number: "3930X"},
		},
		Network: device.Network{Link: device.LinkWired},
		Uptime:  device.NewUptime(90),
		Variant: roku.Info{SoftwareVersion: "11.5.0"},
	}
}

func TestDeviceDetails(t *testing.T) {
	details := DeviceDetails(bedroom())

	want := []Detail{
		{"Name", "Bedroom"},
		{"Address", "192.168.1.21:8060"},
		{"Vendor", "unknown"},
		{"Model", "Roku Express (3930X)"},
		{"Serial", "YH00AA000001"},
		{"Network", "Ethernet"},
		{"SSID", "-"},
		{"MAC", "unknown"},
	}
	for i, w := range want {
		if details[i] != w {
			t.Errorf("details[%d] = %+v, want %+v", i, details[i], w)
		}
	}

	last := details[len(details)-2:]
	if last[0] != (Detail{"Software", "11.5.0"}) || last[1] != (Detail{"Power", "unknown"}) {
		t.Errorf("variant details = %+v", last)
	}
}

func TestDeviceDetails_NoVariant(t *testing.T) {
	rec := bedroom()
	rec.Variant = nil

	for _, d := range DeviceDetails(rec) {
		if d.Key == "Software" || d.Key == "Power" {
			t.Errorf("unexpected %q detail without a variant", d.Key)
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintHeader("Device Scan", "tvremote scan", Detail{"Backend", "ssdp"})
	p.PrintDevice(bedroom())
	p.PrintStep("home", nil)
	p.PrintStep("power", errors.New("connection refused"))
	p.PrintSuccess("Found 1 device", []Detail{{"Elapsed", "1s"}})
	p.PrintError("Lookup failed", errors.New("timeout"), []string{"Check the TV is on"})

	out := buf.String()
	for _, s := range []string{
		"DEVICE SCAN", "tvremote scan", "Backend:", "ssdp",
		"Bedroom", "Roku Express", "192.168.1.21",
		SuccessMarker + " home", FailureMarker + " power", "(connection refused)",
		"SUCCESS", "Found 1 device", "Elapsed:",
		"FAILED", "Error: timeout", "Troubleshooting:", "Check the TV is on",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q", s)
		}
	}
}

func TestHeader_ParamOrder(t *testing.T) {
	h := NewHeader("Press", "tvremote press", Detail{"Device", "10.0.0.5"}, Detail{"Actions", "home"}).SetWidth(80)
	out := h.String()

	if strings.Index(out, "Device:") > strings.Index(out, "Actions:") {
		t.Error("params rendered out of order")
	}
}
