package ui

import (
	"fmt"

	"github.com/muurk/tvremote/internal/device"
	"github.com/muurk/tvremote/internal/roku"
)

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// DeviceLine renders one scan result: "● Living Room  Roku Ultra  192.168.1.20".
func DeviceLine(rec *device.Record) string {
	model := valueOr(rec.Product.Model.Name, rec.Product.Model.Number)
	return fmt.Sprintf("  %s %s  %s  %s",
		StepCompleteStyle.Render(DeviceMarker),
		DeviceNameStyle.Render(rec.Name),
		StepNoteStyle.Render(model),
		rec.IP(),
	)
}

// DeviceDetails lists everything known about rec, in display order.
func DeviceDetails(rec *device.Record) []Detail {
	model := valueOr(rec.Product.Model.Name, "unknown")
	if rec.Product.Model.Number != "" {
		model = fmt.Sprintf("%s (%s)", model, rec.Product.Model.Number)
	}

	details := []Detail{
		{"Name", rec.Name},
		{"Address", rec.Address.String()},
		{"Vendor", valueOr(rec.Product.Vendor, "unknown")},
		{"Model", model},
		{"Serial", valueOr(rec.Product.SerialNumber, "unknown")},
		{"Network", rec.Network.Link.String()},
		{"SSID", valueOr(rec.Network.Name, "-")},
		{"MAC", valueOr(rec.Network.HardwareAddress, "unknown")},
		{"Uptime", rec.Uptime.Pretty()},
	}

	if info, ok := rec.Variant.(roku.Info); ok {
		details = append(details,
			Detail{"Software", valueOr(info.SoftwareVersion, "unknown")},
			Detail{"Power", valueOr(info.PowerMode, "unknown")},
		)
	}
	return details
}

// StepLine renders the outcome of one sent action.
func StepLine(label string, err error) string {
	if err != nil {
		return fmt.Sprintf("  %s %s %s",
			StepFailedStyle.Render(FailureMarker),
			label,
			StepNoteStyle.Render("("+err.Error()+")"),
		)
	}
	return fmt.Sprintf("  %s %s", StepCompleteStyle.Render(SuccessMarker), label)
}
