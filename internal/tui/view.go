package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/muurk/tvremote/internal/device"
	"github.com/muurk/tvremote/internal/roku"
	"github.com/muurk/tvremote/internal/session"
)

// renderTabs draws one tab per device, numbered for the 1-9 shortcuts.
func renderTabs(snap session.Snapshot) string {
	tabs := make([]string, 0, len(snap.Devices))
	for i, rec := range snap.Devices {
		label := rec.Name
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, rec.Name)
		}
		if i == snap.Selected {
			tabs = append(tabs, SelectedTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderSummary is the one-line "name (ip)" form
func renderSummary(rec *device.Record) string {
	return SummaryStyle.Render(fmt.Sprintf("%s (%s)", rec.Name, rec.IP()))
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}

// renderDetail draws the network/product/system tree for rec.
func renderDetail(rec *device.Record) string {
	network := tree.Root(SectionStyle.Render("Network")).Child(
		"Type: "+rec.Network.Link.String(),
		"Name: "+orUnknown(rec.Network.Name),
		"MAC: "+orUnknown(rec.Network.HardwareAddress),
		"Address: "+rec.Address.String(),
	)

	model := rec.Product.Model.Name
	if rec.Product.Model.Number != "" {
		model = fmt.Sprintf("%s (%s)", orUnknown(model), rec.Product.Model.Number)
	}
	product := tree.Root(SectionStyle.Render("Product")).Child(
		"Vendor: "+orUnknown(rec.Product.Vendor),
		"Model: "+orUnknown(model),
		"Serial: "+orUnknown(rec.Product.SerialNumber),
	)

	system := tree.Root(SectionStyle.Render("System")).Child(
		"Uptime: " + rec.Uptime.Pretty(),
	)
	if info, ok := rec.Variant.(roku.Info); ok {
		system.Child(
			"Software: "+orUnknown(info.SoftwareVersion),
			"Power: "+orUnknown(info.PowerMode),
		)
	}

	return lipgloss.NewStyle().Padding(1, 1, 0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			rec.Name,
			network.String(),
			product.String(),
			system.String(),
		),
	)
}
