package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tvremote/internal/device"
	"github.com/muurk/tvremote/internal/session"
)

// padRows is the remote's physical layout, top to bottom
var padRows = [][]device.Action{
	{device.ActionPower},
	{device.ActionBack, device.ActionHome},
	{device.ActionUp},
	{device.ActionLeft, device.ActionSelect, device.ActionRight},
	{device.ActionDown},
	{device.ActionInstantReplay, device.ActionInfo},
	{device.ActionVolumeDown, device.ActionVolumeMute, device.ActionVolumeUp},
}

// padKey renders one button labelled with its binding
func padKey(keys session.KeyMap, action device.Action, active bool) string {
	label := action.String()
	if b, ok := keys.Binding(action); ok {
		h := b.Help()
		label = h.Key + " " + h.Desc
	}

	style := PadKeyStyle
	if active {
		style = PadKeyActiveStyle
	}
	return style.Render(label)
}

// renderPad draws the remote with the flashing action highlighted.
func renderPad(keys session.KeyMap, flash device.Action) string {
	rows := make([]string, 0, len(padRows))
	for _, row := range padRows {
		buttons := make([]string, 0, len(row))
		for _, action := range row {
			buttons = append(buttons, padKey(keys, action, action == flash))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}

	widest := 0
	for _, r := range rows {
		if w := lipgloss.Width(r); w > widest {
			widest = w
		}
	}
	for i, r := range rows {
		rows[i] = lipgloss.PlaceHorizontal(widest, lipgloss.Center, r)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
