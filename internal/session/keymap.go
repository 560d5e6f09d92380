package session

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/muurk/tvremote/internal/device"
)

// Key is one keypress in bubbletea's KeyMsg.String() form: "w", " ",
// "tab", "shift+tab", "ctrl+c".
type Key string

// String implements fmt.Stringer so a Key works with key.Matches
func (k Key) String() string { return string(k) }

// KeyMap holds the session's key bindings.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Select        key.Binding
	Back          key.Binding
	Home          key.Binding
	Power         key.Binding
	VolumeUp      key.Binding
	VolumeDown    key.Binding
	VolumeMute    key.Binding
	Info          key.Binding
	InstantReplay key.Binding

	NextDevice key.Binding
	PrevDevice key.Binding
	PickDevice key.Binding
	ToggleView key.Binding
	Quit       key.Binding
}

// letters binds each letter in both cases
func letters(ls ...string) []string {
	keys := make([]string, 0, len(ls)*2)
	for _, l := range ls {
		keys = append(keys, l, strings.ToUpper(l))
	}
	return keys
}

// DefaultKeyMap returns the standard remote layout.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(letters("w")...),
			key.WithHelp("w", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys(letters("a")...),
			key.WithHelp("a", "left"),
		),
		Down: key.NewBinding(
			key.WithKeys(letters("s")...),
			key.WithHelp("s", "down"),
		),
		Right: key.NewBinding(
			key.WithKeys(letters("d")...),
			key.WithHelp("d", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "ok"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "back"),
		),
		Home: key.NewBinding(
			key.WithKeys(append([]string{"esc"}, letters("h")...)...),
			key.WithHelp("h/esc", "home"),
		),
		Power: key.NewBinding(
			key.WithKeys(letters("p")...),
			key.WithHelp("p", "power"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "vol+"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "vol-"),
		),
		VolumeMute: key.NewBinding(
			key.WithKeys(letters("m")...),
			key.WithHelp("m", "mute"),
		),
		Info: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "options"),
		),
		InstantReplay: key.NewBinding(
			key.WithKeys(append([]string{"left"}, letters("r")...)...),
			key.WithHelp("r/←", "replay"),
		),
		NextDevice: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tv"),
		),
		PrevDevice: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tv"),
		),
		PickDevice: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "pick tv"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys(letters("i")...),
			key.WithHelp("i", "details"),
		),
		Quit: key.NewBinding(
			key.WithKeys(append([]string{"ctrl+c", "ctrl+d"}, letters("q")...)...),
			key.WithHelp("q", "quit"),
		),
	}
}

// actionBindings pairs each action binding with its action
func (k KeyMap) actionBindings() []struct {
	binding key.Binding
	action  device.Action
} {
	return []struct {
		binding key.Binding
		action  device.Action
	}{
		{k.Up, device.ActionUp},
		{k.Down, device.ActionDown},
		{k.Left, device.ActionLeft},
		{k.Right, device.ActionRight},
		{k.Select, device.ActionSelect},
		{k.Back, device.ActionBack},
		{k.Home, device.ActionHome},
		{k.Power, device.ActionPower},
		{k.VolumeUp, device.ActionVolumeUp},
		{k.VolumeDown, device.ActionVolumeDown},
		{k.VolumeMute, device.ActionVolumeMute},
		{k.Info, device.ActionInfo},
		{k.InstantReplay, device.ActionInstantReplay},
	}
}

// Binding returns the binding for action, for labelling the remote pad.
func (k KeyMap) Binding(action device.Action) (key.Binding, bool) {
	for _, ab := range k.actionBindings() {
		if ab.action == action {
			return ab.binding, true
		}
	}
	return key.Binding{}, false
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextDevice, k.ToggleView, k.Power, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.Back, k.Home, k.Info, k.InstantReplay},
		{k.VolumeUp, k.VolumeDown, k.VolumeMute, k.Power},
		{k.NextDevice, k.PrevDevice, k.PickDevice, k.ToggleView, k.Quit},
	}
}

type intentKind int

const (
	intentNone intentKind = iota
	intentAction
	intentNext
	intentPrev
	intentPick
	intentToggleView
	intentQuit
)

type intent struct {
	kind   intentKind
	action device.Action
	index  int
}

// resolve maps a key to what it should do.
func (k KeyMap) resolve(pressed Key) intent {
	switch {
	case key.Matches(pressed, k.Quit):
		return intent{kind: intentQuit}
	case key.Matches(pressed, k.NextDevice):
		return intent{kind: intentNext}
	case key.Matches(pressed, k.PrevDevice):
		return intent{kind: intentPrev}
	case key.Matches(pressed, k.ToggleView):
		return intent{kind: intentToggleView}
	case key.Matches(pressed, k.PickDevice):
		s := pressed.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			return intent{kind: intentPick, index: int(s[0] - '1')}
		}
		return intent{}
	}

	for _, ab := range k.actionBindings() {
		if key.Matches(pressed, ab.binding) {
			return intent{kind: intentAction, action: ab.action}
		}
	}
	return intent{}
}
