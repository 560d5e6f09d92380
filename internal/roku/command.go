package roku

import (
	"fmt"

	"github.com/muurk/tvremote/internal/device"
)

// Verb is the ECP input route a key is sent on.
type Verb string

const (
	// VerbPress is a full press and release; the only verb the remote uses
	VerbPress Verb = "keypress"
	// VerbDown holds a key until VerbUp is sent
	VerbDown Verb = "keydown"
	// VerbUp releases a held key
	VerbUp Verb = "keyup"
)

// keyTokens maps each action to its ECP key name.
var keyTokens = map[device.Action]string{
	device.ActionPower:         "power",
	device.ActionHome:          "home",
	device.ActionBack:          "back",
	device.ActionSelect:        "select",
	device.ActionUp:            "up",
	device.ActionDown:          "down",
	device.ActionLeft:          "left",
	device.ActionRight:         "right",
	device.ActionInstantReplay: "instantreplay",
	device.ActionInfo:          "info",
	device.ActionVolumeUp:      "volumeup",
	device.ActionVolumeDown:    "volumedown",
	device.ActionVolumeMute:    "volumemute",
}

// KeyToken returns the ECP key name for action.
func KeyToken(action device.Action) (string, bool) {
	token, ok := keyTokens[action]
	return token, ok
}

// CommandPath builds the request path for action, e.g. "keypress/volumeup".
func CommandPath(verb Verb, action device.Action) (string, error) {
	token, ok := KeyToken(action)
	if !ok {
		return "", fmt.Errorf("no ECP key for action %v", action)
	}
	return fmt.Sprintf("%s/%s", verb, token), nil
}
