package device

import "fmt"

// Action is a logical remote-control button.
type Action int

const (
	ActionUp Action = iota + 1
	ActionDown
	ActionLeft
	ActionRight
	ActionSelect
	ActionBack
	ActionHome
	ActionPower
	ActionVolumeUp
	ActionVolumeDown
	ActionVolumeMute
	ActionInfo
	ActionInstantReplay
)

// Actions lists every action in display order.
var Actions = []Action{
	ActionUp,
	ActionDown,
	ActionLeft,
	ActionRight,
	ActionSelect,
	ActionBack,
	ActionHome,
	ActionPower,
	ActionVolumeUp,
	ActionVolumeDown,
	ActionVolumeMute,
	ActionInfo,
	ActionInstantReplay,
}

var actionNames = map[Action]string{
	ActionUp:            "up",
	ActionDown:          "down",
	ActionLeft:          "left",
	ActionRight:         "right",
	ActionSelect:        "select",
	ActionBack:          "back",
	ActionHome:          "home",
	ActionPower:         "power",
	ActionVolumeUp:      "volumeup",
	ActionVolumeDown:    "volumedown",
	ActionVolumeMute:    "volumemute",
	ActionInfo:          "info",
	ActionInstantReplay: "instantreplay",
}

// String returns the action's canonical name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Valid reports whether a is one of the defined actions.
func (a Action) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

// ParseAction returns the action with the given canonical name.
// "ok" is accepted as an alias for select and "replay" for instantreplay.
func ParseAction(name string) (Action, error) {
	switch name {
	case "ok":
		return ActionSelect, nil
	case "replay":
		return ActionInstantReplay, nil
	}
	for action, n := range actionNames {
		if n == name {
			return action, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}
