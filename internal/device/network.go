package device

// LinkType is the link-layer technology a device is currently using.
type LinkType int

const (
	LinkUnknown LinkType = iota
	LinkWired
	LinkWireless
)

// String returns the display name of the link type.
func (l LinkType) String() string {
	switch l {
	case LinkWired:
		return "Ethernet"
	case LinkWireless:
		return "WiFi"
	default:
		return "Unknown"
	}
}

// Network describes the network a device is attached to.
type Network struct {
	Link LinkType

	// Name is the network (SSID) name; empty for wired devices
	Name string

	// HardwareAddress is the MAC address of the active interface
	HardwareAddress string
}
