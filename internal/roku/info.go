package roku

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/muurk/tvremote/internal/device"
)

// deviceInfoDoc is the subset of /query/device-info that tvremote reads.
type deviceInfoDoc struct {
	XMLName xml.Name `xml:"device-info"`

	FriendlyDeviceName string `xml:"friendly-device-name"`
	UserDeviceName     string `xml:"user-device-name"`
	DefaultDeviceName  string `xml:"default-device-name"`

	VendorName        string `xml:"vendor-name"`
	FriendlyModelName string `xml:"friendly-model-name"`
	ModelName         string `xml:"model-name"`
	ModelNumber       string `xml:"model-number"`
	SerialNumber      string `xml:"serial-number"`

	NetworkType string `xml:"network-type"`
	NetworkName string `xml:"network-name"`
	WifiMAC     string `xml:"wifi-mac"`
	EthernetMAC string `xml:"ethernet-mac"`

	SoftwareVersion string `xml:"software-version"`
	PowerMode       string `xml:"power-mode"`
	Uptime          string `xml:"uptime"`
}

// Info is the Roku-specific variant carried on device.Record.
type Info struct {
	NetworkType     string // raw network-type value
	WifiMAC         string
	EthernetMAC     string
	SoftwareVersion string
	PowerMode       string // e.g. "PowerOn", "DisplayOff"
}

// Family implements device.Variant
func (Info) Family() device.FamilyID {
	return FamilyID
}

// linkType maps the network-type field.
func linkType(networkType string) device.LinkType {
	switch strings.ToLower(strings.TrimSpace(networkType)) {
	case "wifi":
		return device.LinkWireless
	case "ethernet":
		return device.LinkWired
	default:
		return device.LinkUnknown
	}
}

// hardwareAddress picks the MAC for the active link. For an unknown link the
// wireless address wins when both are present.
func hardwareAddress(link device.LinkType, wifi, ethernet string) string {
	switch link {
	case device.LinkWireless:
		return wifi
	case device.LinkWired:
		return ethernet
	default:
		if wifi != "" {
			return wifi
		}
		return ethernet
	}
}

// parseDeviceInfo decodes a status document into a record whose address is
// addr. Missing optional fields become empty strings.
func parseDeviceInfo(data []byte, addr netip.AddrPort) (*device.Record, error) {
	var doc deviceInfoDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode device-info: %w", err)
	}

	name := firstNonEmpty(doc.FriendlyDeviceName, doc.UserDeviceName, doc.DefaultDeviceName)
	if name == "" {
		return nil, errors.New("device-info has no device name")
	}
	if strings.TrimSpace(doc.SerialNumber) == "" {
		return nil, errors.New("device-info has no serial-number")
	}
	if strings.TrimSpace(doc.ModelNumber) == "" {
		return nil, errors.New("device-info has no model-number")
	}

	uptime, err := strconv.ParseUint(strings.TrimSpace(doc.Uptime), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("device-info uptime %q: %w", doc.Uptime, err)
	}

	link := linkType(doc.NetworkType)
	wifi := strings.TrimSpace(doc.WifiMAC)
	ethernet := strings.TrimSpace(doc.EthernetMAC)

	return &device.Record{
		Address: addr,
		Name:    name,
		Product: device.Product{
			Vendor:       strings.TrimSpace(doc.VendorName),
			SerialNumber: strings.TrimSpace(doc.SerialNumber),
			Model: device.Model{
				Name:         strings.TrimSpace(doc.FriendlyModelName),
				InternalName: strings.TrimSpace(doc.ModelName),
				Number:       strings.TrimSpace(doc.ModelNumber),
			},
		},
		Network: device.Network{
			Link:            link,
			Name:            strings.TrimSpace(doc.NetworkName),
			HardwareAddress: hardwareAddress(link, wifi, ethernet),
		},
		Uptime: device.NewUptime(uptime),
		Variant: Info{
			NetworkType:     doc.NetworkType,
			WifiMAC:         wifi,
			EthernetMAC:     ethernet,
			SoftwareVersion: strings.TrimSpace(doc.SoftwareVersion),
			PowerMode:       strings.TrimSpace(doc.PowerMode),
		},
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
