package device

import (
	"fmt"
	"net/netip"
)

// FamilyID names a device family (e.g. "roku").
type FamilyID string

// Variant is the family-specific payload carried by a Record.
// Implementations live in the family packages.
type Variant interface {
	Family() FamilyID
}

// Record is a fully resolved device.
type Record struct {
	// Address is the device's command endpoint (host plus the family's fixed
	// command port, not the port the discovery probe observed).
	Address netip.AddrPort

	// Name is the human-readable device name (e.g. "Living Room")
	Name string

	Product Product
	Network Network
	Uptime  Uptime

	// Variant carries family-specific fields
	Variant Variant
}

// Product describes who made the device and what it is.
type Product struct {
	Vendor       string
	SerialNumber string
	Model        Model
}

// Model describes the hardware model.
type Model struct {
	// Name is the consumer-facing model name (e.g. "Roku Ultra")
	Name string

	// InternalName is the vendor's technical model name (e.g. "4800X")
	InternalName string

	// Number is the official model number, the most specific identifier
	Number string
}

// Family returns the record's device family, or "" when it has no variant.
func (r *Record) Family() FamilyID {
	if r.Variant == nil {
		return ""
	}
	return r.Variant.Family()
}

// IP returns the device IP address as a string.
func (r *Record) IP() string {
	return r.Address.Addr().String()
}

// String returns a human-readable string representation of the device
func (r *Record) String() string {
	return fmt.Sprintf("%s (%s) at %s", r.Name, r.Product.Model.Name, r.Address)
}
