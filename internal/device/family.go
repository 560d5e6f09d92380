package device

import (
	"context"
	"net/netip"
)

// Family is the capability set every supported device family provides.
// Discovery resolves through it and the dispatcher sends commands through it.
type Family interface {
	// ID names the family; it matches Variant.Family() on resolved records.
	ID() FamilyID

	// SearchTarget is the multicast service identifier the family answers to.
	SearchTarget() string

	// Resolve fetches and maps the status of the device at addr.
	// It returns nil on any failure and never retries.
	Resolve(ctx context.Context, addr netip.AddrPort) *Record

	// Command sends one action to the device whose command endpoint is addr.
	Command(ctx context.Context, addr netip.AddrPort, action Action) error
}
