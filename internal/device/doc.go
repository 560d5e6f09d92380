// Package device holds the family-independent model of a controllable
// streaming device.
//
// A Record is produced once, by a Family's resolver, when a bare network
// address answers a status query. Records are immutable after creation; the
// only value that changes over time is the derived uptime, which is computed
// from a single sample rather than re-queried.
//
// # Families
//
// Each supported device family implements the Family interface, which is the
// capability set the rest of the program depends on:
//
//	type Family interface {
//	    ID() FamilyID
//	    SearchTarget() string
//	    Resolve(ctx context.Context, addr netip.AddrPort) *Record
//	    Command(ctx context.Context, addr netip.AddrPort, action Action) error
//	}
//
// Family-specific fields travel on the Record as a Variant. Only the Roku
// family exists today (see package roku).
//
// # Actions
//
// Action is the closed set of remote-control buttons. Families translate an
// Action into their own wire token.
package device
