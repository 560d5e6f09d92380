// Package discovery finds streaming devices on the local network and turns
// them into resolved device records.
//
// An Engine repeats a multicast search forever. Every address it has not
// seen before is resolved once, in its own goroutine, through a
// device.Family. Successful records are published on an unbounded channel
// in the order their lookups finish.
//
// # Search Backends
//
// Two Searcher implementations are provided:
//   - SSDPSearcher sends M-SEARCH for the family's search target (roku:ecp)
//     and takes each responder's address from its LOCATION header
//   - MDNSSearcher browses a DNS-SD service type (default _airplay._tcp)
//     and takes each responder's address from its A/AAAA records
//
// # Failure Handling
//
// A failed lookup is dropped and its address is never probed again. A
// failed search is fatal and ends Run. Lookups already in flight when Run
// returns still complete, and the output channel closes after the last one.
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Devices must be on the same local network segment
// - Firewall must allow SSDP (UDP 1900) or mDNS (UDP 5353) replies
package discovery
