// Package roku implements the Roku device family over the External Control
// Protocol (ECP).
//
// ECP is plain HTTP on port 8060:
//
//	GET  http://<ip>:8060/query/device-info   XML status document
//	POST http://<ip>:8060/keypress/<key>      one button press, empty body
//
// Devices are found by SSDP with the search target "roku:ecp" (see package
// discovery).
//
// # Resolution
//
// Family.Resolve turns an address into a device.Record or nil. It never
// retries and never returns an error. Family.Lookup is the same operation
// with the error kept, for one-shot commands that want to show it.
//
// The status document is decoded with encoding/xml. A name, serial number,
// model number and numeric uptime are required; everything else is optional
// and becomes an empty string when absent.
//
// # Hardware Address
//
// The document carries wifi-mac and ethernet-mac. The one matching
// network-type is used. When network-type is neither "wifi" nor
// "ethernet", wifi-mac is used if present, then ethernet-mac.
package roku
