package discovery

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// DefaultMDNSService is the DNS-SD service type browsed by default.
	// Roku TVs and sticks advertise AirPlay receivers.
	DefaultMDNSService = "_airplay._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."
)

// MDNSSearcher finds responders to a DNS-SD browse.
type MDNSSearcher struct {
	// Service is the DNS-SD service type (default DefaultMDNSService)
	Service string

	// Window is how long to browse (default DefaultWindow)
	Window time.Duration

	// Manufacturer, when set, keeps only entries whose "manufacturer" TXT
	// record contains it (case-insensitive)
	Manufacturer string

	// newBrowser overrides resolver construction in tests
	newBrowser func() (browser, error)
}

// browser is the part of zeroconf.Resolver a search uses. Browse must close
// entries once ctx is done, and it may block on a send until then.
type browser interface {
	Browse(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error
}

func newResolver() (browser, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, err
	}
	return resolver, nil
}

// Search implements Searcher
func (s *MDNSSearcher) Search(ctx context.Context) ([]netip.AddrPort, error) {
	window := s.Window
	if window <= 0 {
		window = DefaultWindow
	}
	service := s.Service
	if service == "" {
		service = DefaultMDNSService
	}

	browseCtx, cancel := context.WithTimeout(ctx, window)
	defer cancel()

	newBrowser := s.newBrowser
	if newBrowser == nil {
		newBrowser = newResolver
	}
	resolver, err := newBrowser()
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	var addrs []netip.AddrPort
	entries := make(chan *zeroconf.ServiceEntry)
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		// Read until the resolver closes the channel; it only shuts its
		// sockets down after its last send has been received.
		for entry := range entries {
			if addr, ok := s.entryAddress(entry); ok {
				addrs = append(addrs, addr)
			}
		}
	}()

	if err := resolver.Browse(browseCtx, service, ServiceDomain, entries); err != nil {
		cancel()
		<-collected
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-collected
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return addrs, nil
}

// entryAddress converts a service entry to an address, preferring IPv4.
func (s *MDNSSearcher) entryAddress(entry *zeroconf.ServiceEntry) (netip.AddrPort, bool) {
	if entry == nil || entry.Port <= 0 || entry.Port > 65535 {
		return netip.AddrPort{}, false
	}

	if s.Manufacturer != "" {
		maker := parseTXT(entry.Text)["manufacturer"]
		if !strings.Contains(strings.ToLower(maker), strings.ToLower(s.Manufacturer)) {
			return netip.AddrPort{}, false
		}
	}

	addr, ok := firstAddr(entry.AddrIPv4)
	if !ok {
		addr, ok = firstAddr(entry.AddrIPv6)
	}
	if !ok {
		return netip.AddrPort{}, false
	}

	return netip.AddrPortFrom(addr, uint16(entry.Port)), true
}

func firstAddr(ips []net.IP) (netip.Addr, bool) {
	for _, ip := range ips {
		if addr, ok := netip.AddrFromSlice(ip); ok {
			return addr.Unmap(), true
		}
	}
	return netip.Addr{}, false
}

// parseTXT splits "key=value" TXT records. Keys without a value map to "".
func parseTXT(records []string) map[string]string {
	txt := make(map[string]string, len(records))
	for _, record := range records {
		parts := strings.SplitN(record, "=", 2)
		if len(parts) == 2 {
			txt[strings.ToLower(parts[0])] = parts[1]
		} else {
			txt[strings.ToLower(parts[0])] = ""
		}
	}
	return txt
}
