package discovery

import (
	"context"
	"fmt"
	"math"
	"net/netip"
	"net/url"
	"strconv"
	"time"

	"github.com/koron/go-ssdp"
	"go.uber.org/zap"
)

// SSDPSearcher finds responders to an SSDP M-SEARCH.
type SSDPSearcher struct {
	// Target is the ST header value (e.g. "roku:ecp")
	Target string

	// Window is how long to collect responses; it is sent as MX and
	// rounded up to whole seconds (minimum 1)
	Window time.Duration

	// LocalAddr binds the search socket ("" = any interface)
	LocalAddr string

	Logger *zap.Logger
}

type ssdpResult struct {
	services []ssdp.Service
	err      error
}

// Search implements Searcher
func (s *SSDPSearcher) Search(ctx context.Context) ([]netip.AddrPort, error) {
	done := make(chan ssdpResult, 1)
	go func() {
		services, err := ssdp.Search(s.Target, s.waitSeconds(), s.LocalAddr)
		done <- ssdpResult{services: services, err: err}
	}()

	var res ssdpResult
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-done:
	}
	if res.err != nil {
		return nil, res.err
	}

	addrs := make([]netip.AddrPort, 0, len(res.services))
	for _, svc := range res.services {
		if s.Target != ssdp.All && svc.Type != s.Target {
			continue
		}
		addr, err := ParseLocation(svc.Location)
		if err != nil {
			s.logger().Debug("Ignoring SSDP response",
				zap.String("location", svc.Location),
				zap.Error(err),
			)
			continue
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

func (s *SSDPSearcher) waitSeconds() int {
	window := s.Window
	if window <= 0 {
		window = DefaultWindow
	}
	return int(math.Ceil(window.Seconds()))
}

func (s *SSDPSearcher) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// ParseLocation extracts the responder address from an SSDP LOCATION value
// such as "http://192.168.1.20:8060/". Host names are rejected; the port
// defaults from the scheme when absent.
func ParseLocation(location string) (netip.AddrPort, error) {
	u, err := url.Parse(location)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("invalid location: %w", err)
	}

	addr, err := netip.ParseAddr(u.Hostname())
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("location host is not an IP address: %w", err)
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		case "http":
			port = "80"
		default:
			return netip.AddrPort{}, fmt.Errorf("location %q has no port", location)
		}
	}

	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("invalid location port: %w", err)
	}

	return netip.AddrPortFrom(addr.Unmap(), uint16(n)), nil
}
