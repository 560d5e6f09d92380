// Package transport builds the HTTP client shared by device lookups and
// commands.
//
// The client is constructed once at startup and handed to every family by
// reference. Nothing mutates it afterwards.
package transport

import (
	"net"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds one request, including reading the body
	DefaultTimeout = 5 * time.Second

	// DefaultDialTimeout bounds connection setup to a device
	DefaultDialTimeout = 2 * time.Second
)

// Options configures NewClient.
type Options struct {
	// Timeout is the per-request timeout (0 = DefaultTimeout)
	Timeout time.Duration

	// DialTimeout is the TCP connect timeout (0 = DefaultDialTimeout)
	DialTimeout time.Duration
}

// NewClient returns an HTTP client tuned for small requests to many LAN
// devices. Keep-alives are disabled: the devices expect one full round trip
// per keypress and tend to drop idle connections.
func NewClient(opts Options) *http.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = DefaultDialTimeout
	}

	dialer := &net.Dialer{Timeout: opts.DialTimeout}

	return &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			Proxy:                 nil,
			DialContext:           dialer.DialContext,
			DisableKeepAlives:     true,
			ResponseHeaderTimeout: opts.Timeout,
		},
	}
}
