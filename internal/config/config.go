package config

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"
)

// Discovery backends
const (
	BackendSSDP = "ssdp"
	BackendMDNS = "mdns"
)

// CurrentVersion is the only supported file version
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version   int             `yaml:"version"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Lookup    LookupConfig    `yaml:"lookup"`
	Commands  CommandsConfig  `yaml:"commands"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// DiscoveryConfig controls the multicast search loop.
type DiscoveryConfig struct {
	Backend      string        `yaml:"backend"`       // ssdp or mdns
	SearchWindow time.Duration `yaml:"search_window"` // How long each search listens
	Interval     time.Duration `yaml:"interval"`      // Pause between searches (0 = none)
	MDNSService  string        `yaml:"mdns_service"`  // Service type for the mdns backend
	LocalAddr    string        `yaml:"local_addr"`    // IPv4 address the ssdp socket binds ("" = any)
}

// LookupConfig bounds device status requests.
type LookupConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// CommandsConfig bounds keypress requests.
type CommandsConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig enables the debug log. An empty level keeps logging off.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Default: <config dir>/tvremote.log
}

// MetricsConfig enables the Prometheus endpoint. Empty = disabled.
type MetricsConfig struct {
	Listen string `yaml:"listen"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Discovery: DiscoveryConfig{
			Backend:      BackendSSDP,
			SearchWindow: time.Second,
			MDNSService:  "_airplay._tcp",
		},
		Lookup:   LookupConfig{Timeout: 5 * time.Second},
		Commands: CommandsConfig{Timeout: 5 * time.Second},
	}
}

// Normalize canonicalizes free-form values: the backend name is lower-cased
// and a bare local address gets port 0.
func (c *Config) Normalize() {
	c.Discovery.Backend = strings.ToLower(strings.TrimSpace(c.Discovery.Backend))

	local := strings.TrimSpace(c.Discovery.LocalAddr)
	if ip, err := netip.ParseAddr(local); err == nil {
		local = netip.AddrPortFrom(ip, 0).String()
	}
	c.Discovery.LocalAddr = local
}

// Validate checks the configuration for values the program cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion))
	}

	switch c.Discovery.Backend {
	case BackendSSDP, BackendMDNS:
	default:
		errs = append(errs, fmt.Errorf("discovery.backend: unknown backend %q (want %s or %s)",
			c.Discovery.Backend, BackendSSDP, BackendMDNS))
	}

	if c.Discovery.LocalAddr != "" {
		if ap, err := netip.ParseAddrPort(c.Discovery.LocalAddr); err != nil || !ap.Addr().Unmap().Is4() {
			errs = append(errs, fmt.Errorf("discovery.local_addr: %q is not an IPv4 address", c.Discovery.LocalAddr))
		}
	}
	if c.Discovery.SearchWindow <= 0 {
		errs = append(errs, fmt.Errorf("discovery.search_window must be positive, got %s", c.Discovery.SearchWindow))
	}
	if c.Discovery.Interval < 0 {
		errs = append(errs, fmt.Errorf("discovery.interval must not be negative, got %s", c.Discovery.Interval))
	}
	if c.Lookup.Timeout < 0 {
		errs = append(errs, fmt.Errorf("lookup.timeout must not be negative, got %s", c.Lookup.Timeout))
	}
	if c.Commands.Timeout < 0 {
		errs = append(errs, fmt.Errorf("commands.timeout must not be negative, got %s", c.Commands.Timeout))
	}

	return errors.Join(errs...)
}
