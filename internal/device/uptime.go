package device

import (
	"fmt"
	"strings"
	"time"
)

// Uptime is one uptime measurement and the instant it was taken.
// The current uptime is derived from it instead of asking the device again.
type Uptime struct {
	// Value is the uptime the device reported
	Value time.Duration

	// SampledAt is when Value was read. It carries a monotonic clock
	// reading when created with NewUptime.
	SampledAt time.Time
}

// NewUptime records a measurement of seconds taken now.
func NewUptime(seconds uint64) Uptime {
	return Uptime{
		Value:     time.Duration(seconds) * time.Second,
		SampledAt: time.Now(),
	}
}

// Known reports whether the uptime was ever sampled.
func (u Uptime) Known() bool {
	return !u.SampledAt.IsZero()
}

// At returns the uptime as of now. Elapsed time never goes negative, so
// successive reads never decrease.
func (u Uptime) At(now time.Time) time.Duration {
	elapsed := now.Sub(u.SampledAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return u.Value + elapsed
}

// Current returns the uptime at this instant.
func (u Uptime) Current() time.Duration {
	return u.At(time.Now())
}

// Seconds returns the current uptime in whole seconds.
func (u Uptime) Seconds() uint64 {
	return uint64(u.Current() / time.Second)
}

// Pretty formats the current uptime, e.g. "1w 2d 3h 4m 5s".
func (u Uptime) Pretty() string {
	if !u.Known() {
		return "unknown"
	}
	return FormatUptime(u.Seconds())
}

// FormatUptime formats a number of seconds as weeks, days, hours, minutes and
// seconds, omitting zero units.
func FormatUptime(value uint64) string {
	units := []struct {
		suffix string
		n      uint64
	}{
		{"w", value / (60 * 60 * 24 * 7)},
		{"d", (value / (60 * 60 * 24)) % 7},
		{"h", (value / (60 * 60)) % 24},
		{"m", (value / 60) % 60},
		{"s", value % 60},
	}

	var parts []string
	for _, unit := range units {
		if unit.n != 0 {
			parts = append(parts, fmt.Sprintf("%d%s", unit.n, unit.suffix))
		}
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}
