package roku

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"

	"github.com/muurk/tvremote/internal/urls"
)

// ErrorKind is the category of a failed exchange with a device.
type ErrorKind int

const (
	// KindNetwork is a generic transport failure
	KindNetwork ErrorKind = iota
	// KindTimeout means the device did not answer in time
	KindTimeout
	// KindConnectionRefused means nothing listens on the ECP port
	KindConnectionRefused
	// KindUnreachable means the host or network cannot be reached
	KindUnreachable
	// KindHTTP is a non-2xx status code
	KindHTTP
	// KindParse means the status document could not be decoded or is incomplete
	KindParse
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "Network Error"
	case KindTimeout:
		return "Timeout"
	case KindConnectionRefused:
		return "Connection Refused"
	case KindUnreachable:
		return "Unreachable"
	case KindHTTP:
		return "HTTP Error"
	case KindParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// DeviceError describes why a lookup or command against one device failed.
// Callers in the interactive path never see it; it exists for logs, metrics,
// and the one-shot CLI commands.
type DeviceError struct {
	Kind       ErrorKind
	Op         string // "lookup" or "command"
	Host       string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *DeviceError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Op, e.Host, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *DeviceError) Unwrap() error {
	return e.Err
}

// classifyTransportError maps a transport error to a DeviceError.
func classifyTransportError(op, host string, err error) *DeviceError {
	de := &DeviceError{Kind: KindNetwork, Op: op, Host: host, Err: err}

	var urlErr *url.Error
	inner := err
	if errors.As(err, &urlErr) {
		inner = urlErr.Err
	}

	if os.IsTimeout(inner) || errors.Is(inner, os.ErrDeadlineExceeded) {
		de.Kind = KindTimeout
		return de
	}

	var opErr *net.OpError
	if errors.As(inner, &opErr) {
		switch {
		case errors.Is(opErr.Err, syscall.ECONNREFUSED):
			de.Kind = KindConnectionRefused
		case errors.Is(opErr.Err, syscall.EHOSTUNREACH), errors.Is(opErr.Err, syscall.ENETUNREACH):
			de.Kind = KindUnreachable
		}
	}

	return de
}

func newHTTPError(op, host string, status int) *DeviceError {
	return &DeviceError{Kind: KindHTTP, Op: op, Host: host, StatusCode: status}
}

func newParseError(host string, err error) *DeviceError {
	return &DeviceError{Kind: KindParse, Op: "lookup", Host: host, Err: err}
}

// KindOf returns the kind of a DeviceError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var de *DeviceError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

// Troubleshooting returns user-facing hints for err.
func Troubleshooting(err error) []string {
	kind, ok := KindOf(err)
	if !ok {
		return nil
	}

	switch kind {
	case KindTimeout:
		return []string{
			"Check that the device is powered on and awake",
			"Verify you are on the same network as the device",
		}
	case KindConnectionRefused:
		return []string{
			"The address answered but is not a Roku device (nothing on port 8060)",
			"Check the IP address",
		}
	case KindUnreachable:
		return []string{
			"The device is not reachable from this machine",
			"Check that you are on the same network segment",
		}
	case KindHTTP:
		return []string{
			"The device rejected the request",
			"Enable 'Control by mobile apps' under Settings > System > Advanced system settings",
			"Protocol reference: " + urls.ECPReference,
		}
	case KindParse:
		return []string{
			"The device answered with an unexpected status document",
			"It may not be a Roku device, or its firmware is unsupported",
			"Report unsupported devices at " + urls.Issues,
		}
	default:
		return []string{
			"Check your network connection",
			"Verify the device is powered on",
		}
	}
}
