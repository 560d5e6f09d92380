package roku

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/netip"

	"go.uber.org/zap"

	"github.com/muurk/tvremote/internal/device"
)

const (
	// FamilyID identifies Roku records
	FamilyID device.FamilyID = "roku"

	// SearchTarget is the SSDP service type Roku devices answer
	SearchTarget = "roku:ecp"

	// Port is the fixed ECP port for status queries and commands
	Port uint16 = 8060

	// maxDocumentSize caps how much of a status response is read
	maxDocumentSize = 1 << 20
)

// Family resolves and commands Roku devices over ECP.
type Family struct {
	// HTTP is the shared client; it is never modified by Family
	HTTP *http.Client

	// Port overrides the ECP port (0 = Port). Tests point it at httptest.
	Port uint16

	logger *zap.Logger
}

// NewFamily creates a Roku family using the shared client.
func NewFamily(client *http.Client, logger *zap.Logger) *Family {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Family{HTTP: client, Port: Port, logger: logger}
}

// ID implements device.Family
func (f *Family) ID() device.FamilyID { return FamilyID }

// SearchTarget implements device.Family
func (f *Family) SearchTarget() string { return SearchTarget }

func (f *Family) port() uint16 {
	if f.Port == 0 {
		return Port
	}
	return f.Port
}

// CommandAddress returns the ECP endpoint for the host of addr.
func (f *Family) CommandAddress(addr netip.AddrPort) netip.AddrPort {
	return netip.AddrPortFrom(addr.Addr(), f.port())
}

func (f *Family) baseURL(addr netip.AddrPort) string {
	return "http://" + f.CommandAddress(addr).String()
}

// Resolve implements device.Family. Failures are logged at debug level and
// reported as nil.
func (f *Family) Resolve(ctx context.Context, addr netip.AddrPort) *device.Record {
	rec, err := f.Lookup(ctx, addr)
	if err != nil {
		f.logger.Debug("Device lookup dropped",
			zap.Stringer("addr", addr),
			zap.Error(err),
		)
		return nil
	}
	return rec
}

// Lookup fetches /query/device-info from addr's host and maps it to a
// record. Only the host of addr is used; the record's address always carries
// the ECP port.
func (f *Family) Lookup(ctx context.Context, addr netip.AddrPort) (*device.Record, error) {
	host := addr.Addr().String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL(addr)+"/query/device-info", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup request: %w", err)
	}

	resp, err := f.HTTP.Do(req)
	if err != nil {
		return nil, classifyTransportError("lookup", host, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, newHTTPError("lookup", host, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, classifyTransportError("lookup", host, err)
	}

	rec, err := parseDeviceInfo(body, f.CommandAddress(addr))
	if err != nil {
		return nil, newParseError(host, err)
	}

	f.logger.Debug("Device resolved",
		zap.Stringer("addr", rec.Address),
		zap.String("name", rec.Name),
		zap.String("serial", rec.Product.SerialNumber),
	)
	return rec, nil
}

// Command implements device.Family by sending a keypress.
func (f *Family) Command(ctx context.Context, addr netip.AddrPort, action device.Action) error {
	return f.Send(ctx, addr, VerbPress, action)
}

// Send POSTs one ECP input with an empty body. The response body is
// discarded.
func (f *Family) Send(ctx context.Context, addr netip.AddrPort, verb Verb, action device.Action) error {
	path, err := CommandPath(verb, action)
	if err != nil {
		return err
	}

	host := addr.Addr().String()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL(addr)+"/"+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create command request: %w", err)
	}

	resp, err := f.HTTP.Do(req)
	if err != nil {
		return classifyTransportError("command", host, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDocumentSize))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError("command", host, resp.StatusCode)
	}
	return nil
}
