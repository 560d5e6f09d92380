// Package remote sends remote-control actions to devices without blocking
// the caller.
package remote

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/tvremote/internal/device"
	"github.com/muurk/tvremote/internal/metrics"
)

// DefaultTimeout bounds one command when the HTTP client has no timeout of
// its own
const DefaultTimeout = 5 * time.Second

// Dispatcher routes actions to the family that resolved each record.
type Dispatcher struct {
	families map[device.FamilyID]device.Family
	timeout  time.Duration
	logger   *zap.Logger
	metrics  *metrics.Metrics

	// detach starts fn without waiting for it; tests replace it
	detach func(fn func())
}

// NewDispatcher creates a dispatcher for the given families.
func NewDispatcher(logger *zap.Logger, m *metrics.Metrics, families ...device.Family) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Dispatcher{
		families: make(map[device.FamilyID]device.Family, len(families)),
		timeout:  DefaultTimeout,
		logger:   logger,
		metrics:  m,
		detach:   func(fn func()) { go fn() },
	}
	for _, f := range families {
		d.families[f.ID()] = f
	}
	return d
}

// SetTimeout changes the per-command deadline (0 = DefaultTimeout)
func (d *Dispatcher) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	d.timeout = timeout
}

// Dispatch sends action to rec in the background and returns immediately.
// The outcome is only logged and counted. A nil record is ignored.
func (d *Dispatcher) Dispatch(rec *device.Record, action device.Action) {
	if rec == nil {
		return
	}

	family, ok := d.families[rec.Family()]
	if !ok {
		d.logger.Debug("No family for device",
			zap.String("family", string(rec.Family())),
			zap.Stringer("addr", rec.Address),
		)
		return
	}

	addr := rec.Address
	d.detach(func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		err := family.Command(ctx, addr, action)
		d.metrics.Command(action.String(), err == nil)
		if err != nil {
			d.logger.Debug("Command failed",
				zap.Stringer("addr", addr),
				zap.Stringer("action", action),
				zap.Error(err),
			)
			return
		}
		d.logger.Debug("Command sent",
			zap.Stringer("addr", addr),
			zap.Stringer("action", action),
		)
	})
}
