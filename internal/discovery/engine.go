package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/tvremote/internal/device"
	"github.com/muurk/tvremote/internal/metrics"
	"github.com/muurk/tvremote/internal/pipe"
)

// DefaultWindow is how long one search listens for responses
const DefaultWindow = time.Second

// ErrAlreadyRunning is returned when Run is called a second time
var ErrAlreadyRunning = errors.New("discovery: engine already started")

// Searcher issues one multicast search and reports every address that
// answered within its window. Addresses may repeat across calls.
type Searcher interface {
	Search(ctx context.Context) ([]netip.AddrPort, error)
}

// Engine runs the search/resolve loop for one device family.
type Engine struct {
	searcher Searcher
	family   device.Family
	interval time.Duration
	logger   *zap.Logger
	metrics  *metrics.Metrics

	out      *pipe.Unbounded[*device.Record]
	inflight sync.WaitGroup
	started  sync.Once
}

// Option configures an Engine
type Option func(*Engine)

// WithInterval pauses between search iterations (0 = none)
func WithInterval(d time.Duration) Option {
	return func(e *Engine) { e.interval = d }
}

// WithLogger sets the engine's logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics counts searches, lookups and published records
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// NewEngine creates an engine that searches with s and resolves with f.
func NewEngine(s Searcher, f device.Family, opts ...Option) *Engine {
	e := &Engine{
		searcher: s,
		family:   f,
		logger:   zap.NewNop(),
		out:      pipe.New[*device.Record](),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Devices returns the channel resolved records are published on. It is
// closed once Run has returned and every in-flight lookup has finished.
func (e *Engine) Devices() <-chan *device.Record {
	return e.out.Out()
}

// Run searches until ctx is cancelled or a search fails. It never returns
// nil: cancellation yields ctx.Err() and a search failure is returned
// wrapped. Run may only be called once per Engine.
func (e *Engine) Run(ctx context.Context) error {
	first := false
	e.started.Do(func() { first = true })
	if !first {
		return ErrAlreadyRunning
	}

	defer func() {
		go func() {
			e.inflight.Wait()
			e.out.Close()
		}()
	}()

	// Lookups outlive the loop; their own deadline comes from the HTTP client.
	lookupCtx := context.WithoutCancel(ctx)
	seen := make(map[netip.AddrPort]struct{})

	e.logger.Debug("Discovery started",
		zap.String("family", string(e.family.ID())),
		zap.String("target", e.family.SearchTarget()),
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		addrs, err := e.searcher.Search(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			e.logger.Debug("Multicast search failed", zap.Error(err))
			return fmt.Errorf("discovery: multicast search: %w", err)
		}
		e.metrics.Search(len(addrs))

		for _, addr := range addrs {
			if !addr.IsValid() {
				continue
			}
			if _, ok := seen[addr]; ok {
				continue
			}
			seen[addr] = struct{}{}

			e.inflight.Add(1)
			go e.resolve(lookupCtx, addr)
		}

		if e.interval > 0 {
			timer := time.NewTimer(e.interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
}

func (e *Engine) resolve(ctx context.Context, addr netip.AddrPort) {
	defer e.inflight.Done()

	rec := e.family.Resolve(ctx, addr)
	e.metrics.Lookup(rec != nil)
	if rec == nil {
		return
	}

	e.out.Push(rec)
	e.metrics.Published()
	e.logger.Debug("Device published",
		zap.Stringer("probe", addr),
		zap.Stringer("addr", rec.Address),
		zap.String("name", rec.Name),
	)
}
