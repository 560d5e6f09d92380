// Package metrics exposes Prometheus counters for discovery and commands.
//
// All methods are safe on a nil *Metrics, so components can take one
// unconditionally and the CLI only builds it when a listener is requested.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup and command outcomes used as label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the tvremote collectors and the registry they live in.
type Metrics struct {
	Registry *prometheus.Registry

	searches        prometheus.Counter
	searchResponses prometheus.Counter
	lookups         *prometheus.CounterVec
	published       prometheus.Counter
	commands        *prometheus.CounterVec
}

// New creates and registers all collectors on a fresh registry.
func New(version string) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tvremote_discovery_searches_total",
			Help: "Multicast searches issued",
		}),
		searchResponses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tvremote_discovery_responses_total",
			Help: "Addresses returned by multicast searches, including repeats",
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tvremote_discovery_lookups_total",
			Help: "Device status lookups by result",
		}, []string{"result"}),
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tvremote_discovery_devices_total",
			Help: "Resolved devices published to the session",
		}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tvremote_commands_total",
			Help: "Remote commands sent by action and result",
		}, []string{"action", "result"}),
	}

	m.Registry.MustRegister(
		m.searches,
		m.searchResponses,
		m.lookups,
		m.published,
		m.commands,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "tvremote_build_info",
			Help:        "Build information",
			ConstLabels: prometheus.Labels{"version": version},
		}, func() float64 { return 1 }),
	)

	return m
}

// Search records one multicast search returning n addresses.
func (m *Metrics) Search(n int) {
	if m == nil {
		return
	}
	m.searches.Inc()
	m.searchResponses.Add(float64(n))
}

// Lookup records one resolver outcome.
func (m *Metrics) Lookup(ok bool) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(result(ok)).Inc()
}

// Published records one device handed to the session.
func (m *Metrics) Published() {
	if m == nil {
		return
	}
	m.published.Inc()
}

// Command records one command outcome.
func (m *Metrics) Command(action string, ok bool) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(action, result(ok)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve runs a /metrics listener on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func result(ok bool) string {
	if ok {
		return ResultOK
	}
	return ResultError
}
