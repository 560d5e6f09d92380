package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/muurk/tvremote/internal/config"
	"github.com/muurk/tvremote/internal/discovery"
	"github.com/muurk/tvremote/internal/logging"
	"github.com/muurk/tvremote/internal/metrics"
	"github.com/muurk/tvremote/internal/roku"
	"github.com/muurk/tvremote/internal/transport"
	"github.com/muurk/tvremote/internal/version"
)

// app holds the shared resources every command builds from settings.
type app struct {
	cfg     *config.Config
	client  *http.Client
	family  *roku.Family
	metrics *metrics.Metrics
}

func newApp(cfg *config.Config) *app {
	client := transport.NewClient(transport.Options{Timeout: cfg.Lookup.Timeout})

	return &app{
		cfg:    cfg,
		client: client,
		family: roku.NewFamily(client, logging.Named("roku")),
	}
}

// enableMetrics creates the collectors when a listen address is configured.
// Only commands that serve the endpoint call it.
func (a *app) enableMetrics() bool {
	if a.cfg.Metrics.Listen == "" {
		return false
	}
	if a.metrics == nil {
		a.metrics = metrics.New(version.Version)
	}
	return true
}

// searcher builds the configured discovery backend.
func (a *app) searcher() discovery.Searcher {
	logger := logging.Named("discovery")

	if a.cfg.Discovery.Backend == config.BackendMDNS {
		logger.Debug("Using mDNS discovery", zap.String("service", a.cfg.Discovery.MDNSService))
		return &discovery.MDNSSearcher{
			Service:      a.cfg.Discovery.MDNSService,
			Window:       a.cfg.Discovery.SearchWindow,
			Manufacturer: "roku",
		}
	}

	return &discovery.SSDPSearcher{
		Target:    a.family.SearchTarget(),
		Window:    a.cfg.Discovery.SearchWindow,
		LocalAddr: a.cfg.Discovery.LocalAddr,
		Logger:    logger,
	}
}

func (a *app) engine() *discovery.Engine {
	return discovery.NewEngine(a.searcher(), a.family,
		discovery.WithInterval(a.cfg.Discovery.Interval),
		discovery.WithLogger(logging.Named("discovery")),
		discovery.WithMetrics(a.metrics),
	)
}
