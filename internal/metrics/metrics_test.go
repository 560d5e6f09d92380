package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("test")

	m.Search(3)
	m.Search(2)
	m.Lookup(true)
	m.Lookup(false)
	m.Lookup(false)
	m.Published()
	m.Command("volumeup", true)

	if got := testutil.ToFloat64(m.searches); got != 2 {
		t.Errorf("searches = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.searchResponses); got != 5 {
		t.Errorf("responses = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.lookups.WithLabelValues(ResultError)); got != 2 {
		t.Errorf("failed lookups = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.published); got != 1 {
		t.Errorf("published = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.commands.WithLabelValues("volumeup", ResultOK)); got != 1 {
		t.Errorf("commands = %v, want 1", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.Search(1)
	m.Lookup(true)
	m.Published()
	m.Command("home", false)
}

func TestMetrics_Handler(t *testing.T) {
	m := New("v1.2.3")
	m.Published()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("GET /metrics error = %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"tvremote_discovery_devices_total 1", `version="v1.2.3"`} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
