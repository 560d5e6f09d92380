package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/muurk/tvremote/internal/device"
	"github.com/muurk/tvremote/internal/remote"
	"github.com/muurk/tvremote/internal/roku"
	"github.com/muurk/tvremote/internal/transport"
)

type recorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *recorder) Render(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

func (r *recorder) last() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snaps[len(r.snaps)-1]
}

type call struct {
	addr   netip.AddrPort
	action device.Action
}

type fakeDispatcher struct {
	mu    sync.Mutex
	calls []call
}

func (d *fakeDispatcher) Dispatch(rec *device.Record, action device.Action) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, call{rec.Address, action})
}

type result struct {
	state State
	err   error
}

// harness runs a loop on unbuffered channels so each send is handled
// before the next one is accepted.
type harness struct {
	t        *testing.T
	keys     chan Key
	found    chan *device.Record
	done     chan result
	renders  *recorder
	dispatch *fakeDispatcher
}

func startLoop(t *testing.T, ctx context.Context, d Dispatcher) *harness {
	t.Helper()

	h := &harness{
		t:        t,
		keys:     make(chan Key),
		found:    make(chan *device.Record),
		done:     make(chan result, 1),
		renders:  &recorder{},
		dispatch: &fakeDispatcher{},
	}
	if d == nil {
		d = h.dispatch
	}

	loop := NewLoop(h.renders, d, nil)
	go func() {
		state, err := loop.Run(ctx, h.keys, h.found)
		h.done <- result{state, err}
	}()
	return h
}

func (h *harness) press(keys ...Key) {
	h.t.Helper()
	for _, k := range keys {
		select {
		case h.keys <- k:
		case <-time.After(time.Second):
			h.t.Fatalf("loop did not accept key %q", k)
		}
	}
}

func (h *harness) discover(recs ...*device.Record) {
	h.t.Helper()
	for _, r := range recs {
		select {
		case h.found <- r:
		case <-time.After(time.Second):
			h.t.Fatalf("loop did not accept %v", r)
		}
	}
}

func (h *harness) wait() result {
	h.t.Helper()
	select {
	case r := <-h.done:
		return r
	case <-time.After(time.Second):
		h.t.Fatal("loop did not return")
		return result{}
	}
}

// sync makes sure the previous event has been handled by sending an
// unmapped key, which changes nothing.
func (h *harness) sync() {
	h.t.Helper()
	h.press("F12")
}

func TestLoop_SingleDeviceTabQuit(t *testing.T) {
	h := startLoop(t, context.Background(), nil)

	h.discover(rec("10.0.0.5:8060", "Living Room"))
	h.press("tab", "ctrl+c")

	r := h.wait()
	if r.err != nil {
		t.Fatalf("Run() error = %v, want nil", r.err)
	}
	if len(r.state.Devices) != 1 || r.state.Selected != 0 {
		t.Errorf("state = %d devices, selected %d; want 1, 0", len(r.state.Devices), r.state.Selected)
	}
	if r.state.Devices[0].Name != "Living Room" {
		t.Errorf("device = %q, want Living Room", r.state.Devices[0].Name)
	}

	// initial render + discovery; tab with one device changes nothing
	if n := h.renders.count(); n != 2 {
		t.Errorf("renders = %d, want 2", n)
	}
}

func TestLoop_DevicesAppendInArrivalOrder(t *testing.T) {
	h := startLoop(t, context.Background(), nil)

	h.discover(rec("10.0.0.5:8060", "Living Room"), rec("10.0.0.6:8060", "Bedroom"))
	h.press("q")

	r := h.wait()
	if len(r.state.Devices) != 2 {
		t.Fatalf("len(Devices) = %d, want 2", len(r.state.Devices))
	}
	if r.state.Devices[0].Name != "Living Room" || r.state.Devices[1].Name != "Bedroom" {
		t.Errorf("order = %q, %q", r.state.Devices[0].Name, r.state.Devices[1].Name)
	}
	if r.state.Selected != 0 {
		t.Errorf("Selected = %d, want 0", r.state.Selected)
	}
}

func TestLoop_VolumeUpDoesNotWaitForDevice(t *testing.T) {
	hit := make(chan string, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit <- r.Method + " " + r.URL.Path
		<-release
	}))
	defer srv.Close()
	defer close(release)

	u, _ := url.Parse(srv.URL)
	port, _ := strconv.Atoi(u.Port())
	family := roku.NewFamily(transport.NewClient(transport.Options{Timeout: 5 * time.Second}), nil)
	family.Port = uint16(port)

	h := startLoop(t, context.Background(), remote.NewDispatcher(nil, nil, family))

	tv := &device.Record{
		Address: netip.AddrPortFrom(netip.MustParseAddr(u.Hostname()), uint16(port)),
		Name:    "Living Room",
		Variant: roku.Info{},
	}
	h.discover(tv)
	h.press("up")

	select {
	case got := <-hit:
		if got != "POST /keypress/volumeup" {
			t.Errorf("request = %q, want POST /keypress/volumeup", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("device never received the command")
	}

	// The device has not answered yet; the loop must still take keys.
	h.press("q")
	if r := h.wait(); r.err != nil {
		t.Errorf("Run() error = %v", r.err)
	}

	select {
	case extra := <-hit:
		t.Errorf("unexpected extra request %q", extra)
	default:
	}
}

func TestLoop_ActionFlashesAndDispatches(t *testing.T) {
	h := startLoop(t, context.Background(), nil)

	h.discover(rec("10.0.0.5:8060", "Living Room"), rec("10.0.0.6:8060", "Bedroom"))
	h.press("2", "h")
	h.sync()

	snap := h.renders.last()
	if snap.Active != device.ActionHome {
		t.Errorf("Active = %v, want home", snap.Active)
	}
	if snap.Selected != 1 {
		t.Errorf("Selected = %d, want 1", snap.Selected)
	}

	h.press("q")
	h.wait()

	h.dispatch.mu.Lock()
	defer h.dispatch.mu.Unlock()
	if len(h.dispatch.calls) != 1 {
		t.Fatalf("dispatches = %d, want 1", len(h.dispatch.calls))
	}
	want := call{netip.MustParseAddrPort("10.0.0.6:8060"), device.ActionHome}
	if h.dispatch.calls[0] != want {
		t.Errorf("dispatch = %+v, want %+v", h.dispatch.calls[0], want)
	}
}

func TestLoop_NoDevicesActionsAreNoOps(t *testing.T) {
	h := startLoop(t, context.Background(), nil)

	h.press("w", "a", "s", "d", " ", "p", "up", "m", "*", "r", "tab", "shift+tab", "1")
	h.press("q")
	h.wait()

	if n := len(h.dispatch.calls); n != 0 {
		t.Errorf("dispatches = %d, want 0", n)
	}
	if n := h.renders.count(); n != 1 {
		t.Errorf("renders = %d, want only the initial one", n)
	}
}

func TestLoop_ReselectDoesNotRender(t *testing.T) {
	h := startLoop(t, context.Background(), nil)

	h.discover(rec("10.0.0.5:8060", "a"), rec("10.0.0.6:8060", "b"))
	h.press("2")
	h.sync()
	before := h.renders.count()

	h.press("2", "2", "7", "x", "F1")
	h.sync()

	if after := h.renders.count(); after != before {
		t.Errorf("renders went from %d to %d on no-op keys", before, after)
	}

	h.press("q")
	if r := h.wait(); r.state.Selected != 1 {
		t.Errorf("Selected = %d, want 1", r.state.Selected)
	}
}

func TestLoop_ShiftTabWraps(t *testing.T) {
	h := startLoop(t, context.Background(), nil)

	h.discover(rec("10.0.0.1:8060", "a"), rec("10.0.0.2:8060", "b"), rec("10.0.0.3:8060", "c"))
	h.press("shift+tab")
	h.sync()
	if s := h.renders.last().Selected; s != 2 {
		t.Errorf("after shift+tab Selected = %d, want 2", s)
	}

	h.press("tab")
	h.sync()
	if s := h.renders.last().Selected; s != 0 {
		t.Errorf("after tab Selected = %d, want 0", s)
	}

	h.press("q")
	h.wait()
}

func TestLoop_ToggleView(t *testing.T) {
	h := startLoop(t, context.Background(), nil)

	h.press("i")
	h.sync()
	if v := h.renders.last().View; v != ViewDetail {
		t.Errorf("View = %v, want detail", v)
	}
	if n := h.renders.count(); n != 2 {
		t.Errorf("renders = %d, want 2", n)
	}

	h.press("q")
	if r := h.wait(); r.state.View != ViewDetail {
		t.Errorf("final View = %v, want detail", r.state.View)
	}
}

func TestLoop_DuplicateAddressDropped(t *testing.T) {
	h := startLoop(t, context.Background(), nil)

	h.discover(rec("10.0.0.5:8060", "Living Room"))
	h.discover(rec("10.0.0.5:8060", "Living Room"))
	h.press("q")

	r := h.wait()
	if len(r.state.Devices) != 1 {
		t.Errorf("len(Devices) = %d, want 1", len(r.state.Devices))
	}
	if n := h.renders.count(); n != 2 {
		t.Errorf("renders = %d, want 2", n)
	}
}

func TestLoop_NilRecordIgnored(t *testing.T) {
	h := startLoop(t, context.Background(), nil)

	h.discover(nil)
	h.discover(rec("10.0.0.5:8060", "Living Room"))
	h.press("q")

	r := h.wait()
	if r.err != nil {
		t.Fatalf("Run() error = %v", r.err)
	}
	if len(r.state.Devices) != 1 {
		t.Errorf("len(Devices) = %d, want 1", len(r.state.Devices))
	}
	if n := h.renders.count(); n != 2 {
		t.Errorf("renders = %d, want 2", n)
	}
}

func TestLoop_Termination(t *testing.T) {
	tests := []struct {
		name    string
		act     func(h *harness, cancel context.CancelFunc)
		wantErr error
	}{
		{
			name:    "quit",
			act:     func(h *harness, _ context.CancelFunc) { h.press("q") },
			wantErr: nil,
		},
		{
			name:    "discovery closed",
			act:     func(h *harness, _ context.CancelFunc) { close(h.found) },
			wantErr: ErrDiscoveryClosed,
		},
		{
			name:    "keyboard closed",
			act:     func(h *harness, _ context.CancelFunc) { close(h.keys) },
			wantErr: ErrInputClosed,
		},
		{
			name:    "context cancelled",
			act:     func(_ *harness, cancel context.CancelFunc) { cancel() },
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			h := startLoop(t, ctx, nil)
			tt.act(h, cancel)

			r := h.wait()
			if !errors.Is(r.err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", r.err, tt.wantErr)
			}
		})
	}
}
