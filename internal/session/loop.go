package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/muurk/tvremote/internal/device"
)

var (
	// ErrDiscoveryClosed is returned when the discovery channel closes
	ErrDiscoveryClosed = errors.New("session: discovery channel closed")

	// ErrInputClosed is returned when the key channel closes
	ErrInputClosed = errors.New("session: keyboard input closed")
)

// Dispatcher sends an action to a device without blocking.
type Dispatcher interface {
	Dispatch(rec *device.Record, action device.Action)
}

// Loop is the event merge loop.
type Loop struct {
	keys       KeyMap
	renderer   Renderer
	dispatcher Dispatcher
	logger     *zap.Logger

	seq uint64
}

// NewLoop creates a loop that draws to r and sends actions through d.
func NewLoop(r Renderer, d Dispatcher, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		keys:       DefaultKeyMap(),
		renderer:   r,
		dispatcher: d,
		logger:     logger,
	}
}

// Run processes events until quit, a channel closes, or ctx is done. It
// returns the final state. Quit yields a nil error.
func (l *Loop) Run(ctx context.Context, keys <-chan Key, found <-chan *device.Record) (State, error) {
	var state State
	l.render(&state, 0)

	for {
		select {
		case <-ctx.Done():
			return state, ctx.Err()

		case rec, ok := <-found:
			if !ok {
				return state, ErrDiscoveryClosed
			}
			if rec == nil {
				continue
			}
			if !state.Add(rec) {
				l.logger.Debug("Ignoring duplicate device", zap.Stringer("addr", rec.Address))
				continue
			}
			l.logger.Debug("Device added",
				zap.Stringer("addr", rec.Address),
				zap.String("name", rec.Name),
				zap.Int("count", len(state.Devices)),
			)
			l.render(&state, 0)

		case k, ok := <-keys:
			if !ok {
				return state, ErrInputClosed
			}
			quit := l.handleKey(&state, k)
			if quit {
				return state, nil
			}
		}
	}
}

// handleKey applies one key and renders if anything changed.
func (l *Loop) handleKey(state *State, k Key) (quit bool) {
	in := l.keys.resolve(k)

	switch in.kind {
	case intentQuit:
		return true

	case intentAction:
		current := state.Current()
		if current == nil {
			return false
		}
		l.dispatcher.Dispatch(current, in.action)
		l.render(state, in.action)

	case intentNext:
		if state.Next() {
			l.render(state, 0)
		}

	case intentPrev:
		if state.Prev() {
			l.render(state, 0)
		}

	case intentPick:
		if state.Select(in.index) {
			l.render(state, 0)
		}

	case intentToggleView:
		state.ToggleView()
		l.render(state, 0)
	}
	return false
}

func (l *Loop) render(state *State, active device.Action) {
	l.seq++
	l.renderer.Render(state.snapshot(active, l.seq))
}
