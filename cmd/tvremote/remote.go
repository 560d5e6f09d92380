package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/muurk/tvremote/internal/logging"
	"github.com/muurk/tvremote/internal/pipe"
	"github.com/muurk/tvremote/internal/remote"
	"github.com/muurk/tvremote/internal/session"
	"github.com/muurk/tvremote/internal/tui"
)

// runRemote starts the interactive remote and blocks until the user quits.
func runRemote(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the interactive remote needs a terminal (try 'tvremote scan' or 'tvremote press')")
	}

	a := newApp(settings)
	serveMetrics := a.enableMetrics()
	engine := a.engine()

	keys := pipe.New[session.Key]()
	program := tui.NewProgram(tui.NewModel(keys.Push))

	dispatcher := remote.NewDispatcher(logging.Named("remote"), a.metrics, a.family)
	dispatcher.SetTimeout(a.cfg.Commands.Timeout)

	loop := session.NewLoop(tui.NewSink(program), dispatcher, logging.Named("session"))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return engine.Run(ctx)
	})

	g.Go(func() error {
		defer keys.Close()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("terminal UI: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()
		defer program.Quit()
		state, err := loop.Run(ctx, keys.Out(), engine.Devices())
		logging.Debug("Session ended", zap.Int("devices", len(state.Devices)), zap.Error(err))
		if errors.Is(err, session.ErrInputClosed) {
			return nil
		}
		return err
	})

	if serveMetrics {
		g.Go(func() error {
			logging.Info("Serving metrics", zap.String("addr", a.cfg.Metrics.Listen))
			return a.metrics.Serve(ctx, a.cfg.Metrics.Listen)
		})
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) || cmd.Context().Err() != nil {
		return nil
	}
	if err != nil {
		logging.Error("Remote session failed", zap.Error(err))
	}
	return err
}
