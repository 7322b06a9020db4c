package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/abhinav/huffstep/internal/animate"
	"github.com/abhinav/huffstep/internal/engine"
	"github.com/abhinav/huffstep/internal/log"
	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"
)

// app implements the main huffstep application logic:
// read the text, build the code, and report on it.
type app struct {
	Log    *log.Logger
	Stdin  io.Reader
	Stdout io.Writer

	Clock clock.Clock // == clock.New()

	// Interrupts a step mode build when canceled.
	// Defaults to context.Background().
	Context context.Context
}

// Run runs the application with the provided configuration.
func (app *app) Run(cfg *config) error {
	cfg.FillFrom(&_defaultConfig)

	text, err := app.readText(cfg)
	if err != nil {
		return err
	}

	eng := engine.New(engine.Config{
		Split: cfg.Split,
		Log:   app.Log.WithName("engine"),
	})
	eng.SetText(text)

	rep := &report{W: app.Stdout, Bits: cfg.Bits}

	switch cfg.Mode {
	case stepMode:
		player := animate.Player{
			Engine:   eng,
			Observer: rep,
			Delay:    cfg.Delay,
			Clock:    app.Clock,
		}
		if err := app.play(&player); err != nil {
			return err
		}

	default:
		snap, err := eng.Build()
		if err != nil {
			return err
		}
		rep.Done(snap)
	}

	return nil
}

// play runs the player until the build finishes
// or the app's context is canceled.
func (app *app) play(player *animate.Player) error {
	ctx := app.Context
	if ctx == nil {
		ctx = context.Background()
	}

	player.Start()
	finished := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(finished)
		return player.Wait()
	})
	g.Go(func() error {
		select {
		case <-finished:
			return nil
		case <-ctx.Done():
			err := player.Stop()
			if snap := player.Latest(); snap != nil && !snap.Done {
				app.Log.Info("interrupted", "step", snap.Steps)
			}
			return err
		}
	})
	return g.Wait()
}

func (app *app) readText(cfg *config) (string, error) {
	switch {
	case len(cfg.Text) > 0:
		return cfg.Text, nil

	case len(cfg.Input) > 0 && cfg.Input != "-":
		bs, err := os.ReadFile(cfg.Input)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(bs), nil

	default:
		if app.Stdin == nil {
			return "", nil
		}
		bs, err := io.ReadAll(app.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(bs), nil
	}
}
