// Package animate drives a stepwise Huffman build on a timer.
package animate

import (
	"fmt"
	"sync"
	"time"

	"github.com/abhinav/huffstep/internal/engine"
	"github.com/benbjohnson/clock"
)

const _defaultDelay = 500 * time.Millisecond

// Stepper advances a build by one step.
// It is satisfied by *engine.Engine.
type Stepper interface {
	Step() (*engine.Snapshot, error)
}

var _ Stepper = (*engine.Engine)(nil)

//go:generate mockgen -destination mock_observer_test.go -package animate github.com/abhinav/huffstep/internal/animate Observer

// Observer is notified as a Player advances a build.
//
// Observer methods are called from the Player's goroutine, one at a time.
type Observer interface {
	// Step is called with the state after each step
	// while the build is still in progress.
	Step(*engine.Snapshot)

	// Done is called once with the finished state.
	Done(*engine.Snapshot)
}

// Player steps a build at a fixed rate until it finishes or is stopped.
type Player struct {
	Engine   Stepper  // build to advance (required)
	Observer Observer // receives each state (required)

	// Time between steps. The first step is taken right away.
	// Defaults to 500 milliseconds.
	Delay time.Duration

	Clock clock.Clock

	mu     sync.RWMutex
	latest *engine.Snapshot

	err        error
	ticker     *clock.Ticker
	quit, done chan struct{}
}

// Start begins stepping the build in the background.
// Start returns immediately.
func (p *Player) Start() {
	if p.Delay == 0 {
		p.Delay = _defaultDelay
	}
	if p.Clock == nil {
		p.Clock = clock.New()
	}

	p.ticker = p.Clock.Ticker(p.Delay)
	p.quit = make(chan struct{})
	p.done = make(chan struct{})

	go p.run()
}

// Stop tells the Player to stop stepping. It blocks until the background
// job has exited. Returns errors encountered during the run, if any.
//
// Stopping a Player that already finished is safe.
func (p *Player) Stop() error {
	close(p.quit)

	return p.Wait()
}

// Wait waits until the build finishes, fails, or the Player is stopped.
// Returns the error, if any.
func (p *Player) Wait() error {
	<-p.done
	return p.err
}

// Latest returns the most recent state reported by the build,
// or nil if no step has been taken yet.
func (p *Player) Latest() *engine.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest
}

func (p *Player) run() {
	defer close(p.done)
	defer p.ticker.Stop()

	for {
		snap, err := p.Engine.Step()
		if err != nil {
			p.err = fmt.Errorf("step: %w", err)
			return
		}

		p.mu.Lock()
		p.latest = snap
		p.mu.Unlock()

		if snap.Done {
			p.Observer.Done(snap)
			return
		}
		p.Observer.Step(snap)

		select {
		case <-p.quit:
			return
		case <-p.ticker.C:
		}
	}
}
