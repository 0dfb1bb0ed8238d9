package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/multipong/core"
	"github.com/lixenwraith/multipong/events"
	"github.com/lixenwraith/multipong/status"
)

// ErrQuit is returned by a frame function to end the loop without an error
var ErrQuit = errors.New("quit requested")

// Loop drives a frame function on a fixed interval on its own goroutine.
// The simulation never exits by itself; Stop is the external control point
type Loop struct {
	interval time.Duration
	frame    func() error

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool

	mu  sync.Mutex
	err error

	stats *FrameStats // nil without a registry
}

// NewLoop creates a stopped loop. reg may be nil
func NewLoop(interval time.Duration, frame func() error, reg *status.Registry) *Loop {
	return &Loop{
		interval: interval,
		frame:    frame,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
		stats:    NewFrameStats(reg),
	}
}

// Start launches the loop goroutine; repeated calls are no-ops
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		core.Go(l.run)
	}
}

// Stop halts the loop and waits for the current frame to finish. Safe to call repeatedly
// and before Start. Must not be called from inside the frame function; return ErrQuit there instead
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
	if l.running.Load() {
		<-l.done
	}
}

// Done is closed when the loop goroutine exits
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Err returns the frame error that ended the loop, nil after Stop or ErrQuit
func (l *Loop) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *Loop) run() {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
		}

		// Stop wins over a tick that raced it
		select {
		case <-l.stopChan:
			return
		default:
		}

		start := time.Now()
		err := l.frame()

		l.stats.Record(time.Since(start))

		if err != nil {
			if !errors.Is(err, ErrQuit) {
				l.mu.Lock()
				l.err = err
				l.mu.Unlock()
			}
			return
		}
	}
}

// Step composes one frame: update, then event dispatch, then draw.
// Draw never runs for a frame whose update failed. router and draw may be nil
func Step(g *Game, router *events.Router[*Game], draw func(*Game)) error {
	if err := g.Update(); err != nil {
		return err
	}
	if router != nil {
		router.DispatchAll(g)
	}
	if draw != nil {
		draw(g)
	}
	return nil
}
