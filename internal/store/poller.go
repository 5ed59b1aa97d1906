package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// PollInterval is the fixed period of both background jobs.
const PollInterval = 30 * time.Second

// Poller is a repeating background job with an explicit Stopped/Running
// state. Start and Stop are its only transitions and both are idempotent.
// Stopping only prevents future ticks; an already-issued request still
// completes.
type Poller struct {
	name     string
	interval time.Duration
	job      func(context.Context)
	log      zerolog.Logger

	mu   sync.Mutex
	stop chan struct{} // nil while stopped
	wg   sync.WaitGroup
}

// NewPoller builds a poller in the Stopped state.
func NewPoller(name string, interval time.Duration, job func(context.Context), log zerolog.Logger) *Poller {
	return &Poller{name: name, interval: interval, job: job, log: log}
}

// Start runs the job once immediately and then on every interval tick.
// A no-op when already running.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		return
	}
	stop := make(chan struct{})
	p.stop = stop

	p.log.Debug().Str("poller", p.name).Msg("poller started")
	p.wg.Add(1)
	go p.run(stop)
}

// Stop cancels the timer and returns the poller to Stopped. Safe to call
// when not running.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop == nil {
		return
	}
	close(p.stop)
	p.stop = nil
	p.log.Debug().Str("poller", p.name).Msg("poller stopped")
}

// Running reports the current state.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

// Wait blocks until the run loop has exited. Test helper.
func (p *Poller) Wait() {
	p.wg.Wait()
}

func (p *Poller) run(stop chan struct{}) {
	defer p.wg.Done()

	p.job(context.Background())

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.job(context.Background())
		}
	}
}
