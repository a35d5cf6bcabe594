package trigger

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Resolution is the finest period the underlying timer can represent.
const Resolution = time.Microsecond

// ErrResourceUnavailable is returned when a timer cannot be configured at
// the requested period, or when all timers in the pool are in use.
var ErrResourceUnavailable = errors.New("timer resource unavailable")

// Pool models the fixed supply of hardware timers. Triggers are allocated
// from a pool and return to it when stopped.
type Pool struct {
	mu   sync.Mutex
	size int
	used int
}

// NewPool creates a pool of size hardware timers.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{size: size}
}

// New validates the period, reserves a timer and binds the fire callback.
// The trigger does not fire until Start is called. The callback runs on the
// trigger's own firing context and must be short and non-blocking.
func (p *Pool) New(period time.Duration, fire func()) (*Trigger, error) {
	if fire == nil {
		return nil, fmt.Errorf("nil fire callback: %w", ErrResourceUnavailable)
	}
	if period < Resolution || period%Resolution != 0 {
		return nil, fmt.Errorf("period %v not representable at %v resolution: %w", period, Resolution, ErrResourceUnavailable)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.used >= p.size {
		return nil, fmt.Errorf("all %d hardware timers in use: %w", p.size, ErrResourceUnavailable)
	}
	p.used++

	return &Trigger{pool: p, period: period, fire: fire}, nil
}

func (p *Pool) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.used > 0 {
		p.used--
	}
}

// Free returns the number of unallocated timers in the pool.
func (p *Pool) Free() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.size - p.used
}

// Trigger fires a bound callback at a fixed period. Neither the period nor
// the callback can change after construction; reconfiguration means stopping
// this trigger and allocating a new one.
type Trigger struct {
	pool   *Pool
	period time.Duration
	fire   func()

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	stopped bool
}

// Period returns the trigger's firing period.
func (t *Trigger) Period() time.Duration {
	return t.period
}

// Start arms the trigger. Firings are strictly ordered: the next callback
// is not invoked until the previous one returns. Starting an armed or
// stopped trigger is a no-op.
func (t *Trigger) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil || t.stopped {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(t.stop, t.done)
}

func (t *Trigger) run(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.fire()
		}
	}
}

// Stop disarms the trigger and returns its timer to the pool. A callback
// already in flight completes; Stop waits for it. The trigger cannot be
// restarted afterwards.
func (t *Trigger) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	stop, done := t.stop, t.done
	t.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
	t.pool.release()
}
