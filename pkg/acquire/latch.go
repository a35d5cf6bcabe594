package acquire

import "context"

// Latch is a single-slot notification from a trigger's firing context to a
// waiting consumer. Notifies received before the pending one is consumed
// coalesce into a single wake-up; nothing is ever queued.
type Latch struct {
	ch chan struct{}
}

// NewLatch creates an empty latch.
func NewLatch() *Latch {
	return &Latch{ch: make(chan struct{}, 1)}
}

// Notify sets the latch and never blocks. It reports whether the wake-up
// was registered; false means a notification was already pending and this
// one coalesced into it.
func (l *Latch) Notify() bool {
	select {
	case l.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// Wait blocks until a notification is pending or ctx is done, consuming
// the pending wake-up on success.
func (l *Latch) Wait(ctx context.Context) error {
	select {
	case <-l.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
