package acquire

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/narecoronaa/goscope/pkg/hal"
	"github.com/narecoronaa/goscope/pkg/report"
)

// Channel couples a periodic trigger to a deferred consumer. The trigger
// side only sets a latch, so the firing context stays short; the consumer
// performs the single-shot conversion and hands the voltage to the
// reporter. If the consumer falls behind the trigger rate, intervening
// firings coalesce and the corresponding samples are dropped: freshness
// over completeness.
type Channel struct {
	in   hal.AnalogInput
	rep  *report.Reporter
	vref float64
	log  *zap.Logger

	latch   *Latch
	hold    atomic.Bool
	dropped atomic.Uint64
}

// New creates an acquisition channel reading from in and reporting to rep.
func New(in hal.AnalogInput, rep *report.Reporter, vref float64, log *zap.Logger) *Channel {
	if vref <= 0 {
		vref = 3.3
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Channel{
		in:    in,
		rep:   rep,
		vref:  vref,
		log:   log,
		latch: NewLatch(),
	}
}

// Fire runs in the trigger's firing context. It only notifies the consumer
// and returns; the conversion's variable latency never runs here.
func (c *Channel) Fire() {
	if !c.latch.Notify() {
		c.dropped.Add(1)
	}
}

// Run is the deferred consumer loop: wait for a wake-up, convert, report.
// It blocks until ctx is cancelled and is the only place the channel
// suspends. Samples are reported in the order their firings were observed.
func (c *Channel) Run(ctx context.Context) {
	for {
		if err := c.latch.Wait(ctx); err != nil {
			c.log.Info("acquisition consumer stopped", zap.Uint64("dropped", c.dropped.Load()))
			return
		}

		if c.hold.Load() {
			continue
		}

		raw, err := c.in.Read()
		if err != nil {
			c.log.Warn("analog read failed", zap.Error(err))
			continue
		}

		if err := c.rep.Report(codeToVoltage(raw, c.vref)); err != nil {
			c.log.Warn("serial write failed", zap.Error(err))
		}
	}
}

// SetHold pauses or resumes reporting. A held channel still consumes
// wake-ups so no stale notification survives the hold.
func (c *Channel) SetHold(hold bool) {
	c.hold.Store(hold)
}

// Held returns whether the channel is currently held.
func (c *Channel) Held() bool {
	return c.hold.Load()
}

// Dropped returns the number of firings whose notification coalesced into
// an already-pending one.
func (c *Channel) Dropped() uint64 {
	return c.dropped.Load()
}

// codeToVoltage converts a 12-bit ADC code to volts, linear across the
// full digital range to the reference voltage.
func codeToVoltage(raw uint16, vref float64) float64 {
	return float64(raw) * vref / 4095.0
}
