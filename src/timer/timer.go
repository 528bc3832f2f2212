package timer

import (
	"log/slog"
	"time"
)

// TickTimer is a cancellable one-shot timer re-armed by its owner after each tick has been
// processed, so two ticks never overlap. It is not safe for concurrent use; the goroutine that
// selects on C owns it.
type TickTimer struct {
	timer   *time.Timer
	period  time.Duration
	running bool
}

func New(period time.Duration) *TickTimer {
	t := time.NewTimer(period)
	stopTimer(t)
	return &TickTimer{timer: t, period: period}
}

// Start arms the timer. Starting a running timer is a no-op and returns false.
func (tt *TickTimer) Start() bool {
	if tt.running {
		return false
	}
	resetTimer(tt.timer, tt.period)
	tt.running = true
	slog.Debug("Tick timer started", "period", tt.period)
	return true
}

// Stop disarms the timer. Stopping a stopped timer is a no-op.
func (tt *TickTimer) Stop() {
	if !tt.running {
		return
	}
	stopTimer(tt.timer)
	tt.running = false
	slog.Debug("Tick timer stopped")
}

// Fired must be called after a value is received from C. The timer stays stopped until Start.
func (tt *TickTimer) Fired() {
	tt.running = false
}

func (tt *TickTimer) Running() bool {
	return tt.running
}

func (tt *TickTimer) Period() time.Duration {
	return tt.period
}

// C returns the expiry channel, or nil while stopped so a select on it blocks.
func (tt *TickTimer) C() <-chan time.Time {
	if !tt.running {
		return nil
	}
	return tt.timer.C
}

// Stops the timer and drains a pending expiry.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	stopTimer(t)
	t.Reset(d)
}
