package timer

import (
	"testing"
	"time"
)

const period = 10 * time.Millisecond

func TestStoppedTimerHasNilChannel(t *testing.T) {
	tt := New(period)
	if tt.Running() {
		t.Fatal("new timer reports running")
	}
	if tt.C() != nil {
		t.Fatal("stopped timer returned a non-nil channel")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	tt := New(period)
	if !tt.Start() {
		t.Fatal("first Start returned false")
	}
	if tt.Start() {
		t.Fatal("second Start returned true, expected no-op")
	}
	select {
	case <-tt.C():
		tt.Fired()
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
	if tt.Running() {
		t.Fatal("timer still running after Fired")
	}
}

func TestStopPreventsFiring(t *testing.T) {
	tt := New(period)
	tt.Start()
	tt.Stop()
	tt.Stop()
	time.Sleep(3 * period)
	if !tt.Start() {
		t.Fatal("Start after Stop returned false")
	}
	start := time.Now()
	select {
	case <-tt.C():
		if elapsed := time.Since(start); elapsed < period/2 {
			t.Errorf("timer fired after %v, stale expiry was not drained", elapsed)
		}
	case <-time.After(time.Second):
		t.Fatal("restarted timer did not fire")
	}
}
