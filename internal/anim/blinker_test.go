package anim

import (
	"testing"
	"time"
)

func TestBlinkerToggles(t *testing.T) {
	clock := NewVirtual()
	toggles := 0
	b := NewBlinker(clock, 0, func() { toggles++ })

	if b.Interval() != DefaultBlinkInterval {
		t.Errorf("expected default interval %v, got %v", DefaultBlinkInterval, b.Interval())
	}

	b.Start()
	clock.Advance(1600 * time.Millisecond)
	if toggles != 3 {
		t.Errorf("expected 3 toggles in 1.6s, got %d", toggles)
	}

	b.Stop()
	clock.Advance(2 * time.Second)
	if toggles != 3 {
		t.Errorf("expected no toggles after stop, got %d", toggles)
	}
	if b.Running() {
		t.Error("expected blinker stopped")
	}
	if clock.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", clock.Pending())
	}
}

func TestBlinkerRestart(t *testing.T) {
	clock := NewVirtual()
	toggles := 0
	b := NewBlinker(clock, 100*time.Millisecond, func() { toggles++ })

	b.Start()
	clock.Advance(50 * time.Millisecond)
	b.Start()
	clock.Advance(90 * time.Millisecond)
	if toggles != 0 {
		t.Errorf("expected restart to reset the cycle, got %d toggles", toggles)
	}
	clock.Advance(10 * time.Millisecond)
	if toggles != 1 {
		t.Errorf("expected 1 toggle, got %d", toggles)
	}
}
