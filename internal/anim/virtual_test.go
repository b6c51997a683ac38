package anim

import (
	"testing"
	"time"
)

func TestVirtualOrdering(t *testing.T) {
	clock := NewVirtual()
	var order []string
	clock.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	clock.AfterFunc(20*time.Millisecond, func() { order = append(order, "c") })

	clock.Advance(time.Second)

	expected := "abc"
	got := ""
	for _, s := range order {
		got += s
	}
	if got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
	if clock.Elapsed() != time.Second {
		t.Errorf("expected 1s elapsed, got %v", clock.Elapsed())
	}
}

func TestVirtualStop(t *testing.T) {
	clock := NewVirtual()
	fired := false
	tm := clock.AfterFunc(time.Millisecond, func() { fired = true })
	if !tm.Stop() {
		t.Error("expected stop to succeed")
	}
	if tm.Stop() {
		t.Error("expected second stop to fail")
	}
	if clock.Step() {
		t.Error("expected nothing to fire")
	}
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestVirtualRunUntilLimit(t *testing.T) {
	clock := NewVirtual()
	clock.AfterFunc(time.Hour, func() {})
	if clock.RunUntil(func() bool { return false }, time.Minute) {
		t.Error("expected RunUntil to give up at limit")
	}
	if clock.Elapsed() != 0 {
		t.Errorf("expected clock untouched, got %v", clock.Elapsed())
	}
}

func TestLoopDelivers(t *testing.T) {
	loop := NewLoop()
	ran := false
	loop.AfterFunc(time.Millisecond, func() { ran = true })

	select {
	case f := <-loop.C():
		f()
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not deliver")
	}
	if !ran {
		t.Error("expected callback to run on the draining goroutine")
	}
}
