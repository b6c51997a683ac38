package anim

import (
	"testing"
	"time"
)

type recorder struct {
	tasks []time.Duration
	idles []time.Duration
}

func (r *recorder) OnTask(n int, at time.Time) { r.tasks = append(r.tasks, at.Sub(Epoch)) }
func (r *recorder) OnIdle(at time.Time)        { r.idles = append(r.idles, at.Sub(Epoch)) }

func TestQueueRunsInOrder(t *testing.T) {
	clock := NewVirtual()
	q := NewQueue(clock)

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		q.Enqueue(Task{Action: Sync(func() { got = append(got, i) }), Delay: 10 * time.Millisecond})
	}

	if len(got) != 0 {
		t.Fatalf("expected no task to run before start, got %v", got)
	}

	q.Start()
	if !clock.RunUntil(q.Idle, time.Minute) {
		t.Fatal("queue did not drain")
	}

	for i, v := range got {
		if v != i {
			t.Errorf("expected task %d at position %d, got %d", i, i, v)
		}
	}
	if q.Executed() != 5 {
		t.Errorf("expected 5 executed tasks, got %d", q.Executed())
	}
	if clock.Elapsed() != 50*time.Millisecond {
		t.Errorf("expected 50ms elapsed, got %v", clock.Elapsed())
	}
}

func TestQueueEnqueueIsLazy(t *testing.T) {
	clock := NewVirtual()
	q := NewQueue(clock)
	q.Start()
	clock.RunUntil(q.Idle, time.Second)

	ran := false
	q.Enqueue(Task{Action: Sync(func() { ran = true })})
	if ran {
		t.Fatal("expected enqueue not to execute inline")
	}

	clock.Step()
	if !ran {
		t.Error("expected drained queue to resume on next turn")
	}
}

func TestQueueDelayBetweenTasks(t *testing.T) {
	clock := NewVirtual()
	q := NewQueue(clock)
	rec := &recorder{}
	q.AddObserver(rec)

	q.Enqueue(Task{Action: Sync(func() {}), Delay: 40 * time.Millisecond}).
		EnqueueDelay(1000 * time.Millisecond).
		Enqueue(Task{Action: Sync(func() {})})
	q.Start()
	clock.RunUntil(q.Idle, time.Minute)

	expected := []time.Duration{0, 40 * time.Millisecond, 1040 * time.Millisecond}
	if len(rec.tasks) != len(expected) {
		t.Fatalf("expected %d completions, got %d", len(expected), len(rec.tasks))
	}
	for i, at := range expected {
		if rec.tasks[i] != at {
			t.Errorf("task %d: expected completion at %v, got %v", i, at, rec.tasks[i])
		}
	}
	if len(rec.idles) != 1 || rec.idles[0] != 1040*time.Millisecond {
		t.Errorf("expected one idle at 1040ms, got %v", rec.idles)
	}
}

func TestQueueWaitsForDone(t *testing.T) {
	clock := NewVirtual()
	q := NewQueue(clock)

	var finish Done
	second := false
	q.Enqueue(Task{Action: func(done Done) { finish = done }})
	q.Enqueue(Task{Action: Sync(func() { second = true })})
	q.Start()

	for clock.Step() {
	}
	if second {
		t.Fatal("second task ran before first signaled done")
	}
	if q.Idle() {
		t.Error("expected stalled queue to report busy")
	}

	finish()
	finish()
	for clock.Step() {
	}
	if !second {
		t.Error("expected second task after done")
	}
	if q.Executed() != 2 {
		t.Errorf("expected duplicate done to be ignored, got %d executed", q.Executed())
	}
}

func TestQueueClear(t *testing.T) {
	clock := NewVirtual()
	q := NewQueue(clock)
	ran := 0
	for i := 0; i < 3; i++ {
		q.Enqueue(Task{Action: Sync(func() { ran++ })})
	}
	if q.Len() != 3 {
		t.Errorf("expected 3 pending, got %d", q.Len())
	}
	q.Clear()
	q.Start()
	clock.RunUntil(q.Idle, time.Second)
	if ran != 0 {
		t.Errorf("expected cleared tasks not to run, got %d", ran)
	}
}

type idleSignal chan struct{}

func (s idleSignal) OnTask(n int, at time.Time) {}
func (s idleSignal) OnIdle(at time.Time)        { close(s) }

func TestQueueRealScheduler(t *testing.T) {
	q := NewQueue(Real{})
	idle := make(idleSignal)
	q.AddObserver(idle)

	var got []int
	for i := 0; i < 3; i++ {
		i := i
		q.Enqueue(Task{Action: Sync(func() { got = append(got, i) }), Delay: time.Millisecond})
	}
	q.Start()

	select {
	case <-idle:
	case <-time.After(2 * time.Second):
		t.Fatal("queue did not drain")
	}
	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("expected [0 1 2], got %v", got)
	}
}
