package anim

import (
	"container/heap"
	"time"
)

// Epoch is where every Virtual clock starts.
var Epoch = time.Unix(0, 0).UTC()

// Virtual is a simulated clock. Nothing fires until the owner calls Step,
// Advance or RunUntil, and callbacks run on the caller's goroutine.
type Virtual struct {
	now    time.Time
	seq    int
	events eventHeap
}

func NewVirtual() *Virtual {
	return &Virtual{now: Epoch}
}

func (v *Virtual) Now() time.Time { return v.now }

func (v *Virtual) Elapsed() time.Duration { return v.now.Sub(Epoch) }

func (v *Virtual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	ev := &event{at: v.now.Add(d), seq: v.seq, f: f}
	v.seq++
	heap.Push(&v.events, ev)
	return ev
}

// Pending reports the number of timers that have not fired or been stopped.
func (v *Virtual) Pending() int {
	n := 0
	for _, ev := range v.events {
		if !ev.stopped {
			n++
		}
	}
	return n
}

// Step fires the earliest pending timer, moving the clock to its deadline.
// It returns false when nothing is scheduled.
func (v *Virtual) Step() bool {
	for v.events.Len() > 0 {
		ev := heap.Pop(&v.events).(*event)
		if ev.stopped {
			continue
		}
		ev.fired = true
		if ev.at.After(v.now) {
			v.now = ev.at
		}
		ev.f()
		return true
	}
	return false
}

// Advance fires every timer due within d, including ones scheduled along the
// way, and leaves the clock exactly d later.
func (v *Virtual) Advance(d time.Duration) {
	end := v.now.Add(d)
	for {
		ev := v.peek()
		if ev == nil || ev.at.After(end) {
			break
		}
		v.Step()
	}
	v.now = end
}

// RunUntil steps until cond holds. It gives up once the next timer would move
// the clock past limit, and reports whether cond was met.
func (v *Virtual) RunUntil(cond func() bool, limit time.Duration) bool {
	end := v.now.Add(limit)
	for !cond() {
		ev := v.peek()
		if ev == nil || ev.at.After(end) {
			return false
		}
		v.Step()
	}
	return true
}

func (v *Virtual) peek() *event {
	for v.events.Len() > 0 {
		ev := v.events[0]
		if !ev.stopped {
			return ev
		}
		heap.Pop(&v.events)
	}
	return nil
}

type event struct {
	at      time.Time
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (e *event) Stop() bool {
	if e.stopped || e.fired {
		return false
	}
	e.stopped = true
	return true
}

type eventHeap []*event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(*event))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return ev
}
