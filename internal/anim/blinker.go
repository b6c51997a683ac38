package anim

import (
	"sync"
	"time"
)

const DefaultBlinkInterval = 500 * time.Millisecond

// Blinker calls toggle every interval until stopped. Stop leaves whatever
// state the last toggle produced.
type Blinker struct {
	mu       sync.Mutex
	sched    Scheduler
	interval time.Duration
	toggle   func()
	timer    Timer
	gen      int
	running  bool
}

func NewBlinker(sched Scheduler, interval time.Duration, toggle func()) *Blinker {
	if interval <= 0 {
		interval = DefaultBlinkInterval
	}
	return &Blinker{sched: sched, interval: interval, toggle: toggle}
}

// Start begins toggling. A second Start without Stop restarts the cycle.
func (b *Blinker) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	b.running = true
	b.schedule(b.gen)
}

func (b *Blinker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen++
	b.running = false
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *Blinker) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

func (b *Blinker) Interval() time.Duration { return b.interval }

// schedule must be called with b.mu held.
func (b *Blinker) schedule(gen int) {
	b.timer = b.sched.AfterFunc(b.interval, func() {
		b.mu.Lock()
		if b.gen != gen {
			// stale tick delivered after Stop
			b.mu.Unlock()
			return
		}
		b.mu.Unlock()

		b.toggle()

		b.mu.Lock()
		if b.gen == gen {
			b.schedule(gen)
		}
		b.mu.Unlock()
	})
}
