package anim

import "time"

type Timer interface {
	Stop() bool
}

type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real runs callbacks on their own timer goroutines.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Loop fires callbacks by handing them to whoever drains C, so a single
// event loop can run every callback itself.
type Loop struct {
	fire chan func()
}

func NewLoop() *Loop {
	return &Loop{fire: make(chan func(), 64)}
}

func (l *Loop) Now() time.Time { return time.Now() }

func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() { l.fire <- f })
}

func (l *Loop) C() <-chan func() { return l.fire }
