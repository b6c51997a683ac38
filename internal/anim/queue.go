package anim

import (
	"sync"
	"time"
)

// Done signals that a task's visible effect has committed. Only the first
// call counts.
type Done func()

type Action func(done Done)

// Task is one step on a Queue. A nil Action makes the task a pure pause.
type Task struct {
	Action Action
	Delay  time.Duration
}

// Sync adapts a plain function into an Action that completes as soon as f
// returns.
func Sync(f func()) Action {
	return func(done Done) {
		f()
		done()
	}
}

type Observer interface {
	OnTask(n int, at time.Time)
	OnIdle(at time.Time)
}

type Queue struct {
	mu        sync.Mutex
	sched     Scheduler
	tasks     []Task
	started   bool
	running   bool
	executed  int
	observers []Observer
}

func NewQueue(sched Scheduler) *Queue {
	return &Queue{
		sched:     sched,
		tasks:     make([]Task, 0),
		observers: make([]Observer, 0),
	}
}

func (q *Queue) AddObserver(o Observer) {
	q.mu.Lock()
	q.observers = append(q.observers, o)
	q.mu.Unlock()
}

// Enqueue appends t. It never runs t inline; a started queue that has
// drained picks it up on the next scheduler turn.
func (q *Queue) Enqueue(t Task) *Queue {
	q.mu.Lock()
	q.tasks = append(q.tasks, t)
	kick := q.started && !q.running
	if kick {
		q.running = true
	}
	q.mu.Unlock()

	if kick {
		q.sched.AfterFunc(0, q.next)
	}
	return q
}

func (q *Queue) EnqueueDelay(d time.Duration) *Queue {
	return q.Enqueue(Task{Delay: d})
}

// Start begins execution. Calling it again is a no-op.
func (q *Queue) Start() {
	q.mu.Lock()
	if q.started {
		q.mu.Unlock()
		return
	}
	q.started = true
	q.running = true
	q.mu.Unlock()

	q.sched.AfterFunc(0, q.next)
}

// Clear drops every task that has not started yet.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.tasks = q.tasks[:0]
	q.mu.Unlock()
}

// Len reports the number of tasks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Executed reports how many tasks have signaled completion.
func (q *Queue) Executed() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.executed
}

// Idle reports whether nothing is running and nothing is waiting.
func (q *Queue) Idle() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return !q.running && len(q.tasks) == 0
}

func (q *Queue) next() {
	q.mu.Lock()
	if len(q.tasks) == 0 {
		q.running = false
		obs := append([]Observer(nil), q.observers...)
		q.mu.Unlock()

		at := q.sched.Now()
		for _, o := range obs {
			o.OnIdle(at)
		}
		return
	}
	t := q.tasks[0]
	q.tasks[0] = Task{}
	q.tasks = q.tasks[1:]
	q.mu.Unlock()

	var once sync.Once
	done := func() {
		once.Do(func() { q.complete(t.Delay) })
	}
	if t.Action == nil {
		done()
		return
	}
	t.Action(done)
}

func (q *Queue) complete(delay time.Duration) {
	q.mu.Lock()
	q.executed++
	n := q.executed
	obs := append([]Observer(nil), q.observers...)
	q.mu.Unlock()

	at := q.sched.Now()
	for _, o := range obs {
		o.OnTask(n, at)
	}
	q.sched.AfterFunc(delay, q.next)
}
