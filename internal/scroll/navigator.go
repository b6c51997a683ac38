package scroll

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/san-kum/typist/internal/anim"
)

const (
	// Fast matches the "fast" animation speed of the page.
	Fast  = 200 * time.Millisecond
	Frame = 13 * time.Millisecond
)

var ErrUnknownTarget = errors.New("scroll: no element with that id")

// Page is anything with a vertical scroll offset and named elements.
type Page interface {
	ScrollOffset() int
	SetScrollOffset(y int)
	Offset(id string) (int, bool)
}

// Navigator animates a page's scroll offset toward a target.
type Navigator struct {
	mu       sync.Mutex
	page     Page
	sched    anim.Scheduler
	duration time.Duration
	timer    anim.Timer
	gen      int
}

func New(page Page, sched anim.Scheduler, duration time.Duration) *Navigator {
	if duration <= 0 {
		duration = Fast
	}
	return &Navigator{page: page, sched: sched, duration: duration}
}

func (n *Navigator) ToTop() {
	n.animate(0)
}

// ToElement scrolls to the top of the element named id.
func (n *Navigator) ToElement(id string) error {
	y, ok := n.page.Offset(id)
	if !ok {
		return ErrUnknownTarget
	}
	n.animate(y)
	return nil
}

// Animating reports whether a scroll is in flight.
func (n *Navigator) Animating() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.timer != nil
}

func (n *Navigator) animate(target int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	gen := n.gen
	from := n.page.ScrollOffset()
	start := n.sched.Now()

	var tick func()
	tick = func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.gen != gen {
			return
		}
		p := float64(n.sched.Now().Sub(start)) / float64(n.duration)
		if p >= 1 {
			n.page.SetScrollOffset(target)
			n.timer = nil
			return
		}
		n.page.SetScrollOffset(from + int(math.Round(swing(p)*float64(target-from))))
		n.timer = n.sched.AfterFunc(Frame, tick)
	}
	n.timer = n.sched.AfterFunc(0, tick)
}

// swing eases in and out along half a cosine.
func swing(p float64) float64 {
	return 0.5 - math.Cos(p*math.Pi)/2
}
