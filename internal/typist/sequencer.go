package typist

import (
	"sync"
	"time"

	"github.com/san-kum/typist/internal/anim"
	"github.com/san-kum/typist/internal/term"
)

const (
	FastDelay = 40 * time.Millisecond
	SlowDelay = 120 * time.Millisecond
)

// DelayFor maps a speed level onto its per-character delay.
func DelayFor(level string) (time.Duration, bool) {
	switch level {
	case "fast":
		return FastDelay, true
	case "slow":
		return SlowDelay, true
	}
	return 0, false
}

type State int

const (
	Idle State = iota
	BuildingLine
)

func (s State) String() string {
	if s == BuildingLine {
		return "building-line"
	}
	return "idle"
}

type Options struct {
	Speed         string
	BlinkInterval time.Duration
	CursorGlyph   string
}

func DefaultOptions() Options {
	return Options{
		Speed:         "fast",
		BlinkInterval: anim.DefaultBlinkInterval,
		CursorGlyph:   "|",
	}
}

// Sequencer owns a region, its cursor and the queue that animates it.
type Sequencer struct {
	mu     sync.Mutex
	sched  anim.Scheduler
	glyph  string
	region *term.Region
	queue  *anim.Queue
	blink  *anim.Blinker
	cursor *term.Cursor
	delay  time.Duration
	state  State
}

// New binds a sequencer to region and starts the cursor blinking.
func New(region *term.Region, sched anim.Scheduler, opts Options) *Sequencer {
	s := &Sequencer{
		sched: sched,
		glyph: opts.CursorGlyph,
		delay: FastDelay,
	}
	if s.glyph == "" {
		s.glyph = "|"
	}
	s.Speed(opts.Speed)
	s.blink = anim.NewBlinker(sched, opts.BlinkInterval, s.toggleCursor)
	s.Bind(region)
	return s
}

// Bind points the sequencer at a new region. Pending tasks and the cursor
// handle of the previous region are discarded.
func (s *Sequencer) Bind(region *term.Region) {
	s.blink.Stop()

	s.mu.Lock()
	if s.queue != nil {
		s.queue.Clear()
	}
	s.region = region
	s.queue = anim.NewQueue(s.sched)
	s.cursor = nil
	s.state = Idle
	s.mu.Unlock()

	s.blink.Start()
}

// Start runs the queued tasks.
func (s *Sequencer) Start() { s.queue.Start() }

// Close stops the blinker and drops pending tasks. The host calls it when
// the page goes away; otherwise the blink timer keeps running.
func (s *Sequencer) Close() {
	s.blink.Stop()
	s.queue.Clear()
}

func (s *Sequencer) Queue() *anim.Queue     { return s.queue }
func (s *Sequencer) Blinker() *anim.Blinker { return s.blink }

func (s *Sequencer) Cursor() *term.Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Delay is the per-character delay the next operation will capture.
func (s *Sequencer) Delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delay
}

func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Speed changes the delay for operations enqueued from now on. Unknown
// levels leave the current setting alone.
func (s *Sequencer) Speed(level string) *Sequencer {
	if d, ok := DelayFor(level); ok {
		s.mu.Lock()
		s.delay = d
		s.mu.Unlock()
	}
	return s
}

// Prompt starts a new prompt line holding a fresh cursor.
func (s *Sequencer) Prompt(kind term.LineKind, class string) *Sequencer {
	region := s.region
	s.enqueue(0, func() {
		l := s.newLine(region, kind, class)
		c := &term.Cursor{Glyph: s.glyph}
		region.MakePrompt(l, c)
		s.setCursor(c)
	})
	return s
}

// Type inserts text one rune at a time just left of the cursor.
func (s *Sequencer) Type(text string) *Sequencer {
	if text == "" {
		return s
	}
	region, delay := s.region, s.Delay()

	s.enqueue(0, s.blink.Stop)
	for _, r := range text {
		ch := term.Text(string(r))
		s.enqueue(delay, func() {
			region.InsertBefore(s.Cursor(), ch)
		})
	}
	s.enqueue(0, s.blink.Start)
	return s
}

// Echo types text onto a brand-new line of the given kind. The line is
// created when the first character is due.
func (s *Sequencer) Echo(text string, kind term.LineKind, class string) *Sequencer {
	runes := []rune(text)
	region, delay := s.region, s.Delay()

	var line *term.Line
	for i, r := range runes {
		i, ch := i, string(r)
		s.enqueue(delay, func() {
			if i == 0 {
				line = s.newLine(region, kind, class)
				s.setState(BuildingLine)
			}
			region.AppendText(line, ch)
			if i == len(runes)-1 {
				s.setState(Idle)
			}
		})
	}
	return s
}

func (s *Sequencer) Wait(d time.Duration) *Sequencer {
	if d < 0 {
		d = 0
	}
	s.queue.EnqueueDelay(d)
	return s
}

func (s *Sequencer) LineBreak() *Sequencer {
	region, delay := s.region, s.Delay()

	s.enqueue(0, s.blink.Stop)
	s.enqueue(delay, func() {
		region.InsertBefore(s.Cursor(), term.Break{})
	})
	s.enqueue(0, s.blink.Start)
	return s
}

// Link places an anchor left of the cursor and types text into it.
func (s *Sequencer) Link(text, url string, attrs map[string]string) *Sequencer {
	region, delay := s.region, s.Delay()
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}

	var a *term.Anchor
	s.enqueue(0, s.blink.Stop)
	s.enqueue(delay, func() {
		a = &term.Anchor{Href: url, Attrs: copied}
		region.InsertBefore(s.Cursor(), a)
	})
	for _, r := range text {
		ch := string(r)
		s.enqueue(delay, func() {
			region.AppendAnchorText(a, ch)
		})
	}
	s.enqueue(0, s.blink.Start)
	return s
}

// HideCursor removes the cursor. Hiding an absent cursor does nothing.
func (s *Sequencer) HideCursor() *Sequencer {
	region, delay := s.region, s.Delay()
	s.enqueue(delay, func() {
		region.RemoveCursor(s.takeCursor())
	})
	return s
}

func (s *Sequencer) enqueue(delay time.Duration, f func()) {
	s.queue.Enqueue(anim.Task{Action: anim.Sync(f), Delay: delay})
}

// newLine removes this sequencer's cursor and appends a placeholder line.
func (s *Sequencer) newLine(region *term.Region, kind term.LineKind, class string) *term.Line {
	region.RemoveCursor(s.takeCursor())
	return region.AddLine(kind, class)
}

func (s *Sequencer) takeCursor() *term.Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cursor
	s.cursor = nil
	return c
}

func (s *Sequencer) setCursor(c *term.Cursor) {
	s.mu.Lock()
	s.cursor = c
	s.mu.Unlock()
}

func (s *Sequencer) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Sequencer) toggleCursor() {
	s.mu.Lock()
	region, c := s.region, s.cursor
	s.mu.Unlock()
	region.ToggleCursor(c)
}
