package typist

import (
	"time"

	"github.com/san-kum/typist/internal/term"
)

// Operation is one scripted instruction. The set of operations is closed.
type Operation interface {
	Name() string
	apply(s *Sequencer)
}

type Prompt struct {
	Kind  term.LineKind
	Class string
}

type Type struct {
	Text string
}

type Echo struct {
	Text  string
	Kind  term.LineKind
	Class string
}

type Wait struct {
	Duration time.Duration
}

type LineBreak struct{}

type Link struct {
	Text  string
	URL   string
	Attrs map[string]string
}

type HideCursor struct{}

type Speed struct {
	Level string
}

func (Prompt) Name() string     { return "prompt" }
func (Type) Name() string       { return "type" }
func (Echo) Name() string       { return "echo" }
func (Wait) Name() string       { return "wait" }
func (LineBreak) Name() string  { return "br" }
func (Link) Name() string       { return "link" }
func (HideCursor) Name() string { return "hide_cursor" }
func (Speed) Name() string      { return "speed" }

func (o Prompt) apply(s *Sequencer)   { s.Prompt(o.Kind, o.Class) }
func (o Type) apply(s *Sequencer)     { s.Type(o.Text) }
func (o Echo) apply(s *Sequencer)     { s.Echo(o.Text, o.Kind, o.Class) }
func (o Wait) apply(s *Sequencer)     { s.Wait(o.Duration) }
func (LineBreak) apply(s *Sequencer)  { s.LineBreak() }
func (o Link) apply(s *Sequencer)     { s.Link(o.Text, o.URL, o.Attrs) }
func (HideCursor) apply(s *Sequencer) { s.HideCursor() }
func (o Speed) apply(s *Sequencer)    { s.Speed(o.Level) }

// Do enqueues a single operation.
func (s *Sequencer) Do(op Operation) *Sequencer {
	op.apply(s)
	return s
}

// Play enqueues ops in order.
func (s *Sequencer) Play(ops []Operation) *Sequencer {
	for _, op := range ops {
		op.apply(s)
	}
	return s
}
