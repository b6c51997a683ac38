package trace

import (
	"errors"
	"time"

	"github.com/san-kum/typist/internal/anim"
	"github.com/san-kum/typist/internal/term"
	"github.com/san-kum/typist/internal/typist"
)

// ErrStalled is returned when a script does not drain within the limit.
var ErrStalled = errors.New("trace: script did not finish")

// MaxDuration bounds an offline run.
const MaxDuration = time.Hour

type Frame struct {
	Task    int
	At      time.Duration
	Chars   int
	Cursors int
	Text    string
}

// Recorder captures the region after every completed task.
type Recorder struct {
	region *term.Region
	frames []Frame
	idleAt time.Duration
}

func NewRecorder(region *term.Region) *Recorder {
	return &Recorder{region: region, frames: make([]Frame, 0)}
}

func (r *Recorder) OnTask(n int, at time.Time) {
	text := r.region.Text()
	r.frames = append(r.frames, Frame{
		Task:    n,
		At:      at.Sub(anim.Epoch),
		Chars:   r.region.CharCount(),
		Cursors: r.region.CursorCount(),
		Text:    text,
	})
}

func (r *Recorder) OnIdle(at time.Time) { r.idleAt = at.Sub(anim.Epoch) }

func (r *Recorder) Frames() []Frame { return r.frames }

type Result struct {
	Frames   []Frame
	Duration time.Duration
	Tasks    int
	Region   *term.Region
}

// Run plays ops on a simulated clock and records every task.
func Run(ops []typist.Operation, opts typist.Options, rows int) (*Result, error) {
	clock := anim.NewVirtual()
	region := term.NewRegion(rows)
	seq := typist.New(region, clock, opts)
	defer seq.Close()

	rec := NewRecorder(region)
	seq.Queue().AddObserver(rec)
	seq.Play(ops)
	seq.Start()

	if !clock.RunUntil(seq.Queue().Idle, MaxDuration) {
		return nil, ErrStalled
	}
	return &Result{
		Frames:   rec.Frames(),
		Duration: clock.Elapsed(),
		Tasks:    seq.Queue().Executed(),
		Region:   region,
	}, nil
}
