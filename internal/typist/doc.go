// Package typist implements the typing sequencer: it turns high-level
// operations into a sequence of single-character tasks on an [anim.Queue]
// bound to one [term.Region].
//
//   - [Sequencer]: chainable operations (Prompt, Type, Echo, Wait, LineBreak,
//     Link, HideCursor, Speed)
//   - [Operation]: the same operations as values, for scripted playback
//   - [Compile]: turns named config steps into operations
//
// # Example
//
//	region := term.NewRegion(8)
//	seq := typist.New(region, anim.Real{}, typist.DefaultOptions())
//	seq.Prompt(term.H1, "term-line").Type("> ").Wait(time.Second).Type("Hi !")
//	seq.Start()
//
// # Timing
//
// Every character task is followed by the per-character delay in effect when
// the operation was enqueued. Changing the speed never affects tasks that are
// already queued. Speed is owned by the sequencer, so two sequencers never
// influence each other.
package typist
