// Package anim provides the timing primitives behind the typing effect.
//
// The package is built around three pieces:
//
//   - [Scheduler]: one-shot timers against a clock ([Real], [Loop], [Virtual])
//   - [Queue]: a strictly sequential list of tasks with per-task delays
//   - [Blinker]: a repeating toggle used for the cursor glyph
//
// # Execution Model
//
// A queue runs exactly one task at a time. A task reports completion through
// its [Done] callback; the queue then waits for the task's delay and starts
// the next one. A task that never calls done stalls the queue for good.
//
// # Thread Safety
//
// Queue and Blinker are safe to drive from timer goroutines ([Real]). With
// [Loop] every callback runs on the goroutine draining [Loop.C], which is how
// the page TUI keeps all mutation on the Bubble Tea update loop.
package anim
