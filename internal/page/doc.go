// Package page is the portfolio page as a terminal program: a title, the
// typing terminal, and named sections that can be scrolled to.
//
// # Key Bindings
//
//	1-9     - Scroll to the nth section
//	t, Home - Scroll to the top
//	j/k     - Scroll one row
//	r       - Replay the screenplay
//	q       - Quit
//
// Timers are delivered through an [anim.Loop] and run inside Update, so the
// sequencer, blinker and scroll animation never race with View.
package page
