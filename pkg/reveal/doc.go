/*
Package reveal simulates the incremental appearance of text over time.

A Scheduler reveals one character (rune) per quantum and reports every prefix
in order, then signals completion. Reveals are cancellable: once the returned
cancel function runs, no further callbacks fire.

Timing is abstracted behind a Clock so the same Typewriter runs against real
time (through a Loop, which marshals timer firings onto a single goroutine) or
against a ManualClock in tests. Instant skips timing altogether.
*/
package reveal
