// Package event provides the send-side abstraction the astar search uses
// to stream progress to an external observer concurrently with the search,
// over a channel so more than one consumer goroutine can drain it.
//
// Three back-ends are provided: NewUnbounded (never blocks, never drops),
// NewBounded (applies backpressure once the backlog reaches its capacity),
// and NewNoop (always succeeds and discards, for callers with no observer).
// Message is a closed tagged variant — Enqueued and End are the only two
// kinds, which keeps consumers exhaustive over a type switch instead of
// depending on an open interface hierarchy.
package event

import "github.com/katalvlaran/jpsmaze/position"

// Message is the sealed set of events a Sender can carry. The unexported
// isMessage method restricts implementations to this package.
type Message interface {
	isMessage()
}

// Enqueued is emitted each time a successor is newly inserted or relaxed
// onto the search frontier.
type Enqueued struct {
	Node  position.Position
	Depth float64
}

func (Enqueued) isMessage() {}

// End is emitted exactly once, after the search returns, carrying whatever
// statistics and path payload the caller attaches. Callers parameterize the
// payload type so this package does not need to import astar.
type End struct {
	Payload any
}

func (End) isMessage() {}

// Sender is the send-side of an event channel. Send reports false once the
// channel is closed (the receiver has been dropped); a search that observes
// false must abort and return as if no path were found. Sender is cloneable
// so multiple producers may share one back-end, though this engine's search
// loop only ever uses one.
type Sender interface {
	Send(msg Message) bool
	Clone() Sender
}

// Closer is implemented by back-ends that own a receive channel needing an
// explicit close once the search that holds the Sender returns. astar calls
// Close via this optional interface; NewNoop's Sender does not implement it
// since there is no channel to close.
type Closer interface {
	Close()
}
