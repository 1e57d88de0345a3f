package sevent

import "github.com/katalvlaran/polyskel/wavefront"

// Event is the common contract both EdgeEvent and SplitEvent satisfy:
// queue ordering (Time, Kind, Serial), abort, and Handle.
type Event interface {
	// Time is the absolute simulation time at which this event fires.
	Time() float32

	// Kind distinguishes EdgeEvent from SplitEvent for ordering.
	Kind() Kind

	// Serial is a per-Context monotonically increasing id, the final
	// tiebreak in the total order (replacing the source's reliance on
	// object identity hashing, which is not reproducible across runs).
	Serial() uint64

	// Abort marks this event as no longer pending and removes it from
	// every participant's back-reference list. Idempotent.
	Abort()

	// Handle applies this event's structural mutation to the wavefront
	// ring and drives the post-mutation rehandler via s.
	Handle(s Scheduler) error

	// Participants returns the moving nodes this event references, for
	// back-reference bookkeeping. By convention the reflex vertex of a
	// SplitEvent is Participants()[0].
	Participants() []*wavefront.Node
}

// Comparator implements the scheduler's total event order: ascending Time, then
// Kind (EdgeKind before SplitKind at equal Time, so an edge about to
// vanish is always handled before a split is attempted against it), then
// ascending Serial. Returns a negative number if a sorts before b, a
// positive number if a sorts after b, and zero only when a and b are the
// same event.
//
// NaN never participates in this comparison: only events whose Time
// passed ValidTime, which rejects NaN, are ever constructed (see
// NewEdgeEvent, NewSplitEvent).
func Comparator(a, b Event) int {
	if a.Time() < b.Time() {
		return -1
	}
	if a.Time() > b.Time() {
		return 1
	}
	if a.Kind() != b.Kind() {
		if a.Kind() < b.Kind() {
			return -1
		}

		return 1
	}
	if a.Serial() < b.Serial() {
		return -1
	}
	if a.Serial() > b.Serial() {
		return 1
	}

	return 0
}

// ValidTime reports whether t is an event time not beyond the
// simulation's target distance (t <= distance). NaN comparisons are
// false in Go, so a NaN t (an invalid/degenerate candidate) correctly
// reports false without a special case; infinities are not rejected
// separately.
func ValidTime(t, distance float32) bool {
	return t <= distance
}
