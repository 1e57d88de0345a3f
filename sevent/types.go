// Package sevent implements the two concrete event kinds driving the
// straight-skeleton simulation — EdgeEvent (an edge collapses to zero
// length) and SplitEvent (a reflex vertex meets a non-adjacent edge) —
// plus the bisector/split-time geometry and the total event ordering of
// the scheduler's queue.
//
// sevent depends on wavefront (for *wavefront.Node) but never on engine:
// Event.Handle takes a Scheduler interface instead of a concrete
// *engine.Context, so the owning scheduler can depend on sevent without
// creating an import cycle. This is the "tagged variant with a small
// interface" dispatch the engine's design favors over virtual dispatch
// through heap-allocated polymorphic pointers.
package sevent

import "github.com/katalvlaran/polyskel/wavefront"

// Kind distinguishes the two event types for the total ordering of
// §3: events are ordered first by Time, then by Kind (Edge before
// Split at equal time, so an edge about to vanish is never split
// against), then by Serial.
type Kind int

const (
	// EdgeKind marks an EdgeEvent: an edge collapses to a point.
	EdgeKind Kind = iota

	// SplitKind marks a SplitEvent: a reflex vertex meets an opposite
	// edge.
	SplitKind
)

// String renders the Kind for debugging.
func (k Kind) String() string {
	switch k {
	case EdgeKind:
		return "Edge"
	case SplitKind:
		return "Split"
	default:
		return "Kind(?)"
	}
}

// Scheduler is the minimal contract an Event.Handle implementation needs
// from the owning context: queue manipulation, simulation-time/sign
// accessors, and the shared post-mutation rehandler. engine.Context
// implements Scheduler; sevent never imports engine, breaking what would
// otherwise be an engine<->sevent import cycle (engine needs sevent.Event
// for its queue; sevent needs a scheduler handle for Event.Handle).
type Scheduler interface {
	// Time returns the scheduler's current simulation time.
	Time() float32

	// Epsilon returns the degeneracy tolerance.
	Epsilon() float32

	// DistanceSign returns +1 (grow) or -1 (shrink).
	DistanceSign() float32

	// Distance returns the target absolute offset at which the
	// simulation terminates.
	Distance() float32

	// AddRingNode registers a newly created moving node (produced by a
	// SplitEvent) as live.
	AddRingNode(n *wavefront.Node)

	// NextNodeID returns a fresh per-Context debug id for a moving node
	// created by a split.
	NextNodeID() int

	// RemoveRingNode removes n from the set of live moving nodes.
	RemoveRingNode(n *wavefront.Node)

	// AbortNodeEvents aborts every event currently referencing n: each
	// is removed from the scheduler's queue, has its back-references
	// cleared from all of its participants (not just n), and, if it is
	// a SplitEvent, has its reflex vertex added to the aborted-reflex
	// recheck set. Event kinds must always be retired through this
	// method rather than wavefront.Node.AbortEvents directly, or the
	// queue and the nodes' back-reference lists drift out of sync.
	AbortNodeEvents(n *wavefront.Node)

	// MarkAbortedReflex records that reflex's enqueued split candidate
	// was aborted and must be recomputed before the next pop.
	MarkAbortedReflex(reflex *wavefront.Node)

	// Rehandle is the shared post-mutation finisher of §4.4: it
	// recomputes n's bisector, regenerates the events touching n (or
	// absorbs n via the degenerate-angle path), recursing as needed.
	Rehandle(n *wavefront.Node)
}
