package sevent

import "github.com/katalvlaran/polyskel/wavefront"

// EdgeEvent fires when the ring edge (N0, N1) collapses to zero length
// under the current bisectors.
type EdgeEvent struct {
	N0, N1 *wavefront.Node

	time    float32
	serial  uint64
	aborted bool
}

// NewEdgeEvent constructs the EdgeEvent for ring edge (n0, n0.Next) at
// the scheduler's current time, with the given serial. ok is false when
// n0.EdgeCollapseTime is NaN (non-shrinking edge) or the resulting
// absolute time exceeds distance — such candidates are never
// constructed as live events, per §4.3: "skipped when NaN or >
// distance."
func NewEdgeEvent(now, distance float32, n0 *wavefront.Node, serial uint64) (*EdgeEvent, bool) {
	t := now + n0.EdgeCollapseTime
	if !ValidTime(t, distance) {
		return nil, false
	}

	ev := &EdgeEvent{N0: n0, N1: n0.Next, time: t, serial: serial}
	n0.AddEvent(ev)
	ev.N1.AddEvent(ev)

	return ev, true
}

// Time implements Event.
func (e *EdgeEvent) Time() float32 { return e.time }

// Kind implements Event.
func (e *EdgeEvent) Kind() Kind { return EdgeKind }

// Serial implements Event.
func (e *EdgeEvent) Serial() uint64 { return e.serial }

// Participants implements Event.
func (e *EdgeEvent) Participants() []*wavefront.Node { return []*wavefront.Node{e.N0, e.N1} }

// Abort implements Event: idempotent, removes this event from both
// participants' back-reference lists.
func (e *EdgeEvent) Abort() {
	if e.aborted {
		return
	}
	e.aborted = true
	e.N0.RemoveEvent(e)
	e.N1.RemoveEvent(e)
}

// Handle implements Event: splices N1 out of the ring, merges the two
// converging traces at N0's skeleton node, and hands off to the
// scheduler's post-mutation rehandler.
func (e *EdgeEvent) Handle(s Scheduler) error {
	n0, n1 := e.N0, e.N1

	if n1.Reflex {
		n0.Reflex = true
	}
	if n1.Skel != n0.Skel {
		n0.Skel.Reflex = n0.Skel.Reflex || n1.Reflex
		if err := remapIncoming(n1, n0); err != nil {
			return err
		}
	}

	wavefront.Splice(n1)
	s.AbortNodeEvents(n1)
	s.RemoveRingNode(n1)

	s.Rehandle(n0)

	return nil
}
