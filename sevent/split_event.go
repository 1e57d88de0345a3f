package sevent

import "github.com/katalvlaran/polyskel/wavefront"

// SplitEvent fires when reflex meets the opposite ring edge (Op0, Op1)
// (Op0.Next must equal Op1 at construction time and again at Handle
// time; if the ring mutated in between, Handle's precondition check
// catches it).
type SplitEvent struct {
	Reflex, Op0, Op1 *wavefront.Node

	time    float32
	serial  uint64
	aborted bool
}

// NewSplitEvent constructs the SplitEvent for reflex against opposite
// edge (op0, op1) at the scheduler's current time, with the given
// serial. ok is false when SplitTime rejects the candidate (diverging,
// edge collapses first, or the projected position falls outside the
// inside half-planes of either endpoint's bisector) or the resulting
// absolute time exceeds distance.
func NewSplitEvent(now, distance, distanceSign float32, reflex, op0, op1 *wavefront.Node, serial uint64) (*SplitEvent, bool) {
	dt, ok := SplitTime(distanceSign, reflex, op0, op1)
	if !ok {
		return nil, false
	}

	t := now + dt
	if !ValidTime(t, distance) {
		return nil, false
	}

	ev := &SplitEvent{Reflex: reflex, Op0: op0, Op1: op1, time: t, serial: serial}
	reflex.AddEvent(ev)
	op0.AddEvent(ev)
	op1.AddEvent(ev)

	return ev, true
}

// Time implements Event.
func (e *SplitEvent) Time() float32 { return e.time }

// Kind implements Event.
func (e *SplitEvent) Kind() Kind { return SplitKind }

// Serial implements Event.
func (e *SplitEvent) Serial() uint64 { return e.serial }

// Participants implements Event. By convention the reflex vertex is
// Participants()[0], relied on by the scheduler to find which reflex
// vertex to add to the aborted-reflex set when this event is aborted.
func (e *SplitEvent) Participants() []*wavefront.Node {
	return []*wavefront.Node{e.Reflex, e.Op0, e.Op1}
}

// Abort implements Event: idempotent, removes this event from all three
// participants' back-reference lists.
func (e *SplitEvent) Abort() {
	if e.aborted {
		return
	}
	e.aborted = true
	e.Reflex.RemoveEvent(e)
	e.Op0.RemoveEvent(e)
	e.Op1.RemoveEvent(e)
}

// Handle implements Event: the reflex vertex splits into two moving
// vertices sharing its current skeleton node, the ring is re-linked into
// the two resulting loops, and both halves are handed to the scheduler's
// post-mutation rehandler.
func (e *SplitEvent) Handle(s Scheduler) error {
	op0, op1, reflex := e.Op0, e.Op1, e.Reflex
	if op0.Next != op1 {
		panic("sevent: SplitEvent.Handle precondition violated: op0.Next != op1")
	}

	s.AbortNodeEvents(op0)
	s.AbortNodeEvents(op1)

	reflex.Skel.Reflex = true

	originalNext := reflex.Next
	originalPrev := reflex.Prev

	node1 := wavefront.NewNode(s.NextNodeID(), reflex.Skel)

	// node0 (reflex, kept) sits between op0 and reflex's original next;
	// node1 (fresh) sits between reflex's original prev and op1. This
	// splits the single ring into the two loops op0->node0->...->op0 and
	// originalPrev->node1->op1->...->originalPrev.
	wavefront.Link(op0, reflex)
	wavefront.Link(reflex, originalNext)
	wavefront.Link(originalPrev, node1)
	wavefront.Link(node1, op1)

	s.AddRingNode(node1)

	s.Rehandle(reflex)
	s.Rehandle(node1)

	return nil
}
