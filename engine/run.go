package engine

import (
	"log"

	"github.com/katalvlaran/polyskel/vec2"
	"github.com/katalvlaran/polyskel/wavefront"
)

// Run drains the event queue in Comparator order, advancing every live
// node's skeleton position by the elapsed time before each event fires,
// handling the event, and rechecking any reflex vertices whose split
// candidate was invalidated mid-step. After the queue empties it
// advances all remaining nodes straight to the target distance, leaving
// their final skeleton-node positions in place for the caller to read.
func (c *Context) Run() error {
	for {
		ev, ok := c.queue.PopMin()
		if !ok {
			break
		}

		if ev.Time() < c.time {
			panic("engine: popped event time precedes current simulation time")
		}

		c.advance(ev.Time() - c.time)
		c.time = ev.Time()

		// The event is no longer pending; clear its own back-references
		// before Handle runs so it cannot observe itself as still-queued
		// while mutating its participants.
		ev.Abort()

		if err := ev.Handle(c); err != nil {
			return err
		}

		c.recheckAbortedReflex()
	}

	c.advance(c.distance - c.time)
	c.time = c.distance

	return nil
}

// advance moves every live node's current skeleton-node position
// forward along its bisector by dt and sets that skeleton node's T to
// the new simulation time. Nodes that have already left their
// skeleton node for a new one (via LeaveSkeletonNode) are unaffected
// here because Skel always points at whichever node is currently being
// traced.
func (c *Context) advance(dt float32) {
	if dt == 0 {
		return
	}
	for _, n := range c.nodes {
		n.Skel.P = vec2.Add(n.Skel.P, vec2.Scale(n.Bisector, dt))
		n.Skel.T = c.time + dt
		if !vec2.IsFinite(n.Skel.P) {
			log.Printf("engine: node %d advanced to a non-finite position at t=%v", n.ID, c.time+dt)
		}
	}
}

// recheckAbortedReflex recomputes a fresh EnqueueNearestSplit candidate
// for every reflex vertex whose previous candidate was invalidated by a
// mutation earlier in this same queue-pop, then clears the set.
func (c *Context) recheckAbortedReflex() {
	if len(c.abortedReflexOrder) == 0 {
		return
	}

	pending := c.abortedReflexOrder
	c.abortedReflexOrder = nil
	c.abortedReflexSet = make(map[*wavefront.Node]struct{})

	for _, n := range pending {
		if c.isLive(n) && n.Reflex {
			c.EnqueueNearestSplit(n)
		}
	}
}
