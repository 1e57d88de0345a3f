// Package wavefront implements the moving-node ring: the dynamic polygon
// simulated by the straight-skeleton engine. It is a circular doubly
// linked list of Nodes, each carrying a position (via its current
// skelgraph.Node), a bisector (direction x speed), the direction and
// collapse time of its edge to the next node, a reflex flag, and the set
// of pending events that reference it.
//
// wavefront depends only on skelgraph and vec2 so that the event system
// (package sevent) and scheduler (package engine) can depend on
// wavefront without creating an import cycle: wavefront never imports
// sevent or engine.
package wavefront

import (
	"errors"

	"github.com/katalvlaran/polyskel/skelgraph"
	"github.com/katalvlaran/polyskel/vec2"
)

// Sentinel errors for wavefront operations.
var (
	// ErrRingTooSmall indicates an operation was attempted on a ring with
	// fewer than the 2 nodes required to remain a valid (possibly
	// degenerate) ring.
	ErrRingTooSmall = errors.New("wavefront: ring has fewer than 2 nodes")
)

// EventRef is the minimal contract wavefront needs from a pending event
// for back-reference bookkeeping: the ability to abort it. sevent.Event
// satisfies this interface structurally; wavefront never imports sevent.
type EventRef interface {
	Abort()
}

// Node is a vertex of the moving wavefront.
//
// Invariants (outside the moment of a structural mutation):
//   - Next.Prev == this and Prev.Next == this.
//   - EdgeDir is the unit vector from Skel.P to Next.Skel.P; it is stale
//     between LeaveSkeletonNode and the next UpdateEdge call.
//   - Reflex == true iff Bisector . (direction to Prev) < 0.
type Node struct {
	// ID is an opaque per-Context identifier, useful only for debugging
	// and visualization; it carries no algorithmic meaning.
	ID int

	// Skel is the skeleton-graph node this moving vertex currently sits
	// on. LeaveSkeletonNode reassigns this to a freshly allocated node
	// each time the vertex changes bisector.
	Skel *skelgraph.Node

	// Next and Prev are the circular ring pointers.
	Next *Node
	Prev *Node

	// EdgeDir is the unit vector from Skel.P toward Next.Skel.P.
	EdgeDir vec2.Vec2

	// EdgeCollapseTime is the time remaining, from the moment UpdateEdge
	// ran, until the edge (this, Next) collapses to zero length under the
	// current bisectors, or NaN if the edge is not shrinking.
	EdgeCollapseTime float32

	// Bisector is direction x speed: the vector this vertex moves along
	// per unit simulation time.
	Bisector vec2.Vec2

	// Reflex marks this vertex as a concave corner at its current
	// bisector.
	Reflex bool

	// Events lists the events that currently reference this node, for
	// O(deg) abort when the node is mutated.
	Events []EventRef
}

// NewNode allocates a moving-wavefront vertex sitting initially on skel,
// with the given debug id. Ring pointers, bisector, and edge state must
// be set up by the caller (the driver links nodes into a ring, then
// calls CalcBisector/UpdateEdge on each).
func NewNode(id int, skel *skelgraph.Node) *Node {
	return &Node{ID: id, Skel: skel}
}

// AddEvent appends e to this node's back-reference list.
func (n *Node) AddEvent(e EventRef) {
	n.Events = append(n.Events, e)
}

// RemoveEvent removes e from this node's back-reference list, if present.
func (n *Node) RemoveEvent(e EventRef) {
	for i, ev := range n.Events {
		if ev == e {
			n.Events = append(n.Events[:i], n.Events[i+1:]...)

			return
		}
	}
}

// AbortEvents aborts and clears every event currently referencing this
// node.
func (n *Node) AbortEvents() {
	events := n.Events
	n.Events = nil
	for _, e := range events {
		e.Abort()
	}
}

// RingSize counts the nodes in the cyclic ring starting at n, up to a cap
// of limit (callers pass a generous bound; the simulation never produces
// rings anywhere near that size without a bug).
func RingSize(n *Node, limit int) int {
	if n == nil {
		return 0
	}

	count := 1
	cur := n.Next
	for cur != n && count < limit {
		count++
		cur = cur.Next
	}

	return count
}
