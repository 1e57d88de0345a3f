// Package skelgraph defines the straight-skeleton output graph: nodes with
// a 2D position and labelled directed edges recording how each original
// polygon vertex's wavefront trace threaded through the simulation.
//
// Two edge kinds exist:
//
//	Mapping    - continues the trace of an initial boundary vertex.
//	Degeneracy - internal connector produced when the wavefront pinches
//	             or a ring collapses to a point.
//
// Graph mutation is append-only except for RemapIncoming, which atomically
// redirects every incoming edge of one node onto another (used when two
// converging moving vertices merge at an EdgeEvent). Nodes are never
// destroyed once allocated; the Graph arena owns them for the lifetime of
// a single Apply call.
package skelgraph

import (
	"errors"

	"github.com/katalvlaran/polyskel/vec2"
)

// Sentinel errors for skelgraph operations.
var (
	// ErrNilNode indicates an operation received a nil *Node where one
	// was required.
	ErrNilNode = errors.New("skelgraph: nil node")

	// ErrSelfLink indicates an attempt to link a node to itself.
	ErrSelfLink = errors.New("skelgraph: cannot link a node to itself")
)

// EdgeKind labels a directed edge in the skeleton graph.
type EdgeKind int

const (
	// Mapping continues the trace of an initial boundary vertex.
	Mapping EdgeKind = iota

	// Degeneracy is an internal connector produced when the wavefront
	// pinches or a ring collapses.
	Degeneracy
)

// String renders the EdgeKind for debugging and test failure messages.
func (k EdgeKind) String() string {
	switch k {
	case Mapping:
		return "Mapping"
	case Degeneracy:
		return "Degeneracy"
	default:
		return "EdgeKind(?)"
	}
}

// Node is a vertex of the output skeleton graph: the position at which a
// moving vertex was "laid down" at some point during the simulation.
//
// Invariant: outgoing[x] == k iff x.incoming[this] == k. This is
// maintained by Link and RemapIncoming; callers must not mutate the
// outgoing/incoming maps directly.
type Node struct {
	// P is the 2D position this node was laid down at.
	P vec2.Vec2

	// T is the simulation time at which P holds: 0 for the polygon's
	// original vertices, or the event time that triggered
	// wavefront.Node.LeaveSkeletonNode for a newly laid-down node. While
	// a moving vertex sits on the node, the scheduler advances T together
	// with P, so a node that has been left behind keeps the time at which
	// its vertex stopped moving on it. Used by polyskel/offset to
	// reconstruct intermediate cross-sections without re-running the
	// simulation.
	T float32

	// Reflex records that the moving vertex which created this node was
	// reflex (a concave corner) at the moment it was laid down.
	Reflex bool

	outgoing map[*Node]EdgeKind
	incoming map[*Node]EdgeKind
}

// NewNode allocates a Node at position p with no edges.
func NewNode(p vec2.Vec2) *Node {
	return &Node{
		P:        p,
		outgoing: make(map[*Node]EdgeKind),
		incoming: make(map[*Node]EdgeKind),
	}
}

// Link adds a directed edge from -> to of the given kind, maintaining the
// outgoing/incoming symmetry invariant. Linking a node to itself is
// rejected with ErrSelfLink since no event in the simulation ever
// produces a self-referential trace.
func Link(from, to *Node, kind EdgeKind) error {
	if from == nil || to == nil {
		return ErrNilNode
	}
	if from == to {
		return ErrSelfLink
	}

	from.outgoing[to] = kind
	to.incoming[from] = kind

	return nil
}

// RemapIncoming atomically redirects every incoming edge of from onto to,
// preserving each edge's kind, then clears from's incoming set. Used when
// two moving vertices converge at an EdgeEvent and their traces must
// merge at a shared output node.
func RemapIncoming(from, to *Node) error {
	if from == nil || to == nil {
		return ErrNilNode
	}
	if from == to {
		return nil
	}

	for src, kind := range from.incoming {
		delete(src.outgoing, from)
		if src != to {
			src.outgoing[to] = kind
			to.incoming[src] = kind
		}
	}
	from.incoming = make(map[*Node]EdgeKind)

	return nil
}

// Outgoing returns a snapshot copy of this node's outgoing edges.
func (n *Node) Outgoing() map[*Node]EdgeKind {
	out := make(map[*Node]EdgeKind, len(n.outgoing))
	for k, v := range n.outgoing {
		out[k] = v
	}

	return out
}

// Incoming returns a snapshot copy of this node's incoming edges.
func (n *Node) Incoming() map[*Node]EdgeKind {
	in := make(map[*Node]EdgeKind, len(n.incoming))
	for k, v := range n.incoming {
		in[k] = v
	}

	return in
}

// HasOutgoing reports whether an outgoing edge to x exists, returning its
// kind.
func (n *Node) HasOutgoing(x *Node) (EdgeKind, bool) {
	k, ok := n.outgoing[x]

	return k, ok
}

// Terminal reports whether n has no outgoing edges of any kind: the
// trace that produced it never continued anywhere else, either because
// the simulation ended while n was still live or because n is the final
// node of a fully collapsed ring.
func (n *Node) Terminal() bool {
	return len(n.outgoing) == 0
}
