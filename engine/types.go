// Package engine implements the scheduler: the priority-queue-driven
// simulation loop that owns the live moving-node set, the ordered event
// queue, the current simulation time, and the aborted-reflex recheck
// set. Context is the single piece of shared mutable state a straight
// skeleton run touches; it is not safe for concurrent reuse — the core
// is strictly sequential, single-threaded, and synchronous.
package engine

import (
	"errors"

	"github.com/katalvlaran/polyskel/sevent"
	"github.com/katalvlaran/polyskel/skelgraph"
	"github.com/katalvlaran/polyskel/wavefront"
)

// Sentinel errors for Context construction and configuration.
var (
	// ErrBadEpsilon indicates a non-positive epsilon was supplied.
	ErrBadEpsilon = errors.New("engine: epsilon must be positive")
)

// ContextOption configures a Context at construction time.
type ContextOption func(c *Context)

// WithEpsilon sets the degeneracy tolerance. Panics if e is not
// positive: an invalid epsilon is a programmer error caught at
// construction, not a recoverable runtime condition.
func WithEpsilon(e float32) ContextOption {
	if e <= 0 {
		panic(ErrBadEpsilon.Error())
	}

	return func(c *Context) { c.epsilon = e }
}

// WithDistanceSign sets the simulation direction: -1 for shrink
// (default), +1 for grow. Panics if sign is neither -1 nor +1.
func WithDistanceSign(sign float32) ContextOption {
	if sign != 1 && sign != -1 {
		panic("engine: distance sign must be +1 or -1")
	}

	return func(c *Context) { c.distanceSign = sign }
}

// DefaultEpsilon is the degeneracy tolerance used when WithEpsilon is not
// supplied.
const DefaultEpsilon float32 = 1e-4

// Context is the scheduler: it owns the live MovingNode set, the ordered
// event queue, the aborted-reflex recheck set, and the skeleton-node
// arena for one simulation run.
type Context struct {
	time         float32
	distance     float32
	distanceSign float32
	epsilon      float32

	arena *skelgraph.Graph

	nodes []*wavefront.Node
	live  map[*wavefront.Node]struct{}

	queue *eventSet

	abortedReflexSet   map[*wavefront.Node]struct{}
	abortedReflexOrder []*wavefront.Node

	serial        uint64
	nodeIDCounter int
}

// NewContext constructs a Context with default epsilon (1e-4) and
// distance sign (-1, shrink), applying opts in order.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{epsilon: DefaultEpsilon, distanceSign: -1}
	for _, opt := range opts {
		opt(c)
	}
	c.resetCollections()

	return c
}

// Reset clears all collections and restarts the serial/id counters,
// reconfiguring distance and distanceSign for a fresh run, so one
// Context can be reused across runs instead of constructing a new one
// each time.
func (c *Context) Reset(distance, distanceSign float32) {
	c.distance = distance
	c.distanceSign = distanceSign
	c.time = 0
	c.resetCollections()
}

func (c *Context) resetCollections() {
	c.arena = skelgraph.NewGraph()
	c.nodes = nil
	c.live = make(map[*wavefront.Node]struct{})
	c.queue = newEventSet()
	c.abortedReflexSet = make(map[*wavefront.Node]struct{})
	c.abortedReflexOrder = nil
	c.serial = 0
	c.nodeIDCounter = 0
}

// SetDistance sets the target absolute offset and simulation direction
// for this run, without clearing any already-seeded ring/queue state.
// The driver calls this once after resolving an unbounded target
// distance to a finite one (see ApplyFullSkeleton).
func (c *Context) SetDistance(distance, distanceSign float32) {
	c.distance = distance
	c.distanceSign = distanceSign
}

// Arena returns the skeleton-graph node arena owned by this Context.
func (c *Context) Arena() *skelgraph.Graph { return c.arena }

// Nodes returns the live moving nodes, in insertion order. The returned
// slice is a live view and must not be retained across further mutation.
func (c *Context) Nodes() []*wavefront.Node { return c.nodes }

// QueueLen reports the number of events currently pending, for tests and
// diagnostics.
func (c *Context) QueueLen() int { return c.queue.Len() }

// Enqueue adds an already-constructed event to the queue. Exposed for
// the driver's initial seeding pass; sevent.Event construction already
// validates the candidate, so Enqueue itself performs no checks.
func (c *Context) Enqueue(e sevent.Event) { c.queue.Enqueue(e) }

// NextSerial issues the next monotonic event serial number. Exposed so
// the driver's initial seeding pass can hand every seed event a distinct
// serial, matching what Rehandle's own regenerateEvents does internally.
func (c *Context) NextSerial() uint64 {
	c.serial++

	return c.serial
}

// nextSerial is the internal alias used by this package's own event
// regeneration so call sites read uniformly regardless of package
// boundary.
func (c *Context) nextSerial() uint64 { return c.NextSerial() }
