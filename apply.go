package polyskel

import (
	"math"

	"github.com/katalvlaran/polyskel/engine"
	"github.com/katalvlaran/polyskel/sevent"
	"github.com/katalvlaran/polyskel/skelgraph"
	"github.com/katalvlaran/polyskel/vec2"
	"github.com/katalvlaran/polyskel/wavefront"
)

// Apply runs the straight-skeleton simulation on p to Config.Distance and
// returns the resulting skeleton graph.
//
// Validation (in order):
//  1. p must have at least 3 vertices (ErrTooFewVertices).
//  2. cfg.Epsilon must be positive (ErrBadEpsilon).
//  3. no two consecutive vertices may coincide within cfg.Epsilon
//     (ErrDuplicateVertex).
//  4. cfg.DistanceSign must be +1 or -1 (ErrBadDistanceSign).
//  5. cfg.Distance must be positive (ErrNonPositiveDistance).
//  6. cfg.Distance must be finite when growing (ErrInfiniteGrowDistance).
//
// These are returned rather than panicking, unlike engine.ContextOption's
// construction-time panics, because Apply is the outermost public entry
// point a caller invokes directly with possibly-untrusted polygon data.
func Apply(p Polygon, cfg Config) (*Result, error) {
	if err := validate(p, cfg); err != nil {
		return nil, err
	}

	ctx := engine.NewContext(engine.WithEpsilon(cfg.Epsilon), engine.WithDistanceSign(cfg.DistanceSign))
	ctx.SetDistance(cfg.Distance, cfg.DistanceSign)

	startNodes := seedRing(ctx, p)

	if err := ctx.Run(); err != nil {
		return nil, err
	}

	return &Result{
		StartNodes: startNodes,
		EndNodes:   collectEndNodes(ctx.Arena()),
		Graph:      ctx.Arena(),
		ctx:        ctx,
	}, nil
}

// ApplyFullSkeleton runs the simulation to natural completion: the
// target distance is set to 0.51 times the polygon's bounding-box
// diagonal, comfortably past the point at which any simple polygon has
// fully collapsed (or, for DistanceSign +1, past any interesting outward
// structure), substituting for an unbounded distance.
func ApplyFullSkeleton(p Polygon, cfg Config) (*Result, error) {
	if len(p) < 3 {
		return nil, ErrTooFewVertices
	}

	cfg.Distance = 0.51 * boundingBoxDiagonal(p)

	return Apply(p, cfg)
}

func validate(p Polygon, cfg Config) error {
	if len(p) < 3 {
		return ErrTooFewVertices
	}
	if cfg.Epsilon <= 0 {
		return ErrBadEpsilon
	}
	for i := range p {
		j := (i + 1) % len(p)
		if vec2.Distance(p[i], p[j]) < cfg.Epsilon {
			return ErrDuplicateVertex
		}
	}
	if cfg.DistanceSign != 1 && cfg.DistanceSign != -1 {
		return ErrBadDistanceSign
	}
	if cfg.Distance <= 0 {
		return ErrNonPositiveDistance
	}
	if cfg.DistanceSign == 1 && math.IsInf(float64(cfg.Distance), 1) {
		return ErrInfiniteGrowDistance
	}

	return nil
}

// seedRing allocates one skeleton-graph node per vertex of p, links them
// into a moving-node ring, computes each node's initial bisector, moves
// each vertex onto a fresh skeleton node (so the start node keeps the
// input position), computes the edge state, and enqueues the initial
// EdgeEvent/SplitEvent candidates.
func seedRing(ctx *engine.Context, p Polygon) []*skelgraph.Node {
	arena := ctx.Arena()
	start := make([]*skelgraph.Node, len(p))
	nodes := make([]*wavefront.Node, len(p))

	for i, v := range p {
		start[i] = arena.Alloc(v)
		nodes[i] = wavefront.NewNode(i, start[i])
		ctx.AddRingNode(nodes[i])
	}
	for i := range nodes {
		wavefront.Link(nodes[i], nodes[(i+1)%len(nodes)])
	}

	params := wavefront.Params{DistanceSign: ctx.DistanceSign(), Epsilon: ctx.Epsilon()}
	for _, n := range nodes {
		n.CalcBisector(params)
	}
	for _, n := range nodes {
		if _, err := n.LeaveSkeletonNode(arena); err != nil {
			panic("polyskel: LeaveSkeletonNode on a seeded ring node: " + err.Error())
		}
	}
	for _, n := range nodes {
		n.UpdateEdge(params)
	}
	for _, n := range nodes {
		if ev, ok := sevent.NewEdgeEvent(ctx.Time(), ctx.Distance(), n, ctx.NextSerial()); ok {
			ctx.Enqueue(ev)
		}
		if n.Reflex {
			ctx.EnqueueNearestSplit(n)
		}
	}

	return start
}

func boundingBoxDiagonal(p Polygon) float32 {
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := p[0].X, p[0].Y
	for _, v := range p[1:] {
		minX = min32(minX, v.X)
		minY = min32(minY, v.Y)
		maxX = max32(maxX, v.X)
		maxY = max32(maxY, v.Y)
	}

	return float32(math.Hypot(float64(maxX-minX), float64(maxY-minY)))
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}

	return b
}
