package polyskel

import "errors"

// Sentinel errors returned by Apply and ApplyFullSkeleton.
var (
	// ErrTooFewVertices indicates the input polygon has fewer than 3
	// vertices.
	ErrTooFewVertices = errors.New("polyskel: polygon must have at least 3 vertices")

	// ErrDuplicateVertex indicates two consecutive input vertices
	// coincide, producing a zero-length edge the simulation cannot
	// orient.
	ErrDuplicateVertex = errors.New("polyskel: consecutive vertices must not coincide")

	// ErrNonPositiveDistance indicates a non-positive target distance was
	// requested.
	ErrNonPositiveDistance = errors.New("polyskel: distance must be positive")

	// ErrBadEpsilon indicates a non-positive Config.Epsilon was supplied.
	ErrBadEpsilon = errors.New("polyskel: epsilon must be positive")

	// ErrBadDistanceSign indicates Config.DistanceSign is neither +1 nor
	// -1.
	ErrBadDistanceSign = errors.New("polyskel: distance sign must be +1 or -1")

	// ErrInfiniteGrowDistance indicates an infinite Config.Distance was
	// requested while growing (DistanceSign == +1), which would run the
	// simulation forever instead of terminating at a target offset.
	ErrInfiniteGrowDistance = errors.New("polyskel: distance must be finite when growing")
)
