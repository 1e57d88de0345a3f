package sevent

import (
	"github.com/katalvlaran/polyskel/vec2"
	"github.com/katalvlaran/polyskel/wavefront"
)

// SplitTime computes the candidate time at which reflex meets the
// directed opposite edge (a, b) (a.Next must equal b):
//
//  1. approachSpeed is the component of reflex's bisector orthogonal to
//     the edge, corrected for the edge's own unit motion.
//  2. sideDistance is the signed perpendicular distance from reflex to
//     the edge's line.
//  3. If reflex already lies on the edge's line (sideDistance == 0), the
//     candidate time is 0 and only canHit is checked.
//  4. Otherwise the speed sign is corrected to represent closing
//     velocity; a non-positive corrected speed means reflex is
//     diverging from the edge, which is invalid.
//  5. The candidate time is -sideDistance/approachSpeed.
//  6. canHit validates the candidate against the three geometric
//     preconditions of §4.3.
//
// Returns ok=false for any invalid or rejected candidate; candidates are
// rejected at creation time so they never enter the queue.
func SplitTime(distanceSign float32, reflex, a, b *wavefront.Node) (float32, bool) {
	approachSpeed := vec2.Determinant(reflex.Bisector, a.EdgeDir) + (-distanceSign)
	sideDistance := vec2.Determinant(vec2.Sub(reflex.Skel.P, a.Skel.P), a.EdgeDir)

	if sideDistance == 0 {
		return 0, canHit(0, distanceSign, reflex, a, b)
	}

	correctedSpeed := approachSpeed
	if sideDistance > 0 {
		correctedSpeed = -approachSpeed
	}
	if correctedSpeed <= 0 {
		return 0, false
	}

	t := -sideDistance / approachSpeed

	return t, canHit(t, distanceSign, reflex, a, b)
}

// canHit validates a SplitTime candidate against the three geometric
// preconditions of §4.3: the opposite edge must not collapse first, and
// the reflex vertex's projected future position must lie on the inside
// half-plane of each endpoint's bisector.
func canHit(t, distanceSign float32, reflex, a, b *wavefront.Node) bool {
	if !(t < a.EdgeCollapseTime) {
		return false
	}

	future := vec2.Add(reflex.Skel.P, vec2.Scale(reflex.Bisector, t))

	sideA := vec2.Determinant(a.Bisector, vec2.Sub(future, a.Skel.P)) * distanceSign
	if sideA < 0 {
		return false
	}

	sideB := vec2.Determinant(b.Bisector, vec2.Sub(future, b.Skel.P)) * distanceSign
	if sideB > 0 {
		return false
	}

	return true
}
