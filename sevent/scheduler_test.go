package sevent_test

import "github.com/katalvlaran/polyskel/wavefront"

// fakeScheduler is a minimal sevent.Scheduler used to unit-test
// EdgeEvent.Handle and SplitEvent.Handle in isolation, without pulling in
// the full engine package (which itself depends on sevent — a real
// engine.Context is exercised in engine's own tests and in the
// end-to-end polyskel tests).
type fakeScheduler struct {
	time         float32
	epsilon      float32
	distanceSign float32
	distance     float32

	added         []*wavefront.Node
	removed       []*wavefront.Node
	abortedReflex []*wavefront.Node
	rehandled     []*wavefront.Node
	nextID        int
}

func (f *fakeScheduler) Time() float32         { return f.time }
func (f *fakeScheduler) Epsilon() float32      { return f.epsilon }
func (f *fakeScheduler) DistanceSign() float32 { return f.distanceSign }
func (f *fakeScheduler) Distance() float32     { return f.distance }

func (f *fakeScheduler) AddRingNode(n *wavefront.Node) { f.added = append(f.added, n) }
func (f *fakeScheduler) RemoveRingNode(n *wavefront.Node) {
	f.removed = append(f.removed, n)
}
func (f *fakeScheduler) MarkAbortedReflex(n *wavefront.Node) {
	f.abortedReflex = append(f.abortedReflex, n)
}
func (f *fakeScheduler) AbortNodeEvents(n *wavefront.Node) {
	events := append([]wavefront.EventRef(nil), n.Events...)
	for _, ref := range events {
		ref.Abort()
	}
}
func (f *fakeScheduler) Rehandle(n *wavefront.Node) { f.rehandled = append(f.rehandled, n) }
func (f *fakeScheduler) NextNodeID() int {
	f.nextID++

	return f.nextID
}
