package engine

import (
	"container/heap"

	"github.com/katalvlaran/polyskel/sevent"
)

// eventHeap is a container/heap.Interface over pending events, with an
// index map kept in sync by Swap so that an arbitrary event can be
// removed by identity in O(log n) rather than only ever popping the
// minimum. This generalizes the lazy-decrease-key heap used by simpler
// priority-queue consumers into true remove-by-identity, which the
// scheduler needs whenever a mutation invalidates an already-queued
// candidate before it fires.
type eventHeap struct {
	items []sevent.Event
	index map[sevent.Event]int
}

func (h *eventHeap) Len() int { return len(h.items) }

func (h *eventHeap) Less(i, j int) bool {
	return sevent.Comparator(h.items[i], h.items[j]) < 0
}

func (h *eventHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i]] = i
	h.index[h.items[j]] = j
}

func (h *eventHeap) Push(x any) {
	e := x.(sevent.Event)
	h.index[e] = len(h.items)
	h.items = append(h.items, e)
}

func (h *eventHeap) Pop() any {
	n := len(h.items)
	e := h.items[n-1]
	h.items = h.items[:n-1]
	delete(h.index, e)

	return e
}

// eventSet wraps eventHeap with the operations the scheduler actually
// needs: Enqueue, PopMin, and Remove-by-identity.
type eventSet struct {
	h *eventHeap
}

func newEventSet() *eventSet {
	h := &eventHeap{index: make(map[sevent.Event]int)}
	heap.Init(h)

	return &eventSet{h: h}
}

// Enqueue adds e to the queue.
func (s *eventSet) Enqueue(e sevent.Event) {
	heap.Push(s.h, e)
}

// Remove removes e from the queue if present, reporting whether it was
// found. Removing an event not currently queued (already popped, or
// never enqueued because its construction was rejected) is a no-op.
func (s *eventSet) Remove(e sevent.Event) bool {
	idx, ok := s.h.index[e]
	if !ok {
		return false
	}
	heap.Remove(s.h, idx)

	return true
}

// PopMin removes and returns the minimum event by the total order of
// sevent.Comparator, reporting false when the queue is empty.
func (s *eventSet) PopMin() (sevent.Event, bool) {
	if s.h.Len() == 0 {
		return nil, false
	}

	return heap.Pop(s.h).(sevent.Event), true
}

// Len reports the number of pending events.
func (s *eventSet) Len() int { return s.h.Len() }
