package wavefront

// Splice removes n from its ring: n.Prev.Next = n.Next,
// n.Next.Prev = n.Prev. n's own Next/Prev pointers are left pointing at
// their old neighbours (stale) so callers can still inspect where it sat;
// it must not be reinserted without going through InsertBetween.
func Splice(n *Node) {
	n.Prev.Next = n.Next
	n.Next.Prev = n.Prev
}

// InsertBetween links n into the ring strictly between a and b, which
// must already be adjacent (a.Next == b) or about to become adjacent via
// this call. SplitEvent.Handle does not use it; it relinks the ring
// with Link.
func InsertBetween(a, n, b *Node) {
	a.Next = n
	n.Prev = a
	n.Next = b
	b.Prev = n
}

// Link sets a.Next = b and b.Prev = a, the minimal single-direction ring
// link used when wiring up the initial polygon ring and when relinking
// after a split.
func Link(a, b *Node) {
	a.Next = b
	b.Prev = a
}
